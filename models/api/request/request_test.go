package requestapimodels

import (
	"testing"

	"leave-desk-backend/models"

	"github.com/stretchr/testify/require"
)

func TestDecisionDataValidate(t *testing.T) {
	for value, expected := range map[string]models.RequestStatus{
		"APPROVED":   models.RequestStatusApproved,
		"approved":   models.RequestStatusApproved,
		" Rejected ": models.RequestStatusRejected,
	} {
		data := DecisionData{Decision: models.RequestStatus(value)}
		require.NoError(t, data.Validate(), value)
		require.Equal(t, expected, data.Decision, value)
	}
	for _, value := range []string{"", "pending", "APPROVE"} {
		data := DecisionData{Decision: models.RequestStatus(value)}
		require.Error(t, data.Validate(), value)
	}
}
