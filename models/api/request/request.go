package requestapimodels

import (
	"leave-desk-backend/models"

	"github.com/pkg/errors"
)

type DecisionData struct {
	Decision models.RequestStatus `json:"decision"` // APPROVED/REJECTED
	Comment  string               `json:"comment"`
}

// Validate приводит решение к верхнему регистру, пустое значение не проходит проверку
func (d *DecisionData) Validate() error {
	d.Decision = models.ParseRequestStatus(string(d.Decision))
	if !d.Decision.IsDecision() {
		return errors.New("решение должно быть APPROVED или REJECTED")
	}
	return nil
}

type SubmitView struct {
	Request      models.RequestRecord `json:"request"`
	Notification string               `json:"notification"` // SENT/CONFIG_MISSING/TRANSPORT_ERROR
}

type TaskData struct {
	Company         string `json:"company"`
	Platform        string `json:"platform"`
	Fulfillment     string `json:"fulfillment"`
	TaskKind        string `json:"task_kind"`
	Quantity        int    `json:"quantity"`
	ClaimedQuantity int    `json:"claimed_quantity"`
}

type ProfileView struct {
	Email        string          `json:"email"`
	Name         string          `json:"name"`
	Picture      string          `json:"picture"`
	EmployeeCode string          `json:"employee_code"`
	Role         models.UserRole `json:"role"`
	RoleName     string          `json:"role_name"`
}
