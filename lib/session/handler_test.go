package sessionhandler

import (
	"context"
	"testing"

	"leave-desk-backend/models"

	"github.com/stretchr/testify/require"
)

type countingDirectory struct {
	list  []models.EmployeeRecord
	calls int
}

func (d *countingDirectory) List(ctx context.Context) []models.EmployeeRecord {
	d.calls++
	return d.list
}

func (d *countingDirectory) GetByEmail(ctx context.Context, email string) *models.EmployeeRecord {
	d.calls++
	for _, rec := range d.list {
		if rec.Email == email {
			return &rec
		}
	}
	return nil
}

func TestSession(t *testing.T) {
	ctx := context.TODO()
	directory := &countingDirectory{list: []models.EmployeeRecord{
		{Email: "boss@example.com", Name: "Big Boss", EmployeeCode: "M-1", Role: models.ManagerRole},
	}}
	handler := NewInstance(directory)

	t.Run(`role is resolved once per email`, func(t *testing.T) {
		session, err := handler.Load(ctx, Identity{Email: " Boss@Example.com ", Name: "Boss"})
		require.NoError(t, err)
		require.Equal(t, models.ManagerRole, session.Role)
		require.True(t, session.CanDecide())
		require.Equal(t, "Big Boss", session.DisplayName())
		require.Equal(t, "M-1", session.EmployeeCode())
		require.Equal(t, "boss@example.com", session.Identity.Email)

		require.Equal(t, models.ManagerRole, handler.ResolveRole(ctx, "BOSS@example.com"))
		require.Equal(t, 1, directory.calls)
	})

	t.Run(`clear forces directory lookup`, func(t *testing.T) {
		handler.Clear("boss@example.com")
		handler.ResolveRole(ctx, "boss@example.com")
		require.Equal(t, 2, directory.calls)

		handler.ClearAll()
		handler.ResolveRole(ctx, "boss@example.com")
		require.Equal(t, 3, directory.calls)
	})

	t.Run(`unknown email is an employee`, func(t *testing.T) {
		session, err := handler.Load(ctx, Identity{Email: "new@example.com", Name: "Newbie"})
		require.NoError(t, err)
		require.Equal(t, models.EmployeeRole, session.Role)
		require.False(t, session.CanDecide())
		require.Nil(t, session.Employee)
		require.Equal(t, "Newbie", session.DisplayName())
	})

	t.Run(`identity without email`, func(t *testing.T) {
		_, err := handler.Load(ctx, Identity{Name: "Ghost"})
		require.Error(t, err)
	})
}
