package apiv1

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	leaverequesthandler "leave-desk-backend/lib/leave-request"
	notifyhandler "leave-desk-backend/lib/notify"
	sessionhandler "leave-desk-backend/lib/session"
	"leave-desk-backend/middleware"
	"leave-desk-backend/models"
	apimodels "leave-desk-backend/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

const (
	managerEmail  = "boss@example.com"
	employeeEmail = "jane.doe@example.com"
)

type fakeEngine struct {
	leaverequesthandler.Provider
	record    models.RequestRecord
	err       error
	decisions []models.RequestStatus
}

func (e *fakeEngine) DecideOnce(ctx context.Context, requestID string, decision models.RequestStatus, comment string) (models.RequestRecord, notifyhandler.Result, error) {
	if e.err != nil {
		return models.RequestRecord{}, "", e.err
	}
	e.decisions = append(e.decisions, decision)
	return models.RequestRecord{RequestID: requestID, Status: decision}, notifyhandler.ResultSent, nil
}

func (e *fakeEngine) GetByID(ctx context.Context, requestID string) (models.RequestRecord, error) {
	if e.err != nil {
		return models.RequestRecord{}, e.err
	}
	return e.record, nil
}

func (e *fakeEngine) Submit(ctx context.Context, draft models.RequestDraft) (models.RequestRecord, notifyhandler.Result, error) {
	if e.err != nil {
		return models.RequestRecord{}, "", e.err
	}
	return models.RequestRecord{RequestID: "REQ-AB12CD34", EmployeeEmail: draft.EmployeeEmail}, notifyhandler.ResultSent, nil
}

func newTestApp(engine *fakeEngine, email string, role models.UserRole) *fiber.App {
	leaverequesthandler.Instance = engine
	app := fiber.New()
	app.Use(func(ctx *fiber.Ctx) error {
		middleware.SetSession(ctx, &sessionhandler.Context{
			Identity: sessionhandler.Identity{Email: email},
			Role:     role,
		})
		return ctx.Next()
	})
	InitRequestApiRouters(app)
	return app
}

func sendJSON(t *testing.T, app *fiber.App, method, url, body string) (int, apimodels.Response) {
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	data := apimodels.Response{}
	if len(raw) != 0 {
		require.NoError(t, json.Unmarshal(raw, &data))
	}
	return resp.StatusCode, data
}

func TestDecisionStatusMapping(t *testing.T) {
	for _, tc := range []struct {
		name   string
		err    error
		status int
	}{
		{name: "validation", err: errors.Wrap(models.ErrValidationFailed, "bad"), status: fiber.StatusBadRequest},
		{name: "not found", err: errors.Wrap(models.ErrNotFound, "REQ-NOTFOUND"), status: fiber.StatusNotFound},
		{name: "in flight", err: models.ErrDecisionInFlight, status: fiber.StatusConflict},
		{name: "already decided", err: models.ErrAlreadyDecided, status: fiber.StatusConflict},
		{name: "remote", err: errors.Wrap(models.ErrRemoteUnavailable, "timeout"), status: fiber.StatusServiceUnavailable},
		{name: "config", err: models.ErrConfigMissing, status: fiber.StatusServiceUnavailable},
		{name: "unexpected", err: errors.New("boom"), status: fiber.StatusInternalServerError},
	} {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(&fakeEngine{err: tc.err}, managerEmail, models.ManagerRole)
			status, _ := sendJSON(t, app, http.MethodPut, "/requests/REQ-AB12CD34/decision", `{"decision":"APPROVED"}`)
			require.Equal(t, tc.status, status)
		})
	}
}

func TestDecide(t *testing.T) {
	t.Run(`lower case decision is accepted`, func(t *testing.T) {
		engine := &fakeEngine{}
		app := newTestApp(engine, managerEmail, models.ManagerRole)
		status, _ := sendJSON(t, app, http.MethodPut, "/requests/REQ-AB12CD34/decision", `{"decision":"rejected","comment":"no"}`)
		require.Equal(t, fiber.StatusOK, status)
		require.Equal(t, []models.RequestStatus{models.RequestStatusRejected}, engine.decisions)
	})

	t.Run(`unknown decision`, func(t *testing.T) {
		engine := &fakeEngine{}
		app := newTestApp(engine, managerEmail, models.ManagerRole)
		status, _ := sendJSON(t, app, http.MethodPut, "/requests/REQ-AB12CD34/decision", `{"decision":"maybe"}`)
		require.Equal(t, fiber.StatusBadRequest, status)
		require.Empty(t, engine.decisions)
	})

	t.Run(`employee cannot decide`, func(t *testing.T) {
		engine := &fakeEngine{}
		app := newTestApp(engine, employeeEmail, models.EmployeeRole)
		status, _ := sendJSON(t, app, http.MethodPut, "/requests/REQ-AB12CD34/decision", `{"decision":"APPROVED"}`)
		require.Equal(t, fiber.StatusForbidden, status)
		require.Empty(t, engine.decisions)
	})
}

func TestGetRequest(t *testing.T) {
	record := models.RequestRecord{RequestID: "REQ-AB12CD34", EmployeeEmail: employeeEmail, Status: models.RequestStatusPending}

	t.Run(`owner`, func(t *testing.T) {
		app := newTestApp(&fakeEngine{record: record}, employeeEmail, models.EmployeeRole)
		status, _ := sendJSON(t, app, http.MethodGet, "/requests/REQ-AB12CD34", "")
		require.Equal(t, fiber.StatusOK, status)
	})

	t.Run(`other employee`, func(t *testing.T) {
		app := newTestApp(&fakeEngine{record: record}, "john@example.com", models.EmployeeRole)
		status, _ := sendJSON(t, app, http.MethodGet, "/requests/REQ-AB12CD34", "")
		require.Equal(t, fiber.StatusForbidden, status)
	})

	t.Run(`manager`, func(t *testing.T) {
		app := newTestApp(&fakeEngine{record: record}, managerEmail, models.ManagerRole)
		status, _ := sendJSON(t, app, http.MethodGet, "/requests/REQ-AB12CD34", "")
		require.Equal(t, fiber.StatusOK, status)
	})

	t.Run(`unknown request`, func(t *testing.T) {
		app := newTestApp(&fakeEngine{err: errors.Wrap(models.ErrNotFound, "REQ-NOTFOUND")}, managerEmail, models.ManagerRole)
		status, _ := sendJSON(t, app, http.MethodGet, "/requests/REQ-NOTFOUND", "")
		require.Equal(t, fiber.StatusNotFound, status)
	})
}

func TestSubmitStoreUnavailable(t *testing.T) {
	app := newTestApp(&fakeEngine{err: errors.Wrap(models.ErrConfigMissing, "no store")}, employeeEmail, models.EmployeeRole)
	status, data := sendJSON(t, app, http.MethodPost, "/requests", `{"reason":"trip"}`)
	require.Equal(t, fiber.StatusServiceUnavailable, status)
	require.Contains(t, data.Message, "повторите попытку позже")
}
