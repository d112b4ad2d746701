package publicapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	leaverequesthandler "leave-desk-backend/lib/leave-request"
	notifyhandler "leave-desk-backend/lib/notify"
	"leave-desk-backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeEngine struct {
	leaverequesthandler.Provider
	decisions []models.RequestStatus
	err       error
}

func (e *fakeEngine) DecideAndNotify(ctx context.Context, requestID string, decision models.RequestStatus, comment string) (models.RequestRecord, notifyhandler.Result, error) {
	if e.err != nil {
		return models.RequestRecord{}, "", e.err
	}
	e.decisions = append(e.decisions, decision)
	return models.RequestRecord{
		RequestID:     requestID,
		Status:        decision,
		ManagerAction: models.ActionForStatus(decision),
	}, notifyhandler.ResultSent, nil
}

func newTestApp(engine *fakeEngine, secret string) *fiber.App {
	leaverequesthandler.Instance = engine
	app := fiber.New()
	InitApprovalRouters(app, secret)
	return app
}

func TestApprovalLink(t *testing.T) {
	t.Run(`preflight probe gets cors headers`, func(t *testing.T) {
		engine := &fakeEngine{}
		app := newTestApp(engine, "")

		resp, err := app.Test(httptest.NewRequest(http.MethodOptions, "/approval?action=APPROVE&rid=REQ-AB12CD34", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
		require.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))

		resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/approval?method=OPTIONS&action=APPROVE&rid=REQ-AB12CD34", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
		require.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
		require.Empty(t, engine.decisions)
	})

	t.Run(`link click decides and renders html without cors headers`, func(t *testing.T) {
		engine := &fakeEngine{}
		app := newTestApp(engine, "")

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/approval?action=DENY&rid=REQ-AB12CD34", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Empty(t, resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
		require.Equal(t, fiber.MIMETextHTMLCharsetUTF8, resp.Header.Get(fiber.HeaderContentType))
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.Contains(t, string(body), "Request REQ-AB12CD34 has been rejected.")
		require.Equal(t, []models.RequestStatus{models.RequestStatusRejected}, engine.decisions)
	})

	t.Run(`unknown request`, func(t *testing.T) {
		engine := &fakeEngine{err: errors.Wrap(models.ErrNotFound, "REQ-NOTFOUND")}
		app := newTestApp(engine, "")

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/approval?action=APPROVE&rid=REQ-NOTFOUND", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.Contains(t, string(body), "Request not found")
	})

	t.Run(`bad action`, func(t *testing.T) {
		engine := &fakeEngine{}
		app := newTestApp(engine, "")

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/approval?action=MAYBE&rid=REQ-AB12CD34", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		require.Empty(t, engine.decisions)
	})

	t.Run(`signed links`, func(t *testing.T) {
		engine := &fakeEngine{}
		app := newTestApp(engine, "secret")

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/approval?action=APPROVE&rid=REQ-AB12CD34", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		require.Empty(t, engine.decisions)

		link, err := notifyhandler.BuildApprovalLink("", "secret", "REQ-AB12CD34", models.ManagerActionApprove)
		require.NoError(t, err)
		resp, err = app.Test(httptest.NewRequest(http.MethodGet, link, nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Equal(t, []models.RequestStatus{models.RequestStatusApproved}, engine.decisions)
	})
}
