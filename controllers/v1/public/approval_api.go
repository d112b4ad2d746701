package publicapi

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"leave-desk-backend/controllers"
	leaverequesthandler "leave-desk-backend/lib/leave-request"
	notifyhandler "leave-desk-backend/lib/notify"
	"leave-desk-backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var pageTemplate = template.Must(template.New("approval").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<h1>{{.Title}}</h1>
<p>{{.Message}}</p>
</body>
</html>
`))

type page struct {
	Title   string
	Message string
}

type approvalApiController struct {
	controllers.BaseAPIController
	linkSecret string
}

// InitApprovalRouters страница решения по ссылке из письма. При заданном linkSecret
// ссылка должна быть подписана.
func InitApprovalRouters(app *fiber.App, linkSecret string) {
	controller := approvalApiController{linkSecret: linkSecret}
	app.Options(notifyhandler.ApprovalPath, controller.preflight)
	app.Get(notifyhandler.ApprovalPath, controller.decide)
}

// preflight пустой ответ для проверки CORS
func (c *approvalApiController) preflight(ctx *fiber.Ctx) error {
	ctx.Set(fiber.HeaderAccessControlAllowOrigin, "*")
	ctx.Set(fiber.HeaderAccessControlAllowMethods, "GET, OPTIONS")
	ctx.Set(fiber.HeaderAccessControlAllowHeaders, "Content-Type")
	return ctx.SendStatus(fiber.StatusNoContent)
}

// @Summary Решение по ссылке из письма
// @Tags Заявка
// @Description Возвращает HTML страницу, а не JSON
// @Param   action	query	string	true	"APPROVE/DENY"
// @Param   rid		query	string	true	"request ID"
// @Param   token	query	string	false	"подпись ссылки"
// @Success 200
// @Failure 400
// @Failure 404
// @router /approval [get]
func (c *approvalApiController) decide(ctx *fiber.Ctx) error {
	if strings.EqualFold(ctx.Query("method"), fiber.MethodOptions) {
		return c.preflight(ctx)
	}
	rid := strings.TrimSpace(ctx.Query("rid"))
	logger := log.WithField("request_id", rid).WithField("action", ctx.Query("action"))
	decision, ok := models.StatusForAction(ctx.Query("action"))
	if !ok || rid == "" {
		logger.Warn("некорректная ссылка решения")
		return c.render(ctx, fiber.StatusBadRequest, page{
			Title:   "Invalid link",
			Message: "The approval link is missing the request or the action.",
		})
	}
	if c.linkSecret != "" {
		err := notifyhandler.VerifyApprovalToken(c.linkSecret, ctx.Query("token"), rid, models.ActionForStatus(decision))
		if err != nil {
			logger.WithError(err).Warn("ссылка решения не прошла проверку подписи")
			return c.render(ctx, fiber.StatusForbidden, page{
				Title:   "Invalid link",
				Message: "The approval link signature is not valid.",
			})
		}
	}

	rec, result, err := leaverequesthandler.Instance.DecideAndNotify(ctx.UserContext(), rid, decision, "")
	if err != nil {
		status := controllers.ErrorStatus(err)
		if status >= fiber.StatusInternalServerError {
			logger.WithError(err).Error("ошибка записи решения по ссылке")
		} else {
			logger.WithError(err).Warn("решение по ссылке не записано")
		}
		return c.render(ctx, status, errorPage(rid, err))
	}
	message := fmt.Sprintf("Request %s has been %s.", rec.RequestID, strings.ToLower(rec.Status.ToHuman()))
	if result.IsSent() {
		message += " The employee has been notified."
	} else {
		message += " The employee could not be notified."
	}
	return c.render(ctx, fiber.StatusOK, page{
		Title:   "Request " + strings.ToLower(rec.Status.ToHuman()),
		Message: message,
	})
}

func errorPage(rid string, err error) page {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return page{Title: "Request not found", Message: fmt.Sprintf("Request %s was not found.", rid)}
	case errors.Is(err, models.ErrAlreadyDecided):
		return page{Title: "Already decided", Message: fmt.Sprintf("Request %s has already been decided.", rid)}
	case errors.Is(err, models.ErrValidationFailed):
		return page{Title: "Invalid link", Message: "The approval link is not valid."}
	}
	return page{Title: "Something went wrong", Message: "The decision could not be saved. Please try again later."}
}

func (c *approvalApiController) render(ctx *fiber.Ctx, status int, p page) error {
	buf := &bytes.Buffer{}
	if err := pageTemplate.Execute(buf, p); err != nil {
		log.WithError(err).Error("ошибка формирования страницы решения")
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return ctx.Status(status).Send(buf.Bytes())
}
