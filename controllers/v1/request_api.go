package apiv1

import (
	"fmt"
	"time"

	"leave-desk-backend/controllers"
	xlsexport "leave-desk-backend/lib/export/xls"
	leaverequesthandler "leave-desk-backend/lib/leave-request"
	sessionhandler "leave-desk-backend/lib/session"
	tasklog "leave-desk-backend/lib/task-log"
	"leave-desk-backend/middleware"
	"leave-desk-backend/models"
	apimodels "leave-desk-backend/models/api"
	requestapimodels "leave-desk-backend/models/api/request"

	"github.com/gofiber/fiber/v2"
)

type requestApiController struct {
	controllers.BaseAPIController
}

func InitRequestApiRouters(app *fiber.App) {
	controller := requestApiController{}
	app.Route("requests", func(router fiber.Router) {
		router.Get("", controller.mine)
		router.Post("", controller.submit)
		router.Post("draft", controller.draft)
		router.Get("pending", middleware.ManagerRequired(), controller.pending)
		router.Get("history", middleware.ManagerRequired(), controller.history)
		router.Get("all", middleware.ManagerRequired(), controller.all)
		router.Get("export", middleware.ManagerRequired(), controller.export)
		router.Route(":rid", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("decision", middleware.ManagerRequired(), controller.decide)
		})
	})
}

// @Summary Мои заявки
// @Tags Заявка
// @Description Заявки текущего пользователя, новые сверху
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]models.RequestRecord}
// @Failure 401 {object} apimodels.Response
// @router /api/v1/requests [get]
func (c *requestApiController) mine(ctx *fiber.Ctx) error {
	session := middleware.GetSession(ctx)
	list := leaverequesthandler.Instance.ListByEmail(ctx.UserContext(), session.Identity.Email)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, int64(len(list))))
}

// @Summary Подача заявки
// @Tags Заявка
// @Description Создание, запись в журнал и уведомление согласующего
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 models.RequestDraft	true	"request body"
// @Success 200 {object} apimodels.Response{data=requestapimodels.SubmitView}
// @Failure 400 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/requests [post]
func (c *requestApiController) submit(ctx *fiber.Ctx) error {
	var payload models.RequestDraft
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	payload = fillRequester(payload, middleware.GetSession(ctx))
	rec, result, err := leaverequesthandler.Instance.Submit(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка подачи заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(requestapimodels.SubmitView{
		Request:      rec,
		Notification: string(result),
	}))
}

// @Summary Пересчет формы
// @Tags Заявка
// @Description Применяет правила заполнения полей времени к черновику заявки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 models.RequestDraft	true	"request body"
// @Success 200 {object} apimodels.Response{data=models.RequestDraft}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/requests/draft [post]
func (c *requestApiController) draft(ctx *fiber.Ctx) error {
	var payload models.RequestDraft
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(leaverequesthandler.ApplyClassificationRules(payload)))
}

// @Summary Очередь согласования
// @Tags Заявка
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]models.RequestRecord}
// @Failure 403
// @router /api/v1/requests/pending [get]
func (c *requestApiController) pending(ctx *fiber.Ctx) error {
	list := leaverequesthandler.Instance.ListPending(ctx.UserContext())
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, int64(len(list))))
}

// @Summary История решений
// @Tags Заявка
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]models.RequestRecord}
// @Failure 403
// @router /api/v1/requests/history [get]
func (c *requestApiController) history(ctx *fiber.Ctx) error {
	list := leaverequesthandler.Instance.ListHistory(ctx.UserContext())
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, int64(len(list))))
}

// @Summary Все заявки
// @Tags Заявка
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]models.RequestRecord}
// @Failure 403
// @router /api/v1/requests/all [get]
func (c *requestApiController) all(ctx *fiber.Ctx) error {
	list := leaverequesthandler.Instance.ListAll(ctx.UserContext())
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, int64(len(list))))
}

// @Summary Заявка
// @Tags Заявка
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   rid          		path    string  				    	true         "request ID"
// @Success 200 {object} apimodels.Response{data=models.RequestRecord}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/requests/{rid} [get]
func (c *requestApiController) get(ctx *fiber.Ctx) error {
	rid, err := c.GetRequestID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := leaverequesthandler.Instance.GetByID(ctx.UserContext(), rid)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("request_id", rid), err, "Ошибка получения заявки")
	}
	session := middleware.GetSession(ctx)
	if !session.CanDecide() && rec.EmployeeEmail != session.Identity.Email {
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("заявка недоступна"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Решение по заявке
// @Tags Заявка
// @Description Согласование или отклонение, повторный запрос до завершения первого отклоняется
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   rid          		path    string  				    	true         "request ID"
// @Param	body body	 requestapimodels.DecisionData	true	"request body"
// @Success 200 {object} apimodels.Response{data=requestapimodels.SubmitView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/requests/{rid}/decision [put]
func (c *requestApiController) decide(ctx *fiber.Ctx) error {
	rid, err := c.GetRequestID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload requestapimodels.DecisionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, result, err := leaverequesthandler.Instance.DecideOnce(ctx.UserContext(), rid, payload.Decision, payload.Comment)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("request_id", rid), err, "Ошибка записи решения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(requestapimodels.SubmitView{
		Request:      rec,
		Notification: string(result),
	}))
}

// @Summary Журнал заявок и задач. Выгрузить в Excel
// @Tags Заявка
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/export [get]
func (c *requestApiController) export(ctx *fiber.Ctx) error {
	requests := leaverequesthandler.Instance.ListAll(ctx.UserContext())
	tasks := tasklog.Instance.List(ctx.UserContext())
	data, err := xlsexport.Instance.ExportArchive(requests, tasks)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки журнала в Excel")
	}
	fileName := fmt.Sprintf("leave-desk-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// fillRequester данные заявителя берутся из сессии, email всегда из подтверждения личности
func fillRequester(draft models.RequestDraft, session *sessionhandler.Context) models.RequestDraft {
	draft.EmployeeEmail = session.Identity.Email
	if draft.EmployeeName == "" {
		draft.EmployeeName = session.DisplayName()
	}
	if draft.EmployeeID == "" {
		draft.EmployeeID = session.EmployeeCode()
	}
	return draft
}
