package apiv1

import (
	"leave-desk-backend/controllers"
	tasklog "leave-desk-backend/lib/task-log"
	"leave-desk-backend/middleware"
	"leave-desk-backend/models"
	apimodels "leave-desk-backend/models/api"
	requestapimodels "leave-desk-backend/models/api/request"

	"github.com/gofiber/fiber/v2"
)

type taskApiController struct {
	controllers.BaseAPIController
}

func InitTaskApiRouters(app *fiber.App) {
	controller := taskApiController{}
	app.Route("tasks", func(router fiber.Router) {
		router.Get("", controller.mine)
		router.Post("", controller.log)
		router.Get("all", middleware.ManagerRequired(), controller.all)
	})
}

// @Summary Мои задачи
// @Tags Журнал задач
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]models.TaskEntry}
// @router /api/v1/tasks [get]
func (c *taskApiController) mine(ctx *fiber.Ctx) error {
	session := middleware.GetSession(ctx)
	list := tasklog.Instance.ListByEmail(ctx.UserContext(), session.Identity.Email)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, int64(len(list))))
}

// @Summary Запись задачи
// @Tags Журнал задач
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.TaskData	true	"request body"
// @Success 200 {object} apimodels.Response{data=models.TaskEntry}
// @Failure 400 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/tasks [post]
func (c *taskApiController) log(ctx *fiber.Ctx) error {
	var payload requestapimodels.TaskData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	session := middleware.GetSession(ctx)
	entry, _, err := tasklog.Instance.Log(ctx.UserContext(), models.TaskEntry{
		EmployeeName:    session.DisplayName(),
		EmployeeEmail:   session.Identity.Email,
		Company:         payload.Company,
		Platform:        payload.Platform,
		Fulfillment:     payload.Fulfillment,
		TaskKind:        payload.TaskKind,
		Quantity:        payload.Quantity,
		ClaimedQuantity: payload.ClaimedQuantity,
	})
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка записи задачи")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(entry))
}

// @Summary Все задачи
// @Tags Журнал задач
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]models.TaskEntry}
// @Failure 403
// @router /api/v1/tasks/all [get]
func (c *taskApiController) all(ctx *fiber.Ctx) error {
	list := tasklog.Instance.List(ctx.UserContext())
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, int64(len(list))))
}
