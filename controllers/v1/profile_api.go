package apiv1

import (
	"leave-desk-backend/controllers"
	directoryhandler "leave-desk-backend/lib/directory"
	lookupoptions "leave-desk-backend/lib/lookup-options"
	sessionhandler "leave-desk-backend/lib/session"
	"leave-desk-backend/middleware"
	apimodels "leave-desk-backend/models/api"
	requestapimodels "leave-desk-backend/models/api/request"

	"github.com/gofiber/fiber/v2"
)

type profileApiController struct {
	controllers.BaseAPIController
}

func InitProfileApiRouters(app *fiber.App) {
	controller := profileApiController{}
	app.Get("me", controller.me)
	app.Get("lookups", controller.lookups)
	app.Route("directory", func(router fiber.Router) {
		router.Get("", middleware.ManagerRequired(), controller.directory)
		router.Delete("roles", middleware.AdminRequired(), controller.clearRoles)
	})
}

// @Summary Профиль
// @Tags Профиль
// @Description Данные пользователя и его роль из справочника сотрудников
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=requestapimodels.ProfileView}
// @Failure 401 {object} apimodels.Response
// @router /api/v1/me [get]
func (c *profileApiController) me(ctx *fiber.Ctx) error {
	session := middleware.GetSession(ctx)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(requestapimodels.ProfileView{
		Email:        session.Identity.Email,
		Name:         session.DisplayName(),
		Picture:      session.Identity.Picture,
		EmployeeCode: session.EmployeeCode(),
		Role:         session.Role,
		RoleName:     session.Role.ToHuman(),
	}))
}

// @Summary Справочник видов отсутствия
// @Tags Профиль
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=models.LookupOptions}
// @router /api/v1/lookups [get]
func (c *profileApiController) lookups(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(lookupoptions.Instance.Get(ctx.UserContext())))
}

// @Summary Справочник сотрудников
// @Tags Профиль
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]models.EmployeeRecord}
// @Failure 403
// @router /api/v1/directory [get]
func (c *profileApiController) directory(ctx *fiber.Ctx) error {
	list := directoryhandler.Instance.List(ctx.UserContext())
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, int64(len(list))))
}

// @Summary Сброс кеша ролей
// @Tags Профиль
// @Description Роли будут заново прочитаны из справочника
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @router /api/v1/directory/roles [delete]
func (c *profileApiController) clearRoles(ctx *fiber.Ctx) error {
	sessionhandler.Instance.ClearAll()
	c.GetLogger(ctx).Info("кеш ролей сброшен")
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
