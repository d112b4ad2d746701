package middleware

import (
	"leave-desk-backend/models"
	apimodels "leave-desk-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

func ManagerRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		session := GetSession(ctx)
		if session == nil || !session.CanDecide() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция доступна только руководителю"))
		}
		return ctx.Next()
	}
}

func AdminRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		session := GetSession(ctx)
		if session == nil || session.Role != models.AdminRole {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
		}
		return ctx.Next()
	}
}
