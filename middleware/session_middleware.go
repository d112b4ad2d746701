package middleware

import (
	sessionhandler "leave-desk-backend/lib/session"
	apimodels "leave-desk-backend/models/api"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

const localsSession = "session"

// SessionRequired загружает сессию (роль из справочника) после AuthorizationRequired
func SessionRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		identity, ok := GetIdentity(ctx)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("требуется авторизация"))
		}
		session, err := sessionhandler.Instance.Load(ctx.UserContext(), identity)
		if err != nil {
			log.WithError(err).Warn("ошибка загрузки сессии")
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(err.Error()))
		}
		SetSession(ctx, session)
		return ctx.Next()
	}
}

func SetSession(ctx *fiber.Ctx, session *sessionhandler.Context) {
	ctx.Locals(localsSession, session)
}

func GetSession(ctx *fiber.Ctx) *sessionhandler.Context {
	session, ok := ctx.Locals(localsSession).(*sessionhandler.Context)
	if !ok {
		return nil
	}
	return session
}
