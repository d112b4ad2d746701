package middleware

import (
	"strings"

	"leave-desk-backend/config"
	"leave-desk-backend/fiberlog"
	sessionhandler "leave-desk-backend/lib/session"
	authutils "leave-desk-backend/lib/utils/auth-utils"
	apimodels "leave-desk-backend/models/api"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/idtoken"
)

const localsIdentity = "identity"

// AuthorizationRequired проверка подтверждения личности: Google ID токен, если задан
// GoogleClientID, иначе собственный HS256 токен. Без GoogleClientID и JWTSecret все запросы отклоняются.
func AuthorizationRequired() fiber.Handler {
	if config.Conf.Auth.GoogleClientID != "" {
		return GoogleIdentityRequired(config.Conf.Auth.GoogleClientID)
	}
	return JWTIdentityRequired(config.Conf.Auth.JWTSecret)
}

func JWTIdentityRequired(secret string) fiber.Handler {
	if secret == "" {
		log.Error("не заданы GOOGLE_CLIENT_ID и JWT_SECRET, все запросы к api будут отклонены")
		return func(ctx *fiber.Ctx) error {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("авторизация не настроена"))
		}
	}
	return jwtware.New(jwtware.Config{
		Claims: jwt.MapClaims{},
		SigningKey: jwtware.SigningKey{
			JWTAlg: "HS256",
			Key:    []byte(secret),
		},
		SuccessHandler: func(ctx *fiber.Ctx) error {
			setIdentity(ctx, authutils.IdentityFromClaims(authutils.GetClaims(ctx)))
			return ctx.Next()
		},
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("требуется авторизация"))
		},
	})
}

func GoogleIdentityRequired(clientID string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		auth := ctx.Get(fiber.HeaderAuthorization)
		token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer"))
		if token == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("требуется авторизация"))
		}
		payload, err := idtoken.Validate(ctx.UserContext(), token, clientID)
		if err != nil {
			log.WithError(err).Warn("некорректный Google ID токен")
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("требуется авторизация"))
		}
		setIdentity(ctx, authutils.IdentityFromClaims(payload.Claims))
		return ctx.Next()
	}
}

func setIdentity(ctx *fiber.Ctx, identity sessionhandler.Identity) {
	ctx.Locals(localsIdentity, identity)
	ctx.Locals(fiberlog.LocalsUserEmail, identity.Email)
}

func GetIdentity(ctx *fiber.Ctx) (sessionhandler.Identity, bool) {
	identity, ok := ctx.Locals(localsIdentity).(sessionhandler.Identity)
	return identity, ok
}
