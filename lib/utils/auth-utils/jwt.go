package authutils

import (
	"time"

	sessionhandler "leave-desk-backend/lib/session"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// GetToken токен сессии с данными подтверждения личности
func GetToken(secret string, identity sessionhandler.Identity, ttl time.Duration) (tokenString string, err error) {
	if secret == "" {
		return "", errors.New("не задан ключ подписи токена")
	}
	claims := jwt.MapClaims{
		"sub":     identity.Email,
		"email":   identity.Email,
		"name":    identity.Name,
		"picture": identity.Picture,
		"exp":     time.Now().Add(ttl).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	return token.Claims.(jwt.MapClaims)
}

func IdentityFromClaims(claims map[string]interface{}) sessionhandler.Identity {
	identity := sessionhandler.Identity{
		Email:   claimString(claims, "email"),
		Name:    claimString(claims, "name"),
		Picture: claimString(claims, "picture"),
	}
	if identity.Email == "" {
		identity.Email = claimString(claims, "sub")
	}
	return identity
}

func claimString(claims map[string]interface{}, key string) string {
	if value, ok := claims[key].(string); ok {
		return value
	}
	return ""
}
