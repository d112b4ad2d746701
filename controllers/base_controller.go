package controllers

import (
	"leave-desk-backend/middleware"
	"leave-desk-backend/models"
	apimodels "leave-desk-backend/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

func (c *BaseAPIController) GetRequestID(ctx *fiber.Ctx) (string, error) {
	rid := ctx.Params("rid")
	if rid == "" {
		return "", errors.New("не указан идентификатор заявки")
	}
	return rid, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	logger := log.
		WithField("method", ctx.Method()).
		WithField("path", ctx.Path())
	if session := middleware.GetSession(ctx); session != nil {
		logger = logger.WithField("user_email", session.Identity.Email)
	}
	return logger
}

// SendError ответ с кодом по виду ошибки. Для 5xx клиенту уходит только общее сообщение.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, message string) error {
	status := ErrorStatus(err)
	if status >= fiber.StatusInternalServerError {
		logger.WithError(err).Error(message)
		if status == fiber.StatusServiceUnavailable {
			return ctx.Status(status).JSON(apimodels.NewError(message + ", повторите попытку позже"))
		}
		return ctx.Status(status).JSON(apimodels.NewError(message))
	}
	logger.WithError(err).Warn(message)
	return ctx.Status(status).JSON(apimodels.NewError(err.Error()))
}

func ErrorStatus(err error) int {
	switch {
	case errors.Is(err, models.ErrValidationFailed):
		return fiber.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, models.ErrDecisionInFlight), errors.Is(err, models.ErrAlreadyDecided):
		return fiber.StatusConflict
	case errors.Is(err, models.ErrRemoteUnavailable), errors.Is(err, models.ErrConfigMissing):
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}
