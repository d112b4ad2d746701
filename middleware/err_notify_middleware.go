package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"

	"leave-desk-backend/fiberlog"
	apimodels "leave-desk-backend/models/api"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type errNotifyPayload struct {
	Type      string `json:"type"`
	Code      int    `json:"code"`
	Method    string `json:"method"`
	Path      string `json:"path"`
	UserEmail string `json:"user_email,omitempty"`
	Error     string `json:"error"`
}

// ErrNotify сообщает о 5xx ответах на webhook, без адреса ничего не делает
func ErrNotify(addr string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if addr == "" {
			return err
		}
		statusCode := c.Response().StatusCode()
		if statusCode < http.StatusInternalServerError {
			return err
		}

		data := apimodels.Response{}
		if unmErr := json.Unmarshal(c.Response().Body(), &data); unmErr != nil {
			log.WithError(unmErr).Warn("ошибка разбора тела ответа в middleware")
		}
		payload := errNotifyPayload{
			Type:   "error",
			Code:   statusCode,
			Method: c.Method(),
			Path:   c.OriginalURL(),
			Error:  data.Message,
		}
		if r := c.Route(); r != nil {
			payload.Path = r.Path
		}
		if payload.Error == "" {
			payload.Error = string(c.Response().Body())
		}
		if email, ok := c.Locals(fiberlog.LocalsUserEmail).(string); ok {
			payload.UserEmail = email
		}

		go func() {
			body, _ := json.Marshal(payload)
			resp, reqErr := http.Post(addr, "application/json", bytes.NewReader(body))
			if reqErr != nil {
				log.WithError(reqErr).Warn("ошибка отправки уведомления об ошибке")
				return
			}
			resp.Body.Close()
		}()
		return err
	}
}
