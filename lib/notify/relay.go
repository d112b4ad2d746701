package notifyhandler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"leave-desk-backend/lib/smtp"
	"leave-desk-backend/models"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type relay interface {
	Send(ctx context.Context, payload Payload) error
}

// webhookRelay один POST с JSON телом, ответ не разбирается
type webhookRelay struct {
	url    string
	client *http.Client
}

func (r webhookRelay) Send(ctx context.Context, payload Payload) error {
	if r.url == "" {
		return errors.Wrap(models.ErrConfigMissing, "не задан адрес webhook")
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "ошибка сериализации уведомления")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "ошибка формирования запроса уведомления")
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := r.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "ошибка отправки уведомления")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	log.
		WithField("type", payload.Type).
		WithField("status_code", resp.StatusCode).
		Debug("уведомление передано в webhook")
	return nil
}

// smtpRelay письмо адресату напрямую через smtp
type smtpRelay struct {
	provider smtp.Provider
	sender   string
}

func (r smtpRelay) Send(ctx context.Context, payload Payload) error {
	if r.provider == nil || !r.provider.IsConfigured() {
		return errors.Wrap(models.ErrConfigMissing, "smtp клиент не настроен")
	}
	if payload.To == "" {
		return errors.Wrap(models.ErrConfigMissing, "не задан адресат уведомления")
	}
	return r.provider.SendEMail(r.sender, payload.To, payload.Message, payload.Subject)
}
