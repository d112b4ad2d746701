package notifyhandler

import (
	"context"
	"net/http"

	"leave-desk-backend/lib/smtp"
	"leave-desk-backend/models"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Kind string

const (
	KindNewRequest Kind = "request"
	KindDecision   Kind = "decision"
	KindTask       Kind = "task"
)

// Result итог отправки: отправитель не видит, ушло ли письмо на самом деле
type Result string

const (
	ResultSent           Result = "SENT"
	ResultConfigMissing  Result = "CONFIG_MISSING"
	ResultTransportError Result = "TRANSPORT_ERROR"
)

func (r Result) IsSent() bool {
	return r == ResultSent
}

type Payload struct {
	Type       Kind                  `json:"type"`
	To         string                `json:"to,omitempty"`
	Subject    string                `json:"subject"`
	Message    string                `json:"message"`
	RequestID  string                `json:"request_id,omitempty"`
	Request    *models.RequestRecord `json:"request,omitempty"`
	Task       *models.TaskEntry     `json:"task,omitempty"`
	ApproveURL string                `json:"approve_url,omitempty"`
	DenyURL    string                `json:"deny_url,omitempty"`
}

type Provider interface {
	Notify(ctx context.Context, kind Kind, payload Payload) Result
	NotifyNewRequest(ctx context.Context, rec models.RequestRecord) Result
	NotifyDecision(ctx context.Context, rec models.RequestRecord) Result
	NotifyTask(ctx context.Context, entry models.TaskEntry) Result
}

var Instance Provider

const (
	RelayModeWebhook = "webhook"
	RelayModeSmtp    = "smtp"
)

type Config struct {
	Mode          string
	WebhookURL    string
	ApproverEmail string
	SenderEmail   string
	PublicURL     string
	LinkSecret    string
}

func NewHandler(cfg Config) {
	Instance = NewInstance(cfg)
}

func NewInstance(cfg Config) Provider {
	var r relay
	switch cfg.Mode {
	case RelayModeSmtp:
		r = smtpRelay{provider: smtp.Instance, sender: cfg.SenderEmail}
	default:
		r = webhookRelay{url: cfg.WebhookURL, client: &http.Client{}}
	}
	return impl{
		cfg:   cfg,
		relay: r,
	}
}

type impl struct {
	cfg   Config
	relay relay
}

func (i impl) Notify(ctx context.Context, kind Kind, payload Payload) Result {
	payload.Type = kind
	logger := log.
		WithField("type", kind).
		WithField("request_id", payload.RequestID)
	err := i.relay.Send(ctx, payload)
	if err != nil {
		if errors.Is(err, models.ErrConfigMissing) {
			logger.WithError(err).Warn("уведомление не отправлено: канал не настроен")
			return ResultConfigMissing
		}
		logger.WithError(err).Error("ошибка отправки уведомления")
		return ResultTransportError
	}
	logger.Info("уведомление отправлено")
	return ResultSent
}

func (i impl) NotifyNewRequest(ctx context.Context, rec models.RequestRecord) Result {
	approveURL, denyURL := "", ""
	if i.cfg.PublicURL != "" {
		var err error
		approveURL, err = BuildApprovalLink(i.cfg.PublicURL, i.cfg.LinkSecret, rec.RequestID, models.ManagerActionApprove)
		if err == nil {
			denyURL, err = BuildApprovalLink(i.cfg.PublicURL, i.cfg.LinkSecret, rec.RequestID, models.ManagerActionDeny)
		}
		if err != nil {
			log.WithError(err).WithField("request_id", rec.RequestID).Error("ошибка формирования ссылок решения")
			approveURL, denyURL = "", ""
		}
	}
	return i.Notify(ctx, KindNewRequest, Payload{
		To:         i.cfg.ApproverEmail,
		Subject:    requestSubject(rec),
		Message:    buildRequestMessage(rec, approveURL, denyURL),
		RequestID:  rec.RequestID,
		Request:    &rec,
		ApproveURL: approveURL,
		DenyURL:    denyURL,
	})
}

func (i impl) NotifyDecision(ctx context.Context, rec models.RequestRecord) Result {
	return i.Notify(ctx, KindDecision, Payload{
		To:        rec.EmployeeEmail,
		Subject:   decisionSubject(rec),
		Message:   buildDecisionMessage(rec),
		RequestID: rec.RequestID,
		Request:   &rec,
	})
}

func (i impl) NotifyTask(ctx context.Context, entry models.TaskEntry) Result {
	return i.Notify(ctx, KindTask, Payload{
		To:      i.cfg.ApproverEmail,
		Subject: taskSubject(entry),
		Message: buildTaskMessage(entry),
		Task:    &entry,
	})
}
