package models

import "github.com/pkg/errors"

var (
	ErrConfigMissing     = errors.New("не задана конфигурация внешнего сервиса")
	ErrRemoteUnavailable = errors.New("внешний сервис недоступен")
	ErrNotFound          = errors.New("заявка не найдена")
	ErrValidationFailed  = errors.New("заявка заполнена некорректно")
	ErrDecisionInFlight  = errors.New("решение по заявке уже обрабатывается")
	ErrAlreadyDecided    = errors.New("по заявке уже принято решение")
)
