package leaverequesthandler

import (
	"encoding/binary"
	"strconv"
	"strings"
	"time"

	sheetschema "leave-desk-backend/lib/sheet-schema"
	"leave-desk-backend/models"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	dateLayout    = "2006-01-02"
	timeLayout    = "15:04"
	requestIDSize = 8
)

// NewRequestID идентификатор вида REQ-XXXXXXXX. Уникальность не гарантируется, только ожидается.
func NewRequestID() string {
	id := uuid.New()
	value := strings.ToUpper(strconv.FormatUint(binary.BigEndian.Uint64(id[:8]), 36))
	if len(value) < requestIDSize {
		value = strings.Repeat("0", requestIDSize-len(value)) + value
	}
	return models.RequestIDPrefix + value[len(value)-requestIDSize:]
}

func trimDraft(draft models.RequestDraft) models.RequestDraft {
	draft.EmployeeName = strings.TrimSpace(draft.EmployeeName)
	draft.EmployeeID = strings.TrimSpace(draft.EmployeeID)
	draft.EmployeeEmail = sheetschema.NormalizeEmail(draft.EmployeeEmail)
	draft.PermissionType = strings.TrimSpace(draft.PermissionType)
	draft.LeaveType = strings.TrimSpace(draft.LeaveType)
	draft.StartDate = strings.TrimSpace(draft.StartDate)
	draft.EndDate = strings.TrimSpace(draft.EndDate)
	draft.RequestedInTime = strings.TrimSpace(draft.RequestedInTime)
	draft.RequestedOutTime = strings.TrimSpace(draft.RequestedOutTime)
	draft.Reason = strings.TrimSpace(draft.Reason)
	draft.AlternateStaff = strings.TrimSpace(draft.AlternateStaff)
	return draft
}

type requiredField struct {
	name  string
	value string
}

// ValidateDraft проверка формы до любых обращений к таблице
func ValidateDraft(draft models.RequestDraft) error {
	required := []requiredField{
		{"employee_name", draft.EmployeeName},
		{"employee_id", draft.EmployeeID},
		{"employee_email", draft.EmployeeEmail},
		{"permission_type", draft.PermissionType},
		{"leave_type", draft.LeaveType},
		{"start_date", draft.StartDate},
		{"end_date", draft.EndDate},
		{"reason", draft.Reason},
	}
	inTime, outTime := RequiredTimes(draft)
	if inTime {
		required = append(required, requiredField{"requested_in_time", draft.RequestedInTime})
	}
	if outTime {
		required = append(required, requiredField{"requested_out_time", draft.RequestedOutTime})
	}
	missing := []string{}
	for _, field := range required {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return errors.Wrapf(models.ErrValidationFailed, "не заполнены поля: %v", strings.Join(missing, ", "))
	}

	start, err := time.Parse(dateLayout, draft.StartDate)
	if err != nil {
		return errors.Wrapf(models.ErrValidationFailed, "некорректная дата начала %q", draft.StartDate)
	}
	end, err := time.Parse(dateLayout, draft.EndDate)
	if err != nil {
		return errors.Wrapf(models.ErrValidationFailed, "некорректная дата окончания %q", draft.EndDate)
	}
	if end.Before(start) {
		return errors.Wrap(models.ErrValidationFailed, "дата окончания раньше даты начала")
	}
	for _, value := range []string{draft.RequestedInTime, draft.RequestedOutTime} {
		if value == "" {
			continue
		}
		if _, err = time.Parse(timeLayout, value); err != nil {
			return errors.Wrapf(models.ErrValidationFailed, "некорректное время %q", value)
		}
	}
	return nil
}

func (i impl) Create(draft models.RequestDraft) (models.RequestRecord, error) {
	draft = ApplyClassificationRules(trimDraft(draft))
	if err := ValidateDraft(draft); err != nil {
		return models.RequestRecord{}, err
	}
	return models.RequestRecord{
		RequestID:        i.newID(),
		Type:             models.RowTypeRequest,
		Status:           models.RequestStatusPending,
		Timestamp:        i.now().UTC().Format(time.RFC3339),
		EmployeeName:     draft.EmployeeName,
		EmployeeEmail:    draft.EmployeeEmail,
		EmployeeID:       draft.EmployeeID,
		StartDate:        draft.StartDate,
		EndDate:          draft.EndDate,
		Reason:           draft.Reason,
		PermissionType:   draft.PermissionType,
		LeaveType:        draft.LeaveType,
		RequestedInTime:  draft.RequestedInTime,
		RequestedOutTime: draft.RequestedOutTime,
		AlternateStaff:   draft.AlternateStaff,
	}, nil
}
