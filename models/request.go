package models

import (
	"fmt"
	"strings"
)

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusApproved RequestStatus = "APPROVED"
	RequestStatusRejected RequestStatus = "REJECTED"
)

var requestStatusHumanName = map[RequestStatus]string{
	RequestStatusPending:  "Pending",
	RequestStatusApproved: "Approved",
	RequestStatusRejected: "Rejected",
}

func (s RequestStatus) ToHuman() string {
	if human, exist := requestStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s RequestStatus) IsPending() bool {
	return s == RequestStatusPending
}

func (s RequestStatus) IsDecision() bool {
	return s == RequestStatusApproved || s == RequestStatusRejected
}

// ParseRequestStatus приводит значение ячейки к статусу, пустая ячейка считается PENDING
func ParseRequestStatus(value string) RequestStatus {
	status := RequestStatus(strings.ToUpper(strings.TrimSpace(value)))
	if status == "" {
		return RequestStatusPending
	}
	return status
}

type ManagerAction string

const (
	ManagerActionApprove ManagerAction = "APPROVE"
	ManagerActionDeny    ManagerAction = "DENY"
)

// ActionForStatus действие руководителя, которое пишется в журнал вместе со статусом
func ActionForStatus(status RequestStatus) ManagerAction {
	if status == RequestStatusApproved {
		return ManagerActionApprove
	}
	return ManagerActionDeny
}

// StatusForAction статус для действия из ссылки в письме
func StatusForAction(action string) (RequestStatus, bool) {
	switch ManagerAction(strings.ToUpper(strings.TrimSpace(action))) {
	case ManagerActionApprove:
		return RequestStatusApproved, true
	case ManagerActionDeny:
		return RequestStatusRejected, true
	}
	return "", false
}

type RowType string

const (
	RowTypeRequest  RowType = "request"
	RowTypeDecision RowType = "decision"
)

const RequestIDPrefix = "REQ-"

// RequestDraft состояние формы заявки до создания.
// Даты в формате YYYY-MM-DD, время в формате HH:MM.
type RequestDraft struct {
	EmployeeName     string `json:"employee_name"`
	EmployeeID       string `json:"employee_id"`
	EmployeeEmail    string `json:"employee_email"`
	PermissionType   string `json:"permission_type"`
	LeaveType        string `json:"leave_type"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	RequestedInTime  string `json:"requested_in_time"`
	RequestedOutTime string `json:"requested_out_time"`
	Reason           string `json:"reason"`
	AlternateStaff   string `json:"alternate_staff"`
}

type RequestRecord struct {
	RequestID        string        `json:"request_id"`
	Type             RowType       `json:"type"`
	Status           RequestStatus `json:"status"`
	Timestamp        string        `json:"timestamp"`
	EmployeeName     string        `json:"employee_name"`
	EmployeeEmail    string        `json:"employee_email"`
	EmployeeID       string        `json:"employee_id"`
	StartDate        string        `json:"start_date"`
	EndDate          string        `json:"end_date"`
	Reason           string        `json:"reason"`
	ManagerComment   string        `json:"manager_comment"`
	ManagerAction    ManagerAction `json:"manager_action"`
	PermissionType   string        `json:"permission_type"`
	LeaveType        string        `json:"leave_type"`
	RequestedInTime  string        `json:"requested_in_time"`
	RequestedOutTime string        `json:"requested_out_time"`
	AlternateStaff   string        `json:"alternate_staff"`
}

func (r RequestRecord) IsPending() bool {
	return r.Status.IsPending()
}

// Dates значение колонки Dates журнала
func (r RequestRecord) Dates() string {
	return FormatDates(r.StartDate, r.EndDate)
}

func FormatDates(start, end string) string {
	return fmt.Sprintf("%s - %s", start, end)
}

// SplitDates разбирает колонку Dates, при отсутствии разделителя все значение считается началом
func SplitDates(value string) (start, end string) {
	parts := strings.SplitN(value, " - ", 2)
	start = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		end = strings.TrimSpace(parts[1])
	}
	return start, end
}
