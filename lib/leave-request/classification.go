package leaverequesthandler

import (
	sheetschema "leave-desk-backend/lib/sheet-schema"
	"leave-desk-backend/models"
)

const PermissionTypePermission = "permission"

// окно времени, которое требует вид отпуска с типом "permission"
type timeWindow struct {
	in  bool
	out bool
}

var permissionOnlyLeaveTypes = map[string]timeWindow{
	sheetschema.HeaderKey("Late In Permission"):    {in: true},
	sheetschema.HeaderKey("Early Out Permission"):  {out: true},
	sheetschema.HeaderKey("In Between Permission"): {in: true, out: true},
}

func IsPermission(permissionType string) bool {
	return sheetschema.HeaderKey(permissionType) == PermissionTypePermission
}

func IsPermissionOnly(leaveType string) bool {
	_, ok := permissionOnlyLeaveTypes[sheetschema.HeaderKey(leaveType)]
	return ok
}

// RequiredTimes какие из полей времени обязательны для текущей классификации
func RequiredTimes(draft models.RequestDraft) (inTime, outTime bool) {
	if !IsPermission(draft.PermissionType) {
		return false, false
	}
	window := permissionOnlyLeaveTypes[sheetschema.HeaderKey(draft.LeaveType)]
	return window.in, window.out
}

// ApplyClassificationRules приводит поля времени и вид отпуска в соответствие с типом заявки.
// Вызывается при каждом изменении типа или вида, а не только при отправке.
func ApplyClassificationRules(draft models.RequestDraft) models.RequestDraft {
	if IsPermission(draft.PermissionType) {
		inTime, outTime := RequiredTimes(draft)
		if !inTime {
			draft.RequestedInTime = ""
		}
		if !outTime {
			draft.RequestedOutTime = ""
		}
		return draft
	}
	draft.RequestedInTime = ""
	draft.RequestedOutTime = ""
	if IsPermissionOnly(draft.LeaveType) {
		draft.LeaveType = ""
	}
	return draft
}

func SetPermissionType(draft models.RequestDraft, permissionType string) models.RequestDraft {
	draft.PermissionType = permissionType
	return ApplyClassificationRules(draft)
}

func SetLeaveType(draft models.RequestDraft, leaveType string) models.RequestDraft {
	draft.LeaveType = leaveType
	return ApplyClassificationRules(draft)
}
