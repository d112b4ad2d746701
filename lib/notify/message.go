package notifyhandler

import (
	"fmt"
	"strings"

	"leave-desk-backend/models"
)

func requestSubject(rec models.RequestRecord) string {
	return fmt.Sprintf("New request %s from %s", rec.RequestID, rec.EmployeeName)
}

func decisionSubject(rec models.RequestRecord) string {
	return fmt.Sprintf("Request %s %s", rec.RequestID, strings.ToLower(rec.Status.ToHuman()))
}

func taskSubject(entry models.TaskEntry) string {
	return fmt.Sprintf("Task entry from %s: %s", entry.EmployeeName, entry.TaskKind)
}

func writeRequestDetails(sb *strings.Builder, rec models.RequestRecord) {
	fmt.Fprintf(sb, "Employee: %s (%s)\n", rec.EmployeeName, rec.EmployeeEmail)
	fmt.Fprintf(sb, "Employee ID: %s\n", rec.EmployeeID)
	fmt.Fprintf(sb, "Permission type: %s\n", rec.PermissionType)
	fmt.Fprintf(sb, "Leave type: %s\n", rec.LeaveType)
	fmt.Fprintf(sb, "Dates: %s\n", rec.Dates())
	if rec.RequestedOutTime != "" {
		fmt.Fprintf(sb, "Out time: %s\n", rec.RequestedOutTime)
	}
	if rec.RequestedInTime != "" {
		fmt.Fprintf(sb, "In time: %s\n", rec.RequestedInTime)
	}
	if rec.AlternateStaff != "" {
		fmt.Fprintf(sb, "Alternate staff: %s\n", rec.AlternateStaff)
	}
	fmt.Fprintf(sb, "Reason: %s\n", rec.Reason)
}

func buildRequestMessage(rec models.RequestRecord, approveURL, denyURL string) string {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "A new request %s is waiting for your decision.\n\n", rec.RequestID)
	writeRequestDetails(sb, rec)
	if approveURL != "" {
		fmt.Fprintf(sb, "\nApprove: %s\n", approveURL)
		fmt.Fprintf(sb, "Deny: %s\n", denyURL)
	}
	return sb.String()
}

func buildDecisionMessage(rec models.RequestRecord) string {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "Your request %s has been %s.\n\n", rec.RequestID, strings.ToLower(rec.Status.ToHuman()))
	writeRequestDetails(sb, rec)
	if rec.ManagerComment != "" {
		fmt.Fprintf(sb, "Manager comment: %s\n", rec.ManagerComment)
	}
	return sb.String()
}

func buildTaskMessage(entry models.TaskEntry) string {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "Task entry logged by %s (%s) at %s.\n\n", entry.EmployeeName, entry.EmployeeEmail, entry.Timestamp)
	fmt.Fprintf(sb, "Company: %s\n", entry.Company)
	fmt.Fprintf(sb, "Platform: %s\n", entry.Platform)
	fmt.Fprintf(sb, "Fulfillment: %s\n", entry.Fulfillment)
	fmt.Fprintf(sb, "Task: %s\n", entry.TaskKind)
	fmt.Fprintf(sb, "Quantity: %d\n", entry.Quantity)
	fmt.Fprintf(sb, "Claimed quantity: %d\n", entry.ClaimedQuantity)
	return sb.String()
}
