package models

type TaskEntry struct {
	Timestamp       string `json:"timestamp"`
	EmployeeName    string `json:"employee_name"`
	EmployeeEmail   string `json:"employee_email"`
	Company         string `json:"company"`
	Platform        string `json:"platform"`
	Fulfillment     string `json:"fulfillment"`
	TaskKind        string `json:"task_kind"`
	Quantity        int    `json:"quantity"`
	ClaimedQuantity int    `json:"claimed_quantity"`
}
