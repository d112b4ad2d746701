package models

import "strings"

type UserRole string

const (
	EmployeeRole UserRole = "employee"
	ManagerRole  UserRole = "manager"
	AdminRole    UserRole = "admin"
)

var roleHumanName = map[UserRole]string{
	EmployeeRole: "Employee",
	ManagerRole:  "Manager",
	AdminRole:    "Administrator",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

// CanDecide руководитель и администратор принимают решения по заявкам
func (r UserRole) CanDecide() bool {
	return r == ManagerRole || r == AdminRole
}

// ParseUserRole неизвестные и пустые значения считаются сотрудником
func ParseUserRole(value string) UserRole {
	switch role := UserRole(strings.ToLower(strings.TrimSpace(value))); role {
	case ManagerRole, AdminRole:
		return role
	}
	return EmployeeRole
}

type EmployeeRecord struct {
	Email        string   `json:"email"`
	Name         string   `json:"name"`
	EmployeeCode string   `json:"employee_code"`
	Role         UserRole `json:"role"`
}

type LookupOptions struct {
	PermissionTypes []string `json:"permission_types"`
	LeaveTypes      []string `json:"leave_types"`
}
