package sheetschema

import (
	"strings"

	"leave-desk-backend/models"

	log "github.com/sirupsen/logrus"
)

// синонимы заголовков справочника сотрудников, в виде HeaderKey
var (
	emailHeaders = []string{"email", "emailid", "mail", "emailaddress"}
	nameHeaders  = []string{"name", "employeename", "fullname"}
	codeHeaders  = []string{"employeecode", "employeeid", "empcode", "empid", "code", "id"}
	roleHeaders  = []string{"role", "userrole", "access", "accesslevel"}
)

func findColumn(header []string, synonyms []string) int {
	keys := make(map[string]int, len(header))
	for idx, cell := range header {
		key := HeaderKey(cell)
		if _, exist := keys[key]; !exist {
			keys[key] = idx
		}
	}
	for _, synonym := range synonyms {
		if idx, ok := keys[synonym]; ok {
			return idx
		}
	}
	return -1
}

// ParseDirectory привязка колонок по названиям из первой строки.
// Без колонки роли справочник считается пустым.
func ParseDirectory(grid [][]string) []models.EmployeeRecord {
	result := []models.EmployeeRecord{}
	if len(grid) == 0 {
		return result
	}
	header := grid[0]
	emailCol := findColumn(header, emailHeaders)
	roleCol := findColumn(header, roleHeaders)
	if emailCol < 0 || roleCol < 0 {
		log.
			WithField("email_column", emailCol).
			WithField("role_column", roleCol).
			Warn("в справочнике сотрудников нет колонки email или роли, справочник не загружен")
		return result
	}
	nameCol := findColumn(header, nameHeaders)
	codeCol := findColumn(header, codeHeaders)
	for _, row := range grid[1:] {
		email := NormalizeEmail(cellAt(row, emailCol))
		if email == "" {
			continue
		}
		result = append(result, models.EmployeeRecord{
			Email:        email,
			Name:         strings.TrimSpace(cellAt(row, nameCol)),
			EmployeeCode: strings.TrimSpace(cellAt(row, codeCol)),
			Role:         models.ParseUserRole(cellAt(row, roleCol)),
		})
	}
	return result
}

func FindEmployee(list []models.EmployeeRecord, email string) (models.EmployeeRecord, bool) {
	email = NormalizeEmail(email)
	for _, rec := range list {
		if rec.Email == email {
			return rec, true
		}
	}
	return models.EmployeeRecord{}, false
}
