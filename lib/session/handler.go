package sessionhandler

import (
	"context"

	directoryhandler "leave-desk-backend/lib/directory"
	sheetschema "leave-desk-backend/lib/sheet-schema"
	"leave-desk-backend/models"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Identity данные из подтверждения личности провайдера авторизации
type Identity struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// Context сессия пользователя, передается явно во все обработчики
type Context struct {
	Identity Identity
	Role     models.UserRole
	Employee *models.EmployeeRecord
}

func (c Context) CanDecide() bool {
	return c.Role.CanDecide()
}

// DisplayName имя из справочника, иначе из подтверждения личности
func (c Context) DisplayName() string {
	if c.Employee != nil && c.Employee.Name != "" {
		return c.Employee.Name
	}
	return c.Identity.Name
}

func (c Context) EmployeeCode() string {
	if c.Employee != nil {
		return c.Employee.EmployeeCode
	}
	return ""
}

type Provider interface {
	Load(ctx context.Context, identity Identity) (*Context, error)
	ResolveRole(ctx context.Context, email string) models.UserRole
	Clear(email string)
	ClearAll()
}

var Instance Provider

func NewHandler(directory directoryhandler.Provider) {
	Instance = NewInstance(directory)
}

func NewInstance(directory directoryhandler.Provider) Provider {
	return impl{
		directory: directory,
		roles:     cache.New(cache.NoExpiration, 0),
	}
}

type impl struct {
	directory directoryhandler.Provider
	roles     *cache.Cache // [email]models.EmployeeRecord
}

func (i impl) Load(ctx context.Context, identity Identity) (*Context, error) {
	identity.Email = sheetschema.NormalizeEmail(identity.Email)
	if identity.Email == "" {
		return nil, errors.New("в подтверждении личности нет email")
	}
	employee := i.resolve(ctx, identity.Email)
	result := &Context{
		Identity: identity,
		Role:     models.EmployeeRole,
	}
	if employee != nil {
		result.Role = employee.Role
		result.Employee = employee
	}
	return result, nil
}

func (i impl) ResolveRole(ctx context.Context, email string) models.UserRole {
	employee := i.resolve(ctx, sheetschema.NormalizeEmail(email))
	if employee == nil {
		return models.EmployeeRole
	}
	return employee.Role
}

// resolve кешируются только найденные в справочнике сотрудники: при недоступной
// таблице пользователь не должен застрять с ролью по умолчанию
func (i impl) resolve(ctx context.Context, email string) *models.EmployeeRecord {
	if email == "" {
		return nil
	}
	if cached, ok := i.roles.Get(email); ok {
		rec := cached.(models.EmployeeRecord)
		return &rec
	}
	rec := i.directory.GetByEmail(ctx, email)
	if rec == nil {
		log.WithField("email", email).Info("сотрудник не найден в справочнике, назначена роль по умолчанию")
		return nil
	}
	i.roles.Set(email, *rec, cache.NoExpiration)
	return rec
}

func (i impl) Clear(email string) {
	i.roles.Delete(sheetschema.NormalizeEmail(email))
}

func (i impl) ClearAll() {
	i.roles.Flush()
}
