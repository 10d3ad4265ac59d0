package usecases

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"crewhub/internal/domain/employee"
	"crewhub/internal/domain/jobrole"
	"crewhub/internal/domain/user"
	"crewhub/internal/shared/logger"
	"crewhub/internal/shared/query"
)

type mockEmployeeRepository struct {
	SaveFunc             func(ctx context.Context, e *employee.Employee) error
	UpdateFunc           func(ctx context.Context, e *employee.Employee) error
	DeleteFunc           func(ctx context.Context, employeeID uint) error
	GetByIDFunc          func(ctx context.Context, employeeID uint) (*employee.Employee, error)
	GetBySIDFunc         func(ctx context.Context, sid string) (*employee.Employee, error)
	GetByEmailFunc       func(ctx context.Context, companyID uint, email string) (*employee.Employee, error)
	GetByInviteTokenFunc func(ctx context.Context, token string) (*employee.Employee, error)
	ListFunc             func(ctx context.Context, filter query.ListFilter) ([]*employee.Employee, int64, error)
}

func (m *mockEmployeeRepository) Save(ctx context.Context, e *employee.Employee) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, e)
	}
	return nil
}

func (m *mockEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, e)
	}
	return nil
}

func (m *mockEmployeeRepository) Delete(ctx context.Context, employeeID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, employeeID)
	}
	return nil
}

func (m *mockEmployeeRepository) GetByID(ctx context.Context, employeeID uint) (*employee.Employee, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, employeeID)
	}
	return nil, nil
}

func (m *mockEmployeeRepository) GetBySID(ctx context.Context, sid string) (*employee.Employee, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockEmployeeRepository) GetByEmail(ctx context.Context, companyID uint, email string) (*employee.Employee, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, companyID, email)
	}
	return nil, nil
}

func (m *mockEmployeeRepository) GetByInviteToken(ctx context.Context, token string) (*employee.Employee, error) {
	if m.GetByInviteTokenFunc != nil {
		return m.GetByInviteTokenFunc(ctx, token)
	}
	return nil, nil
}

func (m *mockEmployeeRepository) List(ctx context.Context, filter query.ListFilter) ([]*employee.Employee, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockJobRoleRepository struct {
	SaveFunc              func(ctx context.Context, r *jobrole.JobRole) error
	UpdateFunc            func(ctx context.Context, r *jobrole.JobRole) error
	DeleteFunc            func(ctx context.Context, roleID uint) error
	GetByIDFunc           func(ctx context.Context, roleID uint) (*jobrole.JobRole, error)
	GetBySIDFunc          func(ctx context.Context, sid string) (*jobrole.JobRole, error)
	ListFunc              func(ctx context.Context, filter query.ListFilter) ([]*jobrole.JobRole, int64, error)
	AssignToEmployeesFunc func(ctx context.Context, roleID uint, employeeIDs []uint) error
}

func (m *mockJobRoleRepository) Save(ctx context.Context, r *jobrole.JobRole) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return nil
}

func (m *mockJobRoleRepository) Update(ctx context.Context, r *jobrole.JobRole) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockJobRoleRepository) Delete(ctx context.Context, roleID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, roleID)
	}
	return nil
}

func (m *mockJobRoleRepository) GetByID(ctx context.Context, roleID uint) (*jobrole.JobRole, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, roleID)
	}
	return nil, nil
}

func (m *mockJobRoleRepository) GetBySID(ctx context.Context, sid string) (*jobrole.JobRole, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockJobRoleRepository) List(ctx context.Context, filter query.ListFilter) ([]*jobrole.JobRole, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockJobRoleRepository) AssignToEmployees(ctx context.Context, roleID uint, employeeIDs []uint) error {
	if m.AssignToEmployeesFunc != nil {
		return m.AssignToEmployeesFunc(ctx, roleID, employeeIDs)
	}
	return nil
}

type mockUserRepository struct {
	SaveFunc       func(ctx context.Context, u *user.User) error
	UpdateFunc     func(ctx context.Context, u *user.User) error
	GetByIDFunc    func(ctx context.Context, userID uint) (*user.User, error)
	GetBySIDFunc   func(ctx context.Context, sid string) (*user.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) GetBySID(ctx context.Context, sid string) (*user.User, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

type mockTransactionManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockInviteMailer struct {
	SendInviteEmailFunc func(to, name, token string) error
}

func (m *mockInviteMailer) SendInviteEmail(to, name, token string) error {
	if m.SendInviteEmailFunc != nil {
		return m.SendInviteEmailFunc(to, name, token)
	}
	return nil
}

type mockPasswordHasher struct{}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return string(hash), err
}

func (m *mockPasswordHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
