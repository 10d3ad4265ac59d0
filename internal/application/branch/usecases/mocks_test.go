package usecases

import (
	"context"

	"crewhub/internal/domain/branch"
	"crewhub/internal/domain/employee"
	"crewhub/internal/shared/logger"
	"crewhub/internal/shared/query"
)

type mockBranchRepository struct {
	SaveFunc              func(ctx context.Context, b *branch.Branch) error
	UpdateFunc            func(ctx context.Context, b *branch.Branch) error
	DeleteFunc            func(ctx context.Context, branchID uint) error
	GetByIDFunc           func(ctx context.Context, branchID uint) (*branch.Branch, error)
	GetBySIDFunc          func(ctx context.Context, sid string) (*branch.Branch, error)
	ListFunc              func(ctx context.Context, filter query.ListFilter) ([]*branch.Branch, int64, error)
	AssignEmployeesFunc   func(ctx context.Context, branchID uint, employeeIDs []uint) error
	UnassignEmployeesFunc func(ctx context.Context, branchID uint, employeeIDs []uint) error
	GetEmployeeIDsFunc    func(ctx context.Context, branchID uint) ([]uint, error)
}

func (m *mockBranchRepository) Save(ctx context.Context, b *branch.Branch) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, b)
	}
	return nil
}

func (m *mockBranchRepository) Update(ctx context.Context, b *branch.Branch) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, b)
	}
	return nil
}

func (m *mockBranchRepository) Delete(ctx context.Context, branchID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, branchID)
	}
	return nil
}

func (m *mockBranchRepository) GetByID(ctx context.Context, branchID uint) (*branch.Branch, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, branchID)
	}
	return nil, nil
}

func (m *mockBranchRepository) GetBySID(ctx context.Context, sid string) (*branch.Branch, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockBranchRepository) List(ctx context.Context, filter query.ListFilter) ([]*branch.Branch, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockBranchRepository) AssignEmployees(ctx context.Context, branchID uint, employeeIDs []uint) error {
	if m.AssignEmployeesFunc != nil {
		return m.AssignEmployeesFunc(ctx, branchID, employeeIDs)
	}
	return nil
}

func (m *mockBranchRepository) UnassignEmployees(ctx context.Context, branchID uint, employeeIDs []uint) error {
	if m.UnassignEmployeesFunc != nil {
		return m.UnassignEmployeesFunc(ctx, branchID, employeeIDs)
	}
	return nil
}

func (m *mockBranchRepository) GetEmployeeIDs(ctx context.Context, branchID uint) ([]uint, error) {
	if m.GetEmployeeIDsFunc != nil {
		return m.GetEmployeeIDsFunc(ctx, branchID)
	}
	return nil, nil
}

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
