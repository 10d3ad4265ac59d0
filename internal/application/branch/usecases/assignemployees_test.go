package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewhub/internal/domain/branch"
	"crewhub/internal/domain/employee"
	"crewhub/internal/shared/errors"
)

func newTestBranch(t *testing.T, companyID uint) *branch.Branch {
	t.Helper()
	b, err := branch.NewBranch(companyID, "Soho", "12 Dean St", "GB", nil)
	require.NoError(t, err)
	require.NoError(t, b.SetID(10))
	return b
}

func newTestEmployee(t *testing.T, employeeID, companyID uint) *employee.Employee {
	t.Helper()
	e, err := employee.NewEmployee(companyID, "Ada", "Lovelace", "ada@example.com")
	require.NoError(t, err)
	require.NoError(t, e.SetID(employeeID))
	return e
}

func TestAssignEmployeesUseCase_Execute(t *testing.T) {
	t.Run("assigns employees of the same company", func(t *testing.T) {
		b := newTestBranch(t, 1)

		var assignedBranchID uint
		var assignedIDs []uint
		branchRepo := &mockBranchRepository{
			GetBySIDFunc: func(ctx context.Context, sid string) (*branch.Branch, error) {
				return b, nil
			},
			AssignEmployeesFunc: func(ctx context.Context, branchID uint, employeeIDs []uint) error {
				assignedBranchID = branchID
				assignedIDs = employeeIDs
				return nil
			},
		}
		employeeRepo := &mockEmployeeRepository{
			GetByIDFunc: func(ctx context.Context, employeeID uint) (*employee.Employee, error) {
				return newTestEmployee(t, employeeID, 1), nil
			},
		}

		uc := NewAssignEmployeesUseCase(branchRepo, employeeRepo, &mockLogger{})
		err := uc.Execute(context.Background(), AssignEmployeesCommand{
			BranchSID:   b.SID(),
			CompanyID:   1,
			EmployeeIDs: []uint{4, 5},
		})

		require.NoError(t, err)
		assert.Equal(t, uint(10), assignedBranchID)
		assert.Equal(t, []uint{4, 5}, assignedIDs)
	})

	t.Run("rejects employee from another company", func(t *testing.T) {
		b := newTestBranch(t, 1)

		branchRepo := &mockBranchRepository{
			GetBySIDFunc: func(ctx context.Context, sid string) (*branch.Branch, error) {
				return b, nil
			},
			AssignEmployeesFunc: func(ctx context.Context, branchID uint, employeeIDs []uint) error {
				t.Fatal("no assignments should be written")
				return nil
			},
		}
		employeeRepo := &mockEmployeeRepository{
			GetByIDFunc: func(ctx context.Context, employeeID uint) (*employee.Employee, error) {
				return newTestEmployee(t, employeeID, 2), nil
			},
		}

		uc := NewAssignEmployeesUseCase(branchRepo, employeeRepo, &mockLogger{})
		err := uc.Execute(context.Background(), AssignEmployeesCommand{
			BranchSID:   b.SID(),
			CompanyID:   1,
			EmployeeIDs: []uint{4},
		})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("hides branches of other companies", func(t *testing.T) {
		b := newTestBranch(t, 2)

		branchRepo := &mockBranchRepository{
			GetBySIDFunc: func(ctx context.Context, sid string) (*branch.Branch, error) {
				return b, nil
			},
		}

		uc := NewAssignEmployeesUseCase(branchRepo, &mockEmployeeRepository{}, &mockLogger{})
		err := uc.Execute(context.Background(), AssignEmployeesCommand{
			BranchSID:   b.SID(),
			CompanyID:   1,
			EmployeeIDs: []uint{4},
		})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("requires employee IDs", func(t *testing.T) {
		uc := NewAssignEmployeesUseCase(&mockBranchRepository{}, &mockEmployeeRepository{}, &mockLogger{})
		err := uc.Execute(context.Background(), AssignEmployeesCommand{
			BranchSID: "brn_abc",
			CompanyID: 1,
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestUnassignEmployeesUseCase_Execute(t *testing.T) {
	t.Run("removes assignments", func(t *testing.T) {
		b := newTestBranch(t, 1)

		var removed []uint
		branchRepo := &mockBranchRepository{
			GetBySIDFunc: func(ctx context.Context, sid string) (*branch.Branch, error) {
				return b, nil
			},
			UnassignEmployeesFunc: func(ctx context.Context, branchID uint, employeeIDs []uint) error {
				removed = employeeIDs
				return nil
			},
		}

		uc := NewUnassignEmployeesUseCase(branchRepo, &mockLogger{})
		err := uc.Execute(context.Background(), UnassignEmployeesCommand{
			BranchSID:   b.SID(),
			CompanyID:   1,
			EmployeeIDs: []uint{7},
		})

		require.NoError(t, err)
		assert.Equal(t, []uint{7}, removed)
	})
}
