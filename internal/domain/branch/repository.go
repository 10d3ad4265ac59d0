package branch

import (
	"context"

	"crewhub/internal/shared/query"
)

type Repository interface {
	Save(ctx context.Context, b *Branch) error
	Update(ctx context.Context, b *Branch) error
	// Delete removes the branch and clears all employee assignments to
	// it in the same transaction.
	Delete(ctx context.Context, branchID uint) error
	GetByID(ctx context.Context, branchID uint) (*Branch, error)
	GetBySID(ctx context.Context, sid string) (*Branch, error)
	List(ctx context.Context, filter query.ListFilter) ([]*Branch, int64, error)

	// AssignEmployees adds membership rows; existing assignments are
	// left untouched.
	AssignEmployees(ctx context.Context, branchID uint, employeeIDs []uint) error
	UnassignEmployees(ctx context.Context, branchID uint, employeeIDs []uint) error
	GetEmployeeIDs(ctx context.Context, branchID uint) ([]uint, error)
}
