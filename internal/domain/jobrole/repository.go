package jobrole

import (
	"context"

	"crewhub/internal/shared/query"
)

type Repository interface {
	Save(ctx context.Context, r *JobRole) error
	Update(ctx context.Context, r *JobRole) error
	// Delete removes the role and detaches it from employee job
	// information rows in the same transaction.
	Delete(ctx context.Context, roleID uint) error
	GetByID(ctx context.Context, roleID uint) (*JobRole, error)
	GetBySID(ctx context.Context, sid string) (*JobRole, error)
	List(ctx context.Context, filter query.ListFilter) ([]*JobRole, int64, error)

	// AssignToEmployees upserts the role onto each employee's job
	// information, keyed by employee.
	AssignToEmployees(ctx context.Context, roleID uint, employeeIDs []uint) error
}
