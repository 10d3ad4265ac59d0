package employee

import (
	"context"

	"crewhub/internal/shared/query"
)

type Repository interface {
	Save(ctx context.Context, e *Employee) error
	Update(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, employeeID uint) error
	GetByID(ctx context.Context, employeeID uint) (*Employee, error)
	GetBySID(ctx context.Context, sid string) (*Employee, error)
	GetByEmail(ctx context.Context, companyID uint, email string) (*Employee, error)
	GetByInviteToken(ctx context.Context, token string) (*Employee, error)
	List(ctx context.Context, filter query.ListFilter) ([]*Employee, int64, error)
}
