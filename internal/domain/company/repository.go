package company

import "context"

type Repository interface {
	Save(ctx context.Context, c *Company) error
	Update(ctx context.Context, c *Company) error
	GetByID(ctx context.Context, companyID uint) (*Company, error)
	GetBySID(ctx context.Context, sid string) (*Company, error)
}
