package usecases

import (
	"context"

	"crewhub/internal/domain/plan"
)

// CatalogCache fronts the active plan catalog. A miss returns
// (nil, nil); write failures are non-fatal.
type CatalogCache interface {
	GetActivePlans(ctx context.Context) ([]*plan.Plan, error)
	SetActivePlans(ctx context.Context, plans []*plan.Plan) error
	Invalidate(ctx context.Context) error
}

type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
