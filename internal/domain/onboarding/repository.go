package onboarding

import (
	"context"

	"crewhub/internal/shared/query"
)

type Repository interface {
	Save(ctx context.Context, f *Flow) error
	// Update rewrites the flow row and replaces its steps wholesale in
	// the same transaction.
	Update(ctx context.Context, f *Flow) error
	Delete(ctx context.Context, flowID uint) error
	GetBySID(ctx context.Context, sid string) (*Flow, error)
	List(ctx context.Context, filter query.ListFilter) ([]*Flow, int64, error)
}
