package document

import (
	"context"

	"crewhub/internal/shared/query"
)

type Repository interface {
	Save(ctx context.Context, d *Document) error
	Update(ctx context.Context, d *Document) error
	Delete(ctx context.Context, documentID uint) error
	GetByID(ctx context.Context, documentID uint) (*Document, error)
	GetBySID(ctx context.Context, sid string) (*Document, error)
	List(ctx context.Context, filter query.ListFilter) ([]*Document, int64, error)
}
