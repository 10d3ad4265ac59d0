package task

import (
	"context"

	"crewhub/internal/shared/query"
)

type Repository interface {
	Save(ctx context.Context, t *Task) error
	// Update rewrites the task row and replaces assignment rows
	// wholesale in one transaction.
	Update(ctx context.Context, t *Task) error
	Delete(ctx context.Context, taskID uint) error
	GetByID(ctx context.Context, taskID uint) (*Task, error)
	GetBySID(ctx context.Context, sid string) (*Task, error)
	List(ctx context.Context, filter query.ListFilter) ([]*Task, int64, error)
}
