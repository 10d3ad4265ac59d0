package leavepolicy

import (
	"context"

	"crewhub/internal/shared/query"
)

type Repository interface {
	// Save persists the policy with its attachments in one
	// transaction.
	Save(ctx context.Context, p *LeavePolicy) error
	// Update rewrites the policy row and replaces all attachment rows
	// wholesale in one transaction.
	Update(ctx context.Context, p *LeavePolicy) error
	Delete(ctx context.Context, policyID uint) error
	GetByID(ctx context.Context, policyID uint) (*LeavePolicy, error)
	GetBySID(ctx context.Context, sid string) (*LeavePolicy, error)
	List(ctx context.Context, filter query.ListFilter) ([]*LeavePolicy, int64, error)
}
