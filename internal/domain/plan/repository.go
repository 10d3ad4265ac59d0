package plan

import (
	"context"
	"time"

	"crewhub/internal/shared/query"
)

type Repository interface {
	// Save persists the plan with its feature links in one
	// transaction.
	Save(ctx context.Context, p *Plan) error
	// Update rewrites the plan row and replaces the feature links
	// wholesale in one transaction.
	Update(ctx context.Context, p *Plan) error
	GetByID(ctx context.Context, planID uint) (*Plan, error)
	GetBySID(ctx context.Context, sid string) (*Plan, error)
	List(ctx context.Context, filter query.ListFilter) ([]*Plan, int64, error)
	// ListActive returns the public catalog, unpaginated.
	ListActive(ctx context.Context) ([]*Plan, error)

	SaveFeature(ctx context.Context, f *Feature) error
	ListFeatures(ctx context.Context) ([]*Feature, error)
}

type SubscriptionRepository interface {
	Save(ctx context.Context, s *Subscription) error
	Update(ctx context.Context, s *Subscription) error
	GetByCompanyID(ctx context.Context, companyID uint) (*Subscription, error)
	// ListDueForBilling returns active subscriptions whose next billing
	// date is at or before the given instant.
	ListDueForBilling(ctx context.Context, before time.Time) ([]*Subscription, error)
}

type BillingHistoryRepository interface {
	Save(ctx context.Context, h *BillingHistory) error
	ListByCompanyID(ctx context.Context, companyID uint, filter query.ListFilter) ([]*BillingHistory, int64, error)
}
