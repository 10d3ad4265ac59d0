package usecases

import (
	"context"
	"time"

	"crewhub/internal/domain/plan"
	"crewhub/internal/shared/logger"
	"crewhub/internal/shared/query"
)

type mockPlanRepository struct {
	SaveFunc         func(ctx context.Context, p *plan.Plan) error
	UpdateFunc       func(ctx context.Context, p *plan.Plan) error
	GetByIDFunc      func(ctx context.Context, planID uint) (*plan.Plan, error)
	GetBySIDFunc     func(ctx context.Context, sid string) (*plan.Plan, error)
	ListFunc         func(ctx context.Context, filter query.ListFilter) ([]*plan.Plan, int64, error)
	ListActiveFunc   func(ctx context.Context) ([]*plan.Plan, error)
	SaveFeatureFunc  func(ctx context.Context, f *plan.Feature) error
	ListFeaturesFunc func(ctx context.Context) ([]*plan.Feature, error)
}

func (m *mockPlanRepository) Save(ctx context.Context, p *plan.Plan) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockPlanRepository) Update(ctx context.Context, p *plan.Plan) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockPlanRepository) GetByID(ctx context.Context, planID uint) (*plan.Plan, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, planID)
	}
	return nil, nil
}

func (m *mockPlanRepository) GetBySID(ctx context.Context, sid string) (*plan.Plan, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockPlanRepository) List(ctx context.Context, filter query.ListFilter) ([]*plan.Plan, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockPlanRepository) ListActive(ctx context.Context) ([]*plan.Plan, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockPlanRepository) SaveFeature(ctx context.Context, f *plan.Feature) error {
	if m.SaveFeatureFunc != nil {
		return m.SaveFeatureFunc(ctx, f)
	}
	return nil
}

func (m *mockPlanRepository) ListFeatures(ctx context.Context) ([]*plan.Feature, error) {
	if m.ListFeaturesFunc != nil {
		return m.ListFeaturesFunc(ctx)
	}
	return nil, nil
}

type mockCatalogCache struct {
	GetActivePlansFunc func(ctx context.Context) ([]*plan.Plan, error)
	SetActivePlansFunc func(ctx context.Context, plans []*plan.Plan) error
	InvalidateFunc     func(ctx context.Context) error
}

func (m *mockCatalogCache) GetActivePlans(ctx context.Context) ([]*plan.Plan, error) {
	if m.GetActivePlansFunc != nil {
		return m.GetActivePlansFunc(ctx)
	}
	return nil, nil
}

func (m *mockCatalogCache) SetActivePlans(ctx context.Context, plans []*plan.Plan) error {
	if m.SetActivePlansFunc != nil {
		return m.SetActivePlansFunc(ctx, plans)
	}
	return nil
}

func (m *mockCatalogCache) Invalidate(ctx context.Context) error {
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx)
	}
	return nil
}

type mockSubscriptionRepository struct {
	SaveFunc              func(ctx context.Context, s *plan.Subscription) error
	UpdateFunc            func(ctx context.Context, s *plan.Subscription) error
	GetByCompanyIDFunc    func(ctx context.Context, companyID uint) (*plan.Subscription, error)
	ListDueForBillingFunc func(ctx context.Context, before time.Time) ([]*plan.Subscription, error)
}

func (m *mockSubscriptionRepository) Save(ctx context.Context, s *plan.Subscription) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, s)
	}
	return nil
}

func (m *mockSubscriptionRepository) Update(ctx context.Context, s *plan.Subscription) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, s)
	}
	return nil
}

func (m *mockSubscriptionRepository) GetByCompanyID(ctx context.Context, companyID uint) (*plan.Subscription, error) {
	if m.GetByCompanyIDFunc != nil {
		return m.GetByCompanyIDFunc(ctx, companyID)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) ListDueForBilling(ctx context.Context, before time.Time) ([]*plan.Subscription, error) {
	if m.ListDueForBillingFunc != nil {
		return m.ListDueForBillingFunc(ctx, before)
	}
	return nil, nil
}

type mockBillingHistoryRepository struct {
	SaveFunc            func(ctx context.Context, h *plan.BillingHistory) error
	ListByCompanyIDFunc func(ctx context.Context, companyID uint, filter query.ListFilter) ([]*plan.BillingHistory, int64, error)
}

func (m *mockBillingHistoryRepository) Save(ctx context.Context, h *plan.BillingHistory) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, h)
	}
	return nil
}

func (m *mockBillingHistoryRepository) ListByCompanyID(ctx context.Context, companyID uint, filter query.ListFilter) ([]*plan.BillingHistory, int64, error) {
	if m.ListByCompanyIDFunc != nil {
		return m.ListByCompanyIDFunc(ctx, companyID, filter)
	}
	return nil, 0, nil
}

type mockTransactionManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
