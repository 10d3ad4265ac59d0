package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewhub/internal/domain/company"
	"crewhub/internal/domain/plan"
	apperrors "crewhub/internal/shared/errors"
)

func newStoredCompany(t *testing.T) *company.Company {
	t.Helper()
	c, err := company.NewCompany("Acme Workforce", "ops@acme.example")
	require.NoError(t, err)
	require.NoError(t, c.SetID(1))
	return c
}

func newStoredPlan(t *testing.T, planID uint) *plan.Plan {
	t.Helper()
	p, err := plan.NewPlan("Growth", "mid tier", 4.0, 5, true, nil)
	require.NoError(t, err)
	require.NoError(t, p.SetID(planID))
	return p
}

func TestUpdateCompanyUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("profile update without plan change", func(t *testing.T) {
		c := newStoredCompany(t)
		updated := false

		uc := NewUpdateCompanyUseCase(
			&mockCompanyRepository{
				GetByIDFunc: func(ctx context.Context, companyID uint) (*company.Company, error) { return c, nil },
				UpdateFunc: func(ctx context.Context, got *company.Company) error {
					updated = true
					return nil
				},
			},
			&mockPlanRepository{},
			&mockSubscriptionRepository{
				GetByCompanyIDFunc: func(ctx context.Context, companyID uint) (*plan.Subscription, error) {
					t.Fatal("subscription lookup should not run without a plan change")
					return nil, nil
				},
			},
			&mockBillingHistoryRepository{},
			&mockTransactionManager{},
			&mockLogger{},
		)

		result, err := uc.Execute(ctx, UpdateCompanyCommand{
			CompanyID: 1,
			Name:      "Acme Ltd",
			WeeklyOff: []string{"SAT", "SUN"},
		})

		require.NoError(t, err)
		assert.True(t, updated)
		assert.False(t, result.PlanChanged)
		assert.Empty(t, result.InvoiceNo)
		assert.Equal(t, "Acme Ltd", c.Name())
	})

	t.Run("plan change provisions subscription and invoice", func(t *testing.T) {
		c := newStoredCompany(t)
		p := newStoredPlan(t, 3)
		var savedSub *plan.Subscription
		var savedHistory *plan.BillingHistory

		uc := NewUpdateCompanyUseCase(
			&mockCompanyRepository{
				GetByIDFunc: func(ctx context.Context, companyID uint) (*company.Company, error) { return c, nil },
			},
			&mockPlanRepository{
				GetBySIDFunc: func(ctx context.Context, sid string) (*plan.Plan, error) { return p, nil },
			},
			&mockSubscriptionRepository{
				GetByCompanyIDFunc: func(ctx context.Context, companyID uint) (*plan.Subscription, error) {
					return nil, apperrors.NewNotFoundError("subscription not found")
				},
				SaveFunc: func(ctx context.Context, s *plan.Subscription) error {
					savedSub = s
					return s.SetID(1)
				},
			},
			&mockBillingHistoryRepository{
				SaveFunc: func(ctx context.Context, h *plan.BillingHistory) error {
					savedHistory = h
					return h.SetID(1)
				},
			},
			&mockTransactionManager{},
			&mockLogger{},
		)

		result, err := uc.Execute(ctx, UpdateCompanyCommand{CompanyID: 1, PlanSID: p.SID()})

		require.NoError(t, err)
		assert.True(t, result.PlanChanged)
		assert.NotEmpty(t, result.InvoiceNo)

		require.NotNil(t, savedSub)
		assert.Equal(t, plan.SubscriptionPending, savedSub.Status())
		assert.Equal(t, 5, savedSub.Users())
		assert.Equal(t, 20.0, savedSub.TotalAmount())

		require.NotNil(t, savedHistory)
		assert.Equal(t, plan.BillingPending, savedHistory.Status())
		assert.Equal(t, 20.0, savedHistory.Amount())

		require.NotNil(t, c.PlanID())
		assert.Equal(t, uint(3), *c.PlanID())
	})

	t.Run("same plan is a no-op for billing", func(t *testing.T) {
		c := newStoredCompany(t)
		p := newStoredPlan(t, 3)
		_, err := c.ChangePlan(3)
		require.NoError(t, err)

		uc := NewUpdateCompanyUseCase(
			&mockCompanyRepository{
				GetByIDFunc: func(ctx context.Context, companyID uint) (*company.Company, error) { return c, nil },
			},
			&mockPlanRepository{
				GetBySIDFunc: func(ctx context.Context, sid string) (*plan.Plan, error) { return p, nil },
			},
			&mockSubscriptionRepository{},
			&mockBillingHistoryRepository{
				SaveFunc: func(ctx context.Context, h *plan.BillingHistory) error {
					t.Fatal("no invoice should be written when the plan is unchanged")
					return nil
				},
			},
			&mockTransactionManager{},
			&mockLogger{},
		)

		result, err := uc.Execute(ctx, UpdateCompanyCommand{CompanyID: 1, PlanSID: p.SID()})
		require.NoError(t, err)
		assert.False(t, result.PlanChanged)
	})

	t.Run("inactive plan is rejected", func(t *testing.T) {
		c := newStoredCompany(t)
		p, err := plan.NewPlan("Legacy", "retired", 1.0, 1, false, nil)
		require.NoError(t, err)
		require.NoError(t, p.SetID(8))

		uc := NewUpdateCompanyUseCase(
			&mockCompanyRepository{
				GetByIDFunc: func(ctx context.Context, companyID uint) (*company.Company, error) { return c, nil },
			},
			&mockPlanRepository{
				GetBySIDFunc: func(ctx context.Context, sid string) (*plan.Plan, error) { return p, nil },
			},
			&mockSubscriptionRepository{},
			&mockBillingHistoryRepository{},
			&mockTransactionManager{},
			&mockLogger{},
		)

		_, err = uc.Execute(ctx, UpdateCompanyCommand{CompanyID: 1, PlanSID: p.SID()})
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("billing failure aborts the whole update", func(t *testing.T) {
		c := newStoredCompany(t)
		p := newStoredPlan(t, 3)

		uc := NewUpdateCompanyUseCase(
			&mockCompanyRepository{
				GetByIDFunc: func(ctx context.Context, companyID uint) (*company.Company, error) { return c, nil },
			},
			&mockPlanRepository{
				GetBySIDFunc: func(ctx context.Context, sid string) (*plan.Plan, error) { return p, nil },
			},
			&mockSubscriptionRepository{
				GetByCompanyIDFunc: func(ctx context.Context, companyID uint) (*plan.Subscription, error) {
					return nil, apperrors.NewNotFoundError("subscription not found")
				},
			},
			&mockBillingHistoryRepository{
				SaveFunc: func(ctx context.Context, h *plan.BillingHistory) error {
					return apperrors.NewInternalError("insert failed")
				},
			},
			&mockTransactionManager{},
			&mockLogger{},
		)

		_, err := uc.Execute(ctx, UpdateCompanyCommand{CompanyID: 1, PlanSID: p.SID()})
		assert.Error(t, err)
	})
}

func TestUpdateBrandingUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("uploads logo and stores URL", func(t *testing.T) {
		c := newStoredCompany(t)
		updated := false

		uc := NewUpdateBrandingUseCase(
			&mockCompanyRepository{
				GetByIDFunc: func(ctx context.Context, companyID uint) (*company.Company, error) { return c, nil },
				UpdateFunc: func(ctx context.Context, got *company.Company) error {
					updated = true
					return nil
				},
			},
			&mockFileStorage{},
			&mockLogger{},
		)

		result, err := uc.Execute(ctx, UpdateBrandingCommand{
			CompanyID:   1,
			Kind:        "logo",
			FileName:    "logo.png",
			ContentType: "image/png",
			Body:        []byte{0x89, 0x50},
		})

		require.NoError(t, err)
		assert.True(t, updated)
		assert.Contains(t, result.URL, "logo.png")
		assert.Equal(t, result.URL, c.LogoURL())
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		uc := NewUpdateBrandingUseCase(&mockCompanyRepository{}, &mockFileStorage{}, &mockLogger{})
		_, err := uc.Execute(ctx, UpdateBrandingCommand{CompanyID: 1, Kind: "favicon", Body: []byte{1}})
		assert.True(t, apperrors.IsValidationError(err))
	})
}
