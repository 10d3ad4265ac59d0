package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewhub/internal/domain/plan"
	"crewhub/internal/infrastructure/persistence/models"
	apperrors "crewhub/internal/shared/errors"
	"crewhub/internal/shared/query"
)

func createTestPlan(t *testing.T, name string, price float64, minimumUsers int, features []*plan.PlanFeature) *plan.Plan {
	t.Helper()
	p, err := plan.NewPlan(name, "test plan", price, minimumUsers, true, features)
	require.NoError(t, err)
	return p
}

func TestPlanRepository_SaveWithFeatures(t *testing.T) {
	database := setupTestDB(t)
	repo := NewPlanRepository(database)
	ctx := context.Background()

	maxSeats := 50
	pf1, err := plan.NewPlanFeature(1, true, &maxSeats)
	require.NoError(t, err)
	pf2, err := plan.NewPlanFeature(2, false, nil)
	require.NoError(t, err)

	p := createTestPlan(t, "Growth", 4.5, 5, []*plan.PlanFeature{pf1, pf2})
	err = repo.Save(ctx, p)
	assert.NoError(t, err)
	assert.NotZero(t, p.ID())

	found, err := repo.GetBySID(ctx, p.SID())
	require.NoError(t, err)
	assert.Equal(t, "Growth", found.Name())
	assert.Equal(t, 22.5, found.MinimumTotal())
	require.Len(t, found.Features(), 2)
	assert.True(t, found.Features()[0].HasLimit())
	require.NotNil(t, found.Features()[0].MaxLimit())
	assert.Equal(t, 50, *found.Features()[0].MaxLimit())
}

func TestPlanRepository_UpdateReplacesFeatureLinks(t *testing.T) {
	database := setupTestDB(t)
	repo := NewPlanRepository(database)
	ctx := context.Background()

	pf, err := plan.NewPlanFeature(1, false, nil)
	require.NoError(t, err)
	p := createTestPlan(t, "Starter", 2.0, 3, []*plan.PlanFeature{pf})
	require.NoError(t, repo.Save(ctx, p))

	replacement, err := plan.NewPlanFeature(9, false, nil)
	require.NoError(t, err)
	require.NoError(t, p.Update("Starter Plus", "more stuff", 3.0, 3, true))
	p.ReplaceFeatures([]*plan.PlanFeature{replacement})

	err = repo.Update(ctx, p)
	assert.NoError(t, err)

	found, err := repo.GetByID(ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, "Starter Plus", found.Name())
	require.Len(t, found.Features(), 1)
	assert.Equal(t, uint(9), found.Features()[0].FeatureID())

	var count int64
	require.NoError(t, database.Model(&models.PlanFeatureModel{}).Where("plan_id = ?", p.ID()).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestPlanRepository_ListActive(t *testing.T) {
	database := setupTestDB(t)
	repo := NewPlanRepository(database)
	ctx := context.Background()

	cheap := createTestPlan(t, "Basic", 1.0, 1, nil)
	require.NoError(t, repo.Save(ctx, cheap))
	pricey := createTestPlan(t, "Enterprise", 9.0, 25, nil)
	require.NoError(t, repo.Save(ctx, pricey))

	retired := createTestPlan(t, "Legacy", 0.5, 1, nil)
	require.NoError(t, repo.Save(ctx, retired))
	require.NoError(t, retired.Update("Legacy", "retired", 0.5, 1, false))
	require.NoError(t, repo.Update(ctx, retired))

	plans, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, "Basic", plans[0].Name())
	assert.Equal(t, "Enterprise", plans[1].Name())
}

func TestPlanRepository_Features(t *testing.T) {
	database := setupTestDB(t)
	repo := NewPlanRepository(database)
	ctx := context.Background()

	f, err := plan.NewFeature("Shift scheduling", true)
	require.NoError(t, err)
	require.NoError(t, repo.SaveFeature(ctx, f))
	assert.NotZero(t, f.ID())

	dup, err := plan.NewFeature("Shift scheduling", true)
	require.NoError(t, err)
	err = repo.SaveFeature(ctx, dup)
	assert.True(t, apperrors.IsConflictError(err))

	features, err := repo.ListFeatures(ctx)
	require.NoError(t, err)
	require.Len(t, features, 1)
	assert.Equal(t, "Shift scheduling", features[0].Name())
}

func TestSubscriptionRepository(t *testing.T) {
	database := setupTestDB(t)
	planRepo := NewPlanRepository(database)
	repo := NewSubscriptionRepository(database)
	ctx := context.Background()

	p := createTestPlan(t, "Growth", 4.0, 5, nil)
	require.NoError(t, planRepo.Save(ctx, p))

	nextBilling := time.Now().AddDate(0, 1, 0)
	sub, err := plan.NewPendingSubscription(1, p, nextBilling)
	require.NoError(t, err)

	err = repo.Save(ctx, sub)
	assert.NoError(t, err)
	assert.Equal(t, 5, sub.Users())
	assert.Equal(t, 20.0, sub.TotalAmount())

	t.Run("one subscription per company", func(t *testing.T) {
		again, err := plan.NewPendingSubscription(1, p, nextBilling)
		require.NoError(t, err)
		err = repo.Save(ctx, again)
		assert.True(t, apperrors.IsConflictError(err))
	})

	t.Run("activate and persist", func(t *testing.T) {
		require.NoError(t, sub.Activate())
		require.NoError(t, repo.Update(ctx, sub))

		found, err := repo.GetByCompanyID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, plan.SubscriptionActive, found.Status())
		assert.Equal(t, 5, found.Users())
	})

	t.Run("missing subscription", func(t *testing.T) {
		_, err := repo.GetByCompanyID(ctx, 42)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestBillingHistoryRepository(t *testing.T) {
	database := setupTestDB(t)
	repo := NewBillingHistoryRepository(database)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		h, err := plan.NewBillingHistory(1, 2, 20.0)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, h))
		assert.Contains(t, h.InvoiceNo(), "inv_")
	}
	other, err := plan.NewBillingHistory(7, 2, 5.0)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, other))

	histories, total, err := repo.ListByCompanyID(ctx, 1, query.NewListFilter(1))
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, histories, 3)
	assert.Equal(t, plan.BillingPending, histories[0].Status())
}
