package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewhub/internal/domain/plan"
)

func newCatalogPlan(t *testing.T, name string, price float64) *plan.Plan {
	t.Helper()
	p, err := plan.NewPlan(name, "", price, 1, true, nil)
	require.NoError(t, err)
	return p
}

func TestListPlansUseCase_Execute(t *testing.T) {
	t.Run("serves from cache on hit", func(t *testing.T) {
		cached := []*plan.Plan{newCatalogPlan(t, "Starter", 4)}

		cache := &mockCatalogCache{
			GetActivePlansFunc: func(ctx context.Context) ([]*plan.Plan, error) {
				return cached, nil
			},
		}
		repo := &mockPlanRepository{
			ListActiveFunc: func(ctx context.Context) ([]*plan.Plan, error) {
				t.Fatal("database should not be hit on a cache hit")
				return nil, nil
			},
		}

		uc := NewListPlansUseCase(repo, cache, &mockLogger{})
		plans, err := uc.Execute(context.Background())

		require.NoError(t, err)
		assert.Equal(t, cached, plans)
	})

	t.Run("falls back to database and fills cache", func(t *testing.T) {
		fromDB := []*plan.Plan{newCatalogPlan(t, "Starter", 4), newCatalogPlan(t, "Growth", 9)}

		var written []*plan.Plan
		cache := &mockCatalogCache{
			SetActivePlansFunc: func(ctx context.Context, plans []*plan.Plan) error {
				written = plans
				return nil
			},
		}
		repo := &mockPlanRepository{
			ListActiveFunc: func(ctx context.Context) ([]*plan.Plan, error) {
				return fromDB, nil
			},
		}

		uc := NewListPlansUseCase(repo, cache, &mockLogger{})
		plans, err := uc.Execute(context.Background())

		require.NoError(t, err)
		assert.Equal(t, fromDB, plans)
		assert.Equal(t, fromDB, written)
	})

	t.Run("cache errors do not fail the request", func(t *testing.T) {
		fromDB := []*plan.Plan{newCatalogPlan(t, "Starter", 4)}

		cache := &mockCatalogCache{
			GetActivePlansFunc: func(ctx context.Context) ([]*plan.Plan, error) {
				return nil, fmt.Errorf("redis down")
			},
			SetActivePlansFunc: func(ctx context.Context, plans []*plan.Plan) error {
				return fmt.Errorf("redis down")
			},
		}
		repo := &mockPlanRepository{
			ListActiveFunc: func(ctx context.Context) ([]*plan.Plan, error) {
				return fromDB, nil
			},
		}

		uc := NewListPlansUseCase(repo, cache, &mockLogger{})
		plans, err := uc.Execute(context.Background())

		require.NoError(t, err)
		assert.Equal(t, fromDB, plans)
	})
}

func TestCreatePlanUseCase_Execute(t *testing.T) {
	t.Run("creates plan and invalidates catalog", func(t *testing.T) {
		var invalidated bool
		cache := &mockCatalogCache{
			InvalidateFunc: func(ctx context.Context) error {
				invalidated = true
				return nil
			},
		}

		limit := 25
		uc := NewCreatePlanUseCase(&mockPlanRepository{}, cache, &mockLogger{})
		p, err := uc.Execute(context.Background(), CreatePlanCommand{
			Name:         "Growth",
			Price:        9,
			MinimumUsers: 5,
			Active:       true,
			Features:     []PlanFeatureInput{{FeatureID: 2, HasLimit: true, MaxLimit: &limit}},
		})

		require.NoError(t, err)
		assert.True(t, invalidated)
		assert.Equal(t, "Growth", p.Name())
		assert.Equal(t, 45.0, p.MinimumTotal())
		require.Len(t, p.Features(), 1)
	})

	t.Run("rejects invalid plan", func(t *testing.T) {
		uc := NewCreatePlanUseCase(&mockPlanRepository{}, &mockCatalogCache{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), CreatePlanCommand{Price: 9})

		require.Error(t, err)
	})
}
