package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewhub/internal/domain/plan"
	"crewhub/internal/shared/logger"
)

// nopLogger is a no-op logger for testing.
type nopLogger struct{}

func newNopLogger() logger.Interface { return &nopLogger{} }

func (l *nopLogger) Debug(msg string, args ...any)                   {}
func (l *nopLogger) Info(msg string, args ...any)                    {}
func (l *nopLogger) Warn(msg string, args ...any)                    {}
func (l *nopLogger) Error(msg string, args ...any)                   {}
func (l *nopLogger) With(args ...any) logger.Interface               { return l }
func (l *nopLogger) Named(name string) logger.Interface              { return l }
func (l *nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (l *nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func setupCatalogCache(t *testing.T) (*RedisPlanCatalogCache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisPlanCatalogCache(client, newNopLogger()), mr
}

func newCatalogPlan(t *testing.T, planID uint, name string, price float64) *plan.Plan {
	t.Helper()

	maxSeats := 25
	features := []*plan.PlanFeature{
		plan.ReconstructPlanFeature(1, true, &maxSeats),
		plan.ReconstructPlanFeature(2, false, nil),
	}
	now := time.Now().UTC().Truncate(time.Second)
	p, err := plan.ReconstructPlan(planID, "pln_test", name, "test plan", price, 5, true, features, now, now)
	require.NoError(t, err)
	return p
}

func TestRedisPlanCatalogCache_MissReturnsNil(t *testing.T) {
	cache, _ := setupCatalogCache(t)

	plans, err := cache.GetActivePlans(context.Background())
	require.NoError(t, err)
	assert.Nil(t, plans)
}

func TestRedisPlanCatalogCache_RoundTrip(t *testing.T) {
	cache, _ := setupCatalogCache(t)
	ctx := context.Background()

	stored := newCatalogPlan(t, 7, "Growth", 12.5)
	require.NoError(t, cache.SetActivePlans(ctx, []*plan.Plan{stored}))

	plans, err := cache.GetActivePlans(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 1)

	got := plans[0]
	assert.Equal(t, uint(7), got.ID())
	assert.Equal(t, "pln_test", got.SID())
	assert.Equal(t, "Growth", got.Name())
	assert.Equal(t, 12.5, got.Price())
	assert.Equal(t, 5, got.MinimumUsers())
	require.Len(t, got.Features(), 2)
	assert.Equal(t, uint(1), got.Features()[0].FeatureID())
	require.NotNil(t, got.Features()[0].MaxLimit())
	assert.Equal(t, 25, *got.Features()[0].MaxLimit())
	assert.Nil(t, got.Features()[1].MaxLimit())
}

func TestRedisPlanCatalogCache_Invalidate(t *testing.T) {
	cache, _ := setupCatalogCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetActivePlans(ctx, []*plan.Plan{newCatalogPlan(t, 7, "Growth", 12.5)}))
	require.NoError(t, cache.Invalidate(ctx))

	plans, err := cache.GetActivePlans(ctx)
	require.NoError(t, err)
	assert.Nil(t, plans)
}

func TestRedisPlanCatalogCache_CorruptEntryTreatedAsMiss(t *testing.T) {
	cache, mr := setupCatalogCache(t)
	ctx := context.Background()

	mr.Set(catalogKey, "{not json")

	plans, err := cache.GetActivePlans(ctx)
	require.NoError(t, err)
	assert.Nil(t, plans)

	// The corrupt key is dropped so the next fill is clean.
	assert.False(t, mr.Exists(catalogKey))
}
