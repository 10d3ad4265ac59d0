package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/redis/go-redis/v9"

	"crewhub/internal/domain/plan"
	"crewhub/internal/shared/logger"
)

const (
	catalogKey       = "plan:catalog:active"
	baseCatalogTTL   = 30 * time.Minute
	catalogTTLJitter = 10 * time.Minute // TTL range: 30-40 min (anti-stampede)
)

type cachedPlanFeature struct {
	FeatureID uint `json:"feature_id"`
	HasLimit  bool `json:"has_limit"`
	MaxLimit  *int `json:"max_limit,omitempty"`
}

type cachedPlan struct {
	ID           uint                `json:"id"`
	SID          string              `json:"sid"`
	Name         string              `json:"name"`
	Description  string              `json:"description"`
	Price        float64             `json:"price"`
	MinimumUsers int                 `json:"minimum_users"`
	Active       bool                `json:"active"`
	Features     []cachedPlanFeature `json:"features"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// RedisPlanCatalogCache fronts the active plan catalog with a single
// JSON-serialized Redis key. A miss is reported as (nil, nil).
type RedisPlanCatalogCache struct {
	client *redis.Client
	logger logger.Interface
}

func NewRedisPlanCatalogCache(client *redis.Client, logger logger.Interface) *RedisPlanCatalogCache {
	return &RedisPlanCatalogCache{
		client: client,
		logger: logger,
	}
}

func (c *RedisPlanCatalogCache) GetActivePlans(ctx context.Context) ([]*plan.Plan, error) {
	raw, err := c.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // Cache miss
		}
		return nil, fmt.Errorf("failed to get plan catalog from cache: %w", err)
	}

	var cached []cachedPlan
	if err := json.Unmarshal(raw, &cached); err != nil {
		// A corrupt entry is treated as a miss so the DB path can repopulate it.
		c.logger.Warnw("plan catalog cache entry is corrupt, dropping it", "error", err)
		_ = c.client.Del(ctx, catalogKey).Err()
		return nil, nil
	}

	plans := make([]*plan.Plan, 0, len(cached))
	for _, cp := range cached {
		features := make([]*plan.PlanFeature, 0, len(cp.Features))
		for _, cf := range cp.Features {
			features = append(features, plan.ReconstructPlanFeature(cf.FeatureID, cf.HasLimit, cf.MaxLimit))
		}

		p, err := plan.ReconstructPlan(cp.ID, cp.SID, cp.Name, cp.Description, cp.Price,
			cp.MinimumUsers, cp.Active, features, cp.CreatedAt, cp.UpdatedAt)
		if err != nil {
			c.logger.Warnw("plan catalog cache entry failed reconstruction, dropping it",
				"plan_sid", cp.SID,
				"error", err,
			)
			_ = c.client.Del(ctx, catalogKey).Err()
			return nil, nil
		}
		plans = append(plans, p)
	}

	return plans, nil
}

func (c *RedisPlanCatalogCache) SetActivePlans(ctx context.Context, plans []*plan.Plan) error {
	cached := make([]cachedPlan, 0, len(plans))
	for _, p := range plans {
		features := make([]cachedPlanFeature, 0, len(p.Features()))
		for _, f := range p.Features() {
			features = append(features, cachedPlanFeature{
				FeatureID: f.FeatureID(),
				HasLimit:  f.HasLimit(),
				MaxLimit:  f.MaxLimit(),
			})
		}
		cached = append(cached, cachedPlan{
			ID:           p.ID(),
			SID:          p.SID(),
			Name:         p.Name(),
			Description:  p.Description(),
			Price:        p.Price(),
			MinimumUsers: p.MinimumUsers(),
			Active:       p.Active(),
			Features:     features,
			CreatedAt:    p.CreatedAt(),
			UpdatedAt:    p.UpdatedAt(),
		})
	}

	raw, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("failed to serialize plan catalog: %w", err)
	}

	if err := c.client.Set(ctx, catalogKey, raw, catalogTTLWithJitter()).Err(); err != nil {
		return fmt.Errorf("failed to set plan catalog in cache: %w", err)
	}

	c.logger.Debugw("plan catalog cached", "count", len(plans))

	return nil
}

func (c *RedisPlanCatalogCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, catalogKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate plan catalog cache: %w", err)
	}

	c.logger.Debugw("plan catalog cache invalidated")

	return nil
}

// catalogTTLWithJitter returns a randomized TTL so all app instances do not
// refill the catalog at the same instant.
func catalogTTLWithJitter() time.Duration {
	jitter := time.Duration(rand.Int64N(int64(catalogTTLJitter)))
	return baseCatalogTTL + jitter
}
