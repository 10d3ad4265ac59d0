package usecases

import (
	"context"

	"crewhub/internal/domain/plan"
	"crewhub/internal/shared/logger"
)

// ListPlansUseCase serves the public plan catalog. The catalog changes
// rarely, so reads go through the cache and fall back to the database.
type ListPlansUseCase struct {
	planRepo plan.Repository
	cache    CatalogCache
	logger   logger.Interface
}

func NewListPlansUseCase(planRepo plan.Repository, cache CatalogCache, logger logger.Interface) *ListPlansUseCase {
	return &ListPlansUseCase{
		planRepo: planRepo,
		cache:    cache,
		logger:   logger,
	}
}

func (uc *ListPlansUseCase) Execute(ctx context.Context) ([]*plan.Plan, error) {
	cached, err := uc.cache.GetActivePlans(ctx)
	if err != nil {
		uc.logger.Warnw("plan catalog cache read failed", "error", err)
	} else if cached != nil {
		return cached, nil
	}

	plans, err := uc.planRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list plans", "error", err)
		return nil, err
	}

	if err := uc.cache.SetActivePlans(ctx, plans); err != nil {
		uc.logger.Warnw("plan catalog cache write failed", "error", err)
	}

	return plans, nil
}
