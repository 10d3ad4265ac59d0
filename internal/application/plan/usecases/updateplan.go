package usecases

import (
	"context"

	"crewhub/internal/domain/plan"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type UpdatePlanCommand struct {
	PlanSID      string
	Name         string
	Description  string
	Price        float64
	MinimumUsers int
	Active       bool
	Features     []PlanFeatureInput
}

type UpdatePlanUseCase struct {
	planRepo plan.Repository
	cache    CatalogCache
	logger   logger.Interface
}

func NewUpdatePlanUseCase(planRepo plan.Repository, cache CatalogCache, logger logger.Interface) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{
		planRepo: planRepo,
		cache:    cache,
		logger:   logger,
	}
}

func (uc *UpdatePlanUseCase) Execute(ctx context.Context, cmd UpdatePlanCommand) (*plan.Plan, error) {
	p, err := uc.planRepo.GetBySID(ctx, cmd.PlanSID)
	if err != nil {
		return nil, err
	}

	if err := p.Update(cmd.Name, cmd.Description, cmd.Price, cmd.MinimumUsers, cmd.Active); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	features := make([]*plan.PlanFeature, 0, len(cmd.Features))
	for _, f := range cmd.Features {
		pf, err := plan.NewPlanFeature(f.FeatureID, f.HasLimit, f.MaxLimit)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		features = append(features, pf)
	}
	p.ReplaceFeatures(features)

	if err := uc.planRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update plan", "error", err, "plan_id", p.ID())
		return nil, err
	}

	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.logger.Warnw("failed to invalidate plan catalog cache", "error", err)
	}

	uc.logger.Infow("plan updated", "plan_id", p.ID())
	return p, nil
}
