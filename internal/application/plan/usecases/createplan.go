package usecases

import (
	"context"

	"crewhub/internal/domain/plan"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type PlanFeatureInput struct {
	FeatureID uint
	HasLimit  bool
	MaxLimit  *int
}

type CreatePlanCommand struct {
	Name         string
	Description  string
	Price        float64
	MinimumUsers int
	Active       bool
	Features     []PlanFeatureInput
}

type CreatePlanUseCase struct {
	planRepo plan.Repository
	cache    CatalogCache
	logger   logger.Interface
}

func NewCreatePlanUseCase(planRepo plan.Repository, cache CatalogCache, logger logger.Interface) *CreatePlanUseCase {
	return &CreatePlanUseCase{
		planRepo: planRepo,
		cache:    cache,
		logger:   logger,
	}
}

func (uc *CreatePlanUseCase) Execute(ctx context.Context, cmd CreatePlanCommand) (*plan.Plan, error) {
	features := make([]*plan.PlanFeature, 0, len(cmd.Features))
	for _, f := range cmd.Features {
		pf, err := plan.NewPlanFeature(f.FeatureID, f.HasLimit, f.MaxLimit)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		features = append(features, pf)
	}

	p, err := plan.NewPlan(cmd.Name, cmd.Description, cmd.Price, cmd.MinimumUsers, cmd.Active, features)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.planRepo.Save(ctx, p); err != nil {
		uc.logger.Errorw("failed to create plan", "error", err, "name", cmd.Name)
		return nil, err
	}

	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.logger.Warnw("failed to invalidate plan catalog cache", "error", err)
	}

	uc.logger.Infow("plan created", "plan_id", p.ID(), "name", p.Name())
	return p, nil
}
