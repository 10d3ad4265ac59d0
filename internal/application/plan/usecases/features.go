package usecases

import (
	"context"

	"crewhub/internal/domain/plan"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type CreateFeatureCommand struct {
	Name   string
	Active bool
}

type CreateFeatureUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewCreateFeatureUseCase(planRepo plan.Repository, logger logger.Interface) *CreateFeatureUseCase {
	return &CreateFeatureUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *CreateFeatureUseCase) Execute(ctx context.Context, cmd CreateFeatureCommand) (*plan.Feature, error) {
	f, err := plan.NewFeature(cmd.Name, cmd.Active)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.planRepo.SaveFeature(ctx, f); err != nil {
		uc.logger.Errorw("failed to create feature", "error", err, "name", cmd.Name)
		return nil, err
	}

	uc.logger.Infow("feature created", "feature_id", f.ID(), "name", f.Name())
	return f, nil
}

type ListFeaturesUseCase struct {
	planRepo plan.Repository
}

func NewListFeaturesUseCase(planRepo plan.Repository) *ListFeaturesUseCase {
	return &ListFeaturesUseCase{planRepo: planRepo}
}

func (uc *ListFeaturesUseCase) Execute(ctx context.Context) ([]*plan.Feature, error) {
	return uc.planRepo.ListFeatures(ctx)
}
