package usecases

import (
	"context"

	"crewhub/internal/domain/onboarding"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type DeleteFlowCommand struct {
	FlowSID   string
	CompanyID uint
}

type DeleteFlowUseCase struct {
	onboardingRepo onboarding.Repository
	logger         logger.Interface
}

func NewDeleteFlowUseCase(onboardingRepo onboarding.Repository, logger logger.Interface) *DeleteFlowUseCase {
	return &DeleteFlowUseCase{
		onboardingRepo: onboardingRepo,
		logger:         logger,
	}
}

func (uc *DeleteFlowUseCase) Execute(ctx context.Context, cmd DeleteFlowCommand) error {
	f, err := uc.onboardingRepo.GetBySID(ctx, cmd.FlowSID)
	if err != nil {
		return err
	}
	if f.CompanyID() != cmd.CompanyID {
		return errors.NewNotFoundError("onboarding flow not found")
	}

	if err := uc.onboardingRepo.Delete(ctx, f.ID()); err != nil {
		uc.logger.Errorw("failed to delete onboarding flow", "error", err, "flow_id", f.ID())
		return err
	}

	uc.logger.Infow("onboarding flow deleted", "flow_id", f.ID())
	return nil
}
