package usecases

import (
	"context"

	"crewhub/internal/domain/onboarding"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type UpdateFlowCommand struct {
	FlowSID     string
	CompanyID   uint
	Name        string
	Description string
	Active      *bool
	// Steps nil leaves the existing steps alone; non-nil replaces them
	// wholesale, an empty slice clearing the flow.
	Steps []StepInput
}

type UpdateFlowUseCase struct {
	onboardingRepo onboarding.Repository
	logger         logger.Interface
}

func NewUpdateFlowUseCase(onboardingRepo onboarding.Repository, logger logger.Interface) *UpdateFlowUseCase {
	return &UpdateFlowUseCase{
		onboardingRepo: onboardingRepo,
		logger:         logger,
	}
}

func (uc *UpdateFlowUseCase) Execute(ctx context.Context, cmd UpdateFlowCommand) (*onboarding.Flow, error) {
	f, err := uc.onboardingRepo.GetBySID(ctx, cmd.FlowSID)
	if err != nil {
		return nil, err
	}
	if f.CompanyID() != cmd.CompanyID {
		return nil, errors.NewNotFoundError("onboarding flow not found")
	}

	if err := f.Update(cmd.Name, cmd.Description, cmd.Active); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Steps != nil {
		steps, err := buildSteps(cmd.Steps)
		if err != nil {
			return nil, err
		}
		f.ReplaceSteps(steps)
	}

	if err := uc.onboardingRepo.Update(ctx, f); err != nil {
		uc.logger.Errorw("failed to update onboarding flow", "error", err, "flow_id", f.ID())
		return nil, err
	}

	uc.logger.Infow("onboarding flow updated", "flow_id", f.ID())
	return f, nil
}
