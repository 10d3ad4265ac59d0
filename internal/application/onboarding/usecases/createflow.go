package usecases

import (
	"context"

	"crewhub/internal/domain/onboarding"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

// StepInput carries one step of a flow as submitted by the client.
type StepInput struct {
	Type        string
	Title       string
	Description string
	Order       int
	Required    bool
}

type CreateFlowCommand struct {
	CompanyID   uint
	Name        string
	Description string
	Active      bool
	Steps       []StepInput
}

type CreateFlowUseCase struct {
	onboardingRepo onboarding.Repository
	logger         logger.Interface
}

func NewCreateFlowUseCase(onboardingRepo onboarding.Repository, logger logger.Interface) *CreateFlowUseCase {
	return &CreateFlowUseCase{
		onboardingRepo: onboardingRepo,
		logger:         logger,
	}
}

func (uc *CreateFlowUseCase) Execute(ctx context.Context, cmd CreateFlowCommand) (*onboarding.Flow, error) {
	steps, err := buildSteps(cmd.Steps)
	if err != nil {
		return nil, err
	}

	f, err := onboarding.NewFlow(cmd.CompanyID, cmd.Name, cmd.Description, cmd.Active, steps)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.onboardingRepo.Save(ctx, f); err != nil {
		uc.logger.Errorw("failed to create onboarding flow", "error", err, "company_id", cmd.CompanyID)
		return nil, err
	}

	uc.logger.Infow("onboarding flow created", "flow_id", f.ID(), "company_id", cmd.CompanyID)
	return f, nil
}

func buildSteps(inputs []StepInput) ([]*onboarding.Step, error) {
	steps := make([]*onboarding.Step, 0, len(inputs))
	for _, in := range inputs {
		s, err := onboarding.NewStep(onboarding.StepType(in.Type), in.Title, in.Description, in.Order, in.Required)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		steps = append(steps, s)
	}
	return steps, nil
}
