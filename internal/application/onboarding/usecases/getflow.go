package usecases

import (
	"context"

	"crewhub/internal/domain/onboarding"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type GetFlowQuery struct {
	FlowSID   string
	CompanyID uint
}

type GetFlowUseCase struct {
	onboardingRepo onboarding.Repository
	logger         logger.Interface
}

func NewGetFlowUseCase(onboardingRepo onboarding.Repository, logger logger.Interface) *GetFlowUseCase {
	return &GetFlowUseCase{
		onboardingRepo: onboardingRepo,
		logger:         logger,
	}
}

func (uc *GetFlowUseCase) Execute(ctx context.Context, q GetFlowQuery) (*onboarding.Flow, error) {
	f, err := uc.onboardingRepo.GetBySID(ctx, q.FlowSID)
	if err != nil {
		return nil, err
	}
	if f.CompanyID() != q.CompanyID {
		return nil, errors.NewNotFoundError("onboarding flow not found")
	}

	return f, nil
}
