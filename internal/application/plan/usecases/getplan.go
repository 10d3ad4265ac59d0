package usecases

import (
	"context"

	"crewhub/internal/domain/plan"
)

type GetPlanUseCase struct {
	planRepo plan.Repository
}

func NewGetPlanUseCase(planRepo plan.Repository) *GetPlanUseCase {
	return &GetPlanUseCase{planRepo: planRepo}
}

func (uc *GetPlanUseCase) Execute(ctx context.Context, planSID string) (*plan.Plan, error) {
	return uc.planRepo.GetBySID(ctx, planSID)
}
