package usecases

import (
	"context"

	"crewhub/internal/domain/plan"
)

type GetSubscriptionResult struct {
	Subscription *plan.Subscription
	Plan         *plan.Plan
}

type GetSubscriptionUseCase struct {
	subscriptionRepo plan.SubscriptionRepository
	planRepo         plan.Repository
}

func NewGetSubscriptionUseCase(
	subscriptionRepo plan.SubscriptionRepository,
	planRepo plan.Repository,
) *GetSubscriptionUseCase {
	return &GetSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
	}
}

func (uc *GetSubscriptionUseCase) Execute(ctx context.Context, companyID uint) (*GetSubscriptionResult, error) {
	s, err := uc.subscriptionRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	p, err := uc.planRepo.GetByID(ctx, s.PlanID())
	if err != nil {
		return nil, err
	}

	return &GetSubscriptionResult{
		Subscription: s,
		Plan:         p,
	}, nil
}
