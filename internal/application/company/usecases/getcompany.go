package usecases

import (
	"context"

	"crewhub/internal/domain/company"
	"crewhub/internal/domain/plan"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type GetCompanyResult struct {
	Company *company.Company
	Plan    *plan.Plan
}

type GetCompanyUseCase struct {
	companyRepo company.Repository
	planRepo    plan.Repository
	logger      logger.Interface
}

func NewGetCompanyUseCase(companyRepo company.Repository, planRepo plan.Repository, logger logger.Interface) *GetCompanyUseCase {
	return &GetCompanyUseCase{
		companyRepo: companyRepo,
		planRepo:    planRepo,
		logger:      logger,
	}
}

func (uc *GetCompanyUseCase) Execute(ctx context.Context, companyID uint) (*GetCompanyResult, error) {
	c, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	result := &GetCompanyResult{Company: c}

	if c.PlanID() != nil {
		p, err := uc.planRepo.GetByID(ctx, *c.PlanID())
		if err != nil && !errors.IsNotFoundError(err) {
			return nil, err
		}
		result.Plan = p
	}

	return result, nil
}
