package usecases

import (
	"context"

	"crewhub/internal/domain/onboarding"
	"crewhub/internal/shared/logger"
	"crewhub/internal/shared/query"
)

type ListFlowsQuery struct {
	CompanyID uint
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListFlowsResult struct {
	Flows      []*onboarding.Flow
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

type ListFlowsUseCase struct {
	onboardingRepo onboarding.Repository
	logger         logger.Interface
}

func NewListFlowsUseCase(onboardingRepo onboarding.Repository, logger logger.Interface) *ListFlowsUseCase {
	return &ListFlowsUseCase{
		onboardingRepo: onboardingRepo,
		logger:         logger,
	}
}

func (uc *ListFlowsUseCase) Execute(ctx context.Context, q ListFlowsQuery) (*ListFlowsResult, error) {
	filter := query.NewListFilter(
		q.CompanyID,
		query.WithPage(q.Page, q.PageSize),
		query.WithSort(q.SortBy, q.SortOrder),
		query.WithSearch(q.Search),
	)

	flows, total, err := uc.onboardingRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list onboarding flows", "error", err, "company_id", q.CompanyID)
		return nil, err
	}

	limit := filter.Limit()

	return &ListFlowsResult{
		Flows:      flows,
		Total:      total,
		Page:       filter.Page,
		PageSize:   limit,
		TotalPages: query.TotalPages(total, limit),
	}, nil
}
