package usecases

import (
	"context"

	"crewhub/internal/domain/leavepolicy"
	"crewhub/internal/shared/logger"
	"crewhub/internal/shared/query"
)

type ListLeavePoliciesQuery struct {
	CompanyID uint
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListLeavePoliciesResult struct {
	Policies   []*leavepolicy.LeavePolicy
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

type ListLeavePoliciesUseCase struct {
	policyRepo leavepolicy.Repository
	logger     logger.Interface
}

func NewListLeavePoliciesUseCase(policyRepo leavepolicy.Repository, logger logger.Interface) *ListLeavePoliciesUseCase {
	return &ListLeavePoliciesUseCase{
		policyRepo: policyRepo,
		logger:     logger,
	}
}

func (uc *ListLeavePoliciesUseCase) Execute(ctx context.Context, q ListLeavePoliciesQuery) (*ListLeavePoliciesResult, error) {
	filter := query.NewListFilter(
		q.CompanyID,
		query.WithPage(q.Page, q.PageSize),
		query.WithSort(q.SortBy, q.SortOrder),
		query.WithSearch(q.Search),
	)

	policies, total, err := uc.policyRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list leave policies", "error", err, "company_id", q.CompanyID)
		return nil, err
	}

	limit := filter.Limit()

	return &ListLeavePoliciesResult{
		Policies:   policies,
		Total:      total,
		Page:       filter.Page,
		PageSize:   limit,
		TotalPages: query.TotalPages(total, limit),
	}, nil
}
