package usecases

import (
	"context"

	"crewhub/internal/domain/branch"
	"crewhub/internal/shared/logger"
	"crewhub/internal/shared/query"
)

type ListBranchesQuery struct {
	CompanyID uint
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListBranchesResult struct {
	Branches   []*branch.Branch
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

type ListBranchesUseCase struct {
	branchRepo branch.Repository
	logger     logger.Interface
}

func NewListBranchesUseCase(branchRepo branch.Repository, logger logger.Interface) *ListBranchesUseCase {
	return &ListBranchesUseCase{
		branchRepo: branchRepo,
		logger:     logger,
	}
}

func (uc *ListBranchesUseCase) Execute(ctx context.Context, q ListBranchesQuery) (*ListBranchesResult, error) {
	filter := query.NewListFilter(
		q.CompanyID,
		query.WithPage(q.Page, q.PageSize),
		query.WithSort(q.SortBy, q.SortOrder),
		query.WithSearch(q.Search),
	)

	branches, total, err := uc.branchRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list branches", "error", err, "company_id", q.CompanyID)
		return nil, err
	}

	limit := filter.Limit()

	return &ListBranchesResult{
		Branches:   branches,
		Total:      total,
		Page:       filter.Page,
		PageSize:   limit,
		TotalPages: query.TotalPages(total, limit),
	}, nil
}
