package usecases

import (
	"context"

	"crewhub/internal/domain/jobrole"
	"crewhub/internal/shared/logger"
	"crewhub/internal/shared/query"
)

type ListJobRolesQuery struct {
	CompanyID uint
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListJobRolesResult struct {
	JobRoles   []*jobrole.JobRole
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

type ListJobRolesUseCase struct {
	jobRoleRepo jobrole.Repository
	logger      logger.Interface
}

func NewListJobRolesUseCase(jobRoleRepo jobrole.Repository, logger logger.Interface) *ListJobRolesUseCase {
	return &ListJobRolesUseCase{
		jobRoleRepo: jobRoleRepo,
		logger:      logger,
	}
}

func (uc *ListJobRolesUseCase) Execute(ctx context.Context, q ListJobRolesQuery) (*ListJobRolesResult, error) {
	filter := query.NewListFilter(
		q.CompanyID,
		query.WithPage(q.Page, q.PageSize),
		query.WithSort(q.SortBy, q.SortOrder),
		query.WithSearch(q.Search),
	)

	roles, total, err := uc.jobRoleRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list job roles", "error", err, "company_id", q.CompanyID)
		return nil, err
	}

	limit := filter.Limit()

	return &ListJobRolesResult{
		JobRoles:   roles,
		Total:      total,
		Page:       filter.Page,
		PageSize:   limit,
		TotalPages: query.TotalPages(total, limit),
	}, nil
}
