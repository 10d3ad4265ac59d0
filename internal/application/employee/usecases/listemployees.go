package usecases

import (
	"context"

	"crewhub/internal/domain/employee"
	"crewhub/internal/shared/logger"
	"crewhub/internal/shared/query"
)

type ListEmployeesQuery struct {
	CompanyID uint
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListEmployeesResult struct {
	Employees  []*employee.Employee
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

type ListEmployeesUseCase struct {
	employeeRepo employee.Repository
	logger       logger.Interface
}

func NewListEmployeesUseCase(employeeRepo employee.Repository, logger logger.Interface) *ListEmployeesUseCase {
	return &ListEmployeesUseCase{
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

func (uc *ListEmployeesUseCase) Execute(ctx context.Context, q ListEmployeesQuery) (*ListEmployeesResult, error) {
	filter := query.NewListFilter(
		q.CompanyID,
		query.WithPage(q.Page, q.PageSize),
		query.WithSort(q.SortBy, q.SortOrder),
		query.WithSearch(q.Search),
	)

	employees, total, err := uc.employeeRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list employees", "error", err, "company_id", q.CompanyID)
		return nil, err
	}

	limit := filter.Limit()

	return &ListEmployeesResult{
		Employees:  employees,
		Total:      total,
		Page:       filter.Page,
		PageSize:   limit,
		TotalPages: query.TotalPages(total, limit),
	}, nil
}
