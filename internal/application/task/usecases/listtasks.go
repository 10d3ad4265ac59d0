package usecases

import (
	"context"

	"crewhub/internal/domain/task"
	"crewhub/internal/shared/logger"
	"crewhub/internal/shared/query"
)

type ListTasksQuery struct {
	CompanyID uint
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListTasksResult struct {
	Tasks      []*task.Task
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

type ListTasksUseCase struct {
	taskRepo task.Repository
	logger   logger.Interface
}

func NewListTasksUseCase(taskRepo task.Repository, logger logger.Interface) *ListTasksUseCase {
	return &ListTasksUseCase{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

func (uc *ListTasksUseCase) Execute(ctx context.Context, q ListTasksQuery) (*ListTasksResult, error) {
	filter := query.NewListFilter(
		q.CompanyID,
		query.WithPage(q.Page, q.PageSize),
		query.WithSort(q.SortBy, q.SortOrder),
		query.WithSearch(q.Search),
	)

	tasks, total, err := uc.taskRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tasks", "error", err, "company_id", q.CompanyID)
		return nil, err
	}

	limit := filter.Limit()

	return &ListTasksResult{
		Tasks:      tasks,
		Total:      total,
		Page:       filter.Page,
		PageSize:   limit,
		TotalPages: query.TotalPages(total, limit),
	}, nil
}
