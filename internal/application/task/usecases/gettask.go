package usecases

import (
	"context"

	"crewhub/internal/domain/task"
	"crewhub/internal/shared/errors"
)

type GetTaskUseCase struct {
	taskRepo task.Repository
}

func NewGetTaskUseCase(taskRepo task.Repository) *GetTaskUseCase {
	return &GetTaskUseCase{taskRepo: taskRepo}
}

func (uc *GetTaskUseCase) Execute(ctx context.Context, taskSID string, companyID uint) (*task.Task, error) {
	t, err := uc.taskRepo.GetBySID(ctx, taskSID)
	if err != nil {
		return nil, err
	}
	if t.CompanyID() != companyID {
		return nil, errors.NewNotFoundError("task not found")
	}
	return t, nil
}
