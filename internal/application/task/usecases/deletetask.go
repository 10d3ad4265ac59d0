package usecases

import (
	"context"

	"crewhub/internal/domain/task"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type DeleteTaskCommand struct {
	TaskSID   string
	CompanyID uint
}

type DeleteTaskUseCase struct {
	taskRepo task.Repository
	logger   logger.Interface
}

func NewDeleteTaskUseCase(taskRepo task.Repository, logger logger.Interface) *DeleteTaskUseCase {
	return &DeleteTaskUseCase{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

func (uc *DeleteTaskUseCase) Execute(ctx context.Context, cmd DeleteTaskCommand) error {
	t, err := uc.taskRepo.GetBySID(ctx, cmd.TaskSID)
	if err != nil {
		return err
	}
	if t.CompanyID() != cmd.CompanyID {
		return errors.NewNotFoundError("task not found")
	}

	if err := uc.taskRepo.Delete(ctx, t.ID()); err != nil {
		uc.logger.Errorw("failed to delete task", "error", err, "task_id", t.ID())
		return err
	}

	uc.logger.Infow("task deleted", "task_id", t.ID())
	return nil
}
