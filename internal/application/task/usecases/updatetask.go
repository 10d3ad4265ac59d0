package usecases

import (
	"context"
	"time"

	"crewhub/internal/domain/task"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type UpdateTaskCommand struct {
	TaskSID     string
	CompanyID   uint
	Title       string
	Description string
	Status      string
	Priority    string
	DueDate     *time.Time
	Tags        []string
	Checklist   []string
	AssigneeIDs []uint
}

type UpdateTaskUseCase struct {
	taskRepo task.Repository
	logger   logger.Interface
}

func NewUpdateTaskUseCase(taskRepo task.Repository, logger logger.Interface) *UpdateTaskUseCase {
	return &UpdateTaskUseCase{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

func (uc *UpdateTaskUseCase) Execute(ctx context.Context, cmd UpdateTaskCommand) (*task.Task, error) {
	t, err := uc.taskRepo.GetBySID(ctx, cmd.TaskSID)
	if err != nil {
		return nil, err
	}
	if t.CompanyID() != cmd.CompanyID {
		return nil, errors.NewNotFoundError("task not found")
	}

	status := t.Status()
	if cmd.Status != "" {
		status = task.TaskStatus(cmd.Status)
	}
	priority := t.Priority()
	if cmd.Priority != "" {
		priority = task.TaskPriority(cmd.Priority)
	}

	if err := t.Update(cmd.Title, cmd.Description, status, priority, cmd.DueDate, cmd.Tags, cmd.Checklist); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.AssigneeIDs != nil {
		if err := t.ReplaceAssignees(cmd.AssigneeIDs); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.taskRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update task", "error", err, "task_id", t.ID())
		return nil, err
	}

	uc.logger.Infow("task updated", "task_id", t.ID())
	return t, nil
}
