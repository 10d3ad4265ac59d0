package usecases

import (
	"context"
	"time"

	"crewhub/internal/domain/task"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type CreateTaskCommand struct {
	CompanyID   uint
	ManagerID   uint
	Title       string
	Description string
	Priority    string
	Recurrence  string
	StartDate   time.Time
	DueDate     *time.Time
	Tags        []string
	Checklist   []string
	AssigneeIDs []uint
}

type CreateTaskUseCase struct {
	taskRepo task.Repository
	logger   logger.Interface
}

func NewCreateTaskUseCase(taskRepo task.Repository, logger logger.Interface) *CreateTaskUseCase {
	return &CreateTaskUseCase{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

func (uc *CreateTaskUseCase) Execute(ctx context.Context, cmd CreateTaskCommand) (*task.Task, error) {
	t, err := task.NewTask(
		cmd.CompanyID,
		cmd.ManagerID,
		cmd.Title,
		cmd.Description,
		task.TaskPriority(cmd.Priority),
		task.Recurrence(cmd.Recurrence),
		cmd.StartDate,
		cmd.DueDate,
		cmd.Tags,
		cmd.Checklist,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := t.ReplaceAssignees(cmd.AssigneeIDs); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.taskRepo.Save(ctx, t); err != nil {
		uc.logger.Errorw("failed to create task", "error", err, "company_id", cmd.CompanyID)
		return nil, err
	}

	uc.logger.Infow("task created", "task_id", t.ID(), "company_id", cmd.CompanyID)
	return t, nil
}
