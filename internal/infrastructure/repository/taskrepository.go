package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"crewhub/internal/domain/task"
	"crewhub/internal/infrastructure/persistence/mappers"
	"crewhub/internal/infrastructure/persistence/models"
	"crewhub/internal/shared/db"
	apperrors "crewhub/internal/shared/errors"
	"crewhub/internal/shared/query"
)

var allowedTaskOrderByFields = map[string]bool{
	"id":         true,
	"title":      true,
	"status":     true,
	"priority":   true,
	"start_date": true,
	"due_date":   true,
	"created_at": true,
	"updated_at": true,
}

type TaskRepository struct {
	db     *gorm.DB
	mapper mappers.TaskMapper
}

func NewTaskRepository(database *gorm.DB) *TaskRepository {
	return &TaskRepository{
		db:     database,
		mapper: mappers.NewTaskMapper(),
	}
}

func (r *TaskRepository) Save(ctx context.Context, t *task.Task) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(innerTx *gorm.DB) error {
		model := r.mapper.ToModel(t)
		if err := innerTx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}
		t.SetID(model.ID)

		assignmentModels := r.mapper.AssignmentToModels(t.ID(), t.AssigneeIDs())
		if len(assignmentModels) > 0 {
			if err := innerTx.Create(&assignmentModels).Error; err != nil {
				return fmt.Errorf("failed to insert task assignments: %w", err)
			}
		}

		return nil
	})
}

func (r *TaskRepository) Update(ctx context.Context, t *task.Task) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(innerTx *gorm.DB) error {
		model := r.mapper.ToModel(t)
		result := innerTx.Model(&models.TaskModel{}).
			Where("id = ?", t.ID()).
			Select("title", "description", "status", "priority", "recurrence",
				"start_date", "due_date", "tags", "checklist", "updated_at").
			Updates(model)
		if result.Error != nil {
			return fmt.Errorf("failed to update task: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError("task not found")
		}

		if err := innerTx.Where("task_id = ?", t.ID()).Delete(&models.TaskAssignmentModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear task assignments: %w", err)
		}

		assignmentModels := r.mapper.AssignmentToModels(t.ID(), t.AssigneeIDs())
		if len(assignmentModels) > 0 {
			if err := innerTx.Create(&assignmentModels).Error; err != nil {
				return fmt.Errorf("failed to insert task assignments: %w", err)
			}
		}

		return nil
	})
}

func (r *TaskRepository) Delete(ctx context.Context, taskID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(innerTx *gorm.DB) error {
		if err := innerTx.Where("task_id = ?", taskID).Delete(&models.TaskAssignmentModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear task assignments: %w", err)
		}

		result := innerTx.Where("id = ?", taskID).Delete(&models.TaskModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete task: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError("task not found")
		}

		return nil
	})
}

func (r *TaskRepository) GetByID(ctx context.Context, taskID uint) (*task.Task, error) {
	var model models.TaskModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", taskID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("task not found")
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	return r.loadWithAssignments(tx, &model)
}

func (r *TaskRepository) GetBySID(ctx context.Context, sid string) (*task.Task, error) {
	var model models.TaskModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("task not found")
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	return r.loadWithAssignments(tx, &model)
}

func (r *TaskRepository) List(ctx context.Context, filter query.ListFilter) ([]*task.Task, int64, error) {
	var taskModels []models.TaskModel
	var total int64

	tx := db.GetTxFromContext(ctx, r.db)

	filter.Search.Fields = []string{"title", "description"}
	dbQuery := tx.Model(&models.TaskModel{}).
		Scopes(
			db.CompanyScoped(filter.CompanyID),
			db.Searched(filter.Search),
		)

	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	if err := dbQuery.
		Scopes(
			db.Ordered(filter.SortFilter, allowedTaskOrderByFields),
			db.Paged(filter.PageFilter),
		).
		Find(&taskModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]*task.Task, 0, len(taskModels))
	for i := range taskModels {
		t, err := r.loadWithAssignments(tx, &taskModels[i])
		if err != nil {
			return nil, 0, err
		}
		tasks = append(tasks, t)
	}

	return tasks, total, nil
}

func (r *TaskRepository) loadWithAssignments(tx *gorm.DB, model *models.TaskModel) (*task.Task, error) {
	var assignmentModels []models.TaskAssignmentModel
	if err := tx.Where("task_id = ?", model.ID).Order("id ASC").Find(&assignmentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load task assignments: %w", err)
	}

	return r.mapper.ToDomain(model, assignmentModels)
}
