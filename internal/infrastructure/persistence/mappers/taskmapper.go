package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"crewhub/internal/domain/task"
	"crewhub/internal/infrastructure/persistence/models"
)

// TaskMapper converts tasks and their assignment rows. Assignments
// travel separately so the repository can replace them wholesale.
type TaskMapper interface {
	ToModel(t *task.Task) *models.TaskModel
	ToDomain(model *models.TaskModel, assignmentModels []models.TaskAssignmentModel) (*task.Task, error)
	AssignmentToModels(taskID uint, employeeIDs []uint) []models.TaskAssignmentModel
}

type TaskMapperImpl struct{}

func NewTaskMapper() TaskMapper {
	return &TaskMapperImpl{}
}

func (m *TaskMapperImpl) ToModel(t *task.Task) *models.TaskModel {
	model := &models.TaskModel{
		ID:          t.ID(),
		SID:         t.SID(),
		CompanyID:   t.CompanyID(),
		ManagerID:   t.ManagerID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      string(t.Status()),
		Priority:    string(t.Priority()),
		Recurrence:  string(t.Recurrence()),
		StartDate:   t.StartDate().UnixMilli(),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
	}

	if t.DueDate() != nil {
		due := t.DueDate().UnixMilli()
		model.DueDate = &due
	}

	if tags := t.Tags(); len(tags) > 0 {
		tagsJSON, _ := json.Marshal(tags)
		model.Tags = datatypes.JSON(tagsJSON)
	}

	if checklist := t.Checklist(); len(checklist) > 0 {
		checklistJSON, _ := json.Marshal(checklist)
		model.Checklist = datatypes.JSON(checklistJSON)
	}

	return model
}

func (m *TaskMapperImpl) ToDomain(model *models.TaskModel, assignmentModels []models.TaskAssignmentModel) (*task.Task, error) {
	var tags []string
	if len(model.Tags) > 0 {
		if err := json.Unmarshal(model.Tags, &tags); err != nil {
			return nil, fmt.Errorf("failed to unmarshal task tags: %w", err)
		}
	}

	var checklist []string
	if len(model.Checklist) > 0 {
		if err := json.Unmarshal(model.Checklist, &checklist); err != nil {
			return nil, fmt.Errorf("failed to unmarshal task checklist: %w", err)
		}
	}

	var dueDate *time.Time
	if model.DueDate != nil {
		due := time.UnixMilli(*model.DueDate)
		dueDate = &due
	}

	assigneeIDs := make([]uint, 0, len(assignmentModels))
	for _, am := range assignmentModels {
		assigneeIDs = append(assigneeIDs, am.EmployeeID)
	}

	t, err := task.ReconstructTask(
		model.ID,
		model.SID,
		model.CompanyID,
		model.ManagerID,
		model.Title,
		model.Description,
		task.TaskStatus(model.Status),
		task.TaskPriority(model.Priority),
		task.Recurrence(model.Recurrence),
		time.UnixMilli(model.StartDate),
		dueDate,
		tags,
		checklist,
		assigneeIDs,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct task: %w", err)
	}

	return t, nil
}

func (m *TaskMapperImpl) AssignmentToModels(taskID uint, employeeIDs []uint) []models.TaskAssignmentModel {
	assignmentModels := make([]models.TaskAssignmentModel, 0, len(employeeIDs))
	for _, employeeID := range employeeIDs {
		assignmentModels = append(assignmentModels, models.TaskAssignmentModel{
			TaskID:     taskID,
			EmployeeID: employeeID,
		})
	}
	return assignmentModels
}
