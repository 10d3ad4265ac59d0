package models

import "gorm.io/datatypes"

type TaskModel struct {
	ID          uint           `gorm:"primaryKey"`
	SID         string         `gorm:"column:sid;uniqueIndex;size:32;not null"`
	CompanyID   uint           `gorm:"not null;index"`
	ManagerID   uint           `gorm:"not null;index"`
	Title       string         `gorm:"size:200;not null"`
	Description string         `gorm:"type:text"`
	Status      string         `gorm:"size:20;not null;index"`
	Priority    string         `gorm:"size:20;not null"`
	Recurrence  string         `gorm:"size:20"`
	StartDate   int64          `gorm:"not null"`
	DueDate     *int64         `gorm:"index"`
	Tags        datatypes.JSON `gorm:"type:json"`
	Checklist   datatypes.JSON `gorm:"type:json"`
	CreatedAt   int64          `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64          `gorm:"autoUpdateTime:milli;not null"`
}

func (TaskModel) TableName() string {
	return "tasks"
}

// TaskAssignmentModel rows are replaced wholesale when a task's
// assignees change.
type TaskAssignmentModel struct {
	ID         uint `gorm:"primaryKey"`
	TaskID     uint `gorm:"not null;index:idx_task_employee,unique"`
	EmployeeID uint `gorm:"not null;index:idx_task_employee,unique"`
}

func (TaskAssignmentModel) TableName() string {
	return "task_assignments"
}
