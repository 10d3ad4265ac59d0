package task

import (
	"fmt"
	"strings"
	"time"

	"crewhub/internal/shared/id"
)

type TaskStatus string

const (
	StatusDraft      TaskStatus = "DRAFT"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusCompleted  TaskStatus = "COMPLETED"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
)

func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Recurrence string

const (
	RecurrenceNone    Recurrence = ""
	RecurrenceDaily   Recurrence = "DAILY"
	RecurrenceWeekly  Recurrence = "WEEKLY"
	RecurrenceMonthly Recurrence = "MONTHLY"
)

func (r Recurrence) IsValid() bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return true
	}
	return false
}

// Task is a unit of work assigned to employees. Assignments use
// replace semantics: setting them discards the previous set.
type Task struct {
	id          uint
	sid         string
	companyID   uint
	managerID   uint
	title       string
	description string
	status      TaskStatus
	priority    TaskPriority
	recurrence  Recurrence
	startDate   time.Time
	dueDate     *time.Time
	tags        []string
	checklist   []string
	assigneeIDs []uint
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTask(
	companyID uint,
	managerID uint,
	title string,
	description string,
	priority TaskPriority,
	recurrence Recurrence,
	startDate time.Time,
	dueDate *time.Time,
	tags []string,
	checklist []string,
) (*Task, error) {
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if managerID == 0 {
		return nil, fmt.Errorf("manager ID is required")
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("task title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("task title exceeds maximum length of 200 characters")
	}
	if priority == "" {
		priority = PriorityMedium
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid task priority: %s", priority)
	}
	if !recurrence.IsValid() {
		return nil, fmt.Errorf("invalid recurrence: %s", recurrence)
	}
	if startDate.IsZero() {
		return nil, fmt.Errorf("start date is required")
	}
	if dueDate != nil && dueDate.Before(startDate) {
		return nil, fmt.Errorf("due date cannot be before the start date")
	}

	if tags == nil {
		tags = []string{}
	}
	if checklist == nil {
		checklist = []string{}
	}

	now := time.Now()

	return &Task{
		sid:         id.MustGenerateWithPrefix(id.PrefixTask, id.DefaultLength),
		companyID:   companyID,
		managerID:   managerID,
		title:       title,
		description: description,
		status:      StatusDraft,
		priority:    priority,
		recurrence:  recurrence,
		startDate:   startDate,
		dueDate:     dueDate,
		tags:        tags,
		checklist:   checklist,
		assigneeIDs: []uint{},
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTask(
	taskID uint,
	sid string,
	companyID uint,
	managerID uint,
	title string,
	description string,
	status TaskStatus,
	priority TaskPriority,
	recurrence Recurrence,
	startDate time.Time,
	dueDate *time.Time,
	tags []string,
	checklist []string,
	assigneeIDs []uint,
	createdAt, updatedAt time.Time,
) (*Task, error) {
	if taskID == 0 {
		return nil, fmt.Errorf("task ID cannot be zero")
	}
	if len(sid) == 0 {
		return nil, fmt.Errorf("task SID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid task status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid task priority: %s", priority)
	}

	if tags == nil {
		tags = []string{}
	}
	if checklist == nil {
		checklist = []string{}
	}
	if assigneeIDs == nil {
		assigneeIDs = []uint{}
	}

	return &Task{
		id:          taskID,
		sid:         sid,
		companyID:   companyID,
		managerID:   managerID,
		title:       title,
		description: description,
		status:      status,
		priority:    priority,
		recurrence:  recurrence,
		startDate:   startDate,
		dueDate:     dueDate,
		tags:        tags,
		checklist:   checklist,
		assigneeIDs: assigneeIDs,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Task) ID() uint               { return t.id }
func (t *Task) SID() string            { return t.sid }
func (t *Task) CompanyID() uint        { return t.companyID }
func (t *Task) ManagerID() uint        { return t.managerID }
func (t *Task) Title() string          { return t.title }
func (t *Task) Description() string    { return t.description }
func (t *Task) Status() TaskStatus     { return t.status }
func (t *Task) Priority() TaskPriority { return t.priority }
func (t *Task) Recurrence() Recurrence { return t.recurrence }
func (t *Task) StartDate() time.Time   { return t.startDate }
func (t *Task) DueDate() *time.Time    { return t.dueDate }
func (t *Task) CreatedAt() time.Time   { return t.createdAt }
func (t *Task) UpdatedAt() time.Time   { return t.updatedAt }

func (t *Task) Tags() []string {
	tagsCopy := make([]string, len(t.tags))
	copy(tagsCopy, t.tags)
	return tagsCopy
}

func (t *Task) Checklist() []string {
	checklistCopy := make([]string, len(t.checklist))
	copy(checklistCopy, t.checklist)
	return checklistCopy
}

func (t *Task) AssigneeIDs() []uint {
	idsCopy := make([]uint, len(t.assigneeIDs))
	copy(idsCopy, t.assigneeIDs)
	return idsCopy
}

func (t *Task) SetID(taskID uint) error {
	if t.id != 0 {
		return fmt.Errorf("task ID is already set")
	}
	if taskID == 0 {
		return fmt.Errorf("task ID cannot be zero")
	}
	t.id = taskID
	return nil
}

func (t *Task) Update(title, description string, status TaskStatus, priority TaskPriority, dueDate *time.Time, tags, checklist []string) error {
	if title != "" {
		if len(title) > 200 {
			return fmt.Errorf("task title exceeds maximum length of 200 characters")
		}
		t.title = title
	}
	if description != "" {
		t.description = description
	}
	if status != "" {
		if !status.IsValid() {
			return fmt.Errorf("invalid task status: %s", status)
		}
		t.status = status
	}
	if priority != "" {
		if !priority.IsValid() {
			return fmt.Errorf("invalid task priority: %s", priority)
		}
		t.priority = priority
	}
	if dueDate != nil {
		if dueDate.Before(t.startDate) {
			return fmt.Errorf("due date cannot be before the start date")
		}
		t.dueDate = dueDate
	}
	if tags != nil {
		t.tags = tags
	}
	if checklist != nil {
		t.checklist = checklist
	}

	t.updatedAt = time.Now()
	return nil
}

// ReplaceAssignees swaps the full set of assigned employees.
func (t *Task) ReplaceAssignees(employeeIDs []uint) error {
	for _, employeeID := range employeeIDs {
		if employeeID == 0 {
			return fmt.Errorf("assignee ID cannot be zero")
		}
	}
	if employeeIDs == nil {
		employeeIDs = []uint{}
	}

	t.assigneeIDs = employeeIDs
	t.updatedAt = time.Now()
	return nil
}
