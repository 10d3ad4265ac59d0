package onboarding

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"crewhub/internal/shared/id"
)

type StepType string

const (
	StepInterview StepType = "INTERVIEW"
	StepForm      StepType = "FORM"
	StepDocument  StepType = "DOCUMENT"
	StepCourse    StepType = "COURSE"
	StepTask      StepType = "TASK"
)

func (t StepType) IsValid() bool {
	switch t {
	case StepInterview, StepForm, StepDocument, StepCourse, StepTask:
		return true
	}
	return false
}

// Step is a child row of Flow. Steps are replaced wholesale on every
// update, so their IDs are not stable across updates.
type Step struct {
	id          uint
	flowID      uint
	stepType    StepType
	title       string
	description string
	order       int
	required    bool
}

func NewStep(stepType StepType, title, description string, order int, required bool) (*Step, error) {
	if !stepType.IsValid() {
		return nil, fmt.Errorf("invalid onboarding step type: %s", stepType)
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("step title is required")
	}
	if order < 0 {
		return nil, fmt.Errorf("step order cannot be negative")
	}

	return &Step{
		stepType:    stepType,
		title:       title,
		description: description,
		order:       order,
		required:    required,
	}, nil
}

func ReconstructStep(stepID, flowID uint, stepType StepType, title, description string, order int, required bool) *Step {
	return &Step{
		id:          stepID,
		flowID:      flowID,
		stepType:    stepType,
		title:       title,
		description: description,
		order:       order,
		required:    required,
	}
}

func (s *Step) ID() uint            { return s.id }
func (s *Step) FlowID() uint        { return s.flowID }
func (s *Step) Type() StepType      { return s.stepType }
func (s *Step) Title() string       { return s.title }
func (s *Step) Description() string { return s.description }
func (s *Step) Order() int          { return s.order }
func (s *Step) Required() bool      { return s.required }

// Flow is a company-defined onboarding sequence (e.g. interview, then
// document upload, then training course) applied to new hires.
type Flow struct {
	id          uint
	sid         string
	companyID   uint
	name        string
	description string
	active      bool
	steps       []*Step
	createdAt   time.Time
	updatedAt   time.Time
}

func NewFlow(companyID uint, name, description string, active bool, steps []*Step) (*Flow, error) {
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("onboarding flow name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("onboarding flow name exceeds maximum length of 100 characters")
	}

	if steps == nil {
		steps = []*Step{}
	}
	sortSteps(steps)

	now := time.Now()

	return &Flow{
		sid:         id.MustGenerateWithPrefix(id.PrefixOnboarding, id.DefaultLength),
		companyID:   companyID,
		name:        name,
		description: description,
		active:      active,
		steps:       steps,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructFlow(
	flowID uint,
	sid string,
	companyID uint,
	name string,
	description string,
	active bool,
	steps []*Step,
	createdAt, updatedAt time.Time,
) (*Flow, error) {
	if flowID == 0 {
		return nil, fmt.Errorf("onboarding flow ID cannot be zero")
	}
	if len(sid) == 0 {
		return nil, fmt.Errorf("onboarding flow SID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("onboarding flow name is required")
	}

	if steps == nil {
		steps = []*Step{}
	}
	sortSteps(steps)

	return &Flow{
		id:          flowID,
		sid:         sid,
		companyID:   companyID,
		name:        name,
		description: description,
		active:      active,
		steps:       steps,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (f *Flow) ID() uint             { return f.id }
func (f *Flow) SID() string          { return f.sid }
func (f *Flow) CompanyID() uint      { return f.companyID }
func (f *Flow) Name() string         { return f.name }
func (f *Flow) Description() string  { return f.description }
func (f *Flow) Active() bool         { return f.active }
func (f *Flow) CreatedAt() time.Time { return f.createdAt }
func (f *Flow) UpdatedAt() time.Time { return f.updatedAt }

func (f *Flow) Steps() []*Step {
	stepsCopy := make([]*Step, len(f.steps))
	copy(stepsCopy, f.steps)
	return stepsCopy
}

func (f *Flow) SetID(flowID uint) error {
	if f.id != 0 {
		return fmt.Errorf("onboarding flow ID is already set")
	}
	if flowID == 0 {
		return fmt.Errorf("onboarding flow ID cannot be zero")
	}
	f.id = flowID
	return nil
}

func (f *Flow) Update(name, description string, active *bool) error {
	if name != "" {
		if len(name) > 100 {
			return fmt.Errorf("onboarding flow name exceeds maximum length of 100 characters")
		}
		f.name = name
	}
	if description != "" {
		f.description = description
	}
	if active != nil {
		f.active = *active
	}

	f.updatedAt = time.Now()
	return nil
}

// ReplaceSteps swaps the full step list. Existing steps are discarded;
// persistence deletes and reinserts the child rows.
func (f *Flow) ReplaceSteps(steps []*Step) {
	if steps == nil {
		steps = []*Step{}
	}
	sortSteps(steps)
	f.steps = steps
	f.updatedAt = time.Now()
}

func sortSteps(steps []*Step) {
	sort.SliceStable(steps, func(i, j int) bool {
		return steps[i].order < steps[j].order
	})
}
