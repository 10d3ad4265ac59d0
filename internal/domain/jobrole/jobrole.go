package jobrole

import (
	"fmt"
	"strings"
	"time"

	"crewhub/internal/shared/id"
)

// JobRole is a company-defined position (e.g. "Barista") used for
// scheduling and notification targeting. Employees link to a role
// through their job information row.
type JobRole struct {
	id        uint
	sid       string
	companyID uint
	name      string
	color     string
	createdAt time.Time
	updatedAt time.Time
}

func NewJobRole(companyID uint, name, color string) (*JobRole, error) {
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("job role name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("job role name exceeds maximum length of 100 characters")
	}

	now := time.Now()

	return &JobRole{
		sid:       id.MustGenerateWithPrefix(id.PrefixJobRole, id.DefaultLength),
		companyID: companyID,
		name:      name,
		color:     color,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructJobRole(
	roleID uint,
	sid string,
	companyID uint,
	name string,
	color string,
	createdAt, updatedAt time.Time,
) (*JobRole, error) {
	if roleID == 0 {
		return nil, fmt.Errorf("job role ID cannot be zero")
	}
	if len(sid) == 0 {
		return nil, fmt.Errorf("job role SID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("job role name is required")
	}

	return &JobRole{
		id:        roleID,
		sid:       sid,
		companyID: companyID,
		name:      name,
		color:     color,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (r *JobRole) ID() uint             { return r.id }
func (r *JobRole) SID() string          { return r.sid }
func (r *JobRole) CompanyID() uint      { return r.companyID }
func (r *JobRole) Name() string         { return r.name }
func (r *JobRole) Color() string        { return r.color }
func (r *JobRole) CreatedAt() time.Time { return r.createdAt }
func (r *JobRole) UpdatedAt() time.Time { return r.updatedAt }

func (r *JobRole) SetID(roleID uint) error {
	if r.id != 0 {
		return fmt.Errorf("job role ID is already set")
	}
	if roleID == 0 {
		return fmt.Errorf("job role ID cannot be zero")
	}
	r.id = roleID
	return nil
}

func (r *JobRole) Update(name, color string) error {
	if name != "" {
		if len(name) > 100 {
			return fmt.Errorf("job role name exceeds maximum length of 100 characters")
		}
		r.name = name
	}
	if color != "" {
		r.color = color
	}

	r.updatedAt = time.Now()
	return nil
}
