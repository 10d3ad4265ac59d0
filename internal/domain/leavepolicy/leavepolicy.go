package leavepolicy

import (
	"fmt"
	"strings"
	"time"

	"crewhub/internal/shared/id"
)

// LeavePolicy defines how a class of leave accrues and who it applies
// to. The branch, job role, and member attachments are child rows
// replaced wholesale on every update.
type LeavePolicy struct {
	id               uint
	sid              string
	companyID        uint
	name             string
	description      string
	accrualSchedule  string
	paid             bool
	requiresApproval bool
	allowNegative    bool
	balanceRollover  bool
	autoAddNewHires  bool
	maxAccrualHours  int
	branchIDs        []uint
	jobRoleIDs       []uint
	memberIDs        []uint
	createdAt        time.Time
	updatedAt        time.Time
}

func NewLeavePolicy(
	companyID uint,
	name string,
	description string,
	accrualSchedule string,
	paid bool,
	requiresApproval bool,
	allowNegative bool,
	balanceRollover bool,
	autoAddNewHires bool,
	maxAccrualHours int,
) (*LeavePolicy, error) {
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("leave policy name is required")
	}
	if accrualSchedule == "" {
		return nil, fmt.Errorf("accrual schedule is required")
	}
	if maxAccrualHours < 0 {
		return nil, fmt.Errorf("maximum accrual hours cannot be negative")
	}

	now := time.Now()

	return &LeavePolicy{
		sid:              id.MustGenerateWithPrefix(id.PrefixLeavePolicy, id.DefaultLength),
		companyID:        companyID,
		name:             name,
		description:      description,
		accrualSchedule:  accrualSchedule,
		paid:             paid,
		requiresApproval: requiresApproval,
		allowNegative:    allowNegative,
		balanceRollover:  balanceRollover,
		autoAddNewHires:  autoAddNewHires,
		maxAccrualHours:  maxAccrualHours,
		branchIDs:        []uint{},
		jobRoleIDs:       []uint{},
		memberIDs:        []uint{},
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

func ReconstructLeavePolicy(
	policyID uint,
	sid string,
	companyID uint,
	name string,
	description string,
	accrualSchedule string,
	paid bool,
	requiresApproval bool,
	allowNegative bool,
	balanceRollover bool,
	autoAddNewHires bool,
	maxAccrualHours int,
	branchIDs []uint,
	jobRoleIDs []uint,
	memberIDs []uint,
	createdAt, updatedAt time.Time,
) (*LeavePolicy, error) {
	if policyID == 0 {
		return nil, fmt.Errorf("leave policy ID cannot be zero")
	}
	if len(sid) == 0 {
		return nil, fmt.Errorf("leave policy SID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("leave policy name is required")
	}

	if branchIDs == nil {
		branchIDs = []uint{}
	}
	if jobRoleIDs == nil {
		jobRoleIDs = []uint{}
	}
	if memberIDs == nil {
		memberIDs = []uint{}
	}

	return &LeavePolicy{
		id:               policyID,
		sid:              sid,
		companyID:        companyID,
		name:             name,
		description:      description,
		accrualSchedule:  accrualSchedule,
		paid:             paid,
		requiresApproval: requiresApproval,
		allowNegative:    allowNegative,
		balanceRollover:  balanceRollover,
		autoAddNewHires:  autoAddNewHires,
		maxAccrualHours:  maxAccrualHours,
		branchIDs:        branchIDs,
		jobRoleIDs:       jobRoleIDs,
		memberIDs:        memberIDs,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (p *LeavePolicy) ID() uint                { return p.id }
func (p *LeavePolicy) SID() string             { return p.sid }
func (p *LeavePolicy) CompanyID() uint         { return p.companyID }
func (p *LeavePolicy) Name() string            { return p.name }
func (p *LeavePolicy) Description() string     { return p.description }
func (p *LeavePolicy) AccrualSchedule() string { return p.accrualSchedule }
func (p *LeavePolicy) Paid() bool              { return p.paid }
func (p *LeavePolicy) RequiresApproval() bool  { return p.requiresApproval }
func (p *LeavePolicy) AllowNegative() bool     { return p.allowNegative }
func (p *LeavePolicy) BalanceRollover() bool   { return p.balanceRollover }
func (p *LeavePolicy) AutoAddNewHires() bool   { return p.autoAddNewHires }
func (p *LeavePolicy) MaxAccrualHours() int    { return p.maxAccrualHours }
func (p *LeavePolicy) CreatedAt() time.Time    { return p.createdAt }
func (p *LeavePolicy) UpdatedAt() time.Time    { return p.updatedAt }

func (p *LeavePolicy) BranchIDs() []uint {
	idsCopy := make([]uint, len(p.branchIDs))
	copy(idsCopy, p.branchIDs)
	return idsCopy
}

func (p *LeavePolicy) JobRoleIDs() []uint {
	idsCopy := make([]uint, len(p.jobRoleIDs))
	copy(idsCopy, p.jobRoleIDs)
	return idsCopy
}

func (p *LeavePolicy) MemberIDs() []uint {
	idsCopy := make([]uint, len(p.memberIDs))
	copy(idsCopy, p.memberIDs)
	return idsCopy
}

func (p *LeavePolicy) SetID(policyID uint) error {
	if p.id != 0 {
		return fmt.Errorf("leave policy ID is already set")
	}
	if policyID == 0 {
		return fmt.Errorf("leave policy ID cannot be zero")
	}
	p.id = policyID
	return nil
}

func (p *LeavePolicy) Update(
	name string,
	description string,
	accrualSchedule string,
	paid bool,
	requiresApproval bool,
	allowNegative bool,
	balanceRollover bool,
	autoAddNewHires bool,
	maxAccrualHours int,
) error {
	if name != "" {
		p.name = name
	}
	if description != "" {
		p.description = description
	}
	if accrualSchedule != "" {
		p.accrualSchedule = accrualSchedule
	}
	if maxAccrualHours < 0 {
		return fmt.Errorf("maximum accrual hours cannot be negative")
	}

	p.paid = paid
	p.requiresApproval = requiresApproval
	p.allowNegative = allowNegative
	p.balanceRollover = balanceRollover
	p.autoAddNewHires = autoAddNewHires
	p.maxAccrualHours = maxAccrualHours
	p.updatedAt = time.Now()
	return nil
}

// ReplaceAttachments swaps the full set of branch, job role, and
// member links in one step.
func (p *LeavePolicy) ReplaceAttachments(branchIDs, jobRoleIDs, memberIDs []uint) error {
	for _, branchID := range branchIDs {
		if branchID == 0 {
			return fmt.Errorf("branch ID cannot be zero")
		}
	}
	for _, roleID := range jobRoleIDs {
		if roleID == 0 {
			return fmt.Errorf("job role ID cannot be zero")
		}
	}
	for _, memberID := range memberIDs {
		if memberID == 0 {
			return fmt.Errorf("member ID cannot be zero")
		}
	}

	if branchIDs == nil {
		branchIDs = []uint{}
	}
	if jobRoleIDs == nil {
		jobRoleIDs = []uint{}
	}
	if memberIDs == nil {
		memberIDs = []uint{}
	}

	p.branchIDs = branchIDs
	p.jobRoleIDs = jobRoleIDs
	p.memberIDs = memberIDs
	p.updatedAt = time.Now()
	return nil
}
