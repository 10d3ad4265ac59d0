package setting

import (
	"fmt"
	"time"
)

type BreakGrouping string

const (
	BreakGroupingAll    BreakGrouping = "ALL"
	BreakGroupingShift  BreakGrouping = "SHIFT"
	BreakGroupingCustom BreakGrouping = "CUSTOM"
)

func (g BreakGrouping) IsValid() bool {
	switch g {
	case BreakGroupingAll, BreakGroupingShift, BreakGroupingCustom:
		return true
	}
	return false
}

// BreakRule is a child row of BreakComplianceSetting. Rules are
// replaced wholesale on every upsert, so their IDs are not stable
// across updates.
type BreakRule struct {
	id              uint
	settingID       uint
	name            string
	durationMinutes int
	active          bool
}

func NewBreakRule(name string, durationMinutes int, active bool) (*BreakRule, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("break name is required")
	}
	if durationMinutes < 1 {
		return nil, fmt.Errorf("break duration must be at least 1 minute")
	}

	return &BreakRule{
		name:            name,
		durationMinutes: durationMinutes,
		active:          active,
	}, nil
}

func ReconstructBreakRule(ruleID, settingID uint, name string, durationMinutes int, active bool) *BreakRule {
	return &BreakRule{
		id:              ruleID,
		settingID:       settingID,
		name:            name,
		durationMinutes: durationMinutes,
		active:          active,
	}
}

func (r *BreakRule) ID() uint             { return r.id }
func (r *BreakRule) SettingID() uint      { return r.settingID }
func (r *BreakRule) Name() string         { return r.name }
func (r *BreakRule) DurationMinutes() int { return r.durationMinutes }
func (r *BreakRule) Active() bool         { return r.active }

// BreakComplianceSetting is the per-company break policy together with
// its break rule children. Singleton per company.
type BreakComplianceSetting struct {
	id        uint
	companyID uint
	enabled   bool
	grouping  BreakGrouping
	breaks    []*BreakRule
	createdAt time.Time
	updatedAt time.Time
}

func NewBreakComplianceSetting(companyID uint, enabled bool, grouping BreakGrouping, breaks []*BreakRule) (*BreakComplianceSetting, error) {
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if grouping == "" {
		grouping = BreakGroupingAll
	}
	if !grouping.IsValid() {
		return nil, fmt.Errorf("invalid break grouping: %s", grouping)
	}

	if breaks == nil {
		breaks = []*BreakRule{}
	}

	now := time.Now()

	return &BreakComplianceSetting{
		companyID: companyID,
		enabled:   enabled,
		grouping:  grouping,
		breaks:    breaks,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructBreakComplianceSetting(
	settingID uint,
	companyID uint,
	enabled bool,
	grouping BreakGrouping,
	breaks []*BreakRule,
	createdAt, updatedAt time.Time,
) *BreakComplianceSetting {
	if breaks == nil {
		breaks = []*BreakRule{}
	}

	return &BreakComplianceSetting{
		id:        settingID,
		companyID: companyID,
		enabled:   enabled,
		grouping:  grouping,
		breaks:    breaks,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (s *BreakComplianceSetting) ID() uint                { return s.id }
func (s *BreakComplianceSetting) CompanyID() uint         { return s.companyID }
func (s *BreakComplianceSetting) Enabled() bool           { return s.enabled }
func (s *BreakComplianceSetting) Grouping() BreakGrouping { return s.grouping }
func (s *BreakComplianceSetting) CreatedAt() time.Time    { return s.createdAt }
func (s *BreakComplianceSetting) UpdatedAt() time.Time    { return s.updatedAt }

func (s *BreakComplianceSetting) Breaks() []*BreakRule {
	breaksCopy := make([]*BreakRule, len(s.breaks))
	copy(breaksCopy, s.breaks)
	return breaksCopy
}

func (s *BreakComplianceSetting) SetID(settingID uint) { s.id = settingID }

// ReplaceBreaks swaps the full set of break rules. Existing rules are
// discarded; persistence deletes and reinserts the child rows.
func (s *BreakComplianceSetting) ReplaceBreaks(breaks []*BreakRule) {
	if breaks == nil {
		breaks = []*BreakRule{}
	}
	s.breaks = breaks
	s.updatedAt = time.Now()
}

func (s *BreakComplianceSetting) UpdatePolicy(enabled bool, grouping BreakGrouping) error {
	if grouping == "" {
		grouping = BreakGroupingAll
	}
	if !grouping.IsValid() {
		return fmt.Errorf("invalid break grouping: %s", grouping)
	}

	s.enabled = enabled
	s.grouping = grouping
	s.updatedAt = time.Now()
	return nil
}
