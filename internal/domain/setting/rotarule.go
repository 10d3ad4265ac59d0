package setting

import (
	"fmt"
	"time"
)

// RotaRuleSetting holds the per-company scheduling constraints applied
// when building rotas. Singleton per company.
type RotaRuleSetting struct {
	id                     uint
	companyID              uint
	allowMemberSwaps       bool
	minShiftHours          int
	maxShiftHours          int
	minRestHoursBetween    int
	maxConsecutiveWorkdays int
	maxWeeklyHours         int
	minWeeklyHours         int
	createdAt              time.Time
	updatedAt              time.Time
}

func NewRotaRuleSetting(
	companyID uint,
	allowMemberSwaps bool,
	minShiftHours int,
	maxShiftHours int,
	minRestHoursBetween int,
	maxConsecutiveWorkdays int,
	maxWeeklyHours int,
	minWeeklyHours int,
) (*RotaRuleSetting, error) {
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if minShiftHours < 1 {
		return nil, fmt.Errorf("minimum shift duration must be at least 1 hour")
	}
	if maxShiftHours < minShiftHours {
		return nil, fmt.Errorf("maximum shift duration cannot be less than the minimum")
	}
	if minRestHoursBetween < 0 {
		return nil, fmt.Errorf("minimum rest between shifts cannot be negative")
	}
	if maxConsecutiveWorkdays < 1 {
		return nil, fmt.Errorf("maximum consecutive workdays must be at least 1")
	}
	if minWeeklyHours < 0 {
		return nil, fmt.Errorf("minimum weekly hours cannot be negative")
	}
	if maxWeeklyHours < minWeeklyHours {
		return nil, fmt.Errorf("maximum weekly hours cannot be less than the minimum")
	}

	now := time.Now()

	return &RotaRuleSetting{
		companyID:              companyID,
		allowMemberSwaps:       allowMemberSwaps,
		minShiftHours:          minShiftHours,
		maxShiftHours:          maxShiftHours,
		minRestHoursBetween:    minRestHoursBetween,
		maxConsecutiveWorkdays: maxConsecutiveWorkdays,
		maxWeeklyHours:         maxWeeklyHours,
		minWeeklyHours:         minWeeklyHours,
		createdAt:              now,
		updatedAt:              now,
	}, nil
}

func ReconstructRotaRuleSetting(
	settingID uint,
	companyID uint,
	allowMemberSwaps bool,
	minShiftHours int,
	maxShiftHours int,
	minRestHoursBetween int,
	maxConsecutiveWorkdays int,
	maxWeeklyHours int,
	minWeeklyHours int,
	createdAt, updatedAt time.Time,
) *RotaRuleSetting {
	return &RotaRuleSetting{
		id:                     settingID,
		companyID:              companyID,
		allowMemberSwaps:       allowMemberSwaps,
		minShiftHours:          minShiftHours,
		maxShiftHours:          maxShiftHours,
		minRestHoursBetween:    minRestHoursBetween,
		maxConsecutiveWorkdays: maxConsecutiveWorkdays,
		maxWeeklyHours:         maxWeeklyHours,
		minWeeklyHours:         minWeeklyHours,
		createdAt:              createdAt,
		updatedAt:              updatedAt,
	}
}

func (s *RotaRuleSetting) ID() uint                    { return s.id }
func (s *RotaRuleSetting) CompanyID() uint             { return s.companyID }
func (s *RotaRuleSetting) AllowMemberSwaps() bool      { return s.allowMemberSwaps }
func (s *RotaRuleSetting) MinShiftHours() int          { return s.minShiftHours }
func (s *RotaRuleSetting) MaxShiftHours() int          { return s.maxShiftHours }
func (s *RotaRuleSetting) MinRestHoursBetween() int    { return s.minRestHoursBetween }
func (s *RotaRuleSetting) MaxConsecutiveWorkdays() int { return s.maxConsecutiveWorkdays }
func (s *RotaRuleSetting) MaxWeeklyHours() int         { return s.maxWeeklyHours }
func (s *RotaRuleSetting) MinWeeklyHours() int         { return s.minWeeklyHours }
func (s *RotaRuleSetting) CreatedAt() time.Time        { return s.createdAt }
func (s *RotaRuleSetting) UpdatedAt() time.Time        { return s.updatedAt }

func (s *RotaRuleSetting) SetID(settingID uint) { s.id = settingID }
