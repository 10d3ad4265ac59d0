package setting

import (
	"fmt"
	"time"
)

// ShiftSetting holds the per-company shift trading rules. Exactly one
// row exists per company; writes go through the upsert on Repository.
type ShiftSetting struct {
	id                   uint
	companyID            uint
	enableShiftTrading   bool
	tradesAcrossBranches bool
	tradesAcrossRoles    bool
	minTradeNoticeHours  int
	enableOpenShifts     bool
	allowAdminOverride   bool
	createdAt            time.Time
	updatedAt            time.Time
}

func NewShiftSetting(
	companyID uint,
	enableShiftTrading bool,
	tradesAcrossBranches bool,
	tradesAcrossRoles bool,
	minTradeNoticeHours int,
	enableOpenShifts bool,
	allowAdminOverride bool,
) (*ShiftSetting, error) {
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if minTradeNoticeHours < 0 {
		return nil, fmt.Errorf("minimum trade notice cannot be negative")
	}

	now := time.Now()

	return &ShiftSetting{
		companyID:            companyID,
		enableShiftTrading:   enableShiftTrading,
		tradesAcrossBranches: tradesAcrossBranches,
		tradesAcrossRoles:    tradesAcrossRoles,
		minTradeNoticeHours:  minTradeNoticeHours,
		enableOpenShifts:     enableOpenShifts,
		allowAdminOverride:   allowAdminOverride,
		createdAt:            now,
		updatedAt:            now,
	}, nil
}

func ReconstructShiftSetting(
	settingID uint,
	companyID uint,
	enableShiftTrading bool,
	tradesAcrossBranches bool,
	tradesAcrossRoles bool,
	minTradeNoticeHours int,
	enableOpenShifts bool,
	allowAdminOverride bool,
	createdAt, updatedAt time.Time,
) *ShiftSetting {
	return &ShiftSetting{
		id:                   settingID,
		companyID:            companyID,
		enableShiftTrading:   enableShiftTrading,
		tradesAcrossBranches: tradesAcrossBranches,
		tradesAcrossRoles:    tradesAcrossRoles,
		minTradeNoticeHours:  minTradeNoticeHours,
		enableOpenShifts:     enableOpenShifts,
		allowAdminOverride:   allowAdminOverride,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}
}

func (s *ShiftSetting) ID() uint                   { return s.id }
func (s *ShiftSetting) CompanyID() uint            { return s.companyID }
func (s *ShiftSetting) EnableShiftTrading() bool   { return s.enableShiftTrading }
func (s *ShiftSetting) TradesAcrossBranches() bool { return s.tradesAcrossBranches }
func (s *ShiftSetting) TradesAcrossRoles() bool    { return s.tradesAcrossRoles }
func (s *ShiftSetting) MinTradeNoticeHours() int   { return s.minTradeNoticeHours }
func (s *ShiftSetting) EnableOpenShifts() bool     { return s.enableOpenShifts }
func (s *ShiftSetting) AllowAdminOverride() bool   { return s.allowAdminOverride }
func (s *ShiftSetting) CreatedAt() time.Time       { return s.createdAt }
func (s *ShiftSetting) UpdatedAt() time.Time       { return s.updatedAt }

func (s *ShiftSetting) SetID(settingID uint) { s.id = settingID }
