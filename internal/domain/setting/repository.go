package setting

import "context"

// Repository persists the per-company settings singletons. Every
// Upsert targets the unique company key: it creates the row on first
// write and updates it afterwards, replacing child rows wholesale for
// the aggregates that carry them. Gets return a not-found error when
// the company has never written the setting.
type Repository interface {
	UpsertShiftSetting(ctx context.Context, s *ShiftSetting) error
	GetShiftSetting(ctx context.Context, companyID uint) (*ShiftSetting, error)

	UpsertRotaRuleSetting(ctx context.Context, s *RotaRuleSetting) error
	GetRotaRuleSetting(ctx context.Context, companyID uint) (*RotaRuleSetting, error)

	UpsertBreakComplianceSetting(ctx context.Context, s *BreakComplianceSetting) error
	GetBreakComplianceSetting(ctx context.Context, companyID uint) (*BreakComplianceSetting, error)

	UpsertScreenTimeSetting(ctx context.Context, s *ScreenTimeSetting) error
	GetScreenTimeSetting(ctx context.Context, companyID uint) (*ScreenTimeSetting, error)

	UpsertNotificationSetting(ctx context.Context, s *NotificationSetting) error
	GetNotificationSetting(ctx context.Context, companyID uint) (*NotificationSetting, error)

	UpsertActivityTrackingSetting(ctx context.Context, s *ActivityTrackingSetting) error
	GetActivityTrackingSetting(ctx context.Context, companyID uint) (*ActivityTrackingSetting, error)
}
