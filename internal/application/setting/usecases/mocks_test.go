package usecases

import (
	"context"

	"crewhub/internal/domain/setting"
	"crewhub/internal/shared/logger"
)

type mockSettingRepository struct {
	UpsertShiftSettingFunc            func(ctx context.Context, s *setting.ShiftSetting) error
	GetShiftSettingFunc               func(ctx context.Context, companyID uint) (*setting.ShiftSetting, error)
	UpsertRotaRuleSettingFunc         func(ctx context.Context, s *setting.RotaRuleSetting) error
	GetRotaRuleSettingFunc            func(ctx context.Context, companyID uint) (*setting.RotaRuleSetting, error)
	UpsertBreakComplianceSettingFunc  func(ctx context.Context, s *setting.BreakComplianceSetting) error
	GetBreakComplianceSettingFunc     func(ctx context.Context, companyID uint) (*setting.BreakComplianceSetting, error)
	UpsertScreenTimeSettingFunc       func(ctx context.Context, s *setting.ScreenTimeSetting) error
	GetScreenTimeSettingFunc          func(ctx context.Context, companyID uint) (*setting.ScreenTimeSetting, error)
	UpsertNotificationSettingFunc     func(ctx context.Context, s *setting.NotificationSetting) error
	GetNotificationSettingFunc        func(ctx context.Context, companyID uint) (*setting.NotificationSetting, error)
	UpsertActivityTrackingSettingFunc func(ctx context.Context, s *setting.ActivityTrackingSetting) error
	GetActivityTrackingSettingFunc    func(ctx context.Context, companyID uint) (*setting.ActivityTrackingSetting, error)
}

func (m *mockSettingRepository) UpsertShiftSetting(ctx context.Context, s *setting.ShiftSetting) error {
	if m.UpsertShiftSettingFunc != nil {
		return m.UpsertShiftSettingFunc(ctx, s)
	}
	return nil
}

func (m *mockSettingRepository) GetShiftSetting(ctx context.Context, companyID uint) (*setting.ShiftSetting, error) {
	if m.GetShiftSettingFunc != nil {
		return m.GetShiftSettingFunc(ctx, companyID)
	}
	return nil, nil
}

func (m *mockSettingRepository) UpsertRotaRuleSetting(ctx context.Context, s *setting.RotaRuleSetting) error {
	if m.UpsertRotaRuleSettingFunc != nil {
		return m.UpsertRotaRuleSettingFunc(ctx, s)
	}
	return nil
}

func (m *mockSettingRepository) GetRotaRuleSetting(ctx context.Context, companyID uint) (*setting.RotaRuleSetting, error) {
	if m.GetRotaRuleSettingFunc != nil {
		return m.GetRotaRuleSettingFunc(ctx, companyID)
	}
	return nil, nil
}

func (m *mockSettingRepository) UpsertBreakComplianceSetting(ctx context.Context, s *setting.BreakComplianceSetting) error {
	if m.UpsertBreakComplianceSettingFunc != nil {
		return m.UpsertBreakComplianceSettingFunc(ctx, s)
	}
	return nil
}

func (m *mockSettingRepository) GetBreakComplianceSetting(ctx context.Context, companyID uint) (*setting.BreakComplianceSetting, error) {
	if m.GetBreakComplianceSettingFunc != nil {
		return m.GetBreakComplianceSettingFunc(ctx, companyID)
	}
	return nil, nil
}

func (m *mockSettingRepository) UpsertScreenTimeSetting(ctx context.Context, s *setting.ScreenTimeSetting) error {
	if m.UpsertScreenTimeSettingFunc != nil {
		return m.UpsertScreenTimeSettingFunc(ctx, s)
	}
	return nil
}

func (m *mockSettingRepository) GetScreenTimeSetting(ctx context.Context, companyID uint) (*setting.ScreenTimeSetting, error) {
	if m.GetScreenTimeSettingFunc != nil {
		return m.GetScreenTimeSettingFunc(ctx, companyID)
	}
	return nil, nil
}

func (m *mockSettingRepository) UpsertNotificationSetting(ctx context.Context, s *setting.NotificationSetting) error {
	if m.UpsertNotificationSettingFunc != nil {
		return m.UpsertNotificationSettingFunc(ctx, s)
	}
	return nil
}

func (m *mockSettingRepository) GetNotificationSetting(ctx context.Context, companyID uint) (*setting.NotificationSetting, error) {
	if m.GetNotificationSettingFunc != nil {
		return m.GetNotificationSettingFunc(ctx, companyID)
	}
	return nil, nil
}

func (m *mockSettingRepository) UpsertActivityTrackingSetting(ctx context.Context, s *setting.ActivityTrackingSetting) error {
	if m.UpsertActivityTrackingSettingFunc != nil {
		return m.UpsertActivityTrackingSettingFunc(ctx, s)
	}
	return nil
}

func (m *mockSettingRepository) GetActivityTrackingSetting(ctx context.Context, companyID uint) (*setting.ActivityTrackingSetting, error) {
	if m.GetActivityTrackingSettingFunc != nil {
		return m.GetActivityTrackingSettingFunc(ctx, companyID)
	}
	return nil, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
