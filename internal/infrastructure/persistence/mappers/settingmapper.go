package mappers

import (
	"time"

	"crewhub/internal/domain/setting"
	"crewhub/internal/infrastructure/persistence/models"
)

// SettingMapper converts the per-company settings aggregates to and
// from their persistence models. Child collections (break rules, app
// classifications, recipients, tracked employees) travel separately so
// repositories can replace them wholesale.
type SettingMapper interface {
	ShiftToModel(s *setting.ShiftSetting) *models.ShiftSettingModel
	ShiftToDomain(model *models.ShiftSettingModel) *setting.ShiftSetting

	RotaRuleToModel(s *setting.RotaRuleSetting) *models.RotaRuleSettingModel
	RotaRuleToDomain(model *models.RotaRuleSettingModel) *setting.RotaRuleSetting

	BreakComplianceToModel(s *setting.BreakComplianceSetting) *models.BreakComplianceSettingModel
	BreakRuleToModels(settingID uint, breaks []*setting.BreakRule) []models.BreakRuleModel
	BreakComplianceToDomain(model *models.BreakComplianceSettingModel, ruleModels []models.BreakRuleModel) *setting.BreakComplianceSetting

	ScreenTimeToModel(s *setting.ScreenTimeSetting) *models.ScreenTimeSettingModel
	AppClassificationToModels(settingID uint, apps []*setting.AppClassification) []models.AppClassificationModel
	ScreenTimeToDomain(model *models.ScreenTimeSettingModel, appModels []models.AppClassificationModel) *setting.ScreenTimeSetting

	NotificationToModel(s *setting.NotificationSetting) *models.NotificationSettingModel
	RecipientToModels(settingID uint, jobRoleIDs []uint) []models.NotificationRecipientModel
	NotificationToDomain(model *models.NotificationSettingModel, recipientModels []models.NotificationRecipientModel) *setting.NotificationSetting

	ActivityTrackingToModel(s *setting.ActivityTrackingSetting) *models.ActivityTrackingSettingModel
	TrackedEmployeeToModels(settingID uint, employeeIDs []uint) []models.TrackedEmployeeModel
	ActivityTrackingToDomain(model *models.ActivityTrackingSettingModel, trackedModels []models.TrackedEmployeeModel) *setting.ActivityTrackingSetting
}

type SettingMapperImpl struct{}

func NewSettingMapper() SettingMapper {
	return &SettingMapperImpl{}
}

func (m *SettingMapperImpl) ShiftToModel(s *setting.ShiftSetting) *models.ShiftSettingModel {
	return &models.ShiftSettingModel{
		ID:                   s.ID(),
		CompanyID:            s.CompanyID(),
		EnableShiftTrading:   s.EnableShiftTrading(),
		TradesAcrossBranches: s.TradesAcrossBranches(),
		TradesAcrossRoles:    s.TradesAcrossRoles(),
		MinTradeNoticeHours:  s.MinTradeNoticeHours(),
		EnableOpenShifts:     s.EnableOpenShifts(),
		AllowAdminOverride:   s.AllowAdminOverride(),
		CreatedAt:            s.CreatedAt().UnixMilli(),
		UpdatedAt:            s.UpdatedAt().UnixMilli(),
	}
}

func (m *SettingMapperImpl) ShiftToDomain(model *models.ShiftSettingModel) *setting.ShiftSetting {
	return setting.ReconstructShiftSetting(
		model.ID,
		model.CompanyID,
		model.EnableShiftTrading,
		model.TradesAcrossBranches,
		model.TradesAcrossRoles,
		model.MinTradeNoticeHours,
		model.EnableOpenShifts,
		model.AllowAdminOverride,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

func (m *SettingMapperImpl) RotaRuleToModel(s *setting.RotaRuleSetting) *models.RotaRuleSettingModel {
	return &models.RotaRuleSettingModel{
		ID:                     s.ID(),
		CompanyID:              s.CompanyID(),
		AllowMemberSwaps:       s.AllowMemberSwaps(),
		MinShiftHours:          s.MinShiftHours(),
		MaxShiftHours:          s.MaxShiftHours(),
		MinRestHoursBetween:    s.MinRestHoursBetween(),
		MaxConsecutiveWorkdays: s.MaxConsecutiveWorkdays(),
		MaxWeeklyHours:         s.MaxWeeklyHours(),
		MinWeeklyHours:         s.MinWeeklyHours(),
		CreatedAt:              s.CreatedAt().UnixMilli(),
		UpdatedAt:              s.UpdatedAt().UnixMilli(),
	}
}

func (m *SettingMapperImpl) RotaRuleToDomain(model *models.RotaRuleSettingModel) *setting.RotaRuleSetting {
	return setting.ReconstructRotaRuleSetting(
		model.ID,
		model.CompanyID,
		model.AllowMemberSwaps,
		model.MinShiftHours,
		model.MaxShiftHours,
		model.MinRestHoursBetween,
		model.MaxConsecutiveWorkdays,
		model.MaxWeeklyHours,
		model.MinWeeklyHours,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

func (m *SettingMapperImpl) BreakComplianceToModel(s *setting.BreakComplianceSetting) *models.BreakComplianceSettingModel {
	return &models.BreakComplianceSettingModel{
		ID:        s.ID(),
		CompanyID: s.CompanyID(),
		Enabled:   s.Enabled(),
		Grouping:  string(s.Grouping()),
		CreatedAt: s.CreatedAt().UnixMilli(),
		UpdatedAt: s.UpdatedAt().UnixMilli(),
	}
}

func (m *SettingMapperImpl) BreakRuleToModels(settingID uint, breaks []*setting.BreakRule) []models.BreakRuleModel {
	ruleModels := make([]models.BreakRuleModel, 0, len(breaks))
	for _, rule := range breaks {
		ruleModels = append(ruleModels, models.BreakRuleModel{
			SettingID:       settingID,
			Name:            rule.Name(),
			DurationMinutes: rule.DurationMinutes(),
			Active:          rule.Active(),
		})
	}
	return ruleModels
}

func (m *SettingMapperImpl) BreakComplianceToDomain(model *models.BreakComplianceSettingModel, ruleModels []models.BreakRuleModel) *setting.BreakComplianceSetting {
	breaks := make([]*setting.BreakRule, 0, len(ruleModels))
	for _, rm := range ruleModels {
		breaks = append(breaks, setting.ReconstructBreakRule(rm.ID, rm.SettingID, rm.Name, rm.DurationMinutes, rm.Active))
	}

	return setting.ReconstructBreakComplianceSetting(
		model.ID,
		model.CompanyID,
		model.Enabled,
		setting.BreakGrouping(model.Grouping),
		breaks,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

func (m *SettingMapperImpl) ScreenTimeToModel(s *setting.ScreenTimeSetting) *models.ScreenTimeSettingModel {
	return &models.ScreenTimeSettingModel{
		ID:                  s.ID(),
		CompanyID:           s.CompanyID(),
		EnableTimeTracking:  s.EnableTimeTracking(),
		ProductivityEnabled: s.ProductivityEnabled(),
		EnableOvertime:      s.EnableOvertime(),
		BaseHourlyRate:      s.BaseHourlyRate(),
		Currency:            s.Currency(),
		StandardDailyHours:  s.StandardDailyHours(),
		StandardWeeklyHours: s.StandardWeeklyHours(),
		CreatedAt:           s.CreatedAt().UnixMilli(),
		UpdatedAt:           s.UpdatedAt().UnixMilli(),
	}
}

func (m *SettingMapperImpl) AppClassificationToModels(settingID uint, apps []*setting.AppClassification) []models.AppClassificationModel {
	appModels := make([]models.AppClassificationModel, 0, len(apps))
	for _, app := range apps {
		appModels = append(appModels, models.AppClassificationModel{
			SettingID: settingID,
			Name:      app.Name(),
			Category:  app.Category(),
			URL:       app.URL(),
			Kind:      string(app.Kind()),
		})
	}
	return appModels
}

func (m *SettingMapperImpl) ScreenTimeToDomain(model *models.ScreenTimeSettingModel, appModels []models.AppClassificationModel) *setting.ScreenTimeSetting {
	apps := make([]*setting.AppClassification, 0, len(appModels))
	for _, am := range appModels {
		apps = append(apps, setting.ReconstructAppClassification(am.ID, am.SettingID, am.Name, am.Category, am.URL, setting.AppKind(am.Kind)))
	}

	return setting.ReconstructScreenTimeSetting(
		model.ID,
		model.CompanyID,
		model.EnableTimeTracking,
		model.ProductivityEnabled,
		model.EnableOvertime,
		model.BaseHourlyRate,
		model.Currency,
		model.StandardDailyHours,
		model.StandardWeeklyHours,
		apps,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

func (m *SettingMapperImpl) NotificationToModel(s *setting.NotificationSetting) *models.NotificationSettingModel {
	return &models.NotificationSettingModel{
		ID:              s.ID(),
		CompanyID:       s.CompanyID(),
		RotaAlerts:      s.RotaAlerts(),
		TimesheetAlerts: s.TimesheetAlerts(),
		LeaveAlerts:     s.LeaveAlerts(),
		Celebrations:    s.Celebrations(),
		NewsUpdates:     s.NewsUpdates(),
		EmailEnabled:    s.EmailEnabled(),
		PushEnabled:     s.PushEnabled(),
		InAppEnabled:    s.InAppEnabled(),
		CreatedAt:       s.CreatedAt().UnixMilli(),
		UpdatedAt:       s.UpdatedAt().UnixMilli(),
	}
}

func (m *SettingMapperImpl) RecipientToModels(settingID uint, jobRoleIDs []uint) []models.NotificationRecipientModel {
	recipientModels := make([]models.NotificationRecipientModel, 0, len(jobRoleIDs))
	for _, roleID := range jobRoleIDs {
		recipientModels = append(recipientModels, models.NotificationRecipientModel{
			SettingID: settingID,
			JobRoleID: roleID,
		})
	}
	return recipientModels
}

func (m *SettingMapperImpl) NotificationToDomain(model *models.NotificationSettingModel, recipientModels []models.NotificationRecipientModel) *setting.NotificationSetting {
	jobRoleIDs := make([]uint, 0, len(recipientModels))
	for _, rm := range recipientModels {
		jobRoleIDs = append(jobRoleIDs, rm.JobRoleID)
	}

	return setting.ReconstructNotificationSetting(
		model.ID,
		model.CompanyID,
		model.RotaAlerts,
		model.TimesheetAlerts,
		model.LeaveAlerts,
		model.Celebrations,
		model.NewsUpdates,
		model.EmailEnabled,
		model.PushEnabled,
		model.InAppEnabled,
		jobRoleIDs,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

func (m *SettingMapperImpl) ActivityTrackingToModel(s *setting.ActivityTrackingSetting) *models.ActivityTrackingSettingModel {
	return &models.ActivityTrackingSettingModel{
		ID:                        s.ID(),
		CompanyID:                 s.CompanyID(),
		MonitoringEnabled:         s.MonitoringEnabled(),
		ScreenshotFrequency:       string(s.ScreenshotFrequency()),
		ScreenshotIntervalMinutes: s.ScreenshotIntervalMinutes(),
		ManagerDeleteScreenshots:  s.ManagerDeleteScreenshots(),
		CreatedAt:                 s.CreatedAt().UnixMilli(),
		UpdatedAt:                 s.UpdatedAt().UnixMilli(),
	}
}

func (m *SettingMapperImpl) TrackedEmployeeToModels(settingID uint, employeeIDs []uint) []models.TrackedEmployeeModel {
	trackedModels := make([]models.TrackedEmployeeModel, 0, len(employeeIDs))
	for _, employeeID := range employeeIDs {
		trackedModels = append(trackedModels, models.TrackedEmployeeModel{
			SettingID:  settingID,
			EmployeeID: employeeID,
		})
	}
	return trackedModels
}

func (m *SettingMapperImpl) ActivityTrackingToDomain(model *models.ActivityTrackingSettingModel, trackedModels []models.TrackedEmployeeModel) *setting.ActivityTrackingSetting {
	employeeIDs := make([]uint, 0, len(trackedModels))
	for _, tm := range trackedModels {
		employeeIDs = append(employeeIDs, tm.EmployeeID)
	}

	return setting.ReconstructActivityTrackingSetting(
		model.ID,
		model.CompanyID,
		model.MonitoringEnabled,
		setting.ScreenshotFrequency(model.ScreenshotFrequency),
		model.ScreenshotIntervalMinutes,
		model.ManagerDeleteScreenshots,
		employeeIDs,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
