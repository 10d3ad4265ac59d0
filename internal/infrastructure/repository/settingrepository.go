package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"crewhub/internal/domain/setting"
	"crewhub/internal/infrastructure/persistence/mappers"
	"crewhub/internal/infrastructure/persistence/models"
	"crewhub/internal/shared/db"
	apperrors "crewhub/internal/shared/errors"
)

// SettingRepository persists the per-company settings singletons.
// Every upsert runs in one transaction: look up by the unique company
// key, create or update the parent, then delete and reinsert the child
// rows wholesale. Child IDs do not survive an update.
type SettingRepository struct {
	db     *gorm.DB
	mapper mappers.SettingMapper
}

func NewSettingRepository(database *gorm.DB) *SettingRepository {
	return &SettingRepository{
		db:     database,
		mapper: mappers.NewSettingMapper(),
	}
}

func (r *SettingRepository) UpsertShiftSetting(ctx context.Context, s *setting.ShiftSetting) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var existing models.ShiftSettingModel
	err := tx.Where("company_id = ?", s.CompanyID()).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		model := r.mapper.ShiftToModel(s)
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create shift setting: %w", err)
		}
		s.SetID(model.ID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up shift setting: %w", err)
	}

	s.SetID(existing.ID)
	model := r.mapper.ShiftToModel(s)
	if err := tx.
		Model(&models.ShiftSettingModel{}).
		Where("id = ?", existing.ID).
		Select("enable_shift_trading", "trades_across_branches", "trades_across_roles",
			"min_trade_notice_hours", "enable_open_shifts", "allow_admin_override", "updated_at").
		Updates(model).Error; err != nil {
		return fmt.Errorf("failed to update shift setting: %w", err)
	}

	return nil
}

func (r *SettingRepository) GetShiftSetting(ctx context.Context, companyID uint) (*setting.ShiftSetting, error) {
	var model models.ShiftSettingModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("company_id = ?", companyID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("shift setting not found")
		}
		return nil, fmt.Errorf("failed to find shift setting: %w", err)
	}

	return r.mapper.ShiftToDomain(&model), nil
}

func (r *SettingRepository) UpsertRotaRuleSetting(ctx context.Context, s *setting.RotaRuleSetting) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var existing models.RotaRuleSettingModel
	err := tx.Where("company_id = ?", s.CompanyID()).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		model := r.mapper.RotaRuleToModel(s)
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create rota rule setting: %w", err)
		}
		s.SetID(model.ID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up rota rule setting: %w", err)
	}

	s.SetID(existing.ID)
	model := r.mapper.RotaRuleToModel(s)
	if err := tx.
		Model(&models.RotaRuleSettingModel{}).
		Where("id = ?", existing.ID).
		Select("allow_member_swaps", "min_shift_hours", "max_shift_hours",
			"min_rest_hours_between", "max_consecutive_workdays",
			"max_weekly_hours", "min_weekly_hours", "updated_at").
		Updates(model).Error; err != nil {
		return fmt.Errorf("failed to update rota rule setting: %w", err)
	}

	return nil
}

func (r *SettingRepository) GetRotaRuleSetting(ctx context.Context, companyID uint) (*setting.RotaRuleSetting, error) {
	var model models.RotaRuleSettingModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("company_id = ?", companyID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("rota rule setting not found")
		}
		return nil, fmt.Errorf("failed to find rota rule setting: %w", err)
	}

	return r.mapper.RotaRuleToDomain(&model), nil
}

func (r *SettingRepository) UpsertBreakComplianceSetting(ctx context.Context, s *setting.BreakComplianceSetting) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(innerTx *gorm.DB) error {
		var existing models.BreakComplianceSettingModel
		err := innerTx.Where("company_id = ?", s.CompanyID()).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			model := r.mapper.BreakComplianceToModel(s)
			if err := innerTx.Create(model).Error; err != nil {
				return fmt.Errorf("failed to create break compliance setting: %w", err)
			}
			s.SetID(model.ID)
		case err != nil:
			return fmt.Errorf("failed to look up break compliance setting: %w", err)
		default:
			s.SetID(existing.ID)
			model := r.mapper.BreakComplianceToModel(s)
			if err := innerTx.
				Model(&models.BreakComplianceSettingModel{}).
				Where("id = ?", existing.ID).
				Select("enabled", "grouping", "updated_at").
				Updates(model).Error; err != nil {
				return fmt.Errorf("failed to update break compliance setting: %w", err)
			}
			if err := innerTx.Where("setting_id = ?", existing.ID).Delete(&models.BreakRuleModel{}).Error; err != nil {
				return fmt.Errorf("failed to clear break rules: %w", err)
			}
		}

		ruleModels := r.mapper.BreakRuleToModels(s.ID(), s.Breaks())
		if len(ruleModels) > 0 {
			if err := innerTx.Create(&ruleModels).Error; err != nil {
				return fmt.Errorf("failed to insert break rules: %w", err)
			}
		}

		return nil
	})
}

func (r *SettingRepository) GetBreakComplianceSetting(ctx context.Context, companyID uint) (*setting.BreakComplianceSetting, error) {
	var model models.BreakComplianceSettingModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("company_id = ?", companyID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("break compliance setting not found")
		}
		return nil, fmt.Errorf("failed to find break compliance setting: %w", err)
	}

	var ruleModels []models.BreakRuleModel
	if err := tx.Where("setting_id = ?", model.ID).Order("id ASC").Find(&ruleModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load break rules: %w", err)
	}

	return r.mapper.BreakComplianceToDomain(&model, ruleModels), nil
}

func (r *SettingRepository) UpsertScreenTimeSetting(ctx context.Context, s *setting.ScreenTimeSetting) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(innerTx *gorm.DB) error {
		var existing models.ScreenTimeSettingModel
		err := innerTx.Where("company_id = ?", s.CompanyID()).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			model := r.mapper.ScreenTimeToModel(s)
			if err := innerTx.Create(model).Error; err != nil {
				return fmt.Errorf("failed to create screen time setting: %w", err)
			}
			s.SetID(model.ID)
		case err != nil:
			return fmt.Errorf("failed to look up screen time setting: %w", err)
		default:
			s.SetID(existing.ID)
			model := r.mapper.ScreenTimeToModel(s)
			if err := innerTx.
				Model(&models.ScreenTimeSettingModel{}).
				Where("id = ?", existing.ID).
				Select("enable_time_tracking", "productivity_enabled", "enable_overtime",
					"base_hourly_rate", "currency", "standard_daily_hours",
					"standard_weekly_hours", "updated_at").
				Updates(model).Error; err != nil {
				return fmt.Errorf("failed to update screen time setting: %w", err)
			}
			if err := innerTx.Where("setting_id = ?", existing.ID).Delete(&models.AppClassificationModel{}).Error; err != nil {
				return fmt.Errorf("failed to clear app classifications: %w", err)
			}
		}

		appModels := r.mapper.AppClassificationToModels(s.ID(), s.Apps())
		if len(appModels) > 0 {
			if err := innerTx.Create(&appModels).Error; err != nil {
				return fmt.Errorf("failed to insert app classifications: %w", err)
			}
		}

		return nil
	})
}

func (r *SettingRepository) GetScreenTimeSetting(ctx context.Context, companyID uint) (*setting.ScreenTimeSetting, error) {
	var model models.ScreenTimeSettingModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("company_id = ?", companyID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("screen time setting not found")
		}
		return nil, fmt.Errorf("failed to find screen time setting: %w", err)
	}

	var appModels []models.AppClassificationModel
	if err := tx.Where("setting_id = ?", model.ID).Order("id ASC").Find(&appModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load app classifications: %w", err)
	}

	return r.mapper.ScreenTimeToDomain(&model, appModels), nil
}

func (r *SettingRepository) UpsertNotificationSetting(ctx context.Context, s *setting.NotificationSetting) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(innerTx *gorm.DB) error {
		var existing models.NotificationSettingModel
		err := innerTx.Where("company_id = ?", s.CompanyID()).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			model := r.mapper.NotificationToModel(s)
			if err := innerTx.Create(model).Error; err != nil {
				return fmt.Errorf("failed to create notification setting: %w", err)
			}
			s.SetID(model.ID)
		case err != nil:
			return fmt.Errorf("failed to look up notification setting: %w", err)
		default:
			s.SetID(existing.ID)
			model := r.mapper.NotificationToModel(s)
			if err := innerTx.
				Model(&models.NotificationSettingModel{}).
				Where("id = ?", existing.ID).
				Select("rota_alerts", "timesheet_alerts", "leave_alerts", "celebrations",
					"news_updates", "email_enabled", "push_enabled", "in_app_enabled", "updated_at").
				Updates(model).Error; err != nil {
				return fmt.Errorf("failed to update notification setting: %w", err)
			}
			if err := innerTx.Where("setting_id = ?", existing.ID).Delete(&models.NotificationRecipientModel{}).Error; err != nil {
				return fmt.Errorf("failed to clear notification recipients: %w", err)
			}
		}

		recipientModels := r.mapper.RecipientToModels(s.ID(), s.RecipientJobRoleIDs())
		if len(recipientModels) > 0 {
			if err := innerTx.Create(&recipientModels).Error; err != nil {
				return fmt.Errorf("failed to insert notification recipients: %w", err)
			}
		}

		return nil
	})
}

func (r *SettingRepository) GetNotificationSetting(ctx context.Context, companyID uint) (*setting.NotificationSetting, error) {
	var model models.NotificationSettingModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("company_id = ?", companyID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("notification setting not found")
		}
		return nil, fmt.Errorf("failed to find notification setting: %w", err)
	}

	var recipientModels []models.NotificationRecipientModel
	if err := tx.Where("setting_id = ?", model.ID).Order("id ASC").Find(&recipientModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load notification recipients: %w", err)
	}

	return r.mapper.NotificationToDomain(&model, recipientModels), nil
}

func (r *SettingRepository) UpsertActivityTrackingSetting(ctx context.Context, s *setting.ActivityTrackingSetting) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(innerTx *gorm.DB) error {
		var existing models.ActivityTrackingSettingModel
		err := innerTx.Where("company_id = ?", s.CompanyID()).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			model := r.mapper.ActivityTrackingToModel(s)
			if err := innerTx.Create(model).Error; err != nil {
				return fmt.Errorf("failed to create activity tracking setting: %w", err)
			}
			s.SetID(model.ID)
		case err != nil:
			return fmt.Errorf("failed to look up activity tracking setting: %w", err)
		default:
			s.SetID(existing.ID)
			model := r.mapper.ActivityTrackingToModel(s)
			if err := innerTx.
				Model(&models.ActivityTrackingSettingModel{}).
				Where("id = ?", existing.ID).
				Select("monitoring_enabled", "screenshot_frequency",
					"screenshot_interval_minutes", "manager_delete_screenshots", "updated_at").
				Updates(model).Error; err != nil {
				return fmt.Errorf("failed to update activity tracking setting: %w", err)
			}
			if err := innerTx.Where("setting_id = ?", existing.ID).Delete(&models.TrackedEmployeeModel{}).Error; err != nil {
				return fmt.Errorf("failed to clear tracked employees: %w", err)
			}
		}

		trackedModels := r.mapper.TrackedEmployeeToModels(s.ID(), s.TrackedEmployeeIDs())
		if len(trackedModels) > 0 {
			if err := innerTx.Create(&trackedModels).Error; err != nil {
				return fmt.Errorf("failed to insert tracked employees: %w", err)
			}
		}

		return nil
	})
}

func (r *SettingRepository) GetActivityTrackingSetting(ctx context.Context, companyID uint) (*setting.ActivityTrackingSetting, error) {
	var model models.ActivityTrackingSettingModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("company_id = ?", companyID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("activity tracking setting not found")
		}
		return nil, fmt.Errorf("failed to find activity tracking setting: %w", err)
	}

	var trackedModels []models.TrackedEmployeeModel
	if err := tx.Where("setting_id = ?", model.ID).Order("id ASC").Find(&trackedModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load tracked employees: %w", err)
	}

	return r.mapper.ActivityTrackingToDomain(&model, trackedModels), nil
}
