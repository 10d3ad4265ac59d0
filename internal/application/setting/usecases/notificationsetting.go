package usecases

import (
	"context"

	"crewhub/internal/domain/setting"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type UpsertNotificationSettingCommand struct {
	CompanyID           uint
	RotaAlerts          bool
	TimesheetAlerts     bool
	LeaveAlerts         bool
	Celebrations        bool
	NewsUpdates         bool
	EmailEnabled        bool
	PushEnabled         bool
	InAppEnabled        bool
	RecipientJobRoleIDs []uint
}

type UpsertNotificationSettingUseCase struct {
	settingRepo setting.Repository
	logger      logger.Interface
}

func NewUpsertNotificationSettingUseCase(settingRepo setting.Repository, logger logger.Interface) *UpsertNotificationSettingUseCase {
	return &UpsertNotificationSettingUseCase{
		settingRepo: settingRepo,
		logger:      logger,
	}
}

func (uc *UpsertNotificationSettingUseCase) Execute(ctx context.Context, cmd UpsertNotificationSettingCommand) (*setting.NotificationSetting, error) {
	s, err := setting.NewNotificationSetting(
		cmd.CompanyID,
		cmd.RotaAlerts,
		cmd.TimesheetAlerts,
		cmd.LeaveAlerts,
		cmd.Celebrations,
		cmd.NewsUpdates,
		cmd.EmailEnabled,
		cmd.PushEnabled,
		cmd.InAppEnabled,
		cmd.RecipientJobRoleIDs,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.settingRepo.UpsertNotificationSetting(ctx, s); err != nil {
		uc.logger.Errorw("failed to upsert notification setting", "error", err, "company_id", cmd.CompanyID)
		return nil, err
	}

	uc.logger.Infow("notification setting saved", "company_id", cmd.CompanyID, "setting_id", s.ID())
	return s, nil
}

type GetNotificationSettingUseCase struct {
	settingRepo setting.Repository
}

func NewGetNotificationSettingUseCase(settingRepo setting.Repository) *GetNotificationSettingUseCase {
	return &GetNotificationSettingUseCase{settingRepo: settingRepo}
}

func (uc *GetNotificationSettingUseCase) Execute(ctx context.Context, companyID uint) (*setting.NotificationSetting, error) {
	return uc.settingRepo.GetNotificationSetting(ctx, companyID)
}
