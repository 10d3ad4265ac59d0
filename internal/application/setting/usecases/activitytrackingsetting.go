package usecases

import (
	"context"

	"crewhub/internal/domain/setting"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type UpsertActivityTrackingSettingCommand struct {
	CompanyID                 uint
	MonitoringEnabled         bool
	ScreenshotFrequency       string
	ScreenshotIntervalMinutes int
	ManagerDeleteScreenshots  bool
	TrackedEmployeeIDs        []uint
}

type UpsertActivityTrackingSettingUseCase struct {
	settingRepo setting.Repository
	logger      logger.Interface
}

func NewUpsertActivityTrackingSettingUseCase(settingRepo setting.Repository, logger logger.Interface) *UpsertActivityTrackingSettingUseCase {
	return &UpsertActivityTrackingSettingUseCase{
		settingRepo: settingRepo,
		logger:      logger,
	}
}

func (uc *UpsertActivityTrackingSettingUseCase) Execute(ctx context.Context, cmd UpsertActivityTrackingSettingCommand) (*setting.ActivityTrackingSetting, error) {
	s, err := setting.NewActivityTrackingSetting(
		cmd.CompanyID,
		cmd.MonitoringEnabled,
		setting.ScreenshotFrequency(cmd.ScreenshotFrequency),
		cmd.ScreenshotIntervalMinutes,
		cmd.ManagerDeleteScreenshots,
		cmd.TrackedEmployeeIDs,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.settingRepo.UpsertActivityTrackingSetting(ctx, s); err != nil {
		uc.logger.Errorw("failed to upsert activity tracking setting", "error", err, "company_id", cmd.CompanyID)
		return nil, err
	}

	uc.logger.Infow("activity tracking setting saved", "company_id", cmd.CompanyID, "setting_id", s.ID())
	return s, nil
}

type GetActivityTrackingSettingUseCase struct {
	settingRepo setting.Repository
}

func NewGetActivityTrackingSettingUseCase(settingRepo setting.Repository) *GetActivityTrackingSettingUseCase {
	return &GetActivityTrackingSettingUseCase{settingRepo: settingRepo}
}

func (uc *GetActivityTrackingSettingUseCase) Execute(ctx context.Context, companyID uint) (*setting.ActivityTrackingSetting, error) {
	return uc.settingRepo.GetActivityTrackingSetting(ctx, companyID)
}
