package usecases

import (
	"context"

	"crewhub/internal/domain/setting"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type UpsertShiftSettingCommand struct {
	CompanyID            uint
	EnableShiftTrading   bool
	TradesAcrossBranches bool
	TradesAcrossRoles    bool
	MinTradeNoticeHours  int
	EnableOpenShifts     bool
	AllowAdminOverride   bool
}

type UpsertShiftSettingUseCase struct {
	settingRepo setting.Repository
	logger      logger.Interface
}

func NewUpsertShiftSettingUseCase(settingRepo setting.Repository, logger logger.Interface) *UpsertShiftSettingUseCase {
	return &UpsertShiftSettingUseCase{
		settingRepo: settingRepo,
		logger:      logger,
	}
}

func (uc *UpsertShiftSettingUseCase) Execute(ctx context.Context, cmd UpsertShiftSettingCommand) (*setting.ShiftSetting, error) {
	s, err := setting.NewShiftSetting(
		cmd.CompanyID,
		cmd.EnableShiftTrading,
		cmd.TradesAcrossBranches,
		cmd.TradesAcrossRoles,
		cmd.MinTradeNoticeHours,
		cmd.EnableOpenShifts,
		cmd.AllowAdminOverride,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.settingRepo.UpsertShiftSetting(ctx, s); err != nil {
		uc.logger.Errorw("failed to upsert shift setting", "error", err, "company_id", cmd.CompanyID)
		return nil, err
	}

	uc.logger.Infow("shift setting saved", "company_id", cmd.CompanyID, "setting_id", s.ID())
	return s, nil
}

type GetShiftSettingUseCase struct {
	settingRepo setting.Repository
}

func NewGetShiftSettingUseCase(settingRepo setting.Repository) *GetShiftSettingUseCase {
	return &GetShiftSettingUseCase{settingRepo: settingRepo}
}

func (uc *GetShiftSettingUseCase) Execute(ctx context.Context, companyID uint) (*setting.ShiftSetting, error) {
	return uc.settingRepo.GetShiftSetting(ctx, companyID)
}
