package usecases

import (
	"context"

	"crewhub/internal/domain/setting"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type UpsertRotaRuleSettingCommand struct {
	CompanyID              uint
	AllowMemberSwaps       bool
	MinShiftHours          int
	MaxShiftHours          int
	MinRestHoursBetween    int
	MaxConsecutiveWorkdays int
	MaxWeeklyHours         int
	MinWeeklyHours         int
}

type UpsertRotaRuleSettingUseCase struct {
	settingRepo setting.Repository
	logger      logger.Interface
}

func NewUpsertRotaRuleSettingUseCase(settingRepo setting.Repository, logger logger.Interface) *UpsertRotaRuleSettingUseCase {
	return &UpsertRotaRuleSettingUseCase{
		settingRepo: settingRepo,
		logger:      logger,
	}
}

func (uc *UpsertRotaRuleSettingUseCase) Execute(ctx context.Context, cmd UpsertRotaRuleSettingCommand) (*setting.RotaRuleSetting, error) {
	s, err := setting.NewRotaRuleSetting(
		cmd.CompanyID,
		cmd.AllowMemberSwaps,
		cmd.MinShiftHours,
		cmd.MaxShiftHours,
		cmd.MinRestHoursBetween,
		cmd.MaxConsecutiveWorkdays,
		cmd.MaxWeeklyHours,
		cmd.MinWeeklyHours,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.settingRepo.UpsertRotaRuleSetting(ctx, s); err != nil {
		uc.logger.Errorw("failed to upsert rota rule setting", "error", err, "company_id", cmd.CompanyID)
		return nil, err
	}

	uc.logger.Infow("rota rule setting saved", "company_id", cmd.CompanyID, "setting_id", s.ID())
	return s, nil
}

type GetRotaRuleSettingUseCase struct {
	settingRepo setting.Repository
}

func NewGetRotaRuleSettingUseCase(settingRepo setting.Repository) *GetRotaRuleSettingUseCase {
	return &GetRotaRuleSettingUseCase{settingRepo: settingRepo}
}

func (uc *GetRotaRuleSettingUseCase) Execute(ctx context.Context, companyID uint) (*setting.RotaRuleSetting, error) {
	return uc.settingRepo.GetRotaRuleSetting(ctx, companyID)
}
