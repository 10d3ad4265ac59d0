package usecases

import (
	"context"

	"crewhub/internal/domain/setting"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type BreakRuleInput struct {
	Name            string
	DurationMinutes int
	Active          bool
}

type UpsertBreakComplianceSettingCommand struct {
	CompanyID uint
	Enabled   bool
	Grouping  string
	Breaks    []BreakRuleInput
}

type UpsertBreakComplianceSettingUseCase struct {
	settingRepo setting.Repository
	logger      logger.Interface
}

func NewUpsertBreakComplianceSettingUseCase(settingRepo setting.Repository, logger logger.Interface) *UpsertBreakComplianceSettingUseCase {
	return &UpsertBreakComplianceSettingUseCase{
		settingRepo: settingRepo,
		logger:      logger,
	}
}

func (uc *UpsertBreakComplianceSettingUseCase) Execute(ctx context.Context, cmd UpsertBreakComplianceSettingCommand) (*setting.BreakComplianceSetting, error) {
	breaks := make([]*setting.BreakRule, 0, len(cmd.Breaks))
	for _, b := range cmd.Breaks {
		rule, err := setting.NewBreakRule(b.Name, b.DurationMinutes, b.Active)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		breaks = append(breaks, rule)
	}

	s, err := setting.NewBreakComplianceSetting(cmd.CompanyID, cmd.Enabled, setting.BreakGrouping(cmd.Grouping), breaks)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.settingRepo.UpsertBreakComplianceSetting(ctx, s); err != nil {
		uc.logger.Errorw("failed to upsert break compliance setting", "error", err, "company_id", cmd.CompanyID)
		return nil, err
	}

	uc.logger.Infow("break compliance setting saved",
		"company_id", cmd.CompanyID,
		"setting_id", s.ID(),
		"break_rules", len(cmd.Breaks),
	)
	return s, nil
}

type GetBreakComplianceSettingUseCase struct {
	settingRepo setting.Repository
}

func NewGetBreakComplianceSettingUseCase(settingRepo setting.Repository) *GetBreakComplianceSettingUseCase {
	return &GetBreakComplianceSettingUseCase{settingRepo: settingRepo}
}

func (uc *GetBreakComplianceSettingUseCase) Execute(ctx context.Context, companyID uint) (*setting.BreakComplianceSetting, error) {
	return uc.settingRepo.GetBreakComplianceSetting(ctx, companyID)
}
