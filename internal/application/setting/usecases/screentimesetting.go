package usecases

import (
	"context"

	"crewhub/internal/domain/setting"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type AppClassificationInput struct {
	Name     string
	Category string
	URL      string
	Kind     string
}

type UpsertScreenTimeSettingCommand struct {
	CompanyID           uint
	EnableTimeTracking  bool
	ProductivityEnabled bool
	EnableOvertime      bool
	BaseHourlyRate      float64
	Currency            string
	StandardDailyHours  int
	StandardWeeklyHours int
	Apps                []AppClassificationInput
}

type UpsertScreenTimeSettingUseCase struct {
	settingRepo setting.Repository
	logger      logger.Interface
}

func NewUpsertScreenTimeSettingUseCase(settingRepo setting.Repository, logger logger.Interface) *UpsertScreenTimeSettingUseCase {
	return &UpsertScreenTimeSettingUseCase{
		settingRepo: settingRepo,
		logger:      logger,
	}
}

func (uc *UpsertScreenTimeSettingUseCase) Execute(ctx context.Context, cmd UpsertScreenTimeSettingCommand) (*setting.ScreenTimeSetting, error) {
	apps := make([]*setting.AppClassification, 0, len(cmd.Apps))
	for _, a := range cmd.Apps {
		app, err := setting.NewAppClassification(a.Name, a.Category, a.URL, setting.AppKind(a.Kind))
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		apps = append(apps, app)
	}

	s, err := setting.NewScreenTimeSetting(
		cmd.CompanyID,
		cmd.EnableTimeTracking,
		cmd.ProductivityEnabled,
		cmd.EnableOvertime,
		cmd.BaseHourlyRate,
		cmd.Currency,
		cmd.StandardDailyHours,
		cmd.StandardWeeklyHours,
		apps,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.settingRepo.UpsertScreenTimeSetting(ctx, s); err != nil {
		uc.logger.Errorw("failed to upsert screen time setting", "error", err, "company_id", cmd.CompanyID)
		return nil, err
	}

	uc.logger.Infow("screen time setting saved",
		"company_id", cmd.CompanyID,
		"setting_id", s.ID(),
		"apps", len(cmd.Apps),
	)
	return s, nil
}

type GetScreenTimeSettingUseCase struct {
	settingRepo setting.Repository
}

func NewGetScreenTimeSettingUseCase(settingRepo setting.Repository) *GetScreenTimeSettingUseCase {
	return &GetScreenTimeSettingUseCase{settingRepo: settingRepo}
}

func (uc *GetScreenTimeSettingUseCase) Execute(ctx context.Context, companyID uint) (*setting.ScreenTimeSetting, error) {
	return uc.settingRepo.GetScreenTimeSetting(ctx, companyID)
}
