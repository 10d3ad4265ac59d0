package usecases

import (
	"context"

	"crewhub/internal/domain/employee"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type PayRateInput struct {
	EmployeeSID  string
	PayRate      float64
	WeeklyHours  int
	CurrencyCode string
	CountryCode  string
	Timezone     string
}

type UpdatePayRatesCommand struct {
	CompanyID uint
	Items     []PayRateInput
}

// UpdatePayRatesUseCase applies a batch of pay changes atomically:
// either every employee in the batch is updated or none are.
type UpdatePayRatesUseCase struct {
	employeeRepo employee.Repository
	txManager    TransactionManager
	logger       logger.Interface
}

func NewUpdatePayRatesUseCase(
	employeeRepo employee.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *UpdatePayRatesUseCase {
	return &UpdatePayRatesUseCase{
		employeeRepo: employeeRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *UpdatePayRatesUseCase) Execute(ctx context.Context, cmd UpdatePayRatesCommand) error {
	if len(cmd.Items) == 0 {
		return errors.NewValidationError("at least one pay rate entry is required")
	}

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		for _, item := range cmd.Items {
			e, err := uc.employeeRepo.GetBySID(txCtx, item.EmployeeSID)
			if err != nil {
				return err
			}
			if e.CompanyID() != cmd.CompanyID {
				return errors.NewNotFoundError("employee not found")
			}

			if err := e.UpdatePaySettings(item.PayRate, item.WeeklyHours, item.CurrencyCode, item.CountryCode, item.Timezone); err != nil {
				return errors.NewValidationError(err.Error())
			}

			if err := uc.employeeRepo.Update(txCtx, e); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to update pay rates", "error", err, "company_id", cmd.CompanyID, "count", len(cmd.Items))
		return err
	}

	uc.logger.Infow("pay rates updated", "company_id", cmd.CompanyID, "count", len(cmd.Items))
	return nil
}
