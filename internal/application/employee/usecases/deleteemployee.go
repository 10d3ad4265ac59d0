package usecases

import (
	"context"

	"crewhub/internal/domain/employee"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type DeleteEmployeeCommand struct {
	EmployeeSID string
	CompanyID   uint
}

type DeleteEmployeeUseCase struct {
	employeeRepo employee.Repository
	logger       logger.Interface
}

func NewDeleteEmployeeUseCase(employeeRepo employee.Repository, logger logger.Interface) *DeleteEmployeeUseCase {
	return &DeleteEmployeeUseCase{
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

func (uc *DeleteEmployeeUseCase) Execute(ctx context.Context, cmd DeleteEmployeeCommand) error {
	e, err := uc.employeeRepo.GetBySID(ctx, cmd.EmployeeSID)
	if err != nil {
		return err
	}
	if e.CompanyID() != cmd.CompanyID {
		return errors.NewNotFoundError("employee not found")
	}

	if err := uc.employeeRepo.Delete(ctx, e.ID()); err != nil {
		uc.logger.Errorw("failed to delete employee", "error", err, "employee_id", e.ID())
		return err
	}

	uc.logger.Infow("employee deleted", "employee_id", e.ID())
	return nil
}
