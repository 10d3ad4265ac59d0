package usecases

import (
	"context"
	"strings"

	"crewhub/internal/domain/employee"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type CreateEmployeeCommand struct {
	CompanyID       uint
	FirstName       string
	LastName        string
	Email           string
	PhoneNumber     string
	AnnualLeaveDays int
	PayRate         float64
	WeeklyHours     int
	CurrencyCode    string
	CountryCode     string
	Timezone        string
}

type CreateEmployeeUseCase struct {
	employeeRepo employee.Repository
	logger       logger.Interface
}

func NewCreateEmployeeUseCase(employeeRepo employee.Repository, logger logger.Interface) *CreateEmployeeUseCase {
	return &CreateEmployeeUseCase{
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

func (uc *CreateEmployeeUseCase) Execute(ctx context.Context, cmd CreateEmployeeCommand) (*employee.Employee, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))

	if existing, err := uc.employeeRepo.GetByEmail(ctx, cmd.CompanyID, email); err == nil && existing != nil {
		return nil, errors.NewConflictError("an employee with this email already exists")
	} else if err != nil && !errors.IsNotFoundError(err) {
		return nil, err
	}

	e, err := employee.NewEmployee(cmd.CompanyID, cmd.FirstName, cmd.LastName, email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := e.UpdateProfile(cmd.FirstName, cmd.LastName, cmd.PhoneNumber, cmd.AnnualLeaveDays); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := e.UpdatePaySettings(cmd.PayRate, cmd.WeeklyHours, cmd.CurrencyCode, cmd.CountryCode, cmd.Timezone); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.employeeRepo.Save(ctx, e); err != nil {
		uc.logger.Errorw("failed to create employee", "error", err, "company_id", cmd.CompanyID)
		return nil, err
	}

	uc.logger.Infow("employee created", "employee_id", e.ID(), "company_id", cmd.CompanyID)
	return e, nil
}
