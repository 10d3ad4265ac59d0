package usecases

import (
	"context"

	"crewhub/internal/domain/employee"
	"crewhub/internal/shared/errors"
)

type GetEmployeeUseCase struct {
	employeeRepo employee.Repository
}

func NewGetEmployeeUseCase(employeeRepo employee.Repository) *GetEmployeeUseCase {
	return &GetEmployeeUseCase{employeeRepo: employeeRepo}
}

func (uc *GetEmployeeUseCase) Execute(ctx context.Context, employeeSID string, companyID uint) (*employee.Employee, error) {
	e, err := uc.employeeRepo.GetBySID(ctx, employeeSID)
	if err != nil {
		return nil, err
	}
	if e.CompanyID() != companyID {
		return nil, errors.NewNotFoundError("employee not found")
	}
	return e, nil
}
