package mappers

import (
	"fmt"
	"time"

	"crewhub/internal/domain/employee"
	"crewhub/internal/infrastructure/persistence/models"
)

type EmployeeMapper interface {
	ToModel(e *employee.Employee) *models.EmployeeModel
	ToDomain(model *models.EmployeeModel) (*employee.Employee, error)
}

type EmployeeMapperImpl struct{}

func NewEmployeeMapper() EmployeeMapper {
	return &EmployeeMapperImpl{}
}

func (m *EmployeeMapperImpl) ToModel(e *employee.Employee) *models.EmployeeModel {
	return &models.EmployeeModel{
		ID:              e.ID(),
		SID:             e.SID(),
		CompanyID:       e.CompanyID(),
		UserID:          e.UserID(),
		FirstName:       e.FirstName(),
		LastName:        e.LastName(),
		Email:           e.Email(),
		PhoneNumber:     e.PhoneNumber(),
		Timezone:        e.Timezone(),
		CountryCode:     e.CountryCode(),
		CurrencyCode:    e.CurrencyCode(),
		PayRate:         e.PayRate(),
		WeeklyHours:     e.WeeklyHours(),
		AnnualLeaveDays: e.AnnualLeaveDays(),
		JobRoleID:       e.JobRoleID(),
		InviteToken:     e.InviteToken(),
		InviteAccepted:  e.InviteAccepted(),
		CreatedAt:       e.CreatedAt().UnixMilli(),
		UpdatedAt:       e.UpdatedAt().UnixMilli(),
	}
}

func (m *EmployeeMapperImpl) ToDomain(model *models.EmployeeModel) (*employee.Employee, error) {
	e, err := employee.ReconstructEmployee(
		model.ID,
		model.SID,
		model.CompanyID,
		model.UserID,
		model.FirstName,
		model.LastName,
		model.Email,
		model.PhoneNumber,
		model.Timezone,
		model.CountryCode,
		model.CurrencyCode,
		model.PayRate,
		model.WeeklyHours,
		model.AnnualLeaveDays,
		model.JobRoleID,
		model.InviteToken,
		model.InviteAccepted,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct employee: %w", err)
	}

	return e, nil
}
