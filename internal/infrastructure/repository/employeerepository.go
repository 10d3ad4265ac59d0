package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"crewhub/internal/domain/employee"
	"crewhub/internal/infrastructure/persistence/mappers"
	"crewhub/internal/infrastructure/persistence/models"
	"crewhub/internal/shared/db"
	apperrors "crewhub/internal/shared/errors"
	"crewhub/internal/shared/query"
)

var allowedEmployeeOrderByFields = map[string]bool{
	"id":         true,
	"first_name": true,
	"last_name":  true,
	"email":      true,
	"pay_rate":   true,
	"created_at": true,
	"updated_at": true,
}

type EmployeeRepository struct {
	db     *gorm.DB
	mapper mappers.EmployeeMapper
}

func NewEmployeeRepository(database *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{
		db:     database,
		mapper: mappers.NewEmployeeMapper(),
	}
}

func (r *EmployeeRepository) Save(ctx context.Context, e *employee.Employee) error {
	model := r.mapper.ToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("employee with this email already exists")
		}
		return fmt.Errorf("failed to create employee: %w", err)
	}

	e.SetID(model.ID)
	return nil
}

func (r *EmployeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	model := r.mapper.ToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.EmployeeModel{}).
		Where("id = ?", e.ID()).
		Select("user_id", "first_name", "last_name", "email", "phone_number",
			"timezone", "country_code", "currency_code", "pay_rate", "weekly_hours",
			"annual_leave_days", "job_role_id", "invite_token", "invite_accepted",
			"updated_at").
		Updates(model)
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError("employee with this email already exists")
		}
		return fmt.Errorf("failed to update employee: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("employee not found")
	}

	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, employeeID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(innerTx *gorm.DB) error {
		if err := innerTx.Where("employee_id = ?", employeeID).Delete(&models.EmployeeBranchModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear employee branch assignments: %w", err)
		}

		result := innerTx.Where("id = ?", employeeID).Delete(&models.EmployeeModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete employee: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError("employee not found")
		}

		return nil
	})
}

func (r *EmployeeRepository) GetByID(ctx context.Context, employeeID uint) (*employee.Employee, error) {
	var model models.EmployeeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", employeeID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("employee not found")
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *EmployeeRepository) GetBySID(ctx context.Context, sid string) (*employee.Employee, error) {
	var model models.EmployeeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("employee not found")
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *EmployeeRepository) GetByEmail(ctx context.Context, companyID uint, email string) (*employee.Employee, error) {
	var model models.EmployeeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("company_id = ? AND email = ?", companyID, strings.ToLower(email)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("employee not found")
		}
		return nil, fmt.Errorf("failed to find employee by email: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *EmployeeRepository) GetByInviteToken(ctx context.Context, token string) (*employee.Employee, error) {
	var model models.EmployeeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("invite_token = ?", token).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("invite not found")
		}
		return nil, fmt.Errorf("failed to find employee by invite token: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *EmployeeRepository) List(ctx context.Context, filter query.ListFilter) ([]*employee.Employee, int64, error) {
	var employeeModels []models.EmployeeModel
	var total int64

	tx := db.GetTxFromContext(ctx, r.db)

	filter.Search.Fields = []string{"first_name", "last_name", "email"}
	dbQuery := tx.Model(&models.EmployeeModel{}).
		Scopes(
			db.CompanyScoped(filter.CompanyID),
			db.Searched(filter.Search),
		)

	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	if err := dbQuery.
		Scopes(
			db.Ordered(filter.SortFilter, allowedEmployeeOrderByFields),
			db.Paged(filter.PageFilter),
		).
		Find(&employeeModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}

	employees := make([]*employee.Employee, 0, len(employeeModels))
	for i := range employeeModels {
		e, err := r.mapper.ToDomain(&employeeModels[i])
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, e)
	}

	return employees, total, nil
}
