package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"crewhub/internal/domain/jobrole"
	"crewhub/internal/infrastructure/persistence/mappers"
	"crewhub/internal/infrastructure/persistence/models"
	"crewhub/internal/shared/db"
	apperrors "crewhub/internal/shared/errors"
	"crewhub/internal/shared/query"
)

var allowedJobRoleOrderByFields = map[string]bool{
	"id":         true,
	"name":       true,
	"created_at": true,
	"updated_at": true,
}

type JobRoleRepository struct {
	db     *gorm.DB
	mapper mappers.JobRoleMapper
}

func NewJobRoleRepository(database *gorm.DB) *JobRoleRepository {
	return &JobRoleRepository{
		db:     database,
		mapper: mappers.NewJobRoleMapper(),
	}
}

func (r *JobRoleRepository) Save(ctx context.Context, role *jobrole.JobRole) error {
	model := r.mapper.ToModel(role)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("job role already exists")
		}
		return fmt.Errorf("failed to create job role: %w", err)
	}

	role.SetID(model.ID)
	return nil
}

func (r *JobRoleRepository) Update(ctx context.Context, role *jobrole.JobRole) error {
	model := r.mapper.ToModel(role)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.JobRoleModel{}).
		Where("id = ?", role.ID()).
		Select("name", "color", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update job role: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("job role not found")
	}

	return nil
}

func (r *JobRoleRepository) Delete(ctx context.Context, roleID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(innerTx *gorm.DB) error {
		if err := innerTx.Model(&models.EmployeeModel{}).
			Where("job_role_id = ?", roleID).
			Updates(map[string]interface{}{
				"job_role_id": nil,
				"updated_at":  time.Now().UnixMilli(),
			}).Error; err != nil {
			return fmt.Errorf("failed to detach job role from employees: %w", err)
		}

		result := innerTx.Where("id = ?", roleID).Delete(&models.JobRoleModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete job role: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError("job role not found")
		}

		return nil
	})
}

func (r *JobRoleRepository) GetByID(ctx context.Context, roleID uint) (*jobrole.JobRole, error) {
	var model models.JobRoleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", roleID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("job role not found")
		}
		return nil, fmt.Errorf("failed to find job role: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *JobRoleRepository) GetBySID(ctx context.Context, sid string) (*jobrole.JobRole, error) {
	var model models.JobRoleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("job role not found")
		}
		return nil, fmt.Errorf("failed to find job role: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *JobRoleRepository) List(ctx context.Context, filter query.ListFilter) ([]*jobrole.JobRole, int64, error) {
	var roleModels []models.JobRoleModel
	var total int64

	tx := db.GetTxFromContext(ctx, r.db)

	filter.Search.Fields = []string{"name"}
	dbQuery := tx.Model(&models.JobRoleModel{}).
		Scopes(
			db.CompanyScoped(filter.CompanyID),
			db.Searched(filter.Search),
		)

	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count job roles: %w", err)
	}

	if err := dbQuery.
		Scopes(
			db.Ordered(filter.SortFilter, allowedJobRoleOrderByFields),
			db.Paged(filter.PageFilter),
		).
		Find(&roleModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list job roles: %w", err)
	}

	roles := make([]*jobrole.JobRole, 0, len(roleModels))
	for i := range roleModels {
		role, err := r.mapper.ToDomain(&roleModels[i])
		if err != nil {
			return nil, 0, err
		}
		roles = append(roles, role)
	}

	return roles, total, nil
}

func (r *JobRoleRepository) AssignToEmployees(ctx context.Context, roleID uint, employeeIDs []uint) error {
	if len(employeeIDs) == 0 {
		return nil
	}

	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.EmployeeModel{}).
		Where("id IN ?", employeeIDs).
		Updates(map[string]interface{}{
			"job_role_id": roleID,
			"updated_at":  time.Now().UnixMilli(),
		}).Error; err != nil {
		return fmt.Errorf("failed to assign job role to employees: %w", err)
	}

	return nil
}
