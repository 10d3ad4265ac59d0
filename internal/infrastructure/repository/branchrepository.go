package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"crewhub/internal/domain/branch"
	"crewhub/internal/infrastructure/persistence/mappers"
	"crewhub/internal/infrastructure/persistence/models"
	"crewhub/internal/shared/db"
	apperrors "crewhub/internal/shared/errors"
	"crewhub/internal/shared/query"
)

var allowedBranchOrderByFields = map[string]bool{
	"id":         true,
	"name":       true,
	"created_at": true,
	"updated_at": true,
}

type BranchRepository struct {
	db     *gorm.DB
	mapper mappers.BranchMapper
}

func NewBranchRepository(database *gorm.DB) *BranchRepository {
	return &BranchRepository{
		db:     database,
		mapper: mappers.NewBranchMapper(),
	}
}

func (r *BranchRepository) Save(ctx context.Context, b *branch.Branch) error {
	model := r.mapper.ToModel(b)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("branch already exists")
		}
		return fmt.Errorf("failed to create branch: %w", err)
	}

	b.SetID(model.ID)
	return nil
}

func (r *BranchRepository) Update(ctx context.Context, b *branch.Branch) error {
	model := r.mapper.ToModel(b)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.BranchModel{}).
		Where("id = ?", b.ID()).
		Select("name", "address", "country_code", "manager_id", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update branch: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("branch not found")
	}

	return nil
}

func (r *BranchRepository) Delete(ctx context.Context, branchID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(innerTx *gorm.DB) error {
		if err := innerTx.Where("branch_id = ?", branchID).Delete(&models.EmployeeBranchModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear branch assignments: %w", err)
		}

		result := innerTx.Where("id = ?", branchID).Delete(&models.BranchModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete branch: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError("branch not found")
		}

		return nil
	})
}

func (r *BranchRepository) GetByID(ctx context.Context, branchID uint) (*branch.Branch, error) {
	var model models.BranchModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", branchID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("branch not found")
		}
		return nil, fmt.Errorf("failed to find branch: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *BranchRepository) GetBySID(ctx context.Context, sid string) (*branch.Branch, error) {
	var model models.BranchModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("branch not found")
		}
		return nil, fmt.Errorf("failed to find branch: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *BranchRepository) List(ctx context.Context, filter query.ListFilter) ([]*branch.Branch, int64, error) {
	var branchModels []models.BranchModel
	var total int64

	tx := db.GetTxFromContext(ctx, r.db)

	filter.Search.Fields = []string{"name", "address"}
	dbQuery := tx.Model(&models.BranchModel{}).
		Scopes(
			db.CompanyScoped(filter.CompanyID),
			db.Searched(filter.Search),
		)

	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count branches: %w", err)
	}

	if err := dbQuery.
		Scopes(
			db.Ordered(filter.SortFilter, allowedBranchOrderByFields),
			db.Paged(filter.PageFilter),
		).
		Find(&branchModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list branches: %w", err)
	}

	branches := make([]*branch.Branch, 0, len(branchModels))
	for i := range branchModels {
		b, err := r.mapper.ToDomain(&branchModels[i])
		if err != nil {
			return nil, 0, err
		}
		branches = append(branches, b)
	}

	return branches, total, nil
}

func (r *BranchRepository) AssignEmployees(ctx context.Context, branchID uint, employeeIDs []uint) error {
	if len(employeeIDs) == 0 {
		return nil
	}

	tx := db.GetTxFromContext(ctx, r.db)

	assignments := make([]models.EmployeeBranchModel, 0, len(employeeIDs))
	for _, employeeID := range employeeIDs {
		assignments = append(assignments, models.EmployeeBranchModel{
			BranchID:   branchID,
			EmployeeID: employeeID,
		})
	}

	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&assignments).Error; err != nil {
		return fmt.Errorf("failed to assign employees to branch: %w", err)
	}

	return nil
}

func (r *BranchRepository) UnassignEmployees(ctx context.Context, branchID uint, employeeIDs []uint) error {
	if len(employeeIDs) == 0 {
		return nil
	}

	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("branch_id = ? AND employee_id IN ?", branchID, employeeIDs).
		Delete(&models.EmployeeBranchModel{}).Error; err != nil {
		return fmt.Errorf("failed to unassign employees from branch: %w", err)
	}

	return nil
}

func (r *BranchRepository) GetEmployeeIDs(ctx context.Context, branchID uint) ([]uint, error) {
	var employeeIDs []uint
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.EmployeeBranchModel{}).
		Where("branch_id = ?", branchID).
		Order("employee_id ASC").
		Pluck("employee_id", &employeeIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to load branch employee ids: %w", err)
	}

	return employeeIDs, nil
}
