package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"crewhub/internal/domain/leavepolicy"
	"crewhub/internal/infrastructure/persistence/mappers"
	"crewhub/internal/infrastructure/persistence/models"
	"crewhub/internal/shared/db"
	apperrors "crewhub/internal/shared/errors"
	"crewhub/internal/shared/query"
)

var allowedLeavePolicyOrderByFields = map[string]bool{
	"id":         true,
	"name":       true,
	"created_at": true,
	"updated_at": true,
}

type LeavePolicyRepository struct {
	db     *gorm.DB
	mapper mappers.LeavePolicyMapper
}

func NewLeavePolicyRepository(database *gorm.DB) *LeavePolicyRepository {
	return &LeavePolicyRepository{
		db:     database,
		mapper: mappers.NewLeavePolicyMapper(),
	}
}

func (r *LeavePolicyRepository) Save(ctx context.Context, p *leavepolicy.LeavePolicy) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(innerTx *gorm.DB) error {
		model := r.mapper.ToModel(p)
		if err := innerTx.Create(model).Error; err != nil {
			if apperrors.IsDuplicateError(err) {
				return apperrors.NewConflictError("leave policy already exists")
			}
			return fmt.Errorf("failed to create leave policy: %w", err)
		}
		p.SetID(model.ID)

		return r.insertAttachments(innerTx, p)
	})
}

func (r *LeavePolicyRepository) Update(ctx context.Context, p *leavepolicy.LeavePolicy) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(innerTx *gorm.DB) error {
		model := r.mapper.ToModel(p)
		result := innerTx.Model(&models.LeavePolicyModel{}).
			Where("id = ?", p.ID()).
			Select("name", "description", "accrual_schedule", "paid",
				"requires_approval", "allow_negative", "balance_rollover",
				"auto_add_new_hires", "max_accrual_hours", "updated_at").
			Updates(model)
		if result.Error != nil {
			return fmt.Errorf("failed to update leave policy: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError("leave policy not found")
		}

		if err := r.deleteAttachments(innerTx, p.ID()); err != nil {
			return err
		}

		return r.insertAttachments(innerTx, p)
	})
}

func (r *LeavePolicyRepository) Delete(ctx context.Context, policyID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(innerTx *gorm.DB) error {
		if err := r.deleteAttachments(innerTx, policyID); err != nil {
			return err
		}

		result := innerTx.Where("id = ?", policyID).Delete(&models.LeavePolicyModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete leave policy: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError("leave policy not found")
		}

		return nil
	})
}

func (r *LeavePolicyRepository) GetByID(ctx context.Context, policyID uint) (*leavepolicy.LeavePolicy, error) {
	var model models.LeavePolicyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", policyID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("leave policy not found")
		}
		return nil, fmt.Errorf("failed to find leave policy: %w", err)
	}

	return r.loadWithAttachments(tx, &model)
}

func (r *LeavePolicyRepository) GetBySID(ctx context.Context, sid string) (*leavepolicy.LeavePolicy, error) {
	var model models.LeavePolicyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("leave policy not found")
		}
		return nil, fmt.Errorf("failed to find leave policy: %w", err)
	}

	return r.loadWithAttachments(tx, &model)
}

func (r *LeavePolicyRepository) List(ctx context.Context, filter query.ListFilter) ([]*leavepolicy.LeavePolicy, int64, error) {
	var policyModels []models.LeavePolicyModel
	var total int64

	tx := db.GetTxFromContext(ctx, r.db)

	filter.Search.Fields = []string{"name", "description"}
	dbQuery := tx.Model(&models.LeavePolicyModel{}).
		Scopes(
			db.CompanyScoped(filter.CompanyID),
			db.Searched(filter.Search),
		)

	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count leave policies: %w", err)
	}

	if err := dbQuery.
		Scopes(
			db.Ordered(filter.SortFilter, allowedLeavePolicyOrderByFields),
			db.Paged(filter.PageFilter),
		).
		Find(&policyModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list leave policies: %w", err)
	}

	policies := make([]*leavepolicy.LeavePolicy, 0, len(policyModels))
	for i := range policyModels {
		p, err := r.loadWithAttachments(tx, &policyModels[i])
		if err != nil {
			return nil, 0, err
		}
		policies = append(policies, p)
	}

	return policies, total, nil
}

func (r *LeavePolicyRepository) loadWithAttachments(tx *gorm.DB, model *models.LeavePolicyModel) (*leavepolicy.LeavePolicy, error) {
	var branchModels []models.LeavePolicyBranchModel
	if err := tx.Where("policy_id = ?", model.ID).Order("id ASC").Find(&branchModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load leave policy branches: %w", err)
	}

	var jobRoleModels []models.LeavePolicyJobRoleModel
	if err := tx.Where("policy_id = ?", model.ID).Order("id ASC").Find(&jobRoleModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load leave policy job roles: %w", err)
	}

	var memberModels []models.LeavePolicyMemberModel
	if err := tx.Where("policy_id = ?", model.ID).Order("id ASC").Find(&memberModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load leave policy members: %w", err)
	}

	return r.mapper.ToDomain(model, branchModels, jobRoleModels, memberModels)
}

func (r *LeavePolicyRepository) insertAttachments(tx *gorm.DB, p *leavepolicy.LeavePolicy) error {
	branchModels := r.mapper.BranchToModels(p.ID(), p.BranchIDs())
	if len(branchModels) > 0 {
		if err := tx.Create(&branchModels).Error; err != nil {
			return fmt.Errorf("failed to insert leave policy branches: %w", err)
		}
	}

	jobRoleModels := r.mapper.JobRoleToModels(p.ID(), p.JobRoleIDs())
	if len(jobRoleModels) > 0 {
		if err := tx.Create(&jobRoleModels).Error; err != nil {
			return fmt.Errorf("failed to insert leave policy job roles: %w", err)
		}
	}

	memberModels := r.mapper.MemberToModels(p.ID(), p.MemberIDs())
	if len(memberModels) > 0 {
		if err := tx.Create(&memberModels).Error; err != nil {
			return fmt.Errorf("failed to insert leave policy members: %w", err)
		}
	}

	return nil
}

func (r *LeavePolicyRepository) deleteAttachments(tx *gorm.DB, policyID uint) error {
	if err := tx.Where("policy_id = ?", policyID).Delete(&models.LeavePolicyBranchModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear leave policy branches: %w", err)
	}
	if err := tx.Where("policy_id = ?", policyID).Delete(&models.LeavePolicyJobRoleModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear leave policy job roles: %w", err)
	}
	if err := tx.Where("policy_id = ?", policyID).Delete(&models.LeavePolicyMemberModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear leave policy members: %w", err)
	}
	return nil
}
