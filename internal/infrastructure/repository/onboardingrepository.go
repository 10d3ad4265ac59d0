package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"crewhub/internal/domain/onboarding"
	"crewhub/internal/infrastructure/persistence/mappers"
	"crewhub/internal/infrastructure/persistence/models"
	"crewhub/internal/shared/db"
	apperrors "crewhub/internal/shared/errors"
	"crewhub/internal/shared/query"
)

var allowedOnboardingOrderByFields = map[string]bool{
	"id":         true,
	"name":       true,
	"created_at": true,
	"updated_at": true,
}

type OnboardingRepository struct {
	db     *gorm.DB
	mapper mappers.OnboardingMapper
}

func NewOnboardingRepository(database *gorm.DB) *OnboardingRepository {
	return &OnboardingRepository{
		db:     database,
		mapper: mappers.NewOnboardingMapper(),
	}
}

func (r *OnboardingRepository) Save(ctx context.Context, f *onboarding.Flow) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(innerTx *gorm.DB) error {
		model := r.mapper.FlowToModel(f)
		if err := innerTx.Create(model).Error; err != nil {
			if apperrors.IsDuplicateError(err) {
				return apperrors.NewConflictError("onboarding flow already exists")
			}
			return fmt.Errorf("failed to create onboarding flow: %w", err)
		}

		if err := f.SetID(model.ID); err != nil {
			return err
		}

		stepModels := r.mapper.StepsToModels(model.ID, f.Steps())
		if len(stepModels) > 0 {
			if err := innerTx.Create(&stepModels).Error; err != nil {
				return fmt.Errorf("failed to insert onboarding steps: %w", err)
			}
		}

		return nil
	})
}

func (r *OnboardingRepository) Update(ctx context.Context, f *onboarding.Flow) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(innerTx *gorm.DB) error {
		model := r.mapper.FlowToModel(f)
		result := innerTx.Model(&models.OnboardingFlowModel{}).
			Where("id = ?", f.ID()).
			Select("name", "description", "active", "updated_at").
			Updates(model)
		if result.Error != nil {
			return fmt.Errorf("failed to update onboarding flow: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError("onboarding flow not found")
		}

		if err := innerTx.Where("flow_id = ?", f.ID()).Delete(&models.OnboardingStepModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear onboarding steps: %w", err)
		}

		stepModels := r.mapper.StepsToModels(f.ID(), f.Steps())
		if len(stepModels) > 0 {
			if err := innerTx.Create(&stepModels).Error; err != nil {
				return fmt.Errorf("failed to insert onboarding steps: %w", err)
			}
		}

		return nil
	})
}

func (r *OnboardingRepository) Delete(ctx context.Context, flowID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(innerTx *gorm.DB) error {
		if err := innerTx.Where("flow_id = ?", flowID).Delete(&models.OnboardingStepModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete onboarding steps: %w", err)
		}

		result := innerTx.Where("id = ?", flowID).Delete(&models.OnboardingFlowModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete onboarding flow: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError("onboarding flow not found")
		}

		return nil
	})
}

func (r *OnboardingRepository) GetBySID(ctx context.Context, sid string) (*onboarding.Flow, error) {
	var model models.OnboardingFlowModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("onboarding flow not found")
		}
		return nil, fmt.Errorf("failed to find onboarding flow: %w", err)
	}

	stepModels, err := r.stepsByFlowIDs(tx, []uint{model.ID})
	if err != nil {
		return nil, err
	}

	return r.mapper.FlowToDomain(&model, stepModels[model.ID])
}

func (r *OnboardingRepository) List(ctx context.Context, filter query.ListFilter) ([]*onboarding.Flow, int64, error) {
	var flowModels []models.OnboardingFlowModel
	var total int64

	tx := db.GetTxFromContext(ctx, r.db)

	filter.Search.Fields = []string{"name"}
	dbQuery := tx.Model(&models.OnboardingFlowModel{}).
		Scopes(
			db.CompanyScoped(filter.CompanyID),
			db.Searched(filter.Search),
		)

	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count onboarding flows: %w", err)
	}

	if err := dbQuery.
		Scopes(
			db.Ordered(filter.SortFilter, allowedOnboardingOrderByFields),
			db.Paged(filter.PageFilter),
		).
		Find(&flowModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list onboarding flows: %w", err)
	}

	flowIDs := make([]uint, 0, len(flowModels))
	for i := range flowModels {
		flowIDs = append(flowIDs, flowModels[i].ID)
	}

	stepsByFlow, err := r.stepsByFlowIDs(tx, flowIDs)
	if err != nil {
		return nil, 0, err
	}

	flows := make([]*onboarding.Flow, 0, len(flowModels))
	for i := range flowModels {
		f, err := r.mapper.FlowToDomain(&flowModels[i], stepsByFlow[flowModels[i].ID])
		if err != nil {
			return nil, 0, err
		}
		flows = append(flows, f)
	}

	return flows, total, nil
}

func (r *OnboardingRepository) stepsByFlowIDs(tx *gorm.DB, flowIDs []uint) (map[uint][]models.OnboardingStepModel, error) {
	grouped := make(map[uint][]models.OnboardingStepModel, len(flowIDs))
	if len(flowIDs) == 0 {
		return grouped, nil
	}

	var stepModels []models.OnboardingStepModel
	if err := tx.Where("flow_id IN ?", flowIDs).Order("step_order ASC, id ASC").Find(&stepModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load onboarding steps: %w", err)
	}

	for _, sm := range stepModels {
		grouped[sm.FlowID] = append(grouped[sm.FlowID], sm)
	}

	return grouped, nil
}
