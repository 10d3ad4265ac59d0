package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"crewhub/internal/domain/plan"
	"crewhub/internal/infrastructure/persistence/mappers"
	"crewhub/internal/infrastructure/persistence/models"
	"crewhub/internal/shared/db"
	apperrors "crewhub/internal/shared/errors"
	"crewhub/internal/shared/query"
)

var allowedPlanOrderByFields = map[string]bool{
	"id":         true,
	"name":       true,
	"price":      true,
	"created_at": true,
	"updated_at": true,
}

// PlanRepository persists the global plan catalog. Plans are not
// company scoped; the tenant filter's CompanyID is ignored here.
type PlanRepository struct {
	db     *gorm.DB
	mapper mappers.PlanMapper
}

func NewPlanRepository(database *gorm.DB) *PlanRepository {
	return &PlanRepository{
		db:     database,
		mapper: mappers.NewPlanMapper(),
	}
}

func (r *PlanRepository) Save(ctx context.Context, p *plan.Plan) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(innerTx *gorm.DB) error {
		model := r.mapper.ToModel(p)
		if err := innerTx.Create(model).Error; err != nil {
			if apperrors.IsDuplicateError(err) {
				return apperrors.NewConflictError("plan already exists")
			}
			return fmt.Errorf("failed to create plan: %w", err)
		}
		p.SetID(model.ID)

		featureModels := r.mapper.FeatureLinkToModels(p.ID(), p.Features())
		if len(featureModels) > 0 {
			if err := innerTx.Create(&featureModels).Error; err != nil {
				return fmt.Errorf("failed to insert plan features: %w", err)
			}
		}

		return nil
	})
}

func (r *PlanRepository) Update(ctx context.Context, p *plan.Plan) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(innerTx *gorm.DB) error {
		model := r.mapper.ToModel(p)
		result := innerTx.Model(&models.PlanModel{}).
			Where("id = ?", p.ID()).
			Select("name", "description", "price", "minimum_users", "active", "updated_at").
			Updates(model)
		if result.Error != nil {
			return fmt.Errorf("failed to update plan: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError("plan not found")
		}

		if err := innerTx.Where("plan_id = ?", p.ID()).Delete(&models.PlanFeatureModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear plan features: %w", err)
		}

		featureModels := r.mapper.FeatureLinkToModels(p.ID(), p.Features())
		if len(featureModels) > 0 {
			if err := innerTx.Create(&featureModels).Error; err != nil {
				return fmt.Errorf("failed to insert plan features: %w", err)
			}
		}

		return nil
	})
}

func (r *PlanRepository) GetByID(ctx context.Context, planID uint) (*plan.Plan, error) {
	var model models.PlanModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", planID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("plan not found")
		}
		return nil, fmt.Errorf("failed to find plan: %w", err)
	}

	return r.loadWithFeatures(tx, &model)
}

func (r *PlanRepository) GetBySID(ctx context.Context, sid string) (*plan.Plan, error) {
	var model models.PlanModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("plan not found")
		}
		return nil, fmt.Errorf("failed to find plan: %w", err)
	}

	return r.loadWithFeatures(tx, &model)
}

func (r *PlanRepository) List(ctx context.Context, filter query.ListFilter) ([]*plan.Plan, int64, error) {
	var planModels []models.PlanModel
	var total int64

	tx := db.GetTxFromContext(ctx, r.db)

	filter.Search.Fields = []string{"name", "description"}
	dbQuery := tx.Model(&models.PlanModel{}).
		Scopes(db.Searched(filter.Search))

	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count plans: %w", err)
	}

	if err := dbQuery.
		Scopes(
			db.Ordered(filter.SortFilter, allowedPlanOrderByFields),
			db.Paged(filter.PageFilter),
		).
		Find(&planModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list plans: %w", err)
	}

	plans, err := r.assemble(tx, planModels)
	if err != nil {
		return nil, 0, err
	}

	return plans, total, nil
}

func (r *PlanRepository) ListActive(ctx context.Context) ([]*plan.Plan, error) {
	var planModels []models.PlanModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("active = ?", true).Order("price ASC").Find(&planModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list active plans: %w", err)
	}

	return r.assemble(tx, planModels)
}

func (r *PlanRepository) SaveFeature(ctx context.Context, f *plan.Feature) error {
	model := r.mapper.FeatureToModel(f)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("feature already exists")
		}
		return fmt.Errorf("failed to create feature: %w", err)
	}

	f.SetID(model.ID)
	return nil
}

func (r *PlanRepository) ListFeatures(ctx context.Context) ([]*plan.Feature, error) {
	var featureModels []models.FeatureModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("archived = ?", false).Order("id ASC").Find(&featureModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list features: %w", err)
	}

	features := make([]*plan.Feature, 0, len(featureModels))
	for i := range featureModels {
		f, err := r.mapper.FeatureToDomain(&featureModels[i])
		if err != nil {
			return nil, err
		}
		features = append(features, f)
	}

	return features, nil
}

func (r *PlanRepository) loadWithFeatures(tx *gorm.DB, model *models.PlanModel) (*plan.Plan, error) {
	var featureModels []models.PlanFeatureModel
	if err := tx.Where("plan_id = ?", model.ID).Order("id ASC").Find(&featureModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load plan features: %w", err)
	}

	return r.mapper.ToDomain(model, featureModels)
}

func (r *PlanRepository) assemble(tx *gorm.DB, planModels []models.PlanModel) ([]*plan.Plan, error) {
	plans := make([]*plan.Plan, 0, len(planModels))
	for i := range planModels {
		p, err := r.loadWithFeatures(tx, &planModels[i])
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, nil
}
