package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"crewhub/internal/domain/plan"
	"crewhub/internal/infrastructure/persistence/mappers"
	"crewhub/internal/infrastructure/persistence/models"
	"crewhub/internal/shared/db"
	apperrors "crewhub/internal/shared/errors"
)

// SubscriptionRepository persists the one subscription row each
// company holds.
type SubscriptionRepository struct {
	db     *gorm.DB
	mapper mappers.PlanMapper
}

func NewSubscriptionRepository(database *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{
		db:     database,
		mapper: mappers.NewPlanMapper(),
	}
}

func (r *SubscriptionRepository) Save(ctx context.Context, s *plan.Subscription) error {
	model := r.mapper.SubscriptionToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("company already has a subscription")
		}
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	s.SetID(model.ID)
	return nil
}

func (r *SubscriptionRepository) Update(ctx context.Context, s *plan.Subscription) error {
	model := r.mapper.SubscriptionToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.SubscriptionModel{}).
		Where("id = ?", s.ID()).
		Select("plan_id", "status", "users", "total_amount", "next_billing", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("subscription not found")
	}

	return nil
}

func (r *SubscriptionRepository) ListDueForBilling(ctx context.Context, before time.Time) ([]*plan.Subscription, error) {
	var rows []models.SubscriptionModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("status = ? AND next_billing <= ?", string(plan.SubscriptionActive), before.UnixMilli()).
		Order("next_billing ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list due subscriptions: %w", err)
	}

	subs := make([]*plan.Subscription, 0, len(rows))
	for i := range rows {
		s, err := r.mapper.SubscriptionToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}

	return subs, nil
}

func (r *SubscriptionRepository) GetByCompanyID(ctx context.Context, companyID uint) (*plan.Subscription, error) {
	var model models.SubscriptionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("company_id = ?", companyID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("subscription not found")
		}
		return nil, fmt.Errorf("failed to find subscription: %w", err)
	}

	return r.mapper.SubscriptionToDomain(&model)
}
