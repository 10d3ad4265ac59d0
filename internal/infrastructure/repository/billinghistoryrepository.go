package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"crewhub/internal/domain/plan"
	"crewhub/internal/infrastructure/persistence/mappers"
	"crewhub/internal/infrastructure/persistence/models"
	"crewhub/internal/shared/db"
	apperrors "crewhub/internal/shared/errors"
	"crewhub/internal/shared/query"
)

var allowedBillingHistoryOrderByFields = map[string]bool{
	"id":         true,
	"amount":     true,
	"status":     true,
	"created_at": true,
	"updated_at": true,
}

type BillingHistoryRepository struct {
	db     *gorm.DB
	mapper mappers.PlanMapper
}

func NewBillingHistoryRepository(database *gorm.DB) *BillingHistoryRepository {
	return &BillingHistoryRepository{
		db:     database,
		mapper: mappers.NewPlanMapper(),
	}
}

func (r *BillingHistoryRepository) Save(ctx context.Context, h *plan.BillingHistory) error {
	model := r.mapper.BillingHistoryToModel(h)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("invoice number already exists")
		}
		return fmt.Errorf("failed to create billing history: %w", err)
	}

	h.SetID(model.ID)
	return nil
}

func (r *BillingHistoryRepository) ListByCompanyID(ctx context.Context, companyID uint, filter query.ListFilter) ([]*plan.BillingHistory, int64, error) {
	var historyModels []models.BillingHistoryModel
	var total int64

	tx := db.GetTxFromContext(ctx, r.db)

	filter.Search.Fields = []string{"invoice_no"}
	dbQuery := tx.Model(&models.BillingHistoryModel{}).
		Scopes(
			db.CompanyScoped(companyID),
			db.Searched(filter.Search),
		)

	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count billing history: %w", err)
	}

	if err := dbQuery.
		Scopes(
			db.Ordered(filter.SortFilter, allowedBillingHistoryOrderByFields),
			db.Paged(filter.PageFilter),
		).
		Find(&historyModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list billing history: %w", err)
	}

	histories := make([]*plan.BillingHistory, 0, len(historyModels))
	for i := range historyModels {
		h, err := r.mapper.BillingHistoryToDomain(&historyModels[i])
		if err != nil {
			return nil, 0, err
		}
		histories = append(histories, h)
	}

	return histories, total, nil
}
