package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"crewhub/internal/domain/company"
	"crewhub/internal/infrastructure/persistence/mappers"
	"crewhub/internal/infrastructure/persistence/models"
	"crewhub/internal/shared/db"
	apperrors "crewhub/internal/shared/errors"
)

type CompanyRepository struct {
	db     *gorm.DB
	mapper mappers.CompanyMapper
}

func NewCompanyRepository(database *gorm.DB) *CompanyRepository {
	return &CompanyRepository{
		db:     database,
		mapper: mappers.NewCompanyMapper(),
	}
}

func (r *CompanyRepository) Save(ctx context.Context, c *company.Company) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("company already exists")
		}
		return fmt.Errorf("failed to save company: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CompanyRepository) Update(ctx context.Context, c *company.Company) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.CompanyModel{}).
		Where("id = ?", model.ID).
		Select("name", "email", "phone_number", "address", "website", "logo_url",
			"banner_url", "date_format", "weekly_off", "plan_id", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update company: %w", result.Error)
	}

	return nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, companyID uint) (*company.Company, error) {
	var model models.CompanyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, companyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("company not found")
		}
		return nil, fmt.Errorf("failed to find company: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CompanyRepository) GetBySID(ctx context.Context, sid string) (*company.Company, error) {
	var model models.CompanyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("company not found")
		}
		return nil, fmt.Errorf("failed to find company: %w", err)
	}

	return r.mapper.ToDomain(&model)
}
