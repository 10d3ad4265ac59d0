package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"crewhub/internal/domain/document"
	"crewhub/internal/infrastructure/persistence/mappers"
	"crewhub/internal/infrastructure/persistence/models"
	"crewhub/internal/shared/db"
	apperrors "crewhub/internal/shared/errors"
	"crewhub/internal/shared/query"
)

var allowedDocumentOrderByFields = map[string]bool{
	"id":         true,
	"title":      true,
	"type":       true,
	"created_at": true,
	"updated_at": true,
}

type DocumentRepository struct {
	db     *gorm.DB
	mapper mappers.DocumentMapper
}

func NewDocumentRepository(database *gorm.DB) *DocumentRepository {
	return &DocumentRepository{
		db:     database,
		mapper: mappers.NewDocumentMapper(),
	}
}

func (r *DocumentRepository) Save(ctx context.Context, d *document.Document) error {
	model := r.mapper.ToModel(d)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	d.SetID(model.ID)
	return nil
}

func (r *DocumentRepository) Update(ctx context.Context, d *document.Document) error {
	model := r.mapper.ToModel(d)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.DocumentModel{}).
		Where("id = ?", d.ID()).
		Select("title", "content", "file_url", "employee_id", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update document: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("document not found")
	}

	return nil
}

func (r *DocumentRepository) Delete(ctx context.Context, documentID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Where("id = ?", documentID).Delete(&models.DocumentModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete document: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("document not found")
	}

	return nil
}

func (r *DocumentRepository) GetByID(ctx context.Context, documentID uint) (*document.Document, error) {
	var model models.DocumentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", documentID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("document not found")
		}
		return nil, fmt.Errorf("failed to find document: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *DocumentRepository) GetBySID(ctx context.Context, sid string) (*document.Document, error) {
	var model models.DocumentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("document not found")
		}
		return nil, fmt.Errorf("failed to find document: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *DocumentRepository) List(ctx context.Context, filter query.ListFilter) ([]*document.Document, int64, error) {
	var documentModels []models.DocumentModel
	var total int64

	tx := db.GetTxFromContext(ctx, r.db)

	filter.Search.Fields = []string{"title"}
	dbQuery := tx.Model(&models.DocumentModel{}).
		Scopes(
			db.CompanyScoped(filter.CompanyID),
			db.Searched(filter.Search),
		)

	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count documents: %w", err)
	}

	if err := dbQuery.
		Scopes(
			db.Ordered(filter.SortFilter, allowedDocumentOrderByFields),
			db.Paged(filter.PageFilter),
		).
		Find(&documentModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list documents: %w", err)
	}

	documents := make([]*document.Document, 0, len(documentModels))
	for i := range documentModels {
		d, err := r.mapper.ToDomain(&documentModels[i])
		if err != nil {
			return nil, 0, err
		}
		documents = append(documents, d)
	}

	return documents, total, nil
}
