package mappers

import (
	"fmt"
	"time"

	"crewhub/internal/domain/document"
	"crewhub/internal/infrastructure/persistence/models"
)

type DocumentMapper interface {
	ToModel(d *document.Document) *models.DocumentModel
	ToDomain(model *models.DocumentModel) (*document.Document, error)
}

type DocumentMapperImpl struct{}

func NewDocumentMapper() DocumentMapper {
	return &DocumentMapperImpl{}
}

func (m *DocumentMapperImpl) ToModel(d *document.Document) *models.DocumentModel {
	return &models.DocumentModel{
		ID:         d.ID(),
		SID:        d.SID(),
		CompanyID:  d.CompanyID(),
		EmployeeID: d.EmployeeID(),
		Title:      d.Title(),
		Type:       string(d.Type()),
		Content:    d.Content(),
		FileURL:    d.FileURL(),
		CreatedAt:  d.CreatedAt().UnixMilli(),
		UpdatedAt:  d.UpdatedAt().UnixMilli(),
	}
}

func (m *DocumentMapperImpl) ToDomain(model *models.DocumentModel) (*document.Document, error) {
	d, err := document.ReconstructDocument(
		model.ID,
		model.SID,
		model.CompanyID,
		model.EmployeeID,
		model.Title,
		document.DocumentType(model.Type),
		model.Content,
		model.FileURL,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct document: %w", err)
	}

	return d, nil
}
