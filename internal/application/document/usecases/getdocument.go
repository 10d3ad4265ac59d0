package usecases

import (
	"context"

	"crewhub/internal/domain/document"
	"crewhub/internal/shared/errors"
)

type GetDocumentUseCase struct {
	documentRepo document.Repository
}

func NewGetDocumentUseCase(documentRepo document.Repository) *GetDocumentUseCase {
	return &GetDocumentUseCase{documentRepo: documentRepo}
}

func (uc *GetDocumentUseCase) Execute(ctx context.Context, documentSID string, companyID uint) (*document.Document, error) {
	d, err := uc.documentRepo.GetBySID(ctx, documentSID)
	if err != nil {
		return nil, err
	}
	if d.CompanyID() != companyID {
		return nil, errors.NewNotFoundError("document not found")
	}
	return d, nil
}
