package usecases

import (
	"context"
	"fmt"

	"crewhub/internal/domain/document"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type UpdateDocumentCommand struct {
	DocumentSID string
	CompanyID   uint
	Title       string
	Content     string

	// Optional replacement file.
	FileName    string
	ContentType string
	FileBody    []byte
}

type UpdateDocumentUseCase struct {
	documentRepo document.Repository
	storage      FileStorage
	logger       logger.Interface
}

func NewUpdateDocumentUseCase(
	documentRepo document.Repository,
	storage FileStorage,
	logger logger.Interface,
) *UpdateDocumentUseCase {
	return &UpdateDocumentUseCase{
		documentRepo: documentRepo,
		storage:      storage,
		logger:       logger,
	}
}

func (uc *UpdateDocumentUseCase) Execute(ctx context.Context, cmd UpdateDocumentCommand) (*document.Document, error) {
	d, err := uc.documentRepo.GetBySID(ctx, cmd.DocumentSID)
	if err != nil {
		return nil, err
	}
	if d.CompanyID() != cmd.CompanyID {
		return nil, errors.NewNotFoundError("document not found")
	}

	var fileURL string
	if len(cmd.FileBody) > 0 {
		if d.Type() != document.TypeFile {
			return nil, errors.NewValidationError("only file documents can carry a file")
		}
		key := fmt.Sprintf("documents/%d/%s", cmd.CompanyID, cmd.FileName)
		url, err := uc.storage.Upload(ctx, key, cmd.ContentType, cmd.FileBody)
		if err != nil {
			uc.logger.Errorw("failed to upload document file", "error", err, "key", key)
			return nil, errors.NewInternalError("failed to upload file")
		}
		fileURL = url
	}

	if err := d.Update(cmd.Title, cmd.Content, fileURL); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.documentRepo.Update(ctx, d); err != nil {
		uc.logger.Errorw("failed to update document", "error", err, "document_id", d.ID())
		return nil, err
	}

	uc.logger.Infow("document updated", "document_id", d.ID())
	return d, nil
}
