package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"crewhub/internal/domain/document"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type CreateDocumentCommand struct {
	CompanyID  uint
	EmployeeID *uint
	Title      string
	Type       string
	Content    string

	// File payload, used when Type is FILE.
	FileName    string
	ContentType string
	FileBody    []byte
}

type CreateDocumentUseCase struct {
	documentRepo document.Repository
	storage      FileStorage
	logger       logger.Interface
}

func NewCreateDocumentUseCase(
	documentRepo document.Repository,
	storage FileStorage,
	logger logger.Interface,
) *CreateDocumentUseCase {
	return &CreateDocumentUseCase{
		documentRepo: documentRepo,
		storage:      storage,
		logger:       logger,
	}
}

func (uc *CreateDocumentUseCase) Execute(ctx context.Context, cmd CreateDocumentCommand) (*document.Document, error) {
	docType := document.DocumentType(cmd.Type)

	var fileURL string
	if docType == document.TypeFile {
		if len(cmd.FileBody) == 0 {
			return nil, errors.NewValidationError("file documents require a file payload")
		}
		// Keys carry a random component so re-uploading the same
		// filename never overwrites an earlier document.
		key := fmt.Sprintf("documents/%d/%s/%s", cmd.CompanyID, uuid.NewString(), cmd.FileName)
		url, err := uc.storage.Upload(ctx, key, cmd.ContentType, cmd.FileBody)
		if err != nil {
			uc.logger.Errorw("failed to upload document file", "error", err, "key", key)
			return nil, errors.NewInternalError("failed to upload file")
		}
		fileURL = url
	}

	d, err := document.NewDocument(cmd.CompanyID, cmd.Title, docType, cmd.Content, fileURL, cmd.EmployeeID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.documentRepo.Save(ctx, d); err != nil {
		uc.logger.Errorw("failed to create document", "error", err, "company_id", cmd.CompanyID)
		return nil, err
	}

	uc.logger.Infow("document created", "document_id", d.ID(), "type", d.Type())
	return d, nil
}
