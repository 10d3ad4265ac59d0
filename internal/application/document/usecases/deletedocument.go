package usecases

import (
	"context"

	"crewhub/internal/domain/document"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type DeleteDocumentCommand struct {
	DocumentSID string
	CompanyID   uint
}

type DeleteDocumentUseCase struct {
	documentRepo document.Repository
	storage      FileStorage
	logger       logger.Interface
}

func NewDeleteDocumentUseCase(
	documentRepo document.Repository,
	storage FileStorage,
	logger logger.Interface,
) *DeleteDocumentUseCase {
	return &DeleteDocumentUseCase{
		documentRepo: documentRepo,
		storage:      storage,
		logger:       logger,
	}
}

func (uc *DeleteDocumentUseCase) Execute(ctx context.Context, cmd DeleteDocumentCommand) error {
	d, err := uc.documentRepo.GetBySID(ctx, cmd.DocumentSID)
	if err != nil {
		return err
	}
	if d.CompanyID() != cmd.CompanyID {
		return errors.NewNotFoundError("document not found")
	}

	if err := uc.documentRepo.Delete(ctx, d.ID()); err != nil {
		uc.logger.Errorw("failed to delete document", "error", err, "document_id", d.ID())
		return err
	}

	// The row is gone either way; a stranded object is only noise.
	if d.Type() == document.TypeFile && d.FileURL() != "" {
		if err := uc.storage.Delete(ctx, d.FileURL()); err != nil {
			uc.logger.Warnw("failed to delete document file", "error", err, "document_id", d.ID())
		}
	}

	uc.logger.Infow("document deleted", "document_id", d.ID())
	return nil
}
