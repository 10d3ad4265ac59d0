package usecases

import (
	"context"
	"fmt"

	"crewhub/internal/domain/company"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type UpdateBrandingCommand struct {
	CompanyID   uint
	Kind        string // "logo" or "banner"
	FileName    string
	ContentType string
	Body        []byte
}

type UpdateBrandingResult struct {
	URL string
}

// UpdateBrandingUseCase uploads a logo or banner image to object
// storage and stores the resulting URL on the company.
type UpdateBrandingUseCase struct {
	companyRepo company.Repository
	storage     FileStorage
	logger      logger.Interface
}

func NewUpdateBrandingUseCase(companyRepo company.Repository, storage FileStorage, logger logger.Interface) *UpdateBrandingUseCase {
	return &UpdateBrandingUseCase{
		companyRepo: companyRepo,
		storage:     storage,
		logger:      logger,
	}
}

func (uc *UpdateBrandingUseCase) Execute(ctx context.Context, cmd UpdateBrandingCommand) (*UpdateBrandingResult, error) {
	if cmd.Kind != "logo" && cmd.Kind != "banner" {
		return nil, errors.NewValidationError("kind must be logo or banner")
	}
	if len(cmd.Body) == 0 {
		return nil, errors.NewValidationError("file is empty")
	}

	c, err := uc.companyRepo.GetByID(ctx, cmd.CompanyID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("companies/%s/%s/%s", c.SID(), cmd.Kind, cmd.FileName)
	url, err := uc.storage.Upload(ctx, key, cmd.ContentType, cmd.Body)
	if err != nil {
		uc.logger.Errorw("failed to upload branding asset", "error", err, "company_id", cmd.CompanyID, "kind", cmd.Kind)
		return nil, errors.NewInternalError("failed to upload file")
	}

	if cmd.Kind == "logo" {
		c.UpdateLogoURL(url)
	} else {
		c.UpdateBannerURL(url)
	}

	if err := uc.companyRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	uc.logger.Infow("company branding updated", "company_id", c.ID(), "kind", cmd.Kind)
	return &UpdateBrandingResult{URL: url}, nil
}
