package usecases

import (
	"context"

	"crewhub/internal/domain/jobrole"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type CreateJobRoleCommand struct {
	CompanyID uint
	Name      string
	Color     string
}

type CreateJobRoleUseCase struct {
	jobRoleRepo jobrole.Repository
	logger      logger.Interface
}

func NewCreateJobRoleUseCase(jobRoleRepo jobrole.Repository, logger logger.Interface) *CreateJobRoleUseCase {
	return &CreateJobRoleUseCase{
		jobRoleRepo: jobRoleRepo,
		logger:      logger,
	}
}

func (uc *CreateJobRoleUseCase) Execute(ctx context.Context, cmd CreateJobRoleCommand) (*jobrole.JobRole, error) {
	r, err := jobrole.NewJobRole(cmd.CompanyID, cmd.Name, cmd.Color)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.jobRoleRepo.Save(ctx, r); err != nil {
		uc.logger.Errorw("failed to create job role", "error", err, "company_id", cmd.CompanyID)
		return nil, err
	}

	uc.logger.Infow("job role created", "job_role_id", r.ID(), "company_id", cmd.CompanyID)
	return r, nil
}
