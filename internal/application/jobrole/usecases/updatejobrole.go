package usecases

import (
	"context"

	"crewhub/internal/domain/jobrole"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type UpdateJobRoleCommand struct {
	JobRoleSID string
	CompanyID  uint
	Name       string
	Color      string
}

type UpdateJobRoleUseCase struct {
	jobRoleRepo jobrole.Repository
	logger      logger.Interface
}

func NewUpdateJobRoleUseCase(jobRoleRepo jobrole.Repository, logger logger.Interface) *UpdateJobRoleUseCase {
	return &UpdateJobRoleUseCase{
		jobRoleRepo: jobRoleRepo,
		logger:      logger,
	}
}

func (uc *UpdateJobRoleUseCase) Execute(ctx context.Context, cmd UpdateJobRoleCommand) (*jobrole.JobRole, error) {
	r, err := uc.jobRoleRepo.GetBySID(ctx, cmd.JobRoleSID)
	if err != nil {
		return nil, err
	}
	if r.CompanyID() != cmd.CompanyID {
		return nil, errors.NewNotFoundError("job role not found")
	}

	if err := r.Update(cmd.Name, cmd.Color); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.jobRoleRepo.Update(ctx, r); err != nil {
		uc.logger.Errorw("failed to update job role", "error", err, "job_role_id", r.ID())
		return nil, err
	}

	uc.logger.Infow("job role updated", "job_role_id", r.ID())
	return r, nil
}
