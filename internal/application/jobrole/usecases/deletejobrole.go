package usecases

import (
	"context"

	"crewhub/internal/domain/jobrole"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type DeleteJobRoleCommand struct {
	JobRoleSID string
	CompanyID  uint
}

type DeleteJobRoleUseCase struct {
	jobRoleRepo jobrole.Repository
	logger      logger.Interface
}

func NewDeleteJobRoleUseCase(jobRoleRepo jobrole.Repository, logger logger.Interface) *DeleteJobRoleUseCase {
	return &DeleteJobRoleUseCase{
		jobRoleRepo: jobRoleRepo,
		logger:      logger,
	}
}

func (uc *DeleteJobRoleUseCase) Execute(ctx context.Context, cmd DeleteJobRoleCommand) error {
	r, err := uc.jobRoleRepo.GetBySID(ctx, cmd.JobRoleSID)
	if err != nil {
		return err
	}
	if r.CompanyID() != cmd.CompanyID {
		return errors.NewNotFoundError("job role not found")
	}

	if err := uc.jobRoleRepo.Delete(ctx, r.ID()); err != nil {
		uc.logger.Errorw("failed to delete job role", "error", err, "job_role_id", r.ID())
		return err
	}

	uc.logger.Infow("job role deleted", "job_role_id", r.ID())
	return nil
}
