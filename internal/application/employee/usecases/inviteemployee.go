package usecases

import (
	"context"

	"crewhub/internal/domain/employee"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/id"
	"crewhub/internal/shared/logger"
)

const inviteTokenLength = 32

type InviteEmployeeCommand struct {
	EmployeeSID string
	CompanyID   uint
}

type InviteEmployeeResult struct {
	EmployeeID  uint
	InviteToken string
	EmailSent   bool
}

// InviteEmployeeUseCase issues a fresh invite token and mails the
// link. Re-inviting replaces the previous token.
type InviteEmployeeUseCase struct {
	employeeRepo employee.Repository
	mailer       InviteMailer
	logger       logger.Interface
}

func NewInviteEmployeeUseCase(
	employeeRepo employee.Repository,
	mailer InviteMailer,
	logger logger.Interface,
) *InviteEmployeeUseCase {
	return &InviteEmployeeUseCase{
		employeeRepo: employeeRepo,
		mailer:       mailer,
		logger:       logger,
	}
}

func (uc *InviteEmployeeUseCase) Execute(ctx context.Context, cmd InviteEmployeeCommand) (*InviteEmployeeResult, error) {
	e, err := uc.employeeRepo.GetBySID(ctx, cmd.EmployeeSID)
	if err != nil {
		return nil, err
	}
	if e.CompanyID() != cmd.CompanyID {
		return nil, errors.NewNotFoundError("employee not found")
	}
	if e.InviteAccepted() {
		return nil, errors.NewConflictError("employee has already accepted an invite")
	}

	token, err := id.Generate(inviteTokenLength)
	if err != nil {
		return nil, errors.NewInternalError("failed to generate invite token")
	}

	if err := e.IssueInvite(token); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.employeeRepo.Update(ctx, e); err != nil {
		uc.logger.Errorw("failed to store invite token", "error", err, "employee_id", e.ID())
		return nil, err
	}

	// Token is persisted either way; a mail failure is retryable by
	// re-inviting.
	emailSent := true
	if err := uc.mailer.SendInviteEmail(e.Email(), e.FullName(), token); err != nil {
		uc.logger.Warnw("failed to send invite email", "error", err, "employee_id", e.ID())
		emailSent = false
	}

	uc.logger.Infow("employee invited", "employee_id", e.ID(), "email_sent", emailSent)

	return &InviteEmployeeResult{
		EmployeeID:  e.ID(),
		InviteToken: token,
		EmailSent:   emailSent,
	}, nil
}
