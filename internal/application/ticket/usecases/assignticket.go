package usecases

import (
	"context"

	"crewhub/internal/domain/ticket"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type AssignTicketCommand struct {
	TicketSID  string
	AssigneeID uint
	CompanyID  uint
}

type AssignTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewAssignTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) error {
	if cmd.AssigneeID == 0 {
		return errors.NewValidationError("assignee ID is required")
	}

	t, err := uc.ticketRepo.GetBySID(ctx, cmd.TicketSID)
	if err != nil {
		return err
	}
	if t.CompanyID() != cmd.CompanyID {
		return errors.NewNotFoundError("ticket not found")
	}

	if err := t.AssignTo(cmd.AssigneeID); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to assign ticket", "error", err, "ticket_id", t.ID())
		return err
	}

	uc.logger.Infow("ticket assigned", "ticket_id", t.ID(), "assignee_id", cmd.AssigneeID)
	return nil
}
