package usecases

import (
	"context"

	"crewhub/internal/domain/ticket"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketSID string
	CompanyID uint
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewDeleteTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	t, err := uc.ticketRepo.GetBySID(ctx, cmd.TicketSID)
	if err != nil {
		return err
	}
	if t.CompanyID() != cmd.CompanyID {
		return errors.NewNotFoundError("ticket not found")
	}

	if err := uc.ticketRepo.Delete(ctx, t.ID()); err != nil {
		uc.logger.Errorw("failed to delete ticket", "error", err, "ticket_id", t.ID())
		return err
	}

	uc.logger.Infow("ticket deleted", "ticket_id", t.ID())
	return nil
}
