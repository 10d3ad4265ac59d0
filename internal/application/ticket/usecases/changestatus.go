package usecases

import (
	"context"

	"crewhub/internal/domain/ticket"
	vo "crewhub/internal/domain/ticket/valueobjects"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketSID string
	Status    string
	CompanyID uint
}

type ChangeStatusUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewChangeStatusUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) error {
	status, err := vo.NewTicketStatus(cmd.Status)
	if err != nil {
		return errors.NewValidationError("invalid status")
	}

	t, err := uc.ticketRepo.GetBySID(ctx, cmd.TicketSID)
	if err != nil {
		return err
	}
	if t.CompanyID() != cmd.CompanyID {
		return errors.NewNotFoundError("ticket not found")
	}

	if err := t.ChangeStatus(status); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to change ticket status", "error", err, "ticket_id", t.ID())
		return err
	}

	uc.logger.Infow("ticket status changed", "ticket_id", t.ID(), "status", status.String())
	return nil
}
