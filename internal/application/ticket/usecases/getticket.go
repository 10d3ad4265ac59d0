package usecases

import (
	"context"

	"crewhub/internal/domain/ticket"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketSID string
	UserID    uint
	UserRole  string
	CompanyID uint
}

type GetTicketResult struct {
	Ticket   *ticket.Ticket
	Messages []*ticket.Message
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, q GetTicketQuery) (*GetTicketResult, error) {
	t, err := uc.ticketRepo.GetBySID(ctx, q.TicketSID)
	if err != nil {
		return nil, err
	}
	if t.CompanyID() != q.CompanyID {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	if !t.CanBeViewedBy(q.UserID, q.UserRole) {
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	messages, err := uc.ticketRepo.GetMessagesByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to load ticket messages", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	return &GetTicketResult{Ticket: t, Messages: messages}, nil
}
