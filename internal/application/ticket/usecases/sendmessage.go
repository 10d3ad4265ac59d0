package usecases

import (
	"context"
	"time"

	"crewhub/internal/domain/ticket"
	vo "crewhub/internal/domain/ticket/valueobjects"
	"crewhub/internal/shared/constants"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type SendMessageCommand struct {
	TicketSID   string
	SenderID    uint
	SenderRole  string
	Body        string
	Attachments []string
	CompanyID   uint
}

type SendMessageResult struct {
	MessageID     uint
	TicketStatus  string
	StatusChanged bool
	CreatedAt     time.Time
}

// SendMessageUseCase appends a message to a ticket and applies the
// automatic status transitions. The message insert and any status
// change commit in the same transaction.
type SendMessageUseCase struct {
	ticketRepo ticket.Repository
	txManager  TransactionManager
	logger     logger.Interface
}

func NewSendMessageUseCase(
	ticketRepo ticket.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *SendMessageUseCase {
	return &SendMessageUseCase{
		ticketRepo: ticketRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *SendMessageUseCase) Execute(ctx context.Context, cmd SendMessageCommand) (*SendMessageResult, error) {
	uc.logger.Infow("executing send message use case", "ticket_sid", cmd.TicketSID, "sender_id", cmd.SenderID)

	if len(cmd.Body) == 0 {
		return nil, errors.NewValidationError("message body is required")
	}
	if cmd.SenderID == 0 {
		return nil, errors.NewValidationError("sender ID is required")
	}

	t, err := uc.ticketRepo.GetBySID(ctx, cmd.TicketSID)
	if err != nil {
		return nil, err
	}
	if t.CompanyID() != cmd.CompanyID {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	if !t.CanBeViewedBy(cmd.SenderID, cmd.SenderRole) {
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	senderType := vo.SenderUser
	if cmd.SenderRole == constants.RoleSupportAgent {
		senderType = vo.SenderAgent
	}

	msg, err := ticket.NewMessage(t.ID(), cmd.SenderID, senderType, cmd.Body, cmd.Attachments)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	statusChanged, err := t.ReceiveMessage(msg)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.SaveMessage(txCtx, msg); err != nil {
			return err
		}
		if statusChanged {
			return uc.ticketRepo.Update(txCtx, t)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to save ticket message", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	uc.logger.Infow("ticket message saved", "ticket_id", t.ID(), "status", t.Status().String(), "status_changed", statusChanged)

	return &SendMessageResult{
		MessageID:     msg.ID(),
		TicketStatus:  t.Status().String(),
		StatusChanged: statusChanged,
		CreatedAt:     msg.CreatedAt(),
	}, nil
}
