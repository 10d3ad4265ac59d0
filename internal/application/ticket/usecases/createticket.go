package usecases

import (
	"context"
	"time"

	"crewhub/internal/domain/ticket"
	vo "crewhub/internal/domain/ticket/valueobjects"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type CreateTicketCommand struct {
	Subject     string
	Body        string
	Priority    string
	Attachments []string
	CreatorID   uint
	CompanyID   uint
}

type CreateTicketResult struct {
	TicketID  uint
	SID       string
	Reference string
	Status    string
	CreatedAt time.Time
}

// CreateTicketUseCase opens a ticket together with its first customer
// message. Both rows commit or neither does.
type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	txManager  TransactionManager
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "subject", cmd.Subject, "creator_id", cmd.CreatorID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	priority := vo.Priority(cmd.Priority)
	if cmd.Priority == "" {
		priority = vo.PriorityMedium
	}

	newTicket, err := ticket.NewTicket(cmd.Subject, priority, cmd.CreatorID, cmd.CompanyID)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Save(txCtx, newTicket); err != nil {
			return err
		}

		firstMessage, err := ticket.NewMessage(newTicket.ID(), cmd.CreatorID, vo.SenderUser, cmd.Body, cmd.Attachments)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		return uc.ticketRepo.SaveMessage(txCtx, firstMessage)
	})
	if err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID(), "reference", newTicket.Reference())

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		SID:       newTicket.SID(),
		Reference: newTicket.Reference(),
		Status:    newTicket.Status().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if len(cmd.Subject) == 0 {
		return errors.NewValidationError("subject is required")
	}
	if len(cmd.Subject) > 200 {
		return errors.NewValidationError("subject exceeds maximum length of 200 characters")
	}
	if len(cmd.Body) == 0 {
		return errors.NewValidationError("message body is required")
	}
	if cmd.CreatorID == 0 {
		return errors.NewValidationError("creator ID is required")
	}
	if cmd.CompanyID == 0 {
		return errors.NewValidationError("company ID is required")
	}
	if cmd.Priority != "" {
		if _, err := vo.NewPriority(cmd.Priority); err != nil {
			return errors.NewValidationError("invalid priority")
		}
	}
	return nil
}
