package handlers

import (
	"context"

	"crewhub/internal/application/ticket/usecases"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, q usecases.GetTicketQuery) (*usecases.GetTicketResult, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, q usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.DeleteTicketCommand) error
}

type AssignTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.AssignTicketCommand) error
}

type ChangeTicketStatusExecutor interface {
	Execute(ctx context.Context, cmd usecases.ChangeStatusCommand) error
}

type SendTicketMessageExecutor interface {
	Execute(ctx context.Context, cmd usecases.SendMessageCommand) (*usecases.SendMessageResult, error)
}
