package ticket

import (
	"context"

	vo "crewhub/internal/domain/ticket/valueobjects"
	"crewhub/internal/shared/query"
)

type Repository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	GetBySID(ctx context.Context, sid string) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, int64, error)
	SaveMessage(ctx context.Context, message *Message) error
	GetMessagesByTicketID(ctx context.Context, ticketID uint) ([]*Message, error)
}

// Filter narrows ticket listings; CompanyID scoping and search come
// from the embedded list filter.
type Filter struct {
	Status    *vo.TicketStatus
	CreatorID *uint
	query.ListFilter
}
