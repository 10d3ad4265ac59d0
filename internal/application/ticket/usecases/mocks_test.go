package usecases

import (
	"context"

	"crewhub/internal/domain/ticket"
	"crewhub/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc                  func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc                func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc                func(ctx context.Context, ticketID uint) error
	GetByIDFunc               func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	GetBySIDFunc              func(ctx context.Context, sid string) (*ticket.Ticket, error)
	ListFunc                  func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
	SaveMessageFunc           func(ctx context.Context, msg *ticket.Message) error
	GetMessagesByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Message, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetBySID(ctx context.Context, sid string) (*ticket.Ticket, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) SaveMessage(ctx context.Context, msg *ticket.Message) error {
	if m.SaveMessageFunc != nil {
		return m.SaveMessageFunc(ctx, msg)
	}
	return nil
}

func (m *mockTicketRepository) GetMessagesByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Message, error) {
	if m.GetMessagesByTicketIDFunc != nil {
		return m.GetMessagesByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockTransactionManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
