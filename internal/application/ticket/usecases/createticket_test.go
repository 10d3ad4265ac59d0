package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewhub/internal/domain/ticket"
	vo "crewhub/internal/domain/ticket/valueobjects"
	apperrors "crewhub/internal/shared/errors"
)

func TestCreateTicketUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("creates ticket with first customer message", func(t *testing.T) {
		var savedTicket *ticket.Ticket
		var savedMessage *ticket.Message

		repo := &mockTicketRepository{
			SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				require.NoError(t, tk.SetID(42))
				savedTicket = tk
				return nil
			},
			SaveMessageFunc: func(ctx context.Context, msg *ticket.Message) error {
				savedMessage = msg
				return nil
			},
		}

		uc := NewCreateTicketUseCase(repo, &mockTransactionManager{}, &mockLogger{})
		result, err := uc.Execute(ctx, CreateTicketCommand{
			Subject:   "Cannot open rota",
			Body:      "The rota page spins forever",
			Priority:  "HIGH",
			CreatorID: 7,
			CompanyID: 1,
		})

		require.NoError(t, err)
		assert.Equal(t, uint(42), result.TicketID)
		assert.Equal(t, "OPEN", result.Status)
		assert.Contains(t, result.Reference, "SUP-")

		require.NotNil(t, savedTicket)
		assert.Equal(t, vo.PriorityHigh, savedTicket.Priority())

		require.NotNil(t, savedMessage)
		assert.Equal(t, uint(42), savedMessage.TicketID())
		assert.Equal(t, vo.SenderUser, savedMessage.SenderType())
		assert.Equal(t, "The rota page spins forever", savedMessage.Body())
	})

	t.Run("defaults priority to medium", func(t *testing.T) {
		repo := &mockTicketRepository{
			SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				assert.Equal(t, vo.PriorityMedium, tk.Priority())
				return tk.SetID(1)
			},
		}

		uc := NewCreateTicketUseCase(repo, &mockTransactionManager{}, &mockLogger{})
		_, err := uc.Execute(ctx, CreateTicketCommand{
			Subject:   "Question",
			Body:      "How do I export timesheets?",
			CreatorID: 7,
			CompanyID: 1,
		})
		assert.NoError(t, err)
	})

	t.Run("message save failure rolls the ticket back", func(t *testing.T) {
		repo := &mockTicketRepository{
			SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				return tk.SetID(9)
			},
			SaveMessageFunc: func(ctx context.Context, msg *ticket.Message) error {
				return apperrors.NewInternalError("insert failed")
			},
		}

		uc := NewCreateTicketUseCase(repo, &mockTransactionManager{}, &mockLogger{})
		result, err := uc.Execute(ctx, CreateTicketCommand{
			Subject:   "Broken",
			Body:      "help",
			CreatorID: 7,
			CompanyID: 1,
		})
		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("validation failures", func(t *testing.T) {
		uc := NewCreateTicketUseCase(&mockTicketRepository{}, &mockTransactionManager{}, &mockLogger{})

		tests := []struct {
			name string
			cmd  CreateTicketCommand
		}{
			{"missing subject", CreateTicketCommand{Body: "b", CreatorID: 1, CompanyID: 1}},
			{"missing body", CreateTicketCommand{Subject: "s", CreatorID: 1, CompanyID: 1}},
			{"missing creator", CreateTicketCommand{Subject: "s", Body: "b", CompanyID: 1}},
			{"missing company", CreateTicketCommand{Subject: "s", Body: "b", CreatorID: 1}},
			{"bad priority", CreateTicketCommand{Subject: "s", Body: "b", Priority: "EXTREME", CreatorID: 1, CompanyID: 1}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := uc.Execute(ctx, tt.cmd)
				assert.True(t, apperrors.IsValidationError(err))
			})
		}
	})
}
