package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewhub/internal/domain/ticket"
	vo "crewhub/internal/domain/ticket/valueobjects"
	"crewhub/internal/shared/constants"
	apperrors "crewhub/internal/shared/errors"
)

func newStoredTicket(t *testing.T, creatorID uint) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket("Rota issue", vo.PriorityMedium, creatorID, 1)
	require.NoError(t, err)
	require.NoError(t, tk.SetID(10))
	return tk
}

func TestSendMessageUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("agent reply moves ticket to pending and persists both", func(t *testing.T) {
		tk := newStoredTicket(t, 7)
		updated := false

		repo := &mockTicketRepository{
			GetBySIDFunc: func(ctx context.Context, sid string) (*ticket.Ticket, error) {
				return tk, nil
			},
			UpdateFunc: func(ctx context.Context, got *ticket.Ticket) error {
				updated = true
				return nil
			},
		}

		uc := NewSendMessageUseCase(repo, &mockTransactionManager{}, &mockLogger{})
		result, err := uc.Execute(ctx, SendMessageCommand{
			TicketSID:  tk.SID(),
			SenderID:   99,
			SenderRole: constants.RoleSupportAgent,
			Body:       "Can you clear your cache?",
			CompanyID:  1,
		})

		require.NoError(t, err)
		assert.True(t, result.StatusChanged)
		assert.Equal(t, "PENDING", result.TicketStatus)
		assert.True(t, updated)
	})

	t.Run("customer reply on open ticket changes nothing", func(t *testing.T) {
		tk := newStoredTicket(t, 7)

		repo := &mockTicketRepository{
			GetBySIDFunc: func(ctx context.Context, sid string) (*ticket.Ticket, error) {
				return tk, nil
			},
			UpdateFunc: func(ctx context.Context, got *ticket.Ticket) error {
				t.Fatal("update should not be called when status is unchanged")
				return nil
			},
		}

		uc := NewSendMessageUseCase(repo, &mockTransactionManager{}, &mockLogger{})
		result, err := uc.Execute(ctx, SendMessageCommand{
			TicketSID:  tk.SID(),
			SenderID:   7,
			SenderRole: constants.RoleMember,
			Body:       "Still broken",
			CompanyID:  1,
		})

		require.NoError(t, err)
		assert.False(t, result.StatusChanged)
		assert.Equal(t, "OPEN", result.TicketStatus)
	})

	t.Run("customer reply reopens resolved ticket", func(t *testing.T) {
		tk := newStoredTicket(t, 7)
		require.NoError(t, tk.ChangeStatus(vo.StatusPending))
		require.NoError(t, tk.ChangeStatus(vo.StatusResolved))

		repo := &mockTicketRepository{
			GetBySIDFunc: func(ctx context.Context, sid string) (*ticket.Ticket, error) {
				return tk, nil
			},
		}

		uc := NewSendMessageUseCase(repo, &mockTransactionManager{}, &mockLogger{})
		result, err := uc.Execute(ctx, SendMessageCommand{
			TicketSID:  tk.SID(),
			SenderID:   7,
			SenderRole: constants.RoleMember,
			Body:       "It is back",
			CompanyID:  1,
		})

		require.NoError(t, err)
		assert.True(t, result.StatusChanged)
		assert.Equal(t, "OPEN", result.TicketStatus)
	})

	t.Run("cross tenant access is a not found", func(t *testing.T) {
		tk := newStoredTicket(t, 7)

		repo := &mockTicketRepository{
			GetBySIDFunc: func(ctx context.Context, sid string) (*ticket.Ticket, error) {
				return tk, nil
			},
		}

		uc := NewSendMessageUseCase(repo, &mockTransactionManager{}, &mockLogger{})
		_, err := uc.Execute(ctx, SendMessageCommand{
			TicketSID:  tk.SID(),
			SenderID:   7,
			SenderRole: constants.RoleMember,
			Body:       "hello",
			CompanyID:  2,
		})
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("stranger cannot post to someone else's ticket", func(t *testing.T) {
		tk := newStoredTicket(t, 7)

		repo := &mockTicketRepository{
			GetBySIDFunc: func(ctx context.Context, sid string) (*ticket.Ticket, error) {
				return tk, nil
			},
		}

		uc := NewSendMessageUseCase(repo, &mockTransactionManager{}, &mockLogger{})
		_, err := uc.Execute(ctx, SendMessageCommand{
			TicketSID:  tk.SID(),
			SenderID:   1234,
			SenderRole: constants.RoleMember,
			Body:       "hello",
			CompanyID:  1,
		})
		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)
	})
}
