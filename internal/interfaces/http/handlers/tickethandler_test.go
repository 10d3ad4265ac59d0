package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewhub/internal/application/ticket/usecases"
	"crewhub/internal/domain/ticket"
	vo "crewhub/internal/domain/ticket/valueobjects"
	"crewhub/internal/interfaces/http/handlers/testutil"
	"crewhub/internal/shared/constants"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type mockCreateTicketUC struct {
	result *usecases.CreateTicketResult
	err    error
	gotCmd usecases.CreateTicketCommand
}

func (m *mockCreateTicketUC) Execute(ctx context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockGetTicketUC struct {
	result *usecases.GetTicketResult
	err    error
	gotQ   usecases.GetTicketQuery
}

func (m *mockGetTicketUC) Execute(ctx context.Context, q usecases.GetTicketQuery) (*usecases.GetTicketResult, error) {
	m.gotQ = q
	return m.result, m.err
}

type mockListTicketsUC struct {
	result *usecases.ListTicketsResult
	err    error
	gotQ   usecases.ListTicketsQuery
}

func (m *mockListTicketsUC) Execute(ctx context.Context, q usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
	m.gotQ = q
	return m.result, m.err
}

type mockDeleteTicketUC struct{ err error }

func (m *mockDeleteTicketUC) Execute(ctx context.Context, cmd usecases.DeleteTicketCommand) error {
	return m.err
}

type mockAssignTicketUC struct{ err error }

func (m *mockAssignTicketUC) Execute(ctx context.Context, cmd usecases.AssignTicketCommand) error {
	return m.err
}

type mockChangeStatusUC struct {
	err    error
	gotCmd usecases.ChangeStatusCommand
}

func (m *mockChangeStatusUC) Execute(ctx context.Context, cmd usecases.ChangeStatusCommand) error {
	m.gotCmd = cmd
	return m.err
}

type mockSendMessageUC struct {
	result *usecases.SendMessageResult
	err    error
	gotCmd usecases.SendMessageCommand
}

func (m *mockSendMessageUC) Execute(ctx context.Context, cmd usecases.SendMessageCommand) (*usecases.SendMessageResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type ticketHandlerMocks struct {
	create       *mockCreateTicketUC
	get          *mockGetTicketUC
	list         *mockListTicketsUC
	delete       *mockDeleteTicketUC
	assign       *mockAssignTicketUC
	changeStatus *mockChangeStatusUC
	sendMessage  *mockSendMessageUC
}

func newTicketHandler() (*TicketHandler, *ticketHandlerMocks) {
	m := &ticketHandlerMocks{
		create:       &mockCreateTicketUC{},
		get:          &mockGetTicketUC{},
		list:         &mockListTicketsUC{},
		delete:       &mockDeleteTicketUC{},
		assign:       &mockAssignTicketUC{},
		changeStatus: &mockChangeStatusUC{},
		sendMessage:  &mockSendMessageUC{},
	}
	h := NewTicketHandler(m.create, m.get, m.list, m.delete, m.assign, m.changeStatus, m.sendMessage, logger.NewLogger())
	return h, m
}

func newTestTicket(t *testing.T) *ticket.Ticket {
	t.Helper()
	now := time.Now()
	tk, err := ticket.ReconstructTicket(
		1, "tkt_test01", "TKT-2026-0001", "Cannot export timesheets",
		vo.PriorityHigh, vo.StatusOpen, 7, 42, nil, now, now,
	)
	require.NoError(t, err)
	return tk
}

func TestTicketHandler_Create(t *testing.T) {
	t.Run("creates ticket for authenticated member", func(t *testing.T) {
		h, m := newTicketHandler()
		m.create.result = &usecases.CreateTicketResult{
			TicketID:  1,
			SID:       "tkt_test01",
			Reference: "TKT-2026-0001",
			Status:    "OPEN",
			CreatedAt: time.Now(),
		}

		c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/tickets", CreateTicketRequest{
			Subject:  "Cannot export timesheets",
			Body:     "Export returns a blank file.",
			Priority: "HIGH",
		})
		testutil.SetAuthContext(c, 42, 7, constants.RoleMember)
		h.Create(c)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, uint(42), m.create.gotCmd.CreatorID)
		assert.Equal(t, uint(7), m.create.gotCmd.CompanyID)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Contains(t, string(resp.Data), "TKT-2026-0001")
	})

	t.Run("rejects missing subject", func(t *testing.T) {
		h, _ := newTicketHandler()

		c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/tickets", map[string]string{
			"body": "no subject",
		})
		testutil.SetAuthContext(c, 42, 7, constants.RoleMember)
		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTicketHandler_Get(t *testing.T) {
	t.Run("returns ticket with messages", func(t *testing.T) {
		h, m := newTicketHandler()
		msg, err := ticket.ReconstructMessage(10, 1, 42, vo.SenderUser, "first message", nil, time.Now())
		require.NoError(t, err)
		m.get.result = &usecases.GetTicketResult{
			Ticket:   newTestTicket(t),
			Messages: []*ticket.Message{msg},
		}

		c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/tickets/tkt_test01", nil)
		testutil.SetAuthContext(c, 42, 7, constants.RoleMember)
		testutil.SetURLParam(c, "id", "tkt_test01")
		h.Get(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "tkt_test01", m.get.gotQ.TicketSID)
		assert.Equal(t, uint(42), m.get.gotQ.UserID)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Contains(t, string(resp.Data), "first message")
	})

	t.Run("rejects malformed ticket ID", func(t *testing.T) {
		h, _ := newTicketHandler()

		c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/tickets/bogus", nil)
		testutil.SetAuthContext(c, 42, 7, constants.RoleMember)
		testutil.SetURLParam(c, "id", "bogus")
		h.Get(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("maps cross-tenant read to not found", func(t *testing.T) {
		h, m := newTicketHandler()
		m.get.err = errors.NewNotFoundError("ticket not found")

		c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/tickets/tkt_other1", nil)
		testutil.SetAuthContext(c, 42, 7, constants.RoleMember)
		testutil.SetURLParam(c, "id", "tkt_other1")
		h.Get(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTicketHandler_List(t *testing.T) {
	t.Run("passes status filter and paging", func(t *testing.T) {
		h, m := newTicketHandler()
		m.list.result = &usecases.ListTicketsResult{
			Tickets:  []*ticket.Ticket{newTestTicket(t)},
			Total:    1,
			Page:     2,
			PageSize: 10,
		}

		c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/tickets", nil)
		testutil.SetAuthContext(c, 42, 7, constants.RoleSupportAgent)
		testutil.SetQueryParams(c, map[string]string{
			"page":   "2",
			"size":   "10",
			"status": "OPEN",
		})
		h.List(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "OPEN", m.list.gotQ.Status)
		assert.Equal(t, 2, m.list.gotQ.Page)
		assert.Equal(t, 10, m.list.gotQ.PageSize)
		assert.Equal(t, constants.RoleSupportAgent, m.list.gotQ.UserRole)
	})
}

func TestTicketHandler_SendMessage(t *testing.T) {
	t.Run("appends message and reports status flip", func(t *testing.T) {
		h, m := newTicketHandler()
		m.sendMessage.result = &usecases.SendMessageResult{
			MessageID:     11,
			TicketStatus:  "ANSWERED",
			StatusChanged: true,
			CreatedAt:     time.Now(),
		}

		c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/tickets/tkt_test01/messages", SendTicketMessageRequest{
			Body: "We shipped a fix.",
		})
		testutil.SetAuthContext(c, 99, 7, constants.RoleSupportAgent)
		testutil.SetURLParam(c, "id", "tkt_test01")
		h.SendMessage(c)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, uint(99), m.sendMessage.gotCmd.SenderID)
		assert.Equal(t, constants.RoleSupportAgent, m.sendMessage.gotCmd.SenderRole)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Contains(t, string(resp.Data), "ANSWERED")
	})
}

func TestTicketHandler_ChangeStatus(t *testing.T) {
	t.Run("forwards status", func(t *testing.T) {
		h, m := newTicketHandler()

		c, w := testutil.NewTestContext(http.MethodPatch, "/api/v1/tickets/tkt_test01/status", ChangeTicketStatusRequest{
			Status: "CLOSED",
		})
		testutil.SetAuthContext(c, 99, 7, constants.RoleSupportAgent)
		testutil.SetURLParam(c, "id", "tkt_test01")
		h.ChangeStatus(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "CLOSED", m.changeStatus.gotCmd.Status)
	})

	t.Run("propagates invalid transition", func(t *testing.T) {
		h, m := newTicketHandler()
		m.changeStatus.err = errors.NewValidationError("invalid status transition")

		c, w := testutil.NewTestContext(http.MethodPatch, "/api/v1/tickets/tkt_test01/status", ChangeTicketStatusRequest{
			Status: "REOPENED",
		})
		testutil.SetAuthContext(c, 99, 7, constants.RoleSupportAgent)
		testutil.SetURLParam(c, "id", "tkt_test01")
		h.ChangeStatus(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
