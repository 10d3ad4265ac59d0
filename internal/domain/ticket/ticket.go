package ticket

import (
	"fmt"
	"time"

	vo "crewhub/internal/domain/ticket/valueobjects"
	"crewhub/internal/shared/id"
)

type Ticket struct {
	id         uint
	sid        string
	reference  string
	subject    string
	priority   vo.Priority
	status     vo.TicketStatus
	companyID  uint
	creatorID  uint
	assigneeID *uint
	createdAt  time.Time
	updatedAt  time.Time
	messages   []*Message
}

func NewTicket(subject string, priority vo.Priority, creatorID, companyID uint) (*Ticket, error) {
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if len(subject) > 200 {
		return nil, fmt.Errorf("subject exceeds maximum length of 200 characters")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}

	now := time.Now()

	return &Ticket{
		sid:       id.MustGenerateWithPrefix(id.PrefixTicket, id.DefaultLength),
		reference: fmt.Sprintf("SUP-%d", now.UnixMilli()),
		subject:   subject,
		priority:  priority,
		status:    vo.StatusOpen,
		companyID: companyID,
		creatorID: creatorID,
		createdAt: now,
		updatedAt: now,
		messages:  []*Message{},
	}, nil
}

func ReconstructTicket(
	ticketID uint,
	sid string,
	reference string,
	subject string,
	priority vo.Priority,
	status vo.TicketStatus,
	companyID uint,
	creatorID uint,
	assigneeID *uint,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(sid) == 0 {
		return nil, fmt.Errorf("ticket SID is required")
	}
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Ticket{
		id:         ticketID,
		sid:        sid,
		reference:  reference,
		subject:    subject,
		priority:   priority,
		status:     status,
		companyID:  companyID,
		creatorID:  creatorID,
		assigneeID: assigneeID,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
		messages:   []*Message{},
	}, nil
}

func (t *Ticket) ID() uint                { return t.id }
func (t *Ticket) SID() string             { return t.sid }
func (t *Ticket) Reference() string       { return t.reference }
func (t *Ticket) Subject() string         { return t.subject }
func (t *Ticket) Priority() vo.Priority   { return t.priority }
func (t *Ticket) Status() vo.TicketStatus { return t.status }
func (t *Ticket) CompanyID() uint         { return t.companyID }
func (t *Ticket) CreatorID() uint         { return t.creatorID }
func (t *Ticket) AssigneeID() *uint       { return t.assigneeID }
func (t *Ticket) CreatedAt() time.Time    { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time    { return t.updatedAt }

func (t *Ticket) Messages() []*Message {
	messagesCopy := make([]*Message, len(t.messages))
	copy(messagesCopy, t.messages)
	return messagesCopy
}

func (t *Ticket) SetID(ticketID uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if ticketID == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = ticketID
	return nil
}

func (t *Ticket) AssignTo(assigneeID uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}

	t.assigneeID = &assigneeID
	t.updatedAt = time.Now()

	return nil
}

func (t *Ticket) UpdateSubject(subject string) error {
	if len(subject) == 0 {
		return fmt.Errorf("subject is required")
	}
	if len(subject) > 200 {
		return fmt.Errorf("subject exceeds maximum length of 200 characters")
	}

	t.subject = subject
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) ChangePriority(priority vo.Priority) error {
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", priority)
	}

	t.priority = priority
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}

	t.status = newStatus
	t.updatedAt = time.Now()
	return nil
}

// ReceiveMessage appends a message and applies the automatic status
// rules: an agent reply always moves the ticket to PENDING (awaiting
// the customer), and a customer reply on a RESOLVED ticket reopens it.
// It reports whether the status changed so callers know to persist the
// ticket alongside the message.
func (t *Ticket) ReceiveMessage(m *Message) (statusChanged bool, err error) {
	if m == nil {
		return false, fmt.Errorf("message cannot be nil")
	}
	if m.TicketID() != t.id {
		return false, fmt.Errorf("message ticket ID mismatch")
	}

	t.messages = append(t.messages, m)
	t.updatedAt = time.Now()

	switch {
	case m.SenderType().IsAgent():
		if t.status != vo.StatusPending {
			t.status = vo.StatusPending
			return true, nil
		}
	case t.status.IsResolved():
		t.status = vo.StatusOpen
		return true, nil
	}

	return false, nil
}

// CanBeViewedBy reports whether the given user may read this ticket.
// Support staff see every ticket; customers only their own.
func (t *Ticket) CanBeViewedBy(userID uint, role string) bool {
	if role == "admin" || role == "support_agent" {
		return true
	}

	if t.creatorID == userID {
		return true
	}

	if t.assigneeID != nil && *t.assigneeID == userID {
		return true
	}

	return false
}
