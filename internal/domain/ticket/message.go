package ticket

import (
	"fmt"
	"time"

	vo "crewhub/internal/domain/ticket/valueobjects"
)

type Message struct {
	id          uint
	ticketID    uint
	senderID    uint
	senderType  vo.SenderType
	body        string
	attachments []string
	createdAt   time.Time
}

func NewMessage(ticketID, senderID uint, senderType vo.SenderType, body string, attachments []string) (*Message, error) {
	if senderID == 0 {
		return nil, fmt.Errorf("sender ID is required")
	}
	if !senderType.IsValid() {
		return nil, fmt.Errorf("invalid sender type")
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("message body is required")
	}
	if len(body) > 10000 {
		return nil, fmt.Errorf("message body exceeds maximum length of 10000 characters")
	}

	if attachments == nil {
		attachments = []string{}
	}

	return &Message{
		ticketID:    ticketID,
		senderID:    senderID,
		senderType:  senderType,
		body:        body,
		attachments: attachments,
		createdAt:   time.Now(),
	}, nil
}

func ReconstructMessage(
	messageID uint,
	ticketID uint,
	senderID uint,
	senderType vo.SenderType,
	body string,
	attachments []string,
	createdAt time.Time,
) (*Message, error) {
	if messageID == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}
	if !senderType.IsValid() {
		return nil, fmt.Errorf("invalid sender type")
	}

	if attachments == nil {
		attachments = []string{}
	}

	return &Message{
		id:          messageID,
		ticketID:    ticketID,
		senderID:    senderID,
		senderType:  senderType,
		body:        body,
		attachments: attachments,
		createdAt:   createdAt,
	}, nil
}

func (m *Message) ID() uint                  { return m.id }
func (m *Message) TicketID() uint            { return m.ticketID }
func (m *Message) SenderID() uint            { return m.senderID }
func (m *Message) SenderType() vo.SenderType { return m.senderType }
func (m *Message) Body() string              { return m.body }
func (m *Message) CreatedAt() time.Time      { return m.createdAt }

func (m *Message) Attachments() []string {
	attachmentsCopy := make([]string, len(m.attachments))
	copy(attachmentsCopy, m.attachments)
	return attachmentsCopy
}

func (m *Message) SetID(messageID uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID is already set")
	}
	if messageID == 0 {
		return fmt.Errorf("message ID cannot be zero")
	}
	m.id = messageID
	return nil
}

// SetTicketID stamps the parent ticket's identity onto a message
// created before the ticket row existed (the create-ticket flow).
func (m *Message) SetTicketID(ticketID uint) error {
	if m.ticketID != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if ticketID == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	m.ticketID = ticketID
	return nil
}
