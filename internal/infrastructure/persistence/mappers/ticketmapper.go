package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"crewhub/internal/domain/ticket"
	vo "crewhub/internal/domain/ticket/valueobjects"
	"crewhub/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	MessageToModel(msg *ticket.Message) *models.TicketMessageModel
	MessageToDomain(model *models.TicketMessageModel) (*ticket.Message, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:         t.ID(),
		SID:        t.SID(),
		Reference:  t.Reference(),
		Subject:    t.Subject(),
		Priority:   t.Priority().String(),
		Status:     t.Status().String(),
		CompanyID:  t.CompanyID(),
		CreatorID:  t.CreatorID(),
		AssigneeID: t.AssigneeID(),
		CreatedAt:  t.CreatedAt().UnixMilli(),
		UpdatedAt:  t.UpdatedAt().UnixMilli(),
	}
}

// ToDomain converts the ticket row only. Messages are loaded
// separately by the repository.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("invalid priority in ticket %d: %w", model.ID, err)
	}

	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid status in ticket %d: %w", model.ID, err)
	}

	t, err := ticket.ReconstructTicket(
		model.ID,
		model.SID,
		model.Reference,
		model.Subject,
		priority,
		status,
		model.CompanyID,
		model.CreatorID,
		model.AssigneeID,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket: %w", err)
	}

	return t, nil
}

func (m *TicketMapperImpl) MessageToModel(msg *ticket.Message) *models.TicketMessageModel {
	model := &models.TicketMessageModel{
		ID:         msg.ID(),
		TicketID:   msg.TicketID(),
		SenderID:   msg.SenderID(),
		SenderType: msg.SenderType().String(),
		Body:       msg.Body(),
		CreatedAt:  msg.CreatedAt().UnixMilli(),
	}

	if attachments := msg.Attachments(); len(attachments) > 0 {
		attachmentsJSON, _ := json.Marshal(attachments)
		model.Attachments = datatypes.JSON(attachmentsJSON)
	}

	return model
}

func (m *TicketMapperImpl) MessageToDomain(model *models.TicketMessageModel) (*ticket.Message, error) {
	senderType, err := vo.NewSenderType(model.SenderType)
	if err != nil {
		return nil, fmt.Errorf("invalid sender type in message %d: %w", model.ID, err)
	}

	var attachments []string
	if len(model.Attachments) > 0 {
		if err := json.Unmarshal(model.Attachments, &attachments); err != nil {
			return nil, fmt.Errorf("failed to unmarshal attachments: %w", err)
		}
	}

	msg, err := ticket.ReconstructMessage(
		model.ID,
		model.TicketID,
		model.SenderID,
		senderType,
		model.Body,
		attachments,
		time.UnixMilli(model.CreatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct message: %w", err)
	}

	return msg, nil
}
