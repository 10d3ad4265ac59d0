package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"crewhub/internal/domain/ticket"
	"crewhub/internal/infrastructure/persistence/mappers"
	"crewhub/internal/infrastructure/persistence/models"
	"crewhub/internal/shared/db"
	apperrors "crewhub/internal/shared/errors"
)

// allowedTicketOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedTicketOrderByFields = map[string]bool{
	"id":         true,
	"reference":  true,
	"subject":    true,
	"status":     true,
	"priority":   true,
	"creator_id": true,
	"created_at": true,
	"updated_at": true,
}

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(database *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("subject", "priority", "status", "assignee_id", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(innerTx *gorm.DB) error {
		if err := innerTx.Where("ticket_id = ?", ticketID).Delete(&models.TicketMessageModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete ticket messages: %w", err)
		}

		result := innerTx.Delete(&models.TicketModel{}, ticketID)
		if result.Error != nil {
			return fmt.Errorf("failed to delete ticket: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError("ticket not found")
		}
		return nil
	})
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, ticketID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) GetBySID(ctx context.Context, sid string) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	filter.Search.Fields = []string{"subject", "reference"}
	listQuery := tx.Model(&models.TicketModel{}).
		Scopes(db.CompanyScoped(filter.CompanyID), db.Searched(filter.Search))

	if filter.Status != nil {
		listQuery = listQuery.Where("status = ?", filter.Status.String())
	}
	if filter.CreatorID != nil {
		listQuery = listQuery.Where("creator_id = ?", *filter.CreatorID)
	}

	var total int64
	if err := listQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	var ticketModels []models.TicketModel
	if err := listQuery.
		Scopes(db.Ordered(filter.SortFilter, allowedTicketOrderByFields), db.Paged(filter.PageFilter)).
		Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		tickets[i] = t
	}

	return tickets, total, nil
}

func (r *TicketRepository) SaveMessage(ctx context.Context, msg *ticket.Message) error {
	model := r.mapper.MessageToModel(msg)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket message: %w", err)
	}

	return msg.SetID(model.ID)
}

func (r *TicketRepository) GetMessagesByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Message, error) {
	var messageModels []models.TicketMessageModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&messageModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load ticket messages: %w", err)
	}

	messages := make([]*ticket.Message, len(messageModels))
	for i, model := range messageModels {
		msg, err := r.mapper.MessageToDomain(&model)
		if err != nil {
			return nil, err
		}
		messages[i] = msg
	}

	return messages, nil
}
