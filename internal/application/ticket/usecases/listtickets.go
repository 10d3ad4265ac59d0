package usecases

import (
	"context"

	"crewhub/internal/domain/ticket"
	vo "crewhub/internal/domain/ticket/valueobjects"
	"crewhub/internal/shared/constants"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
	"crewhub/internal/shared/query"
)

type ListTicketsQuery struct {
	CompanyID uint
	UserID    uint
	UserRole  string
	Status    string
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListTicketsResult struct {
	Tickets    []*ticket.Ticket
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, q ListTicketsQuery) (*ListTicketsResult, error) {
	filter := ticket.Filter{
		ListFilter: query.NewListFilter(
			q.CompanyID,
			query.WithPage(q.Page, q.PageSize),
			query.WithSort(q.SortBy, q.SortOrder),
			query.WithSearch(q.Search),
		),
	}

	if q.Status != "" {
		status, err := vo.NewTicketStatus(q.Status)
		if err != nil {
			return nil, errors.NewValidationError("invalid status filter")
		}
		filter.Status = &status
	}

	// Members only see the tickets they opened.
	if q.UserRole != constants.RoleAdmin && q.UserRole != constants.RoleOwner && q.UserRole != constants.RoleSupportAgent {
		creatorID := q.UserID
		filter.CreatorID = &creatorID
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err, "company_id", q.CompanyID)
		return nil, err
	}

	limit := filter.Limit()

	return &ListTicketsResult{
		Tickets:    tickets,
		Total:      total,
		Page:       filter.Page,
		PageSize:   limit,
		TotalPages: query.TotalPages(total, limit),
	}, nil
}
