package usecases

import (
	"context"

	"crewhub/internal/domain/plan"
	"crewhub/internal/shared/logger"
	"crewhub/internal/shared/query"
)

type ListBillingHistoryQuery struct {
	CompanyID uint
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListBillingHistoryResult struct {
	Entries    []*plan.BillingHistory
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

type ListBillingHistoryUseCase struct {
	billingRepo plan.BillingHistoryRepository
	logger      logger.Interface
}

func NewListBillingHistoryUseCase(billingRepo plan.BillingHistoryRepository, logger logger.Interface) *ListBillingHistoryUseCase {
	return &ListBillingHistoryUseCase{
		billingRepo: billingRepo,
		logger:      logger,
	}
}

func (uc *ListBillingHistoryUseCase) Execute(ctx context.Context, q ListBillingHistoryQuery) (*ListBillingHistoryResult, error) {
	filter := query.NewListFilter(
		q.CompanyID,
		query.WithPage(q.Page, q.PageSize),
		query.WithSort(q.SortBy, q.SortOrder),
		query.WithSearch(q.Search),
	)

	entries, total, err := uc.billingRepo.ListByCompanyID(ctx, q.CompanyID, filter)
	if err != nil {
		uc.logger.Errorw("failed to list billing history", "error", err, "company_id", q.CompanyID)
		return nil, err
	}

	limit := filter.Limit()

	return &ListBillingHistoryResult{
		Entries:    entries,
		Total:      total,
		Page:       filter.Page,
		PageSize:   limit,
		TotalPages: query.TotalPages(total, limit),
	}, nil
}
