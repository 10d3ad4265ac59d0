package usecases

import (
	"context"

	"crewhub/internal/domain/document"
	"crewhub/internal/shared/logger"
	"crewhub/internal/shared/query"
)

type ListDocumentsQuery struct {
	CompanyID uint
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListDocumentsResult struct {
	Documents  []*document.Document
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

type ListDocumentsUseCase struct {
	documentRepo document.Repository
	logger       logger.Interface
}

func NewListDocumentsUseCase(documentRepo document.Repository, logger logger.Interface) *ListDocumentsUseCase {
	return &ListDocumentsUseCase{
		documentRepo: documentRepo,
		logger:       logger,
	}
}

func (uc *ListDocumentsUseCase) Execute(ctx context.Context, q ListDocumentsQuery) (*ListDocumentsResult, error) {
	filter := query.NewListFilter(
		q.CompanyID,
		query.WithPage(q.Page, q.PageSize),
		query.WithSort(q.SortBy, q.SortOrder),
		query.WithSearch(q.Search),
	)

	documents, total, err := uc.documentRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list documents", "error", err, "company_id", q.CompanyID)
		return nil, err
	}

	limit := filter.Limit()

	return &ListDocumentsResult{
		Documents:  documents,
		Total:      total,
		Page:       filter.Page,
		PageSize:   limit,
		TotalPages: query.TotalPages(total, limit),
	}, nil
}
