// Package query provides pagination, sorting and tenant-scoped filter
// primitives shared by all list operations.
package query

import "crewhub/internal/shared/constants"

type PageFilter struct {
	Page     int
	PageSize int
}

// Offset converts a 1-based page into a row offset. Non-positive pages
// are treated as the first page.
func (f PageFilter) Offset() int {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit()
}

// Limit clamps the page size to [1, MaxPageSize], defaulting to
// DefaultPageSize for non-positive input.
func (f PageFilter) Limit() int {
	if f.PageSize <= 0 {
		return constants.DefaultPageSize
	}
	if f.PageSize > constants.MaxPageSize {
		return constants.MaxPageSize
	}
	return f.PageSize
}

type SortFilter struct {
	SortBy    string
	SortOrder string
}

func (f SortFilter) IsDescending() bool {
	return f.SortOrder == "desc" || f.SortOrder == "DESC"
}

func (f SortFilter) IsAscending() bool {
	return f.SortOrder == "asc" || f.SortOrder == "ASC"
}

// SearchFilter carries a case-insensitive substring search across a
// set of columns. An empty Term means no search predicate at all.
type SearchFilter struct {
	Term   string
	Fields []string
}

func (f SearchFilter) HasTerm() bool {
	return f.Term != ""
}

// ListFilter is the tenant-scoped filter every paginated listing
// accepts. CompanyID is always applied as an equality constraint by
// the repositories; sort fields are validated there against per-entity
// allow-lists before reaching the query layer.
type ListFilter struct {
	CompanyID uint
	Search    SearchFilter
	PageFilter
	SortFilter
}

type FilterOption func(*ListFilter)

func WithPage(page, pageSize int) FilterOption {
	return func(f *ListFilter) {
		f.Page = page
		f.PageSize = pageSize
	}
}

func WithSort(sortBy, sortOrder string) FilterOption {
	return func(f *ListFilter) {
		f.SortBy = sortBy
		f.SortOrder = sortOrder
	}
}

func WithSearch(term string, fields ...string) FilterOption {
	return func(f *ListFilter) {
		f.Search = SearchFilter{Term: term, Fields: fields}
	}
}

func NewListFilter(companyID uint, opts ...FilterOption) ListFilter {
	f := ListFilter{
		CompanyID: companyID,
		PageFilter: PageFilter{
			Page:     constants.DefaultPage,
			PageSize: constants.DefaultPageSize,
		},
		SortFilter: SortFilter{
			SortBy:    constants.DefaultSortBy,
			SortOrder: constants.DefaultSortOrder,
		},
	}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// TotalPages computes ceil(total/limit). A zero total yields zero
// pages; a page beyond the last is a valid, empty page.
func TotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
