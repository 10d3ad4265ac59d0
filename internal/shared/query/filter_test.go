package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"crewhub/internal/shared/constants"
)

func TestPageFilter_Offset(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		want     int
	}{
		{"first page", 1, 10, 0},
		{"second page", 2, 10, 10},
		{"third page of 25", 3, 25, 50},
		{"zero page clamps to first", 0, 10, 0},
		{"negative page clamps to first", -3, 10, 0},
		{"page with default size", 2, 0, constants.DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := PageFilter{Page: tt.page, PageSize: tt.pageSize}
			assert.Equal(t, tt.want, f.Offset())
		})
	}
}

func TestPageFilter_Limit(t *testing.T) {
	tests := []struct {
		name     string
		pageSize int
		want     int
	}{
		{"normal size", 25, 25},
		{"zero size defaults", 0, constants.DefaultPageSize},
		{"negative size defaults", -1, constants.DefaultPageSize},
		{"oversized is capped", 500, constants.MaxPageSize},
		{"exactly max", constants.MaxPageSize, constants.MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := PageFilter{PageSize: tt.pageSize}
			assert.Equal(t, tt.want, f.Limit())
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		limit int
		want  int
	}{
		{"zero items means zero pages", 0, 10, 0},
		{"exact multiple", 30, 10, 3},
		{"remainder rounds up", 25, 10, 3},
		{"single item", 1, 50, 1},
		{"limit larger than total", 7, 50, 1},
		{"zero limit", 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.total, tt.limit))
		})
	}
}

func TestNewListFilter(t *testing.T) {
	f := NewListFilter(42,
		WithPage(2, 10),
		WithSort("name", "asc"),
		WithSearch("acme", "name", "reference"),
	)

	assert.Equal(t, uint(42), f.CompanyID)
	assert.Equal(t, 10, f.Offset())
	assert.Equal(t, 10, f.Limit())
	assert.True(t, f.IsAscending())
	assert.True(t, f.Search.HasTerm())
	assert.Equal(t, []string{"name", "reference"}, f.Search.Fields)
}

func TestNewListFilter_Defaults(t *testing.T) {
	f := NewListFilter(1)

	assert.Equal(t, constants.DefaultPage, f.Page)
	assert.Equal(t, constants.DefaultPageSize, f.Limit())
	assert.Equal(t, constants.DefaultSortBy, f.SortBy)
	assert.True(t, f.IsDescending())
	assert.False(t, f.Search.HasTerm())
}
