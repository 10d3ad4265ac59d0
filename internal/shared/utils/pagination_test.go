package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"crewhub/internal/shared/constants"
)

func ginContextWithQuery(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestParseListParams(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantPage int
		wantSize int
	}{
		{"defaults", "", constants.DefaultPage, constants.DefaultPageSize},
		{"explicit values", "page=3&size=20", 3, 20},
		{"size capped at max", "page=1&size=1000", 1, constants.MaxPageSize},
		{"non-numeric ignored", "page=abc&size=xyz", constants.DefaultPage, constants.DefaultPageSize},
		{"zero values ignored", "page=0&size=0", constants.DefaultPage, constants.DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParseListParams(ginContextWithQuery(tt.query))
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantSize, p.Size)
		})
	}
}

func TestParseListParams_SortDefaults(t *testing.T) {
	p := ParseListParams(ginContextWithQuery(""))
	assert.Equal(t, constants.DefaultSortBy, p.SortBy)
	assert.Equal(t, constants.DefaultSortOrder, p.SortDirection)

	p = ParseListParams(ginContextWithQuery("sortBy=name&sortDirection=asc"))
	assert.Equal(t, "name", p.SortBy)
	assert.Equal(t, "asc", p.SortDirection)
}

func TestNewListResponse(t *testing.T) {
	resp := NewListResponse([]string{"a", "b"}, 25, 2, 10)
	assert.Equal(t, int64(25), resp.Total)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 10, resp.PageSize)
	assert.Equal(t, 3, resp.TotalPages)

	empty := NewListResponse([]string{}, 0, 1, 50)
	assert.Equal(t, 0, empty.TotalPages)
}
