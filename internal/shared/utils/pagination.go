package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"crewhub/internal/shared/constants"
	"crewhub/internal/shared/query"
)

// ListParams holds the query parameters common to every list endpoint.
type ListParams struct {
	Page          int
	Size          int
	Search        string
	SortBy        string
	SortDirection string
}

// ParseListParams parses page/size/search/sort query parameters with
// defaults applied. Page and size are validated here; sort fields are
// validated later against per-repository allow-lists.
func ParseListParams(c *gin.Context) ListParams {
	page := parseQueryInt(c, "page", constants.DefaultPage)
	size := parseQueryInt(c, "size", constants.DefaultPageSize)
	if size > constants.MaxPageSize {
		size = constants.MaxPageSize
	}

	return ListParams{
		Page:          page,
		Size:          size,
		Search:        c.Query("search"),
		SortBy:        c.DefaultQuery("sortBy", constants.DefaultSortBy),
		SortDirection: c.DefaultQuery("sortDirection", constants.DefaultSortOrder),
	}
}

// Filter builds a tenant-scoped list filter from the parsed parameters.
func (p ListParams) Filter(companyID uint, searchFields ...string) query.ListFilter {
	return query.NewListFilter(companyID,
		query.WithPage(p.Page, p.Size),
		query.WithSort(p.SortBy, p.SortDirection),
		query.WithSearch(p.Search, searchFields...),
	)
}

// parseQueryInt parses an integer query parameter with a default value.
func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			return n
		}
	}
	return defaultVal
}
