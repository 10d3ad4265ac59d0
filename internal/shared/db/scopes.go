package db

import (
	"strings"

	"gorm.io/gorm"

	"crewhub/internal/shared/query"
)

// CompanyScoped constrains a query to a single tenant. Every
// business-row query goes through this scope; a row from another
// company is indistinguishable from a missing row.
func CompanyScoped(companyID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}

// Searched applies a case-insensitive OR group of substring matches
// over the filter's fields. Field names must come from a repository
// allow-list, never from user input.
func Searched(f query.SearchFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !f.HasTerm() || len(f.Fields) == 0 {
			return db
		}
		term := "%" + strings.ToLower(f.Term) + "%"
		conds := make([]string, len(f.Fields))
		args := make([]interface{}, len(f.Fields))
		for i, field := range f.Fields {
			conds[i] = "LOWER(" + field + ") LIKE ?"
			args[i] = term
		}
		return db.Where(strings.Join(conds, " OR "), args...)
	}
}

// Ordered applies sorting after validating the sort column against the
// given allow-list; unknown columns fall back to updated_at DESC.
func Ordered(f query.SortFilter, allowed map[string]bool) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		sortBy := strings.ToLower(f.SortBy)
		if sortBy == "" || !allowed[sortBy] {
			return db.Order("updated_at DESC")
		}
		order := "DESC"
		if f.IsAscending() {
			order = "ASC"
		}
		return db.Order(sortBy + " " + order)
	}
}

// Paged applies offset/limit slicing from the page filter.
func Paged(f query.PageFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(f.Offset()).Limit(f.Limit())
	}
}
