package persistent

import (
	"strings"

	"grace-media/internal/entity"

	"gorm.io/gorm"
)

// applySort maps the dashboard's sort keys onto SQL ordering. Unknown
// values fall back to newest-first, matching the dashboard default.
func applySort(query *gorm.DB, sortBy, titleColumn string) *gorm.DB {
	switch sortBy {
	case entity.SortOldest:
		return query.Order("created_at ASC")
	case entity.SortTitle:
		return query.Order(titleColumn + " ASC")
	default:
		return query.Order("created_at DESC")
	}
}

// applyPagination computes offset/limit from 1-based page numbers.
func applyPagination(query *gorm.DB, page, perPage int) *gorm.DB {
	if perPage <= 0 {
		return query
	}
	if page < 1 {
		page = 1
	}
	return query.Limit(perPage).Offset((page - 1) * perPage)
}

// likePattern wraps a search term for a case-insensitive substring match.
func likePattern(search string) string {
	return "%" + strings.TrimSpace(search) + "%"
}

// statusFilter reports whether a status/type filter value is active.
// Empty and "all" both mean unfiltered.
func filterActive(value string) bool {
	return value != "" && value != "all"
}
