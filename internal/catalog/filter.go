package catalog

import (
	"strings"

	"github.com/google/uuid"
)

const (
	// DefaultPageSize is the storefront grid size, AdminPageSize the back-office
	// table size. Page size is a view decision, never user input.
	DefaultPageSize = 12
	AdminPageSize   = 10
)

// Filter is the canonical form of a catalog query: what to search for, which
// categories to restrict to and which slice of the result to return.
type Filter struct {
	Search      string
	CategoryIDs []uuid.UUID
	Page        int
	PageSize    int
}

// NormalizeFilter clamps and cleans raw query input into a canonical Filter.
// It never fails: this sits behind an end-user search box, so bad values are
// ignored or clamped rather than rejected. Normalizing an already canonical
// filter changes nothing.
func NormalizeFilter(search string, categoryIDs []uuid.UUID, page, pageSize int) Filter {
	f := Filter{
		Search:   strings.TrimSpace(search),
		Page:     page,
		PageSize: pageSize,
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}

	if len(categoryIDs) > 0 {
		seen := make(map[uuid.UUID]struct{}, len(categoryIDs))
		ids := make([]uuid.UUID, 0, len(categoryIDs))
		for _, id := range categoryIDs {
			if id == uuid.Nil {
				continue
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
		f.CategoryIDs = ids
	}

	return f
}

// HasSearch reports whether a search predicate applies.
func (f Filter) HasSearch() bool {
	return f.Search != ""
}

// HasCategories reports whether a category restriction applies.
func (f Filter) HasCategories() bool {
	return len(f.CategoryIDs) > 0
}

// Offset is the row offset of the requested page.
func (f Filter) Offset() int {
	return (f.Page - 1) * f.PageSize
}
