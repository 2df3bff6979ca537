package catalog

import (
	"strings"

	"github.com/mmcdole/nador/internal/domain"
)

// FilterState holds the two user-controlled filter inputs
type FilterState struct {
	Category string // Selected category; domain.CategoryAll disables category filtering
	Search   string // Raw search text, stored verbatim (trimmed only when evaluated)
}

// DefaultFilter returns the initial filter: all categories, no search
func DefaultFilter() FilterState {
	return FilterState{Category: domain.CategoryAll}
}

// needle returns the normalized search text ("" means no search filter)
func (f FilterState) needle() string {
	return strings.ToLower(strings.TrimSpace(f.Search))
}

// IsIdentity reports whether the filter passes every product through
func (f FilterState) IsIdentity() bool {
	return f.Category == domain.CategoryAll && f.needle() == ""
}

// ComputeFilteredView returns the products that pass both the category and the
// search predicate, in their original relative order. It never mutates its
// input and always returns a fresh slice.
//
// Category matching is exact and case-sensitive. Search matching trims and
// lower-cases the text, then looks for it as a substring of the lower-cased
// title, description or category, or of the decimal id.
func ComputeFilteredView(products []domain.Product, f FilterState) []domain.Product {
	needle := f.needle()
	filtered := make([]domain.Product, 0, len(products))

	for _, p := range products {
		if !matchesCategory(p, f.Category) {
			continue
		}
		if needle != "" && !matchesSearch(p, needle) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// Matches reports whether a single product passes the filter
func Matches(p domain.Product, f FilterState) bool {
	if !matchesCategory(p, f.Category) {
		return false
	}
	needle := f.needle()
	return needle == "" || matchesSearch(p, needle)
}

func matchesCategory(p domain.Product, category string) bool {
	return category == domain.CategoryAll || p.Category == category
}

// matchesSearch expects needle already trimmed and lower-cased
func matchesSearch(p domain.Product, needle string) bool {
	return strings.Contains(strings.ToLower(p.Title), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) ||
		strings.Contains(strings.ToLower(p.Category), needle) ||
		strings.Contains(p.IDString(), needle)
}

// CountByCategory returns how many products fall in each category.
// The CategoryAll key holds the total.
func CountByCategory(products []domain.Product) map[string]int {
	counts := make(map[string]int)
	for _, p := range products {
		counts[p.Category]++
	}
	counts[domain.CategoryAll] = len(products)
	return counts
}
