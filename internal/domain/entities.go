package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// CategoryAll is the synthetic category meaning "no category filter".
// The data source never returns it; it is always first in the category list.
const CategoryAll = "All"

// Product represents a single catalog entry as received from the data source
type Product struct {
	ID          int     // Stable unique identifier
	Title       string  // Display title
	Price       float64 // Non-negative price
	Description string  // Long-form description
	Category    string  // One of the source categories
	Image       string  // Image URL
	Rating      Rating  // Customer rating
}

// Rating is the aggregated customer rating of a product
type Rating struct {
	Rate  float64 // 0-5
	Count int     // Number of ratings
}

// IDString returns the decimal form of the product ID (used by search)
func (p Product) IDString() string {
	return strconv.Itoa(p.ID)
}

// FormattedPrice returns the price with two decimals and a dollar suffix, e.g. "109.95$"
func (p Product) FormattedPrice() string {
	return fmt.Sprintf("%.2f$", p.Price)
}

// ShortDescription returns at most the first n characters of the description
// followed by "...". The ellipsis is always appended; n <= 0 disables the cut.
func (p Product) ShortDescription(n int) string {
	if n <= 0 {
		return p.Description
	}
	runes := []rune(p.Description)
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes) + "..."
}

// Stars renders the rating as five star glyphs, rounded to the nearest whole star
func (r Rating) Stars() string {
	full := int(r.Rate + 0.5)
	if full < 0 {
		full = 0
	}
	if full > 5 {
		full = 5
	}
	return strings.Repeat("★", full) + strings.Repeat("☆", 5-full)
}

// WithAll returns the category list presented to the user: "All" followed by
// the source categories in source order. No de-duplication is performed.
func WithAll(categories []string) []string {
	out := make([]string, 0, len(categories)+1)
	out = append(out, CategoryAll)
	return append(out, categories...)
}
