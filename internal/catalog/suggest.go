package catalog

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/nador/internal/domain"
)

// Suggest returns up to limit product titles that loosely match query, best
// first. It backs the "did you mean" hint shown when the exact search finds
// nothing; it never affects the filtered view itself.
func Suggest(query string, products []domain.Product, limit int) []string {
	query = strings.TrimSpace(query)
	if query == "" || limit <= 0 || len(products) == 0 {
		return nil
	}

	titles := make([]string, 0, len(products))
	seen := make(map[string]bool, len(products))
	for _, p := range products {
		if p.Title == "" || seen[p.Title] {
			continue
		}
		seen[p.Title] = true
		titles = append(titles, p.Title)
	}

	ranks := fuzzy.RankFindNormalizedFold(query, titles)
	sort.Stable(ranks)

	suggestions := make([]string, 0, min(limit, len(ranks)))
	for _, r := range ranks {
		if len(suggestions) == limit {
			break
		}
		suggestions = append(suggestions, r.Target)
	}
	return suggestions
}
