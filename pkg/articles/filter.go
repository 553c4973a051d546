// Package articles derives ordered article views from the store for a given set of
// filter criteria, plus the small helpers used to present them.
package articles

import (
	"sort"
	"strings"

	"github.com/umputun/gamedesk/pkg/domain"
)

// Filter returns articles matching all active criteria, ordered according to the tab.
// The input is never mutated and the result is never nil.
func Filter(store []domain.Article, c domain.FilterCriteria) []domain.Article {
	category := strings.ToLower(strings.TrimSpace(c.Category))
	query := strings.ToLower(c.Query)
	if strings.TrimSpace(query) == "" {
		query = ""
	}
	tags := make(map[string]bool, len(c.Tags))
	for _, t := range c.Tags {
		tags[strings.ToLower(t)] = true
	}

	res := make([]domain.Article, 0, len(store))
	for _, a := range store {
		if !matchCategory(a, category) || !matchQuery(a, query) || !matchTags(a, tags) {
			continue
		}
		res = append(res, a)
	}

	switch domain.ParseTab(string(c.Tab)) {
	case domain.TabTrending:
		sort.SliceStable(res, func(i, j int) bool { return res[i].Views > res[j].Views })
	case domain.TabFeatured:
		featured := res[:0]
		for _, a := range res {
			if isFeatured(a) {
				featured = append(featured, a)
			}
		}
		res = featured
	}
	return res
}

func matchCategory(a domain.Article, category string) bool {
	if category == "" || category == domain.CategoryAll {
		return true
	}
	return strings.ToLower(a.Category) == category
}

// matchQuery expects the query already lower-cased, surrounding spaces are part of it
func matchQuery(a domain.Article, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(a.Title), query) ||
		strings.Contains(strings.ToLower(a.Excerpt), query) ||
		strings.Contains(strings.ToLower(a.Author), query)
}

func matchTags(a domain.Article, tags map[string]bool) bool {
	if len(tags) == 0 {
		return true
	}
	for _, t := range a.Tags {
		if tags[strings.ToLower(t)] {
			return true
		}
	}
	return false
}

// isFeatured keeps premium articles plus the placeholder id-length rule carried over
// from the demo data, as there is no real featured flag yet.
func isFeatured(a domain.Article) bool {
	return a.IsPremium || len(a.ID)%5 == 0
}
