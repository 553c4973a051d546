package articles

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/gamedesk/pkg/domain"
)

func testStore() []domain.Article {
	return []domain.Article{
		{ID: "a1", Title: "Major Finals Recap", Excerpt: "Grand finals in Berlin", Author: "Alex Chen",
			Category: "Tournaments", Tags: []string{"Tournaments", "Esports"}, Views: 10},
		{ID: "b1", Title: "Support Guide", Excerpt: "How to ward like a pro", Author: "Maria Lopez",
			Category: "Guides", Tags: []string{"Strategy", "Guides"}, Views: 50},
		{ID: "c1", Title: "Patch 7.35 Notes", Excerpt: "Balance changes explained", Author: "Sam Berlin",
			Category: "Updates", Tags: []string{"updates", "news"}, Views: 50, IsPremium: true},
		{ID: "d1", Title: "Community Spotlight", Excerpt: "Fan art of the month", Author: "Jo Park",
			Category: "Community"},
		{ID: "abcde", Title: "Qualifier Bracket", Excerpt: "Open qualifiers announced", Author: "Alex Chen",
			Category: "tournaments", Tags: []string{"tournaments"}, Views: 30},
	}
}

func ids(articles []domain.Article) []string {
	res := make([]string, 0, len(articles))
	for _, a := range articles {
		res = append(res, a.ID)
	}
	return res
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		criteria domain.FilterCriteria
		want     []string
	}{
		{name: "default criteria is identity", criteria: domain.DefaultCriteria(),
			want: []string{"a1", "b1", "c1", "d1", "abcde"}},
		{name: "empty criteria is identity", criteria: domain.FilterCriteria{},
			want: []string{"a1", "b1", "c1", "d1", "abcde"}},
		{name: "category case-insensitive", criteria: domain.FilterCriteria{Category: "tournaments", Tab: domain.TabLatest},
			want: []string{"a1", "abcde"}},
		{name: "category upper-case criteria", criteria: domain.FilterCriteria{Category: "GUIDES"},
			want: []string{"b1"}},
		{name: "unknown category", criteria: domain.FilterCriteria{Category: "reviews"}, want: []string{}},
		{name: "query matches title", criteria: domain.FilterCriteria{Category: "all", Query: "patch"},
			want: []string{"c1"}},
		{name: "query matches excerpt and author", criteria: domain.FilterCriteria{Query: "BERLIN"},
			want: []string{"a1", "c1"}},
		{name: "leading space is part of the query", criteria: domain.FilterCriteria{Query: " berlin"},
			want: []string{"a1", "c1"}},
		{name: "trailing space is part of the query", criteria: domain.FilterCriteria{Query: "finals "},
			want: []string{"a1"}},
		{name: "trailing space after last word", criteria: domain.FilterCriteria{Query: "berlin "},
			want: []string{}},
		{name: "surrounding spaces not in any field", criteria: domain.FilterCriteria{Query: " patch "},
			want: []string{}},
		{name: "blank query ignored", criteria: domain.FilterCriteria{Query: "   "},
			want: []string{"a1", "b1", "c1", "d1", "abcde"}},
		{name: "tags any-of", criteria: domain.FilterCriteria{Tags: []string{"strategy", "news"}},
			want: []string{"b1", "c1"}},
		{name: "tags case-insensitive both sides", criteria: domain.FilterCriteria{Tags: []string{"ESPORTS"}},
			want: []string{"a1"}},
		{name: "article without tags never matches tag filter", criteria: domain.FilterCriteria{Tags: []string{"community"}},
			want: []string{}},
		{name: "filters are conjunctive", criteria: domain.FilterCriteria{Category: "tournaments", Query: "alex",
			Tags: []string{"esports"}}, want: []string{"a1"}},
		{name: "trending sorts by views desc, stable", criteria: domain.FilterCriteria{Tab: domain.TabTrending},
			want: []string{"b1", "c1", "abcde", "a1", "d1"}},
		{name: "featured keeps premium and id-length rule", criteria: domain.FilterCriteria{Tab: domain.TabFeatured},
			want: []string{"c1", "abcde"}},
		{name: "featured after category filter", criteria: domain.FilterCriteria{Category: "updates", Tab: domain.TabFeatured},
			want: []string{"c1"}},
		{name: "unknown tab behaves as latest", criteria: domain.FilterCriteria{Tab: "popular"},
			want: []string{"a1", "b1", "c1", "d1", "abcde"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Filter(testStore(), tt.criteria)
			require.NotNil(t, res)
			assert.Equal(t, tt.want, ids(res))
		})
	}
}

func TestFilter_Scenarios(t *testing.T) {
	store := []domain.Article{
		{ID: "a1", Category: "Tournaments", Views: 10},
		{ID: "b1", Category: "Guides", Views: 50},
	}

	res := Filter(store, domain.FilterCriteria{Category: "all", Tab: domain.TabTrending})
	assert.Equal(t, []string{"b1", "a1"}, ids(res))

	res = Filter(store, domain.FilterCriteria{Category: "tournaments", Tab: domain.TabLatest})
	assert.Equal(t, []string{"a1"}, ids(res))
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	store := testStore()

	_ = Filter(store, domain.FilterCriteria{Tab: domain.TabTrending})
	_ = Filter(store, domain.FilterCriteria{Tab: domain.TabFeatured, Tags: []string{"guides"}})
	if diff := cmp.Diff(testStore(), store); diff != "" {
		t.Errorf("store changed (-want +got):\n%s", diff)
	}
}

func TestFilter_Deterministic(t *testing.T) {
	c := domain.FilterCriteria{Query: "a", Tab: domain.TabTrending}
	first := Filter(testStore(), c)
	for range 10 {
		assert.Equal(t, first, Filter(testStore(), c))
	}
}

func TestFilter_NoFalsePositives(t *testing.T) {
	criteria := []domain.FilterCriteria{
		{Category: "tournaments", Query: "qual"},
		{Query: "chen", Tags: []string{"tournaments"}},
		{Category: "updates", Tags: []string{"news"}, Tab: domain.TabFeatured},
	}
	for _, c := range criteria {
		for _, a := range Filter(testStore(), c) {
			if c.Category != "" && c.Category != domain.CategoryAll {
				assert.True(t, strings.EqualFold(a.Category, c.Category), "category of %s", a.ID)
			}
			q := strings.ToLower(c.Query)
			assert.True(t, strings.Contains(strings.ToLower(a.Title), q) ||
				strings.Contains(strings.ToLower(a.Excerpt), q) ||
				strings.Contains(strings.ToLower(a.Author), q), "query of %s", a.ID)
			if len(c.Tags) > 0 {
				found := false
				for _, tag := range c.Tags {
					found = found || a.HasTag(tag)
				}
				assert.True(t, found, "tags of %s", a.ID)
			}
		}
	}
}
