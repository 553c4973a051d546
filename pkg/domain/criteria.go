package domain

import "strings"

// CategoryAll is the category sentinel meaning no category filter
const CategoryAll = "all"

// Tab is a named sort-and-subset mode of the article list
type Tab string

// enum of supported tabs
const (
	TabLatest   Tab = "latest"
	TabTrending Tab = "trending"
	TabFeatured Tab = "featured"
)

// Tabs lists all tabs in display order
var Tabs = []Tab{TabLatest, TabTrending, TabFeatured}

// ParseTab converts a string to Tab, unknown values map to TabLatest
func ParseTab(s string) Tab {
	switch Tab(strings.ToLower(strings.TrimSpace(s))) {
	case TabTrending:
		return TabTrending
	case TabFeatured:
		return TabFeatured
	default:
		return TabLatest
	}
}

// Heading returns the section heading shown above the feed for the tab
func (t Tab) Heading() string {
	switch t {
	case TabTrending:
		return "Trending Now"
	case TabFeatured:
		return "Editor's Picks"
	default:
		return "Latest Updates"
	}
}

// FilterCriteria is the set of active user-selected constraints used to derive a view
type FilterCriteria struct {
	Category string   `json:"category"`
	Query    string   `json:"query"`
	Tags     []string `json:"tags"`
	Tab      Tab      `json:"tab"`
}

// DefaultCriteria returns criteria matching the whole store in store order
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{Category: CategoryAll, Tab: TabLatest}
}

// IsDefault reports whether no filter is active and the tab is latest
func (c FilterCriteria) IsDefault() bool {
	return (c.Category == "" || c.Category == CategoryAll) && strings.TrimSpace(c.Query) == "" &&
		len(c.Tags) == 0 && (c.Tab == "" || c.Tab == TabLatest)
}

// HasTag checks if the tag is selected
func (c FilterCriteria) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == strings.ToLower(tag) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the criteria
func (c FilterCriteria) Clone() FilterCriteria {
	res := c
	if c.Tags != nil {
		res.Tags = append([]string(nil), c.Tags...)
	}
	return res
}
