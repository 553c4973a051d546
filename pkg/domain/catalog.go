package domain

import "strings"

// Category describes a selectable article category
type Category struct {
	ID    string
	Label string
}

// Tag describes a selectable tag
type Tag struct {
	ID    string
	Label string
}

// Categories is the fixed list of site categories, "all" first
var Categories = []Category{
	{ID: CategoryAll, Label: "All"},
	{ID: "tournaments", Label: "Tournaments"},
	{ID: "esports", Label: "E-Sports"},
	{ID: "guides", Label: "Guides"},
	{ID: "updates", Label: "Updates"},
	{ID: "interviews", Label: "Interviews"},
	{ID: "community", Label: "Community"},
	{ID: "reviews", Label: "Reviews"},
}

// PopularTags is the fixed list of tags offered in the sidebar
var PopularTags = []Tag{
	{ID: "tournaments", Label: "Tournaments"},
	{ID: "esports", Label: "E-Sports"},
	{ID: "strategy", Label: "Strategy"},
	{ID: "news", Label: "News"},
	{ID: "updates", Label: "Updates"},
	{ID: "community", Label: "Community"},
	{ID: "guides", Label: "Guides"},
}

// CategoryLabel returns the display label for a category id, the id itself if unknown
func CategoryLabel(id string) string {
	for _, c := range Categories {
		if strings.EqualFold(c.ID, id) {
			return c.Label
		}
	}
	return id
}

// TagLabel returns the display label for a tag id, the id itself if unknown
func TagLabel(id string) string {
	for _, t := range PopularTags {
		if strings.EqualFold(t.ID, id) {
			return t.Label
		}
	}
	return id
}
