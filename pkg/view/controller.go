// Package view holds the per-page filter state of the article list and applies user
// intents to it. Every HTTP request carries the full state in its query, so a
// controller lives for exactly one request.
package view

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/umputun/gamedesk/pkg/articles"
	"github.com/umputun/gamedesk/pkg/domain"
)

// query parameter names
const (
	ParamCategory = "category"
	ParamQuery    = "q"
	ParamTag      = "tag"
	ParamTab      = "tab"
	ParamPage     = "page"
)

// Controller owns the filter criteria and the page cursor of one list view
type Controller struct {
	criteria domain.FilterCriteria
	page     int
}

// Result is the derived view for the current state
type Result struct {
	Criteria domain.FilterCriteria
	Page     articles.Page
	Total    int  // matching articles across all pages
	Empty    bool // valid view with no matches
}

// New makes a controller with default criteria on page 1
func New() *Controller {
	return &Controller{criteria: domain.DefaultCriteria(), page: 1}
}

// FromCriteria makes a controller on page 1 holding a copy of the criteria
func FromCriteria(c domain.FilterCriteria) *Controller {
	return &Controller{criteria: c.Clone(), page: 1}
}

// FromValues restores a controller from query values, invalid entries fall back to defaults
func FromValues(v url.Values) *Controller {
	c := New()
	if cat := strings.TrimSpace(v.Get(ParamCategory)); cat != "" {
		c.criteria.Category = strings.ToLower(cat)
	}
	c.criteria.Query = v.Get(ParamQuery)
	for _, t := range v[ParamTag] {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" && !c.criteria.HasTag(t) {
			c.criteria.Tags = append(c.criteria.Tags, t)
		}
	}
	c.criteria.Tab = domain.ParseTab(v.Get(ParamTab))
	if p, err := strconv.Atoi(v.Get(ParamPage)); err == nil && p > 1 {
		c.page = p
	}
	return c
}

// SetCategory selects a category, "all" removes the category filter
func (c *Controller) SetCategory(id string) {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" {
		id = domain.CategoryAll
	}
	c.criteria.Category = id
	c.page = 1
}

// SetQuery replaces the free-text query
func (c *Controller) SetQuery(text string) {
	c.criteria.Query = text
	c.page = 1
}

// ToggleTag adds the tag if not selected, removes it otherwise
func (c *Controller) ToggleTag(id string) {
	id = strings.ToLower(strings.TrimSpace(id))
	c.page = 1
	if id == "" {
		return
	}
	for i, t := range c.criteria.Tags {
		if t == id {
			tags := make([]string, 0, len(c.criteria.Tags)-1)
			tags = append(tags, c.criteria.Tags[:i]...)
			c.criteria.Tags = append(tags, c.criteria.Tags[i+1:]...)
			return
		}
	}
	c.criteria.Tags = append(append([]string(nil), c.criteria.Tags...), id)
}

// SetActiveTab switches the tab
func (c *Controller) SetActiveTab(tab domain.Tab) {
	c.criteria.Tab = domain.ParseTab(string(tab))
	c.page = 1
}

// Reset clears all filters
func (c *Controller) Reset() {
	c.criteria = domain.DefaultCriteria()
	c.page = 1
}

// SetPage moves the page cursor, values below 1 mean the first page
func (c *Controller) SetPage(n int) {
	c.page = max(n, 1)
}

// Criteria returns a copy of the current criteria
func (c *Controller) Criteria() domain.FilterCriteria {
	return c.criteria.Clone()
}

// Page returns the page cursor
func (c *Controller) Page() int {
	return c.page
}

// With returns a modified copy, the receiver is not changed
func (c *Controller) With(intent func(*Controller)) *Controller {
	res := &Controller{criteria: c.criteria.Clone(), page: c.page}
	intent(res)
	return res
}

// Values encodes the state as query values, defaults are omitted
func (c *Controller) Values() url.Values {
	v := url.Values{}
	if c.criteria.Category != "" && c.criteria.Category != domain.CategoryAll {
		v.Set(ParamCategory, c.criteria.Category)
	}
	if strings.TrimSpace(c.criteria.Query) != "" {
		v.Set(ParamQuery, c.criteria.Query)
	}
	for _, t := range c.criteria.Tags {
		v.Add(ParamTag, t)
	}
	if c.criteria.Tab != "" && c.criteria.Tab != domain.TabLatest {
		v.Set(ParamTab, string(c.criteria.Tab))
	}
	if c.page > 1 {
		v.Set(ParamPage, strconv.Itoa(c.page))
	}
	return v
}

// URL builds a link to base carrying the state
func (c *Controller) URL(base string) string {
	if q := c.Values().Encode(); q != "" {
		return base + "?" + q
	}
	return base
}

// Apply filters the articles and cuts the current page. A cursor beyond the last
// page is clamped and stored back.
func (c *Controller) Apply(store []domain.Article, perPage int) Result {
	filtered := articles.Filter(store, c.criteria)
	page := articles.Paginate(filtered, c.page, perPage)
	c.page = page.Number
	return Result{
		Criteria: c.Criteria(),
		Page:     page,
		Total:    len(filtered),
		Empty:    len(filtered) == 0,
	}
}
