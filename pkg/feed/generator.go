package feed

import (
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/umputun/gamedesk/pkg/articles"
	"github.com/umputun/gamedesk/pkg/domain"
	"github.com/umputun/gamedesk/pkg/view"
)

// Generator creates RSS feeds from articles
type Generator struct {
	baseURL string
	now     func() time.Time
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL string) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
}

// GenerateRSS creates an RSS 2.0 feed from the filtered articles
func (g *Generator) GenerateRSS(list []domain.Article, c domain.FilterCriteria) (string, error) {
	// convert articles to RSS items
	rssItems := make([]*RSSItem, 0, len(list))
	for _, a := range list {
		rssItems = append(rssItems, g.convertToRSSItem(a))
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         g.title(c),
			Link:          g.baseURL + "/news",
			Description:   "Latest gaming news, esports coverage, guides and community stories",
			AtomLink:      &AtomLink{Href: g.selfLink(c), Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: g.now().Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}

	// add XML declaration
	return xml.Header + string(output), nil
}

// title describes the filtered view, e.g. "GameDesk - Guides - Trending Now"
func (g *Generator) title(c domain.FilterCriteria) string {
	parts := []string{"GameDesk"}
	if c.Category != "" && c.Category != domain.CategoryAll {
		parts = append(parts, domain.CategoryLabel(c.Category))
	}
	if c.Tab != "" && c.Tab != domain.TabLatest {
		parts = append(parts, c.Tab.Heading())
	}
	if q := strings.TrimSpace(c.Query); q != "" {
		parts = append(parts, fmt.Sprintf("%q", q))
	}
	for _, t := range c.Tags {
		parts = append(parts, "#"+t)
	}
	return strings.Join(parts, " - ")
}

// selfLink points back to this feed with the same query params as the news page
func (g *Generator) selfLink(c domain.FilterCriteria) string {
	return g.baseURL + view.FromCriteria(c).URL("/rss")
}

// convertToRSSItem converts an article to an RSS item
func (g *Generator) convertToRSSItem(a domain.Article) *RSSItem {
	categories := make([]string, 0, len(a.Tags)+1)
	if a.Category != "" {
		categories = append(categories, a.Category)
	}
	categories = append(categories, a.Tags...)

	desc := a.Excerpt
	if a.IsPremium {
		desc = "[Premium] " + desc
	}

	item := &RSSItem{
		Title:       a.Title,
		Link:        g.baseURL + "/news/article/" + url.PathEscape(a.ID),
		GUID:        a.ID,
		Description: desc,
		Author:      a.Author,
		Categories:  categories,
	}
	if ts, ok := articles.ParseDate(a.PublishedAt()); ok {
		item.PubDate = ts.Format(time.RFC1123Z)
	}
	if a.ImageURL != "" {
		item.Enclosure = &Enclosure{URL: a.ImageURL, Type: imageType(a.ImageURL)}
	}
	return item
}

// imageType guesses the enclosure mime type from the file extension
func imageType(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return "image/jpeg"
	}
	switch p := strings.ToLower(u.Path); {
	case strings.HasSuffix(p, ".png"):
		return "image/png"
	case strings.HasSuffix(p, ".webp"):
		return "image/webp"
	case strings.HasSuffix(p, ".gif"):
		return "image/gif"
	default:
		return "image/jpeg"
	}
}
