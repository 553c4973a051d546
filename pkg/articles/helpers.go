package articles

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/umputun/gamedesk/pkg/content"
	"github.com/umputun/gamedesk/pkg/domain"
)

const (
	wordsPerMinute     = 200
	defaultReadingTime = 3 // minutes, used when an article has no content

	// FeaturedCount is the number of leading store articles shown in the highlight section
	FeaturedCount = 5
	// TrendingCount is the number of articles picked for the trending sidebar
	TrendingCount = 4
	// RelatedCount is the number of related articles on the detail page
	RelatedCount = 3
)

var textSanitizer = content.NewSanitizer()

// date layouts accepted for article timestamps, tried in order
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
	"January 2, 2006",
	"Jan 2, 2006",
}

// ReadingTime estimates minutes to read the content, 3 when there is no content
func ReadingTime(body string) int {
	if body == "" {
		return defaultReadingTime
	}
	if content.IsHTML(body) {
		body = textSanitizer.Text(body)
	}
	words := len(strings.Fields(body))
	return max(1, (words+wordsPerMinute-1)/wordsPerMinute)
}

// FormatDate renders a timestamp as "Jan 2, 2006". Unparseable input renders now() instead.
func FormatDate(ts string, now func() time.Time) string {
	return parseDate(ts, now).Format("Jan 2, 2006")
}

// FormatLongDate renders a timestamp as "January 2, 2006", with the same fallback as FormatDate
func FormatLongDate(ts string, now func() time.Time) string {
	return parseDate(ts, now).Format("January 2, 2006")
}

func parseDate(ts string, now func() time.Time) time.Time {
	if t, ok := ParseDate(ts); ok {
		return t
	}
	if now == nil {
		now = time.Now
	}
	return now()
}

// ParseDate tries all accepted timestamp layouts, ok is false when none matches
func ParseDate(ts string) (time.Time, bool) {
	ts = strings.TrimSpace(ts)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Page is one page of a filtered view
type Page struct {
	Articles []domain.Article
	Number   int
	Total    int
	HasPrev  bool
	HasNext  bool
}

// Paginate cuts a page out of the view. Page numbers are clamped to the valid range
// and an empty view still has a single (empty) page.
func Paginate(view []domain.Article, page, perPage int) Page {
	if perPage <= 0 {
		perPage = len(view)
		if perPage == 0 {
			perPage = 1
		}
	}
	total := max(1, (len(view)+perPage-1)/perPage)
	page = min(max(page, 1), total)

	start := (page - 1) * perPage
	end := min(start+perPage, len(view))
	return Page{
		Articles: view[start:end],
		Number:   page,
		Total:    total,
		HasPrev:  page > 1,
		HasNext:  page < total,
	}
}

// Highlights returns the featured articles (first FeaturedCount of the store) and the
// trending picks, selected from the rest by the given random source.
func Highlights(store []domain.Article, rnd *rand.Rand) (featured, trending []domain.Article) {
	n := min(FeaturedCount, len(store))
	featured = append([]domain.Article(nil), store[:n]...)
	trending = pick(store[n:], TrendingCount, rnd)
	return featured, trending
}

// Related returns up to n other articles from the same category, picked by the random source
func Related(store []domain.Article, article domain.Article, n int, rnd *rand.Rand) []domain.Article {
	candidates := make([]domain.Article, 0, len(store))
	for _, a := range store {
		if a.ID != article.ID && a.Category == article.Category {
			candidates = append(candidates, a)
		}
	}
	return pick(candidates, n, rnd)
}

// pick shuffles a copy of the source and returns up to n elements.
// A nil random source keeps the source order.
func pick(src []domain.Article, n int, rnd *rand.Rand) []domain.Article {
	res := append([]domain.Article(nil), src...)
	if rnd != nil {
		rnd.Shuffle(len(res), func(i, j int) { res[i], res[j] = res[j], res[i] })
	}
	if n = max(n, 0); len(res) > n {
		res = res[:n]
	}
	return res
}
