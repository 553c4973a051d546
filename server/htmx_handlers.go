package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/umputun/gamedesk/pkg/articles"
	"github.com/umputun/gamedesk/pkg/domain"
	"github.com/umputun/gamedesk/pkg/newsletter"
	"github.com/umputun/gamedesk/pkg/share"
	"github.com/umputun/gamedesk/pkg/store"
	"github.com/umputun/gamedesk/pkg/view"
)

const (
	// paths of the list view, full page and HTMX partial
	newsPath    = "/news"
	partialPath = "/news/articles"

	// template names
	templateFeed          = "feed.html"
	templateBookmark      = "bookmark-button.html"
	templateNewsletterMsg = "newsletter-message.html"

	// toast messages
	toastBookmarkAdded   = "Added to bookmarks"
	toastBookmarkRemoved = "Removed from bookmarks"
	toastLinkCopied      = "Link copied to clipboard"
)

// pageMeta is shared by all full pages
type pageMeta struct {
	Title      string
	Theme      domain.Theme
	NextTheme  domain.Theme
	Version    string
	ActivePage string
}

// link is a navigation intent, Href for the full page and Partial for HTMX swaps
type link struct {
	Label   string
	Href    string
	Partial string
	Active  bool
}

// pageLink is one entry of the pagination bar, Gap marks an ellipsis
type pageLink struct {
	link
	Number int
	Gap    bool
}

// feedData is the article list region, rendered inline on the page and as the HTMX partial
type feedData struct {
	Heading  string
	Tabs     []link
	Articles []domain.Article
	Total    int
	Empty    bool
	Loading  bool   // skeleton placeholder, the list is loaded by HTMX
	LoadURL  string // partial URL used when Loading
	ClearURL link
	Filtered bool   // any filter or non-default tab is active, ClearURL is shown
	Filters  []link // active tag filters, each link removes its tag
	Prev     *link
	Next     *link
	Pages    []pageLink
	Sidebar  sidebarData
}

// sidebarData holds regions that depend on the filter state outside of the feed
type sidebarData struct {
	Categories []link
	Tags       []link
	Query      string
	Category   string
	Tab        string
	TagIDs     []string
	OOB        bool // render as out-of-band swaps next to the feed partial
}

type newsPage struct {
	Meta           pageMeta
	Feed           feedData
	Featured       []domain.Article
	Trending       []domain.Article
	ShowHighlights bool
	HighlightTitle string
	RSSURL         string
}

type articlePage struct {
	Meta        pageMeta
	Article     domain.Article
	Body        template.HTML
	ReadingTime int
	Published   string
	Related     []domain.Article
	Share       []link
	Bookmark    bookmarkData
}

type bookmarkData struct {
	ID         string
	Bookmarked bool
	Toast      string
}

type newsletterMessage struct {
	Success bool
	Message string
}

// newsHandler displays the main news page
func (s *Server) newsHandler(w http.ResponseWriter, r *http.Request) {
	ctl := view.FromValues(r.URL.Query())
	all := s.articles.All()
	featured, trending := articles.Highlights(all, s.random())
	criteria := ctl.Criteria()

	data := newsPage{
		Meta:           s.meta("News", "news"),
		Featured:       featured,
		Trending:       trending,
		ShowHighlights: strings.TrimSpace(criteria.Query) == "" && len(criteria.Tags) == 0 && ctl.Page() == 1,
		HighlightTitle: "Featured Stories",
		RSSURL:         ctl.With(func(c *view.Controller) { c.SetPage(1) }).URL("/rss"),
	}
	if criteria.Category != domain.CategoryAll {
		data.HighlightTitle = domain.CategoryLabel(criteria.Category) + " News"
	}

	if s.config.GetLatency() > 0 {
		// the list is fetched by the partial, show the skeleton until it arrives
		data.Feed = s.feedFrame(ctl)
		data.Feed.Loading = true
		data.Feed.LoadURL = ctl.URL(partialPath)
	} else {
		list, err := store.StaticFetcher{Store: s.articles}.Fetch(r.Context())
		if err != nil {
			s.respondWithError(w, http.StatusInternalServerError, "Failed to load articles", err)
			return
		}
		data.Feed = s.buildFeed(ctl, list)
	}

	if err := s.renderPage(w, "news.html", data); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render page", err)
	}
}

// articlesHandler renders the feed partial for HTMX requests. It waits on the fetcher bound
// to the request, so a navigated-away view never receives a late list.
func (s *Server) articlesHandler(w http.ResponseWriter, r *http.Request) {
	ctl := view.FromValues(r.URL.Query())

	fetcher := store.DelayedFetcher{Fetcher: store.StaticFetcher{Store: s.articles}, Delay: s.config.GetLatency()}
	list, err := fetcher.Fetch(r.Context())
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			log.Printf("[DEBUG] article fetch abandoned: %v", err)
			return
		}
		s.respondWithError(w, http.StatusInternalServerError, "Failed to load articles", err)
		return
	}

	feed := s.buildFeed(ctl, list)
	if r.Header.Get("HX-Request") == "true" {
		feed.Sidebar.OOB = true
		w.Header().Set("HX-Push-Url", ctl.URL(newsPath))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, templateFeed, feed); err != nil {
		log.Printf("[WARN] failed to render feed: %v", err)
	}
}

// articleHandler displays a single article with related articles
func (s *Server) articleHandler(w http.ResponseWriter, r *http.Request) {
	article, ok := s.lookupArticle(w, r)
	if !ok {
		return
	}

	var body template.HTML
	if article.Content != "" {
		body = template.HTML(s.sanitizer.HTML(article.Content)) //nolint:gosec // sanitized by bluemonday
	}

	data := articlePage{
		Meta:        s.meta(article.Title, "article"),
		Article:     article,
		Body:        body,
		ReadingTime: articles.ReadingTime(article.Content),
		Published:   articles.FormatLongDate(article.PublishedAt(), s.now),
		Related:     articles.Related(s.articles.All(), article, articles.RelatedCount, s.random()),
		Bookmark:    bookmarkData{ID: article.ID},
	}
	for _, p := range share.Platforms {
		data.Share = append(data.Share, link{Label: p.Label(), Href: articleURL(article.ID) + "/share/" + string(p)})
	}

	if err := s.renderPage(w, "article.html", data); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render page", err)
	}
}

// bookmarkHandler flips the bookmark button. The button posts its current state, nothing is stored.
func (s *Server) bookmarkHandler(w http.ResponseWriter, r *http.Request) {
	article, ok := s.lookupArticle(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	bookmarked, _ := strconv.ParseBool(r.FormValue("bookmarked"))
	data := bookmarkData{ID: article.ID, Bookmarked: !bookmarked, Toast: toastBookmarkAdded}
	if bookmarked {
		data.Toast = toastBookmarkRemoved
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, templateBookmark, data); err != nil {
		log.Printf("[WARN] failed to render bookmark button: %v", err)
	}
}

// shareHandler redirects to the platform share page, copy returns the article link as text
func (s *Server) shareHandler(w http.ResponseWriter, r *http.Request) {
	article, ok := s.lookupArticle(w, r)
	if !ok {
		return
	}

	platform := share.Platform(strings.ToLower(r.PathValue("platform")))
	pageURL := strings.TrimRight(s.config.GetBaseURL(), "/") + articleURL(article.ID)
	target, err := share.URL(platform, pageURL, article.Title)
	if err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Unknown share platform", err)
		return
	}

	if platform == share.Copy {
		if r.Header.Get("HX-Request") == "true" {
			w.Header().Set("HX-Trigger", fmt.Sprintf(`{"showToast":%q}`, toastLinkCopied))
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := w.Write([]byte(target)); err != nil {
			log.Printf("[WARN] failed to write share link: %v", err)
		}
		return
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// themeHandler cycles the theme, or sets it when the form has a theme value
func (s *Server) themeHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	if val := r.FormValue("theme"); val != "" {
		th, err := domain.ParseTheme(val)
		if err != nil {
			s.respondWithError(w, http.StatusBadRequest, "Invalid theme", err)
			return
		}
		if err := s.theme.Set(r.Context(), th); err != nil {
			s.respondWithError(w, http.StatusInternalServerError, "Failed to save theme", err)
			return
		}
	} else if _, err := s.theme.Cycle(r.Context()); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to save theme", err)
		return
	}

	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Refresh", "true")
		w.WriteHeader(http.StatusOK)
		return
	}
	back := newsPath
	if ref, err := url.Parse(r.Referer()); err == nil && ref.Path != "" && ref.Host == r.Host {
		back = ref.RequestURI()
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}

// newsletterHandler validates the sign-up form and renders the result message
func (s *Server) newsletterHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	msg := newsletterMessage{Success: true, Message: "Thank you for subscribing! You've been added to our newsletter list."}
	if _, err := newsletter.Validate(r.FormValue("email")); err != nil {
		msg = newsletterMessage{Message: err.Error()}
	} else {
		log.Printf("[DEBUG] newsletter sign-up accepted")
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, templateNewsletterMsg, msg); err != nil {
		log.Printf("[WARN] failed to render newsletter message: %v", err)
	}
}

// lookupArticle loads the article named by the id path value, rendering the not-found page on a miss
func (s *Server) lookupArticle(w http.ResponseWriter, r *http.Request) (domain.Article, bool) {
	article, err := s.articles.Get(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.renderNotFound(w, r)
			return domain.Article{}, false
		}
		s.respondWithError(w, http.StatusInternalServerError, "Failed to load article", err)
		return domain.Article{}, false
	}
	return article, true
}

// buildFeed applies the controller to the list and prepares all intent links
func (s *Server) buildFeed(ctl *view.Controller, list []domain.Article) feedData {
	res := ctl.Apply(list, s.config.GetPageSize())
	feed := s.feedFrame(ctl)
	feed.Articles = res.Page.Articles
	feed.Total = res.Total
	feed.Empty = res.Empty

	if res.Page.HasPrev {
		prev := intentLink(ctl, "Previous", false, func(c *view.Controller) { c.SetPage(res.Page.Number - 1) })
		feed.Prev = &prev
	}
	if res.Page.HasNext {
		next := intentLink(ctl, "Next", false, func(c *view.Controller) { c.SetPage(res.Page.Number + 1) })
		feed.Next = &next
	}
	if res.Page.Total > 1 {
		for _, n := range pageNumbers(res.Page.Number, res.Page.Total) {
			if n == 0 {
				feed.Pages = append(feed.Pages, pageLink{Gap: true})
				continue
			}
			feed.Pages = append(feed.Pages, pageLink{
				link:   intentLink(ctl, strconv.Itoa(n), n == res.Page.Number, func(c *view.Controller) { c.SetPage(n) }),
				Number: n,
			})
		}
	}
	return feed
}

// feedFrame prepares the parts of the feed region that do not depend on the fetched list
func (s *Server) feedFrame(ctl *view.Controller) feedData {
	crit := ctl.Criteria()
	feed := feedData{
		Heading:  crit.Tab.Heading(),
		ClearURL: intentLink(ctl, "Clear all filters", false, func(c *view.Controller) { c.Reset() }),
		Filtered: !crit.IsDefault(),
		Sidebar: sidebarData{
			Query:    crit.Query,
			Category: crit.Category,
			Tab:      string(crit.Tab),
			TagIDs:   crit.Tags,
		},
	}
	for _, tab := range domain.Tabs {
		feed.Tabs = append(feed.Tabs, intentLink(ctl, tabLabel(tab), crit.Tab == tab,
			func(c *view.Controller) { c.SetActiveTab(tab) }))
	}
	for _, t := range crit.Tags {
		feed.Filters = append(feed.Filters, intentLink(ctl, domain.TagLabel(t), true,
			func(c *view.Controller) { c.ToggleTag(t) }))
	}
	for _, cat := range domain.Categories {
		feed.Sidebar.Categories = append(feed.Sidebar.Categories, intentLink(ctl, cat.Label, crit.Category == cat.ID,
			func(c *view.Controller) { c.SetCategory(cat.ID) }))
	}
	for _, tag := range domain.PopularTags {
		feed.Sidebar.Tags = append(feed.Sidebar.Tags, intentLink(ctl, tag.Label, crit.HasTag(tag.ID),
			func(c *view.Controller) { c.ToggleTag(tag.ID) }))
	}
	return feed
}

// intentLink precomputes the state after an intent as page and partial URLs
func intentLink(ctl *view.Controller, label string, active bool, intent func(*view.Controller)) link {
	next := ctl.With(intent)
	return link{Label: label, Href: next.URL(newsPath), Partial: next.URL(partialPath), Active: active}
}

func tabLabel(t domain.Tab) string {
	switch t {
	case domain.TabTrending:
		return "Trending"
	case domain.TabFeatured:
		return "Featured"
	default:
		return "Latest"
	}
}

// pageNumbers returns the page numbers to show around the current one, 0 marks a gap
func pageNumbers(current, total int) []int {
	const window = 1
	res := make([]int, 0, 7)
	last := 0
	for n := 1; n <= total; n++ {
		if n != 1 && n != total && (n < current-window || n > current+window) {
			continue
		}
		if last != 0 && n-last > 1 {
			res = append(res, 0)
		}
		res = append(res, n)
		last = n
	}
	return res
}

// meta fills the data common to all pages
func (s *Server) meta(title, active string) pageMeta {
	th := s.theme.Current()
	return pageMeta{Title: title, Theme: th, NextTheme: th.Next(), Version: s.version, ActivePage: active}
}

// renderPage renders a pre-parsed page template
func (s *Server) renderPage(w http.ResponseWriter, templateName string, data any) error {
	tmpl, ok := s.pageTemplates[templateName]
	if !ok {
		return fmt.Errorf("template %s not found", templateName)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return tmpl.ExecuteTemplate(w, templateName, data)
}

// renderNotFound renders the 404 page
func (s *Server) renderNotFound(w http.ResponseWriter, r *http.Request) {
	log.Printf("[DEBUG] not found: %s %s", r.Method, r.URL.Path)
	tmpl, ok := s.pageTemplates["not-found.html"]
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	data := struct{ Meta pageMeta }{Meta: s.meta("Page Not Found", "")}
	if err := tmpl.ExecuteTemplate(w, "not-found.html", data); err != nil {
		log.Printf("[WARN] failed to render not-found page: %v", err)
	}
}
