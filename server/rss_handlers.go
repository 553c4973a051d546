package server

import (
	"log"
	"net/http"

	"github.com/umputun/gamedesk/pkg/articles"
	"github.com/umputun/gamedesk/pkg/feed"
	"github.com/umputun/gamedesk/pkg/view"
)

const defaultRSSLimit = 50

// rssHandler serves an RSS feed of the filtered view, same query params as the news page
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	ctl := view.FromValues(r.URL.Query())
	criteria := ctl.Criteria()

	items := articles.Filter(s.articles.All(), criteria)
	if len(items) > defaultRSSLimit {
		items = items[:defaultRSSLimit]
	}

	generator := feed.NewGenerator(s.config.GetBaseURL())
	rss, err := generator.GenerateRSS(items, criteria)
	if err != nil {
		log.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		log.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}
