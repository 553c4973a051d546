package server

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/gamedesk/pkg/domain"
	"github.com/umputun/gamedesk/pkg/feed"
)

func TestServer_rssHandler(t *testing.T) {
	srv := testServer(t, testConfig(), testStore(testArticles()), testTheme(domain.ThemeLight))

	t.Run("all articles", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/rss", http.NoBody)
		w := httptest.NewRecorder()
		srv.rssHandler(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/rss+xml; charset=utf-8", w.Header().Get("Content-Type"))

		var rss feed.RSS
		require.NoError(t, xml.Unmarshal(w.Body.Bytes(), &rss))
		assert.Equal(t, "GameDesk", rss.Channel.Title)
		assert.Contains(t, w.Body.String(), "<link>https://gamedesk.example.com/news</link>")
		require.Len(t, rss.Channel.Items, 4, "rss is not paginated")
		assert.Equal(t, "https://gamedesk.example.com/news/article/a1", rss.Channel.Items[0].Link)
		assert.Equal(t, "[Premium] Patch Notes Explained", rss.Channel.Items[1].Title)
	})

	t.Run("filtered", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/rss?category=esports&tag=tournaments", http.NoBody)
		w := httptest.NewRecorder()
		srv.rssHandler(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var rss feed.RSS
		require.NoError(t, xml.Unmarshal(w.Body.Bytes(), &rss))
		assert.Equal(t, "GameDesk - E-Sports - #tournaments", rss.Channel.Title)
		require.Len(t, rss.Channel.Items, 1)
		assert.Equal(t, "Major Finals Recap", rss.Channel.Items[0].Title)
	})

	t.Run("limit", func(t *testing.T) {
		list := make([]domain.Article, 0, defaultRSSLimit+10)
		for i := range defaultRSSLimit + 10 {
			list = append(list, domain.Article{ID: fmt.Sprintf("id-%d", i), Title: "t", Category: "news", Date: "2024-01-01"})
		}
		srv := testServer(t, testConfig(), testStore(list), testTheme(domain.ThemeLight))

		req := httptest.NewRequest("GET", "/rss", http.NoBody)
		w := httptest.NewRecorder()
		srv.rssHandler(w, req)

		var rss feed.RSS
		require.NoError(t, xml.Unmarshal(w.Body.Bytes(), &rss))
		assert.Len(t, rss.Channel.Items, defaultRSSLimit)
	})
}
