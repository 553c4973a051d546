package feed

import (
	"encoding/xml"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/gamedesk/pkg/domain"
)

func TestGenerator_GenerateRSS(t *testing.T) {
	generator := NewGenerator("https://example.com/")
	generator.now = func() time.Time { return time.Date(2024, 3, 20, 8, 0, 0, 0, time.UTC) }

	list := []domain.Article{
		{
			ID:        "1",
			Title:     "Championship Finals & More",
			Excerpt:   "Top teams battle it out",
			Author:    "Alex Chen",
			Category:  "Tournaments",
			Tags:      []string{"esports", "tournaments"},
			ImageURL:  "https://img.example.com/finals.png",
			Date:      "2024-03-15",
			IsPremium: true,
		},
		{
			ID:       "art 2",
			Title:    "Patch Notes",
			Excerpt:  "Balance changes",
			Author:   "Sam Lee",
			Category: "Updates",
			Date:     "broken",
		},
	}

	t.Run("default view", func(t *testing.T) {
		rss, err := generator.GenerateRSS(list, domain.DefaultCriteria())
		require.NoError(t, err)

		assert.Contains(t, rss, `<?xml version="1.0" encoding="UTF-8"?>`)
		assert.Contains(t, rss, `<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">`)
		assert.Contains(t, rss, `<title>GameDesk</title>`)
		assert.Contains(t, rss, `<link>https://example.com/news</link>`)
		assert.Contains(t, rss, `href="https://example.com/rss" rel="self"`)
		assert.Contains(t, rss, `<lastBuildDate>Wed, 20 Mar 2024 08:00:00 +0000</lastBuildDate>`)

		assert.Contains(t, rss, `<title>Championship Finals &amp; More</title>`)
		assert.Contains(t, rss, `<link>https://example.com/news/article/1</link>`)
		assert.Contains(t, rss, `<guid>1</guid>`)
		assert.Contains(t, rss, `<description>[Premium] Top teams battle it out</description>`)
		assert.Contains(t, rss, `<author>Alex Chen</author>`)
		assert.Contains(t, rss, `<pubDate>Fri, 15 Mar 2024 00:00:00 +0000</pubDate>`)
		assert.Contains(t, rss, `<category>Tournaments</category>`)
		assert.Contains(t, rss, `<category>esports</category>`)
		assert.Contains(t, rss, `<enclosure url="https://img.example.com/finals.png" type="image/png"></enclosure>`)

		assert.Contains(t, rss, `<link>https://example.com/news/article/art%202</link>`)
	})

	t.Run("round trip keeps items", func(t *testing.T) {
		rss, err := generator.GenerateRSS(list, domain.DefaultCriteria())
		require.NoError(t, err)

		var parsed RSS
		require.NoError(t, xml.Unmarshal([]byte(rss), &parsed))
		require.Len(t, parsed.Channel.Items, 2)
		assert.Equal(t, "Patch Notes", parsed.Channel.Items[1].Title)
		assert.Empty(t, parsed.Channel.Items[1].PubDate, "unparseable date is omitted")
		assert.Nil(t, parsed.Channel.Items[1].Enclosure)
	})

	t.Run("filtered view", func(t *testing.T) {
		c := domain.FilterCriteria{Category: "guides", Query: " boss ", Tags: []string{"strategy"}, Tab: domain.TabTrending}
		rss, err := generator.GenerateRSS(nil, c)
		require.NoError(t, err)
		assert.Contains(t, rss, `<title>GameDesk - Guides - Trending Now - &#34;boss&#34; - #strategy</title>`)
		assert.Contains(t, rss, `href="https://example.com/rss?category=guides&amp;q=+boss+&amp;tab=trending&amp;tag=strategy"`)
		assert.NotContains(t, rss, "<item>")
	})
}

func TestImageType(t *testing.T) {
	tests := map[string]string{
		"https://x.com/a.PNG":       "image/png",
		"https://x.com/a.webp?w=10": "image/webp",
		"https://x.com/a.gif":       "image/gif",
		"https://x.com/a":           "image/jpeg",
		"://bad":                    "image/jpeg",
	}
	for in, want := range tests {
		assert.Equal(t, want, imageType(in), in)
	}
}
