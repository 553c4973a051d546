package store

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/umputun/gamedesk/pkg/content"
	"github.com/umputun/gamedesk/pkg/domain"
)

//go:embed data/articles.yml
var defaultArticles []byte

const feedExcerptLen = 200

// Source supplies articles to the store
type Source interface {
	Load(ctx context.Context) ([]domain.Article, error)
}

// FileSource reads articles from a YAML or JSON file, picked by extension
type FileSource struct {
	Path string
}

// FeedSource imports articles from a local RSS or Atom file
type FeedSource struct {
	Path      string
	Sanitizer *content.Sanitizer
}

// EmbeddedSource returns the built-in seed dataset
type EmbeddedSource struct{}

// Load reads all sources concurrently and builds the store, articles keep source order
func Load(ctx context.Context, sources ...Source) (*Store, error) {
	results := make([][]domain.Article, len(sources))
	g, ctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			articles, err := src.Load(ctx)
			if err != nil {
				return err
			}
			results[i] = articles
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []domain.Article
	for _, r := range results {
		all = append(all, r...)
	}
	return New(all)
}

// Default makes a store from the embedded seed dataset
func Default() (*Store, error) {
	articles, err := EmbeddedSource{}.Load(context.Background())
	if err != nil {
		return nil, err
	}
	return New(articles)
}

// Load implements Source
func (EmbeddedSource) Load(_ context.Context) ([]domain.Article, error) {
	var articles []domain.Article
	if err := yaml.Unmarshal(defaultArticles, &articles); err != nil {
		return nil, fmt.Errorf("parse embedded articles: %w", err)
	}
	return articles, nil
}

// Load implements Source
func (f FileSource) Load(_ context.Context) ([]domain.Article, error) {
	data, err := os.ReadFile(f.Path) //nolint:gosec // path comes from config
	if err != nil {
		return nil, fmt.Errorf("read articles file: %w", err)
	}

	var articles []domain.Article
	switch strings.ToLower(filepath.Ext(f.Path)) {
	case ".json":
		err = json.Unmarshal(data, &articles)
	case ".yml", ".yaml":
		err = yaml.Unmarshal(data, &articles)
	default:
		return nil, fmt.Errorf("unsupported articles file %s", f.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("parse articles file %s: %w", f.Path, err)
	}
	return articles, nil
}

// Load implements Source
func (f FeedSource) Load(_ context.Context) ([]domain.Article, error) {
	fh, err := os.Open(f.Path) //nolint:gosec // path comes from config
	if err != nil {
		return nil, fmt.Errorf("open feed file: %w", err)
	}
	defer fh.Close()

	feed, err := gofeed.NewParser().Parse(fh)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", f.Path, err)
	}

	sanitizer := f.Sanitizer
	if sanitizer == nil {
		sanitizer = content.NewSanitizer()
	}

	articles := make([]domain.Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		articles = append(articles, feedArticle(feed, item, sanitizer))
	}
	return articles, nil
}

// feedArticle converts a parsed feed item to an article
func feedArticle(feed *gofeed.Feed, item *gofeed.Item, sanitizer *content.Sanitizer) domain.Article {
	a := domain.Article{
		ID:      item.GUID,
		Title:   strings.TrimSpace(item.Title),
		Content: item.Content,
		Excerpt: sanitizer.Excerpt(item.Description, feedExcerptLen),
	}

	if a.ID == "" {
		a.ID = item.Link
	}
	if a.ID == "" {
		// stable across restarts, article links keep working
		a.ID = uuid.NewSHA1(uuid.NameSpaceURL, []byte(feed.Title+"\n"+item.Title)).String()
	}
	if a.Excerpt == "" && item.Content != "" {
		a.Excerpt = sanitizer.Excerpt(item.Content, feedExcerptLen)
	}

	switch {
	case item.Author != nil && item.Author.Name != "":
		a.Author = item.Author.Name
	case len(item.Authors) > 0 && item.Authors[0].Name != "":
		a.Author = item.Authors[0].Name
	default:
		a.Author = feed.Title
	}

	if len(item.Categories) > 0 {
		a.Category = item.Categories[0]
		a.Tags = append([]string(nil), item.Categories...)
	}

	if item.Image != nil {
		a.ImageURL = item.Image.URL
	}
	for _, enc := range item.Enclosures {
		if a.ImageURL == "" && strings.HasPrefix(enc.Type, "image/") {
			a.ImageURL = enc.URL
		}
	}

	switch {
	case item.PublishedParsed != nil:
		a.Date = item.PublishedParsed.UTC().Format(time.RFC3339)
	case item.UpdatedParsed != nil:
		a.Date = item.UpdatedParsed.UTC().Format(time.RFC3339)
	default:
		a.Date = item.Published
	}
	return a
}
