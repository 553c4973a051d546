package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/gamedesk/pkg/articles"
	"github.com/umputun/gamedesk/pkg/content"
	"github.com/umputun/gamedesk/pkg/domain"
	"github.com/umputun/gamedesk/pkg/view"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/articles.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/theme.go -pkg mocks -skip-ensure -fmt goimports . ThemeStore

//go:embed templates
var templatesFS embed.FS

// pages rendered with the base layout, everything else in templates/partials is a component
var pageNames = []string{"news.html", "article.html", "not-found.html"}

// Server represents HTTP server instance
type Server struct {
	config   ConfigProvider
	articles ArticleStore
	theme    ThemeStore
	version  string
	debug    bool

	templates     *template.Template
	pageTemplates map[string]*template.Template
	sanitizer     *content.Sanitizer
	now           func() time.Time

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// ArticleStore provides read access to the immutable article collection
type ArticleStore interface {
	All() []domain.Article
	Get(id string) (domain.Article, error)
}

// ThemeStore keeps the theme preference
type ThemeStore interface {
	Current() domain.Theme
	Set(ctx context.Context, th domain.Theme) error
	Cycle(ctx context.Context) (domain.Theme, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetBaseURL() string
	GetPageSize() int
	GetLatency() time.Duration
	GetSeed() int64
}

// New initializes a new server instance
func New(cfg ConfigProvider, store ArticleStore, theme ThemeStore, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		articles:  store,
		theme:     theme,
		version:   version,
		debug:     debug,
		sanitizer: content.NewSanitizer(),
		now:       time.Now,
		router:    routegroup.New(http.NewServeMux()),
	}

	if err := s.loadTemplates(); err != nil {
		// templates are embedded, failure here is a build defect
		panic(fmt.Sprintf("failed to load templates: %v", err))
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("gamedesk", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024)) // forms and small json bodies only
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	// web UI routes
	s.router.HandleFunc("GET /{$}", s.rootHandler)
	s.router.HandleFunc("GET /news", s.newsHandler)
	s.router.HandleFunc("GET /news/articles", s.articlesHandler)
	s.router.HandleFunc("GET /news/article/{id}", s.articleHandler)
	s.router.HandleFunc("POST /news/article/{id}/bookmark", s.bookmarkHandler)
	s.router.HandleFunc("GET /news/article/{id}/share/{platform}", s.shareHandler)
	s.router.HandleFunc("POST /theme", s.themeHandler)
	s.router.HandleFunc("POST /newsletter", s.newsletterHandler)

	// RSS route, same query params as the news page
	s.router.HandleFunc("GET /rss", s.rssHandler)

	// API routes
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /articles", s.listArticlesHandler)
		r.HandleFunc("GET /articles/{id}", s.getArticleHandler)
		r.HandleFunc("GET /theme", s.getThemeHandler)
		r.HandleFunc("PUT /theme", s.putThemeHandler)
	})

	// everything else is the not-found page
	s.router.HandleFunc("/", s.notFoundHandler)
}

// loadTemplates parses components once and a separate set per page, each page defines its own blocks
func (s *Server) loadTemplates() error {
	funcs := s.templateFuncs()

	components, err := template.New("components").Funcs(funcs).ParseFS(templatesFS, "templates/partials/*.html")
	if err != nil {
		return fmt.Errorf("parse components: %w", err)
	}
	s.templates = components

	s.pageTemplates = make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := components.Clone()
		if err != nil {
			return fmt.Errorf("clone components for %s: %w", name, err)
		}
		if tmpl, err = tmpl.ParseFS(templatesFS, "templates/base.html", "templates/"+name); err != nil {
			return fmt.Errorf("parse page %s: %w", name, err)
		}
		s.pageTemplates[name] = tmpl
	}
	return nil
}

// templateFuncs are the helpers available to all templates
func (s *Server) templateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatDate":    func(ts string) string { return articles.FormatDate(ts, s.now) },
		"longDate":      func(ts string) string { return articles.FormatLongDate(ts, s.now) },
		"readingTime":   articles.ReadingTime,
		"categoryLabel": domain.CategoryLabel,
		"tagLabel":      domain.TagLabel,
		"articleURL":    articleURL,
		"categoryURL": func(category string) string {
			return view.New().With(func(c *view.Controller) { c.SetCategory(category) }).URL("/news")
		},
		"tagURL": func(tag string) string {
			return view.New().With(func(c *view.Controller) { c.ToggleTag(tag) }).URL("/news")
		},
		"lower": strings.ToLower,
	}
}

// random returns the source for highlight and related picks. A configured seed gives
// the same picks on every request.
func (s *Server) random() *rand.Rand {
	if seed := s.config.GetSeed(); seed != 0 {
		return rand.New(rand.NewPCG(uint64(seed), uint64(seed))) //nolint:gosec // not security sensitive
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // not security sensitive
}

// rootHandler sends visitors to the news page
func (s *Server) rootHandler(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/news", http.StatusFound)
}

// notFoundHandler renders the not-found page for unknown paths
func (s *Server) notFoundHandler(w http.ResponseWriter, r *http.Request) {
	s.renderNotFound(w, r)
}

// respondWithError logs the error and sends a plain text error to the client
func (s *Server) respondWithError(w http.ResponseWriter, code int, message string, err error) {
	log.Printf("[ERROR] %s: %v", message, err)
	http.Error(w, message, code)
}

func articleURL(id string) string {
	return "/news/article/" + url.PathEscape(id)
}
