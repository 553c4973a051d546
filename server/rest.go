package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/umputun/gamedesk/pkg/domain"
	"github.com/umputun/gamedesk/pkg/view"
)

// articlesResponse is the JSON form of one page of a filtered view
type articlesResponse struct {
	Criteria   domain.FilterCriteria `json:"criteria"`
	Articles   []domain.Article      `json:"articles"`
	Page       int                   `json:"page"`
	TotalPages int                   `json:"totalPages"`
	Total      int                   `json:"total"`
	HasPrev    bool                  `json:"hasPrev"`
	HasNext    bool                  `json:"hasNext"`
	Empty      bool                  `json:"empty"`
}

type themeRequest struct {
	Theme string `json:"theme"`
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":   "ok",
		"version":  s.version,
		"time":     time.Now().UTC(),
		"articles": len(s.articles.All()),
		"theme":    s.theme.Current(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// listArticlesHandler returns the filtered view for the same query params as the news page
func (s *Server) listArticlesHandler(w http.ResponseWriter, r *http.Request) {
	ctl := view.FromValues(r.URL.Query())
	res := ctl.Apply(s.articles.All(), s.config.GetPageSize())
	renderJSON(w, r, http.StatusOK, articlesResponse{
		Criteria:   res.Criteria,
		Articles:   res.Page.Articles,
		Page:       res.Page.Number,
		TotalPages: res.Page.Total,
		Total:      res.Total,
		HasPrev:    res.Page.HasPrev,
		HasNext:    res.Page.HasNext,
		Empty:      res.Empty,
	})
}

// getArticleHandler returns a single article, 404 if the id is unknown
func (s *Server) getArticleHandler(w http.ResponseWriter, r *http.Request) {
	article, err := s.articles.Get(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			renderError(w, r, fmt.Errorf("article not found"), http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] failed to get article: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, article)
}

// getThemeHandler returns the current theme
func (s *Server) getThemeHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, map[string]domain.Theme{"theme": s.theme.Current()})
}

// putThemeHandler sets the theme from a {"theme": "dark"} body
func (s *Server) putThemeHandler(w http.ResponseWriter, r *http.Request) {
	var req themeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	th, err := domain.ParseTheme(req.Theme)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	if err := s.theme.Set(r.Context(), th); err != nil {
		log.Printf("[ERROR] failed to save theme: %v", err)
		renderError(w, r, fmt.Errorf("failed to save theme"), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]domain.Theme{"theme": th})
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
