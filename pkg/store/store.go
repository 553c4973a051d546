// Package store provides the immutable in-memory article store and the loaders filling it
// from data files, RSS/Atom files and the embedded seed dataset.
package store

import (
	"fmt"
	"strings"

	"github.com/umputun/gamedesk/pkg/domain"
)

// Store is a read-only ordered collection of articles, safe for concurrent readers
type Store struct {
	articles []domain.Article
	index    map[string]int
}

// New makes a store from the articles, keeping their order. Ids must be non-empty and unique.
func New(articles []domain.Article) (*Store, error) {
	s := &Store{
		articles: make([]domain.Article, len(articles)),
		index:    make(map[string]int, len(articles)),
	}
	for i, a := range articles {
		if strings.TrimSpace(a.ID) == "" {
			return nil, fmt.Errorf("article #%d (%q) has empty id", i, a.Title)
		}
		if _, dup := s.index[a.ID]; dup {
			return nil, fmt.Errorf("duplicate article id %q", a.ID)
		}
		s.articles[i] = a.Clone()
		s.index[a.ID] = i
	}
	return s, nil
}

// All returns a copy of all articles in store order
func (s *Store) All() []domain.Article {
	res := make([]domain.Article, len(s.articles))
	for i, a := range s.articles {
		res[i] = a.Clone()
	}
	return res
}

// Get returns the article by id or an error wrapping domain.ErrNotFound
func (s *Store) Get(id string) (domain.Article, error) {
	i, ok := s.index[id]
	if !ok {
		return domain.Article{}, fmt.Errorf("get %q: %w", id, domain.ErrNotFound)
	}
	return s.articles[i].Clone(), nil
}

// Len returns the number of articles
func (s *Store) Len() int {
	return len(s.articles)
}
