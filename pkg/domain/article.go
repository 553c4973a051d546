package domain

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when an article id is not present in the store
var ErrNotFound = errors.New("article not found")

// Article represents a single immutable content record
type Article struct {
	ID        string   `yaml:"id" json:"id"`
	Title     string   `yaml:"title" json:"title"`
	Excerpt   string   `yaml:"excerpt" json:"excerpt"`
	Content   string   `yaml:"content,omitempty" json:"content,omitempty"`
	Author    string   `yaml:"author" json:"author"`
	Category  string   `yaml:"category" json:"category"`
	Tags      []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	ImageURL  string   `yaml:"image_url" json:"imageUrl"`
	Date      string   `yaml:"date" json:"date"`
	Timestamp string   `yaml:"timestamp,omitempty" json:"timestamp,omitempty"`
	Views     int      `yaml:"views,omitempty" json:"views,omitempty"`
	IsPremium bool     `yaml:"is_premium,omitempty" json:"isPremium,omitempty"`
}

// PublishedAt returns the timestamp if set, the date otherwise
func (a Article) PublishedAt() string {
	if a.Timestamp != "" {
		return a.Timestamp
	}
	return a.Date
}

// Clone returns a copy not sharing the tags slice
func (a Article) Clone() Article {
	if a.Tags != nil {
		a.Tags = append([]string(nil), a.Tags...)
	}
	return a
}

// HasTag checks if the article carries the tag, case-insensitive
func (a Article) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// AuthorInitial returns the first letter of the author name, used for avatars
func (a Article) AuthorInitial() string {
	for _, r := range a.Author {
		return strings.ToUpper(string(r))
	}
	return "?"
}
