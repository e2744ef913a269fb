package model

import "time"

// Article is one news item returned by an article source
type Article struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Link        string    `json:"link"`
	PublishedAt time.Time `json:"published_at"`
}

// Text returns the matchable text of the article (title plus description)
func (a Article) Text() string {
	if a.Description == "" {
		return a.Title
	}
	return a.Title + ". " + a.Description
}
