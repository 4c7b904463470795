package models

import (
	"time"
)

// NewsArticle is a published content item. Content is markdown.
type NewsArticle struct {
	ID          string    `json:"id" badgerhold:"key"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Content     string    `json:"content"`
	Author      string    `json:"author"`
	Category    string    `json:"category" badgerholdIndex:"Category"`
	PublishDate time.Time `json:"publish_date"`
	ImageURL    string    `json:"image_url,omitempty"`
	Tags        []string  `json:"tags"`
	ReadTime    int       `json:"read_time"` // estimated read time in minutes
}

// CategoryCount is one row of the category breakdown
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}
