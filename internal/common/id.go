package common

import (
	"github.com/google/uuid"
)

// NewRecommendationID generates a unique recommendation ID
// Format: rec_<uuid>
func NewRecommendationID() string {
	return "rec_" + uuid.New().String()
}

// NewArticleID generates a unique news article ID
// Format: news_<uuid>
func NewArticleID() string {
	return "news_" + uuid.New().String()
}

// NewStatusID generates a unique status check ID
// Format: status_<uuid>
func NewStatusID() string {
	return "status_" + uuid.New().String()
}
