package models

import (
	"time"
)

// Question is an inbound free-text question for the advisor.
// Not persisted.
type Question struct {
	Question string `json:"question" validate:"required,min=1"`
	UserID   string `json:"user_id,omitempty"`
}

// Answer is the advisor's response to a Question. Not persisted.
type Answer struct {
	Question        string    `json:"question"`
	Answer          string    `json:"answer"`
	RelevantSymbols []string  `json:"relevant_symbols"`
	Confidence      float64   `json:"confidence"` // 0-1
	ResponseTime    time.Time `json:"response_time"`
	Sources         []string  `json:"sources"`
}
