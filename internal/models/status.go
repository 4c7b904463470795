package models

import (
	"time"
)

// StatusCheck is a trivial liveness/audit record
type StatusCheck struct {
	ID         string    `json:"id" badgerhold:"key"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// StatusCheckCreate is the request body for creating a status check
type StatusCheckCreate struct {
	ClientName string `json:"client_name" validate:"required,min=1"`
}
