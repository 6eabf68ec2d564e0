package domain

import (
	"time"

	"github.com/google/uuid"
)

// SyncRun is the audit record of one repository sync.
type SyncRun struct {
	ID         uuid.UUID `json:"id"`
	Username   string    `json:"username"`
	Success    bool      `json:"success"`
	Synced     int       `json:"synced"`
	Created    int       `json:"created"`
	Updated    int       `json:"updated"`
	Errors     []string  `json:"errors"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}
