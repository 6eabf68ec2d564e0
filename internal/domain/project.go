package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	ProjectStatusDeployed = "Deployed"

	// SyncedDisplayOrder places projects created by a repository sync after
	// every curated project until an admin reorders them.
	SyncedDisplayOrder = 999
)

// Project is a portfolio entry. IsFeatured, DisplayOrder and Stack are
// admin-owned; Description, SourceURL and LiveURL are refreshed by syncs.
type Project struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title" yaml:"title"`
	Description  *string   `json:"description" yaml:"description"`
	Stack        []string  `json:"stack" yaml:"stack"`
	SourceURL    *string   `json:"source_url" yaml:"source_url"`
	LiveURL      *string   `json:"live_url" yaml:"live_url"`
	ImageURL     *string   `json:"image_url,omitempty" yaml:"image_url"`
	Status       string    `json:"status" yaml:"status"`
	IsFeatured   bool      `json:"is_featured" yaml:"is_featured"`
	DisplayOrder int       `json:"display_order" yaml:"display_order"`
	CreatedAt    time.Time `json:"created_at" yaml:"-"`
	UpdatedAt    time.Time `json:"updated_at" yaml:"-"`
}

// SourceFields is the patch a sync is allowed to write to an existing project.
type SourceFields struct {
	Description *string
	SourceURL   *string
	LiveURL     *string
}

// StringPtr returns nil for an empty string so "no value" stays distinct
// from an explicit value.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns the pointed-to string or "".
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
