package domain

import (
	"time"

	"github.com/google/uuid"
)

type RoadmapPhase struct {
	ID           uuid.UUID `json:"id"`
	Phase        string    `json:"phase"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Status       string    `json:"status"`
	Items        []string  `json:"items"`
	DisplayOrder int       `json:"display_order"`
}

type KPIStat struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Suffix string `json:"suffix,omitempty"`
}

// AboutContent backs the About page. KPIStats is stored as an embedded
// JSON column.
type AboutContent struct {
	ID        uuid.UUID `json:"id"`
	Headline  string    `json:"headline"`
	Body      string    `json:"body"`
	KPIStats  []KPIStat `json:"kpi_stats"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Testimonial struct {
	ID        uuid.UUID `json:"id"`
	Author    string    `json:"author"`
	Role      string    `json:"role,omitempty"`
	Company   string    `json:"company,omitempty"`
	Quote     string    `json:"quote"`
	CreatedAt time.Time `json:"created_at"`
}

type Technology struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category,omitempty"`
	IconURL  string    `json:"icon_url,omitempty"`
}

// ExpertiseCard is static marketing content served from configuration.
type ExpertiseCard struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Highlights  []string `json:"highlights" yaml:"highlights"`
}
