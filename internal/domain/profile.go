package domain

import (
	"time"

	"github.com/google/uuid"
)

// PersonalInfo is the singleton identity record of the site owner.
type PersonalInfo struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Location    string    `json:"location,omitempty"`
	Summary     string    `json:"summary,omitempty"`
	LinkedInURL string    `json:"linkedin_url,omitempty"`
	GitHubURL   string    `json:"github_url,omitempty"`
	WebsiteURL  string    `json:"website_url,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Experience struct {
	ID               uuid.UUID `json:"id"`
	Company          string    `json:"company"`
	Title            string    `json:"title"`
	Location         string    `json:"location,omitempty"`
	StartDate        Date      `json:"start_date"`
	EndDate          *Date     `json:"end_date"`
	IsCurrent        bool      `json:"is_current"`
	Description      string    `json:"description,omitempty"`
	Responsibilities []string  `json:"responsibilities"`
	Achievements     []string  `json:"achievements"`
	Technologies     []string  `json:"technologies"`
	DisplayOrder     int       `json:"display_order"`
}

// Normalize makes IsCurrent and a missing EndDate mean the same thing:
// a current role has no end date, and a role without an end date is current.
func (e *Experience) Normalize() {
	if e.EndDate != nil && e.EndDate.IsZero() {
		e.EndDate = nil
	}
	if e.IsCurrent {
		e.EndDate = nil
	}
	if e.EndDate == nil {
		e.IsCurrent = true
	}
}

// Ongoing reports whether the role renders as running until "Present".
func (e Experience) Ongoing() bool {
	return e.IsCurrent || e.EndDate == nil
}

type Education struct {
	ID           uuid.UUID `json:"id"`
	Institution  string    `json:"institution"`
	Degree       string    `json:"degree,omitempty"`
	FieldOfStudy string    `json:"field_of_study,omitempty"`
	StartDate    Date      `json:"start_date"`
	EndDate      *Date     `json:"end_date"`
	Grade        string    `json:"grade,omitempty"`
	Description  string    `json:"description,omitempty"`
	DisplayOrder int       `json:"display_order"`
}

// Skill is keyed by Name for upserts.
type Skill struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name" yaml:"name"`
	Category     string    `json:"category" yaml:"category"`
	Proficiency  int       `json:"proficiency" yaml:"proficiency"`
	IsFeatured   bool      `json:"is_featured" yaml:"is_featured"`
	DisplayOrder int       `json:"display_order" yaml:"display_order"`
}

type Certification struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Issuer        string    `json:"issuer,omitempty"`
	IssueDate     *Date     `json:"issue_date"`
	CredentialURL string    `json:"credential_url,omitempty"`
	DisplayOrder  int       `json:"display_order"`
}

// ResumeProfile is the generation-time view assembled from the tables
// above. It is never persisted.
type ResumeProfile struct {
	Personal       PersonalInfo    `json:"personal_info"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Skills         []Skill         `json:"skills"`
	Projects       []Project       `json:"projects,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
}
