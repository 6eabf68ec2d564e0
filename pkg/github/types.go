package github

import (
	"errors"
	"fmt"
	"time"
)

// Repository is the subset of the repository payload the portfolio uses.
type Repository struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	FullName        string     `json:"full_name"`
	HTMLURL         string     `json:"html_url"`
	Description     *string    `json:"description"`
	Language        *string    `json:"language"`
	StargazersCount int        `json:"stargazers_count"`
	Private         bool       `json:"private"`
	Fork            bool       `json:"fork"`
	Homepage        *string    `json:"homepage"`
	Owner           Owner      `json:"owner"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
	PushedAt        *time.Time `json:"pushed_at,omitempty"`
}

type Owner struct {
	Login string `json:"login"`
}

type User struct {
	Login string `json:"login"`
	Name  string `json:"name"`
}

// ListOptions controls ListRepositories.
type ListOptions struct {
	// MaxRepos caps the number of repositories returned. Zero means one
	// full page.
	MaxRepos int
	// SortBy is one of created, updated, pushed, full_name. Defaults to updated.
	SortBy string
	// IncludePrivate switches to the authenticated listing, which requires a
	// token owned by the requested user.
	IncludePrivate bool
}

// ErrTokenOwnerMismatch is returned when a private listing is requested for
// a username other than the token's owner.
var ErrTokenOwnerMismatch = errors.New("token does not belong to requested user")

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("github api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("github api: status %d: %s", e.StatusCode, e.Message)
}
