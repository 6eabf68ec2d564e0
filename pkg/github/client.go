package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://api.github.com"
	pageSize       = 100
	acceptJSON     = "application/vnd.github+json"
	acceptRaw      = "application/vnd.github.raw"
)

// Client is a read-only REST client for repository metadata and READMEs.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	logger  *slog.Logger
}

// NewClient returns a client against baseURL. A nil httpClient gets a
// client with the given timeout.
func NewClient(baseURL string, timeout time.Duration, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    httpClient,
		logger:  slog.Default().With("component", "github"),
	}
}

// WithLogger replaces the client's logger.
func (c *Client) WithLogger(l *slog.Logger) *Client {
	if l != nil {
		c.logger = l.With("component", "github")
	}
	return c
}

// ListRepositories lists repositories owned by username, most recently
// updated first unless opts.SortBy says otherwise.
//
// With opts.IncludePrivate and a token the authenticated "my repositories"
// listing is used, which returns the token owner's repositories rather than
// username's. The token owner is therefore checked against username first
// and ErrTokenOwnerMismatch is returned when they differ.
func (c *Client) ListRepositories(ctx context.Context, username, token string, opts ListOptions) ([]Repository, error) {
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("username is required")
	}
	limit := opts.MaxRepos
	if limit <= 0 {
		limit = pageSize
	}
	sortBy := opts.SortBy
	if sortBy == "" {
		sortBy = "updated"
	}

	path := "/users/" + url.PathEscape(username) + "/repos"
	query := url.Values{"type": {"owner"}, "sort": {sortBy}}
	if opts.IncludePrivate {
		if token == "" {
			c.logger.Warn("private repositories requested without a token; listing public repositories", "username", username)
		} else {
			owner, err := c.AuthenticatedUser(ctx, token)
			if err != nil {
				return nil, fmt.Errorf("resolve token owner: %w", err)
			}
			if !strings.EqualFold(owner.Login, username) {
				return nil, fmt.Errorf("%w: token owner %q, requested %q", ErrTokenOwnerMismatch, owner.Login, username)
			}
			path = "/user/repos"
			query = url.Values{"visibility": {"all"}, "affiliation": {"owner"}, "sort": {sortBy}}
		}
	}

	perPage := limit
	if perPage > pageSize {
		perPage = pageSize
	}
	query.Set("per_page", strconv.Itoa(perPage))

	var out []Repository
	for page := 1; len(out) < limit; page++ {
		query.Set("page", strconv.Itoa(page))

		var batch []Repository
		if err := c.getJSON(ctx, path+"?"+query.Encode(), token, &batch); err != nil {
			return nil, err
		}
		out = append(out, batch...)
		if len(batch) < perPage {
			break
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	c.logger.Debug("listed repositories", "username", username, "count", len(out), "private", opts.IncludePrivate)
	return out, nil
}

// AuthenticatedUser returns the account that owns token.
func (c *Client) AuthenticatedUser(ctx context.Context, token string) (*User, error) {
	var u User
	if err := c.getJSON(ctx, "/user", token, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetReadme returns the raw README text of owner/repo.
func (c *Client) GetReadme(ctx context.Context, owner, repo, token string) (string, error) {
	path := "/repos/" + url.PathEscape(owner) + "/" + url.PathEscape(repo) + "/readme"
	resp, err := c.do(ctx, path, token, acceptRaw)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read readme: %w", err)
	}
	return string(b), nil
}

func (c *Client) getJSON(ctx context.Context, path, token string, out interface{}) error {
	resp, err := c.do(ctx, path, token, acceptJSON)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// do issues a GET and returns the response only for 2xx statuses.
func (c *Client) do(ctx context.Context, path, token, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errorMessage(resp.Body)}
	}
	return resp, nil
}

func errorMessage(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 4096))
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(b, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return strings.TrimSpace(string(b))
}
