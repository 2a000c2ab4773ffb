// Package redmine is a minimal client for the Redmine REST API.
//
// Only saved-query fetching is implemented: the release queries are
// pre-filtered server-side, so the client never filters or paginates.
package redmine

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bmbouter/pulp-demos/internal/domain"
)

// Ensure Client implements domain.IssueTracker.
var _ domain.IssueTracker = (*Client)(nil)

// queryLimit caps a single issues.json response. Release queries are well
// under this.
const queryLimit = 100

// Client talks to a Redmine instance.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a Client for the given Redmine base URL. The API key may
// be empty; fetching then fails with domain.ErrMissingAPIKey.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

// issuesResponse mirrors the issues.json payload.
type issuesResponse struct {
	Issues []struct {
		ID      int    `json:"id"`
		Subject string `json:"subject"`
		Project struct {
			Name string `json:"name"`
		} `json:"project"`
	} `json:"issues"`
}

// FetchQuery returns all issues matching the saved query in one call.
func (c *Client) FetchQuery(ctx context.Context, queryID int) ([]domain.Issue, error) {
	if c.apiKey == "" {
		return nil, domain.ErrMissingAPIKey
	}

	url := fmt.Sprintf("%s/issues.json?query_id=%d&limit=%d", c.baseURL, queryID, queryLimit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Redmine-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch issues: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: query %d", domain.ErrQueryNotFound, queryID)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fetch issues: %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var payload issuesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode issues: %w", err)
	}

	issues := make([]domain.Issue, 0, len(payload.Issues))
	for _, i := range payload.Issues {
		issues = append(issues, domain.Issue{
			ID:      i.ID,
			Subject: i.Subject,
			Project: i.Project.Name,
			URL:     fmt.Sprintf("%s/issues/%d", c.baseURL, i.ID),
		})
	}
	return issues, nil
}
