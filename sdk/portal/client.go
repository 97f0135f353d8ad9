// Package portal is the API client used by front-ends of the incident
// reporting service. It owns the session state: after Login every request
// carries the bearer token, and a 401/403 from the server tears the session
// down so the caller can fall back to an unauthenticated view.
package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrSessionExpired is returned when the server rejects the held token. The
// client has already discarded the session when this is returned.
var ErrSessionExpired = errors.New("session expired or rejected")

// ErrNoSession is returned when a protected call is attempted without a
// previous successful Login.
var ErrNoSession = errors.New("no active session")

// Client is the incident portal API client.
type Client struct {
	baseURL    string
	httpClient *http.Client

	session *Session
	// cached holds the last successfully fetched report list. Advisory only;
	// re-fetch with ListReports for fresh data.
	cached []Report
}

// Option is a function that configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(client *Client) {
		client.httpClient.Timeout = d
	}
}

// WithSession resumes a previously stored session.
func WithSession(s Session) Option {
	return func(client *Client) {
		if s.Token != "" {
			client.session = &s
		}
	}
}

// NewClient creates a new portal API client.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns the active session, or nil when logged out.
func (c *Client) Session() *Session {
	if c.session == nil {
		return nil
	}
	clone := *c.session
	return &clone
}

// CachedReports returns the last fetched report list.
func (c *Client) CachedReports() []Report {
	return c.cached
}

// Login authenticates and stores the session for subsequent calls.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	var resp loginResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/auth/login", false, loginRequest{
		Username: username,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	c.session = &Session{Token: resp.Token, Username: resp.Username}
	return c.Session(), nil
}

// Logout discards the session and the cached list.
func (c *Client) Logout() {
	c.session = nil
	c.cached = nil
}

// CreateReport submits a new report. No session is required: submission is
// public.
func (c *Client) CreateReport(ctx context.Context, input CreateReportInput) (*Report, error) {
	var report Report
	if err := c.doRequest(ctx, http.MethodPost, "/api/reportes", false, input, &report); err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}
	return &report, nil
}

// ListReports fetches all reports, newest first, and refreshes the cache.
func (c *Client) ListReports(ctx context.Context) ([]Report, error) {
	if c.session == nil {
		return nil, ErrNoSession
	}

	var reports []Report
	if err := c.doRequest(ctx, http.MethodGet, "/api/reportes", true, nil, &reports); err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	c.cached = reports
	return reports, nil
}

// UpdateReport applies a partial update to one report.
func (c *Client) UpdateReport(ctx context.Context, id string, input UpdateReportInput) (*Report, error) {
	if c.session == nil {
		return nil, ErrNoSession
	}

	var report Report
	if err := c.doRequest(ctx, http.MethodPut, "/api/reportes/"+id, true, input, &report); err != nil {
		return nil, fmt.Errorf("update report: %w", err)
	}
	return &report, nil
}

// ChangeEstado is a convenience wrapper updating only the estado field.
func (c *Client) ChangeEstado(ctx context.Context, id, estado string) (*Report, error) {
	return c.UpdateReport(ctx, id, UpdateReportInput{Estado: &estado})
}

// DeleteReport permanently removes one report.
func (c *Client) DeleteReport(ctx context.Context, id string) error {
	if c.session == nil {
		return ErrNoSession
	}

	if err := c.doRequest(ctx, http.MethodDelete, "/api/reportes/"+id, true, nil, nil); err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	return nil
}

func (c *Client) doRequest(ctx context.Context, method, path string, authed bool, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed && c.session != nil {
		req.Header.Set("Authorization", "Bearer "+c.session.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// An authenticated call bouncing off the server invalidates the whole
	// session, not just this request.
	if authed && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
		c.Logout()
		return ErrSessionExpired
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var ae apiError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&ae); decodeErr == nil && ae.Error != "" {
			return fmt.Errorf("server returned %d: %s", resp.StatusCode, ae.Error)
		}
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
