// Package client is a typed wrapper over the media API's HTTP surface.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mediashelf/mediashelf/internal/domain"
	"github.com/mediashelf/mediashelf/internal/validate"
)

// ErrNotFound is returned when the server reports a missing record.
var ErrNotFound = errors.New("client: not found")

// ValidationError carries the server's per-field validation failures.
type ValidationError struct {
	Fields []validate.FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return "client: validation failed: " + strings.Join(msgs, "; ")
}

// Filters mirror the list query parameters. TypeAll is the sentinel meaning
// no type constraint; it is never sent over the wire.
type Filters struct {
	Search string
	Type   string
	Year   string
}

// TypeAll disables type filtering.
const TypeAll = "ALL"

// ListResult is one page of records plus pagination metadata.
type ListResult struct {
	Media      []domain.MediaRecord `json:"media"`
	Pagination Pagination           `json:"pagination"`
}

// Pagination describes the page returned by a list call.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	HasNextPage bool  `json:"hasNextPage"`
}

// HealthStatus is the health endpoint's descriptor.
type HealthStatus struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	Database    string `json:"database"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}

// Client talks to the media API over HTTP.
type Client struct {
	baseURL *url.URL
	client  *http.Client
	logger  *zap.SugaredLogger
}

// New constructs a client for the given base URL (e.g.
// "http://localhost:5000/api") with a fixed request timeout.
func New(baseURL string, timeout time.Duration, logger *zap.SugaredLogger) (*Client, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	return &Client{
		baseURL: parsed,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   timeout,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   timeout,
				ResponseHeaderTimeout: timeout,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
		logger: logger,
	}, nil
}

// ListMedia fetches one page of records. Zero page/limit fall back to the
// server defaults. Filters are serialized only when set.
func (c *Client) ListMedia(ctx context.Context, page, limit int, filters Filters) (ListResult, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if filters.Search != "" {
		q.Set("search", filters.Search)
	}
	if filters.Type != "" && filters.Type != TypeAll {
		q.Set("type", filters.Type)
	}
	if filters.Year != "" {
		q.Set("year", filters.Year)
	}

	var result ListResult
	if err := c.do(ctx, http.MethodGet, "/media", q, nil, http.StatusOK, &result); err != nil {
		return ListResult{}, err
	}
	return result, nil
}

// CreateMedia persists a new record and returns it with its assigned
// identifier and timestamps.
func (c *Client) CreateMedia(ctx context.Context, input domain.MediaInput) (domain.MediaRecord, error) {
	var record domain.MediaRecord
	if err := c.do(ctx, http.MethodPost, "/media", nil, input, http.StatusCreated, &record); err != nil {
		return domain.MediaRecord{}, err
	}
	return record, nil
}

// UpdateMedia replaces all mutable fields of the record with the given id.
func (c *Client) UpdateMedia(ctx context.Context, id int64, input domain.MediaInput) (domain.MediaRecord, error) {
	var record domain.MediaRecord
	path := fmt.Sprintf("/media/%d", id)
	if err := c.do(ctx, http.MethodPut, path, nil, input, http.StatusOK, &record); err != nil {
		return domain.MediaRecord{}, err
	}
	return record, nil
}

// DeleteMedia removes the record with the given id.
func (c *Client) DeleteMedia(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/media/%d", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil, http.StatusNoContent, nil)
}

// Health fetches the service health descriptor. A degraded store is not an
// error here; callers inspect Status.
func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	endpoint := c.resolve("/health", nil)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return HealthStatus{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return HealthStatus{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusServiceUnavailable {
		return HealthStatus{}, fmt.Errorf("client: health returned %d", resp.StatusCode)
	}
	var status HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return HealthStatus{}, fmt.Errorf("decode health response: %w", err)
	}
	return status, nil
}

func (c *Client) resolve(path string, query url.Values) string {
	rel := &url.URL{Path: c.baseURL.Path + path}
	if query != nil {
		rel.RawQuery = query.Encode()
	}
	return c.baseURL.ResolveReference(rel).String()
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}, wantStatus int, out interface{}) error {
	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.resolve(path, query), payload)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == wantStatus:
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusBadRequest:
		return decodeBadRequest(resp.Body)
	default:
		c.logger.Warnw("unexpected api status", "method", method, "path", path, "status", resp.StatusCode)
		return fmt.Errorf("client: api returned %d", resp.StatusCode)
	}
}

// decodeBadRequest distinguishes field-error payloads from generic 400s.
// The error body is {"error": ...} where the value is either a string or a
// list of {field, message} objects.
func decodeBadRequest(body io.Reader) error {
	var raw struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		return fmt.Errorf("client: api returned 400")
	}
	var fields []validate.FieldError
	if err := json.Unmarshal(raw.Error, &fields); err == nil && len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	var msg string
	if err := json.Unmarshal(raw.Error, &msg); err == nil && msg != "" {
		return fmt.Errorf("client: %s", msg)
	}
	return fmt.Errorf("client: api returned 400")
}
