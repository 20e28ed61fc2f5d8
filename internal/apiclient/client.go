package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds REST API client settings
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the remote travel REST API. One instance is shared by all
// requests; the caller's bearer token travels in the context.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        zerolog.Logger
}

// New creates a new API client
func New(cfg Config, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		log:        log.With().Str("component", "apiclient").Logger(),
	}
}

// BaseURL returns the configured API root
func (c *Client) BaseURL() string {
	return c.baseURL
}

type tokenKey struct{}

// ContextWithToken attaches a bearer token to ctx for all calls made with it
func ContextWithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the bearer token stored by ContextWithToken
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// APIError is a non-2xx answer from the backend
type APIError struct {
	StatusCode int
	Message    string
	Method     string
	Path       string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
}

// IsUnauthorized reports whether err is a 401/403 from the backend
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
	}
	return false
}

// IsNotFound reports whether err is a 404 from the backend
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Message returns the server-provided message of an API error, if any
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

// do performs a JSON request and decodes the answer into out (which may be nil)
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path, query), bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// send executes a prepared request, attaching auth and decoding the response
func (c *Client) send(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	if token := TokenFromContext(req.Context()); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("API call")

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(data),
			Method:     req.Method,
			Path:       req.URL.Path,
		}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(unwrapData(data), out); err != nil {
		return fmt.Errorf("decode response of %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

func (c *Client) url(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// unwrapData strips a {"data": ...} envelope when the backend uses one
func unwrapData(data []byte) []byte {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return data
	}
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return data
	}
	if inner, ok := envelope["data"]; ok {
		return inner
	}
	return data
}

func errorMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return strings.TrimSpace(string(data))
}

func idPath(base string, id int64) string {
	return base + "/" + strconv.FormatInt(id, 10)
}

// Resource is a conventional JSON CRUD collection on the backend
type Resource[T any] struct {
	client *Client
	path   string
}

// NewResource binds a CRUD collection path such as "/places"
func NewResource[T any](client *Client, path string) *Resource[T] {
	return &Resource[T]{client: client, path: path}
}

// Path returns the collection path
func (r *Resource[T]) Path() string {
	return r.path
}

// List fetches the whole collection
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.client.do(ctx, http.MethodGet, r.path, nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches one record
func (r *Resource[T]) Get(ctx context.Context, id int64) (*T, error) {
	var item T
	if err := r.client.do(ctx, http.MethodGet, idPath(r.path, id), nil, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Create posts a new record and returns what the backend stored
func (r *Resource[T]) Create(ctx context.Context, input any) (*T, error) {
	var item T
	if err := r.client.do(ctx, http.MethodPost, r.path, nil, input, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update replaces a record
func (r *Resource[T]) Update(ctx context.Context, id int64, input any) (*T, error) {
	var item T
	if err := r.client.do(ctx, http.MethodPut, idPath(r.path, id), nil, input, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes a record
func (r *Resource[T]) Delete(ctx context.Context, id int64) error {
	return r.client.do(ctx, http.MethodDelete, idPath(r.path, id), nil, nil, nil)
}
