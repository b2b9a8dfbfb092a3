// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for communicating with the Maritime AI Agent backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents an error from the backend client.
type ClientError struct {
	Type    ErrorType
	Message string
	Status  int
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeUnreachable
	ErrTypeTimeout
	ErrTypeCancelled
	ErrTypeServer
	ErrTypeInvalidResponse
)

// Sentinel errors for easy checking.
var (
	// ErrBackendDown replaces every connection-refused or network-unreachable
	// failure so the UI shows a single consistent message.
	ErrBackendDown = &ClientError{Type: ErrTypeUnreachable, Message: "cannot reach backend"}
	ErrTimeout     = &ClientError{Type: ErrTypeTimeout, Message: "request timed out"}
)

// IsBackendDown checks if an error indicates the backend is unreachable.
func IsBackendDown(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeUnreachable
	}
	return errors.Is(err, ErrBackendDown)
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeTimeout
	}
	return errors.Is(err, ErrTimeout)
}

// IsServerError checks if an error carries a server-provided status and message.
func IsServerError(err error) bool {
	var clientErr *ClientError
	return errors.As(err, &clientErr) && clientErr.Type == ErrTypeServer
}

// =============================================================================
// OBSERVER
// =============================================================================

// Observer receives request/response observations from the client.
// Implementations must not block; observations are side effects only and
// never influence the outcome of a call.
type Observer interface {
	RequestSent(method, path, summary string)
	ResponseReceived(method, path string, status int, bytes int, elapsed time.Duration)
}

// nopObserver is used when no observer is configured.
type nopObserver struct{}

func (nopObserver) RequestSent(string, string, string)                        {}
func (nopObserver) ResponseReceived(string, string, int, int, time.Duration) {}

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// Config holds configuration options for the backend client.
type Config struct {
	// BaseURL is the backend API base URL (default: http://127.0.0.1:8000/api)
	// Note: Uses explicit IPv4 address instead of localhost to avoid IPv6 resolution issues on Windows
	BaseURL string

	// Timeout for standard requests (default: 30s)
	Timeout time.Duration

	// QueryTimeout for long-running agent queries (default: 60s)
	QueryTimeout time.Duration
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:      "http://127.0.0.1:8000/api",
		Timeout:      30 * time.Second,
		QueryTimeout: 60 * time.Second,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client handles communication with the Maritime AI Agent backend.
//
// Every operation either resolves with a typed payload or fails with a
// *ClientError; callers must not infer success from payload shape alone.
//
// The Client is safe for concurrent use.
type Client struct {
	config      *Config
	httpClient  *http.Client
	queryClient *http.Client
	observer    Observer
}

// NewClient creates a new backend client with default configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a new backend client with custom configuration.
func NewClientWithConfig(config *Config) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	// Fill in defaults for any zero values
	if config.BaseURL == "" {
		config.BaseURL = "http://127.0.0.1:8000/api"
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.QueryTimeout == 0 {
		config.QueryTimeout = 60 * time.Second
	}

	return &Client{
		config:      config,
		httpClient:  &http.Client{Timeout: config.Timeout},
		queryClient: &http.Client{Timeout: config.QueryTimeout},
		observer:    nopObserver{},
	}
}

// SetObserver installs a request/response observer. Passing nil removes it.
func (c *Client) SetObserver(obs Observer) {
	if obs == nil {
		obs = nopObserver{}
	}
	c.observer = obs
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// =============================================================================
// LIVENESS
// =============================================================================

// Ping verifies that the backend is reachable and responding.
func (c *Client) Ping(ctx context.Context) error {
	var resp PingResponse
	if err := c.getJSON(ctx, "/ping", &resp); err != nil {
		return err
	}
	if resp.Status != "ok" {
		return &ClientError{Type: ErrTypeInvalidResponse, Message: "unexpected ping status: " + resp.Status}
	}
	return nil
}

// =============================================================================
// DIRECT TOOLS
// =============================================================================

// AskQuestion sends a free-text question to the AI Q&A endpoint.
func (c *Client) AskQuestion(ctx context.Context, query string) (*QueryResponse, error) {
	var resp QueryResponse
	if err := c.postJSON(ctx, "/ask", QueryRequest{Query: query}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SummarizeDocument uploads a document and returns its summary.
func (c *Client) SummarizeDocument(ctx context.Context, upload *Upload) (*QueryResponse, error) {
	if upload == nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "no file provided"}
	}
	var resp QueryResponse
	if err := c.postMultipart(ctx, c.httpClient, "/documents/summarize", nil, upload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Weather fetches the forecast and adverse-weather periods for coordinates.
func (c *Client) Weather(ctx context.Context, lat, lon float64) (*WeatherResponse, error) {
	var resp WeatherResponse
	path := fmt.Sprintf("/weather/%g/%g", lat, lon)
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// =============================================================================
// TRANSPORT HELPERS
// =============================================================================

// getJSON performs a GET request and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+path, nil)
	if err != nil {
		return &ClientError{Type: ErrTypeUnknown, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Accept", "application/json")

	return c.do(c.httpClient, req, "", out)
}

// postJSON performs a POST request with a JSON body and decodes the response into out.
func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to marshal request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return &ClientError{Type: ErrTypeUnknown, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.do(c.httpClient, req, summarizeBody(payload), out)
}

// Upload carries a file payload for multipart requests. Only the name and
// size are retained by callers after submission; Data is consumed on send.
type Upload struct {
	FieldName string
	Filename  string
	Data      []byte
}

// Size returns the payload size in bytes.
func (u *Upload) Size() int64 {
	return int64(len(u.Data))
}

// postMultipart performs a POST request with multipart form fields and an optional file.
func (c *Client) postMultipart(ctx context.Context, hc *http.Client, path string, fields map[string]string, upload *Upload, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return &ClientError{Type: ErrTypeUnknown, Message: "failed to build form", Cause: err}
		}
	}

	if upload != nil {
		field := upload.FieldName
		if field == "" {
			field = "file"
		}
		part, err := writer.CreateFormFile(field, upload.Filename)
		if err != nil {
			return &ClientError{Type: ErrTypeUnknown, Message: "failed to build form", Cause: err}
		}
		if _, err := part.Write(upload.Data); err != nil {
			return &ClientError{Type: ErrTypeUnknown, Message: "failed to build form", Cause: err}
		}
	}

	if err := writer.Close(); err != nil {
		return &ClientError{Type: ErrTypeUnknown, Message: "failed to build form", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+path, &buf)
	if err != nil {
		return &ClientError{Type: ErrTypeUnknown, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	summary := fmt.Sprintf("multipart %d fields", len(fields))
	if upload != nil {
		summary += fmt.Sprintf(", file %q (%d bytes)", upload.Filename, len(upload.Data))
	}
	return c.do(hc, req, summary, out)
}

// do executes the request, maps transport failures, and decodes the response.
func (c *Client) do(hc *http.Client, req *http.Request, summary string, out any) error {
	start := time.Now()
	c.observer.RequestSent(req.Method, req.URL.Path, summary)

	resp, err := hc.Do(req)
	if err != nil {
		c.observer.ResponseReceived(req.Method, req.URL.Path, 0, 0, time.Since(start))
		return mapTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to read response", Cause: err}
	}
	c.observer.ResponseReceived(req.Method, req.URL.Path, resp.StatusCode, len(body), time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return serverError(resp.StatusCode, body)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}
	return nil
}

// mapTransportError rewrites connection failures into ErrBackendDown and
// surfaces timeouts as ErrTimeout. A caller-cancelled request keeps
// context.Canceled in its chain so callers can tell it from a timeout.
func mapTransportError(err error) error {
	if errors.Is(err, context.Canceled) {
		return &ClientError{Type: ErrTypeCancelled, Message: "request cancelled", Cause: context.Canceled}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return ErrTimeout
	}
	return ErrBackendDown
}

// serverError extracts the server-provided message when the body carries one.
func serverError(status int, body []byte) error {
	// FastAPI wraps error messages in {"detail": "..."}.
	var detail struct {
		Detail string `json:"detail"`
	}
	msg := fmt.Sprintf("request failed: %d %s", status, http.StatusText(status))
	if err := json.Unmarshal(body, &detail); err == nil && detail.Detail != "" {
		msg = detail.Detail
	}
	return &ClientError{Type: ErrTypeServer, Message: msg, Status: status}
}

// summarizeBody truncates a JSON payload for observation logging.
func summarizeBody(payload []byte) string {
	const max = 120
	if len(payload) <= max {
		return string(payload)
	}
	return string(payload[:max]) + "..."
}
