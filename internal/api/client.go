// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

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
	"strings"
	"time"
)

// Configuration constants for the answering service API.
const (
	// DefaultTimeout is the default timeout for API requests.
	DefaultTimeout = 60 * time.Second

	// MaxResponseSize is the maximum allowed response body size.
	// Response size limit prevents memory exhaustion on a misbehaving server.
	MaxResponseSize = 10 * 1024 * 1024 // 10MB limit

	userAgent = "askai/0.1.0"
)

// Endpoint paths on the answering service.
const (
	chatPath        = "/chat"
	documentPath    = "/document-chat"
	uploadPath      = "/upload"
	suggestionsPath = "/suggestions"
)

// PERFORMANCE: Connection pooling reduces TCP handshake overhead.
// Shared HTTP client for all answering service requests.
var sharedHTTPClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
	Timeout: DefaultTimeout,
}

// Error variables for common service errors.
var (
	// ErrNotConfigured indicates the service base URL is not set.
	ErrNotConfigured = errors.New("answering service URL not configured")

	// ErrMalformedResponse indicates a 2xx response missing its required field.
	ErrMalformedResponse = errors.New("malformed service response")
)

// APIError represents a non-2xx response from the answering service.
type APIError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("service error (HTTP %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("service error (HTTP %d)", e.Status)
}

// =============================================================================
// REQUEST/RESPONSE SHAPES
// =============================================================================

// messageRequest is the body for chat, document-chat and suggestion calls.
type messageRequest struct {
	Message string `json:"message"`
}

// answerResponse carries the answer for chat and document-chat calls.
type answerResponse struct {
	Response string `json:"response"`
}

// uploadResponse carries the acknowledgement for an upload.
type uploadResponse struct {
	Message string `json:"message"`
}

// suggestionsResponse carries the follow-up suggestion list.
// The pointer distinguishes a missing field from an empty list: an empty
// list is a valid (if unhelpful) answer, a missing field is a contract
// violation.
type suggestionsResponse struct {
	Suggestions *[]string `json:"suggestions"`
}

// =============================================================================
// CLIENT
// =============================================================================

// Client is a client for the remote answering service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

// NewClient creates a new client for the service at the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: sharedHTTPClient,
		timeout:    DefaultTimeout,
	}
}

// WithTimeout sets the request timeout.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	c.timeout = timeout
	c.httpClient = &http.Client{
		Transport: sharedHTTPClient.Transport,
		Timeout:   timeout,
	}
	return c
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// IsConfigured returns true if the client has a base URL configured.
func (c *Client) IsConfigured() bool {
	return c.baseURL != ""
}

// =============================================================================
// SERVICE CALLS
// =============================================================================

// Chat sends one general chat turn and returns the service's answer.
func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	return c.postForAnswer(ctx, chatPath, message)
}

// QueryDocument sends one turn against the currently uploaded document.
func (c *Client) QueryDocument(ctx context.Context, message string) (string, error) {
	return c.postForAnswer(ctx, documentPath, message)
}

// UploadDocument uploads a document under its display name and returns the
// service's acknowledgement message.
func (c *Client) UploadDocument(ctx context.Context, name string, r io.Reader) (string, error) {
	if !c.IsConfigured() {
		return "", ErrNotConfigured
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", name)
	if err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+uploadPath, &buf)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("User-Agent", userAgent)

	body, err := c.do(req)
	if err != nil {
		return "", err
	}

	var ack uploadResponse
	if err := json.Unmarshal(body, &ack); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if ack.Message == "" {
		return "", fmt.Errorf("%w: missing message field", ErrMalformedResponse)
	}
	return ack.Message, nil
}

// Suggestions fetches follow-up suggestions keyed by the given message.
// The returned list is the raw service list; callers decide what to keep.
func (c *Client) Suggestions(ctx context.Context, message string) ([]string, error) {
	body, err := c.postJSON(ctx, suggestionsPath, messageRequest{Message: message})
	if err != nil {
		return nil, err
	}

	var resp suggestionsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if resp.Suggestions == nil {
		return nil, fmt.Errorf("%w: missing suggestions field", ErrMalformedResponse)
	}
	return *resp.Suggestions, nil
}

// =============================================================================
// INTERNAL HELPERS
// =============================================================================

// postForAnswer posts a message to the given path and extracts the answer
// field, treating an absent or empty answer as malformed.
func (c *Client) postForAnswer(ctx context.Context, path, message string) (string, error) {
	body, err := c.postJSON(ctx, path, messageRequest{Message: message})
	if err != nil {
		return "", err
	}

	var resp answerResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if resp.Response == "" {
		return "", fmt.Errorf("%w: missing response field", ErrMalformedResponse)
	}
	return resp.Response, nil
}

// postJSON marshals the payload, posts it and returns the raw response body.
func (c *Client) postJSON(ctx context.Context, path string, payload any) ([]byte, error) {
	if !c.IsConfigured() {
		return nil, ErrNotConfigured
	}

	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	return c.do(req)
}

// do executes the request and returns the body of a 2xx response.
func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := readResponse(resp)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{Status: resp.StatusCode, Message: errorMessage(body)}
	}
	return body, nil
}

// readResponse reads the response body with a size limit.
func readResponse(resp *http.Response) ([]byte, error) {
	limitedReader := io.LimitReader(resp.Body, MaxResponseSize)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if int64(len(body)) == MaxResponseSize {
		return nil, fmt.Errorf("response exceeded maximum size of %d bytes", MaxResponseSize)
	}
	return body, nil
}

// errorMessage extracts a detail string from an error body, if present.
func errorMessage(body []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	return strings.TrimSpace(string(body))
}
