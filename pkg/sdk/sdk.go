// Package sdk provides a Go client for the Lotaya generation API.
//
// Every generation tool is reached through one call shape: a JSON POST to
// {ServerURL}/api/{operation}. The response is returned as an opaque Payload;
// typed views can be decoded from it on demand.
//
//	client, err := sdk.New(sdk.Config{ServerURL: "http://localhost:8001"})
//	payload, err := client.Invoke(ctx, "generate-slogan", map[string]any{
//		"brandName": "Acme",
//		"industry":  "technology",
//	})
package sdk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	sdkerrors "github.com/lotayaai/lotaya-io/pkg/sdk/errors"
)

const defaultTimeout = 30 * time.Second

// Config holds configuration for the SDK client.
type Config struct {
	ServerURL  string
	HTTPClient *http.Client  // Optional: custom HTTP client
	Timeout    time.Duration // Optional: defaults to 30s
	UserAgent  string        // Optional
}

// Client is the Lotaya API client. It is safe for concurrent use.
type Client struct {
	http *resty.Client
	base string
}

// New creates a new Lotaya API client.
func New(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.ServerURL), "/")
	if base == "" {
		return nil, fmt.Errorf("ServerURL is required")
	}
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		return nil, fmt.Errorf("ServerURL must be an http(s) URL, got %q", cfg.ServerURL)
	}

	var rc *resty.Client
	if cfg.HTTPClient != nil {
		rc = resty.NewWithClient(cfg.HTTPClient)
	} else {
		rc = resty.New()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	rc.SetBaseURL(base).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")
	if cfg.UserAgent != "" {
		rc.SetHeader("User-Agent", cfg.UserAgent)
	}

	return &Client{http: rc, base: base}, nil
}

// BaseURL returns the server URL the client was configured with.
func (c *Client) BaseURL() string {
	return c.base
}

// Invoke issues POST /api/{operation} with body encoded as JSON and returns
// the parsed response object. Any failure is an *errors.Error.
func (c *Client) Invoke(ctx context.Context, operation string, body any) (Payload, error) {
	operation = strings.Trim(operation, "/")
	if operation == "" {
		return nil, fmt.Errorf("operation is required")
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/api/" + operation)
	if err != nil {
		return nil, sdkerrors.Network(err)
	}

	return decodeObject(resp)
}

// Root calls GET /api/ and returns the service banner.
func (c *Client) Root(ctx context.Context) (Payload, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/api/")
	if err != nil {
		return nil, sdkerrors.Network(err)
	}
	return decodeObject(resp)
}

// StatusCheck is a recorded client ping.
type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// CreateStatusCheck records a status check for clientName.
func (c *Client) CreateStatusCheck(ctx context.Context, clientName string) (*StatusCheck, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"client_name": clientName}).
		Post("/api/status")
	if err != nil {
		return nil, sdkerrors.Network(err)
	}
	if !resp.IsSuccess() {
		return nil, sdkerrors.ParseErrorResponse(resp.StatusCode(), resp.Body())
	}

	var check StatusCheck
	if err := json.Unmarshal(resp.Body(), &check); err != nil {
		return nil, sdkerrors.Malformed(resp.StatusCode(), fmt.Errorf("failed to decode response: %w", err))
	}
	return &check, nil
}

// ListStatusChecks returns the recorded status checks.
func (c *Client) ListStatusChecks(ctx context.Context) ([]StatusCheck, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/api/status")
	if err != nil {
		return nil, sdkerrors.Network(err)
	}
	if !resp.IsSuccess() {
		return nil, sdkerrors.ParseErrorResponse(resp.StatusCode(), resp.Body())
	}

	var checks []StatusCheck
	if err := json.Unmarshal(resp.Body(), &checks); err != nil {
		return nil, sdkerrors.Malformed(resp.StatusCode(), fmt.Errorf("failed to decode response: %w", err))
	}
	return checks, nil
}

// HealthResponse represents the server health check response.
type HealthResponse struct {
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   string           `json:"version"`
	Checks    map[string]Check `json:"checks"`
}

// Check represents an individual health check result.
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Health calls GET /health. A 503 still carries a decodable body and is
// returned without error so callers can inspect the failing checks.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/health")
	if err != nil {
		return nil, sdkerrors.Network(err)
	}
	if !resp.IsSuccess() && resp.StatusCode() != http.StatusServiceUnavailable {
		return nil, sdkerrors.ParseErrorResponse(resp.StatusCode(), resp.Body())
	}

	var health HealthResponse
	if err := json.Unmarshal(resp.Body(), &health); err != nil {
		return nil, sdkerrors.Malformed(resp.StatusCode(), fmt.Errorf("failed to decode response: %w", err))
	}
	return &health, nil
}

func decodeObject(resp *resty.Response) (Payload, error) {
	if !resp.IsSuccess() {
		return nil, sdkerrors.ParseErrorResponse(resp.StatusCode(), resp.Body())
	}

	var payload Payload
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, sdkerrors.Malformed(resp.StatusCode(), fmt.Errorf("failed to decode response: %w", err))
	}
	if payload == nil {
		return nil, sdkerrors.Malformed(resp.StatusCode(), fmt.Errorf("response body is not a JSON object"))
	}
	return payload, nil
}
