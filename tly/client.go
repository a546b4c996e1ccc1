package tly

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the canonical address of the T.LY API.
	DefaultBaseURL = "https://api.t.ly"

	// DefaultTimeout bounds each exchange. There are no retries; a timed
	// out request fails immediately.
	DefaultTimeout = 30 * time.Second

	defaultUserAgent = "tly-go/0.1.0"
)

// Client talks to the T.LY URL shortener API. Configuration is immutable
// after construction; a Client is safe for concurrent use to the extent
// the underlying http.Client is.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
	headers    map[string]string
}

// NewClient creates a new T.LY client. The API token is required;
// everything else has a default. No network traffic happens until the
// first call.
func NewClient(token string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.timeout <= 0 {
		return nil, ErrInvalidTimeout
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: o.timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(o.baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
		headers: map[string]string{
			"Authorization": "Bearer " + token,
			"Accept":        "application/json",
			"Content-Type":  "application/json",
			"User-Agent":    o.userAgent,
		},
	}, nil
}

// Close releases idle connections held by the underlying transport.
// In-flight requests and other clients sharing the transport are
// unaffected.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// apiRequest describes a single exchange against the API. One is built
// fresh per call and never reused.
type apiRequest struct {
	method       string
	path         string
	params       Params
	body         map[string]any
	headers      map[string]string
	expectBinary bool
}

// do is the single chokepoint every operation funnels through.
func (c *Client) do(ctx context.Context, r apiRequest) (Result, error) {
	path := r.path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	requestURL := c.baseURL + path
	if len(r.params) > 0 {
		requestURL += "?" + r.params.Encode()
	}

	var bodyReader io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return Result{}, fmt.Errorf("failed to encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, requestURL, bodyReader)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create request: %w", err)
	}
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}
	for key, value := range r.headers {
		req.Header.Set(key, value)
	}

	c.logger.Debug().
		Str("method", r.method).
		Str("url", requestURL).
		Msg("Making T.LY API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return Result{}, &APIError{
			StatusCode: resp.StatusCode,
			Message:    extractErrorMessage(body),
			Body:       string(body),
		}
	}

	return parseResponse(resp.Header.Get("Content-Type"), body, r.expectBinary)
}

// extractErrorMessage pulls a human-readable message out of an error body.
// Preference order on a JSON object: message, error, errors, then the whole
// decoded payload. Non-JSON bodies are used verbatim.
func extractErrorMessage(body []byte) string {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		if text := string(body); text != "" {
			return text
		}
		return "Request failed"
	}

	if object, ok := payload.(map[string]any); ok {
		if message, ok := object["message"].(string); ok {
			return message
		}
		if message, ok := object["error"].(string); ok {
			return message
		}
		switch errs := object["errors"].(type) {
		case map[string]any, []any:
			return fmt.Sprintf("%v", errs)
		}
	}
	return fmt.Sprintf("%v", payload)
}

// parseResponse normalizes a success body into one of the four result
// kinds. Binary wins unconditionally when requested, regardless of the
// declared content type.
func parseResponse(contentType string, body []byte, expectBinary bool) (Result, error) {
	if expectBinary {
		return Result{Kind: ResultBinary, Bytes: body}, nil
	}

	text := strings.TrimSpace(string(body))
	if text == "" {
		return Result{Kind: ResultEmpty}, nil
	}

	if strings.Contains(strings.ToLower(contentType), "application/json") ||
		strings.HasPrefix(text, "{") || strings.HasPrefix(text, "[") {
		var value any
		if err := json.Unmarshal([]byte(text), &value); err != nil {
			return Result{}, fmt.Errorf("failed to decode response: %w", err)
		}
		return Result{Kind: ResultJSON, Value: value}, nil
	}

	return Result{Kind: ResultText, Text: text}, nil
}
