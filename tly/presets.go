package tly

import (
	"context"
	"fmt"
	"net/http"
)

// UTMPreset is a reusable bundle of campaign-tracking parameters. Name,
// Source, Medium and Campaign are required by the API; Content and Term are
// optional and omitted when empty.
type UTMPreset struct {
	Name     string
	Source   string
	Medium   string
	Campaign string
	Content  string
	Term     string
}

func (p UTMPreset) body() map[string]any {
	body := map[string]any{
		"name":     p.Name,
		"source":   p.Source,
		"medium":   p.Medium,
		"campaign": p.Campaign,
	}
	setString(body, "content", p.Content)
	setString(body, "term", p.Term)
	return body
}

// CreateUTMPreset creates a UTM preset.
func (c *Client) CreateUTMPreset(ctx context.Context, preset UTMPreset) (Result, error) {
	return c.do(ctx, apiRequest{method: http.MethodPost, path: "/api/v1/link/utm-preset", body: preset.body()})
}

// ListUTMPresets lists all UTM presets on the account.
func (c *Client) ListUTMPresets(ctx context.Context) (Result, error) {
	return c.do(ctx, apiRequest{method: http.MethodGet, path: "/api/v1/link/utm-preset"})
}

// GetUTMPreset fetches one UTM preset by id.
func (c *Client) GetUTMPreset(ctx context.Context, presetID int64) (Result, error) {
	return c.do(ctx, apiRequest{method: http.MethodGet, path: fmt.Sprintf("/api/v1/link/utm-preset/%d", presetID)})
}

// UpdateUTMPreset replaces a UTM preset.
func (c *Client) UpdateUTMPreset(ctx context.Context, presetID int64, preset UTMPreset) (Result, error) {
	return c.do(ctx, apiRequest{method: http.MethodPut, path: fmt.Sprintf("/api/v1/link/utm-preset/%d", presetID), body: preset.body()})
}

// DeleteUTMPreset deletes a UTM preset.
func (c *Client) DeleteUTMPreset(ctx context.Context, presetID int64) (Result, error) {
	return c.do(ctx, apiRequest{method: http.MethodDelete, path: fmt.Sprintf("/api/v1/link/utm-preset/%d", presetID)})
}
