package tly

import (
	"context"
	"fmt"
	"net/http"
)

// ListTags lists all link tags on the account.
func (c *Client) ListTags(ctx context.Context) (Result, error) {
	return c.do(ctx, apiRequest{method: http.MethodGet, path: "/api/v1/link/tag"})
}

// CreateTag creates a link tag.
func (c *Client) CreateTag(ctx context.Context, tag string) (Result, error) {
	body := map[string]any{"tag": tag}
	return c.do(ctx, apiRequest{method: http.MethodPost, path: "/api/v1/link/tag", body: body})
}

// GetTag fetches one tag by id.
func (c *Client) GetTag(ctx context.Context, tagID int64) (Result, error) {
	return c.do(ctx, apiRequest{method: http.MethodGet, path: fmt.Sprintf("/api/v1/link/tag/%d", tagID)})
}

// UpdateTag renames a tag.
func (c *Client) UpdateTag(ctx context.Context, tagID int64, tag string) (Result, error) {
	body := map[string]any{"tag": tag}
	return c.do(ctx, apiRequest{method: http.MethodPut, path: fmt.Sprintf("/api/v1/link/tag/%d", tagID), body: body})
}

// DeleteTag deletes a tag.
func (c *Client) DeleteTag(ctx context.Context, tagID int64) (Result, error) {
	return c.do(ctx, apiRequest{method: http.MethodDelete, path: fmt.Sprintf("/api/v1/link/tag/%d", tagID)})
}
