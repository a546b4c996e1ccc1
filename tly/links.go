package tly

import (
	"context"
	"net/http"
)

// ShortenOptions are the optional fields of CreateShortLink. Zero values
// are omitted from the request body.
type ShortenOptions struct {
	Domain      string
	ExpireAt    Timestamp
	Description string
	PublicStats *bool
	Meta        any // any JSON value, not only an object
}

// CreateShortLink creates a new short link for longURL.
func (c *Client) CreateShortLink(ctx context.Context, longURL string, opts *ShortenOptions) (Result, error) {
	body := map[string]any{"long_url": longURL}
	if opts != nil {
		setString(body, "domain", opts.Domain)
		setTimestamp(body, "expire_at_datetime", opts.ExpireAt)
		setString(body, "description", opts.Description)
		if opts.PublicStats != nil {
			body["public_stats"] = *opts.PublicStats
		}
		if opts.Meta != nil {
			body["meta"] = opts.Meta
		}
	}
	return c.do(ctx, apiRequest{method: http.MethodPost, path: "/api/v1/link/shorten", body: body})
}

// GetShortLink fetches a short link record.
func (c *Client) GetShortLink(ctx context.Context, shortURL string) (Result, error) {
	params := Params{}
	params.Set("short_url", shortURL)
	return c.do(ctx, apiRequest{method: http.MethodGet, path: "/api/v1/link", params: params})
}

// UpdateLinkOptions are the optional fields of UpdateShortLink.
type UpdateLinkOptions struct {
	LongURL     string
	ExpireAt    Timestamp
	Description string
	PublicStats *bool
	Meta        any
}

// UpdateShortLink updates an existing short link.
func (c *Client) UpdateShortLink(ctx context.Context, shortURL string, opts *UpdateLinkOptions) (Result, error) {
	body := map[string]any{"short_url": shortURL}
	if opts != nil {
		setString(body, "long_url", opts.LongURL)
		setTimestamp(body, "expire_at_datetime", opts.ExpireAt)
		setString(body, "description", opts.Description)
		if opts.PublicStats != nil {
			body["public_stats"] = *opts.PublicStats
		}
		if opts.Meta != nil {
			body["meta"] = opts.Meta
		}
	}
	return c.do(ctx, apiRequest{method: http.MethodPut, path: "/api/v1/link", body: body})
}

// DeleteShortLink deletes a short link.
func (c *Client) DeleteShortLink(ctx context.Context, shortURL string) (Result, error) {
	body := map[string]any{"short_url": shortURL}
	return c.do(ctx, apiRequest{method: http.MethodDelete, path: "/api/v1/link", body: body})
}

// ExpandOptions carry the optional password for ExpandShortLink. A nil
// Password omits the field; an empty one is still sent, since the API
// treats a blank password as an attempt.
type ExpandOptions struct {
	Password *string
}

// ExpandShortLink resolves a short link back to its destination.
func (c *Client) ExpandShortLink(ctx context.Context, shortURL string, opts *ExpandOptions) (Result, error) {
	body := map[string]any{"short_url": shortURL}
	if opts != nil && opts.Password != nil {
		body["password"] = *opts.Password
	}
	return c.do(ctx, apiRequest{method: http.MethodPost, path: "/api/v1/link/expand", body: body})
}

// ListLinksOptions narrow a ListShortLinks call. Id lists are sent in the
// bracket-indexed form the API expects.
type ListLinksOptions struct {
	Search    string
	TagIDs    []int64
	PixelIDs  []int64
	Domains   []int64
	StartDate Timestamp
	EndDate   Timestamp
}

// ListShortLinks lists short links on the account.
func (c *Client) ListShortLinks(ctx context.Context, opts *ListLinksOptions) (Result, error) {
	params := Params{}
	if opts != nil {
		if opts.Search != "" {
			params.Set("search", opts.Search)
		}
		params.SetIndexed("tag_ids", opts.TagIDs)
		params.SetIndexed("pixel_ids", opts.PixelIDs)
		params.SetIndexed("domains", opts.Domains)
		setTimestampParam(&params, "start_date", opts.StartDate)
		setTimestampParam(&params, "end_date", opts.EndDate)
	}
	return c.do(ctx, apiRequest{method: http.MethodGet, path: "/api/v1/link/list", params: params})
}

// BulkShortenOptions are the optional fields of BulkShortenLinks. Tags and
// Pixels are included whenever non-nil, even when empty.
type BulkShortenOptions struct {
	Domain string
	Tags   []int64
	Pixels []int64
}

// BulkShortenLinks shortens many links in one call. The API accepts either
// a list of link objects or a raw string payload, so links is passed
// through as-is.
func (c *Client) BulkShortenLinks(ctx context.Context, links any, opts *BulkShortenOptions) (Result, error) {
	body := map[string]any{"links": links}
	if opts != nil {
		setString(body, "domain", opts.Domain)
		if opts.Tags != nil {
			body["tags"] = opts.Tags
		}
		if opts.Pixels != nil {
			body["pixels"] = opts.Pixels
		}
	}
	return c.do(ctx, apiRequest{method: http.MethodPost, path: "/api/v1/link/bulk", body: body})
}

// BulkUpdateOptions are the optional fields of BulkUpdateLinks.
type BulkUpdateOptions struct {
	Tags   []int64
	Pixels []int64
}

// BulkUpdateLinks updates many links in one call.
func (c *Client) BulkUpdateLinks(ctx context.Context, links any, opts *BulkUpdateOptions) (Result, error) {
	body := map[string]any{"links": links}
	if opts != nil {
		if opts.Tags != nil {
			body["tags"] = opts.Tags
		}
		if opts.Pixels != nil {
			body["pixels"] = opts.Pixels
		}
	}
	return c.do(ctx, apiRequest{method: http.MethodPost, path: "/api/v1/link/bulk/update", body: body})
}

// StatsOptions bound a stats query to a date range.
type StatsOptions struct {
	StartDate Timestamp
	EndDate   Timestamp
}

// LinkStats fetches click statistics for a short link.
func (c *Client) LinkStats(ctx context.Context, shortURL string, opts *StatsOptions) (Result, error) {
	params := Params{}
	params.Set("short_url", shortURL)
	if opts != nil {
		setTimestampParam(&params, "start_date", opts.StartDate)
		setTimestampParam(&params, "end_date", opts.EndDate)
	}
	return c.do(ctx, apiRequest{method: http.MethodGet, path: "/api/v1/link/stats", params: params})
}
