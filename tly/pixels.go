package tly

import (
	"context"
	"fmt"
	"net/http"
)

// Pixel is a tracking beacon attachable to links. PixelID is the provider's
// identifier (e.g. a Facebook pixel id), PixelType names the provider.
type Pixel struct {
	Name      string
	PixelID   string
	PixelType string
}

// CreatePixel registers a tracking pixel.
func (c *Client) CreatePixel(ctx context.Context, pixel Pixel) (Result, error) {
	body := map[string]any{
		"name":       pixel.Name,
		"pixel_id":   pixel.PixelID,
		"pixel_type": pixel.PixelType,
	}
	return c.do(ctx, apiRequest{method: http.MethodPost, path: "/api/v1/link/pixel", body: body})
}

// ListPixels lists all tracking pixels on the account.
func (c *Client) ListPixels(ctx context.Context) (Result, error) {
	return c.do(ctx, apiRequest{method: http.MethodGet, path: "/api/v1/link/pixel"})
}

// GetPixel fetches one pixel record by id.
func (c *Client) GetPixel(ctx context.Context, pixelID int64) (Result, error) {
	return c.do(ctx, apiRequest{method: http.MethodGet, path: fmt.Sprintf("/api/v1/link/pixel/%d", pixelID)})
}

// UpdatePixel replaces a pixel record. recordID is the T.LY record id, not
// the provider's pixel id; the API wants it in both the path and the body.
func (c *Client) UpdatePixel(ctx context.Context, recordID int64, pixel Pixel) (Result, error) {
	return c.updatePixel(ctx, recordID, recordID, pixel)
}

// updatePixel takes the body id separately so the dynamic dispatcher can
// echo the caller's own spelling of the record id (a string stays a
// string) while the path always carries the numeric form.
func (c *Client) updatePixel(ctx context.Context, pathID int64, bodyID any, pixel Pixel) (Result, error) {
	body := map[string]any{
		"id":         bodyID,
		"name":       pixel.Name,
		"pixel_id":   pixel.PixelID,
		"pixel_type": pixel.PixelType,
	}
	return c.do(ctx, apiRequest{method: http.MethodPut, path: fmt.Sprintf("/api/v1/link/pixel/%d", pathID), body: body})
}

// DeletePixel deletes a pixel record.
func (c *Client) DeletePixel(ctx context.Context, pixelID int64) (Result, error) {
	return c.do(ctx, apiRequest{method: http.MethodDelete, path: fmt.Sprintf("/api/v1/link/pixel/%d", pixelID)})
}
