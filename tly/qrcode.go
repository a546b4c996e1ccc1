package tly

import (
	"context"
	"net/http"
)

// QR code output modes and image formats accepted by the API.
const (
	QROutputImage  = "image"
	QROutputBase64 = "base64"

	QRFormatPNG = "png"
	QRFormatEPS = "eps"
)

// QRCode fetches the QR code for a short link. With QROutputImage the raw
// image bytes come back as a binary result and an image Accept header is
// sent; with QROutputBase64 the response is ordinary JSON carrying a data
// URI. Empty output and format fall back to image/png.
func (c *Client) QRCode(ctx context.Context, shortURL, output, format string) (Result, error) {
	if output == "" {
		output = QROutputImage
	}
	if format == "" {
		format = QRFormatPNG
	}

	params := Params{}
	params.Set("short_url", shortURL)
	params.Set("output", output)
	params.Set("format", format)

	r := apiRequest{method: http.MethodGet, path: "/api/v1/link/qr-code", params: params}
	if output == QROutputImage {
		r.expectBinary = true
		r.headers = map[string]string{"Accept": "image/png,*/*"}
	}
	return c.do(ctx, r)
}

// QRCodeOptions are the optional styling fields of UpdateQRCode.
type QRCodeOptions struct {
	Image           string
	BackgroundColor string
	CornerDotsColor string
	DotsColor       string
	DotsStyle       string
	CornerStyle     string
}

// UpdateQRCode restyles the QR code of a short link.
func (c *Client) UpdateQRCode(ctx context.Context, shortURL string, opts *QRCodeOptions) (Result, error) {
	body := map[string]any{"short_url": shortURL}
	if opts != nil {
		setString(body, "image", opts.Image)
		setString(body, "background_color", opts.BackgroundColor)
		setString(body, "corner_dots_color", opts.CornerDotsColor)
		setString(body, "dots_color", opts.DotsColor)
		setString(body, "dots_style", opts.DotsStyle)
		setString(body, "corner_style", opts.CornerStyle)
	}
	return c.do(ctx, apiRequest{method: http.MethodPut, path: "/api/v1/link/qr-code", body: body})
}
