package tly

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient("test-token", zerolog.Nop(), WithBaseURL(server.URL))
	require.NoError(t, err)
	t.Cleanup(client.Close)
	return client, server
}

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("missing token", func(t *testing.T) {
		_, err := NewClient("", logger)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingToken)
	})

	t.Run("invalid timeout", func(t *testing.T) {
		_, err := NewClient("token", logger, WithTimeout(-time.Second))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidTimeout)
	})

	t.Run("defaults", func(t *testing.T) {
		client, err := NewClient("token", logger)
		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL, client.baseURL)
		assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
		assert.Equal(t, "Bearer token", client.headers["Authorization"])
		assert.Equal(t, defaultUserAgent, client.headers["User-Agent"])
	})

	t.Run("trailing slash stripped", func(t *testing.T) {
		client, err := NewClient("token", logger, WithBaseURL("https://example.com/"))
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", client.baseURL)
	})

	t.Run("custom http client", func(t *testing.T) {
		custom := &http.Client{Timeout: 10 * time.Second}
		client, err := NewClient("token", logger, WithHTTPClient(custom))
		require.NoError(t, err)
		assert.Equal(t, custom, client.httpClient)
	})
}

func TestCreateShortLink(t *testing.T) {
	var gotMethod, gotPath, gotAuth, gotContentType string
	var gotBody map[string]any

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"short_url": "https://t.ly/abc"})
	})

	result, err := client.CreateShortLink(context.Background(), "https://example.com", &ShortenOptions{
		Description: "d",
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/v1/link/shorten", gotPath)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, map[string]any{
		"long_url":    "https://example.com",
		"description": "d",
	}, gotBody)

	require.Equal(t, ResultJSON, result.Kind)
	value, ok := result.Value.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "https://t.ly/abc", value["short_url"])
}

func TestCreateShortLinkOmitsUnsetFields(t *testing.T) {
	var gotBody map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]any{})
	})

	_, err := client.CreateShortLink(context.Background(), "https://example.com", nil)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"long_url": "https://example.com"}, gotBody)
}

func TestCreateShortLinkAllowsNonMappingMeta(t *testing.T) {
	var gotBody map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]any{})
	})

	_, err := client.CreateShortLink(context.Background(), "https://example.com", &ShortenOptions{
		Meta: []any{[]any{}},
	})
	require.NoError(t, err)

	assert.Equal(t, []any{[]any{}}, gotBody["meta"])
}

func TestUpdateShortLinkSendsTimestamp(t *testing.T) {
	var gotBody map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/link", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]any{})
	})

	expire := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	_, err := client.UpdateShortLink(context.Background(), "https://t.ly/abc", &UpdateLinkOptions{
		ExpireAt: AtTime(expire),
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"short_url":          "https://t.ly/abc",
		"expire_at_datetime": "2026-09-01T12:00:00Z",
	}, gotBody)
}

func TestDeleteShortLinkBody(t *testing.T) {
	var gotBody map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/link", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
	})

	result, err := client.DeleteShortLink(context.Background(), "https://t.ly/abc")
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"short_url": "https://t.ly/abc"}, gotBody)
	assert.Equal(t, ResultEmpty, result.Kind)
}

func TestListShortLinksIndexedParams(t *testing.T) {
	var gotQuery string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	})

	_, err := client.ListShortLinks(context.Background(), &ListLinksOptions{
		TagIDs:   []int64{1, 2},
		PixelIDs: []int64{8},
		Domains:  []int64{3, 4},
	})
	require.NoError(t, err)

	assert.Equal(t,
		"tag_ids%5B0%5D=1&tag_ids%5B1%5D=2&pixel_ids%5B0%5D=8&domains%5B0%5D=3&domains%5B1%5D=4",
		gotQuery)
}

func TestAPIErrorMessages(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "message field",
			status:      422,
			body:        `{"message":"Validation failed"}`,
			wantMessage: "Validation failed",
		},
		{
			name:        "error field",
			status:      400,
			body:        `{"error":"bad request"}`,
			wantMessage: "bad request",
		},
		{
			name:        "errors mapping",
			status:      422,
			body:        `{"errors":{"long_url":["required"]}}`,
			wantMessage: "map[long_url:[required]]",
		},
		{
			name:        "non-object payload",
			status:      500,
			body:        `"oops"`,
			wantMessage: "oops",
		},
		{
			name:        "plain text body",
			status:      502,
			body:        "bad gateway",
			wantMessage: "bad gateway",
		},
		{
			name:        "empty body",
			status:      503,
			body:        "",
			wantMessage: "Request failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			})

			_, err := client.ListTags(context.Background())
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, tt.body, apiErr.Body)
		})
	}
}

func TestEmptyBodyIsEmptyResult(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	result, err := client.GetShortLink(context.Background(), "https://t.ly/abc")
	require.NoError(t, err)

	assert.Equal(t, ResultEmpty, result.Kind)
	assert.Equal(t, map[string]any{}, result.Decoded())
}

func TestTextBodyPassesThrough(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		io.WriteString(w, "  pong \n")
	})

	result, err := client.GetShortLink(context.Background(), "https://t.ly/abc")
	require.NoError(t, err)

	require.Equal(t, ResultText, result.Kind)
	assert.Equal(t, "pong", result.Text)
}

func TestQRCodeBinary(t *testing.T) {
	var gotAccept string
	var gotQuery string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("\x89PNG"))
	})

	result, err := client.QRCode(context.Background(), "https://t.ly/abc", "", "")
	require.NoError(t, err)

	assert.Equal(t, "image/png,*/*", gotAccept)
	assert.Equal(t, "short_url=https%3A%2F%2Ft.ly%2Fabc&output=image&format=png", gotQuery)
	require.Equal(t, ResultBinary, result.Kind)
	assert.Equal(t, []byte("\x89PNG"), result.Bytes)
}

func TestQRCodeBase64IsJSON(t *testing.T) {
	var gotAccept string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		json.NewEncoder(w).Encode(map[string]any{"base64": "data:image/png;base64,AAAA"})
	})

	result, err := client.QRCode(context.Background(), "https://t.ly/abc", QROutputBase64, QRFormatPNG)
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotAccept)
	require.Equal(t, ResultJSON, result.Kind)
	value, ok := result.Value.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, value, "base64")
}

func TestTransportErrorIsNotAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client, err := NewClient("token", zerolog.Nop(), WithBaseURL(server.URL))
	require.NoError(t, err)
	server.Close()

	_, err = client.ListTags(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestPixelUpdateIncludesRecordID(t *testing.T) {
	var gotBody map[string]any
	var gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]any{})
	})

	_, err := client.UpdatePixel(context.Background(), 12, Pixel{
		Name:      "fb",
		PixelID:   "987",
		PixelType: "facebook",
	})
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/link/pixel/12", gotPath)
	assert.Equal(t, map[string]any{
		"id":         float64(12),
		"name":       "fb",
		"pixel_id":   "987",
		"pixel_type": "facebook",
	}, gotBody)
}

func TestExpandShortLinkPassword(t *testing.T) {
	expand := func(t *testing.T, opts *ExpandOptions) map[string]any {
		t.Helper()
		var gotBody map[string]any
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			json.NewEncoder(w).Encode(map[string]any{"long_url": "https://example.com"})
		})

		_, err := client.ExpandShortLink(context.Background(), "https://t.ly/abc", opts)
		require.NoError(t, err)
		return gotBody
	}

	t.Run("omitted when unset", func(t *testing.T) {
		body := expand(t, nil)
		assert.NotContains(t, body, "password")
	})

	t.Run("empty password still sent", func(t *testing.T) {
		body := expand(t, &ExpandOptions{Password: String("")})
		assert.Equal(t, "", body["password"])
	})

	t.Run("password sent", func(t *testing.T) {
		body := expand(t, &ExpandOptions{Password: String("hunter2")})
		assert.Equal(t, "hunter2", body["password"])
	})
}

func TestUTMPresetOmitsOptionalFields(t *testing.T) {
	var gotBody map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]any{})
	})

	_, err := client.CreateUTMPreset(context.Background(), UTMPreset{
		Name:     "fall",
		Source:   "newsletter",
		Medium:   "email",
		Campaign: "fall2026",
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"name":     "fall",
		"source":   "newsletter",
		"medium":   "email",
		"campaign": "fall2026",
	}, gotBody)
}

func TestOneLinkStatsPaths(t *testing.T) {
	var gotMethod, gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]any{})
	})

	_, err := client.OneLinkStats(context.Background(), "https://t.ly/abc", nil)
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "/api/v1/onelink/stats", gotPath)

	_, err = client.DeleteOneLinkStats(context.Background(), "https://t.ly/abc")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/v1/onelink/stat", gotPath)
}

func TestBulkShortenIncludesEmptyLists(t *testing.T) {
	var gotBody map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/link/bulk", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]any{})
	})

	links := []map[string]any{{"long_url": "https://example.com"}}
	_, err := client.BulkShortenLinks(context.Background(), links, &BulkShortenOptions{
		Tags: []int64{},
	})
	require.NoError(t, err)

	assert.Contains(t, gotBody, "tags")
	assert.Equal(t, []any{}, gotBody["tags"])
	assert.NotContains(t, gotBody, "pixels")
	assert.NotContains(t, gotBody, "domain")
}
