package tly

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallDispatch(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]any
	var requests int

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotBody = nil
		if r.Body != nil {
			json.NewDecoder(r.Body).Decode(&gotBody)
		}
		json.NewEncoder(w).Encode(map[string]any{"ok": true})
	})
	ctx := context.Background()

	t.Run("create_tag", func(t *testing.T) {
		_, err := client.Call(ctx, "create_tag", map[string]any{"tag": "fall2026"})
		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "/api/v1/link/tag", gotPath)
		assert.Equal(t, map[string]any{"tag": "fall2026"}, gotBody)
	})

	t.Run("id interpolated into path", func(t *testing.T) {
		_, err := client.Call(ctx, "delete_utm_preset", map[string]any{"preset_id": float64(7)})
		require.NoError(t, err)
		assert.Equal(t, http.MethodDelete, gotMethod)
		assert.Equal(t, "/api/v1/link/utm-preset/7", gotPath)
	})

	t.Run("id accepted as numeric string", func(t *testing.T) {
		_, err := client.Call(ctx, "get_tag", map[string]any{"tag_id": "42"})
		require.NoError(t, err)
		assert.Equal(t, "/api/v1/link/tag/42", gotPath)
	})

	t.Run("list_onelinks default page", func(t *testing.T) {
		_, err := client.Call(ctx, "list_onelinks", map[string]any{})
		require.NoError(t, err)
		assert.Equal(t, "/api/v1/onelink/list", gotPath)
	})

	t.Run("no-argument operation", func(t *testing.T) {
		_, err := client.Call(ctx, "list_pixels", nil)
		require.NoError(t, err)
		assert.Equal(t, http.MethodGet, gotMethod)
		assert.Equal(t, "/api/v1/link/pixel", gotPath)
	})

	t.Run("meta passes through untouched", func(t *testing.T) {
		_, err := client.Call(ctx, "create_short_link", map[string]any{
			"long_url": "https://example.com",
			"meta":     []any{[]any{}},
		})
		require.NoError(t, err)
		assert.Equal(t, []any{[]any{}}, gotBody["meta"])
	})

	t.Run("empty expand password is sent", func(t *testing.T) {
		_, err := client.Call(ctx, "expand_short_link", map[string]any{
			"short_url": "https://t.ly/abc",
			"password":  "",
		})
		require.NoError(t, err)
		assert.Equal(t, "", gotBody["password"])
	})

	t.Run("absent expand password is omitted", func(t *testing.T) {
		_, err := client.Call(ctx, "expand_short_link", map[string]any{
			"short_url": "https://t.ly/abc",
		})
		require.NoError(t, err)
		assert.NotContains(t, gotBody, "password")
	})

	t.Run("string pixel record id kept verbatim in body", func(t *testing.T) {
		_, err := client.Call(ctx, "update_pixel", map[string]any{
			"pixel_record_id": "12",
			"name":            "fb",
			"pixel_id":        "987",
			"pixel_type":      "facebook",
		})
		require.NoError(t, err)
		assert.Equal(t, "/api/v1/link/pixel/12", gotPath)
		assert.Equal(t, "12", gotBody["id"])
	})
}

func TestCallValidationHappensBeforeAnyRequest(t *testing.T) {
	var requests int
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
	})
	ctx := context.Background()

	tests := []struct {
		name    string
		op      string
		args    map[string]any
		wantErr error
	}{
		{
			name:    "unknown operation",
			op:      "make_coffee",
			args:    map[string]any{},
			wantErr: ErrUnknownOperation,
		},
		{
			name:    "missing required argument",
			op:      "create_short_link",
			args:    map[string]any{},
			wantErr: ErrMissingArgument,
		},
		{
			name:    "wrong argument type",
			op:      "create_tag",
			args:    map[string]any{"tag": 12},
			wantErr: ErrInvalidArgument,
		},
		{
			name:    "fractional id",
			op:      "get_tag",
			args:    map[string]any{"tag_id": 1.5},
			wantErr: ErrInvalidArgument,
		},
		{
			name:    "id list with bad element",
			op:      "list_short_links",
			args:    map[string]any{"tag_ids": []any{true}},
			wantErr: ErrInvalidArgument,
		},
		{
			name:    "null required argument",
			op:      "delete_short_link",
			args:    map[string]any{"short_url": nil},
			wantErr: ErrMissingArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.Call(ctx, tt.op, tt.args)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Zero(t, requests, "validation failures must not reach the network")
}
