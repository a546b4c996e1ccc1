package tly

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultDecoded(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   any
	}{
		{
			name:   "empty decodes to empty map",
			result: Result{Kind: ResultEmpty},
			want:   map[string]any{},
		},
		{
			name:   "json",
			result: Result{Kind: ResultJSON, Value: map[string]any{"short_url": "https://t.ly/abc"}},
			want:   map[string]any{"short_url": "https://t.ly/abc"},
		},
		{
			name:   "text",
			result: Result{Kind: ResultText, Text: "pong"},
			want:   "pong",
		},
		{
			name:   "binary",
			result: Result{Kind: ResultBinary, Bytes: []byte("\x89PNG")},
			want:   []byte("\x89PNG"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.Decoded())
		})
	}
}

func TestResultKindString(t *testing.T) {
	assert.Equal(t, "empty", ResultEmpty.String())
	assert.Equal(t, "json", ResultJSON.String())
	assert.Equal(t, "text", ResultText.String())
	assert.Equal(t, "binary", ResultBinary.String())
	assert.Equal(t, "unknown", ResultKind(99).String())
}
