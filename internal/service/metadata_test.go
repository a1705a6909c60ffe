package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"urlpro/internal/types"
)

func TestMetadataFetcherInspect(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   types.PageMeta
	}{
		{
			name:   "title and description",
			status: http.StatusOK,
			body:   `<html><head><title> Example Domain </title><meta name="description" content="For docs"></head></html>`,
			want:   types.PageMeta{Title: "Example Domain", Description: "For docs"},
		},
		{
			name:   "open graph fallback",
			status: http.StatusOK,
			body:   `<html><head><meta property="og:title" content="OG Title"><meta property="og:description" content="OG desc"></head></html>`,
			want:   types.PageMeta{Title: "OG Title", Description: "OG desc"},
		},
		{
			name:   "long title truncated",
			status: http.StatusOK,
			body:   "<title>" + strings.Repeat("x", 250) + "</title>",
			want:   types.PageMeta{Title: strings.Repeat("x", maxTitleLen)},
		},
		{
			name:   "error status",
			status: http.StatusInternalServerError,
			body:   "<title>Oops</title>",
			want:   types.PageMeta{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			got := NewMetadataFetcher(time.Second).Inspect(context.Background(), srv.URL)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMetadataFetcherTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	got := NewMetadataFetcher(50 * time.Millisecond).Inspect(context.Background(), srv.URL)
	assert.Equal(t, types.PageMeta{}, got)
}

func TestQRCodeBase64(t *testing.T) {
	s, err := QRCodeBase64("http://sho.rt/abc123", 0)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(s, "iVBORw0KGgo"))
}
