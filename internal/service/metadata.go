package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"

	"urlpro/internal/types"
)

const maxPageBytes = 2 << 20

// MetadataFetcher reads <title> and the description meta tag of a page.
type MetadataFetcher struct {
	client  *http.Client
	timeout time.Duration
}

func NewMetadataFetcher(timeout time.Duration) *MetadataFetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &MetadataFetcher{
		client:  &http.Client{Timeout: timeout},
		timeout: timeout,
	}
}

// Inspect returns empty metadata on any failure.
func (f *MetadataFetcher) Inspect(ctx context.Context, pageURL string) types.PageMeta {
	meta, err := f.fetch(ctx, pageURL)
	if err != nil {
		logrus.WithError(err).WithField("url", pageURL).Debug("metadata fetch failed")
		return types.PageMeta{}
	}
	return meta
}

func (f *MetadataFetcher) fetch(ctx context.Context, pageURL string) (types.PageMeta, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return types.PageMeta{}, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; urlpro-preview/1.0)")

	resp, err := f.client.Do(req)
	if err != nil {
		return types.PageMeta{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return types.PageMeta{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return types.PageMeta{}, err
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title, _ = doc.Find(`meta[property="og:title"]`).Attr("content")
	}
	desc, _ := doc.Find(`meta[name="description"]`).Attr("content")
	if strings.TrimSpace(desc) == "" {
		desc, _ = doc.Find(`meta[property="og:description"]`).Attr("content")
	}

	return types.PageMeta{
		Title:       truncate(strings.TrimSpace(title), maxTitleLen),
		Description: truncate(strings.TrimSpace(desc), maxDescriptionLen),
	}, nil
}
