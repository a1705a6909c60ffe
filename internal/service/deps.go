package service

//go:generate mockgen -source=deps.go -destination=mocks/mock_deps.go -package=mocks

import (
	"context"
	"time"

	"urlpro/internal/types"
)

// LinkCache is the redirect cache. Misses are reported as redis.Nil.
type LinkCache interface {
	Get(ctx context.Context, slug string) (*types.LinkCache, error)
	Set(ctx context.Context, slug string, link *types.LinkCache, expiration time.Duration) error
	Delete(ctx context.Context, slugs []string) error
}

// ClickSink receives recorded clicks for asynchronous export.
type ClickSink interface {
	PushClick(ev types.ClickEvent)
}

// PageInspector extracts title and description from a target page.
type PageInspector interface {
	Inspect(ctx context.Context, pageURL string) types.PageMeta
}
