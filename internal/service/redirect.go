package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"urlpro/internal/database"
	"urlpro/internal/types"
	"urlpro/internal/visitor"
)

// Redirector resolves slugs to targets and records a click for every
// successful redirect.
type Redirector struct {
	links   *Shortener
	clicks  database.ClickRepository
	locator visitor.Locator
	sink    ClickSink
	now     func() time.Time
}

// NewRedirector wires the redirect path. sink may be nil.
func NewRedirector(links *Shortener, clicks database.ClickRepository, locator visitor.Locator, sink ClickSink) *Redirector {
	if locator == nil {
		locator = visitor.NopLocator{}
	}
	return &Redirector{
		links:   links,
		clicks:  clicks,
		locator: locator,
		sink:    sink,
		now:     time.Now,
	}
}

// Redirect returns the target URL. Expired links and missing or wrong
// passwords fail without recording anything; a failure to record a click
// is logged and does not block the redirect.
func (r *Redirector) Redirect(ctx context.Context, req types.RedirectRequest) (string, error) {
	link, err := r.links.LinkBySlug(ctx, req.Slug)
	if err != nil {
		return "", err
	}

	if !link.Available(r.now()) {
		return "", types.ErrExpired
	}

	if link.PasswordHash != "" {
		if req.Password == nil {
			return "", types.ErrPasswordRequired
		}
		if err := bcrypt.CompareHashAndPassword([]byte(link.PasswordHash), []byte(*req.Password)); err != nil {
			return "", types.ErrWrongPassword
		}
	}

	r.record(ctx, link, req)
	return link.OriginalURL, nil
}

func (r *Redirector) record(ctx context.Context, link *types.LinkCache, req types.RedirectRequest) {
	loc := r.locator.Locate(ctx, req.Visit.IP)
	device := visitor.Classify(req.Visit.UserAgent)

	ev := types.ClickEvent{
		ShortURLID: link.ID,
		Slug:       req.Slug,
		IPAddress:  req.Visit.IP,
		UserAgent:  req.Visit.UserAgent,
		Referer:    req.Visit.Referer,
		Country:    loc.Country,
		City:       loc.City,
		DeviceType: device.Type,
		Browser:    device.Browser,
		OS:         device.OS,
		ClickedAt:  r.now().UTC(),
	}

	if err := r.clicks.RecordClick(ctx, &ev); err != nil {
		logrus.WithError(err).WithField("slug", req.Slug).Error("failed to record click")
		return
	}

	if r.sink != nil {
		r.sink.PushClick(ev)
	}
}
