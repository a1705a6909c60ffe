package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"urlpro/internal/database"
	"urlpro/internal/types"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const (
	maxTitleLen       = 200
	maxDescriptionLen = 300
	maxTagsLen        = 500
)

var aliasPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{3,50}$`)

// reservedSlugs collide with top-level routes.
var reservedSlugs = map[string]struct{}{
	"api": {}, "shorten": {}, "advanced_shorten": {}, "stats": {}, "url_analytics": {},
	"dashboard": {}, "export": {}, "qr": {}, "health": {}, "static": {},
}

type ShortenerOptions struct {
	BaseURL         string
	CodeLength      int
	MaxCodeAttempts int
	CacheTTL        time.Duration
	QRSize          int
}

type Shortener struct {
	urls          database.URLRepository
	catalog       database.CatalogRepository
	notifications *Notifications
	cache         LinkCache
	inspector     PageInspector
	opts          ShortenerOptions
	generate      func(n int) (string, error)
	now           func() time.Time
}

// NewShortener wires the allocator. cache and inspector may be nil.
func NewShortener(urls database.URLRepository, catalog database.CatalogRepository, notifications *Notifications,
	cache LinkCache, inspector PageInspector, opts ShortenerOptions) *Shortener {
	if opts.CodeLength <= 0 {
		opts.CodeLength = 6
	}
	if opts.MaxCodeAttempts <= 0 {
		opts.MaxCodeAttempts = 10
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 10 * time.Minute
	}
	return &Shortener{
		urls:          urls,
		catalog:       catalog,
		notifications: notifications,
		cache:         cache,
		inspector:     inspector,
		opts:          opts,
		generate:      GenerateCode,
		now:           time.Now,
	}
}

func (s *Shortener) BaseURL() string {
	return s.opts.BaseURL
}

// GenerateCode returns n characters drawn uniformly from [A-Za-z0-9].
func GenerateCode(n int) (string, error) {
	size := big.NewInt(int64(len(alphabet)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", fmt.Errorf("generate code: %w", err)
		}
		b[i] = alphabet[idx.Int64()]
	}
	return string(b), nil
}

// NormalizeURL validates raw as an absolute http(s) URL with a host.
func NormalizeURL(raw string, addScheme bool) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", types.ErrInvalidURL
	}
	lower := strings.ToLower(raw)
	if addScheme && !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		raw = "http://" + raw
	}

	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return "", types.ErrInvalidURL
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", types.ErrInvalidURL
	}
	return raw, nil
}

func ValidateAlias(alias string) error {
	if !aliasPattern.MatchString(alias) {
		return types.ErrInvalidAlias
	}
	if _, ok := reservedSlugs[strings.ToLower(alias)]; ok {
		return types.ErrInvalidAlias
	}
	return nil
}

func (s *Shortener) Shorten(ctx context.Context, req types.ShortenRequest) (*types.ShortURL, error) {
	original, err := NormalizeURL(req.URL, req.AddScheme)
	if err != nil {
		return nil, err
	}
	if req.ExpiresDays < 0 {
		return nil, fmt.Errorf("%w: expires_days must not be negative", types.ErrInvalidInput)
	}
	tags := normalizeTags(req.Tags)
	if utf8.RuneCountInString(tags) > maxTagsLen {
		return nil, fmt.Errorf("%w: tags must not exceed %d characters", types.ErrInvalidInput, maxTagsLen)
	}

	u := &types.ShortURL{
		OriginalURL: original,
		Title:       truncate(strings.TrimSpace(req.Title), maxTitleLen),
		Description: strings.TrimSpace(req.Description),
		Tags:        tags,
		IsPrivate:   req.IsPrivate,
		IsActive:    true,
		OwnerID:     req.OwnerID,
		CategoryID:  req.CategoryID,
		CreatedAt:   s.now().UTC(),
	}

	if alias := strings.TrimSpace(req.CustomAlias); alias != "" {
		if err := ValidateAlias(alias); err != nil {
			return nil, err
		}
		u.CustomAlias = &alias
	}

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		h := string(hash)
		u.PasswordHash = &h
	}

	if req.ExpiresDays > 0 {
		exp := u.CreatedAt.Add(time.Duration(req.ExpiresDays) * 24 * time.Hour)
		u.ExpiresAt = &exp
	}

	if req.DomainID != nil {
		if err := s.attachDomain(ctx, u, *req.DomainID); err != nil {
			return nil, err
		}
	}

	if req.FetchMetadata && u.Title == "" && s.inspector != nil {
		meta := s.inspector.Inspect(ctx, original)
		u.MetaTitle = meta.Title
		u.MetaDescription = meta.Description
		u.Title = meta.Title
		if u.Description == "" {
			u.Description = meta.Description
		}
	}

	if err := s.allocate(ctx, u, req.APIKey); err != nil {
		return nil, err
	}

	if u.OwnerID != nil && s.notifications != nil {
		s.notifications.Notify(ctx, *u.OwnerID, "URL Created",
			fmt.Sprintf("Short URL %s created successfully.", u.Link(s.opts.BaseURL)), types.NotificationSuccess)
	}

	fields := logrus.Fields{"slug": u.Slug()}
	if u.OwnerID != nil {
		fields["owner_id"] = *u.OwnerID
	}
	logrus.WithFields(fields).Info("short url created")
	return u, nil
}

// allocate draws codes until the insert succeeds. Collisions are detected
// by the store's unique constraints; each attempt runs in its own
// transaction so a rolled-back attempt does not consume quota.
func (s *Shortener) allocate(ctx context.Context, u *types.ShortURL, apiKey string) error {
	for attempt := 1; attempt <= s.opts.MaxCodeAttempts; attempt++ {
		code, err := s.generate(s.opts.CodeLength)
		if err != nil {
			return err
		}
		u.ShortCode = code

		qr, err := QRCodeBase64(u.Link(s.opts.BaseURL), s.opts.QRSize)
		if err != nil {
			logrus.WithError(err).Warn("failed to render qr code")
		}
		u.QRCode = qr

		err = s.urls.CreateURL(ctx, u, apiKey)
		if err == nil {
			return nil
		}
		if !errors.Is(err, types.ErrCodeTaken) {
			return err
		}
		logrus.WithFields(logrus.Fields{"code": code, "attempt": attempt}).Debug("short code collision, retrying")
	}
	return types.ErrCodeSpaceExhausted
}

func (s *Shortener) attachDomain(ctx context.Context, u *types.ShortURL, domainID int64) error {
	dom, err := s.catalog.GetDomain(ctx, domainID)
	if err != nil {
		return err
	}
	if !dom.IsActive || u.OwnerID == nil || dom.OwnerID != *u.OwnerID {
		return types.ErrInvalidDomain
	}
	u.DomainID = &dom.ID
	u.DomainName = &dom.Name
	return nil
}

// ShortenOrReuse returns an existing anonymous public link for the same
// target when one exists, otherwise creates one.
func (s *Shortener) ShortenOrReuse(ctx context.Context, rawURL string) (*types.ShortURL, bool, error) {
	original, err := NormalizeURL(rawURL, true)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.urls.FindReusable(ctx, original)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, types.ErrNotFound) {
		return nil, false, err
	}

	created, err := s.Shorten(ctx, types.ShortenRequest{URL: original})
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}

// LinkBySlug resolves a slug through the cache, falling back to the store
// and warming the cache on a miss.
func (s *Shortener) LinkBySlug(ctx context.Context, slug string) (*types.LinkCache, error) {
	if s.cache != nil {
		link, err := s.cache.Get(ctx, slug)
		if err == nil {
			return link, nil
		}
		if !errors.Is(err, redis.Nil) {
			logrus.WithError(err).Warn("Redis error")
		}
	}

	u, err := s.urls.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	link := types.NewLinkCache(u)

	if s.cache != nil {
		if err := s.cache.Set(ctx, slug, link, s.opts.CacheTTL); err != nil {
			logrus.WithError(err).Warn("Failed to warm up cache")
		}
	}
	return link, nil
}

func (s *Shortener) Get(ctx context.Context, slug string) (*types.ShortURL, error) {
	return s.urls.GetBySlug(ctx, slug)
}

// QRCode renders the PNG for a slug's public short URL.
func (s *Shortener) QRCode(ctx context.Context, slug string) ([]byte, error) {
	u, err := s.urls.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return QRCodePNG(u.Link(s.opts.BaseURL), s.opts.QRSize)
}

// ExpireStale deactivates expired links and evicts them from the cache.
func (s *Shortener) ExpireStale(ctx context.Context) (int, error) {
	slugs, err := s.urls.DeactivateExpired(ctx, s.now())
	if err != nil {
		return 0, err
	}
	if len(slugs) > 0 && s.cache != nil {
		if err := s.cache.Delete(ctx, slugs); err != nil {
			logrus.WithError(err).Warn("failed to evict expired links from cache")
		}
	}
	return len(slugs), nil
}

func normalizeTags(raw string) string {
	var tags []string
	seen := map[string]bool{}
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		tags = append(tags, t)
	}
	return strings.Join(tags, ",")
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
