package types

import (
	"strings"
	"time"
)

type ShortURL struct {
	ID              int64      `json:"id" db:"id"`
	OriginalURL     string     `json:"original_url" db:"original_url"`
	ShortCode       string     `json:"short_code" db:"short_code"`
	CustomAlias     *string    `json:"custom_alias,omitempty" db:"custom_alias"`
	OwnerID         *int64     `json:"owner_id,omitempty" db:"owner_id"`
	CategoryID      *int64     `json:"category_id,omitempty" db:"category_id"`
	DomainID        *int64     `json:"domain_id,omitempty" db:"domain_id"`
	DomainName      *string    `json:"domain,omitempty" db:"domain_name"`
	PasswordHash    *string    `json:"-" db:"password_hash"`
	Title           string     `json:"title" db:"title"`
	Description     string     `json:"description" db:"description"`
	MetaTitle       string     `json:"meta_title" db:"meta_title"`
	MetaDescription string     `json:"meta_description" db:"meta_description"`
	Tags            string     `json:"tags" db:"tags"`
	IsPrivate       bool       `json:"is_private" db:"is_private"`
	IsActive        bool       `json:"is_active" db:"is_active"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty" db:"expires_at"`
	ClickCount      int64      `json:"click_count" db:"click_count"`
	UniqueClicks    int64      `json:"unique_clicks" db:"unique_clicks"`
	LastClicked     *time.Time `json:"last_clicked,omitempty" db:"last_clicked"`
	QRCode          string     `json:"qr_code,omitempty" db:"qr_code"`
}

// Slug is the public path segment: the alias when set, otherwise the code.
func (u *ShortURL) Slug() string {
	if u.CustomAlias != nil && *u.CustomAlias != "" {
		return *u.CustomAlias
	}
	return u.ShortCode
}

// Link builds the absolute short URL, preferring the attached custom domain.
func (u *ShortURL) Link(baseURL string) string {
	if u.DomainName != nil && *u.DomainName != "" {
		return "http://" + *u.DomainName + "/" + u.Slug()
	}
	return strings.TrimRight(baseURL, "/") + "/" + u.Slug()
}

func (u *ShortURL) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

func (u *ShortURL) IsExpired(now time.Time) bool {
	return u.ExpiresAt != nil && now.After(*u.ExpiresAt)
}

func (u *ShortURL) TagList() []string {
	var tags []string
	for _, t := range strings.Split(u.Tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// LinkCache is the redirect-time view of a ShortURL kept in Redis.
type LinkCache struct {
	ID           int64      `json:"id"`
	OriginalURL  string     `json:"original_url"`
	OwnerID      *int64     `json:"owner_id,omitempty"`
	PasswordHash string     `json:"password_hash,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	IsActive     bool       `json:"is_active"`
}

func NewLinkCache(u *ShortURL) *LinkCache {
	lc := &LinkCache{
		ID:          u.ID,
		OriginalURL: u.OriginalURL,
		OwnerID:     u.OwnerID,
		ExpiresAt:   u.ExpiresAt,
		IsActive:    u.IsActive,
	}
	if u.PasswordHash != nil {
		lc.PasswordHash = *u.PasswordHash
	}
	return lc
}

func (l *LinkCache) Available(now time.Time) bool {
	if !l.IsActive {
		return false
	}
	return l.ExpiresAt == nil || !now.After(*l.ExpiresAt)
}

type ShortenRequest struct {
	URL         string
	CustomAlias string
	Title       string
	Description string
	Password    string
	ExpiresDays int
	IsPrivate   bool
	Tags        string
	CategoryID  *int64
	DomainID    *int64
	OwnerID     *int64
	// APIKey is charged one call against its monthly quota when set.
	APIKey string
	// FetchMetadata scrapes the target page when Title is empty.
	FetchMetadata bool
	// AddScheme prefixes http:// to scheme-less input.
	AddScheme bool
}

type RedirectRequest struct {
	Slug     string
	Password *string
	Visit    Visit
}

type PageMeta struct {
	Title       string
	Description string
}
