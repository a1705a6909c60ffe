package database

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

import (
	"context"
	"time"

	"urlpro/internal/types"
)

type URLRepository interface {
	// CreateURL inserts u and fills its ID. When apiKey is set the key's
	// monthly quota is charged in the same transaction.
	CreateURL(ctx context.Context, u *types.ShortURL, apiKey string) error
	GetBySlug(ctx context.Context, slug string) (*types.ShortURL, error)
	// FindReusable returns an anonymous, public, unprotected, non-expiring
	// active link for originalURL.
	FindReusable(ctx context.Context, originalURL string) (*types.ShortURL, error)
	ListByOwner(ctx context.Context, ownerID int64, limit int) ([]types.ShortURL, error)
	ListRecentPublic(ctx context.Context, limit int) ([]types.ShortURL, error)
	ListPopular(ctx context.Context, limit int) ([]types.ShortURL, error)
	// DeactivateExpired returns the codes and aliases it switched off.
	DeactivateExpired(ctx context.Context, now time.Time) ([]string, error)
	SiteTotals(ctx context.Context) (types.SiteTotals, error)
	OwnerTotals(ctx context.Context, ownerID int64, now time.Time) (types.OwnerTotals, error)
}

type ClickRepository interface {
	// RecordClick stores ev and bumps the url counters atomically, setting
	// ev.IsUnique for the first click from ev.IPAddress.
	RecordClick(ctx context.Context, ev *types.ClickEvent) error
	ClickTotals(ctx context.Context, f types.ClickFilter) (types.ClickTotals, error)
	DailyClicks(ctx context.Context, f types.ClickFilter) ([]types.DailyCount, error)
	GroupClicks(ctx context.Context, f types.ClickFilter, dim types.ClickDimension, limit int) ([]types.CountItem, error)
	RecentClicks(ctx context.Context, f types.ClickFilter, limit int) ([]types.ClickEvent, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, u *types.User, p *types.UserProfile) error
	GetUserByID(ctx context.Context, id int64) (*types.User, error)
	GetUserByUsername(ctx context.Context, username string) (*types.User, error)
	GetProfile(ctx context.Context, userID int64) (*types.UserProfile, error)
	GetProfileByAPIKey(ctx context.Context, apiKey string) (*types.UserProfile, error)
	GetProfileByTelegramChat(ctx context.Context, chatID int64) (*types.UserProfile, error)
	UpdateAPIKey(ctx context.Context, userID int64, apiKey string) error
	UpdatePreferences(ctx context.Context, userID int64, prefs types.ProfilePreferences) error
	LinkTelegram(ctx context.Context, userID, chatID int64) error
	// ResetQuotas zeroes call counters last reset before periodStart.
	ResetQuotas(ctx context.Context, periodStart time.Time) (int64, error)
	ListWeeklyRecipients(ctx context.Context) ([]types.WeeklyRecipient, error)
	CountUsers(ctx context.Context) (int64, error)
}

type NotificationRepository interface {
	CreateNotification(ctx context.Context, n *types.Notification) error
	ListNotifications(ctx context.Context, userID int64, unreadOnly bool, limit int) ([]types.Notification, error)
	MarkNotificationRead(ctx context.Context, userID, id int64) error
}

type CatalogRepository interface {
	CreateCategory(ctx context.Context, c *types.Category) error
	ListCategories(ctx context.Context) ([]types.Category, error)
	CreateDomain(ctx context.Context, d *types.Domain) error
	GetDomain(ctx context.Context, id int64) (*types.Domain, error)
	ListDomains(ctx context.Context, ownerID int64) ([]types.Domain, error)
}

var (
	_ URLRepository          = (*Database)(nil)
	_ ClickRepository        = (*Database)(nil)
	_ UserRepository         = (*Database)(nil)
	_ NotificationRepository = (*Database)(nil)
	_ CatalogRepository      = (*Database)(nil)
)
