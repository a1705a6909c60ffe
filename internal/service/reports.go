package service

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"urlpro/internal/database"
	"urlpro/internal/export"
	"urlpro/internal/types"
)

const (
	topLimit        = 10
	recentLimit     = 20
	indexListLimit  = 10
	dashboardLimit  = 10
	exportLimit     = 10000
	weeklyWindow    = 7 * 24 * time.Hour
	maxAnalyticDays = 365
)

// Reports serves read-only aggregates. Individual query failures degrade
// to empty sections and are logged rather than returned.
type Reports struct {
	urls          database.URLRepository
	clicks        database.ClickRepository
	users         database.UserRepository
	notifications database.NotificationRepository
	catalog       database.CatalogRepository
	baseURL       string
	days          int
	now           func() time.Time
}

func NewReports(urls database.URLRepository, clicks database.ClickRepository, users database.UserRepository,
	notifications database.NotificationRepository, catalog database.CatalogRepository, baseURL string, days int) *Reports {
	if days <= 0 {
		days = 30
	}
	return &Reports{
		urls:          urls,
		clicks:        clicks,
		users:         users,
		notifications: notifications,
		catalog:       catalog,
		baseURL:       baseURL,
		days:          days,
		now:           time.Now,
	}
}

func degrade[T any](query string, v T, err error, fallback T) T {
	if err != nil {
		logrus.WithError(err).WithField("query", query).Warn("analytics query failed")
		return fallback
	}
	return v
}

// windowStart is midnight UTC of the first day of a days-long window ending today.
func (r *Reports) windowStart(days int) time.Time {
	now := r.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return today.AddDate(0, 0, -(days - 1))
}

// fillDays expands sparse per-day rows into one entry per calendar day.
func fillDays(rows []types.DailyCount, since time.Time, days int) []types.DailyCount {
	byDay := make(map[string]int64, len(rows))
	for _, row := range rows {
		byDay[row.Day] = row.Count
	}
	out := make([]types.DailyCount, days)
	for i := 0; i < days; i++ {
		day := since.AddDate(0, 0, i).Format("2006-01-02")
		out[i] = types.DailyCount{Day: day, Count: byDay[day]}
	}
	return out
}

// URLAnalytics is restricted to the link owner.
func (r *Reports) URLAnalytics(ctx context.Context, slug string, userID int64, days int) (*types.URLAnalytics, error) {
	u, err := r.urls.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if u.OwnerID == nil || *u.OwnerID != userID {
		return nil, types.ErrForbidden
	}

	if days <= 0 {
		days = r.days
	}
	if days > maxAnalyticDays {
		days = maxAnalyticDays
	}
	since := r.windowStart(days)
	f := types.ClickFilter{URLID: u.ID, Since: since}

	totals, err := r.clicks.ClickTotals(ctx, types.ClickFilter{URLID: u.ID})
	totals = degrade("totals", totals, err, types.ClickTotals{})
	daily, err := r.clicks.DailyClicks(ctx, f)
	daily = degrade("daily", daily, err, nil)

	res := &types.URLAnalytics{
		URL:          u,
		ShortURL:     u.Link(r.baseURL),
		Days:         days,
		TotalClicks:  totals.Total,
		UniqueClicks: totals.Unique,
		Daily:        fillDays(daily, since, days),
		Countries:    r.group(ctx, f, types.DimCountry),
		Devices:      r.group(ctx, f, types.DimDevice),
		Browsers:     r.group(ctx, f, types.DimBrowser),
		OS:           r.group(ctx, f, types.DimOS),
		Referers:     r.group(ctx, f, types.DimReferer),
	}

	recent, err := r.clicks.RecentClicks(ctx, types.ClickFilter{URLID: u.ID}, recentLimit)
	res.RecentClicks = degrade("recent", recent, err, []types.ClickEvent{})
	return res, nil
}

func (r *Reports) group(ctx context.Context, f types.ClickFilter, dim types.ClickDimension) []types.CountItem {
	items, err := r.clicks.GroupClicks(ctx, f, dim, topLimit)
	return degrade(string(dim), items, err, []types.CountItem{})
}

// Stats exposes public counters. Private links are visible to their owner only.
func (r *Reports) Stats(ctx context.Context, slug string, viewerID int64) (*types.URLStats, error) {
	u, err := r.urls.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if u.IsPrivate && (u.OwnerID == nil || *u.OwnerID != viewerID) {
		return nil, types.ErrNotFound
	}
	return &types.URLStats{
		ShortURL:     u.Link(r.baseURL),
		OriginalURL:  u.OriginalURL,
		Title:        u.Title,
		ClickCount:   u.ClickCount,
		UniqueClicks: u.UniqueClicks,
		CreatedAt:    u.CreatedAt,
		LastClicked:  u.LastClicked,
		ExpiresAt:    u.ExpiresAt,
		IsActive:     u.IsActive && !u.IsExpired(r.now()),
	}, nil
}

func (r *Reports) Dashboard(ctx context.Context, userID int64) *types.Dashboard {
	since := r.windowStart(r.days)

	totals, err := r.urls.OwnerTotals(ctx, userID, r.now())
	daily, dErr := r.clicks.DailyClicks(ctx, types.ClickFilter{OwnerID: userID, Since: since})
	recent, rErr := r.urls.ListByOwner(ctx, userID, dashboardLimit)
	unread, nErr := r.notifications.ListNotifications(ctx, userID, true, dashboardLimit)

	return &types.Dashboard{
		Totals:        degrade("owner_totals", totals, err, types.OwnerTotals{}),
		Daily:         fillDays(degrade("owner_daily", daily, dErr, nil), since, r.days),
		RecentURLs:    degrade("owner_recent", recent, rErr, []types.ShortURL{}),
		Notifications: degrade("unread_notifications", unread, nErr, []types.Notification{}),
	}
}

func (r *Reports) Index(ctx context.Context) *types.IndexPage {
	totals, err := r.urls.SiteTotals(ctx)
	totals = degrade("site_totals", totals, err, types.SiteTotals{})
	users, err := r.users.CountUsers(ctx)
	totals.Users = degrade("user_count", users, err, 0)

	recent, err := r.urls.ListRecentPublic(ctx, indexListLimit)
	popular, pErr := r.urls.ListPopular(ctx, indexListLimit)
	categories, cErr := r.catalog.ListCategories(ctx)

	return &types.IndexPage{
		Totals:     totals,
		Recent:     degrade("recent_public", recent, err, nil),
		Popular:    degrade("popular", popular, pErr, nil),
		Categories: degrade("categories", categories, cErr, nil),
		BaseURL:    r.baseURL,
	}
}

// WeeklyDigests summarises the last seven days for every opted-in user.
func (r *Reports) WeeklyDigests(ctx context.Context) ([]types.WeeklyDigest, error) {
	recipients, err := r.users.ListWeeklyRecipients(ctx)
	if err != nil {
		return nil, err
	}

	now := r.now().UTC()
	from := now.Add(-weeklyWindow)
	digests := make([]types.WeeklyDigest, 0, len(recipients))
	for _, rc := range recipients {
		totals, err := r.clicks.ClickTotals(ctx, types.ClickFilter{OwnerID: rc.UserID, Since: from})
		totals = degrade("weekly_clicks", totals, err, types.ClickTotals{})
		owner, err := r.urls.OwnerTotals(ctx, rc.UserID, now)
		owner = degrade("weekly_active", owner, err, types.OwnerTotals{})

		d := types.WeeklyDigest{
			UserID:       rc.UserID,
			Username:     rc.Username,
			Email:        rc.Email,
			EmailEnabled: rc.EmailNotifications,
			Clicks:       totals.Total,
			ActiveURLs:   owner.Active,
			From:         from,
			To:           now,
		}
		if rc.TelegramChatID != nil {
			d.TelegramChatID = *rc.TelegramChatID
		}
		digests = append(digests, d)
	}
	return digests, nil
}

func (r *Reports) ExportCSV(ctx context.Context, userID int64, w io.Writer) error {
	urls, err := r.urls.ListByOwner(ctx, userID, exportLimit)
	if err != nil {
		return err
	}
	return export.WriteCSV(w, urls, r.baseURL)
}

func (r *Reports) ExportPDF(ctx context.Context, userID int64, w io.Writer) error {
	user, err := r.users.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	urls, err := r.urls.ListByOwner(ctx, userID, exportLimit)
	if err != nil {
		return err
	}
	totals, err := r.urls.OwnerTotals(ctx, userID, r.now())
	totals = degrade("owner_totals", totals, err, types.OwnerTotals{})

	return export.WritePDF(w, export.Report{
		Username:    user.Username,
		BaseURL:     r.baseURL,
		TotalURLs:   totals.URLs,
		TotalClicks: totals.Clicks,
		URLs:        urls,
		GeneratedAt: r.now(),
	})
}
