package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbmocks "urlpro/internal/database/mocks"
	"urlpro/internal/types"
)

type reportDeps struct {
	urls          *dbmocks.MockURLRepository
	clicks        *dbmocks.MockClickRepository
	users         *dbmocks.MockUserRepository
	notifications *dbmocks.MockNotificationRepository
	catalog       *dbmocks.MockCatalogRepository
}

var reportNow = time.Date(2026, 5, 20, 9, 30, 0, 0, time.UTC)

func newTestReports(t *testing.T) (*Reports, reportDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := reportDeps{
		urls:          dbmocks.NewMockURLRepository(ctrl),
		clicks:        dbmocks.NewMockClickRepository(ctrl),
		users:         dbmocks.NewMockUserRepository(ctrl),
		notifications: dbmocks.NewMockNotificationRepository(ctrl),
		catalog:       dbmocks.NewMockCatalogRepository(ctrl),
	}
	r := NewReports(d.urls, d.clicks, d.users, d.notifications, d.catalog, "http://sho.rt", 7)
	r.now = func() time.Time { return reportNow }
	return r, d
}

func ownerPtr(id int64) *int64 { return &id }

func TestFillDays(t *testing.T) {
	since := time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC)
	rows := []types.DailyCount{{Day: "2026-02-28", Count: 4}, {Day: "2026-03-02", Count: 1}}

	got := fillDays(rows, since, 4)
	assert.Equal(t, []types.DailyCount{
		{Day: "2026-02-27", Count: 0},
		{Day: "2026-02-28", Count: 4},
		{Day: "2026-03-01", Count: 0},
		{Day: "2026-03-02", Count: 1},
	}, got)
}

func TestURLAnalyticsOwnerOnly(t *testing.T) {
	r, d := newTestReports(t)
	d.urls.EXPECT().GetBySlug(gomock.Any(), "mine").Return(&types.ShortURL{ID: 1, OwnerID: ownerPtr(1)}, nil).Times(2)
	d.urls.EXPECT().GetBySlug(gomock.Any(), "anon").Return(&types.ShortURL{ID: 2}, nil)

	_, err := r.URLAnalytics(context.Background(), "mine", 2, 0)
	assert.ErrorIs(t, err, types.ErrForbidden)
	_, err = r.URLAnalytics(context.Background(), "anon", 2, 0)
	assert.ErrorIs(t, err, types.ErrForbidden)

	_, err = r.URLAnalytics(context.Background(), "mine", 0, 0)
	assert.ErrorIs(t, err, types.ErrForbidden)
}

func TestURLAnalyticsDegradesFailedSections(t *testing.T) {
	r, d := newTestReports(t)
	u := &types.ShortURL{ID: 5, ShortCode: "abc123", OwnerID: ownerPtr(1)}
	since := time.Date(2026, 5, 18, 0, 0, 0, 0, time.UTC)
	boom := errors.New("query failed")

	d.urls.EXPECT().GetBySlug(gomock.Any(), "abc123").Return(u, nil)
	d.clicks.EXPECT().ClickTotals(gomock.Any(), types.ClickFilter{URLID: 5}).Return(types.ClickTotals{Total: 9, Unique: 4}, nil)
	d.clicks.EXPECT().DailyClicks(gomock.Any(), types.ClickFilter{URLID: 5, Since: since}).
		Return([]types.DailyCount{{Day: "2026-05-19", Count: 3}}, nil)
	d.clicks.EXPECT().GroupClicks(gomock.Any(), gomock.Any(), types.DimCountry, topLimit).
		Return([]types.CountItem{{Label: "Germany", Count: 9}}, nil)
	d.clicks.EXPECT().GroupClicks(gomock.Any(), gomock.Any(), types.DimDevice, topLimit).Return(nil, boom)
	d.clicks.EXPECT().GroupClicks(gomock.Any(), gomock.Any(), types.DimBrowser, topLimit).Return(nil, boom)
	d.clicks.EXPECT().GroupClicks(gomock.Any(), gomock.Any(), types.DimOS, topLimit).Return(nil, boom)
	d.clicks.EXPECT().GroupClicks(gomock.Any(), gomock.Any(), types.DimReferer, topLimit).Return(nil, boom)
	d.clicks.EXPECT().RecentClicks(gomock.Any(), types.ClickFilter{URLID: 5}, recentLimit).Return(nil, boom)

	res, err := r.URLAnalytics(context.Background(), "abc123", 1, 3)
	require.NoError(t, err)
	assert.Equal(t, "http://sho.rt/abc123", res.ShortURL)
	assert.Equal(t, int64(9), res.TotalClicks)
	assert.Equal(t, int64(4), res.UniqueClicks)
	assert.Equal(t, []types.DailyCount{
		{Day: "2026-05-18"}, {Day: "2026-05-19", Count: 3}, {Day: "2026-05-20"},
	}, res.Daily)
	assert.Len(t, res.Countries, 1)
	assert.Empty(t, res.Devices)
	assert.NotNil(t, res.Devices)
	assert.NotNil(t, res.RecentClicks)
}

func TestStatsHidesPrivateLinks(t *testing.T) {
	r, d := newTestReports(t)
	expired := reportNow.Add(-time.Minute)
	private := &types.ShortURL{ShortCode: "priv01", OwnerID: ownerPtr(1), IsPrivate: true, IsActive: true}
	stale := &types.ShortURL{ShortCode: "old001", IsActive: true, ClickCount: 3, ExpiresAt: &expired}

	d.urls.EXPECT().GetBySlug(gomock.Any(), "priv01").Return(private, nil).Times(2)
	d.urls.EXPECT().GetBySlug(gomock.Any(), "old001").Return(stale, nil)

	_, err := r.Stats(context.Background(), "priv01", 2)
	assert.ErrorIs(t, err, types.ErrNotFound)

	st, err := r.Stats(context.Background(), "priv01", 1)
	require.NoError(t, err)
	assert.True(t, st.IsActive)

	st, err = r.Stats(context.Background(), "old001", 0)
	require.NoError(t, err)
	assert.False(t, st.IsActive)
	assert.Equal(t, int64(3), st.ClickCount)
}

func TestDashboardDegrades(t *testing.T) {
	r, d := newTestReports(t)
	boom := errors.New("down")

	d.urls.EXPECT().OwnerTotals(gomock.Any(), int64(1), reportNow).Return(types.OwnerTotals{URLs: 2, Clicks: 5, Active: 2}, nil)
	d.clicks.EXPECT().DailyClicks(gomock.Any(), gomock.Any()).Return(nil, boom)
	d.urls.EXPECT().ListByOwner(gomock.Any(), int64(1), dashboardLimit).Return(nil, boom)
	d.notifications.EXPECT().ListNotifications(gomock.Any(), int64(1), true, dashboardLimit).
		Return([]types.Notification{{ID: 1, Title: "URL Created"}}, nil)

	dash := r.Dashboard(context.Background(), 1)
	assert.Equal(t, int64(5), dash.Totals.Clicks)
	assert.Len(t, dash.Daily, 7)
	assert.Empty(t, dash.RecentURLs)
	assert.Len(t, dash.Notifications, 1)
}

func TestIndex(t *testing.T) {
	r, d := newTestReports(t)
	d.urls.EXPECT().SiteTotals(gomock.Any()).Return(types.SiteTotals{URLs: 10, Clicks: 40}, nil)
	d.users.EXPECT().CountUsers(gomock.Any()).Return(int64(3), nil)
	d.urls.EXPECT().ListRecentPublic(gomock.Any(), indexListLimit).Return([]types.ShortURL{{ShortCode: "new001"}}, nil)
	d.urls.EXPECT().ListPopular(gomock.Any(), indexListLimit).Return(nil, errors.New("down"))
	d.catalog.EXPECT().ListCategories(gomock.Any()).Return([]types.Category{{ID: 1, Name: "Work"}}, nil)

	page := r.Index(context.Background())
	assert.Equal(t, types.SiteTotals{URLs: 10, Clicks: 40, Users: 3}, page.Totals)
	assert.Len(t, page.Recent, 1)
	assert.Empty(t, page.Popular)
	assert.Equal(t, "http://sho.rt", page.BaseURL)
}

func TestWeeklyDigests(t *testing.T) {
	r, d := newTestReports(t)
	chat := int64(99)
	from := reportNow.Add(-weeklyWindow)

	d.users.EXPECT().ListWeeklyRecipients(gomock.Any()).Return([]types.WeeklyRecipient{
		{UserID: 1, Username: "alice", Email: "a@example.com", EmailNotifications: true},
		{UserID: 2, Username: "bob", TelegramChatID: &chat},
	}, nil)
	d.clicks.EXPECT().ClickTotals(gomock.Any(), types.ClickFilter{OwnerID: 1, Since: from}).Return(types.ClickTotals{Total: 12}, nil)
	d.clicks.EXPECT().ClickTotals(gomock.Any(), types.ClickFilter{OwnerID: 2, Since: from}).Return(types.ClickTotals{}, errors.New("down"))
	d.urls.EXPECT().OwnerTotals(gomock.Any(), gomock.Any(), reportNow).Return(types.OwnerTotals{Active: 3}, nil).Times(2)

	digests, err := r.WeeklyDigests(context.Background())
	require.NoError(t, err)
	require.Len(t, digests, 2)

	assert.Equal(t, int64(12), digests[0].Clicks)
	assert.True(t, digests[0].EmailEnabled)
	assert.Zero(t, digests[0].TelegramChatID)
	assert.Equal(t, int64(0), digests[1].Clicks)
	assert.Equal(t, int64(99), digests[1].TelegramChatID)
	assert.Equal(t, int64(3), digests[1].ActiveURLs)
	assert.Equal(t, from, digests[1].From)
}

func TestExportCSV(t *testing.T) {
	r, d := newTestReports(t)
	d.urls.EXPECT().ListByOwner(gomock.Any(), int64(1), exportLimit).Return([]types.ShortURL{
		{ShortCode: "abc123", OriginalURL: "https://example.com", ClickCount: 3, UniqueClicks: 2, CreatedAt: reportNow},
	}, nil)

	var buf bytes.Buffer
	require.NoError(t, r.ExportCSV(context.Background(), 1, &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "https://example.com", records[1][0])
	assert.Equal(t, "http://sho.rt/abc123", records[1][1])
}

func TestExportPDF(t *testing.T) {
	r, d := newTestReports(t)
	d.users.EXPECT().GetUserByID(gomock.Any(), int64(1)).Return(&types.User{ID: 1, Username: "alice"}, nil)
	d.urls.EXPECT().ListByOwner(gomock.Any(), int64(1), exportLimit).Return([]types.ShortURL{{ShortCode: "abc123"}}, nil)
	d.urls.EXPECT().OwnerTotals(gomock.Any(), int64(1), reportNow).Return(types.OwnerTotals{URLs: 1}, nil)

	var buf bytes.Buffer
	require.NoError(t, r.ExportPDF(context.Background(), 1, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
