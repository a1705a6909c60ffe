package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urlpro/internal/cache"
	"urlpro/internal/database"
	"urlpro/internal/service"
	"urlpro/internal/types"
)

const testBaseURL = "http://sho.rt"

type testApp struct {
	router *gin.Engine
	db     *database.Database
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	ctx := context.Background()

	db, err := database.Connect(ctx, database.DriverSQLite,
		"file::memory:?_pragma=foreign_keys(1)&_time_format=sqlite", database.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mr := miniredis.RunT(t)
	linkCache, err := cache.ConnectRedis(ctx, mr.Addr(), "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = linkCache.Close() })

	notifications := service.NewNotifications(db)
	shortener := service.NewShortener(db, db, notifications, linkCache, nil, service.ShortenerOptions{BaseURL: testBaseURL, QRSize: 64})
	accounts := service.NewAccounts(db, service.AccountOptions{JWTSecret: "test-secret", APICallsLimit: 2})

	router := InitRoutes(Handlers{
		Links:    NewLinkHandler(shortener, service.NewRedirector(shortener, db, nil, nil)),
		Reports:  NewReportHandler(service.NewReports(db, db, db, db, db, testBaseURL, 30)),
		Accounts: NewAccountHandler(accounts, notifications, service.NewCatalog(db)),
		Auth:     accounts,
	}, 5*time.Second)

	return &testApp{router: router, db: db}
}

func (a *testApp) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) form(t *testing.T, path string, values url.Values, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) register(t *testing.T, username string) string {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/users", gin.H{"username": username, "email": username + "@example.com", "password": "correct-horse"}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Profile types.UserProfile `json:"profile"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Profile.APIKey)
	return resp.Profile.APIKey
}

func (a *testApp) login(t *testing.T, username string) map[string]string {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/login", gin.H{"username": username, "password": "correct-horse"}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return map[string]string{"Authorization": "Bearer " + resp.Token}
}

func (a *testApp) stats(t *testing.T, slug string) types.URLStats {
	t.Helper()
	w := a.do(t, http.MethodGet, "/stats/"+slug, nil, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var st types.URLStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))
	return st
}

func decodeShorten(t *testing.T, w *httptest.ResponseRecorder) shortenResponse {
	t.Helper()
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp shortenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestRedirectCountsClicks(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, app.db.CreateURL(context.Background(),
		&types.ShortURL{ShortCode: "abc123", OriginalURL: "https://example.com/page", IsActive: true}, ""))

	visits := []struct {
		ip         string
		wantClicks int64
		wantUnique int64
	}{
		{ip: "198.51.100.1", wantClicks: 1, wantUnique: 1},
		{ip: "198.51.100.1", wantClicks: 2, wantUnique: 1},
		{ip: "198.51.100.2", wantClicks: 3, wantUnique: 2},
	}

	for _, v := range visits {
		w := app.do(t, http.MethodGet, "/abc123", nil, map[string]string{"X-Forwarded-For": v.ip})
		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "https://example.com/page", w.Header().Get("Location"))

		st := app.stats(t, "abc123")
		assert.Equal(t, v.wantClicks, st.ClickCount)
		assert.Equal(t, v.wantUnique, st.UniqueClicks)
		assert.LessOrEqual(t, st.UniqueClicks, st.ClickCount)
	}
}

func TestUnknownSlug(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodGet, "/nothere", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Link not found")

	w = app.do(t, http.MethodGet, "/qr/nothere", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExpiredLink(t *testing.T) {
	app := newTestApp(t)
	created := time.Now().UTC().Add(-48 * time.Hour)
	expired := created.Add(24 * time.Hour)
	require.NoError(t, app.db.CreateURL(context.Background(), &types.ShortURL{
		ShortCode: "old001", OriginalURL: "https://example.com", IsActive: true, CreatedAt: created, ExpiresAt: &expired,
	}, ""))

	w := app.do(t, http.MethodGet, "/old001", nil, nil)
	assert.Equal(t, http.StatusGone, w.Code)
	assert.Contains(t, w.Body.String(), "Link expired")

	st := app.stats(t, "old001")
	assert.Zero(t, st.ClickCount)
	assert.False(t, st.IsActive)
}

func TestPasswordProtectedLink(t *testing.T) {
	app := newTestApp(t)
	created := decodeShorten(t, app.do(t, http.MethodPost, "/api/shorten",
		gin.H{"url": "https://secret.example", "password": "s3cret-pass"}, nil))
	path := "/" + created.ShortCode

	w := app.do(t, http.MethodGet, path, nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `name="password"`)

	w = app.form(t, path, url.Values{"password": {"wrong"}}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Incorrect password")
	assert.Zero(t, app.stats(t, created.ShortCode).ClickCount)

	w = app.form(t, path, url.Values{"password": {"s3cret-pass"}}, nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://secret.example", w.Header().Get("Location"))
	assert.Equal(t, int64(1), app.stats(t, created.ShortCode).ClickCount)
}

func TestAPIShortenQuota(t *testing.T) {
	app := newTestApp(t)
	key := app.register(t, "alice")
	headers := map[string]string{headerAPIKey: key}

	for i := 0; i < 2; i++ {
		resp := decodeShorten(t, app.do(t, http.MethodPost, "/api/shorten", gin.H{"url": "https://example.com"}, headers))
		assert.Len(t, resp.ShortCode, 6)
		assert.Equal(t, testBaseURL+"/"+resp.ShortCode, resp.ShortURL)
		assert.NotEmpty(t, resp.QRCode)
	}

	w := app.do(t, http.MethodPost, "/api/shorten", gin.H{"url": "https://example.com/third"}, headers)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	totals, err := app.db.SiteTotals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), totals.URLs)

	w = app.do(t, http.MethodGet, "/api/profile", nil, headers)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Profile types.UserProfile `json:"profile"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.Profile.APICallsCount)
}

func TestAPIShortenKeyWithBearer(t *testing.T) {
	app := newTestApp(t)
	key := app.register(t, "alice")

	tests := []struct {
		name    string
		headers map[string]string
	}{
		{name: "valid token", headers: app.login(t, "alice")},
		{name: "invalid token", headers: map[string]string{"Authorization": "Bearer not-a-token"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.headers[headerAPIKey] = key
			resp := decodeShorten(t, app.do(t, http.MethodPost, "/api/shorten", gin.H{"url": "https://example.com/" + strings.ReplaceAll(tt.name, " ", "-")}, tt.headers))
			assert.Len(t, resp.ShortCode, 6)
		})
	}

	w := app.do(t, http.MethodGet, "/api/profile", nil, map[string]string{headerAPIKey: key})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"api_calls_count":2`)
}

func TestAPIShortenQuotaUnderConcurrency(t *testing.T) {
	app := newTestApp(t)
	key := app.register(t, "dana")
	headers := map[string]string{headerAPIKey: key}

	const callers = 10
	codes := make(chan int, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			codes <- app.do(t, http.MethodPost, "/api/shorten", `{"url":"https://example.com/race"}`, headers).Code
		}()
	}
	wg.Wait()
	close(codes)

	got := map[int]int{}
	for code := range codes {
		got[code]++
	}
	assert.Equal(t, map[int]int{http.StatusCreated: 2, http.StatusTooManyRequests: callers - 2}, got)

	totals, err := app.db.SiteTotals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), totals.URLs)

	w := app.do(t, http.MethodGet, "/api/profile", nil, headers)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"api_calls_count":2`)
}

func TestConcurrentRedirectsCountEveryClick(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, app.db.CreateURL(context.Background(),
		&types.ShortURL{ShortCode: "abc123", OriginalURL: "https://example.com", IsActive: true}, ""))

	const clicks = 20
	ips := []string{"198.51.100.1", "198.51.100.2"}
	codes := make(chan int, clicks)
	var wg sync.WaitGroup
	for i := 0; i < clicks; i++ {
		wg.Add(1)
		go func(ip string) {
			defer wg.Done()
			codes <- app.do(t, http.MethodGet, "/abc123", nil, map[string]string{"X-Forwarded-For": ip}).Code
		}(ips[i%len(ips)])
	}
	wg.Wait()
	close(codes)
	for code := range codes {
		assert.Equal(t, http.StatusFound, code)
	}

	st := app.stats(t, "abc123")
	assert.Equal(t, int64(clicks), st.ClickCount)
	assert.Equal(t, int64(len(ips)), st.UniqueClicks)
}

func TestAPIShortenRejections(t *testing.T) {
	app := newTestApp(t)
	key := app.register(t, "bob")

	tests := []struct {
		name       string
		headers    map[string]string
		body       any
		wantStatus int
	}{
		{name: "unknown key", headers: map[string]string{headerAPIKey: "not-a-key"}, body: gin.H{"url": "https://example.com"}, wantStatus: http.StatusUnauthorized},
		{name: "unknown key and bad body", headers: map[string]string{headerAPIKey: "not-a-key"}, body: "{", wantStatus: http.StatusUnauthorized},
		{name: "malformed body", headers: map[string]string{headerAPIKey: key}, body: "{", wantStatus: http.StatusBadRequest},
		{name: "missing url", headers: map[string]string{headerAPIKey: key}, body: gin.H{"title": "x"}, wantStatus: http.StatusBadRequest},
		{name: "invalid url", headers: map[string]string{headerAPIKey: key}, body: gin.H{"url": "ftp://example.com"}, wantStatus: http.StatusBadRequest},
		{name: "invalid alias", headers: map[string]string{headerAPIKey: key}, body: gin.H{"url": "https://example.com", "custom_alias": "a b"}, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := app.do(t, http.MethodPost, "/api/shorten", tt.body, tt.headers)
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}

	w := app.do(t, http.MethodGet, "/api/profile", nil, map[string]string{headerAPIKey: key})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"api_calls_count":0`)
}

func TestAPIShortenAliasConflict(t *testing.T) {
	app := newTestApp(t)

	resp := decodeShorten(t, app.do(t, http.MethodPost, "/api/shorten",
		gin.H{"url": "https://example.com/a", "custom_alias": "promo"}, nil))
	assert.Equal(t, testBaseURL+"/promo", resp.ShortURL)

	w := app.do(t, http.MethodPost, "/api/shorten", gin.H{"url": "https://example.com/b", "custom_alias": "promo"}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = app.do(t, http.MethodGet, "/promo", nil, nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://example.com/a", w.Header().Get("Location"))
}

func TestFormShortenReusesLinks(t *testing.T) {
	app := newTestApp(t)

	w := app.form(t, "/shorten", url.Values{"url": {"example.org/docs"}}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	w = app.form(t, "/shorten", url.Values{"url": {"http://example.org/docs"}}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	totals, err := app.db.SiteTotals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), totals.URLs)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	page := httptest.NewRecorder()
	app.router.ServeHTTP(page, req)
	assert.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "Short URL: "+testBaseURL+"/")
	assert.Contains(t, page.Body.String(), "http://example.org/docs")

	w = app.form(t, "/shorten", url.Values{"url": {"not a url"}}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
}

func TestAdvancedShortenForm(t *testing.T) {
	app := newTestApp(t)
	app.register(t, "carol")
	auth := app.login(t, "carol")

	w := app.form(t, "/advanced_shorten", url.Values{
		"url":          {"https://example.com/launch"},
		"custom_alias": {"launch"},
		"title":        {"Launch"},
		"expires_days": {"3"},
		"tags":         {"news,launch"},
		"is_private":   {"on"},
	}, auth)
	require.Equal(t, http.StatusSeeOther, w.Code)

	u, err := app.db.GetBySlug(context.Background(), "launch")
	require.NoError(t, err)
	assert.True(t, u.IsPrivate)
	require.NotNil(t, u.OwnerID)
	require.NotNil(t, u.ExpiresAt)

	assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodGet, "/stats/launch", nil, nil).Code)
	assert.Equal(t, http.StatusOK, app.do(t, http.MethodGet, "/stats/launch", nil, auth).Code)

	w = app.form(t, "/advanced_shorten", url.Values{"url": {"https://example.com"}, "expires_days": {"-2"}}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "expires_days")
}

func TestOwnerReads(t *testing.T) {
	app := newTestApp(t)
	app.register(t, "dave")
	app.register(t, "erin")
	dave := app.login(t, "dave")
	erin := app.login(t, "erin")

	created := decodeShorten(t, app.do(t, http.MethodPost, "/api/shorten", gin.H{"url": "https://example.com/report"}, dave))
	require.Equal(t, http.StatusFound, app.do(t, http.MethodGet, "/"+created.ShortCode, nil, nil).Code)

	assert.Equal(t, http.StatusUnauthorized, app.do(t, http.MethodGet, "/dashboard", nil, nil).Code)

	w := app.do(t, http.MethodGet, "/dashboard", nil, dave)
	require.Equal(t, http.StatusOK, w.Code)
	var dash types.Dashboard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dash))
	assert.Equal(t, int64(1), dash.Totals.URLs)
	assert.Equal(t, int64(1), dash.Totals.Clicks)
	assert.Len(t, dash.Daily, 30)
	assert.Len(t, dash.Notifications, 1)

	w = app.do(t, http.MethodGet, "/url_analytics/"+created.ShortCode+"?days=7", nil, dave)
	require.Equal(t, http.StatusOK, w.Code)
	var analytics types.URLAnalytics
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &analytics))
	assert.Equal(t, int64(1), analytics.TotalClicks)
	assert.Len(t, analytics.Daily, 7)

	assert.Equal(t, http.StatusForbidden, app.do(t, http.MethodGet, "/url_analytics/"+created.ShortCode, nil, erin).Code)
	assert.Equal(t, http.StatusBadRequest, app.do(t, http.MethodGet, "/url_analytics/"+created.ShortCode+"?days=x", nil, dave).Code)

	w = app.do(t, http.MethodGet, "/export/csv", nil, dave)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Body.String(), "https://example.com/report")

	w = app.do(t, http.MethodGet, "/export/pdf", nil, dave)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))

	w = app.do(t, http.MethodGet, "/api/notifications?unread=true", nil, dave)
	require.Equal(t, http.StatusOK, w.Code)
	var notes []types.Notification
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &notes))
	require.Len(t, notes, 1)

	path := "/api/notifications/" + jsonNumber(notes[0].ID) + "/read"
	assert.Equal(t, http.StatusNoContent, app.do(t, http.MethodPost, path, nil, dave).Code)
	assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodPost, path, nil, erin).Code)
}

func TestCatalogEndpoints(t *testing.T) {
	app := newTestApp(t)
	app.register(t, "frank")
	auth := app.login(t, "frank")

	assert.Equal(t, http.StatusUnauthorized, app.do(t, http.MethodPost, "/api/categories", gin.H{"name": "Work"}, nil).Code)
	assert.Equal(t, http.StatusCreated, app.do(t, http.MethodPost, "/api/categories", gin.H{"name": "Work"}, auth).Code)
	assert.Equal(t, http.StatusBadRequest, app.do(t, http.MethodPost, "/api/categories", gin.H{"name": "Bad", "color": "red"}, auth).Code)

	w := app.do(t, http.MethodGet, "/api/categories", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Work"`)

	assert.Equal(t, http.StatusCreated, app.do(t, http.MethodPost, "/api/domains", gin.H{"name": "go.example.com"}, auth).Code)
	assert.Equal(t, http.StatusConflict, app.do(t, http.MethodPost, "/api/domains", gin.H{"name": "go.example.com"}, auth).Code)
	assert.Equal(t, http.StatusBadRequest, app.do(t, http.MethodPost, "/api/domains", gin.H{"name": "not a host"}, auth).Code)

	w = app.do(t, http.MethodGet, "/api/domains", nil, auth)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go.example.com")
}

func TestAccountsFlow(t *testing.T) {
	app := newTestApp(t)
	key := app.register(t, "gina")

	assert.Equal(t, http.StatusConflict, app.do(t, http.MethodPost, "/api/users",
		gin.H{"username": "gina", "password": "correct-horse"}, nil).Code)
	assert.Equal(t, http.StatusBadRequest, app.do(t, http.MethodPost, "/api/users",
		gin.H{"username": "hank", "password": "short"}, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, app.do(t, http.MethodPost, "/api/login",
		gin.H{"username": "gina", "password": "wrong-password"}, nil).Code)

	w := app.do(t, http.MethodPost, "/api/profile/api-key", nil, map[string]string{headerAPIKey: key})
	require.Equal(t, http.StatusOK, w.Code)
	var rotated struct {
		APIKey string `json:"api_key"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rotated))
	assert.NotEqual(t, key, rotated.APIKey)

	assert.Equal(t, http.StatusUnauthorized, app.do(t, http.MethodGet, "/api/profile", nil, map[string]string{headerAPIKey: key}).Code)
	assert.Equal(t, http.StatusOK, app.do(t, http.MethodGet, "/api/profile", nil, map[string]string{headerAPIKey: rotated.APIKey}).Code)
}

func TestUpdateProfilePreferences(t *testing.T) {
	app := newTestApp(t)
	app.register(t, "ivy")
	auth := app.login(t, "ivy")

	recipients, err := app.db.ListWeeklyRecipients(context.Background())
	require.NoError(t, err)
	assert.Empty(t, recipients)

	w := app.do(t, http.MethodPatch, "/api/profile", gin.H{"weekly_reports": true}, auth)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"weekly_reports":true`)

	recipients, err = app.db.ListWeeklyRecipients(context.Background())
	require.NoError(t, err)
	require.Len(t, recipients, 1)
	assert.Equal(t, "ivy", recipients[0].Username)

	assert.Equal(t, http.StatusBadRequest, app.do(t, http.MethodPatch, "/api/profile", gin.H{}, auth).Code)
	assert.Equal(t, http.StatusBadRequest, app.do(t, http.MethodPatch, "/api/profile", "{", auth).Code)
	assert.Equal(t, http.StatusUnauthorized, app.do(t, http.MethodPatch, "/api/profile", gin.H{"weekly_reports": true}, nil).Code)
}

func TestHealthAndQRCode(t *testing.T) {
	app := newTestApp(t)
	assert.Equal(t, http.StatusOK, app.do(t, http.MethodGet, "/health", nil, nil).Code)

	created := decodeShorten(t, app.do(t, http.MethodPost, "/api/shorten", gin.H{"url": "https://example.com"}, nil))
	w := app.do(t, http.MethodGet, "/qr/"+created.ShortCode, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")))
}

func jsonNumber(id int64) string {
	raw, _ := json.Marshal(id)
	return string(raw)
}
