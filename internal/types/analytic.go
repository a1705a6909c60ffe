package types

import "time"

const (
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceDesktop = "desktop"
	DeviceBot     = "bot"
	DeviceUnknown = "unknown"

	Unknown = "Unknown"
)

// Visit is the raw request data captured at redirect time.
type Visit struct {
	IP        string
	UserAgent string
	Referer   string
}

type Location struct {
	Country string
	City    string
}

type Device struct {
	Type    string
	Browser string
	OS      string
}

type ClickEvent struct {
	ID         int64     `json:"id" db:"id"`
	ShortURLID int64     `json:"short_url_id" db:"short_url_id"`
	Slug       string    `json:"slug,omitempty" db:"-"`
	IPAddress  string    `json:"ip_address" db:"ip_address"`
	UserAgent  string    `json:"user_agent" db:"user_agent"`
	Referer    string    `json:"referer" db:"referer"`
	Country    string    `json:"country" db:"country"`
	City       string    `json:"city" db:"city"`
	DeviceType string    `json:"device_type" db:"device_type"`
	Browser    string    `json:"browser" db:"browser"`
	OS         string    `json:"os" db:"os"`
	ClickedAt  time.Time `json:"clicked_at" db:"clicked_at"`
	IsUnique   bool      `json:"is_unique" db:"is_unique"`
}

// ClickDimension names a groupable click_events column.
type ClickDimension string

const (
	DimCountry ClickDimension = "country"
	DimCity    ClickDimension = "city"
	DimDevice  ClickDimension = "device_type"
	DimBrowser ClickDimension = "browser"
	DimOS      ClickDimension = "os"
	DimReferer ClickDimension = "referer"
)

func (d ClickDimension) Valid() bool {
	switch d {
	case DimCountry, DimCity, DimDevice, DimBrowser, DimOS, DimReferer:
		return true
	}
	return false
}

// ClickFilter scopes aggregate queries. Zero values mean "no constraint".
type ClickFilter struct {
	URLID   int64
	OwnerID int64
	Since   time.Time
}

type CountItem struct {
	Label string `json:"label" db:"label"`
	Count int64  `json:"count" db:"count"`
}

type DailyCount struct {
	Day   string `json:"day" db:"day"`
	Count int64  `json:"count" db:"count"`
}

type ClickTotals struct {
	Total  int64 `json:"total" db:"total"`
	Unique int64 `json:"unique" db:"uniq"`
}

type URLAnalytics struct {
	URL          *ShortURL    `json:"url"`
	ShortURL     string       `json:"short_url"`
	Days         int          `json:"days"`
	TotalClicks  int64        `json:"total_clicks"`
	UniqueClicks int64        `json:"unique_clicks"`
	Daily        []DailyCount `json:"daily"`
	Countries    []CountItem  `json:"countries"`
	Devices      []CountItem  `json:"devices"`
	Browsers     []CountItem  `json:"browsers"`
	OS           []CountItem  `json:"os"`
	Referers     []CountItem  `json:"referers"`
	RecentClicks []ClickEvent `json:"recent_clicks"`
}

type URLStats struct {
	ShortURL     string     `json:"short_url"`
	OriginalURL  string     `json:"original_url"`
	Title        string     `json:"title"`
	ClickCount   int64      `json:"click_count"`
	UniqueClicks int64      `json:"unique_clicks"`
	CreatedAt    time.Time  `json:"created_at"`
	LastClicked  *time.Time `json:"last_clicked,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	IsActive     bool       `json:"is_active"`
}

type SiteTotals struct {
	URLs   int64 `json:"total_urls" db:"urls"`
	Clicks int64 `json:"total_clicks" db:"clicks"`
	Users  int64 `json:"total_users" db:"-"`
}

type OwnerTotals struct {
	URLs    int64 `json:"total_urls" db:"urls"`
	Clicks  int64 `json:"total_clicks" db:"clicks"`
	Active  int64 `json:"active_urls" db:"active"`
	Expired int64 `json:"expired_urls" db:"expired"`
}

type IndexPage struct {
	Totals     SiteTotals
	Recent     []ShortURL
	Popular    []ShortURL
	Categories []Category
	BaseURL    string
	Flash      string
}

type Dashboard struct {
	Totals        OwnerTotals    `json:"totals"`
	Daily         []DailyCount   `json:"daily_clicks"`
	RecentURLs    []ShortURL     `json:"recent_urls"`
	Notifications []Notification `json:"notifications"`
}

type WeeklyDigest struct {
	UserID         int64
	Username       string
	Email          string
	EmailEnabled   bool
	TelegramChatID int64
	Clicks         int64
	ActiveURLs     int64
	From           time.Time
	To             time.Time
}
