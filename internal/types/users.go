package types

import "time"

type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type UserProfile struct {
	UserID             int64      `json:"user_id" db:"user_id"`
	APIKey             string     `json:"api_key,omitempty" db:"api_key"`
	APICallsCount      int64      `json:"api_calls_count" db:"api_calls_count"`
	APICallsLimit      int64      `json:"api_calls_limit" db:"api_calls_limit"`
	APICallsResetAt    time.Time  `json:"api_calls_reset_at" db:"api_calls_reset_at"`
	IsPremium          bool       `json:"is_premium" db:"is_premium"`
	PremiumExpires     *time.Time `json:"premium_expires,omitempty" db:"premium_expires"`
	EmailNotifications bool       `json:"email_notifications" db:"email_notifications"`
	WeeklyReports      bool       `json:"weekly_reports" db:"weekly_reports"`
	TelegramChatID     *int64     `json:"telegram_chat_id,omitempty" db:"telegram_chat_id"`
}

// ProfilePreferences is a partial update; nil fields are left unchanged.
type ProfilePreferences struct {
	EmailNotifications *bool `json:"email_notifications"`
	WeeklyReports      *bool `json:"weekly_reports"`
}

func (p ProfilePreferences) Empty() bool {
	return p.EmailNotifications == nil && p.WeeklyReports == nil
}

// WeeklyRecipient joins a user with the report preferences of their profile.
type WeeklyRecipient struct {
	UserID             int64  `db:"user_id"`
	Username           string `db:"username"`
	Email              string `db:"email"`
	EmailNotifications bool   `db:"email_notifications"`
	TelegramChatID     *int64 `db:"telegram_chat_id"`
}

type Category struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Color string `json:"color" db:"color"`
	Icon  string `json:"icon" db:"icon"`
}

type Domain struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	OwnerID   int64     `json:"owner_id" db:"owner_id"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

type Notification struct {
	ID        int64            `json:"id" db:"id"`
	UserID    int64            `json:"user_id" db:"user_id"`
	Title     string           `json:"title" db:"title"`
	Message   string           `json:"message" db:"message"`
	Type      NotificationType `json:"type" db:"type"`
	IsRead    bool             `json:"is_read" db:"is_read"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}
