package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"urlpro/internal/types"
)

const profileSelect = `SELECT user_id, api_key, api_calls_count, api_calls_limit, api_calls_reset_at,
	is_premium, premium_expires, email_notifications, weekly_reports, telegram_chat_id FROM user_profiles`

func (d *Database) CreateUser(ctx context.Context, u *types.User, p *types.UserProfile) error {
	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if p.APICallsResetAt.IsZero() {
		p.APICallsResetAt = now
	}

	return d.withTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.QueryRowxContext(ctx, d.rebind(`INSERT INTO users (username, email, password_hash, created_at)
			VALUES (?, ?, ?, ?) RETURNING id`), u.Username, u.Email, u.PasswordHash, u.CreatedAt.UTC()).Scan(&u.ID)
		if err != nil {
			return mapUnique(err, map[string]error{"username": types.ErrUserExists})
		}

		p.UserID = u.ID
		_, err = tx.ExecContext(ctx, d.rebind(`INSERT INTO user_profiles (user_id, api_key, api_calls_count,
			api_calls_limit, api_calls_reset_at, is_premium, email_notifications, weekly_reports)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`),
			p.UserID, p.APIKey, p.APICallsCount, p.APICallsLimit, p.APICallsResetAt.UTC(),
			p.IsPremium, p.EmailNotifications, p.WeeklyReports)
		if err != nil {
			return fmt.Errorf("insert profile: %w", err)
		}
		return nil
	})
}

func (d *Database) GetUserByID(ctx context.Context, id int64) (*types.User, error) {
	return d.getUser(ctx, `SELECT id, username, email, password_hash, created_at FROM users WHERE id = ?`, id)
}

func (d *Database) GetUserByUsername(ctx context.Context, username string) (*types.User, error) {
	return d.getUser(ctx, `SELECT id, username, email, password_hash, created_at FROM users WHERE username = ?`, username)
}

func (d *Database) getUser(ctx context.Context, query string, arg any) (*types.User, error) {
	var u types.User
	if err := d.db.GetContext(ctx, &u, d.rebind(query), arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (d *Database) GetProfile(ctx context.Context, userID int64) (*types.UserProfile, error) {
	return d.getProfile(ctx, profileSelect+` WHERE user_id = ?`, userID)
}

func (d *Database) GetProfileByAPIKey(ctx context.Context, apiKey string) (*types.UserProfile, error) {
	return d.getProfile(ctx, profileSelect+` WHERE api_key = ?`, apiKey)
}

func (d *Database) GetProfileByTelegramChat(ctx context.Context, chatID int64) (*types.UserProfile, error) {
	return d.getProfile(ctx, profileSelect+` WHERE telegram_chat_id = ?`, chatID)
}

func (d *Database) getProfile(ctx context.Context, query string, arg any) (*types.UserProfile, error) {
	var p types.UserProfile
	if err := d.db.GetContext(ctx, &p, d.rebind(query), arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrUserNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (d *Database) UpdateAPIKey(ctx context.Context, userID int64, apiKey string) error {
	res, err := d.db.ExecContext(ctx, d.rebind(`UPDATE user_profiles SET api_key = ? WHERE user_id = ?`), apiKey, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return types.ErrUserNotFound
	}
	return nil
}

func (d *Database) UpdatePreferences(ctx context.Context, userID int64, prefs types.ProfilePreferences) error {
	var sets []string
	var args []any
	if prefs.EmailNotifications != nil {
		sets = append(sets, "email_notifications = ?")
		args = append(args, *prefs.EmailNotifications)
	}
	if prefs.WeeklyReports != nil {
		sets = append(sets, "weekly_reports = ?")
		args = append(args, *prefs.WeeklyReports)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, userID)

	query := "UPDATE user_profiles SET " + strings.Join(sets, ", ") + " WHERE user_id = ?"
	res, err := d.db.ExecContext(ctx, d.rebind(query), args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return types.ErrUserNotFound
	}
	return nil
}

// LinkTelegram moves chatID to userID, detaching it from any other profile.
func (d *Database) LinkTelegram(ctx context.Context, userID, chatID int64) error {
	return d.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, d.rebind(`UPDATE user_profiles SET telegram_chat_id = NULL
			WHERE telegram_chat_id = ? AND user_id <> ?`), chatID, userID); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, d.rebind(`UPDATE user_profiles SET telegram_chat_id = ? WHERE user_id = ?`), chatID, userID)
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return types.ErrUserNotFound
		}
		return nil
	})
}

func (d *Database) ResetQuotas(ctx context.Context, periodStart time.Time) (int64, error) {
	periodStart = periodStart.UTC()
	res, err := d.db.ExecContext(ctx, d.rebind(`UPDATE user_profiles SET api_calls_count = 0, api_calls_reset_at = ?
		WHERE api_calls_reset_at < ?`), periodStart, periodStart)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (d *Database) ListWeeklyRecipients(ctx context.Context) ([]types.WeeklyRecipient, error) {
	recipients := []types.WeeklyRecipient{}
	err := d.db.SelectContext(ctx, &recipients, d.rebind(`SELECT u.id AS user_id, u.username, u.email,
		p.email_notifications, p.telegram_chat_id
		FROM users u JOIN user_profiles p ON p.user_id = u.id
		WHERE p.weekly_reports = ? ORDER BY u.id`), true)
	return recipients, err
}

func (d *Database) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := d.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM users`)
	return n, err
}
