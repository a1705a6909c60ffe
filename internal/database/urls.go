package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"urlpro/internal/types"
)

const urlSelect = `SELECT u.id, u.original_url, u.short_code, u.custom_alias, u.owner_id, u.category_id,
	u.domain_id, d.name AS domain_name, u.password_hash, u.title, u.description, u.meta_title,
	u.meta_description, u.tags, u.is_private, u.is_active, u.created_at, u.expires_at,
	u.click_count, u.unique_clicks, u.last_clicked, u.qr_code
	FROM short_urls u LEFT JOIN domains d ON d.id = u.domain_id`

func (d *Database) CreateURL(ctx context.Context, u *types.ShortURL, apiKey string) error {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	var expiresAt *time.Time
	if u.ExpiresAt != nil {
		t := u.ExpiresAt.UTC()
		expiresAt = &t
	}

	return d.withTx(ctx, func(tx *sqlx.Tx) error {
		if apiKey != "" {
			if err := d.chargeQuota(ctx, tx, apiKey); err != nil {
				return err
			}
		}

		if err := d.checkSlugNamespace(ctx, tx, u); err != nil {
			return err
		}

		query := d.rebind(`INSERT INTO short_urls (original_url, short_code, custom_alias, owner_id,
			category_id, domain_id, password_hash, title, description, meta_title, meta_description,
			tags, is_private, is_active, created_at, expires_at, qr_code)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`)

		err := tx.QueryRowxContext(ctx, query,
			u.OriginalURL, u.ShortCode, u.CustomAlias, u.OwnerID,
			u.CategoryID, u.DomainID, u.PasswordHash, u.Title, u.Description, u.MetaTitle, u.MetaDescription,
			u.Tags, u.IsPrivate, u.IsActive, u.CreatedAt.UTC(), expiresAt, u.QRCode,
		).Scan(&u.ID)
		if err != nil {
			return mapUnique(err, map[string]error{
				"custom_alias": types.ErrAliasTaken,
				"short_code":   types.ErrCodeTaken,
			})
		}
		return nil
	})
}

// chargeQuota consumes one API call, failing when the key is at its limit.
func (d *Database) chargeQuota(ctx context.Context, tx *sqlx.Tx, apiKey string) error {
	res, err := tx.ExecContext(ctx, d.rebind(`UPDATE user_profiles
		SET api_calls_count = api_calls_count + 1
		WHERE api_key = ? AND api_calls_count < api_calls_limit`), apiKey)
	if err != nil {
		return fmt.Errorf("charge quota: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("charge quota: %w", err)
	}
	if n == 0 {
		return types.ErrQuotaExceeded
	}
	return nil
}

// checkSlugNamespace keeps codes and aliases from shadowing each other.
func (d *Database) checkSlugNamespace(ctx context.Context, tx *sqlx.Tx, u *types.ShortURL) error {
	var n int
	if err := tx.GetContext(ctx, &n, d.rebind(`SELECT COUNT(*) FROM short_urls WHERE custom_alias = ?`), u.ShortCode); err != nil {
		return err
	}
	if n > 0 {
		return types.ErrCodeTaken
	}

	if u.CustomAlias == nil || *u.CustomAlias == "" {
		return nil
	}
	if err := tx.GetContext(ctx, &n, d.rebind(`SELECT COUNT(*) FROM short_urls WHERE short_code = ?`), *u.CustomAlias); err != nil {
		return err
	}
	if n > 0 {
		return types.ErrAliasTaken
	}
	return nil
}

// GetBySlug matches the code first, then the alias. Matching is case-sensitive.
func (d *Database) GetBySlug(ctx context.Context, slug string) (*types.ShortURL, error) {
	var u types.ShortURL
	query := d.rebind(urlSelect + ` WHERE u.short_code = ? OR u.custom_alias = ?
		ORDER BY CASE WHEN u.short_code = ? THEN 0 ELSE 1 END LIMIT 1`)
	if err := d.db.GetContext(ctx, &u, query, slug, slug, slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (d *Database) FindReusable(ctx context.Context, originalURL string) (*types.ShortURL, error) {
	var u types.ShortURL
	query := d.rebind(urlSelect + ` WHERE u.original_url = ? AND u.owner_id IS NULL AND u.password_hash IS NULL
		AND u.is_private = ? AND u.is_active = ? AND u.expires_at IS NULL ORDER BY u.id LIMIT 1`)
	if err := d.db.GetContext(ctx, &u, query, originalURL, false, true); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (d *Database) ListByOwner(ctx context.Context, ownerID int64, limit int) ([]types.ShortURL, error) {
	urls := []types.ShortURL{}
	query := d.rebind(urlSelect + ` WHERE u.owner_id = ? ORDER BY u.created_at DESC, u.id DESC LIMIT ?`)
	err := d.db.SelectContext(ctx, &urls, query, ownerID, limit)
	return urls, err
}

func (d *Database) ListRecentPublic(ctx context.Context, limit int) ([]types.ShortURL, error) {
	urls := []types.ShortURL{}
	query := d.rebind(urlSelect + ` WHERE u.owner_id IS NULL AND u.is_private = ?
		ORDER BY u.created_at DESC, u.id DESC LIMIT ?`)
	err := d.db.SelectContext(ctx, &urls, query, false, limit)
	return urls, err
}

func (d *Database) ListPopular(ctx context.Context, limit int) ([]types.ShortURL, error) {
	urls := []types.ShortURL{}
	query := d.rebind(urlSelect + ` WHERE u.is_private = ? AND u.is_active = ?
		ORDER BY u.click_count DESC, u.id LIMIT ?`)
	err := d.db.SelectContext(ctx, &urls, query, false, true, limit)
	return urls, err
}

func (d *Database) DeactivateExpired(ctx context.Context, now time.Time) ([]string, error) {
	now = now.UTC()
	var slugs []string

	err := d.withTx(ctx, func(tx *sqlx.Tx) error {
		var rows []struct {
			ShortCode   string  `db:"short_code"`
			CustomAlias *string `db:"custom_alias"`
		}
		err := tx.SelectContext(ctx, &rows, d.rebind(`SELECT short_code, custom_alias FROM short_urls
			WHERE is_active = ? AND expires_at IS NOT NULL AND expires_at < ?`), true, now)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}

		_, err = tx.ExecContext(ctx, d.rebind(`UPDATE short_urls SET is_active = ?
			WHERE is_active = ? AND expires_at IS NOT NULL AND expires_at < ?`), false, true, now)
		if err != nil {
			return err
		}

		for _, r := range rows {
			slugs = append(slugs, r.ShortCode)
			if r.CustomAlias != nil && *r.CustomAlias != "" {
				slugs = append(slugs, *r.CustomAlias)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("deactivate expired: %w", err)
	}
	return slugs, nil
}

func (d *Database) SiteTotals(ctx context.Context) (types.SiteTotals, error) {
	var t types.SiteTotals
	err := d.db.GetContext(ctx, &t, `SELECT COUNT(*) AS urls, COALESCE(SUM(click_count), 0) AS clicks FROM short_urls`)
	return t, err
}

func (d *Database) OwnerTotals(ctx context.Context, ownerID int64, now time.Time) (types.OwnerTotals, error) {
	var t types.OwnerTotals
	now = now.UTC()
	query := d.rebind(`SELECT COUNT(*) AS urls,
		COALESCE(SUM(click_count), 0) AS clicks,
		COALESCE(SUM(CASE WHEN is_active = ? AND (expires_at IS NULL OR expires_at > ?) THEN 1 ELSE 0 END), 0) AS active,
		COALESCE(SUM(CASE WHEN expires_at IS NOT NULL AND expires_at <= ? THEN 1 ELSE 0 END), 0) AS expired
		FROM short_urls WHERE owner_id = ?`)
	err := d.db.GetContext(ctx, &t, query, true, now, now, ownerID)
	return t, err
}
