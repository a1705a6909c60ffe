package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"urlpro/internal/types"
)

const clickFrom = ` FROM click_events c JOIN short_urls u ON u.id = c.short_url_id`

func (d *Database) RecordClick(ctx context.Context, ev *types.ClickEvent) error {
	if ev.ClickedAt.IsZero() {
		ev.ClickedAt = time.Now()
	}
	ev.ClickedAt = ev.ClickedAt.UTC()

	return d.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, d.rebind(`INSERT INTO click_visitors (short_url_id, ip_address)
			VALUES (?, ?) ON CONFLICT DO NOTHING`), ev.ShortURLID, ev.IPAddress)
		if err != nil {
			return fmt.Errorf("mark visitor: %w", err)
		}
		inserted, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("mark visitor: %w", err)
		}
		ev.IsUnique = inserted == 1

		err = tx.QueryRowxContext(ctx, d.rebind(`INSERT INTO click_events (short_url_id, ip_address,
			user_agent, referer, country, city, device_type, browser, os, clicked_at, is_unique)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`),
			ev.ShortURLID, ev.IPAddress, ev.UserAgent, ev.Referer, ev.Country, ev.City,
			ev.DeviceType, ev.Browser, ev.OS, ev.ClickedAt, ev.IsUnique,
		).Scan(&ev.ID)
		if err != nil {
			return fmt.Errorf("insert click: %w", err)
		}

		uniqueInc := 0
		if ev.IsUnique {
			uniqueInc = 1
		}
		res, err = tx.ExecContext(ctx, d.rebind(`UPDATE short_urls
			SET click_count = click_count + 1, unique_clicks = unique_clicks + ?, last_clicked = ?
			WHERE id = ?`), uniqueInc, ev.ClickedAt, ev.ShortURLID)
		if err != nil {
			return fmt.Errorf("bump counters: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return types.ErrNotFound
		}
		return nil
	})
}

func (d *Database) clickWhere(f types.ClickFilter) (string, []any) {
	var conds []string
	var args []any
	if f.URLID != 0 {
		conds = append(conds, "c.short_url_id = ?")
		args = append(args, f.URLID)
	}
	if f.OwnerID != 0 {
		conds = append(conds, "u.owner_id = ?")
		args = append(args, f.OwnerID)
	}
	if !f.Since.IsZero() {
		conds = append(conds, "c.clicked_at >= ?")
		args = append(args, f.Since.UTC())
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (d *Database) ClickTotals(ctx context.Context, f types.ClickFilter) (types.ClickTotals, error) {
	var t types.ClickTotals
	where, args := d.clickWhere(f)
	query := d.rebind(`SELECT COUNT(*) AS total,
		COALESCE(SUM(CASE WHEN c.is_unique THEN 1 ELSE 0 END), 0) AS uniq` + clickFrom + where)
	err := d.db.GetContext(ctx, &t, query, args...)
	return t, err
}

func (d *Database) DailyClicks(ctx context.Context, f types.ClickFilter) ([]types.DailyCount, error) {
	days := []types.DailyCount{}
	where, args := d.clickWhere(f)
	query := d.rebind(`SELECT ` + d.dayExpr("c.clicked_at") + ` AS day, COUNT(*) AS count` +
		clickFrom + where + ` GROUP BY 1 ORDER BY 1`)
	err := d.db.SelectContext(ctx, &days, query, args...)
	return days, err
}

func (d *Database) GroupClicks(ctx context.Context, f types.ClickFilter, dim types.ClickDimension, limit int) ([]types.CountItem, error) {
	if !dim.Valid() {
		return nil, fmt.Errorf("unknown click dimension %q", dim)
	}
	items := []types.CountItem{}
	where, args := d.clickWhere(f)
	query := d.rebind(`SELECT COALESCE(NULLIF(c.` + string(dim) + `, ''), 'Unknown') AS label, COUNT(*) AS count` +
		clickFrom + where + ` GROUP BY 1 ORDER BY 2 DESC, 1 LIMIT ?`)
	err := d.db.SelectContext(ctx, &items, query, append(args, limit)...)
	return items, err
}

func (d *Database) RecentClicks(ctx context.Context, f types.ClickFilter, limit int) ([]types.ClickEvent, error) {
	events := []types.ClickEvent{}
	where, args := d.clickWhere(f)
	query := d.rebind(`SELECT c.id, c.short_url_id, c.ip_address, c.user_agent, c.referer, c.country,
		c.city, c.device_type, c.browser, c.os, c.clicked_at, c.is_unique` +
		clickFrom + where + ` ORDER BY c.clicked_at DESC, c.id DESC LIMIT ?`)
	err := d.db.SelectContext(ctx, &events, query, append(args, limit)...)
	return events, err
}
