package database

import (
	"context"
	"time"

	"urlpro/internal/types"
)

func (d *Database) CreateNotification(ctx context.Context, n *types.Notification) error {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	if n.Type == "" {
		n.Type = types.NotificationInfo
	}
	return d.db.QueryRowxContext(ctx, d.rebind(`INSERT INTO notifications (user_id, title, message, type, is_read, created_at)
		VALUES (?, ?, ?, ?, ?, ?) RETURNING id`),
		n.UserID, n.Title, n.Message, string(n.Type), n.IsRead, n.CreatedAt.UTC()).Scan(&n.ID)
}

func (d *Database) ListNotifications(ctx context.Context, userID int64, unreadOnly bool, limit int) ([]types.Notification, error) {
	list := []types.Notification{}
	query := `SELECT id, user_id, title, message, type, is_read, created_at FROM notifications WHERE user_id = ?`
	args := []any{userID}
	if unreadOnly {
		query += ` AND is_read = ?`
		args = append(args, false)
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	err := d.db.SelectContext(ctx, &list, d.rebind(query), args...)
	return list, err
}

func (d *Database) MarkNotificationRead(ctx context.Context, userID, id int64) error {
	res, err := d.db.ExecContext(ctx, d.rebind(`UPDATE notifications SET is_read = ? WHERE id = ? AND user_id = ?`), true, id, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return types.ErrNotFound
	}
	return nil
}
