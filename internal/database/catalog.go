package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"urlpro/internal/types"
)

func (d *Database) CreateCategory(ctx context.Context, c *types.Category) error {
	err := d.db.QueryRowxContext(ctx, d.rebind(`INSERT INTO categories (name, color, icon) VALUES (?, ?, ?) RETURNING id`),
		c.Name, c.Color, c.Icon).Scan(&c.ID)
	return mapUnique(err, map[string]error{"name": types.ErrInvalidCategory})
}

func (d *Database) ListCategories(ctx context.Context) ([]types.Category, error) {
	list := []types.Category{}
	err := d.db.SelectContext(ctx, &list, `SELECT id, name, color, icon FROM categories ORDER BY name`)
	return list, err
}

func (d *Database) CreateDomain(ctx context.Context, dom *types.Domain) error {
	if dom.CreatedAt.IsZero() {
		dom.CreatedAt = time.Now().UTC()
	}
	err := d.db.QueryRowxContext(ctx, d.rebind(`INSERT INTO domains (name, owner_id, is_active, created_at)
		VALUES (?, ?, ?, ?) RETURNING id`), dom.Name, dom.OwnerID, dom.IsActive, dom.CreatedAt.UTC()).Scan(&dom.ID)
	return mapUnique(err, map[string]error{"name": types.ErrDomainTaken})
}

func (d *Database) GetDomain(ctx context.Context, id int64) (*types.Domain, error) {
	var dom types.Domain
	err := d.db.GetContext(ctx, &dom, d.rebind(`SELECT id, name, owner_id, is_active, created_at FROM domains WHERE id = ?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrInvalidDomain
		}
		return nil, err
	}
	return &dom, nil
}

func (d *Database) ListDomains(ctx context.Context, ownerID int64) ([]types.Domain, error) {
	list := []types.Domain{}
	err := d.db.SelectContext(ctx, &list, d.rebind(`SELECT id, name, owner_id, is_active, created_at
		FROM domains WHERE owner_id = ? ORDER BY name`), ownerID)
	return list, err
}
