package service

import (
	"context"
	"regexp"
	"strings"

	"urlpro/internal/database"
	"urlpro/internal/types"
)

const (
	defaultCategoryColor = "#007bff"
	defaultCategoryIcon  = "fas fa-link"
)

var (
	colorPattern    = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	hostnamePattern = regexp.MustCompile(`^([a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?\.)+[a-z]{2,63}$`)
)

// Catalog manages link categories and custom domains.
type Catalog struct {
	repo database.CatalogRepository
}

func NewCatalog(repo database.CatalogRepository) *Catalog {
	return &Catalog{repo: repo}
}

func (c *Catalog) CreateCategory(ctx context.Context, name, color, icon string) (*types.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > 100 {
		return nil, types.ErrInvalidCategory
	}
	if color == "" {
		color = defaultCategoryColor
	}
	if !colorPattern.MatchString(color) {
		return nil, types.ErrInvalidCategory
	}
	if icon == "" {
		icon = defaultCategoryIcon
	}

	cat := &types.Category{Name: name, Color: color, Icon: icon}
	if err := c.repo.CreateCategory(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (c *Catalog) Categories(ctx context.Context) ([]types.Category, error) {
	return c.repo.ListCategories(ctx)
}

func (c *Catalog) CreateDomain(ctx context.Context, ownerID int64, name string) (*types.Domain, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) > 255 || !hostnamePattern.MatchString(name) {
		return nil, types.ErrInvalidDomain
	}

	dom := &types.Domain{Name: name, OwnerID: ownerID, IsActive: true}
	if err := c.repo.CreateDomain(ctx, dom); err != nil {
		return nil, err
	}
	return dom, nil
}

func (c *Catalog) Domains(ctx context.Context, ownerID int64) ([]types.Domain, error) {
	return c.repo.ListDomains(ctx, ownerID)
}
