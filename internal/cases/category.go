package cases

import (
	"charity_system/internal/domain" // Importing domain models
	"charity_system/internal/utils"  // Cache
	"context"                        // Request context
	"time"                           // Cache TTL

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

const (
	categoriesCacheKey = "categories:all"
	categoriesCacheTTL = 60 * time.Second
)

// CategoryStore lists and resolves categories
type CategoryStore interface {
	List(ctx context.Context) ([]domain.Category, error)
	FindByID(ctx context.Context, id uint) (*domain.Category, error)
}

// Categories serves the read-mostly category list, cached for a minute
type Categories struct {
	store CategoryStore
	cache utils.Cache
}

// NewCategories creates the category service; cache may be utils.NopCache
func NewCategories(store CategoryStore, cache utils.Cache) *Categories {
	return &Categories{store: store, cache: cache}
}

// List returns all categories and whether they came from the cache
func (c *Categories) List(ctx context.Context) ([]domain.Category, bool, error) {
	var cached []domain.Category
	found, err := c.cache.Get(ctx, categoriesCacheKey, &cached)
	if err != nil {
		logrus.WithField("error", err.Error()).Warn("Category cache read failed") // Fall through to the database
	} else if found {
		return cached, true, nil
	}
	categories, err := c.store.List(ctx)
	if err != nil {
		return nil, false, err
	}
	if err := c.cache.Set(ctx, categoriesCacheKey, categories, categoriesCacheTTL); err != nil {
		logrus.WithField("error", err.Error()).Warn("Category cache write failed")
	}
	return categories, false, nil
}

// Get returns a category or an error wrapping domain.ErrCategoryNotFound
func (c *Categories) Get(ctx context.Context, id uint) (*domain.Category, error) {
	return c.store.FindByID(ctx, id)
}
