package repository

import (
	"charity_system/internal/domain" // Importing domain models
	"context"                        // Request context
	"fmt"                            // Error wrapping

	"gorm.io/gorm" // GORM ORM library
)

// CategoryRepository stores case categories
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository wraps a GORM handle
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// List returns every category ordered by id
func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	categories := []domain.Category{}
	if err := r.db.WithContext(ctx).Order("id asc").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// FindByID returns the category or an error wrapping domain.ErrCategoryNotFound
func (r *CategoryRepository) FindByID(ctx context.Context, id uint) (*domain.Category, error) {
	var category domain.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, lookupErr(err, domain.ErrCategoryNotFound, id)
	}
	return &category, nil
}

// FindByName returns the category or an error wrapping domain.ErrCategoryNotFound
func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	var category domain.Category
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error; err != nil {
		return nil, lookupErr(err, domain.ErrCategoryNotFound, name)
	}
	return &category, nil
}

// Create inserts a category
func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}
