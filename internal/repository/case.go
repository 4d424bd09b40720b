package repository

import (
	"charity_system/internal/domain" // Importing domain models
	"context"                        // Request context
	"fmt"                            // Error wrapping
	"strings"                        // LIKE pattern escaping

	"gorm.io/gorm" // GORM ORM library
)

// CaseDetails are the case fields an owner may change
type CaseDetails struct {
	Title       string
	Description string
	Goal        int64
	ImagePath   string // Left unchanged when empty
}

// CaseRepository stores fundraising cases
type CaseRepository struct {
	db *gorm.DB
}

// NewCaseRepository wraps a GORM handle
func NewCaseRepository(db *gorm.DB) *CaseRepository {
	return &CaseRepository{db: db}
}

// FindByID returns the case or an error wrapping domain.ErrCaseNotFound
func (r *CaseRepository) FindByID(ctx context.Context, id uint) (*domain.Case, error) {
	var c domain.Case
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, lookupErr(err, domain.ErrCaseNotFound, id)
	}
	return &c, nil
}

// Create inserts a new case
func (r *CaseRepository) Create(ctx context.Context, c *domain.Case) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("create case: %w", err)
	}
	return nil
}

// UpdateDetails rewrites the editable fields of a case.
// raised_amount is deliberately absent from the column list.
func (r *CaseRepository) UpdateDetails(ctx context.Context, id uint, details CaseDetails) error {
	fields := map[string]any{
		"title":       details.Title,
		"description": details.Description,
		"goal":        details.Goal,
	}
	if details.ImagePath != "" {
		fields["image_path"] = details.ImagePath
	}
	if err := r.db.WithContext(ctx).Model(&domain.Case{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return fmt.Errorf("update case: %w", err)
	}
	return nil
}

// List returns all cases ordered by id
func (r *CaseRepository) List(ctx context.Context) ([]domain.Case, error) {
	return r.find(r.db.WithContext(ctx))
}

// ListByOwner returns the cases created by a user
func (r *CaseRepository) ListByOwner(ctx context.Context, userID string) ([]domain.Case, error) {
	return r.find(r.db.WithContext(ctx).Where("user_id = ?", userID))
}

// ListByCategory returns the cases of a category
func (r *CaseRepository) ListByCategory(ctx context.Context, categoryID uint) ([]domain.Case, error) {
	return r.find(r.db.WithContext(ctx).Where("category_id = ?", categoryID))
}

// Search returns cases whose title or description contains query
func (r *CaseRepository) Search(ctx context.Context, query string) ([]domain.Case, error) {
	pattern := "%" + escapeLike(query) + "%"
	q := r.db.WithContext(ctx).Where("title LIKE ? ESCAPE '!' OR description LIKE ? ESCAPE '!'", pattern, pattern)
	return r.find(q)
}

func (r *CaseRepository) find(q *gorm.DB) ([]domain.Case, error) {
	cases := []domain.Case{}
	if err := q.Order("id asc").Find(&cases).Error; err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	return cases, nil
}

// escapeLike escapes LIKE wildcards so user input matches literally
func escapeLike(s string) string {
	return strings.NewReplacer(`!`, `!!`, `%`, `!%`, `_`, `!_`).Replace(s)
}
