// Package cases manages fundraising cases and their categories. Raised
// amounts are never written here; see package ledger.
package cases

import (
	"charity_system/internal/domain"     // Importing domain models
	"charity_system/internal/repository" // Case details
	"context"                            // Request context
	"fmt"                                // Error wrapping
	"strings"                            // Input normalization

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// CaseStore persists cases
type CaseStore interface {
	FindByID(ctx context.Context, id uint) (*domain.Case, error)
	Create(ctx context.Context, c *domain.Case) error
	UpdateDetails(ctx context.Context, id uint, details repository.CaseDetails) error
	List(ctx context.Context) ([]domain.Case, error)
	ListByOwner(ctx context.Context, userID string) ([]domain.Case, error)
	ListByCategory(ctx context.Context, categoryID uint) ([]domain.Case, error)
	Search(ctx context.Context, query string) ([]domain.Case, error)
}

// UserFinder resolves users by username
type UserFinder interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

// CategoryFinder resolves categories
type CategoryFinder interface {
	FindByID(ctx context.Context, id uint) (*domain.Category, error)
	FindByName(ctx context.Context, name string) (*domain.Category, error)
}

// Input holds the user-supplied fields of a case
type Input struct {
	Title        string
	Description  string
	ImagePath    string
	Goal         int64  // Minor units
	CategoryName string // Used on create only
}

// Service implements case operations
type Service struct {
	cases      CaseStore
	users      UserFinder
	categories CategoryFinder
}

// NewService creates a case service
func NewService(cases CaseStore, users UserFinder, categories CategoryFinder) *Service {
	return &Service{cases: cases, users: users, categories: categories}
}

// Create stores a new approved case owned by the principal
func (s *Service) Create(ctx context.Context, owner domain.Principal, in Input) (*domain.Case, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	user, err := s.users.FindByUsername(ctx, owner.Username)
	if err != nil {
		return nil, err
	}
	category, err := s.categories.FindByName(ctx, in.CategoryName)
	if err != nil {
		return nil, err
	}
	c := &domain.Case{
		Title:        strings.TrimSpace(in.Title),
		Description:  in.Description,
		ImagePath:    in.ImagePath,
		Goal:         in.Goal,
		RaisedAmount: 0,
		Status:       domain.CaseStatusApproved,
		UserID:       user.ID,
		CategoryID:   category.ID,
	}
	if err := s.cases.Create(ctx, c); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"case_id":  c.ID,           // Case ID
		"owner":    owner.Username, // Owner
		"category": category.Name,  // Category
	}).Info("Case created")
	return c, nil
}

// Update changes title, description, goal and (when given) image of a case
// owned by the principal.
func (s *Service) Update(ctx context.Context, p domain.Principal, id uint, in Input) (*domain.Case, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	c, err := s.cases.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindByUsername(ctx, p.Username)
	if err != nil {
		return nil, err
	}
	if c.UserID != user.ID {
		return nil, fmt.Errorf("%w: case %d is owned by another user", domain.ErrForbidden, id)
	}
	details := repository.CaseDetails{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Goal:        in.Goal,
		ImagePath:   in.ImagePath,
	}
	if err := s.cases.UpdateDetails(ctx, id, details); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"case_id": id, "owner": p.Username}).Info("Case updated")
	return s.cases.FindByID(ctx, id)
}

// Get returns one case
func (s *Service) Get(ctx context.Context, id uint) (*domain.Case, error) {
	return s.cases.FindByID(ctx, id)
}

// List returns every case
func (s *Service) List(ctx context.Context) ([]domain.Case, error) {
	return s.cases.List(ctx)
}

// Search returns cases whose title or description contains query
func (s *Service) Search(ctx context.Context, query string) ([]domain.Case, error) {
	return s.cases.Search(ctx, strings.TrimSpace(query))
}

// ListByOwner returns the cases of a user
func (s *Service) ListByOwner(ctx context.Context, username string) ([]domain.Case, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.cases.ListByOwner(ctx, user.ID)
}

// ListByCategory returns the cases of a category
func (s *Service) ListByCategory(ctx context.Context, categoryID uint) ([]domain.Case, error) {
	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.cases.ListByCategory(ctx, categoryID)
}

func validate(in Input) error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if in.Goal <= 0 {
		return fmt.Errorf("%w: goal must be positive", domain.ErrValidation)
	}
	return nil
}
