package repository

import (
	"charity_system/internal/domain" // Importing domain models
	"context"                        // Request context
	"errors"                         // Error inspection
	"fmt"                            // Error wrapping

	"gorm.io/gorm" // GORM ORM library
)

// UserRepository is the user directory backed by the users table
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository wraps a GORM handle
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByUsername returns the user or an error wrapping domain.ErrUserNotFound
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, lookupErr(err, domain.ErrUserNotFound, username)
	}
	return &user, nil
}

// ExistsByUsername reports whether the username is registered
func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username = ?", username)
}

// ExistsByEmail reports whether the email is registered
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email = ?", email)
}

func (r *UserRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.User{}).Where(query, arg).Count(&count).Error; err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	return count > 0, nil
}

// Create inserts the user. Uniqueness is enforced by the unique indexes, so
// concurrent registrations of the same name cannot both succeed; a duplicate
// key failure is classified into ErrUsernameTaken or ErrEmailTaken. Other
// insert failures are returned as they are.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("create user: %w", err)
	}
	taken, checkErr := r.ExistsByUsername(ctx, user.Username)
	if checkErr != nil {
		return errors.Join(fmt.Errorf("create user: %w", err), checkErr)
	}
	if taken {
		return domain.ErrUsernameTaken
	}
	taken, checkErr = r.ExistsByEmail(ctx, user.Email)
	if checkErr != nil {
		return errors.Join(fmt.Errorf("create user: %w", err), checkErr)
	}
	if taken {
		return domain.ErrEmailTaken
	}
	return fmt.Errorf("create user: %w", err)
}
