package auth

import (
	"charity_system/internal/domain" // Importing domain models
	"context"                        // Request context
	"errors"                         // Error inspection
	"fmt"                            // Error wrapping
	"strings"                        // Input normalization
	"time"                           // Token expiry

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// UserDirectory is the user store the service authenticates against
type UserDirectory interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *domain.User) error
}

// CaseLister lists the cases a user owns
type CaseLister interface {
	ListByOwner(ctx context.Context, userID string) ([]domain.Case, error)
}

// DonationLister lists the donations a user made
type DonationLister interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Donation, error)
}

// RegisterRequest is a candidate user
type RegisterRequest struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
	Country   string
	ZipCode   int
}

// LoginResult is returned by a successful login
type LoginResult struct {
	Token     string         // Signed access token
	ExpiresAt time.Time      // Absolute token expiry
	Profile   domain.Profile // Profile summary
}

// Service registers users and exchanges credentials for tokens
type Service struct {
	Users     UserDirectory
	Cases     CaseLister
	Donations DonationLister
	Passwords PasswordHasher
	Tokens    *TokenService

	// dummyHash is compared against when the user does not exist, so unknown
	// users cost the same bcrypt work as wrong passwords.
	dummyHash string
}

// NewService wires an authentication service
func NewService(users UserDirectory, cases CaseLister, donations DonationLister, passwords PasswordHasher, tokens *TokenService) (*Service, error) {
	dummy, err := passwords.Hash("dummy-password-for-timing")
	if err != nil {
		return nil, fmt.Errorf("prepare dummy hash: %w", err)
	}
	return &Service{
		Users:     users,
		Cases:     cases,
		Donations: donations,
		Passwords: passwords,
		Tokens:    tokens,
		dummyHash: dummy,
	}, nil
}

// Register creates a REGULAR_USER account. It fails with ErrUsernameTaken or
// ErrEmailTaken when either value is already registered.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" || req.Password == "" || req.Email == "" {
		return nil, fmt.Errorf("%w: username, password and email are required", domain.ErrValidation)
	}
	log := logrus.WithField("username", req.Username)

	// Fast path; the unique indexes remain the authority under races
	if taken, err := s.Users.ExistsByUsername(ctx, req.Username); err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	} else if taken {
		return nil, domain.ErrUsernameTaken
	}
	if taken, err := s.Users.ExistsByEmail(ctx, req.Email); err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	} else if taken {
		return nil, domain.ErrEmailTaken
	}

	hash, err := s.Passwords.Hash(req.Password)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		Username:     req.Username,
		PasswordHash: hash,
		Email:        req.Email,
		Role:         domain.RoleRegularUser,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Country:      req.Country,
		ZipCode:      req.ZipCode,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		log.WithField("error", err.Error()).Warn("Registration failed")
		return nil, err
	}
	log.WithField("user_id", user.ID).Info("User registered")
	return user, nil
}

// Login verifies credentials and issues a token. Unknown users and wrong
// passwords both fail with ErrBadCredentials. The username is trimmed the
// same way Register trims it.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	log := logrus.WithField("username", username)

	user, err := s.Users.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		s.Passwords.Matches(password, s.dummyHash)
		log.Warn("Login rejected")
		return nil, domain.ErrBadCredentials
	}
	if !s.Passwords.Matches(password, user.PasswordHash) {
		log.Warn("Login rejected")
		return nil, domain.ErrBadCredentials
	}

	token, expiresAt, err := s.Tokens.Issue(domain.Principal{Username: user.Username, Role: user.Role}, nil)
	if err != nil {
		return nil, err
	}
	profile, err := s.profileOf(ctx, user)
	if err != nil {
		return nil, err
	}
	log.WithField("expires_at", expiresAt.UTC().Format(time.RFC3339)).Info("Login successful")
	return &LoginResult{Token: token, ExpiresAt: expiresAt, Profile: *profile}, nil
}

// Profile returns the profile summary of a registered user
func (s *Service) Profile(ctx context.Context, username string) (*domain.Profile, error) {
	user, err := s.Users.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	return s.profileOf(ctx, user)
}

// UsernameTaken reports whether the username is registered
func (s *Service) UsernameTaken(ctx context.Context, username string) (bool, error) {
	return s.Users.ExistsByUsername(ctx, strings.TrimSpace(username))
}

// EmailTaken reports whether the email is registered
func (s *Service) EmailTaken(ctx context.Context, email string) (bool, error) {
	return s.Users.ExistsByEmail(ctx, strings.TrimSpace(email))
}

func (s *Service) profileOf(ctx context.Context, user *domain.User) (*domain.Profile, error) {
	cases, err := s.Cases.ListByOwner(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	donations, err := s.Donations.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	return &domain.Profile{
		Username:  user.Username,
		Email:     user.Email,
		Cases:     cases,
		Donations: donations,
	}, nil
}
