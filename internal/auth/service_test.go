package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"charity_system/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// mockUserDirectory implements UserDirectory, CaseLister and DonationLister
// in memory.
type mockUserDirectory struct {
	m     sync.Mutex
	users map[string]*domain.User
	err   error
}

func newMockUserDirectory() *mockUserDirectory {
	return &mockUserDirectory{users: make(map[string]*domain.User)}
}

func (d *mockUserDirectory) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	d.m.Lock()
	defer d.m.Unlock()
	if d.err != nil {
		return nil, d.err
	}
	u, ok := d.users[username]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, username)
	}
	return u, nil
}

func (d *mockUserDirectory) ExistsByUsername(_ context.Context, username string) (bool, error) {
	d.m.Lock()
	defer d.m.Unlock()
	if d.err != nil {
		return false, d.err
	}
	_, ok := d.users[username]
	return ok, nil
}

func (d *mockUserDirectory) ExistsByEmail(_ context.Context, email string) (bool, error) {
	d.m.Lock()
	defer d.m.Unlock()
	if d.err != nil {
		return false, d.err
	}
	for _, u := range d.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (d *mockUserDirectory) Create(_ context.Context, user *domain.User) error {
	d.m.Lock()
	defer d.m.Unlock()
	if d.err != nil {
		return d.err
	}
	if _, ok := d.users[user.Username]; ok {
		return domain.ErrUsernameTaken
	}
	user.ID = fmt.Sprintf("user-%d", len(d.users)+1)
	d.users[user.Username] = user
	return nil
}

func (d *mockUserDirectory) ListByOwner(context.Context, string) ([]domain.Case, error) {
	return []domain.Case{}, nil
}

func (d *mockUserDirectory) ListByUser(context.Context, string) ([]domain.Donation, error) {
	return []domain.Donation{}, nil
}

var errStorage = errors.New("storage unavailable")

func setupTestService(t *testing.T) (*Service, *mockUserDirectory, *TokenService) {
	t.Helper()
	dir := newMockUserDirectory()
	tokens, err := NewTokenService(testSecret, time.Hour, nil)
	require.NoError(t, err)
	svc, err := NewService(dir, dir, dir, PasswordHasher{Cost: bcrypt.MinCost}, tokens)
	require.NoError(t, err)
	return svc, dir, tokens
}

func TestService_RegisterAndLoginScenario(t *testing.T) {
	svc, _, tokens := setupTestService(t)
	ctx := context.Background()

	taken, err := svc.UsernameTaken(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, taken)

	user, err := svc.Register(ctx, RegisterRequest{Username: "alice", Password: "pw123", Email: "alice@example.com"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleRegularUser, user.Role)
	assert.NotEqual(t, "pw123", user.PasswordHash)

	taken, err = svc.UsernameTaken(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, taken)
	taken, err = svc.EmailTaken(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, taken)

	res, err := svc.Login(ctx, "alice", "pw123")
	require.NoError(t, err)
	assert.Equal(t, "alice", res.Profile.Username)
	assert.Equal(t, "alice@example.com", res.Profile.Email)
	assert.Empty(t, res.Profile.Cases)
	assert.Empty(t, res.Profile.Donations)
	assert.True(t, res.ExpiresAt.After(time.Now()))

	subject, err := ExtractClaim(tokens, res.Token, func(c *Claims) string { return c.Subject })
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)

	p, err := tokens.Validate(res.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleRegularUser, p.Role)

	_, err = svc.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, domain.ErrBadCredentials)
}

func TestService_LoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _, _ := setupTestService(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, RegisterRequest{Username: "alice", Password: "pw123", Email: "alice@example.com"})
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, "alice", "nope")
	_, unknownUser := svc.Login(ctx, "mallory", "pw123")

	require.Error(t, wrongPassword)
	require.Error(t, unknownUser)
	assert.Equal(t, wrongPassword, unknownUser)
	assert.Equal(t, domain.ErrBadCredentials.Error(), unknownUser.Error())
}

func TestService_Register(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		repoErr error
		wantErr error
	}{
		{
			name: "successful registration",
			req:  RegisterRequest{Username: "newuser", Password: "password123", Email: "new@example.com"},
		},
		{
			name:    "duplicate username",
			req:     RegisterRequest{Username: "existing", Password: "password123", Email: "other@example.com"},
			wantErr: domain.ErrUsernameTaken,
		},
		{
			name:    "duplicate email",
			req:     RegisterRequest{Username: "fresh", Password: "password123", Email: "existing@example.com"},
			wantErr: domain.ErrEmailTaken,
		},
		{
			name:    "missing password",
			req:     RegisterRequest{Username: "fresh", Email: "fresh@example.com"},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "repository error",
			req:     RegisterRequest{Username: "erroruser", Password: "password123", Email: "err@example.com"},
			repoErr: errStorage,
			wantErr: errStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, dir, _ := setupTestService(t)
			_, err := svc.Register(context.Background(), RegisterRequest{Username: "existing", Password: "pw", Email: "existing@example.com"})
			require.NoError(t, err)
			dir.err = tt.repoErr

			_, err = svc.Register(context.Background(), tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestService_UsernameTrimmedConsistently(t *testing.T) {
	svc, _, _ := setupTestService(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, RegisterRequest{Username: " alice ", Password: "pw123", Email: " alice@example.com"})
	require.NoError(t, err)

	for _, username := range []string{" alice ", " alice", "alice"} {
		res, err := svc.Login(ctx, username, "pw123")
		require.NoError(t, err, "login as %q", username)
		assert.Equal(t, "alice", res.Profile.Username)

		profile, err := svc.Profile(ctx, username)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", profile.Email)

		taken, err := svc.UsernameTaken(ctx, username)
		require.NoError(t, err)
		assert.True(t, taken)
	}
	taken, err := svc.EmailTaken(ctx, "alice@example.com ")
	require.NoError(t, err)
	assert.True(t, taken)

	// Passwords are never trimmed
	_, err = svc.Login(ctx, "alice", " pw123")
	assert.ErrorIs(t, err, domain.ErrBadCredentials)
}

func TestService_LoginStorageFailure(t *testing.T) {
	svc, dir, _ := setupTestService(t)
	dir.err = errStorage

	_, err := svc.Login(context.Background(), "alice", "pw123")
	assert.ErrorIs(t, err, errStorage)
	assert.NotErrorIs(t, err, domain.ErrBadCredentials)
}

func TestService_Profile(t *testing.T) {
	svc, _, _ := setupTestService(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, RegisterRequest{Username: "alice", Password: "pw123", Email: "alice@example.com"})
	require.NoError(t, err)

	profile, err := svc.Profile(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", profile.Email)

	_, err = svc.Profile(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestPrincipalContext(t *testing.T) {
	ctx := context.Background()
	_, ok := PrincipalFrom(ctx)
	assert.False(t, ok)

	p := domain.Principal{Username: "alice", Role: domain.RoleRegularUser}
	got, ok := PrincipalFrom(WithPrincipal(ctx, p))
	assert.True(t, ok)
	assert.Equal(t, p, got)
}
