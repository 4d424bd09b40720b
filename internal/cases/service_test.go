package cases

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"charity_system/internal/db"
	"charity_system/internal/domain"
	"charity_system/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc        *Service
	categories *Categories
	cache      *memoryCache
	store      *repository.CategoryRepository
	medical    *domain.Category
}

func setup(t *testing.T) *fixture {
	t.Helper()
	gdb, err := db.OpenSQLite(":memory:", true)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	ctx := context.Background()
	users := repository.NewUserRepository(gdb)
	for _, name := range []string{"alice", "bob"} {
		require.NoError(t, users.Create(ctx, &domain.User{Username: name, Email: name + "@example.com", PasswordHash: "x", Role: domain.RoleRegularUser}))
	}
	categories := repository.NewCategoryRepository(gdb)
	medical := &domain.Category{Name: "Medical"}
	require.NoError(t, categories.Create(ctx, medical))

	cache := newMemoryCache()
	return &fixture{
		svc:        NewService(repository.NewCaseRepository(gdb), users, categories),
		categories: NewCategories(categories, cache),
		cache:      cache,
		store:      categories,
		medical:    medical,
	}
}

var alice = domain.Principal{Username: "alice", Role: domain.RoleRegularUser}

func TestService_CreateAndRead(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	c, err := f.svc.Create(ctx, alice, Input{Title: "Surgery", Description: "Knee", ImagePath: "https://img/1", Goal: 50000, CategoryName: "Medical"})
	require.NoError(t, err)
	assert.Equal(t, domain.CaseStatusApproved, c.Status)
	assert.Zero(t, c.RaisedAmount)
	assert.Equal(t, f.medical.ID, c.CategoryID)

	got, err := f.svc.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Surgery", got.Title)

	all, err := f.svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	mine, err := f.svc.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, mine, 1)
	theirs, err := f.svc.ListByOwner(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, theirs)

	byCategory, err := f.svc.ListByCategory(ctx, f.medical.ID)
	require.NoError(t, err)
	assert.Len(t, byCategory, 1)

	found, err := f.svc.Search(ctx, " knee ")
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestService_CreateRejections(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, alice, Input{Title: "", Goal: 100, CategoryName: "Medical"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = f.svc.Create(ctx, alice, Input{Title: "x", Goal: 0, CategoryName: "Medical"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = f.svc.Create(ctx, alice, Input{Title: "x", Goal: 100, CategoryName: "Unknown"})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	_, err = f.svc.Create(ctx, domain.Principal{Username: "ghost"}, Input{Title: "x", Goal: 100, CategoryName: "Medical"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = f.svc.Get(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrCaseNotFound)
	_, err = f.svc.ListByCategory(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	_, err = f.svc.ListByOwner(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestService_Update(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	c, err := f.svc.Create(ctx, alice, Input{Title: "Surgery", ImagePath: "https://img/1", Goal: 50000, CategoryName: "Medical"})
	require.NoError(t, err)

	updated, err := f.svc.Update(ctx, alice, c.ID, Input{Title: "Hip surgery", Description: "Updated", Goal: 80000})
	require.NoError(t, err)
	assert.Equal(t, "Hip surgery", updated.Title)
	assert.Equal(t, int64(80000), updated.Goal)
	assert.Equal(t, "https://img/1", updated.ImagePath, "image kept when not replaced")

	_, err = f.svc.Update(ctx, domain.Principal{Username: "bob"}, c.ID, Input{Title: "Mine now", Goal: 1})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.svc.Update(ctx, alice, c.ID+1, Input{Title: "x", Goal: 1})
	assert.ErrorIs(t, err, domain.ErrCaseNotFound)
}

// memoryCache is a JSON round-tripping Cache for tests
type memoryCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string, dest any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dest)
}

func (c *memoryCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = b
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func TestCategories(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	list, cached, err := f.categories.List(ctx)
	require.NoError(t, err)
	assert.False(t, cached)
	require.Len(t, list, 1)
	assert.Equal(t, "Medical", list[0].Name)

	// Served from the cache on the second call, even after a new insert
	require.NoError(t, f.store.Create(ctx, &domain.Category{Name: "Education"}))
	list, cached, err = f.categories.List(ctx)
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Len(t, list, 1)

	require.NoError(t, f.cache.Delete(ctx, categoriesCacheKey))
	list, cached, err = f.categories.List(ctx)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Len(t, list, 2)

	got, err := f.categories.Get(ctx, f.medical.ID)
	require.NoError(t, err)
	assert.Equal(t, "Medical", got.Name)
	_, err = f.categories.Get(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}
