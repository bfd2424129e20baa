package accounts

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/quillpress/quillpress/internal/db"
	"github.com/quillpress/quillpress/internal/models"
)

func newAccountRepo(t *testing.T) *db.AccountRepository {
	t.Helper()

	g, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := g.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	d := &db.DB{DB: g}
	require.NoError(t, d.Migrate())
	t.Cleanup(func() { d.Close() })

	return db.NewAccountRepository(db.NewRepository(d.DB))
}

func TestResolver_ResolveDisplayName(t *testing.T) {
	repo := newAccountRepo(t)
	ctx := context.Background()

	account := &models.Account{
		ID:          uuid.NewString(),
		DisplayName: "Alice",
		Email:       "alice@example.com",
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, account))

	resolver := NewResolver(repo)

	name, err := resolver.ResolveDisplayName(ctx, account.ID)
	require.NoError(t, err)
	require.Equal(t, "Alice", name)

	_, err = resolver.ResolveDisplayName(ctx, uuid.NewString())
	require.ErrorIs(t, err, ErrUnknownAccount)
}

func TestCachedResolver_PassesThroughWithoutRedis(t *testing.T) {
	repo := newAccountRepo(t)
	ctx := context.Background()

	account := &models.Account{
		ID:          uuid.NewString(),
		DisplayName: "Bob",
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, account))

	// nil cache: every call falls through to the directory.
	resolver := NewCachedResolver(NewResolver(repo), nil, time.Minute)

	name, err := resolver.ResolveDisplayName(ctx, account.ID)
	require.NoError(t, err)
	require.Equal(t, "Bob", name)

	_, err = resolver.ResolveDisplayName(ctx, uuid.NewString())
	require.ErrorIs(t, err, ErrUnknownAccount)
}
