package accounts

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/quillpress/quillpress/internal/cache"
	"github.com/quillpress/quillpress/internal/db"
	"github.com/quillpress/quillpress/pkg/logging"
)

// ErrUnknownAccount indicates the account id has no directory row,
// typically a deleted account still referenced by old comments.
var ErrUnknownAccount = errors.New("unknown account")

// DisplayNameResolver maps an account id to a display name.
type DisplayNameResolver interface {
	ResolveDisplayName(ctx context.Context, accountID string) (string, error)
}

// Resolver resolves display names from the account directory.
type Resolver struct {
	accounts *db.AccountRepository
}

// NewResolver creates a directory-backed display name resolver
func NewResolver(accounts *db.AccountRepository) *Resolver {
	return &Resolver{accounts: accounts}
}

// ResolveDisplayName implements DisplayNameResolver
func (r *Resolver) ResolveDisplayName(ctx context.Context, accountID string) (string, error) {
	account, err := r.accounts.GetByID(ctx, accountID)
	if err != nil {
		return "", err
	}
	if account == nil {
		return "", ErrUnknownAccount
	}
	return account.DisplayName, nil
}

// CachedResolver caches resolved names in redis in front of another
// resolver. Cache failures fall open to the source: a name served stale
// or slow is fine, a name served wrong is not, so only positive results
// are cached.
type CachedResolver struct {
	next   DisplayNameResolver
	cache  *cache.Cache
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedResolver wraps next with a redis cache. A nil cache makes
// this a pass-through.
func NewCachedResolver(next DisplayNameResolver, c *cache.Cache, ttl time.Duration) *CachedResolver {
	return &CachedResolver{
		next:   next,
		cache:  c,
		ttl:    ttl,
		logger: logging.GetLogger().With(zap.String("component", "name-resolver-cache")),
	}
}

// ResolveDisplayName implements DisplayNameResolver
func (r *CachedResolver) ResolveDisplayName(ctx context.Context, accountID string) (string, error) {
	key := "account_name:" + accountID
	if name, err := r.cache.Get(ctx, key); err == nil {
		return name, nil
	}

	name, err := r.next.ResolveDisplayName(ctx, accountID)
	if err != nil {
		return "", err
	}

	if err := r.cache.Set(ctx, key, name, r.ttl); err != nil && !errors.Is(err, cache.ErrCacheDisabled) {
		r.logger.Debug("failed to cache display name", zap.Error(err))
	}
	return name, nil
}
