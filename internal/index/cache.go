package index

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/albapepper/Scoracle-sub000/internal/cache"
	"github.com/albapepper/Scoracle-sub000/internal/catalog"
)

// buildTimeout bounds a detached index build once its first caller is gone
const buildTimeout = 30 * time.Second

// CachedBuilder builds per-sport indexes on demand and keeps them in an
// injected TTL store. Concurrent misses for the same sport are coalesced so
// exactly one build runs per refresh cycle; late callers share its result.
type CachedBuilder struct {
	provider catalog.Provider
	store    cache.Store
	ttl      time.Duration
	surnames map[string]bool
	group    singleflight.Group
}

// NewCachedBuilder wires a catalog provider to a cache store. A nil store
// disables caching (every call builds fresh).
func NewCachedBuilder(provider catalog.Provider, store cache.Store, ttl time.Duration, surnames map[string]bool) *CachedBuilder {
	return &CachedBuilder{
		provider: provider,
		store:    store,
		ttl:      ttl,
		surnames: surnames,
	}
}

// Index returns the built index for a sport, building and publishing it on
// a miss. The build runs detached from the caller's context: cancellation
// abandons the wait but never leaves a half-built index in the store.
func (b *CachedBuilder) Index(ctx context.Context, sport string) (*Index, error) {
	if b.store != nil {
		if v, ok := b.store.Get(sport); ok {
			return v.(*Index), nil
		}
	}

	ch := b.group.DoChan(sport, func() (interface{}, error) {
		// Detached context: the shared build must not die with whichever
		// caller happened to trigger it.
		buildCtx, cancel := context.WithTimeout(context.Background(), buildTimeout)
		defer cancel()

		cat, err := b.provider.Catalog(buildCtx, sport)
		if err != nil {
			return nil, err
		}

		ix := Build(catalog.Compile(cat, b.surnames))
		if b.store != nil {
			b.store.Set(sport, ix, b.ttl)
		}
		return ix, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Index), nil
	}
}

// Invalidate drops the cached index for a sport, forcing a rebuild
func (b *CachedBuilder) Invalidate(sport string) {
	if b.store != nil {
		b.store.Delete(sport)
	}
}
