package identity

import (
	lru "github.com/hashicorp/golang-lru"
)

// ResolutionCache memoizes resolver output per session token. Resolution runs
// once per token, not once per request; entries live until the synchronizer's
// refresh instruction invalidates them or capacity eviction reclaims memory.
// There is no TTL: a timer could serve a stale role after a privilege change,
// the explicit invalidation cannot.
type ResolutionCache struct {
	cache *lru.Cache
}

// NewResolutionCache builds a cache holding at most size entries.
func NewResolutionCache(size int) (*ResolutionCache, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &ResolutionCache{cache: cache}, nil
}

// Get returns the cached resolution for a token, if any.
func (c *ResolutionCache) Get(tokenID string) (ResolvedIdentity, bool) {
	if tokenID == "" {
		return ResolvedIdentity{}, false
	}
	val, ok := c.cache.Get(tokenID)
	if !ok {
		return ResolvedIdentity{}, false
	}
	resolved, ok := val.(ResolvedIdentity)
	return resolved, ok
}

// Put stores the resolution for a token.
func (c *ResolutionCache) Put(tokenID string, resolved ResolvedIdentity) {
	if tokenID == "" {
		return
	}
	c.cache.Add(tokenID, resolved)
}

// Invalidate drops a token's entry. Called when the synchronizer rewrote
// claims so no request keeps serving the pre-sync resolution.
func (c *ResolutionCache) Invalidate(tokenID string) {
	if tokenID == "" {
		return
	}
	c.cache.Remove(tokenID)
}

// Len reports the number of cached resolutions.
func (c *ResolutionCache) Len() int {
	return c.cache.Len()
}
