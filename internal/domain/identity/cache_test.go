package identity

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolutionCache_GetPut(t *testing.T) {
	cache, err := NewResolutionCache(4)
	require.NoError(t, err)

	_, ok := cache.Get("jti-a")
	assert.False(t, ok)

	resolved := ResolvedIdentity{Role: RoleAdmin, Source: SourceStore}
	cache.Put("jti-a", resolved)

	got, ok := cache.Get("jti-a")
	require.True(t, ok)
	assert.Equal(t, resolved, got)
}

func TestResolutionCache_InvalidateIsExplicit(t *testing.T) {
	cache, err := NewResolutionCache(4)
	require.NoError(t, err)

	cache.Put("jti-a", ResolvedIdentity{Role: RolePartner, Source: SourceDefault})
	cache.Invalidate("jti-a")

	_, ok := cache.Get("jti-a")
	assert.False(t, ok)
}

func TestResolutionCache_EvictsLeastRecentlyUsed(t *testing.T) {
	cache, err := NewResolutionCache(2)
	require.NoError(t, err)

	cache.Put("jti-1", ResolvedIdentity{Role: RolePartner, Source: SourceDefault})
	cache.Put("jti-2", ResolvedIdentity{Role: RoleAdmin, Source: SourceStore})

	// Touch jti-1 so jti-2 becomes the eviction candidate.
	_, ok := cache.Get("jti-1")
	require.True(t, ok)

	cache.Put("jti-3", ResolvedIdentity{Role: RoleSuperAdmin, Source: SourceSuperIdentity})

	_, ok = cache.Get("jti-2")
	assert.False(t, ok)
	_, ok = cache.Get("jti-1")
	assert.True(t, ok)
	assert.Equal(t, 2, cache.Len())
}

func TestResolutionCache_EmptyTokenNeverCached(t *testing.T) {
	cache, err := NewResolutionCache(4)
	require.NoError(t, err)

	cache.Put("", ResolvedIdentity{Role: RoleAdmin, Source: SourceStore})
	_, ok := cache.Get("")
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len())

	// Invalidating an empty token is a no-op, not a panic.
	cache.Invalidate("")
}

func TestNewResolutionCache_RejectsNonPositiveSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		t.Run(fmt.Sprintf("size_%d", size), func(t *testing.T) {
			_, err := NewResolutionCache(size)
			assert.Error(t, err)
		})
	}
}
