package identity

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, repo Repository, side SideChannel) *Service {
	t.Helper()
	cache, err := NewResolutionCache(16)
	require.NoError(t, err)
	return NewService(
		NewResolver(SuperIdentity{}, repo),
		NewSynchronizer(side, zerolog.Nop()),
		cache,
		repo,
		zerolog.Nop(),
	)
}

func TestResolveSession_CachesPerToken(t *testing.T) {
	repo := &mockRepository{records: map[string]*IdentityRecord{
		"sub-1": {Subject: "sub-1", Role: RoleAdmin},
	}}
	svc := newTestService(t, repo, &mockSideChannel{})

	p := Principal{Subject: "sub-1", TokenID: "jti-1"}
	claims := SessionClaims{Application: ClaimSet{Role: "admin"}}

	first, err := svc.ResolveSession(context.Background(), p, claims)
	require.NoError(t, err)
	assert.False(t, first.FromCache)

	callsAfterFirst := repo.calls
	second, err := svc.ResolveSession(context.Background(), p, claims)
	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.Equal(t, first.Resolved, second.Resolved)
	assert.Equal(t, callsAfterFirst, repo.calls, "cache hit must not touch the store")
}

func TestResolveSession_DriftSkipsCacheAndFlagsRefresh(t *testing.T) {
	repo := &mockRepository{records: map[string]*IdentityRecord{
		"sub-2": {Subject: "sub-2", Role: RoleAdmin},
	}}
	side := &mockSideChannel{}
	svc := newTestService(t, repo, side)

	p := Principal{Subject: "sub-2", TokenID: "jti-2"}
	staleClaims := SessionClaims{Application: ClaimSet{Role: "partner", PartnerID: partnerA}}

	res, err := svc.ResolveSession(context.Background(), p, staleClaims)
	require.NoError(t, err)
	// Application claims win for this request; the store record is pushed
	// into the claims for the next one.
	assert.Equal(t, RolePartner, res.Resolved.Role)
	assert.Equal(t, SourceApplicationClaims, res.Resolved.Source)
	assert.True(t, res.RefreshRequired)
	assert.Equal(t, 1, side.updates)

	// The stale token was not cached.
	again, err := svc.ResolveSession(context.Background(), p, staleClaims)
	require.NoError(t, err)
	assert.False(t, again.FromCache)
}

func TestResolveSession_StoreUnavailableFailsResolution(t *testing.T) {
	repo := &mockRepository{err: ErrStoreUnavailable}
	svc := newTestService(t, repo, &mockSideChannel{})

	_, err := svc.ResolveSession(context.Background(), Principal{Subject: "sub-3", TokenID: "jti-3"}, SessionClaims{})
	require.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestResolveSession_ReconcileFailureDoesNotFailResolution(t *testing.T) {
	// Claims carry a valid role so resolution succeeds without the store;
	// the reconcile lookup then fails and is swallowed.
	repo := &mockRepository{err: ErrStoreUnavailable}
	svc := newTestService(t, repo, &mockSideChannel{})

	claims := SessionClaims{Application: ClaimSet{Role: "admin"}}
	res, err := svc.ResolveSession(context.Background(), Principal{Subject: "sub-4", TokenID: "jti-4"}, claims)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, res.Resolved.Role)
	assert.False(t, res.RefreshRequired)
}

func TestInvalidateSession(t *testing.T) {
	repo := &mockRepository{records: map[string]*IdentityRecord{
		"sub-5": {Subject: "sub-5", Role: RoleAdmin},
	}}
	svc := newTestService(t, repo, &mockSideChannel{})

	p := Principal{Subject: "sub-5", TokenID: "jti-5"}
	claims := SessionClaims{Application: ClaimSet{Role: "admin"}}

	_, err := svc.ResolveSession(context.Background(), p, claims)
	require.NoError(t, err)

	svc.InvalidateSession("jti-5")

	res, err := svc.ResolveSession(context.Background(), p, claims)
	require.NoError(t, err)
	assert.False(t, res.FromCache)
}
