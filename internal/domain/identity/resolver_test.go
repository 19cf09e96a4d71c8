package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRepository is a hand-rolled identity store for resolver tests.
type mockRepository struct {
	records map[string]*IdentityRecord
	err     error
	calls   int
}

func (m *mockRepository) FindBySubject(_ context.Context, subject string) (*IdentityRecord, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.records[subject], nil
}

func (m *mockRepository) FindByID(context.Context, uint) (*IdentityRecord, error) { return nil, nil }
func (m *mockRepository) List(context.Context) ([]*IdentityRecord, error)         { return nil, nil }
func (m *mockRepository) Upsert(_ context.Context, r *IdentityRecord) (*IdentityRecord, error) {
	return r, nil
}

func mustUUID(t *testing.T, raw string) *uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(raw)
	require.NoError(t, err)
	return &id
}

const (
	partnerA = "7e9c5d1a-0b3f-4a86-9c41-2f8f1c9e5a01"
	partnerB = "3f2b8c7d-6e5a-4d91-8b20-9a1c4e7f6b02"
)

func TestResolve_SuperIdentityBeatsEverything(t *testing.T) {
	repo := &mockRepository{records: map[string]*IdentityRecord{
		"sub-1": {Subject: "sub-1", Role: RolePartner, PartnerID: mustUUID(t, partnerA)},
	}}
	resolver := NewResolver(SuperIdentity{Subject: "sub-1", Email: "ops@example.com"}, repo)

	claims := SessionClaims{
		Application: ClaimSet{Role: "partner", PartnerID: partnerA},
		User:        ClaimSet{Role: "partner", PartnerID: partnerB},
	}

	resolved, err := resolver.Resolve(context.Background(), Principal{Subject: "sub-1"}, claims)
	require.NoError(t, err)
	assert.Equal(t, RoleSuperAdmin, resolved.Role)
	assert.Nil(t, resolved.PartnerID)
	assert.Equal(t, SourceSuperIdentity, resolved.Source)
	assert.Zero(t, repo.calls, "super identity must not touch the store")
}

func TestResolve_SuperIdentityEmailCaseInsensitive(t *testing.T) {
	resolver := NewResolver(SuperIdentity{Email: "ops@example.com"}, &mockRepository{})

	resolved, err := resolver.Resolve(context.Background(), Principal{Subject: "x", Email: "OPS@Example.COM"}, SessionClaims{})
	require.NoError(t, err)
	assert.Equal(t, RoleSuperAdmin, resolved.Role)
}

func TestResolve_ApplicationClaimsBeatUserClaimsAndStore(t *testing.T) {
	repo := &mockRepository{records: map[string]*IdentityRecord{
		"sub-2": {Subject: "sub-2", Role: RoleAdmin},
	}}
	resolver := NewResolver(SuperIdentity{}, repo)

	claims := SessionClaims{
		Application: ClaimSet{Role: "partner", PartnerID: partnerA},
		User:        ClaimSet{Role: "admin"},
	}

	resolved, err := resolver.Resolve(context.Background(), Principal{Subject: "sub-2"}, claims)
	require.NoError(t, err)
	assert.Equal(t, RolePartner, resolved.Role)
	assert.Equal(t, *mustUUID(t, partnerA), *resolved.PartnerID)
	assert.Equal(t, SourceApplicationClaims, resolved.Source)
	assert.Zero(t, repo.calls)
}

func TestResolve_UserClaimsOnlyWhenApplicationAbsent(t *testing.T) {
	resolver := NewResolver(SuperIdentity{}, &mockRepository{})

	claims := SessionClaims{User: ClaimSet{Role: "administrator"}}

	resolved, err := resolver.Resolve(context.Background(), Principal{Subject: "sub-3"}, claims)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, resolved.Role, "legacy alias normalizes to admin")
	assert.Equal(t, SourceUserClaims, resolved.Source)
}

func TestResolve_UnknownRoleStringFallsThrough(t *testing.T) {
	repo := &mockRepository{records: map[string]*IdentityRecord{
		"sub-4": {Subject: "sub-4", Role: RoleAdmin},
	}}
	resolver := NewResolver(SuperIdentity{}, repo)

	claims := SessionClaims{
		Application: ClaimSet{Role: "wizard"},
		User:        ClaimSet{Role: ""},
	}

	resolved, err := resolver.Resolve(context.Background(), Principal{Subject: "sub-4"}, claims)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, resolved.Role)
	assert.Equal(t, SourceStore, resolved.Source)
}

func TestResolve_StoreWinsWhenClaimsAbsent(t *testing.T) {
	pid := mustUUID(t, partnerB)
	repo := &mockRepository{records: map[string]*IdentityRecord{
		"sub-5": {Subject: "sub-5", Role: RolePartner, PartnerID: pid},
	}}
	resolver := NewResolver(SuperIdentity{}, repo)

	resolved, err := resolver.Resolve(context.Background(), Principal{Subject: "sub-5"}, SessionClaims{})
	require.NoError(t, err)
	assert.Equal(t, RolePartner, resolved.Role)
	assert.Equal(t, *pid, *resolved.PartnerID)
	assert.Equal(t, SourceStore, resolved.Source)
}

func TestResolve_DefaultsToLeastPrivilege(t *testing.T) {
	resolver := NewResolver(SuperIdentity{}, &mockRepository{})

	resolved, err := resolver.Resolve(context.Background(), Principal{Subject: "nobody"}, SessionClaims{})
	require.NoError(t, err)
	assert.Equal(t, RolePartner, resolved.Role)
	assert.Nil(t, resolved.PartnerID)
	assert.Equal(t, SourceDefault, resolved.Source)
}

func TestResolve_StoreUnavailablePropagates(t *testing.T) {
	repo := &mockRepository{err: ErrStoreUnavailable}
	resolver := NewResolver(SuperIdentity{}, repo)

	_, err := resolver.Resolve(context.Background(), Principal{Subject: "sub-6"}, SessionClaims{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStoreUnavailable))
}

func TestResolve_IsPure(t *testing.T) {
	repo := &mockRepository{records: map[string]*IdentityRecord{
		"sub-7": {Subject: "sub-7", Role: RoleAdmin},
	}}
	resolver := NewResolver(SuperIdentity{}, repo)
	claims := SessionClaims{User: ClaimSet{Role: "staff"}}

	first, err := resolver.Resolve(context.Background(), Principal{Subject: "sub-7"}, claims)
	require.NoError(t, err)
	second, err := resolver.Resolve(context.Background(), Principal{Subject: "sub-7"}, claims)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNormalizeRole(t *testing.T) {
	tests := []struct {
		raw  string
		want Role
		ok   bool
	}{
		{"superadmin", RoleSuperAdmin, true},
		{"SUPER_ADMIN", RoleSuperAdmin, true},
		{"root", RoleSuperAdmin, true},
		{"administrator", RoleAdmin, true},
		{"staff", RoleAdmin, true},
		{"  vendor  ", RolePartner, true},
		{"wizard", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := NormalizeRole(tt.raw)
		assert.Equal(t, tt.ok, ok, "raw=%q", tt.raw)
		if tt.ok {
			assert.Equal(t, tt.want, got, "raw=%q", tt.raw)
		}
	}
}
