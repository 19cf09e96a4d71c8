package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// mockSideChannel records privileged claim writes.
type mockSideChannel struct {
	updates     int
	revocations int
	updateErr   error
	revokeErr   error

	lastSubject string
	lastRole    Role
	lastPartner *uuid.UUID
}

func (m *mockSideChannel) UpdateApplicationClaims(_ context.Context, subject string, role Role, partnerID *uuid.UUID) error {
	m.updates++
	m.lastSubject = subject
	m.lastRole = role
	m.lastPartner = partnerID
	return m.updateErr
}

func (m *mockSideChannel) RevokeSessions(_ context.Context, subject string) error {
	m.revocations++
	return m.revokeErr
}

func TestReconcile_DriftTriggersWriteAndRevocation(t *testing.T) {
	side := &mockSideChannel{}
	sync := NewSynchronizer(side, zerolog.Nop())

	record := &IdentityRecord{Subject: "sub-1", Role: RoleAdmin}
	claims := SessionClaims{Application: ClaimSet{Role: "partner", PartnerID: partnerA}}

	synced := sync.Reconcile(context.Background(), "sub-1", record, claims)
	assert.True(t, synced)
	assert.Equal(t, 1, side.updates)
	assert.Equal(t, 1, side.revocations)
	assert.Equal(t, RoleAdmin, side.lastRole)
	assert.Nil(t, side.lastPartner)
}

func TestReconcile_MatchingClaimsIsNoOp(t *testing.T) {
	side := &mockSideChannel{}
	sync := NewSynchronizer(side, zerolog.Nop())

	pid := uuid.MustParse(partnerA)
	record := &IdentityRecord{Subject: "sub-2", Role: RolePartner, PartnerID: &pid}
	claims := SessionClaims{Application: ClaimSet{Role: "partner", PartnerID: partnerA}}

	assert.False(t, sync.Reconcile(context.Background(), "sub-2", record, claims))
	assert.Zero(t, side.updates)
	assert.Zero(t, side.revocations)
}

func TestReconcile_LegacyAliasInClaimsCountsAsMatch(t *testing.T) {
	side := &mockSideChannel{}
	sync := NewSynchronizer(side, zerolog.Nop())

	// "staff" normalizes to admin; no rewrite needed.
	record := &IdentityRecord{Subject: "sub-3", Role: RoleAdmin}
	claims := SessionClaims{Application: ClaimSet{Role: "staff"}}

	assert.False(t, sync.Reconcile(context.Background(), "sub-3", record, claims))
	assert.Zero(t, side.updates)
}

func TestReconcile_NoRecordIsNoOp(t *testing.T) {
	side := &mockSideChannel{}
	sync := NewSynchronizer(side, zerolog.Nop())

	claims := SessionClaims{Application: ClaimSet{Role: "partner"}}
	assert.False(t, sync.Reconcile(context.Background(), "sub-4", nil, claims))
	assert.Zero(t, side.updates)
}

func TestReconcile_IdempotentAcrossRepeatedCalls(t *testing.T) {
	side := &mockSideChannel{}
	sync := NewSynchronizer(side, zerolog.Nop())

	record := &IdentityRecord{Subject: "sub-5", Role: RoleAdmin}
	drifted := SessionClaims{Application: ClaimSet{Role: "partner"}}
	corrected := SessionClaims{Application: ClaimSet{Role: "admin"}}

	assert.True(t, sync.Reconcile(context.Background(), "sub-5", record, drifted))
	// After the rewrite the re-issued token carries matching claims: at most
	// one observable side-channel write.
	assert.False(t, sync.Reconcile(context.Background(), "sub-5", record, corrected))
	assert.Equal(t, 1, side.updates)
}

func TestReconcile_SideChannelFailureIsSwallowed(t *testing.T) {
	side := &mockSideChannel{updateErr: errors.New("idp timeout")}
	sync := NewSynchronizer(side, zerolog.Nop())

	record := &IdentityRecord{Subject: "sub-6", Role: RoleAdmin}
	claims := SessionClaims{Application: ClaimSet{Role: "partner"}}

	synced := sync.Reconcile(context.Background(), "sub-6", record, claims)
	assert.False(t, synced)
	assert.Zero(t, side.revocations, "no revocation when the claims write failed")
}

func TestReconcile_RevocationFailureStillReportsSynced(t *testing.T) {
	side := &mockSideChannel{revokeErr: errors.New("idp timeout")}
	sync := NewSynchronizer(side, zerolog.Nop())

	record := &IdentityRecord{Subject: "sub-7", Role: RoleAdmin}
	claims := SessionClaims{Application: ClaimSet{Role: "partner"}}

	assert.True(t, sync.Reconcile(context.Background(), "sub-7", record, claims))
	assert.Equal(t, 1, side.updates)
}
