package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvision_WritesStoreThenRewritesClaims(t *testing.T) {
	repo := &mockRepository{records: map[string]*IdentityRecord{}}
	side := &mockSideChannel{}
	prov := NewProvisioner(repo, side, zerolog.Nop())

	saved, err := prov.Provision(context.Background(), &IdentityRecord{
		Subject:   "sub-1",
		Role:      RolePartner,
		PartnerID: mustUUID(t, partnerA),
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, 1, side.updates)
	assert.Equal(t, 1, side.revocations)
	assert.Equal(t, "sub-1", side.lastSubject)
	assert.Equal(t, RolePartner, side.lastRole)
}

func TestProvision_RejectsInvalidAssignments(t *testing.T) {
	repo := &mockRepository{records: map[string]*IdentityRecord{}}
	side := &mockSideChannel{}
	prov := NewProvisioner(repo, side, zerolog.Nop())

	_, err := prov.Provision(context.Background(), &IdentityRecord{Subject: "s", Role: Role("owner")})
	assert.ErrorIs(t, err, ErrInvalidAssignment)

	// Partner role without a partner scope.
	_, err = prov.Provision(context.Background(), &IdentityRecord{Subject: "s", Role: RolePartner})
	assert.ErrorIs(t, err, ErrInvalidAssignment)

	assert.Equal(t, 0, side.updates)
}

func TestProvision_SideChannelFailureDoesNotFailWrite(t *testing.T) {
	repo := &mockRepository{records: map[string]*IdentityRecord{}}
	side := &mockSideChannel{updateErr: errors.New("idp down")}
	prov := NewProvisioner(repo, side, zerolog.Nop())

	saved, err := prov.Provision(context.Background(), &IdentityRecord{Subject: "sub-2", Role: RoleAdmin})
	require.NoError(t, err)
	require.NotNil(t, saved)
	// No revocation when the rewrite never landed.
	assert.Equal(t, 0, side.revocations)
}
