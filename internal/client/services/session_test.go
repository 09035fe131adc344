package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crack-social/crack-cli/internal/client/models"
	"github.com/crack-social/crack-cli/internal/common"
)

func strPtr(s string) *string { return &s }

func TestCreateThenRestore_AllFieldsIntact(t *testing.T) {
	db := setupDB(t)
	s := NewSessionService(db)
	ctx := context.Background()

	created, err := s.Create(ctx, models.IdentityParams{
		Username: "@alex",
		FullName: "Alex Ivanov",
		Avatar:   "👨‍🎨",
		Bio:      "painter",
		Phone:    "+7 (999) 123-45-67",
	})
	require.NoError(t, err)

	restored, err := s.Restore(ctx)
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, created, restored)
	assert.Equal(t, "Alex Ivanov", restored.FullName)
	assert.Equal(t, "painter", restored.Bio)
}

func TestCreate_Defaults(t *testing.T) {
	db := setupDB(t)
	s := NewSessionService(db)

	identity, err := s.Create(context.Background(), models.IdentityParams{Username: " @alex "})
	require.NoError(t, err)
	assert.Equal(t, "@alex", identity.Username)
	assert.Equal(t, "@alex", identity.FullName, "fullName defaults to username")
	assert.NotEmpty(t, identity.Avatar, "avatar gets a stock glyph")
}

func TestCreate_EmptyUsername(t *testing.T) {
	db := setupDB(t)
	s := NewSessionService(db)

	for _, username := range []string{"", "   "} {
		_, err := s.Create(context.Background(), models.IdentityParams{Username: username})
		require.ErrorIs(t, err, common.ErrValidation)
	}
}

func TestCreate_OverwritesPriorRecord(t *testing.T) {
	db := setupDB(t)
	s := NewSessionService(db)
	ctx := context.Background()

	_, err := s.Create(ctx, models.IdentityParams{Username: "@first"})
	require.NoError(t, err)
	_, err = s.Create(ctx, models.IdentityParams{Username: "@second"})
	require.NoError(t, err)

	restored, err := s.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, "@second", restored.Username)
}

func TestRestore_EmptyStore_ReturnsNilNil(t *testing.T) {
	db := setupDB(t)
	s := NewSessionService(db)

	identity, err := s.Restore(context.Background())
	require.NoError(t, err)
	require.Nil(t, identity)
}

func TestUpdate_MergesPatchPreservingOtherFields(t *testing.T) {
	db := setupDB(t)
	s := NewSessionService(db)
	ctx := context.Background()

	_, err := s.Create(ctx, models.IdentityParams{Username: "@alex", Avatar: "👨‍🎨"})
	require.NoError(t, err)

	updated, err := s.Update(ctx, models.IdentityPatch{Bio: strPtr("hello")})
	require.NoError(t, err)
	assert.Equal(t, "hello", updated.Bio)
	assert.Equal(t, "@alex", updated.Username, "username preserved")
	assert.Equal(t, "👨‍🎨", updated.Avatar, "avatar preserved")

	restored, err := s.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated, restored)
}

func TestUpdate_EmptyPatchedUsernameRejected(t *testing.T) {
	db := setupDB(t)
	s := NewSessionService(db)
	ctx := context.Background()

	_, err := s.Create(ctx, models.IdentityParams{Username: "@alex"})
	require.NoError(t, err)

	_, err = s.Update(ctx, models.IdentityPatch{Username: strPtr("  ")})
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestUpdate_NoActiveSession(t *testing.T) {
	db := setupDB(t)
	s := NewSessionService(db)

	_, err := s.Update(context.Background(), models.IdentityPatch{Bio: strPtr("x")})
	require.ErrorIs(t, err, common.ErrNoActiveSession)
}

func TestDestroy_ThenRestoreReturnsAbsent_AndIsIdempotent(t *testing.T) {
	db := setupDB(t)
	s := NewSessionService(db)
	ctx := context.Background()

	_, err := s.Create(ctx, models.IdentityParams{Username: "@alex"})
	require.NoError(t, err)

	require.NoError(t, s.Destroy(ctx))
	identity, err := s.Restore(ctx)
	require.NoError(t, err)
	require.Nil(t, identity)

	// destroying again must not fail
	require.NoError(t, s.Destroy(ctx))
}

func TestDestroy_LeavesLedgerBalanceIntact(t *testing.T) {
	db := setupDB(t)
	s := NewSessionService(db)
	l := NewLedgerService(db, testLogger(t))
	ctx := context.Background()

	_, err := s.Create(ctx, models.IdentityParams{Username: "@alex"})
	require.NoError(t, err)
	_, err = l.Credit(ctx, 100) // 600
	require.NoError(t, err)

	require.NoError(t, s.Destroy(ctx))

	// the ledger is device-global and survives logout
	balance, err := l.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, InitialBalance+100, balance)
}
