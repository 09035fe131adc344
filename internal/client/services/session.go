// Package services contains application services for the Crack client:
// the identity session, the credit ledger, and the gift transfer workflow.
// Services are the only writers of their respective store keys; the
// presentation layer reads through them.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/crack-social/crack-cli/internal/client/models"
	"github.com/crack-social/crack-cli/internal/client/repositories/state"
	"github.com/crack-social/crack-cli/internal/common"
	"github.com/crack-social/crack-cli/internal/dbx"
)

// identityKey is the store key owned by the session service.
const identityKey = "identity"

// defaultAvatar is assigned at registration when no avatar is chosen.
const defaultAvatar = "🧑‍💻"

// SessionService manages the single local identity record.
//
// Contract:
//   - Restore: read the persisted identity; (nil, nil) when none exists.
//   - Create: build and persist a new identity, replacing any prior one.
//   - Update: merge a patch into the existing identity and persist it.
//   - Destroy: remove the identity; idempotent.
//
// All methods must honor context cancellation/timeouts.
type SessionService interface {
	Restore(ctx context.Context) (*models.Identity, error)
	Create(ctx context.Context, params models.IdentityParams) (*models.Identity, error)
	Update(ctx context.Context, patch models.IdentityPatch) (*models.Identity, error)
	Destroy(ctx context.Context) error
}

// sessionService is the concrete SessionService backed by the local store.
type sessionService struct {
	db *sql.DB
}

// NewSessionService constructs a SessionService bound to the given DB.
func NewSessionService(db *sql.DB) SessionService {
	return &sessionService{db: db}
}

func (s *sessionService) getStateRepo() state.Repository {
	return state.NewSQLiteRepository(s.db)
}

// Restore reads the identity record from the store. Pure: no side effects.
func (s *sessionService) Restore(ctx context.Context) (*models.Identity, error) {
	raw, err := s.getStateRepo().Get(ctx, identityKey)
	if err != nil {
		return nil, errors.Join(common.ErrStorageFailure, err)
	}
	if raw == nil {
		return nil, nil
	}

	var identity models.Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		return nil, fmt.Errorf("decode identity: %w", err)
	}
	return &identity, nil
}

// Create builds an identity from the registration fields and persists it,
// overwriting any prior record (single-session model). Username is required
// and trimmed; fullName defaults to the username, avatar to a stock glyph.
func (s *sessionService) Create(ctx context.Context, params models.IdentityParams) (*models.Identity, error) {
	username := strings.TrimSpace(params.Username)
	if username == "" {
		return nil, fmt.Errorf("username is required: %w", common.ErrValidation)
	}

	identity := &models.Identity{
		Username: username,
		FullName: strings.TrimSpace(params.FullName),
		Avatar:   params.Avatar,
		Bio:      strings.TrimSpace(params.Bio),
		Phone:    strings.TrimSpace(params.Phone),
	}
	if identity.FullName == "" {
		identity.FullName = username
	}
	if identity.Avatar == "" {
		identity.Avatar = defaultAvatar
	}

	if err := s.save(ctx, identity); err != nil {
		return nil, err
	}
	return identity, nil
}

// Update merges the patch into the current identity. Nil patch fields keep
// their existing values. Requires an active session.
func (s *sessionService) Update(ctx context.Context, patch models.IdentityPatch) (*models.Identity, error) {
	identity, err := s.Restore(ctx)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, common.ErrNoActiveSession
	}

	if patch.Username != nil {
		username := strings.TrimSpace(*patch.Username)
		if username == "" {
			return nil, fmt.Errorf("username is required: %w", common.ErrValidation)
		}
		identity.Username = username
	}
	if patch.FullName != nil {
		identity.FullName = strings.TrimSpace(*patch.FullName)
	}
	if patch.Avatar != nil {
		identity.Avatar = *patch.Avatar
	}
	if patch.Bio != nil {
		identity.Bio = strings.TrimSpace(*patch.Bio)
	}
	if patch.Phone != nil {
		identity.Phone = strings.TrimSpace(*patch.Phone)
	}

	if err := s.save(ctx, identity); err != nil {
		return nil, err
	}
	return identity, nil
}

// Destroy removes the identity record. The ledger balance is device-global
// and deliberately left untouched (see DESIGN.md).
func (s *sessionService) Destroy(ctx context.Context) error {
	if err := s.getStateRepo().Delete(ctx, identityKey); err != nil {
		return errors.Join(common.ErrStorageFailure, err)
	}
	return nil
}

func (s *sessionService) save(ctx context.Context, identity *models.Identity) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := state.NewSQLiteRepository(tx).Set(ctx, identityKey, raw); err != nil {
			return errors.Join(common.ErrStorageFailure, err)
		}
		return nil
	})
}
