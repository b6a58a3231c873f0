package repository

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/storage"
)

// SessionRepository persists the single current-user session. The session
// holds only a username reference; resolving it to a user record goes through
// the UserRepository so there is exactly one source of truth for user data.
type SessionRepository interface {
	Current(ctx context.Context) (*models.Session, error)
	Set(ctx context.Context, session *models.Session) error
	Clear(ctx context.Context) error
}

type sessionRepository struct {
	store *storage.Store
}

// NewSessionRepository returns a new SessionRepository implementation.
func NewSessionRepository(store *storage.Store) SessionRepository {
	return &sessionRepository{store: store}
}

// Current returns nil without error when nobody is logged in.
func (r *sessionRepository) Current(ctx context.Context) (*models.Session, error) {
	var session models.Session
	if !r.store.Get(storage.KeyCurrentUser, &session) {
		return nil, nil
	}
	return &session, nil
}

func (r *sessionRepository) Set(ctx context.Context, session *models.Session) error {
	if !r.store.Set(storage.KeyCurrentUser, session) {
		return persistErr(storage.KeyCurrentUser)
	}
	return nil
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	if !r.store.Remove(storage.KeyCurrentUser) {
		return persistErr(storage.KeyCurrentUser)
	}
	return nil
}
