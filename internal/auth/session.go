package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ouma-web/internal/models"
	"ouma-web/internal/repositories"

	"gorm.io/gorm"
)

// SessionStore persists WebSessions and mints their cookie tokens
type SessionStore struct {
	repo     repositories.WebSessionRepository
	tokens   *TokenService
	duration time.Duration
}

// NewSessionStore creates a session store
func NewSessionStore(repo repositories.WebSessionRepository, tokens *TokenService, duration time.Duration) *SessionStore {
	return &SessionStore{repo: repo, tokens: tokens, duration: duration}
}

// Duration session lifetime, also used as cookie max-age
func (s *SessionStore) Duration() time.Duration {
	return s.duration
}

// New returns an unsaved anonymous session
func (s *SessionStore) New() *models.WebSession {
	return &models.WebSession{ExpiresAt: time.Now().Add(s.duration)}
}

// Load resolves a cookie token to its session.
// Invalid tokens, unknown IDs and expired sessions give ErrInvalidToken.
func (s *SessionStore) Load(ctx context.Context, token string) (*models.WebSession, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil, err
	}
	sess, err := s.repo.FindByID(ctx, claims.SessionID())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	if sess.IsExpired() {
		_ = s.repo.Delete(ctx, sess.ID)
		return nil, ErrExpiredToken
	}
	return sess, nil
}

// Save writes the session, extending its expiry, and returns a fresh token
func (s *SessionStore) Save(ctx context.Context, sess *models.WebSession) (string, error) {
	sess.ExpiresAt = time.Now().Add(s.duration)

	if sess.ID == "" {
		if err := s.repo.Create(ctx, sess); err != nil {
			return "", fmt.Errorf("create session: %w", err)
		}
	} else if err := s.repo.Update(ctx, sess); err != nil {
		return "", fmt.Errorf("update session: %w", err)
	}

	token, err := s.tokens.Issue(sess.ID, sess.ExpiresAt)
	if err != nil {
		return "", fmt.Errorf("issue session token: %w", err)
	}
	return token, nil
}

// Destroy removes the session row
func (s *SessionStore) Destroy(ctx context.Context, sess *models.WebSession) error {
	if sess == nil || sess.ID == "" {
		return nil
	}
	return s.repo.Delete(ctx, sess.ID)
}

// Cleanup removes expired sessions
func (s *SessionStore) Cleanup(ctx context.Context) (int64, error) {
	return s.repo.DeleteExpired(ctx, time.Now())
}
