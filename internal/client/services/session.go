package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/medicart/internal/client/models"
	"github.com/dmitrijs2005/medicart/internal/client/repositories/kv"
	"github.com/dmitrijs2005/medicart/internal/common"
)

// currentUserKey is the store key holding the persisted session token.
const currentUserKey = "currentUser"

// sessionClaims is the persisted session form: the profile wrapped in a
// signed HS256 token with an expiry, so stored session state is validated
// rather than trusted on load.
type sessionClaims struct {
	jwt.RegisteredClaims
	Profile models.Profile `json:"profile"`
}

// SessionManager tracks the at-most-one current profile of the client.
//
// States are Unauthenticated and Authenticated(profile). The manager starts
// Unauthenticated; Load restores a previously persisted session, Start
// enters Authenticated, End returns to Unauthenticated. Current is a
// synchronous in-memory read and never blocks.
//
// The manager is an explicit object constructed at process start and passed
// to whatever needs identity; there is no ambient global session.
type SessionManager struct {
	db       *sql.DB
	newKV    kv.Factory
	secret   []byte
	validity time.Duration
	current  *models.Profile
}

// NewSessionManager constructs a SessionManager. secret signs the persisted
// token; validity bounds how long a stored session survives restarts.
func NewSessionManager(db *sql.DB, newKV kv.Factory, secret []byte, validity time.Duration) *SessionManager {
	return &SessionManager{db: db, newKV: newKV, secret: secret, validity: validity}
}

// Load restores a previously active session, or none. An absent, invalid,
// or expired token yields no session: the stale key is removed and no error
// is reported, so a corrupt session never locks the user out.
func (s *SessionManager) Load(ctx context.Context) (*models.Profile, error) {
	raw, err := s.newKV(s.db).Get(ctx, currentUserKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(string(raw), claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		_ = s.newKV(s.db).Delete(ctx, currentUserKey)
		return nil, nil
	}

	profile := claims.Profile
	s.current = &profile
	return s.current, nil
}

// Start persists the profile as the current session and exposes it.
// It is also used to replace the session after a profile update.
func (s *SessionManager) Start(ctx context.Context, profile models.Profile) error {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.validity)),
		},
		Profile: profile,
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return fmt.Errorf("failed to sign session token: %w", err)
	}

	if err := s.newKV(s.db).Set(ctx, currentUserKey, []byte(signed)); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	s.current = &profile
	return nil
}

// End clears the current session, both in memory and in the store.
func (s *SessionManager) End(ctx context.Context) error {
	if err := s.newKV(s.db).Delete(ctx, currentUserKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.current = nil
	return nil
}

// Current returns the profile of the active session, or nil when logged out.
func (s *SessionManager) Current() *models.Profile {
	return s.current
}

// RequireCurrent returns the active profile or common.ErrNotAuthenticated.
func (s *SessionManager) RequireCurrent() (*models.Profile, error) {
	if s.current == nil {
		return nil, common.ErrNotAuthenticated
	}
	return s.current, nil
}
