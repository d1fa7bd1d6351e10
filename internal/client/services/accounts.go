package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/medicart/internal/client/models"
	"github.com/dmitrijs2005/medicart/internal/client/repositories/kv"
	"github.com/dmitrijs2005/medicart/internal/common"
)

// usersKey is the store key holding the whole account registry.
const usersKey = "users"

// ProfileUpdate carries the optional fields of a profile update.
// Nil means "keep the stored value". Password changes are not part of the
// profile surface.
type ProfileUpdate struct {
	Name  *string
	Email *string
}

// AccountService is the account registry.
//
// Contract:
//   - Register: appends a new account; common.ErrAlreadyExists on a
//     duplicate email.
//   - Authenticate: verifies credentials; common.ErrInvalidCredentials on
//     any mismatch.
//   - UpdateProfile: merges name/email into the stored account;
//     common.ErrNotFound for an unknown id.
//
// All methods return the password-stripped profile, never the account.
type AccountService interface {
	Register(ctx context.Context, name, email string, password []byte) (*models.Profile, error)
	Authenticate(ctx context.Context, email string, password []byte) (*models.Profile, error)
	UpdateProfile(ctx context.Context, accountID string, update ProfileUpdate) (*models.Profile, error)
}

type accountService struct {
	db    *sql.DB
	newKV kv.Factory
}

// NewAccountService constructs an AccountService over the given store.
func NewAccountService(db *sql.DB, newKV kv.Factory) AccountService {
	return &accountService{db: db, newKV: newKV}
}

func (s *accountService) loadAccounts(ctx context.Context) ([]models.Account, error) {
	raw, err := s.newKV(s.db).Get(ctx, usersKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []models.Account{}, nil
	}

	var accounts []models.Account
	if err := models.UnmarshalDocument(raw, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// saveAccounts rewrites the whole registry in a single upsert, so readers
// never observe a partial write.
func (s *accountService) saveAccounts(ctx context.Context, accounts []models.Account) error {
	raw, err := models.MarshalDocument(accounts)
	if err != nil {
		return err
	}
	return s.newKV(s.db).Set(ctx, usersKey, raw)
}

// Register creates a new account with a bcrypt password hash and a fresh id,
// and appends it to the registry. Email matching is exact, as stored.
func (s *accountService) Register(ctx context.Context, name, email string, password []byte) (*models.Profile, error) {
	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load account registry: %w", err)
	}

	for _, a := range accounts {
		if a.Email == email {
			return nil, common.ErrAlreadyExists
		}
	}

	hash, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := models.Account{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	accounts = append(accounts, account)
	if err := s.saveAccounts(ctx, accounts); err != nil {
		return nil, fmt.Errorf("failed to save account registry: %w", err)
	}

	profile := account.Profile()
	return &profile, nil
}

// Authenticate verifies email and password against the registry. A missing
// account and a wrong password are indistinguishable to the caller.
func (s *accountService) Authenticate(ctx context.Context, email string, password []byte) (*models.Profile, error) {
	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load account registry: %w", err)
	}

	for _, a := range accounts {
		if a.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), password) != nil {
			return nil, common.ErrInvalidCredentials
		}
		profile := a.Profile()
		return &profile, nil
	}

	return nil, common.ErrInvalidCredentials
}

// UpdateProfile merges the provided fields into the stored account and
// rewrites the registry. The caller is responsible for refreshing the
// session with the returned profile.
func (s *accountService) UpdateProfile(ctx context.Context, accountID string, update ProfileUpdate) (*models.Profile, error) {
	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load account registry: %w", err)
	}

	idx := -1
	for i, a := range accounts {
		if a.ID == accountID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, common.ErrNotFound
	}

	if update.Name != nil {
		accounts[idx].Name = *update.Name
	}
	if update.Email != nil {
		accounts[idx].Email = *update.Email
	}

	if err := s.saveAccounts(ctx, accounts); err != nil {
		return nil, fmt.Errorf("failed to save account registry: %w", err)
	}

	profile := accounts[idx].Profile()
	return &profile, nil
}
