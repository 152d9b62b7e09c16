package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"perfumebox/internal/domain"
	accountrepo "perfumebox/internal/repository/account"

	"github.com/google/uuid"
)

// ErrNoSession is returned when a token does not resolve to an account.
var ErrNoSession = errors.New("no session")

// TokenStore persists session token to account id bindings.
type TokenStore interface {
	Save(ctx context.Context, token, accountID string, ttl time.Duration) error
	Lookup(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

// Service resolves shopper identity from a persisted session token. Accounts
// are keyed by phone number: login looks up by phone before ever creating a
// duplicate.
type Service struct {
	accounts accountrepo.Repository
	tokens   TokenStore
	ttl      time.Duration
	logger   *log.Logger
}

// New creates a Service. A nil logger discards logs.
func New(accounts accountrepo.Repository, tokens TokenStore, ttl time.Duration, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &Service{accounts: accounts, tokens: tokens, ttl: ttl, logger: logger}
}

// Login updates-or-creates the account for the phone number and issues a
// session token bound to it.
func (s *Service) Login(ctx context.Context, phone, fullName, email string) (*domain.Account, string, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, "", errors.New("phone required")
	}
	if strings.TrimSpace(fullName) == "" {
		return nil, "", errors.New("full name required")
	}

	acct, err := s.accounts.GetByPhone(ctx, phone)
	switch {
	case err == nil:
		if email == "" {
			email = acct.Email
		}
		acct, err = s.accounts.Update(ctx, acct.ID, accountrepo.UpdateInput{
			FullName: fullName,
			Email:    email,
			Address:  acct.Address,
			City:     acct.City,
		})
		if err != nil {
			return nil, "", fmt.Errorf("update account: %w", err)
		}
	case errors.Is(err, domain.ErrNotFound):
		acct, err = s.accounts.Create(ctx, accountrepo.CreateInput{
			Phone:    phone,
			FullName: fullName,
			Email:    email,
		})
		if err != nil {
			return nil, "", fmt.Errorf("create account: %w", err)
		}
	default:
		return nil, "", fmt.Errorf("lookup account: %w", err)
	}

	token := uuid.NewString()
	if err := s.tokens.Save(ctx, token, acct.ID, s.ttl); err != nil {
		return nil, "", fmt.Errorf("save session: %w", err)
	}
	return acct, token, nil
}

// Resume returns the account bound to a session token, or ErrNoSession for
// anonymous callers.
func (s *Service) Resume(ctx context.Context, token string) (*domain.Account, error) {
	if token == "" {
		return nil, ErrNoSession
	}
	accountID, err := s.tokens.Lookup(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrNoSession
		}
		return nil, err
	}
	acct, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrNoSession
		}
		return nil, err
	}
	return acct, nil
}

// Bind attaches an account resolved elsewhere (checkout) to the caller's
// token, issuing a token when the caller had none.
func (s *Service) Bind(ctx context.Context, token, accountID string) (string, error) {
	if token == "" {
		token = uuid.NewString()
	}
	if err := s.tokens.Save(ctx, token, accountID, s.ttl); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	return token, nil
}

// Logout deletes the session binding. Idempotent.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.tokens.Delete(ctx, token); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return nil
}
