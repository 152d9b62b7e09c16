package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"perfumebox/internal/domain"
	accountrepo "perfumebox/internal/repository/account"
)

type stubAccounts struct {
	byPhone    *domain.Account
	byID       *domain.Account
	created    *domain.Account
	updated    *domain.Account
	createErr  error
	lastCreate accountrepo.CreateInput
	lastUpdate accountrepo.UpdateInput
}

func (s *stubAccounts) GetByPhone(_ context.Context, _ string) (*domain.Account, error) {
	if s.byPhone == nil {
		return nil, domain.ErrNotFound
	}
	return s.byPhone, nil
}

func (s *stubAccounts) GetByID(_ context.Context, _ string) (*domain.Account, error) {
	if s.byID == nil {
		return nil, domain.ErrNotFound
	}
	return s.byID, nil
}

func (s *stubAccounts) Create(_ context.Context, in accountrepo.CreateInput) (*domain.Account, error) {
	s.lastCreate = in
	return s.created, s.createErr
}

func (s *stubAccounts) Update(_ context.Context, _ string, in accountrepo.UpdateInput) (*domain.Account, error) {
	s.lastUpdate = in
	return s.updated, nil
}

type memTokens struct {
	saved map[string]string
}

func newMemTokens() *memTokens {
	return &memTokens{saved: make(map[string]string)}
}

func (m *memTokens) Save(_ context.Context, token, accountID string, _ time.Duration) error {
	m.saved[token] = accountID
	return nil
}

func (m *memTokens) Lookup(_ context.Context, token string) (string, error) {
	id, ok := m.saved[token]
	if !ok {
		return "", domain.ErrNotFound
	}
	return id, nil
}

func (m *memTokens) Delete(_ context.Context, token string) error {
	delete(m.saved, token)
	return nil
}

func TestLoginCreatesAccountForNewPhone(t *testing.T) {
	accounts := &stubAccounts{created: &domain.Account{ID: "a1", Phone: "017"}}
	tokens := newMemTokens()
	svc := New(accounts, tokens, time.Hour, nil)

	acct, token, err := svc.Login(context.Background(), "017", "John", "j@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if acct.ID != "a1" {
		t.Fatalf("unexpected account %+v", acct)
	}
	if token == "" {
		t.Fatalf("expected a session token")
	}
	if tokens.saved[token] != "a1" {
		t.Fatalf("token not bound to account")
	}
	if accounts.lastCreate.Phone != "017" || accounts.lastCreate.FullName != "John" {
		t.Fatalf("unexpected create input %+v", accounts.lastCreate)
	}
}

func TestLoginUpdatesExistingAccount(t *testing.T) {
	accounts := &stubAccounts{
		byPhone: &domain.Account{ID: "a1", Phone: "017", Email: "old@example.com"},
		updated: &domain.Account{ID: "a1", Phone: "017", FullName: "John"},
	}
	svc := New(accounts, newMemTokens(), time.Hour, nil)

	_, _, err := svc.Login(context.Background(), "017", "John", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if accounts.lastUpdate.Email != "old@example.com" {
		t.Fatalf("blank email must keep the stored one, got %q", accounts.lastUpdate.Email)
	}
}

func TestLoginRequiresPhoneAndName(t *testing.T) {
	svc := New(&stubAccounts{}, newMemTokens(), time.Hour, nil)
	if _, _, err := svc.Login(context.Background(), " ", "John", ""); err == nil {
		t.Fatalf("expected error for blank phone")
	}
	if _, _, err := svc.Login(context.Background(), "017", "  ", ""); err == nil {
		t.Fatalf("expected error for blank name")
	}
}

func TestResumeReturnsBoundAccount(t *testing.T) {
	accounts := &stubAccounts{byID: &domain.Account{ID: "a1"}}
	tokens := newMemTokens()
	tokens.saved["tok"] = "a1"
	svc := New(accounts, tokens, time.Hour, nil)

	acct, err := svc.Resume(context.Background(), "tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if acct.ID != "a1" {
		t.Fatalf("unexpected account %+v", acct)
	}
}

func TestResumeAnonymous(t *testing.T) {
	svc := New(&stubAccounts{}, newMemTokens(), time.Hour, nil)

	if _, err := svc.Resume(context.Background(), ""); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession for empty token, got %v", err)
	}
	if _, err := svc.Resume(context.Background(), "unknown"); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession for unknown token, got %v", err)
	}
}

func TestResumeStaleTokenIsAnonymous(t *testing.T) {
	tokens := newMemTokens()
	tokens.saved["tok"] = "gone"
	svc := New(&stubAccounts{}, tokens, time.Hour, nil)

	if _, err := svc.Resume(context.Background(), "tok"); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession for deleted account, got %v", err)
	}
}

func TestBindIssuesTokenWhenMissing(t *testing.T) {
	tokens := newMemTokens()
	svc := New(&stubAccounts{}, tokens, time.Hour, nil)

	token, err := svc.Bind(context.Background(), "", "a1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" || tokens.saved[token] != "a1" {
		t.Fatalf("expected new token bound to a1")
	}

	same, err := svc.Bind(context.Background(), token, "a2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if same != token || tokens.saved[token] != "a2" {
		t.Fatalf("expected rebinding of existing token")
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	tokens := newMemTokens()
	tokens.saved["tok"] = "a1"
	svc := New(&stubAccounts{}, tokens, time.Hour, nil)

	if err := svc.Logout(context.Background(), "tok"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Logout(context.Background(), "tok"); err != nil {
		t.Fatalf("second logout must not fail: %v", err)
	}
	if err := svc.Logout(context.Background(), ""); err != nil {
		t.Fatalf("logout without token must not fail: %v", err)
	}
}
