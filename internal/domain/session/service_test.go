package session

import (
	"context"
	"errors"
	"sync"
	"testing"
)

type memorySessionRepo struct {
	mu   sync.Mutex
	sess *Session
}

func (r *memorySessionRepo) Get(ctx context.Context) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sess == nil {
		return nil, nil
	}
	copySess := *r.sess
	return &copySess, nil
}

func (r *memorySessionRepo) Save(ctx context.Context, s *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copySess := *s
	r.sess = &copySess
	return nil
}

func (r *memorySessionRepo) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sess = nil
	return nil
}

func newTestManager(t *testing.T) (*Manager, *memorySessionRepo) {
	t.Helper()
	creds, err := NewStaticCredentials([]StaticAccount{
		{Email: "admin@tsv.com", Password: "admin123", Name: "Admin User", Role: RoleAdmin},
		{Email: "member@tsv.com", Password: "member123", Name: "Member User", Role: RoleMember},
	})
	if err != nil {
		t.Fatalf("credentials: %v", err)
	}
	repo := &memorySessionRepo{}
	return NewManager(creds, repo), repo
}

func TestLoginValidatesCredentials(t *testing.T) {
	mgr, _ := newTestManager(t)
	ctx := context.Background()

	if _, err := mgr.Login(ctx, "member@tsv.com", "wrong", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if _, err := mgr.Login(ctx, "nobody@tsv.com", "member123", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for unknown email, got %v", err)
	}
	if _, err := mgr.Login(ctx, "", "", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for empty input, got %v", err)
	}
}

func TestLoginRoleConstraint(t *testing.T) {
	mgr, _ := newTestManager(t)
	ctx := context.Background()

	// valid credentials under the wrong role constraint
	if _, err := mgr.Login(ctx, "member@tsv.com", "member123", RoleAdmin); !errors.Is(err, ErrRoleMismatch) {
		t.Fatalf("expected role mismatch, got %v", err)
	}

	s, err := mgr.Login(ctx, "member@tsv.com", "member123", RoleMember)
	if err != nil {
		t.Fatalf("login with matching role: %v", err)
	}
	if s.Email != "member@tsv.com" || s.Role != RoleMember {
		t.Fatalf("unexpected session %+v", s)
	}

	// no constraint accepts any role
	if _, err := mgr.Login(ctx, "admin@tsv.com", "admin123", ""); err != nil {
		t.Fatalf("unconstrained admin login: %v", err)
	}
	if _, err := mgr.Login(ctx, "member@tsv.com", "member123", ""); err != nil {
		t.Fatalf("unconstrained member login: %v", err)
	}
}

func TestLoginPersistsAndRestoreReturnsVerbatim(t *testing.T) {
	mgr, repo := newTestManager(t)
	ctx := context.Background()

	s, err := mgr.Login(ctx, "admin@tsv.com", "admin123", RoleAdmin)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if s.LoginTime.IsZero() {
		t.Fatalf("expected login time set")
	}

	restored, err := mgr.Restore(ctx)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored == nil || *restored != *s {
		t.Fatalf("restore mismatch: got %+v want %+v", restored, s)
	}
	if repo.sess == nil {
		t.Fatalf("expected session persisted")
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	mgr, _ := newTestManager(t)
	ctx := context.Background()

	if _, err := mgr.Login(ctx, "member@tsv.com", "member123", ""); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := mgr.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if err := mgr.Logout(ctx); err != nil {
		t.Fatalf("second logout: %v", err)
	}

	restored, err := mgr.Restore(ctx)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored != nil {
		t.Fatalf("expected no session after logout, got %+v", restored)
	}
}

func TestFailedLoginLeavesSessionUntouched(t *testing.T) {
	mgr, _ := newTestManager(t)
	ctx := context.Background()

	if _, err := mgr.Login(ctx, "admin@tsv.com", "admin123", ""); err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := mgr.Login(ctx, "member@tsv.com", "member123", RoleAdmin); !errors.Is(err, ErrRoleMismatch) {
		t.Fatalf("expected role mismatch, got %v", err)
	}

	restored, _ := mgr.Restore(ctx)
	if restored == nil || restored.Email != "admin@tsv.com" {
		t.Fatalf("rejected login must not mutate the session, got %+v", restored)
	}
}
