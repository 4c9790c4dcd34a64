package session

import (
	"context"
	"time"
)

// Manager owns the login/restore/logout lifecycle. Every successful login or
// logout mutates exactly one store key; reads return the persisted record
// verbatim.
type Manager struct {
	creds Credentials
	repo  Repository
	now   func() time.Time
}

func NewManager(creds Credentials, repo Repository) *Manager {
	return &Manager{creds: creds, repo: repo, now: time.Now}
}

// Login verifies the credentials, optionally checks the account role against
// expectedRole (empty means no constraint), persists the new session and
// returns it. The role check runs after credential verification, so a
// mismatch means the credentials themselves were valid.
func (m *Manager) Login(ctx context.Context, email, password, expectedRole string) (*Session, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	acct, err := m.creds.Verify(email, password)
	if err != nil {
		return nil, err
	}

	if expectedRole != "" && acct.Role != expectedRole {
		return nil, ErrRoleMismatch
	}

	s := &Session{
		Email:     acct.Email,
		Name:      acct.Name,
		Role:      acct.Role,
		LoginTime: m.now().UTC(),
	}
	if err := m.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Restore returns the persisted session, or nil when none exists. No expiry
// check: the record lives until logout.
func (m *Manager) Restore(ctx context.Context) (*Session, error) {
	return m.repo.Get(ctx)
}

// Logout removes the persisted session. Idempotent.
func (m *Manager) Logout(ctx context.Context) error {
	return m.repo.Clear(ctx)
}

// IsRole reports whether role is one of the recognized roles.
func IsRole(role string) bool {
	return role == RoleAdmin || role == RoleMember
}
