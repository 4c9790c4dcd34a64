package session

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRoleMismatch       = errors.New("account is not registered under the requested role")
)

// Session is the persisted identity of the currently logged-in user. At most
// one session exists at a time; the store record is the single source of
// truth and there is no ambient current-user state anywhere else.
type Session struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	LoginTime time.Time `json:"loginTime"`
}

// Account is a verified identity returned by a Credentials implementation.
type Account struct {
	Email string
	Name  string
	Role  string
}

// Credentials verifies an (email, password) pair. The static demo table below
// is one implementation; a real identity provider can be substituted without
// touching the Manager's control flow.
type Credentials interface {
	Verify(email, password string) (Account, error)
}

// Repository persists the single session record.
type Repository interface {
	Get(ctx context.Context) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Clear(ctx context.Context) error
}

// StaticAccount is the configuration input for the demo credential table.
type StaticAccount struct {
	Email    string
	Password string
	Name     string
	Role     string
}

type staticEntry struct {
	hash []byte
	name string
	role string
}

// StaticCredentials verifies against a fixed account table. Passwords are
// bcrypt-hashed at construction; the plaintext never outlives config loading.
type StaticCredentials struct {
	accounts map[string]staticEntry
}

func NewStaticCredentials(accounts []StaticAccount) (*StaticCredentials, error) {
	c := &StaticCredentials{accounts: make(map[string]staticEntry, len(accounts))}
	for _, a := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		c.accounts[a.Email] = staticEntry{hash: hash, name: a.Name, role: a.Role}
	}
	return c, nil
}

func (c *StaticCredentials) Verify(email, password string) (Account, error) {
	entry, ok := c.accounts[email]
	if !ok {
		return Account{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(entry.hash, []byte(password)); err != nil {
		return Account{}, ErrInvalidCredentials
	}
	return Account{Email: email, Name: entry.name, Role: entry.role}, nil
}
