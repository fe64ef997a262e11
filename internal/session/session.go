package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/snapshelf/orderdesk/internal/auth"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type Credential struct {
	ID       string
	Email    string
	Name     string
	Role     string
	Password string
}

type account struct {
	user         User
	passwordHash string
}

// Gate validates logins against a fixed account table and issues signed
// session tokens. There is no user management; the table is configuration.
type Gate struct {
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
	accounts map[string]account
	// compared against when the email is unknown, so lookup cost does not
	// reveal which emails exist
	dummyHash string
}

func NewGate(secret []byte, ttl time.Duration, now func() time.Time, creds []Credential) (*Gate, error) {
	if now == nil {
		now = time.Now
	}

	accounts := make(map[string]account, len(creds))
	for _, c := range creds {
		hash, err := auth.HashPassword(c.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash credentials for %s %w", c.Email, err)
		}
		accounts[strings.ToLower(c.Email)] = account{
			user:         User{ID: c.ID, Email: c.Email, Name: c.Name, Role: c.Role},
			passwordHash: hash,
		}
	}

	dummyHash, err := auth.HashPassword("-")
	if err != nil {
		return nil, err
	}

	return &Gate{
		secret:    secret,
		ttl:       ttl,
		now:       now,
		accounts:  accounts,
		dummyHash: dummyHash,
	}, nil
}

// DefaultCredentials is the fixed back-office account table.
func DefaultCredentials() []Credential {
	return []Credential{
		{ID: "usr-admin", Email: "admin@snapshelf.com", Name: "Admin", Role: "admin", Password: "SnapShelf2024!Admin"},
		{ID: "usr-manager", Email: "manager@snapshelf.com", Name: "Operations Manager", Role: "manager", Password: "SnapShelf2024!Manager"},
	}
}

// Login checks the credential table and returns the user plus a fresh session
// token. Unknown emails and wrong passwords are indistinguishable to the
// caller.
func (g *Gate) Login(email string, password string) (*User, string, error) {
	acc, ok := g.accounts[strings.ToLower(email)]
	if !ok {
		auth.CheckPasswordHash(password, g.dummyHash)
		return nil, "", fmt.Errorf("%w", ErrInvalidCredentials)
	}

	if !auth.CheckPasswordHash(password, acc.passwordHash) {
		return nil, "", fmt.Errorf("%w", ErrInvalidCredentials)
	}

	token, err := g.issue(acc.user)
	if err != nil {
		return nil, "", err
	}
	return &acc.user, token, nil
}

// Authenticate validates a session token and resolves its user. Expired or
// tampered tokens fail inside the signature check.
func (g *Gate) Authenticate(token string) (*User, error) {
	claims, err := auth.GetClaims(token, g.secret)
	if err != nil {
		return nil, err
	}

	user, err := g.userByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Refresh reissues a token with a fresh expiry, provided the current one is
// still valid.
func (g *Gate) Refresh(token string) (*User, string, error) {
	user, err := g.Authenticate(token)
	if err != nil {
		return nil, "", err
	}

	fresh, err := g.issue(*user)
	if err != nil {
		return nil, "", err
	}
	return user, fresh, nil
}

func (g *Gate) TTLSeconds() int {
	return int(g.ttl.Seconds())
}

func (g *Gate) issue(user User) (string, error) {
	return auth.BuildJWTString(user.ID, user.Role, g.secret, g.ttl, g.now())
}

func (g *Gate) userByID(id string) (*User, error) {
	for _, acc := range g.accounts {
		if acc.user.ID == id {
			user := acc.user
			return &user, nil
		}
	}
	return nil, fmt.Errorf("unknown user %s", id)
}
