package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const sessionTTL = 8 * time.Hour

func newTestGate(t *testing.T, now func() time.Time) *Gate {
	t.Helper()
	gate, err := NewGate([]byte("test-secret"), sessionTTL, now, DefaultCredentials())
	if err != nil {
		t.Fatal(err)
	}
	return gate
}

func TestLogin(t *testing.T) {

	gate := newTestGate(t, nil)

	testCases := []struct {
		name     string
		email    string
		password string
		wantRole string
		wantErr  bool
	}{
		{"admin ok", "admin@snapshelf.com", "SnapShelf2024!Admin", "admin", false},
		{"email lookup is case-insensitive", "Admin@SnapShelf.com", "SnapShelf2024!Admin", "admin", false},
		{"manager ok", "manager@snapshelf.com", "SnapShelf2024!Manager", "manager", false},
		{"wrong password", "admin@snapshelf.com", "wrong", "", true},
		{"unknown email", "nobody@snapshelf.com", "SnapShelf2024!Admin", "", true},
		{"manager password on admin account", "admin@snapshelf.com", "SnapShelf2024!Manager", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			user, token, err := gate.Login(tc.email, tc.password)

			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
				assert.Nil(t, user)
				assert.Empty(t, token)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.wantRole, user.Role)
			assert.NotEmpty(t, token)

			authenticated, err := gate.Authenticate(token)
			assert.NoError(t, err)
			assert.Equal(t, user.ID, authenticated.ID)
		})
	}
}

func TestAuthenticateExpiredToken(t *testing.T) {

	// gate clock sits 9 hours in the past, so a fresh login is already
	// one hour past its 8 hour expiry
	gate := newTestGate(t, func() time.Time { return time.Now().Add(-9 * time.Hour) })

	_, token, err := gate.Login("admin@snapshelf.com", "SnapShelf2024!Admin")
	assert.NoError(t, err)

	_, err = gate.Authenticate(token)
	assert.Error(t, err)

	_, _, err = gate.Refresh(token)
	assert.Error(t, err)
}

func TestAuthenticateGarbageToken(t *testing.T) {

	gate := newTestGate(t, nil)

	_, err := gate.Authenticate("not-a-token")
	assert.Error(t, err)
}

func TestRefresh(t *testing.T) {

	issuedAt := time.Now().Add(-7 * time.Hour)
	gate := newTestGate(t, func() time.Time { return issuedAt })

	_, token, err := gate.Login("manager@snapshelf.com", "SnapShelf2024!Manager")
	assert.NoError(t, err)

	// still within the original TTL; refresh from a gate on the live clock
	// pushes expiry out another full TTL
	liveGate := newTestGate(t, nil)
	_, err = liveGate.Authenticate(token)
	assert.NoError(t, err)

	user, fresh, err := liveGate.Refresh(token)
	assert.NoError(t, err)
	assert.Equal(t, "manager", user.Role)
	assert.NotEqual(t, token, fresh)

	_, err = liveGate.Authenticate(fresh)
	assert.NoError(t, err)
}

func TestRefreshDifferentSecret(t *testing.T) {

	gate := newTestGate(t, nil)
	other, err := NewGate([]byte("other-secret"), sessionTTL, nil, DefaultCredentials())
	assert.NoError(t, err)

	_, token, err := gate.Login("admin@snapshelf.com", "SnapShelf2024!Admin")
	assert.NoError(t, err)

	_, _, err = other.Refresh(token)
	assert.Error(t, err)
}

func TestHasPermission(t *testing.T) {

	testCases := []struct {
		role       string
		permission string
		want       bool
	}{
		{"admin", PermOrdersView, true},
		{"admin", PermOrdersCancel, true},
		{"admin", PermTeamManage, true},
		{"manager", PermOrdersView, true},
		{"manager", PermOrdersEdit, true},
		{"manager", PermOrdersCancel, false},
		{"manager", PermTeamManage, false},
		{"intern", PermOrdersView, false},
		{"", PermOrdersView, false},
	}

	for _, tc := range testCases {
		t.Run(tc.role+" "+tc.permission, func(t *testing.T) {
			assert.Equal(t, tc.want, HasPermission(tc.role, tc.permission))
		})
	}
}
