package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var secret = []byte("test-secret")

func TestBuildAndParseToken(t *testing.T) {

	token, err := BuildJWTString("usr-admin", "admin", secret, 8*time.Hour, time.Now())
	assert.NoError(t, err)

	claims, err := GetClaims(token, secret)
	assert.NoError(t, err)
	assert.Equal(t, "usr-admin", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.NotEmpty(t, claims.ID, "token must carry a unique id")
}

func TestParseTokenWrongSecret(t *testing.T) {

	token, err := BuildJWTString("usr-admin", "admin", secret, 8*time.Hour, time.Now())
	assert.NoError(t, err)

	_, err = GetClaims(token, []byte("other-secret"))
	assert.Error(t, err)
}

func TestParseExpiredToken(t *testing.T) {

	token, err := BuildJWTString("usr-admin", "admin", secret, 8*time.Hour, time.Now().Add(-9*time.Hour))
	assert.NoError(t, err)

	_, err = GetClaims(token, secret)
	assert.Error(t, err)
}

func TestTokensAreUnique(t *testing.T) {

	now := time.Now()
	first, err := BuildJWTString("usr-admin", "admin", secret, 8*time.Hour, now)
	assert.NoError(t, err)
	second, err := BuildJWTString("usr-admin", "admin", secret, 8*time.Hour, now)
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}
