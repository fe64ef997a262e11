package auth

import (
	"fmt"
	"net/http"
	"strings"
)

// sessionCookie matches the storage key the dashboard frontend has always
// used for its session.
const sessionCookie = "snapshelf_admin_token"

// TokenFromRequest extracts the raw session token, checking the session
// cookie first and an Authorization bearer header as the fallback for
// non-browser clients.
func TokenFromRequest(r *http.Request) (string, error) {
	cookie, err := r.Cookie(sessionCookie)
	if err == nil {
		return cookie.Value, nil
	}
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer "), nil
	}
	return "", fmt.Errorf("no session token")
}

// VerifyRequest extracts and validates the session token from the request.
func VerifyRequest(r *http.Request, secret []byte) (*Claims, error) {
	token, err := TokenFromRequest(r)
	if err != nil {
		return nil, err
	}
	return GetClaims(token, secret)
}

func SetAuthCookie(token string, w http.ResponseWriter, TTLSeconds int) {
	cookie := &http.Cookie{Name: sessionCookie, Value: token, MaxAge: TTLSeconds, HttpOnly: true, Path: "/"}
	http.SetCookie(w, cookie)
}

func ClearAuthCookie(w http.ResponseWriter) {
	cookie := &http.Cookie{Name: sessionCookie, Value: "", MaxAge: -1, Path: "/"}
	http.SetCookie(w, cookie)
}
