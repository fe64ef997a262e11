package auth

import (
	"context"
	"net/http"
)

type claimsKey struct{}

type AuthenticateMiddleware struct {
	Secret []byte
}

func (m *AuthenticateMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := VerifyRequest(r, m.Secret)
		if err != nil {
			http.Error(w, "Not authenticated", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), claimsKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAuthenticatedUser returns the claims stored by the middleware, or false
// when the request never passed through it.
func GetAuthenticatedUser(r *http.Request) (*Claims, bool) {
	claims, ok := r.Context().Value(claimsKey{}).(*Claims)
	return claims, ok
}
