package middleware

import (
	"context"
	"net/http"
	"strings"

	jwtutil "miniblog/app/jwt"
)

type ctxKey int

const ClaimsKey ctxKey = 1

type Auth struct{ Signer *jwtutil.Signer }

// RequireAuth rejects requests without a valid bearer token and attaches the
// decoded claims to the request context. No database lookup happens here; the
// identity is trusted from the signed claim.
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		if !strings.HasPrefix(authz, "Bearer ") {
			unauthorized(w, "missing bearer token")
			return
		}
		claims, err := a.Signer.Parse(strings.TrimPrefix(authz, "Bearer "))
		if err != nil {
			unauthorized(w, "invalid or expired token")
			return
		}
		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"message":"` + msg + `"}`))
}
