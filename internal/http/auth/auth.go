// Package auth verifies bearer tokens and puts the acting operator on
// the request context, where the lifecycle services pick it up for the
// audit history.
package auth

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/trungle-dev/renty/internal/actor"
)

type claims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// Middleware returns a handler wrapper that rejects requests without a
// valid HS256 bearer token.
func Middleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			var c claims

			parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
				return []byte(secret), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !parsed.Valid {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			id, err := uuid.Parse(c.Subject)
			if err != nil {
				http.Error(w, "invalid token subject", http.StatusUnauthorized)
				return
			}

			ctx := actor.WithActor(r.Context(), actor.Actor{ID: id, Name: c.Name})

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
