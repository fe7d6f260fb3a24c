// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielhkuo/versemark/auth"
	"github.com/danielhkuo/versemark/models"
)

type userIDContextKey struct{}

// WithUserID attaches an authenticated user ID to ctx. RequireAuth does
// this after verifying a token; tests use it to exercise protected
// handlers directly.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDContextKey{}, userID)
}

// UserIDFromContext returns the authenticated user ID attached by RequireAuth
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDContextKey{}).(string)
	return id, ok
}

// RequireAuth guards a handler behind a Bearer session token. On any
// failure the chain is short-circuited with 401 and the wrapped handler
// is never invoked; on success the verified user ID is attached to the
// request context. The gate reads no persisted state.
func RequireAuth(secret string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			JSONResponse(w, http.StatusUnauthorized, models.ErrorResponse{
				Error: "Missing or invalid authorization header",
			})
			return
		}

		userID, err := auth.VerifyToken(secret, token)
		if err != nil {
			JSONResponse(w, http.StatusUnauthorized, models.ErrorResponse{
				Error: "Invalid token",
			})
			return
		}

		next(w, r.WithContext(WithUserID(r.Context(), userID)))
	}
}

func bearerToken(value string) (string, bool) {
	const bearer = "Bearer "
	if !strings.HasPrefix(value, bearer) {
		return "", false
	}

	token := value[len(bearer):]
	if token == "" {
		return "", false
	}

	return token, true
}
