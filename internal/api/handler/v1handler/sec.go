package v1handler

import (
	"context"
	"net/http"
	"strings"

	"tasjeel/internal/adminauth"
	"tasjeel/pkg/serrors"
)

// ctxKey is a private type for context values set by this package.
type ctxKey string

const sessionKey ctxKey = "AdminSession"

// SessionFrom returns the admin session attached to the context by
// requireSession, or nil outside an authenticated request.
func SessionFrom(ctx context.Context) *adminauth.Session {
	session, _ := ctx.Value(sessionKey).(*adminauth.Session)

	return session
}

// bearerToken extracts the token from an Authorization: Bearer header.
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(auth) <= len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return ""
	}

	return auth[len(prefix):]
}

// requireSession rejects requests without a valid admin session and attaches
// the session to the request context. Authorization logic itself lives in the
// session provider.
func (h *Handler) requireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeError(r.Context(), w, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		session, err := h.deps.Sessions.CurrentSession(r.Context(), token)
		if err != nil {
			writeError(r.Context(), w, err)

			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), sessionKey, session)))
	}
}
