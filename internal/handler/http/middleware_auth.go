package http

import (
	"context"
	"net/http"

	"github.com/wall-of-love/server/internal/logger"
	"github.com/wall-of-love/server/internal/utils"
	"github.com/wall-of-love/server/models"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It resolves the request to a user account via [Handler.currentUser]
// and, on success, stores the account in the request context under
// [utils.CurrentUserCtxKey] before delegating to the next handler.
//
// Requests that cannot be resolved — absent or malformed
// "Authorization" header, invalid or expired token, unknown subject —
// are rejected with HTTP 401, the uniform detail body, and a
// "WWW-Authenticate: Bearer" header.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.currentUser(r)
		if !ok {
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeError(w, detailInvalidToken, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.CurrentUserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// currentUser resolves the request's bearer token to an account.
//
// Any failure along the way — no header, unparseable header, invalid
// token, no matching user — yields (nil, false); callers decide whether
// an anonymous request is acceptable. Rejection causes are logged with
// the request-scoped logger but never distinguished in responses.
func (h *Handler) currentUser(r *http.Request) (*models.User, bool) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		log.Debug().Msg("no authorization header")
		return nil, false
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		log.Warn().Err(err).Msg("malformed authorization header")
		return nil, false
	}

	token, err := h.services.AuthService.ParseToken(ctx, tokenString)
	if err != nil {
		log.Warn().Err(err).Msg("token rejected")
		return nil, false
	}

	user, err := h.services.AuthService.GetUserByEmail(ctx, token.Email)
	if err != nil {
		log.Warn().Err(err).Str("email", token.Email).Msg("token subject not found")
		return nil, false
	}

	return &user, true
}
