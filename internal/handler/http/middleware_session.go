package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/semenovp/go-user-hub/internal/logger"
	"github.com/semenovp/go-user-hub/internal/service"
	"github.com/semenovp/go-user-hub/internal/utils"
)

// withSession is an HTTP middleware that resolves the session cookie into an
// authenticated principal.
//
// It reads the cookie named [service.SessionCookieName], validates the token
// it carries via [service.AuthService.ParseSession], and on success stores
// the principal in the request context under [utils.PrincipalCtxKey].
//
// The middleware never rejects a request on its own. A missing, expired, or
// tampered cookie simply means no principal is attached; operations that
// require one fail individually when they look the principal up. This keeps
// anonymous operations, such as account registration, reachable on the same
// endpoint.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(service.SessionCookieName)
		if err != nil {
			// http.ErrNoCookie is the only error r.Cookie returns.
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		principal, err := h.services.AuthService.ParseSession(ctx, cookie.Value)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrSessionInvalid):
				log.Warn().Err(err).Msg("session cookie rejected")
			default:
				log.Err(err).Msg("unexpected error occurred during session parsing")
			}
			next.ServeHTTP(w, r)
			return
		}

		log.Debug().Str("user_id", principal.UserID).Msg("session resolved")

		ctx = context.WithValue(ctx, utils.PrincipalCtxKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
