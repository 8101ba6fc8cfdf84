package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/semenovp/go-user-hub/internal/app"
	"github.com/semenovp/go-user-hub/internal/logger"
	"github.com/semenovp/go-user-hub/internal/service"
	"github.com/semenovp/go-user-hub/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	// A malformed login attempt fails exactly like a wrong password would.
	// Only presence is checked here; reporting which credential field is
	// missing would leak request shape to an attacker probing the endpoint.
	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("login request failed validation")
		http.Error(w, app.MsgInvalidEmailPassword, http.StatusUnauthorized)
		return
	}

	user, err := h.services.UserService.VerifyUser(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAuthenticationRejected):
			log.Err(err).Msg("credentials rejected")
			http.Error(w, app.MsgInvalidEmailPassword, http.StatusUnauthorized)
			return
		default:
			status := statusFromError(err)
			log.Err(err).Msg("unexpected error occurred during credential verification")
			http.Error(w, http.StatusText(status), status)
			return
		}
	}

	log.Debug().Str("id", user.ID).Msg("user successfully verified")

	_, cookie, err := h.services.AuthService.IssueSession(ctx, user)
	if err != nil {
		log.Err(err).Msg("session issuance failed")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, cookie)
	w.WriteHeader(http.StatusOK)
}
