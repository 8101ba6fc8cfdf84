package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/semenovp/go-user-hub/internal/config"
	"github.com/semenovp/go-user-hub/internal/logger"
	"github.com/semenovp/go-user-hub/internal/utils"
	"github.com/semenovp/go-user-hub/models"
)

// SessionCookieName is the name of the HTTP-only cookie carrying the signed
// session token.
const SessionCookieName = "user_session"

// authService is the concrete implementation of [AuthService]. It handles
// session token issuance and validation using HMAC-SHA256 signed JWTs.
type authService struct {
	// tokenSignKey is the HMAC secret used to sign and verify session
	// tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during
	// parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued session remains
	// valid. The cookie lifetime mirrors it exactly.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] populated with security
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration(),
		logger:        logger,
	}
}

// IssueSession signs a session token for the given verified user and builds
// the cookie that transports it.
//
// The cookie is HTTP-only, scoped to the whole site, and carries an explicit
// Expires timestamp equal to the token's encoded expiry, so that the browser
// drops the cookie at the same moment the token stops validating.
func (a *authService) IssueSession(ctx context.Context, user models.User) (models.SessionToken, *http.Cookie, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateSessionToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("id", user.ID).Msg("session token creation failed")
		return models.SessionToken{}, nil, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	cookie := &http.Cookie{
		Name:     SessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  token.ExpiresAt.UTC(),
		MaxAge:   int(a.tokenDuration.Seconds()),
	}

	return token, cookie, nil
}

// ParseSession validates and parses a raw session token string.
//
// It delegates signature, issuer, and expiry validation to the token
// utilities. Any validation failure is normalised to [ErrSessionInvalid] so
// that callers do not need to inspect low-level JWT errors.
func (a *authService) ParseSession(ctx context.Context, tokenString string) (models.Principal, error) {
	principal, err := utils.ValidateAndParseSessionToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Principal{}, ErrSessionInvalid
	}

	return principal, nil
}
