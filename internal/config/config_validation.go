package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Required values: database DSN, token signing key, token lifetime, and the
// HTTP listen address. Startup fails fast when any of them is absent.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDatabaseDSN
	}

	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.App.TokenDurationSeconds <= 0 {
		return ErrInvalidTokenDuration
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrMissingServerAddress
	}

	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}

	return nil
}

// defaultTokenIssuer is used for the "iss" claim when no issuer is configured.
const defaultTokenIssuer = "go-user-hub"
