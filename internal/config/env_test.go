package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesAllSections(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "super-secret")
	t.Setenv("APP_TOKEN_ISSUER", "user-hub-test")
	t.Setenv("APP_TOKEN_DURATION_SECONDS", "3600")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://u:p@localhost:5432/users?sslmode=disable")
	t.Setenv("SERVER_ADDRESS", "localhost:8080")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "30s")

	var cfg StructuredConfig
	err := parseEnv(&cfg)
	require.NoError(t, err)

	assert.Equal(t, "super-secret", cfg.App.TokenSignKey)
	assert.Equal(t, "user-hub-test", cfg.App.TokenIssuer)
	assert.Equal(t, int64(3600), cfg.App.TokenDurationSeconds)
	assert.Equal(t, "postgres://u:p@localhost:5432/users?sslmode=disable", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "30s", cfg.Server.RequestTimeout.String())
}

func TestParseEnv_InvalidDurationSeconds(t *testing.T) {
	t.Setenv("APP_TOKEN_DURATION_SECONDS", "not-a-number")

	var cfg StructuredConfig
	err := parseEnv(&cfg)
	require.Error(t, err)
}

func TestTokenDuration_ConvertsSeconds(t *testing.T) {
	app := App{TokenDurationSeconds: 90}
	assert.Equal(t, "1m30s", app.TokenDuration().String())
}

func TestValidate_MissingRequiredValues(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{
			name:    "missing DSN",
			cfg:     StructuredConfig{},
			wantErr: ErrMissingDatabaseDSN,
		},
		{
			name: "missing sign key",
			cfg: StructuredConfig{
				Storage: Storage{DB: DB{DSN: "postgres://localhost/users"}},
			},
			wantErr: ErrMissingTokenSignKey,
		},
		{
			name: "missing token duration",
			cfg: StructuredConfig{
				App:     App{TokenSignKey: "k"},
				Storage: Storage{DB: DB{DSN: "postgres://localhost/users"}},
			},
			wantErr: ErrInvalidTokenDuration,
		},
		{
			name: "missing server address",
			cfg: StructuredConfig{
				App:     App{TokenSignKey: "k", TokenDurationSeconds: 60},
				Storage: Storage{DB: DB{DSN: "postgres://localhost/users"}},
			},
			wantErr: ErrMissingServerAddress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_DefaultsIssuer(t *testing.T) {
	cfg := StructuredConfig{
		App:     App{TokenSignKey: "k", TokenDurationSeconds: 60},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/users"}},
		Server:  Server{HTTPAddress: "localhost:8080"},
	}

	require.NoError(t, cfg.validate())
	assert.Equal(t, defaultTokenIssuer, cfg.App.TokenIssuer)
}
