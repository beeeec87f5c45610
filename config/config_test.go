package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvDefaults(t *testing.T) {
	for _, k := range keys {
		t.Setenv(k, "")
	}

	cfg, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.AdminEmail)
	assert.False(t, cfg.OIDCEnabled())
	assert.Error(t, cfg.RequireServer())
}

func TestLoadEnvReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_URL", "postgres://localhost/portal")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("ADMIN_EMAIL", "  admin@example.com ")
	t.Setenv("OIDC_ISSUER_URL", "https://issuer.example.com")
	t.Setenv("OIDC_CLIENT_ID", "portal")

	cfg, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "admin@example.com", cfg.AdminEmail)
	assert.True(t, cfg.OIDCEnabled())
	assert.NoError(t, cfg.RequireServer())
}
