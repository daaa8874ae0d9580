package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var managedVars = []string{
	"SUPABASE_URL", "VITE_SUPABASE_URL", "NEXT_PUBLIC_SUPABASE_URL",
	"SUPABASE_SERVICE_ROLE_KEY", "SUPABASE_SERVICE_ROLE", "SUPABASE_SERVICE_KEY",
	"SUPABASE_BUCKET", "SUPABASE_STORAGE_BUCKET", "SUPABASE_BUCKET_NAME",
	"SUPABASE_CLIENTS_TABLE", "SUPABASE_CLIENTS_TABLE_NAME", "SUPABASE_TABLE_CLIENTS",
	"PORT", "TOKEN_COOKIE_NAME", "REFRESH_COOKIE_NAME", "TOKEN_REFRESH_MARGIN",
	"ENV", "LOG_LEVEL",
}

func resetEnv(t *testing.T) {
	t.Helper()
	for _, key := range managedVars {
		os.Unsetenv(key)
	}
}

func setMandatory(t *testing.T) {
	t.Helper()
	t.Setenv("SUPABASE_URL", "https://proj.supabase.co")
	t.Setenv("SUPABASE_SERVICE_ROLE_KEY", "service-key")
	t.Setenv("SUPABASE_BUCKET", "docs")
	t.Setenv("SUPABASE_CLIENTS_TABLE", "clients")
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetEnv(t)
	setMandatory(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "sb-access-token", cfg.AccessCookieName)
	assert.Equal(t, "sb-refresh-token", cfg.RefreshCookieName)
	assert.Equal(t, 60, cfg.RefreshMargin)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_AliasOrder(t *testing.T) {
	resetEnv(t)
	setMandatory(t)

	// The primary name wins over any alias.
	t.Setenv("VITE_SUPABASE_URL", "https://alias.supabase.co")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://proj.supabase.co", cfg.SupabaseURL)

	// With the primary unset, the first alias carrying a value wins.
	os.Unsetenv("SUPABASE_URL")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://alias.supabase.co", cfg.SupabaseURL)
}

func TestLoadConfig_BlankAliasSkipped(t *testing.T) {
	resetEnv(t)
	setMandatory(t)

	os.Unsetenv("SUPABASE_BUCKET")
	t.Setenv("SUPABASE_STORAGE_BUCKET", "   ")
	t.Setenv("SUPABASE_BUCKET_NAME", "real-bucket")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "real-bucket", cfg.Bucket)
}

func TestLoadConfig_MissingMandatory(t *testing.T) {
	cases := []string{
		"SUPABASE_URL",
		"SUPABASE_SERVICE_ROLE_KEY",
		"SUPABASE_BUCKET",
		"SUPABASE_CLIENTS_TABLE",
	}
	for _, missing := range cases {
		t.Run(missing, func(t *testing.T) {
			resetEnv(t)
			setMandatory(t)
			os.Unsetenv(missing)

			_, err := LoadConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "missing")
		})
	}
}

func TestLoadConfig_RefreshMarginFallback(t *testing.T) {
	resetEnv(t)
	setMandatory(t)

	t.Setenv("TOKEN_REFRESH_MARGIN", "not-a-number")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.RefreshMargin)

	t.Setenv("TOKEN_REFRESH_MARGIN", "120")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.RefreshMargin)
}

func TestSignedURLTTL(t *testing.T) {
	assert.Equal(t, 3540, (&Config{RefreshMargin: 60}).SignedURLTTL())
	assert.Equal(t, 3300, (&Config{RefreshMargin: 300}).SignedURLTTL())
	// The window never shrinks below one minute.
	assert.Equal(t, 60, (&Config{RefreshMargin: 3590}).SignedURLTTL())
}

func TestIsProduction(t *testing.T) {
	assert.True(t, (&Config{Env: "production"}).IsProduction())
	assert.True(t, (&Config{Env: "PRODUCTION"}).IsProduction())
	assert.False(t, (&Config{Env: "development"}).IsProduction())
}

func TestListenAddr(t *testing.T) {
	assert.Equal(t, ":4000", (&Config{Port: "4000"}).ListenAddr())
	assert.Equal(t, ":9090", (&Config{Port: ":9090"}).ListenAddr())
}
