package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the BFF server, resolved once at
// startup and immutable afterwards.
type Config struct {
	// Mandatory upstream connection settings. LoadConfig fails when any of
	// these is absent, before the server binds a port.
	SupabaseURL    string
	ServiceRoleKey string
	Bucket         string
	ClientsTable   string

	// Optional settings with fixed defaults.
	Port              string
	AccessCookieName  string
	RefreshCookieName string
	RefreshMargin     int // seconds shaved off the 1h signed-URL lifetime
	Env               string
	LogLevel          string
}

const (
	defaultPort              = "4000"
	defaultAccessCookieName  = "sb-access-token"
	defaultRefreshCookieName = "sb-refresh-token"
	defaultRefreshMargin     = 60
	signedURLBaseLifetime    = 3600
)

// aliases maps each mandatory setting to its accepted environment variable
// names, in resolution order. The first nonempty trimmed value wins.
var aliases = map[string][]string{
	"SUPABASE_URL":              {"SUPABASE_URL", "VITE_SUPABASE_URL", "NEXT_PUBLIC_SUPABASE_URL"},
	"SUPABASE_SERVICE_ROLE_KEY": {"SUPABASE_SERVICE_ROLE_KEY", "SUPABASE_SERVICE_ROLE", "SUPABASE_SERVICE_KEY"},
	"SUPABASE_BUCKET":           {"SUPABASE_BUCKET", "SUPABASE_STORAGE_BUCKET", "SUPABASE_BUCKET_NAME"},
	"SUPABASE_CLIENTS_TABLE":    {"SUPABASE_CLIENTS_TABLE", "SUPABASE_CLIENTS_TABLE_NAME", "SUPABASE_TABLE_CLIENTS"},
}

// LoadConfig reads configuration from environment variables. Each mandatory
// setting accepts several alias names; a setting whose every alias is unset
// or blank makes LoadConfig return an error so the caller can refuse to
// start.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", defaultPort)
	v.SetDefault("TOKEN_COOKIE_NAME", defaultAccessCookieName)
	v.SetDefault("REFRESH_COOKIE_NAME", defaultRefreshCookieName)
	v.SetDefault("TOKEN_REFRESH_MARGIN", strconv.Itoa(defaultRefreshMargin))
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		SupabaseURL:       resolveAlias(v, "SUPABASE_URL"),
		ServiceRoleKey:    resolveAlias(v, "SUPABASE_SERVICE_ROLE_KEY"),
		Bucket:            resolveAlias(v, "SUPABASE_BUCKET"),
		ClientsTable:      resolveAlias(v, "SUPABASE_CLIENTS_TABLE"),
		Port:              v.GetString("PORT"),
		AccessCookieName:  v.GetString("TOKEN_COOKIE_NAME"),
		RefreshCookieName: v.GetString("REFRESH_COOKIE_NAME"),
		RefreshMargin:     parseMargin(v.GetString("TOKEN_REFRESH_MARGIN")),
		Env:               v.GetString("ENV"),
		LogLevel:          v.GetString("LOG_LEVEL"),
	}

	if cfg.SupabaseURL == "" || cfg.ServiceRoleKey == "" {
		return nil, fmt.Errorf(
			"missing SUPABASE_URL or SUPABASE_SERVICE_ROLE_KEY (aliases supported: %s; %s)",
			strings.Join(aliases["SUPABASE_URL"][1:], ", "),
			strings.Join(aliases["SUPABASE_SERVICE_ROLE_KEY"][1:], ", "))
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("missing SUPABASE_BUCKET (aliases supported: %s)",
			strings.Join(aliases["SUPABASE_BUCKET"][1:], ", "))
	}
	if cfg.ClientsTable == "" {
		return nil, fmt.Errorf("missing SUPABASE_CLIENTS_TABLE (aliases supported: %s)",
			strings.Join(aliases["SUPABASE_CLIENTS_TABLE"][1:], ", "))
	}

	cfg.SupabaseURL = strings.TrimRight(cfg.SupabaseURL, "/")

	return cfg, nil
}

func resolveAlias(v *viper.Viper, primary string) string {
	for _, key := range aliases[primary] {
		if value := strings.TrimSpace(v.GetString(key)); value != "" {
			return value
		}
	}
	return ""
}

// parseMargin mirrors the permissive parsing of the original deployment:
// a non-numeric or non-positive margin silently falls back to the default.
func parseMargin(raw string) int {
	margin, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || margin <= 0 {
		return defaultRefreshMargin
	}
	return margin
}

// IsProduction reports whether the server runs in a production-like mode,
// which controls the Secure attribute on session cookies.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// SignedURLTTL returns the signed-URL validity window in seconds: one hour
// shrunk by the refresh margin, never below one minute.
func (c *Config) SignedURLTTL() int {
	ttl := signedURLBaseLifetime - c.RefreshMargin
	if ttl < 60 {
		return 60
	}
	return ttl
}

// ListenAddr returns the address for the HTTP listener. The PORT value is
// used as-is: an invalid value surfaces as a listen error at startup rather
// than a silent fallback.
func (c *Config) ListenAddr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
