package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	apiecho "github.com/Neon18H/APP-WEB-FILPP/api/echo"
	"github.com/Neon18H/APP-WEB-FILPP/config"
	"github.com/Neon18H/APP-WEB-FILPP/internal/server"
	"github.com/Neon18H/APP-WEB-FILPP/internal/tracing"
	"github.com/Neon18H/APP-WEB-FILPP/services"
	"github.com/Neon18H/APP-WEB-FILPP/supabase"
)

const serviceName = "filpp-bff"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logLevel, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Str("configured_level", cfg.LogLevel).Msg("Invalid log level in config, defaulting to info")
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	log.Info().
		Str("port", cfg.Port).
		Str("supabase_url", cfg.SupabaseURL).
		Str("bucket", cfg.Bucket).
		Str("clients_table", cfg.ClientsTable).
		Int("refresh_margin_s", cfg.RefreshMargin).
		Int("signed_url_ttl_s", cfg.SignedURLTTL()).
		Bool("production", cfg.IsProduction()).
		Msg("Configuration loaded")

	tp, err := tracing.InitTracerProvider(serviceName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize tracer provider")
	}

	upstream := supabase.New(cfg.SupabaseURL, cfg.ServiceRoleKey, cfg.Bucket, cfg.ClientsTable)

	sessions := services.NewSessionService(upstream)
	clients := services.NewClientService(upstream)
	documents := services.NewDocumentService(upstream, cfg.SignedURLTTL())
	cookies := apiecho.NewCookieManager(cfg.AccessCookieName, cfg.RefreshCookieName, cfg.IsProduction())

	api := apiecho.NewAPI(sessions, clients, documents, cookies)
	srv := server.NewHTTPServer(cfg, api)

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("BFF listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown failed")
	}
	if err := tp.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Tracer provider shutdown failed")
	}
}
