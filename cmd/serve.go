package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fintrack/backend/internal/auth"
	"github.com/fintrack/backend/internal/controllers"
	"github.com/fintrack/backend/internal/router"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	apiURL, err := url.Parse(getenv("API_URL", "http://localhost:8080"))
	if err != nil {
		return fmt.Errorf("environment variable API_URL must be a valid URL: %w", err)
	}

	verifier, err := verifierFromEnv(ctx)
	if err != nil {
		return err
	}

	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer closeDatabase(db)

	r, teardown, err := router.Config(apiURL)
	if err != nil {
		return err
	}
	defer teardown()

	router.AttachRoutes(controllers.Controller{DB: db}, verifier, r.Group("/"))

	srv := &http.Server{
		Addr:           ":" + getenv("PORT", "8080"),
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16,
	}

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown")
		}
	}()

	log.Info().Str("addr", srv.Addr).Str("database", databasePath()).Msg("backend startup complete")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	log.Info().Msg("server stopped")
	return nil
}

// verifierFromEnv builds the token verifier configured in AUTH_MODE.
func verifierFromEnv(ctx context.Context) (auth.Verifier, error) {
	switch mode := getenv("AUTH_MODE", "static"); mode {
	case "google":
		return auth.NewGoogleVerifier(ctx, os.Getenv("AUTH_AUDIENCE"))
	case "firebase":
		return auth.NewFirebaseVerifier(os.Getenv("FIREBASE_PROJECT_ID"), nil)
	case "static":
		v, err := auth.ParseStaticTokens(os.Getenv("AUTH_STATIC_TOKENS"))
		if err != nil {
			return nil, fmt.Errorf("AUTH_STATIC_TOKENS: %w", err)
		}

		log.Warn().Int("tokens", len(v)).Msg("using static tokens for authentication, do not use this in production")
		return v, nil
	default:
		return nil, fmt.Errorf("unknown AUTH_MODE %q, use static, google or firebase", mode)
	}
}

func getenv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}

	return fallback
}
