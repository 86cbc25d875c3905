// Package cmd implements the fintrack command line interface.
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const defaultDatabasePath = "data/gorm.db"

var flagDatabase string

var rootCmd = &cobra.Command{
	Use:               "fintrack",
	Short:             "Personal finance tracker",
	Long:              "Record expenses, set monthly budgets and see where your money goes.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runServe,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDatabase, "db", "", "Path to the SQLite database. Defaults to $DB_PATH or "+defaultDatabasePath)
}

// setup loads the .env file and configures gin and the logger.
func setup(_ *cobra.Command, _ []string) error {
	// A missing .env file is fine, the environment is used as is
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	return nil
}

// databasePath returns the database path from the flag, the environment
// or the default, in that order.
func databasePath() string {
	if flagDatabase != "" {
		return flagDatabase
	}

	if path, ok := os.LookupEnv("DB_PATH"); ok && path != "" {
		return path
	}

	return defaultDatabasePath
}

// openDatabase creates the data directory if needed and connects to the database.
func openDatabase() (*gorm.DB, error) {
	path := databasePath()

	err := os.MkdirAll(filepath.Dir(path), os.ModePerm)
	if err != nil {
		return nil, fmt.Errorf("could not create data directory: %w", err)
	}

	return models.Connect(path + "?_pragma=foreign_keys(1)")
}

// closeDatabase closes the database and logs errors doing so.
func closeDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error().Err(err).Msg("could not get database handle")
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("could not close database")
	}
}
