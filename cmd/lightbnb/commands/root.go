// Package commands holds the lightbnb command line: serve, migrate and seed.
package commands

import (
	"fmt"
	"os"

	"github.com/deppfellow/lightbnb/internal/config"
	"github.com/deppfellow/lightbnb/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	fixturesDir string
)

var rootCmd = &cobra.Command{
	Use:   "lightbnb",
	Short: "LightBnB property rental API",
	Long: `LightBnB serves users, reservations and property listings from PostgreSQL.

Configuration is read from LIGHTBNB_* environment variables (and a .env file
when present), e.g. LIGHTBNB_DATABASE__HOST or LIGHTBNB_SERVER__PORT.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&fixturesDir, "fixtures-dir", "", "Directory holding properties.json and users.json (defaults to the embedded fixtures)")
}

// app is what every command needs before doing its own work.
type app struct {
	cfg           *config.Config
	log           zerolog.Logger
	loggerService *logger.LoggerService
}

func bootstrap() (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if fixturesDir != "" {
		cfg.Fixtures.Dir = fixturesDir
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	return &app{cfg: cfg, log: log, loggerService: loggerService}, nil
}

func (r *app) close() {
	r.loggerService.Shutdown()
}
