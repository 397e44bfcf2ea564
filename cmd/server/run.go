package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Kamar-Folarin/repo-pulse/internal/api"
	"github.com/Kamar-Folarin/repo-pulse/internal/config"
	"github.com/Kamar-Folarin/repo-pulse/internal/dashboard"
	apperrors "github.com/Kamar-Folarin/repo-pulse/internal/errors"
	"github.com/Kamar-Folarin/repo-pulse/internal/github"
	"github.com/Kamar-Folarin/repo-pulse/internal/metrics"

	_ "github.com/Kamar-Folarin/repo-pulse/docs"
)

var runFlags struct {
	port     string
	logLevel string
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the dashboard server",
	Long: `Start the Repo Pulse server.

Configuration is read from the environment (and an optional .env file);
flags override individual values.

Examples:
  # Start with defaults (port 8080, dashboard for pandas-dev/pandas)
  repo-pulse run

  # Override the listen port
  repo-pulse run --port 9090`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runFlags.port, "port", "p", "", "override listen port")
	runCmd.Flags().StringVar(&runFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
}

func runServer(cmd *cobra.Command, args []string) error {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	logger.SetOutput(os.Stdout)

	// Load configuration with defaults
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if runFlags.port != "" {
		cfg.Port = runFlags.port
	}
	if runFlags.logLevel != "" {
		cfg.LogLevel = runFlags.logLevel
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warnf("Unknown log level %q, using info", cfg.LogLevel)
	}

	// Initialize services
	collector := metrics.NewCollector(nil)
	client := github.NewClient(cfg.GitHub(), logger)
	service := dashboard.NewService(client, cfg.Dashboard(), collector, logger)
	apiHandler := api.NewHandler(service, logger)

	// Setup router with middleware
	router := api.SetupRouter(apiHandler, collector, logger)
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(router)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      corsHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	// Run one initial refresh of the default repository through the same
	// cycle path every user-triggered refresh uses. Failure is logged,
	// never fatal: the dashboard stays usable for manual attempts.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		err := retry(3, 5*time.Second, func() error {
			_, err := service.Refresh(ctx, cfg.DefaultOwner, cfg.DefaultRepo)
			if apperrors.IsEmptyResult(err) {
				// An empty repository is a valid first cycle.
				return nil
			}
			return err
		})
		if err != nil {
			logger.WithError(err).Warnf("Initial refresh of %s/%s failed", cfg.DefaultOwner, cfg.DefaultRepo)
			return
		}
		logger.Infof("Initial refresh of %s/%s completed", cfg.DefaultOwner, cfg.DefaultRepo)
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
		return err
	}
	logger.Info("Server exited properly")
	return nil
}

// retry retries a function up to a certain number of attempts with a delay between attempts
func retry(attempts int, sleep time.Duration, fn func() error) error {
	if err := fn(); err != nil {
		if attempts--; attempts > 0 {
			time.Sleep(sleep)
			return retry(attempts, sleep, fn)
		}
		return err
	}
	return nil
}
