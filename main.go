package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/scoreboard/internal/config"
	"github.com/mauv0809/scoreboard/internal/database"
	server "github.com/mauv0809/scoreboard/internal/http"
	"github.com/mauv0809/scoreboard/internal/metrics"
	"github.com/mauv0809/scoreboard/internal/notifier"
	pubsubnotifier "github.com/mauv0809/scoreboard/internal/notifier/pubsub"
	"github.com/mauv0809/scoreboard/internal/notifier/slack"
	"github.com/mauv0809/scoreboard/internal/persistence"
	"github.com/mauv0809/scoreboard/internal/pubsub"
	"github.com/mauv0809/scoreboard/internal/session"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	cfg := config.Load()
	config.ConfigureLogger(cfg)

	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()
	log.Info("Database initialization time recorded", "duration_ms", time.Since(startTime).Milliseconds())

	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()

	var notifiers []notifier.Notifier
	if cfg.SlackEnabled() {
		notifiers = append(notifiers, slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, cfg.Slack.DryRun, metricsSvc))
		log.Info("Slack notifications enabled", "channel", cfg.Slack.ChannelID, "dry_run", cfg.Slack.DryRun)
	}
	if cfg.PubSubEnabled() {
		pubsubClient, err := pubsub.New(context.Background(), cfg.PubSub.ProjectID)
		if err != nil {
			log.Fatalf("Failed to create pubsub client: %v", err)
		}
		defer pubsubClient.Close()
		notifiers = append(notifiers, pubsubnotifier.NewPublisher(pubsubClient, cfg.PubSub.Topic, metricsSvc))
		log.Info("Pub/Sub events enabled", "project", cfg.PubSub.ProjectID, "topic", cfg.PubSub.Topic)
	}

	boards := session.NewRegistry(
		persistence.NewSQLStore(db),
		session.Options{
			HistoryLimit: cfg.HistoryLimit,
			Notifiers:    notifiers,
			Metrics:      metricsSvc,
		},
		persistence.WithRetry(uint64(max(0, cfg.SaveRetries)), 100*time.Millisecond),
	)
	// Open the default board eagerly so a bad database shows up at startup.
	if _, err := boards.Get(context.Background(), cfg.DefaultBoard); err != nil {
		log.Fatalf("Failed to open default board %q: %s", cfg.DefaultBoard, err)
	}

	s := server.NewServer(boards, metricsHandler, cfg)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
