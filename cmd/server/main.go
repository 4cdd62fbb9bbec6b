package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-logr/zapr"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/in-nis/studytrack/internal/api"
	"github.com/in-nis/studytrack/internal/auth"
	"github.com/in-nis/studytrack/internal/config"
	"github.com/in-nis/studytrack/internal/cron"
	"github.com/in-nis/studytrack/internal/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}

	cfg := config.Load()

	zl, err := newZap(cfg.LogDevelopment)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zl.Sync()
	logger := zapr.NewLogger(zl)
	setupLog := logger.WithName("setup")

	if !cfg.LogDevelopment {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := db.Open(cfg.DBUrl, logger.WithName("db"))
	if err != nil {
		setupLog.Error(err, "Failed to open database")
		os.Exit(1)
	}
	defer store.Close()
	setupLog.Info("Database connected and migrated")

	svc := auth.NewService(store, cfg)
	r := api.SetupRouter(cfg, store, svc, logger.WithName("http"))

	handler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Content-Type", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(r)

	poller := cron.NewReminderPoller(store, logger, cron.WithInterval(cfg.ReminderInterval))
	if err := poller.Start(); err != nil {
		setupLog.Error(err, "Failed to start reminder poller")
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		setupLog.Info("Server running", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			setupLog.Error(err, "Server failed")
			stop()
		}
	}()

	<-ctx.Done()
	setupLog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		setupLog.Error(err, "Server shutdown")
	}
	if err := poller.Stop(shutdownCtx); err != nil {
		setupLog.Error(err, "Reminder poller shutdown")
	}
}

func newZap(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
