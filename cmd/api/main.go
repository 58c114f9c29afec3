package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/melendez-dev/transmetro-gtfs/internal/app"
	"github.com/melendez-dev/transmetro-gtfs/internal/appconf"
	"github.com/melendez-dev/transmetro-gtfs/internal/gtfs"
	"github.com/melendez-dev/transmetro-gtfs/internal/logging"
	"github.com/melendez-dev/transmetro-gtfs/internal/metrics"
	"github.com/melendez-dev/transmetro-gtfs/internal/restapi"
)

func main() {
	// Load .env into the environment (ignore if missing).
	_ = godotenv.Load()

	var (
		port       int
		env        string
		gtfsPath   string
		configPath string
		rateLimit  int
	)
	flag.IntVar(&port, "port", 8000, "API server port")
	flag.StringVar(&env, "env", envDefault("APP_ENV", "development"), "Environment (development|test|production)")
	flag.StringVar(&gtfsPath, "gtfs-path", envDefault("GTFS_PATH", "Barranquilla_GTFS.zip"), "Path to a static GTFS zip file or directory")
	flag.StringVar(&configPath, "config", os.Getenv("CONFIG_FILE"), "Optional YAML config file")
	flag.IntVar(&rateLimit, "rate-limit", 100, "Requests per second per client (negative disables)")
	flag.Parse()

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	cfg := appconf.Config{
		Port:      port,
		Env:       appconf.EnvFlagToEnvironment(env),
		RateLimit: rateLimit,
	}
	gtfsConfig := gtfs.Config{StaticPath: gtfsPath}

	if configPath != "" {
		fileCfg, err := appconf.LoadFile(configPath)
		if err != nil {
			logging.LogError(logger, "failed to load config file", err, slog.String("path", configPath))
			os.Exit(1)
		}
		if fileCfg.Server.Port != 0 {
			cfg.Port = fileCfg.Server.Port
		}
		if fileCfg.Server.RateLimit != 0 {
			cfg.RateLimit = fileCfg.Server.RateLimit
		}
		if fileCfg.GTFS.Path != "" {
			gtfsConfig.StaticPath = fileCfg.GTFS.Path
		}
	}

	// Load the schedule once and share the read-only store across requests.
	store, err := gtfs.Load(gtfsConfig.StaticPath)
	if err != nil {
		logging.LogError(logger, "failed to load schedule", err, slog.String("source", gtfsConfig.StaticPath))
		os.Exit(1)
	}
	logger.Info("schedule loaded",
		"source", gtfsConfig.StaticPath,
		"stops", len(store.Stops),
		"routes", len(store.Routes),
		"trips", len(store.Trips),
		"stop_times", len(store.StopTimes))

	collector := metrics.NewCollector()
	collector.SetScheduleSizes(len(store.Stops), len(store.Trips), len(store.Routes), len(store.StopTimes))

	application := &app.Application{
		Config:     cfg,
		GtfsConfig: gtfsConfig,
		Logger:     logger,
		Store:      store,
		Metrics:    collector,
	}
	api := restapi.NewRestAPI(application)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.Router(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.LogError(logger, "server stopped", err)
			os.Exit(1)
		}
	}()

	<-shutdown
	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logging.LogError(logger, "graceful shutdown failed", err)
	}
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
