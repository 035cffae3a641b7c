package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/DanEinstein/go_catalog/internal/server"
	"github.com/DanEinstein/go_catalog/internal/server/store"
	"github.com/DanEinstein/go_catalog/pkg/logger"
)

type Config struct {
	HTTPPort        string
	StoreKind       string // "memory" or "postgres"
	ShutdownTimeout time.Duration

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDatabase     string
	MigrationsPath string

	LogFormat string
	LogLevel  string
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8000"),
		StoreKind:       getEnv("CATALOG_STORE", "memory"),
		ShutdownTimeout: 10 * time.Second,
		PGHost:          getEnv("POSTGRES_HOST", "localhost"),
		PGPort:          getEnvInt("POSTGRES_PORT", 5432),
		PGUser:          getEnv("POSTGRES_USER", "postgres"),
		PGPassword:      getEnv("POSTGRES_PASSWORD", ""),
		PGDatabase:      getEnv("POSTGRES_DB", "catalog"),
		MigrationsPath:  getEnv("MIGRATIONS_PATH", "migrations"),
		LogFormat:       getEnv("CATALOG_LOG_FORMAT", "json"),
		LogLevel:        getEnv("CATALOG_LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func openStore(cfg *Config) (store.Store, error) {
	if cfg.StoreKind != "postgres" {
		return store.NewMemory(), nil
	}

	pg, err := store.NewPostgres(&store.Credentials{
		Host:     cfg.PGHost,
		Port:     cfg.PGPort,
		User:     cfg.PGUser,
		Password: cfg.PGPassword,
		DBName:   cfg.PGDatabase,
	})
	if err != nil {
		return nil, err
	}
	if err := pg.RunMigrations(cfg.MigrationsPath); err != nil {
		return nil, err
	}
	return pg, nil
}

func main() {
	_ = godotenv.Load()
	cfg := loadConfig()

	logger.New(logger.Config{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: cfg.LogFormat,
	})

	st, err := openStore(cfg)
	if err != nil {
		slog.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(server.New(st), "catalogd"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("catalogd starting", "port", cfg.HTTPPort, "store", cfg.StoreKind)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited")
}
