package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/gugulethu-mngomezulu/Interview-Prep-AI/internal/api"
	"github.com/gugulethu-mngomezulu/Interview-Prep-AI/internal/infrastructure/config"
	"github.com/gugulethu-mngomezulu/Interview-Prep-AI/internal/service"
	"github.com/gugulethu-mngomezulu/Interview-Prep-AI/internal/store"

	_ "github.com/gugulethu-mngomezulu/Interview-Prep-AI/docs" // generated swagger docs
)

// @title           Interview Prep API
// @version         1.0
// @description     Interview practice sessions — generated question sets, a running countdown, and scored reviews.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := openStore(cfg, logger)
	if err != nil {
		logger.Error("failed to open store", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	sessions := service.NewSessionService(db, logger, service.Options{
		GenerationDelay:   cfg.GenerationDelay,
		GenerationWorkers: cfg.GenerationWorkers,
		TickInterval:      cfg.TickInterval,
	})
	defer sessions.Close()

	handler := api.NewHandler(sessions, api.Identity{
		Name:   cfg.UserName,
		Avatar: cfg.UserAvatar,
	}, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress, "store", cfg.StoreDriver)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}

// openStore picks the persistence backend from configuration.
func openStore(cfg *config.Config, logger *slog.Logger) (store.Store, error) {
	switch cfg.StoreDriver {
	case "redis":
		return store.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, logger)
	default:
		return store.NewSQLite(cfg.SQLitePath, logger)
	}
}
