package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/georgemunganga/printa-pos/internal/config"
	"github.com/georgemunganga/printa-pos/internal/logger"
	"github.com/georgemunganga/printa-pos/internal/metrics"
	"github.com/georgemunganga/printa-pos/internal/middleware"
	"github.com/georgemunganga/printa-pos/internal/modules/auth"
	"github.com/georgemunganga/printa-pos/internal/modules/item"
	"github.com/georgemunganga/printa-pos/internal/modules/sale"
	"github.com/georgemunganga/printa-pos/internal/modules/session"
	"github.com/georgemunganga/printa-pos/internal/modules/system"
	"github.com/georgemunganga/printa-pos/internal/modules/void"
	"github.com/georgemunganga/printa-pos/internal/outcome"
	"github.com/georgemunganga/printa-pos/internal/store"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Stage, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── Store ───────────────────────────────────────────────
	openCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	db, err := store.Open(openCtx, cfg.Database.Store())
	cancel()
	if err != nil {
		log.Fatal("failed to connect to store", zap.Error(err))
	}
	defer db.Close()
	log.Info("connected to store")

	var m *metrics.Metrics
	if cfg.Metrics {
		m = metrics.New()
	}
	gw := store.Instrument(store.NewPostgresGateway(db, log.Named("store")), m, log.Named("store"))
	classifier := outcome.NewClassifier()

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(middleware.Logger(log.Named("http")))
	router.Use(chimw.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// ── Public: login & diagnostics ─────────────────────────
	authService := auth.NewService(auth.NewRepository(gw), cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, log.Named("auth"))
	auth.NewHandler(authService).RegisterRoutes(router)

	system.NewHandler(system.NewService(gw, log.Named("system"))).RegisterRoutes(router)
	if m != nil {
		router.Handle("/metrics", m.Handler())
	}

	// ── Protected: till operations ──────────────────────────
	router.Group(func(r chi.Router) {
		r.Use(auth.Middleware(authService))

		sessionService := session.NewService(session.NewRepository(gw), classifier, m, log.Named("session"))
		session.NewHandler(sessionService).RegisterRoutes(r)

		saleService := sale.NewService(sale.NewRepository(gw), classifier, m, log.Named("sale"))
		sale.NewHandler(saleService).RegisterRoutes(r)

		voidService := void.NewService(void.NewRepository(gw), classifier, m, log.Named("void"))
		void.NewHandler(voidService).RegisterRoutes(r)

		itemService := item.NewService(item.NewRepository(gw), classifier, m, log.Named("item"))
		item.NewHandler(itemService).RegisterRoutes(r)
	})

	// ── Start Server ────────────────────────────────────────
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("POS API server listening", zap.String("address", srv.Addr), zap.String("stage", cfg.Stage))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
		return
	}
	log.Info("server stopped gracefully")
}
