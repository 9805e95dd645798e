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
	"github.com/joho/godotenv"

	"github.com/k-weng/houston-restaurant-week-2023/internal/config"
	"github.com/k-weng/houston-restaurant-week-2023/internal/core"
	"github.com/k-weng/houston-restaurant-week-2023/internal/page"
	"github.com/k-weng/houston-restaurant-week-2023/internal/router"
	"github.com/k-weng/houston-restaurant-week-2023/internal/table"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ───────────────────────── DATA SOURCE ─────────────────────────
	source, err := core.NewRestaurantSource(ctx, cfg)
	if err != nil {
		log.Fatal("❌ Data source init failed:", err)
	}

	// ───────────────────────── HANDLERS ─────────────────────────
	links := table.DefaultLinks()
	links.MapBaseURL = cfg.MapBaseURL

	pageHandler := page.NewHandler(source, links)
	r := router.NewRouter(pageHandler, cfg.AllowOrigins)

	// ───────────────────────── START ─────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	log.Printf("🚀 Restaurant week running at http://localhost:%s", cfg.Port)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
		log.Println("server stopped")
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("❌ Failed to start server:", err)
		}
	}
}
