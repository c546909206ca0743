package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joshhoffman/SportsStore/internal/auth"
	"github.com/joshhoffman/SportsStore/internal/cart"
	"github.com/joshhoffman/SportsStore/internal/catalog"
	"github.com/joshhoffman/SportsStore/internal/checkout"
	"github.com/joshhoffman/SportsStore/internal/config"
	"github.com/joshhoffman/SportsStore/internal/db"
	"github.com/joshhoffman/SportsStore/internal/events"
	httpapi "github.com/joshhoffman/SportsStore/internal/http"
)

func main() {
	cfg := config.Load()

	logger := log.New(os.Stdout, "[storefront] ", log.LstdFlags|log.Lshortfile)

	if cfg.DatabaseDSN == "" {
		logger.Fatal("STOREFRONT_DB_DSN not set")
	}

	if err := db.RunMigrations(cfg.DatabaseDSN, logger); err != nil {
		logger.Fatalf("run migrations: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Fatalf("open db pool: %v", err)
	}
	defer pool.Close()

	repo := catalog.NewPostgresRepository(pool)

	rabbitConn := events.MustDial(cfg.RabbitURL)
	defer rabbitConn.Close()

	processor, err := events.NewRabbitOrderProcessor(rabbitConn)
	if err != nil {
		logger.Fatalf("create order processor: %v", err)
	}

	store := cart.NewStore()
	sessions := auth.NewSessions(cfg.SessionTTL)
	authenticator := auth.NewStaticAuthenticator(cfg.AdminUsername, cfg.AdminPassword)

	router := httpapi.NewRouter(httpapi.Deps{
		Storefront: httpapi.NewStorefrontHandler(repo, cfg.PageSize),
		Cart:       httpapi.NewCartHandler(store, repo),
		Checkout:   httpapi.NewCheckoutHandler(store, checkout.NewService(processor)),
		Admin:      httpapi.NewAdminHandler(repo, authenticator, sessions),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("storefront listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Printf("shutdown signal received")
	case err := <-errCh:
		logger.Fatalf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown error: %v", err)
	}
	if err := processor.Close(); err != nil {
		logger.Printf("processor close error: %v", err)
	}
}
