package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"perfumebox/internal/cart"
	"perfumebox/internal/checkout"
	"perfumebox/internal/config"
	"perfumebox/internal/db"
	"perfumebox/internal/httpserver"
	"perfumebox/internal/notify"
	"perfumebox/internal/pricing"
	"perfumebox/internal/recent"
	accountrepo "perfumebox/internal/repository/account"
	customerrepo "perfumebox/internal/repository/customer"
	orderrepo "perfumebox/internal/repository/order"
	productrepo "perfumebox/internal/repository/product"
	"perfumebox/internal/session"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString, cfg.DBMaxConns)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	rdb, err := db.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		logger.Fatalf("connect to redis: %v", err)
	}
	defer rdb.Close()

	accountRepo := accountrepo.NewPostgres(dbpool, logger)
	customerRepo := customerrepo.NewPostgres(dbpool, logger)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	productRepo := productrepo.NewPostgres(dbpool, logger)

	policy := pricing.Default()

	mailer := notify.NewMailer(notify.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
	}, cfg.MailFrom, cfg.OrderEmail)
	notifyLogger := log.New(os.Stdout, "[notify] ", log.LstdFlags|log.LUTC)
	dispatcher := notify.NewDispatcher(mailer, notifyLogger)

	sessionService := session.New(accountRepo, session.NewRedisStore(rdb), cfg.SessionTTL, logger)
	checkoutService := checkout.New(accountRepo, customerRepo, orderRepo, dispatcher, policy, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, rdb, httpserver.Deps{
		Products:       productRepo,
		Orders:         orderRepo,
		Customers:      customerRepo,
		Carts:          cart.NewRegistry(),
		Checkout:       checkoutService,
		Sessions:       sessionService,
		Recent:         recent.NewStore(recent.NewRedisList(rdb), cfg.SessionTTL),
		Policy:         policy,
		AllowedOrigins: cfg.AllowedOrigins,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}

	// Let in-flight order notifications drain before exiting.
	dispatcher.Wait()
}
