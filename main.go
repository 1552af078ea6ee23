package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/SachinthaLakshan/evite-new-edition/api"
	"github.com/SachinthaLakshan/evite-new-edition/cardcache"
	"github.com/SachinthaLakshan/evite-new-edition/catalog"
	"github.com/SachinthaLakshan/evite-new-edition/config"
	"github.com/SachinthaLakshan/evite-new-edition/logging"
	"github.com/SachinthaLakshan/evite-new-edition/session"
	"github.com/SachinthaLakshan/evite-new-edition/socialcard"
	"github.com/SachinthaLakshan/evite-new-edition/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStore(cfg)
	if err != nil {
		log.Fatal("failed to open store", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	defer st.Close()

	var cards *socialcard.Generator
	if cfg.RedisAddr != "" {
		cache, err := cardcache.New(ctx, cardcache.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.CardCacheTTL,
		})
		if err != nil {
			// Cards still render without the cache.
			log.Warn("social card cache disabled", zap.Error(err))
			cards = socialcard.NewGenerator(st, nil, log)
		} else {
			defer cache.Close()
			log.Info("social card cache connected", zap.String("addr", cfg.RedisAddr))
			cards = socialcard.NewGenerator(st, cache, log)
		}
	} else {
		cards = socialcard.NewGenerator(st, nil, log)
	}

	cat := catalog.Default()
	manager := session.NewManager(cat, st, log)
	router := api.RegisterRoutes(manager, st, cards, cat, log, staticFiles)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("evite listening", zap.String("addr", srv.Addr), zap.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http shutdown", zap.Error(err))
	}
	// Flushes the last configuration of every open session.
	manager.Shutdown()
}

func openStore(cfg config.Config) (store.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverSQLite:
		return store.OpenSQLite(cfg.SQLitePath)
	default:
		return store.OpenFile(cfg.StoreFile)
	}
}
