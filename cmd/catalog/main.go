package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"ProductAPI/internal/auth"
	"ProductAPI/internal/catalog"
	"ProductAPI/internal/config"
	"ProductAPI/pkg/kit"
)

const service = "catalog"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := kit.NewLogger(service, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("service stopped", zap.Error(err))
	}
}

func run(cfg config.Config, log *zap.Logger) error {
	keys, err := auth.NewChecker(cfg.APIKey, cfg.APIKeyBcrypt)
	if err != nil {
		return fmt.Errorf("api key: %w", err)
	}

	var seed []catalog.Product
	if cfg.SeedProducts {
		seed = catalog.SampleProducts()
	}

	s := &catalog.Server{
		Store: catalog.NewMemStore(seed...),
		Keys:  keys,
		Log:   log,
		Paging: catalog.PageConfig{
			DefaultLimit: cfg.PageDefaultLimit,
			MaxLimit:     cfg.PageMaxLimit,
		},
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	h := catalog.NewHandler(s, catalog.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
		MetricsEnabled: cfg.MetricsEnabled,
		MetricsToken:   cfg.MetricsToken,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("catalog ready",
		zap.Int("products", s.Store.Len(ctx)),
		zap.Bool("metrics", cfg.MetricsEnabled),
	)

	return kit.RunHTTPServer(ctx, cfg.Addr(), h, log, cfg.ShutdownTimeout)
}
