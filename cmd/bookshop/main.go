// Command bookshop is a console manager for an in-memory book catalog.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"Bookshop/internal/catalog"
	"Bookshop/internal/shell"
	"Bookshop/internal/term"
	"Bookshop/pkg/kit"
)

const service = "bookshop"

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log, err := kit.NewLogger(service, cfg.LogLevel, cfg.LogOutput)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	log = log.With(zap.String("session_id", uuid.NewString()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := catalog.NewStore()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := kit.NewMetrics(reg)
	catalog.RegisterMetrics(reg, store)

	adminDone := startAdmin(ctx, cfg, store, reg, metrics, log)

	sh := &shell.Shell{
		Store:   store,
		Screen:  term.NewConsole(os.Stdout, term.NewPalette(term.ColorEnabled(cfg.Color, os.Stdout))),
		Input:   shell.NewInput(os.Stdin),
		Log:     log,
		Metrics: metrics,
		Pause:   scaledSleep(cfg.PauseScale),
	}

	done := make(chan error, 1)
	go func() { done <- sh.Run(ctx) }()

	select {
	case err = <-done:
	case <-ctx.Done():
		log.Info("interrupted")
	}
	stop()
	<-adminDone

	if err != nil {
		log.Error("shell stopped", zap.Error(err))
	}
}

// startAdmin serves the read-only admin endpoint when an address is set.
// The returned channel closes once the server is down.
func startAdmin(ctx context.Context, cfg config, store catalog.Reader, reg *prometheus.Registry, metrics *kit.Metrics, log *zap.Logger) <-chan struct{} {
	done := make(chan struct{})
	if cfg.AdminAddr == "" {
		close(done)
		return done
	}

	h := catalog.NewHandler(&catalog.Server{Store: store, Log: log}, catalog.HTTPDeps{
		Log:           log,
		Service:       service,
		Registry:      reg,
		Metrics:       metrics,
		MetricsToken:  cfg.MetricsToken,
		RatePerMinute: cfg.AdminRate,
	})

	go func() {
		defer close(done)
		if err := kit.RunHTTPServer(ctx, cfg.AdminAddr, h, log); err != nil {
			log.Error("admin server stopped", zap.Error(err))
		}
	}()
	return done
}

func scaledSleep(scale float64) func(time.Duration) {
	if scale == 0 {
		return nil
	}
	return func(d time.Duration) {
		time.Sleep(time.Duration(float64(d) * scale))
	}
}
