package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/zgpcy/clock-icon-animator/internal/clock"
	"github.com/zgpcy/clock-icon-animator/internal/clockicon"
	"github.com/zgpcy/clock-icon-animator/internal/collector"
	"github.com/zgpcy/clock-icon-animator/internal/config"
	"github.com/zgpcy/clock-icon-animator/internal/logger"
	"github.com/zgpcy/clock-icon-animator/internal/server"
	"github.com/zgpcy/clock-icon-animator/internal/theme"
	"github.com/zgpcy/clock-icon-animator/internal/version"
)

const (
	// DefaultShutdownTimeout is the maximum time to wait for graceful shutdown
	DefaultShutdownTimeout = 30 * time.Second
)

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the icon ticker and HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to configuration file")
	return cmd
}

func runServe(configPath string) error {
	// Load configuration first (need log settings from config)
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	log.Info("Clock icon animator starting",
		"version", version.Get().Version,
		"config_path", configPath)

	settings := cfg.Settings()
	log.Info("Configuration loaded successfully",
		"theme_path", cfg.ThemePath,
		"disable_seconds", settings.DisableSeconds,
		"tick_interval", settings.Interval().String(),
		"timezone", cfg.Location().String(),
		"http_port", cfg.HTTPPort,
		"page_size", cfg.PageSize)

	pack, err := theme.Load(cfg.ThemePath)
	if err != nil {
		log.Error("Failed to load theme pack", "error", err)
		return err
	}

	icons, failed := clockicon.LoadAll(pack, settings)
	for pkg, err := range failed {
		log.ForIcon(pkg).Warn("Icon falls back to static rendering", "error", err)
	}
	log.Info("Theme pack loaded",
		"pack", pack.Name(),
		"animated_icons", len(icons),
		"static_icons", len(failed))

	clk := clock.InZone(clock.New(), cfg.Location())
	clockCollector := collector.NewClockCollector(icons, failed, settings, clk, log)

	if err := prometheus.Register(clockCollector); err != nil {
		log.Error("Failed to register collector", "error", err)
		return err
	}
	log.Info("Collector registered with Prometheus")

	// Register Go runtime metrics (memory, goroutines, GC stats)
	if err := prometheus.Register(prometheus.NewGoCollector()); err != nil {
		log.Warn("Failed to register Go collector", "error", err)
	}

	// Register process metrics (CPU, memory, file descriptors)
	if err := prometheus.Register(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{})); err != nil {
		log.Warn("Failed to register process collector", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clockCollector.StartTicking(ctx)

	srv := server.NewServer(cfg, clockCollector, log)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Error("Server error", "error", err)
		return err

	case sig := <-shutdown:
		log.Info("Received shutdown signal, starting graceful shutdown", "signal", sig.String())

		// Stop ticking before the server goes away
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Error during server shutdown", "error", err)
			return err
		}

		log.Info("Server stopped gracefully")
	}
	return nil
}
