package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"suborbital-sim/internal/api"
	"suborbital-sim/internal/config"
	"suborbital-sim/internal/logging"
	"suborbital-sim/internal/sim"
	"suborbital-sim/internal/telemetry"
)

var (
	configPath = flag.String("config", "", "Path to a JSON/YAML/TOML config file")
	port       = flag.Int("port", 0, "Port to listen on (overrides config)")
	autostart  = flag.Bool("autostart", false, "Launch as soon as the engine is running")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}

	logger, closeLog, err := logging.Setup(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	simEngine, err := sim.New(sim.Config{
		TickHz:    cfg.Engine.TickHz,
		MaxDelta:  cfg.Engine.MaxDelta,
		Constants: cfg.Flight,
		Medium:    cfg.Atmosphere,
		Logger:    logger,
	})
	if err != nil {
		logger.Error("creating engine", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	engineDone := make(chan struct{})
	go func() {
		defer close(engineDone)
		if err := simEngine.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("simulation error", "error", err)
		}
	}()

	if *autostart {
		simEngine.Submit(sim.StartCommand{At: time.Now()})
	}

	if cfg.Console.Enabled {
		go runConsole(ctx, simEngine, cfg.Console.Interval, logger)
	}

	var httpServer *http.Server
	if cfg.Server.Enabled {
		httpServer = &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
			Handler:           api.NewServer(simEngine, logger).Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("starting HTTP server", "addr", httpServer.Addr)
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("HTTP server error", "error", err)
				cancel()
			}
		}()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	select {
	case <-sigCh:
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	if httpServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", "error", err)
		}
		shutdownCancel()
	}

	cancel()
	<-engineDone

	logger.Info("shutdown complete")
}

// runConsole prints the telemetry panel every interval.
func runConsole(ctx context.Context, eng *sim.Engine, interval time.Duration, logger *slog.Logger) {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			reqCtx, cancel := context.WithTimeout(ctx, interval)
			st, err := eng.GetState(reqCtx)
			cancel()
			if err != nil {
				if ctx.Err() == nil {
					logger.Warn("console state request failed", "error", err)
				}
				continue
			}
			fmt.Println(strings.Join(telemetry.Panel(st, eng.Constants()), "\n"))
			fmt.Println(strings.Repeat("-", 32))
		}
	}
}
