package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/blobarena/internal/config"
	"github.com/udisondev/blobarena/internal/gameserver"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	configPath := flag.String("config", "config/gameserver.properties", "path to the game server KEY=VALUE config file")
	discoveryAddr := flag.String("discovery", "[::1]:7777", "Discovery Service address, empty to run standalone")
	logLevel := flag.String("log-level", "info", "debug|info|warn|error")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(*logLevel),
	})))

	if p := os.Getenv("BLOBARENA_GAME_CONFIG"); p != "" {
		*configPath = p
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.Info("config loaded",
		"server", cfg.ServerName, "port", cfg.Port,
		"map", fmt.Sprintf("%dx%d", cfg.MapWidth, cfg.MapHeight),
		"maxPlayers", cfg.MaxPlayers, "maxFood", cfg.MaxFood,
		"playerStartSize", cfg.PlayerStartSize, "playerMaxSize", cfg.PlayerMaxSize)

	var discovery *net.UDPAddr
	if *discoveryAddr != "" {
		discovery, err = net.ResolveUDPAddr("udp", *discoveryAddr)
		if err != nil {
			return fmt.Errorf("resolving discovery address %s: %w", *discoveryAddr, err)
		}
	}

	srv := gameserver.NewServer(cfg, discovery, rand.Uint64(), rand.Uint64())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("game server: %w", err)
	}
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
