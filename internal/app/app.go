package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"pokecasino/server/internal/config"
	"pokecasino/server/internal/dex"
	"pokecasino/server/internal/game"
	"pokecasino/server/internal/hub"
	"pokecasino/server/internal/market"
	servernet "pokecasino/server/internal/net"
	"pokecasino/server/internal/saves"
	"pokecasino/server/internal/transitions"
	"pokecasino/server/logging"
	loggingsinks "pokecasino/server/logging/sinks"
)

// Config carries process-level knobs. Everything else comes from the
// config file.
type Config struct {
	ConfigPath string
	Logger     *log.Logger
}

// Run wires the whole server and blocks until ctx is cancelled or the
// listener fails.
func Run(ctx context.Context, appCfg Config) error {
	logger := appCfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	cfg, err := config.Load(appCfg.ConfigPath)
	if err != nil {
		return err
	}
	if addr := os.Getenv("LISTEN_ADDR"); addr != "" {
		cfg.Listen = addr
	}

	router, err := buildRouter(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to construct logging router: %w", err)
	}
	defer func() {
		if cerr := router.Close(context.Background()); cerr != nil {
			logger.Printf("failed to close logging router: %v", cerr)
		}
	}()

	store, err := saves.Open(cfg.SavePath)
	if err != nil {
		return fmt.Errorf("failed to open save store: %w", err)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logger.Printf("failed to close save store: %v", cerr)
		}
	}()

	player, resumed, err := store.Load(ctx, cfg.SaveSlot)
	if err != nil {
		return fmt.Errorf("failed to load save slot %q: %w", cfg.SaveSlot, err)
	}
	if resumed {
		logger.Printf("resumed save slot %q with %d creatures", cfg.SaveSlot, len(player.Inventory))
	} else {
		logger.Printf("starting fresh profile in slot %q", cfg.SaveSlot)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := newRNG(seed)

	provider := dex.NewClient(dex.ClientConfig{
		BaseURL: cfg.Provider.BaseURL,
		Timeout: cfg.Provider.Timeout.Std(),
	})

	engine := game.NewEngine(player, game.Config{
		Provider:  provider,
		Resolver:  transitions.NewResolver(provider, rng),
		RNG:       rng,
		Publisher: router,
		Store:     store,
		SaveSlot:  cfg.SaveSlot,
	})

	h := hub.New(hub.Config{
		Engine:    engine,
		Generator: market.NewGenerator(provider, rng),
		Interval:  cfg.Market.RefreshInterval.Std(),
		BatchSize: cfg.Market.BatchSize,
		Publisher: router,
	})
	go h.Run(ctx)

	ws := servernet.NewWSHandler(h, servernet.WSHandlerConfig{
		Logger:    logger,
		Publisher: router,
	})
	handler := servernet.NewHTTPHandler(h, servernet.HTTPHandlerConfig{
		ClientDir: cfg.ClientDir,
		Logger:    logger,
		WS:        ws,
	})

	srv := &http.Server{Addr: cfg.Listen, Handler: handler}
	errCh := make(chan error, 1)
	go func() {
		logger.Printf("server listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
		return nil
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	}
}

func buildRouter(cfg config.LoggingConfig) (*logging.Router, error) {
	logCfg := logging.DefaultConfig()
	if len(cfg.Sinks) > 0 {
		logCfg.EnabledSinks = cfg.Sinks
	}
	if cfg.Verbose {
		logCfg.MinimumSeverity = logging.SeverityDebug
	}
	if cfg.JSONPath != "" {
		logCfg.JSON.FilePath = cfg.JSONPath
	}

	var named []logging.NamedSink
	for _, name := range logCfg.EnabledSinks {
		switch name {
		case "console":
			named = append(named, logging.NamedSink{
				Name: name,
				Sink: loggingsinks.NewConsoleSink(os.Stdout, logCfg.Console),
			})
		case "json":
			path := logCfg.JSON.FilePath
			if path == "" {
				path = "casino-events.jsonl"
			}
			file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return nil, fmt.Errorf("failed to open json sink %q: %w", path, err)
			}
			named = append(named, logging.NamedSink{
				Name: name,
				Sink: loggingsinks.NewJSON(file, logCfg.JSON.FlushInterval),
			})
		case "memory":
			named = append(named, logging.NamedSink{
				Name: name,
				Sink: loggingsinks.NewMemorySink(),
			})
		default:
			return nil, fmt.Errorf("unknown logging sink %q", name)
		}
	}

	return logging.NewRouter(nil, logCfg, named)
}
