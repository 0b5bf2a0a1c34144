package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/ff-market/internal/adapter"
	"github.com/feral-file/ff-market/internal/api/middleware"
	"github.com/feral-file/ff-market/internal/api/rest"
	"github.com/feral-file/ff-market/internal/api/server"
	"github.com/feral-file/ff-market/internal/bridge"
	"github.com/feral-file/ff-market/internal/config"
	"github.com/feral-file/ff-market/internal/environment"
	"github.com/feral-file/ff-market/internal/host"
	"github.com/feral-file/ff-market/internal/logger"
	"github.com/feral-file/ff-market/internal/market"
	"github.com/feral-file/ff-market/internal/messaging"
	amqpprovider "github.com/feral-file/ff-market/internal/providers/amqp"
	natsprovider "github.com/feral-file/ff-market/internal/providers/jetstream"
	"github.com/feral-file/ff-market/internal/recycle"
	"github.com/feral-file/ff-market/internal/registry"
	"github.com/feral-file/ff-market/internal/store"
	"github.com/feral-file/ff-market/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Economy settings are hot-reloaded from the config file
	var economy *config.EconomyStore
	onEconomyChange := func(reloaded config.EconomyConfig) {
		if economy == nil {
			return
		}
		economy.Set(reloaded)
		logger.Info("Economy config reloaded",
			zap.Float64("tax_rate", reloaded.TaxRate),
			zap.Float64("recycle_rate", reloaded.RecycleRate),
			zap.Int64("max_trade_price", reloaded.MaxTradePrice))
	}
	onReloadError := func(err error) {
		logger.Error(err, zap.String("component", "config"))
	}

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.WatchMarketServerConfig(*configFile, *envPath, onEconomyChange, onReloadError)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "market-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Feral File Market")

	economy = config.NewEconomyStore(cfg.Economy)

	// Connect to database
	db, err := store.Open(cfg.Database, cfg.Debug)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("driver", cfg.Database.Driver))
	}
	if err := store.Migrate(ctx, db); err != nil {
		logger.FatalCtx(ctx, "Failed to migrate database", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.String("driver", cfg.Database.Driver),
		zap.Bool("read_replica", cfg.Database.ReadHost != ""),
	)

	dataStore := store.NewSQLStore(db, func() int { return economy.Economy().MaxTradeHistory })
	defer func() {
		if err := dataStore.Close(); err != nil {
			logger.Error(err, zap.String("component", "store"))
		}
	}()

	// Initialize adapters
	fs := adapter.NewFileSystem()
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()
	ids := adapter.NewIDGenerator()
	natsJS := adapter.NewNatsJetStream()

	// Load blacklist registry
	blacklistRegistry, err := registry.NewBlacklistRegistryLoader(fs, jsonAdapter, economy).Load(cfg.BlacklistPath)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load blacklist registry", zap.Error(err), zap.String("path", cfg.BlacklistPath))
	}
	if cfg.BlacklistPath == "" {
		logger.WarnCtx(ctx, "Blacklist path not configured, only the economy blacklists apply")
	}

	recycleEngine := recycle.NewEngine(economy, blacklistRegistry, fs, jsonAdapter)

	// Market events go to NATS JetStream or RabbitMQ
	var publisher messaging.Publisher
	switch cfg.Broadcast.Driver {
	case config.BroadcastNATS:
		publisher, err = natsprovider.NewPublisher(natsprovider.Config{
			URL:            cfg.NATS.URL,
			SubjectPrefix:  cfg.NATS.SubjectPrefix,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
			SigningSecret:  cfg.Broadcast.SigningSecret,
		}, natsJS, jsonAdapter)
	case config.BroadcastAMQP:
		publisher, err = amqpprovider.NewPublisher(amqpprovider.Config{
			URL:           cfg.AMQP.URL(),
			Exchange:      cfg.AMQP.Exchange,
			SigningSecret: cfg.Broadcast.SigningSecret,
		}, adapter.NewAMQPDialer(), jsonAdapter)
	}
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create event publisher", zap.Error(err), zap.String("driver", cfg.Broadcast.Driver))
	}

	var broadcaster messaging.Broadcaster
	var notifier environment.Notifier
	if publisher != nil {
		broadcaster = messaging.NewBroadcaster(messaging.BroadcasterConfig{
			Workers:      cfg.Broadcast.Workers,
			PublishRetry: cfg.Broadcast.PublishRetry,
		}, publisher)
		notifier = broadcaster
		logger.InfoCtx(ctx, "Broadcasting market events", zap.String("driver", cfg.Broadcast.Driver))
	} else {
		logger.WarnCtx(ctx, "Broadcast disabled, goods for present actors will wait in their mailbox")
	}

	// Host environment
	presence := host.NewSessionPresence()
	inventory := host.NewCommandInventory(publisher, clock, ids)

	// Market engine
	service := market.New(market.Config{
		Workers:   cfg.Worker.WorkerPoolSize,
		QueueSize: cfg.Worker.WorkerQueueSize,
	}, market.Deps{
		Economy:    economy,
		Blacklist:  blacklistRegistry,
		Recycle:    recycleEngine,
		Inventory:  inventory,
		Presence:   presence,
		Privileges: host.NewAdminPrivileges(economy),
		Notifier:   notifier,
		Clock:      clock,
		IDs:        ids,
	})

	// Restore the last saved state
	state, err := dataStore.LoadState(ctx)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load market state", zap.Error(err))
	}
	if state != nil {
		service.Restore(state)
		logger.InfoCtx(ctx, "Restored market state",
			zap.Int("listings", len(state.Listings)),
			zap.Int("catalog", len(state.Catalog)),
			zap.Int("accounts", len(state.Balances)),
			zap.Uint64("version", state.Version),
			zap.Time("taken_at", state.TakenAt))
	} else {
		logger.InfoCtx(ctx, "No saved market state, starting empty")
	}

	// The price file is applied on top of the restored overrides
	if cfg.RecyclePricesPath != "" {
		if err := recycleEngine.LoadPriceTable(cfg.RecyclePricesPath); err != nil {
			logger.FatalCtx(ctx, "Failed to load recycle prices", zap.Error(err), zap.String("path", cfg.RecyclePricesPath))
		}
		logger.InfoCtx(ctx, "Loaded recycle prices", zap.String("path", cfg.RecyclePricesPath))
	}

	// Persistence flusher and listing expiry
	flusher := sweeper.NewPersistenceFlusher(&sweeper.PersistenceFlusherConfig{
		SaveInterval:     cfg.Persistence.SaveInterval,
		WriteThroughWait: cfg.Persistence.WriteThroughWait,
		RetryMaxElapsed:  cfg.Persistence.RetryMaxElapsed,
	}, service, dataStore, clock)
	service.SetSaveRequester(flusher)

	expirySweeper := sweeper.NewExpirySweeper(&sweeper.ExpirySweeperConfig{
		Interval: cfg.Sweeper.ExpiryInterval,
	}, service, clock)

	errCh := make(chan error, 4)
	sweepers := []sweeper.Sweeper{flusher, expirySweeper}
	for _, s := range sweepers {
		go func(s sweeper.Sweeper) {
			if err := s.Start(ctx); err != nil {
				errCh <- fmt.Errorf("%s: %w", s.Name(), err)
			}
		}(s)
	}

	// Presence bridge from the host application
	var presenceBridge bridge.Bridge
	if cfg.NATS.URL != "" && cfg.NATS.PresenceSubject != "" {
		presenceBridge, err = bridge.NewBridge(bridge.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.PresenceStream,
			ConsumerName:   cfg.NATS.ConsumerName,
			Subject:        cfg.NATS.PresenceSubject,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName + "-presence",
			AckWaitTimeout: cfg.NATS.AckWait,
			MaxDeliver:     cfg.NATS.MaxDeliver,
			Secret:         cfg.NATS.PresenceSecret,
		}, natsJS, presence, service, jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create presence bridge", zap.Error(err))
		}
		go func() {
			if err := presenceBridge.Run(ctx); err != nil && ctx.Err() == nil {
				errCh <- fmt.Errorf("presence bridge: %w", err)
			}
		}()
	} else {
		logger.InfoCtx(ctx, "Presence bridge disabled, presence is reported through the API")
	}

	// API server
	handler := rest.NewHandler(cfg.Debug, rest.Deps{
		Service:   service,
		Presence:  presence,
		Inventory: inventory,
		Flusher:   flusher,
		Store:     dataStore,
		Economy:   economy,
	})
	srv := server.New(server.Config{
		Debug:          cfg.Debug,
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}, handler, presence)

	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "market-server"))
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down market server...")

	// Stop taking requests first so the final save sees every completed operation
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", "server"))
	}
	if presenceBridge != nil {
		presenceBridge.Close()
	}

	if err := expirySweeper.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", expirySweeper.Name()))
	}
	// Stopping the flusher performs the final save
	if err := flusher.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", flusher.Name()))
	}
	cancel()
	// No-op unless something changed after the flusher stopped
	if err := flusher.Flush(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", flusher.Name()))
	}

	service.Close()
	if broadcaster != nil {
		broadcaster.Close()
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("Market server stopped")
}
