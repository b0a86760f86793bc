package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/quickcart/gateway"
	"github.com/example/quickcart/pkg/auth"
	"github.com/example/quickcart/pkg/config"
	"github.com/example/quickcart/pkg/discovery"
	"github.com/example/quickcart/pkg/logging"
	"github.com/example/quickcart/pkg/notify"
	"github.com/example/quickcart/pkg/repository"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load config
	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("Invalid config: %v", err))
	}

	// Setup logger
	logger, err := logging.New(cfg.Log)
	if err != nil {
		panic(fmt.Sprintf("Failed to create logger: %v", err))
	}
	defer logger.Sync()

	logger.Info("Starting QuickCart API",
		zap.String("env", cfg.Server.Env),
		zap.Int("port", cfg.Server.Port),
		zap.String("host", cfg.Server.Host))

	// Connect MongoDB
	store, err := repository.NewStore(&cfg.MongoDB)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	initCtx, cancel := context.WithTimeout(context.Background(), cfg.MongoDB.Timeout)
	if err := store.Ping(initCtx); err != nil {
		cancel()
		logger.Fatal("Failed to ping MongoDB", zap.Error(err))
	}
	if err := store.EnsureIndexes(initCtx); err != nil {
		logger.Warn("Failed to create indexes", zap.Error(err))
	}
	cancel()

	health := map[string]gateway.HealthCheck{"mongodb": store.Ping}

	// Role cache is optional
	var cache repository.RoleCache
	var redisRepo *repository.RedisRepository
	if cfg.Redis.Enabled() {
		redisRepo = repository.NewRedisRepository(&cfg.Redis)
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisRepo.Ping(pingCtx); err != nil {
			logger.Warn("Redis unreachable, role lookups will hit MongoDB until it recovers", zap.Error(err))
		}
		cancel()
		cache = redisRepo
		health["redis"] = redisRepo.Ping
	}
	identity := repository.NewIdentityStore(store.Users, cache, logger.Named("identity"))

	// Mail notifications
	var mailer notify.Mailer
	if cfg.Mail.Host != "" {
		mailer = notify.NewSMTPMailer(&cfg.Mail)
	} else {
		logger.Info("No mail relay configured, notifications will only be logged")
		mailer = notify.NewLogMailer(logger.Named("mail"))
	}
	dispatcher, err := notify.NewDispatcher(mailer, cfg.Mail.Timeout, logger.Named("notify"))
	if err != nil {
		logger.Fatal("Failed to start notification dispatcher", zap.Error(err))
	}

	// Setup service discovery
	var sd *discovery.ServiceDiscovery
	instance := discovery.ServiceInstance{Name: cfg.Server.Name, Host: cfg.Server.Host, Port: cfg.Server.Port}
	regCtx, stopRegistration := context.WithCancel(context.Background())
	defer stopRegistration()
	if len(cfg.Etcd.Endpoints) > 0 {
		sd, err = discovery.NewServiceDiscovery(&cfg.Etcd, logger.Named("discovery"))
		if err != nil {
			logger.Warn("Failed to connect to etcd, continuing without service discovery", zap.Error(err))
		} else if err := sd.Register(regCtx, instance); err != nil {
			logger.Warn("Failed to register service", zap.Error(err))
		}
	}

	// Create gateway
	deps := gateway.Dependencies{
		Tokens:   auth.NewIssuer(cfg.Auth.Secret, cfg.Auth.TokenTTL),
		Identity: identity,
		Users:    store.Users,
		Sellers:  store.Sellers,
		Products: store.Products,
		Orders:   store.Orders,
		Reviews:  store.Reviews,
		Stats:    store.Stats,
		Audit:    store.Audit,
		Notifier: dispatcher,
		Health:   health,
	}
	if sd != nil {
		deps.Peers = sd
	}
	gw := gateway.NewGateway(cfg, logger.Named("gateway"), deps)
	gw.SetupRoutes()

	// Start gateway in goroutine
	gwErr := make(chan error, 1)
	go func() {
		if err := gw.Start(); err != nil {
			gwErr <- err
		}
	}()

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		logger.Info("Received shutdown signal")
	case err := <-gwErr:
		logger.Error("Gateway error", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := gw.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", zap.Error(err))
	}
	if err := dispatcher.Close(); err != nil {
		logger.Warn("Notification dispatcher did not drain", zap.Error(err))
	}
	if sd != nil {
		if err := sd.Deregister(ctx, instance); err != nil {
			logger.Warn("Failed to deregister service", zap.Error(err))
		}
		stopRegistration()
		sd.Close()
	}
	if redisRepo != nil {
		redisRepo.Close()
	}
	if err := store.Close(ctx); err != nil {
		logger.Warn("Failed to disconnect MongoDB", zap.Error(err))
	}

	logger.Info("QuickCart API stopped")
}
