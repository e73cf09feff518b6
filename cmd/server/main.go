package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/example/homeli/gateway"
	"github.com/example/homeli/pkg/cart"
	"github.com/example/homeli/pkg/catalog"
	"github.com/example/homeli/pkg/config"
	"github.com/example/homeli/pkg/discovery"
	"github.com/example/homeli/pkg/orders"
	"github.com/example/homeli/pkg/paysim"
	"github.com/example/homeli/pkg/profile"
	"github.com/example/homeli/pkg/repository"
	"go.uber.org/zap"
)

func main() {
	// Load config
	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Setup logger
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("Failed to create logger: %v", err))
	}
	defer logger.Sync()

	logger.Info("Starting Homeli API",
		zap.String("name", cfg.Server.Name),
		zap.Int("port", cfg.Server.Port))

	ctx := context.Background()

	// MongoDB holds the catalog, carts and orders
	mongoRepo, err := repository.NewMongoRepository(&cfg.MongoDB)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	if err := mongoRepo.Ping(ctx); err != nil {
		logger.Fatal("MongoDB ping failed", zap.Error(err))
	}
	logger.Info("MongoDB connected successfully")

	// Redis holds the profile collections
	redisRepo := repository.NewRedisRepository(&cfg.Redis)
	if err := redisRepo.Ping(ctx); err != nil {
		logger.Warn("Redis connection failed", zap.Error(err))
	} else {
		logger.Info("Redis connected successfully")
	}

	// Services
	catalogStore := catalog.NewMongoStore(mongoRepo)
	cartSvc := cart.NewService(cart.NewMongoStore(mongoRepo))
	orderSvc := orders.NewService(orders.NewMongoStore(mongoRepo))
	profileSvc := profile.NewService(redisRepo, repository.ErrKeyNotFound)

	// Payment simulator on its own actor
	system := actor.NewActorSystem()
	processor := paysim.NewProcessor(orderSvc, profileSvc, logger,
		cfg.Payment.SettleDelay, cfg.Payment.FailureRate)
	simulator := paysim.NewSimulator(system, processor, logger)

	// Service registration is best-effort
	instance := &discovery.ServiceInstance{
		Name: cfg.Server.Name,
		Host: cfg.Server.Host,
		Port: cfg.Server.Port,
	}
	registry, err := discovery.NewRegistry(&cfg.Etcd)
	if err != nil {
		logger.Warn("Failed to connect to etcd, continuing without service registration", zap.Error(err))
		registry = nil
	} else if err := registry.Register(ctx, instance); err != nil {
		logger.Warn("Failed to register service in etcd", zap.Error(err))
	} else {
		logger.Info("Service registered in etcd", zap.String("address", instance.Addr()))
	}

	gw := gateway.NewGateway(cfg, logger, catalogStore, cartSvc, orderSvc, profileSvc, simulator)
	gw.SetupRoutes()

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		if err := gw.Start(); err != nil {
			serverErr <- err
		}
	}()

	logger.Info("API server started successfully")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		logger.Info("Received shutdown signal")
	case err := <-serverErr:
		logger.Fatal("Server error", zap.Error(err))
	}

	simulator.Stop()

	if registry != nil {
		if err := registry.Deregister(ctx, instance); err != nil {
			logger.Error("Failed to deregister service", zap.Error(err))
		}
		registry.Close()
	}

	redisRepo.Close()

	closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := mongoRepo.Close(closeCtx); err != nil {
		logger.Error("Failed to close MongoDB connection", zap.Error(err))
	}

	logger.Info("Server stopped")
}
