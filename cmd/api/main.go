package main

import (
	"context"
	"log"
	"time"

	"pedidos-tracker/internal/core/cache"
	"pedidos-tracker/internal/core/config"
	"pedidos-tracker/internal/core/database"
	"pedidos-tracker/internal/core/logger"
	"pedidos-tracker/internal/core/server"
	dashboardhandler "pedidos-tracker/internal/features/dashboard/handler"
	dashboardservice "pedidos-tracker/internal/features/dashboard/service"
	ingesthandler "pedidos-tracker/internal/features/ingest/handler"
	ingestservice "pedidos-tracker/internal/features/ingest/service"
	orderadapter "pedidos-tracker/internal/features/orders/adapters"
	orderhandler "pedidos-tracker/internal/features/orders/handler"
	orderservice "pedidos-tracker/internal/features/orders/service"
	shipmentadapter "pedidos-tracker/internal/features/shipments/adapters"
	shipmenthandler "pedidos-tracker/internal/features/shipments/handler"
	shipmentservice "pedidos-tracker/internal/features/shipments/service"

	"go.uber.org/zap"
)

// @title Sistema de Seguimiento de Pedidos API
// @version 1.0
// @description Webhook ingestion and dashboard API for pedidos and envíos GLS.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		l.Fatal("Database connection failed", zap.Error(err))
	}
	if err := db.AutoMigrate(&orderadapter.OrderModel{}, &shipmentadapter.ShipmentModel{}); err != nil {
		l.Fatal("Database migration failed", zap.Error(err))
	}
	l.Info("Database connection verified")

	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Invalid Redis configuration", zap.Error(err))
	}
	defer redisCache.Close()

	// The cache is an optimization: a dead Redis degrades stats to direct
	// queries, so an unreachable instance is not fatal.
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisCache.Ping(pingCtx); err != nil {
		l.Warn("Redis unreachable, stats caching degraded", zap.Error(err))
	}
	cancel()

	// Repositories
	orderRepo := orderadapter.NewGormOrderRepository(db)
	shipmentRepo := shipmentadapter.NewGormShipmentRepository(db)

	// Dashboard stats, cached in Redis and invalidated by ingestion
	statsSvc := dashboardservice.NewStatsService(
		orderRepo,
		shipmentRepo,
		redisCache,
		time.Duration(cfg.StatsCacheTTL)*time.Second,
	)
	statsHdl := dashboardhandler.NewStatsHandler(statsSvc)

	// Webhook ingestion
	ingestSvc := ingestservice.NewService(orderRepo, shipmentRepo, statsSvc)
	webhookHdl := ingesthandler.NewWebhookHandler(ingestSvc)

	// Dashboard tables
	orderSvc := orderservice.NewOrderService(orderRepo, shipmentRepo)
	orderHdl := orderhandler.NewOrderHandler(orderSvc)

	shipmentSvc := shipmentservice.NewShipmentService(shipmentRepo)
	shipmentHdl := shipmenthandler.NewShipmentHandler(shipmentSvc)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Post("/webhook/pedidos", webhookHdl.Handle)

	srv.App.Get("/pedidos", orderHdl.List)
	srv.App.Get("/pedidos/export", orderHdl.Export)
	srv.App.Post("/pedidos/delete", orderHdl.BulkDelete)
	srv.App.Delete("/pedidos/:id", orderHdl.Delete)

	srv.App.Get("/envios", shipmentHdl.List)
	srv.App.Get("/envios/export", shipmentHdl.Export)
	srv.App.Post("/envios/delete", shipmentHdl.BulkDelete)
	srv.App.Delete("/envios/:expedicion", shipmentHdl.Delete)

	srv.App.Get("/dashboard/stats", statsHdl.Get)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
