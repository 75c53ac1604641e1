package main

import (
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	productapp "github.com/muhammadheryan/inventory-hub/application/product"
	purchaserequestapp "github.com/muhammadheryan/inventory-hub/application/purchaserequest"
	stockapp "github.com/muhammadheryan/inventory-hub/application/stock"
	warehouseapp "github.com/muhammadheryan/inventory-hub/application/warehouse"
	webhookapp "github.com/muhammadheryan/inventory-hub/application/webhook"
	"github.com/muhammadheryan/inventory-hub/cmd/config"
	redisclient "github.com/muhammadheryan/inventory-hub/cmd/redis"
	_ "github.com/muhammadheryan/inventory-hub/docs"
	productRepo "github.com/muhammadheryan/inventory-hub/repository/product"
	purchaserequestRepo "github.com/muhammadheryan/inventory-hub/repository/purchaserequest"
	redisRepo "github.com/muhammadheryan/inventory-hub/repository/redis"
	stockRepo "github.com/muhammadheryan/inventory-hub/repository/stock"
	txRepo "github.com/muhammadheryan/inventory-hub/repository/tx"
	warehouseRepo "github.com/muhammadheryan/inventory-hub/repository/warehouse"
	"github.com/muhammadheryan/inventory-hub/thirdparty/foomhub"
	"github.com/muhammadheryan/inventory-hub/thirdparty/rabbitmq"
	"github.com/muhammadheryan/inventory-hub/transport"
	"github.com/muhammadheryan/inventory-hub/utils/logger"
	"go.uber.org/zap"
)

// @title INVENTORY HUB API
// @version 1.0
// @description Inventory management API with FOOM Hub fulfillment integration
// @host localhost:8080
// @BasePath /
func main() {
	// Load .env in development; environment variables win either way
	_ = godotenv.Load()

	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client; the cache layer tolerates its absence
	if err := redisclient.New(cfg); err != nil {
		logger.Warn("err connect redis, cache disabled", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// RabbitMQ publisher for stock-received events
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("err connect rabbitmq, stock-received events disabled", zap.Error(err))
		publisher = nil
	} else {
		defer publisher.Close()
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	WarehouseRepo := warehouseRepo.NewWarehouseRepository(db)
	StockRepo := stockRepo.NewStockRepository(db)
	PurchaseRequestRepo := purchaserequestRepo.NewPurchaseRequestRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// FOOM Hub client
	FoomHub := foomhub.NewClient(cfg.FoomHub.PurchaseURL, cfg.FoomHub.SecretKey, cfg.FoomHub.Timeout)

	// Initialize application layers
	ProductApp := productapp.NewProductApp(ProductRepo, RedisRepo)
	WarehouseApp := warehouseapp.NewWarehouseApp(WarehouseRepo)
	StockApp := stockapp.NewStockApp(StockRepo)
	PurchaseRequestApp := purchaserequestapp.NewPurchaseRequestApp(TxRepo, PurchaseRequestRepo, ProductRepo, FoomHub)
	WebhookApp := webhookapp.NewWebhookApp(TxRepo, PurchaseRequestRepo, ProductRepo, StockRepo, publisher)

	httpTransport := transport.NewTransport(ProductApp, WarehouseApp, StockApp, PurchaseRequestApp, WebhookApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
