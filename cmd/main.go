package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Gusmack1/charlesmackaybooks-order-service/internal/catalog"
	"github.com/Gusmack1/charlesmackaybooks-order-service/internal/events"
	"github.com/Gusmack1/charlesmackaybooks-order-service/internal/handler"
	"github.com/Gusmack1/charlesmackaybooks-order-service/internal/payment"
	"github.com/Gusmack1/charlesmackaybooks-order-service/internal/repository"
	"github.com/Gusmack1/charlesmackaybooks-order-service/internal/service"
	"github.com/Gusmack1/charlesmackaybooks-order-service/pkg/config"
	"github.com/Gusmack1/charlesmackaybooks-order-service/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger.Info("Service configuration",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
		zap.String("order_backend", cfg.OrderBackend),
		zap.Bool("kafka_enabled", cfg.KafkaBrokers != ""))

	catalogStore := catalog.NewStore(catalog.Books)

	var orderRepo repository.OrderRepository
	switch cfg.OrderBackend {
	case "dynamodb":
		dynamoClient, err := repository.NewDynamoDBClient(cfg)
		if err != nil {
			logger.Fatal("Failed to create DynamoDB client", zap.Error(err))
		}
		orderRepo = repository.NewDynamoRepository(dynamoClient, cfg.OrderTableName)
	default:
		orderRepo = repository.NewMemoryRepository()
	}

	var producer service.Publisher
	var kafkaProducer *events.KafkaProducer
	if cfg.KafkaBrokers != "" {
		kafkaProducer, err = events.NewKafkaProducer(cfg.KafkaBrokers, logger)
		if err != nil {
			logger.Fatal("Failed to create Kafka producer", zap.Error(err))
		}
		defer kafkaProducer.Close()
		producer = kafkaProducer
	}

	orderService := service.NewOrderService(catalogStore, orderRepo, producer, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)

	var cardProvider, walletProvider payment.Provider
	if cfg.CardSecretKey != "" {
		cardProvider = payment.NewCardClient(cfg.CardAPIBaseURL, cfg.CardSecretKey, logger)
	}
	if cfg.WalletClientID != "" {
		walletProvider = payment.NewWalletClient(cfg.WalletAPIBaseURL, cfg.WalletClientID, cfg.WalletClientSecret, logger)
	}
	paymentHandler := handler.NewPaymentHandler(cardProvider, walletProvider, logger)

	devHandler := handler.NewDevHandler(catalogStore, cfg.Environment, cfg.DevCartSeedFile, logger)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.RequestID())

	api := router.Group("/api")
	{
		api.POST("/create-payment-intent", paymentHandler.CreatePaymentIntent)
		api.POST("/capture-wallet-order", paymentHandler.CaptureWalletOrder)
		api.GET("/orders", orderHandler.ListOrders)
		api.POST("/orders", orderHandler.CreateOrder)
		api.GET("/orders/:id", orderHandler.GetOrder)
		api.PATCH("/orders/:id/status", orderHandler.UpdateStatus)
		api.POST("/orders/sync", orderHandler.SyncOrder)
		api.GET("/dev-cart", devHandler.DevCart)
		api.GET("/validate-feeds", devHandler.ValidateFeeds)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":  "healthy",
				"service": "order-service",
				"backend": cfg.OrderBackend,
			})
		})
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Starting HTTP server", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}

	logger.Info("Server stopped")
}
