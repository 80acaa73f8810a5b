package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/flicky/go-shop-api/internal/config"
	"github.com/flicky/go-shop-api/internal/handler"
	"github.com/flicky/go-shop-api/internal/middleware"
	"github.com/flicky/go-shop-api/internal/payment"
	"github.com/flicky/go-shop-api/internal/repository"
	"github.com/flicky/go-shop-api/internal/service"
	"github.com/flicky/go-shop-api/internal/shop"
	"github.com/flicky/go-shop-api/internal/worker"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Shop rules
	discounts, err := shop.ParseDiscounts(cfg.Shop.DiscountCodes)
	if err != nil {
		log.Error("parse discount codes", "error", err)
		os.Exit(1)
	}
	registry, err := shop.NewDiscountRegistry(discounts)
	if err != nil {
		log.Error("build discount registry", "error", err)
		os.Exit(1)
	}
	shopOpts := shop.Options{
		Discounts: registry,
		Pricing: &shop.PricingPolicy{
			FreeShippingThreshold: cfg.Shop.FreeShippingThreshold,
			ShippingFee:           cfg.Shop.ShippingFee,
		},
		MaxRating: cfg.Shop.MaxRating,
	}

	// Catalog
	var dbPool *pgxpool.Pool
	catalogRepo := repository.NewMemoryCatalogRepository(repository.SeedProducts())
	if cfg.Shop.CatalogSource == config.CatalogPostgres {
		poolCfg, err := pgxpool.ParseConfig(cfg.DB.DSN())
		if err != nil {
			log.Error("parse db config", "error", err)
			os.Exit(1)
		}
		poolCfg.MaxConns = cfg.DB.MaxConns

		dbPool, err = pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			log.Error("connect to database", "error", err)
			os.Exit(1)
		}
		defer dbPool.Close()

		if err := dbPool.Ping(ctx); err != nil {
			log.Error("ping database", "error", err)
			os.Exit(1)
		}
		catalogRepo = repository.NewCatalogRepository(dbPool)
		log.Info("connected to PostgreSQL")
	}

	// Redis
	var redisClient *redis.Client
	var salesRepo repository.SalesRepository
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Error("connect to Redis", "error", err)
			os.Exit(1)
		}
		salesRepo = repository.NewSalesRepository(redisClient)
		log.Info("connected to Redis")
	}

	// RabbitMQ
	var amqpConn *amqp.Connection
	var amqpCh *amqp.Channel
	var publisher service.OrderPublisher
	if cfg.RabbitMQ.URL != "" {
		amqpConn, err = amqp.Dial(cfg.RabbitMQ.URL)
		if err != nil {
			log.Error("connect to RabbitMQ", "error", err)
			os.Exit(1)
		}
		defer amqpConn.Close()

		amqpCh, err = amqpConn.Channel()
		if err != nil {
			log.Error("open RabbitMQ channel", "error", err)
			os.Exit(1)
		}
		defer amqpCh.Close()

		if err := worker.SetupRabbitMQ(amqpCh); err != nil {
			log.Error("setup RabbitMQ", "error", err)
			os.Exit(1)
		}
		publisher = worker.NewAMQPPublisher(amqpCh)
		log.Info("connected to RabbitMQ")
	}

	// Payments
	gateway, err := payment.NewStripeGateway(cfg.Stripe.SecretKey, cfg.Stripe.Currency)
	if err != nil {
		log.Error("configure payment gateway", "error", err)
		os.Exit(1)
	}

	// Services
	shops := service.NewShopStore(shopOpts)
	catalogSvc := service.NewCatalogService(catalogRepo, redisClient)
	sessionSvc := service.NewSessionService(shops, cfg.JWT.Secret, cfg.JWT.Expiration)
	productSvc := service.NewProductService(shops, catalogSvc)
	cartSvc := service.NewCartService(shops, catalogSvc)
	wishlistSvc := service.NewWishlistService(shops, catalogSvc)
	checkoutSvc := service.NewCheckoutService(shops, gateway, publisher, cfg.Stripe.Currency, log)
	orderSvc := service.NewOrderService(shops)
	statsSvc := service.NewStatsService(salesRepo)

	// Worker
	var orderWorker *worker.OrderWorker
	if amqpCh != nil && redisClient != nil {
		orderWorker = worker.NewOrderWorker(amqpCh, salesRepo, worker.NewRedisDeduper(redisClient), log)
		if err := orderWorker.Start(ctx); err != nil {
			log.Error("start order worker", "error", err)
			os.Exit(1)
		}
	}

	// Router
	router := gin.Default()
	router.Use(middleware.CORS(cfg.CORS.AllowOrigins))
	handler.RegisterRoutes(router, handler.Handlers{
		Health:   handler.NewHealthHandler(dbPool, redisClient, amqpConn),
		Session:  handler.NewSessionHandler(sessionSvc),
		Product:  handler.NewProductHandler(productSvc),
		Cart:     handler.NewCartHandler(cartSvc),
		Wishlist: handler.NewWishlistHandler(wishlistSvc),
		Checkout: handler.NewCheckoutHandler(checkoutSvc, log),
		Order:    handler.NewOrderHandler(orderSvc),
		Stats:    handler.NewStatsHandler(statsSvc),
	}, cfg.JWT.Secret)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting HTTP server", "port", cfg.Server.Port, "catalog", cfg.Shop.CatalogSource)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", "error", err)
	}

	if orderWorker != nil {
		orderWorker.Stop()
		time.Sleep(500 * time.Millisecond)
	}
	cancel()
	log.Info("server stopped")
}
