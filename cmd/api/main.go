package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"go-order-tracker/internal/cache"
	"go-order-tracker/internal/event"
	"go-order-tracker/internal/handler"
	"go-order-tracker/internal/metrics"
	"go-order-tracker/internal/middleware"
	"go-order-tracker/internal/model"
	"go-order-tracker/internal/repository"
	"go-order-tracker/internal/service"
	"go-order-tracker/internal/ws"
	"go-order-tracker/pkg/config"
	"go-order-tracker/pkg/database"
	"go-order-tracker/pkg/jwt"
	"go-order-tracker/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// 1. Load config (.env, config.yaml, environment)
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// 2. Logger
	lg, err := logger.Init(cfg.Log.Level, cfg.App.Env, cfg.App.Name)
	if err != nil {
		return err
	}
	defer lg.Sync()

	// 3. Setup Database
	db, err := database.Connect(cfg)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	// Auto Migrate (Hati-hati di production, sebaiknya pakai tools migrasi terpisah)
	if err := db.AutoMigrate(&model.Product{}, &model.Order{}); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 4. Setup WebSocket Hub and event stream
	wsHub := ws.NewHub(lg)
	go wsHub.Run(ctx)

	publishers := event.Fanout{wsHub}
	if len(cfg.Kafka.Brokers) > 0 {
		producer, err := event.NewKafkaProducer(cfg.Kafka.Brokers)
		if err != nil {
			return err
		}
		kafka := event.NewKafkaPublisher(producer, cfg.Kafka.Topic, lg)
		defer kafka.Close()
		publishers = append(publishers, kafka)
		lg.Info("publishing events to kafka", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))
	}

	// 5. Product cache; redis is optional and the service falls back to the DB
	var productCache cache.ProductCache = cache.Noop{}
	if cfg.Redis.Addr != "" {
		client, err := cache.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			lg.Warn("redis unavailable, product cache disabled", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		} else {
			defer client.Close()
			productCache = cache.NewRedisProductCache(client, cfg.Redis.TTL, lg)
		}
	}

	metrics.Init(cfg.Metrics.Prefix)

	// 6. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	orderRepo := repository.NewOrderRepo(db)

	productService := service.NewProductService(productRepo, orderRepo, db, productCache, publishers)
	orderService := service.NewOrderService(orderRepo, productRepo, publishers)
	backupService := service.NewBackupService(productRepo, orderRepo)

	routes := handler.Routes{
		Products: handler.NewProductHandler(productService),
		Orders:   handler.NewOrderHandler(orderService),
		Backup:   handler.NewBackupHandler(backupService),
	}

	var signer *jwt.Signer
	if cfg.AuthEnabled() {
		signer = jwt.NewSigner(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.ExpirationHours)*time.Hour)
		operator := model.Operator{Username: cfg.Auth.Username, PasswordHash: cfg.Auth.PasswordHash}
		routes.Auth = handler.NewAuthHandler(service.NewAuthService(operator, signer))
	} else {
		lg.Warn("ADMIN_PASSWORD_HASH not set, mutating routes are open")
	}

	// 7. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Order Tracker v1.0",
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.RequestLogger(lg))
	app.Use(middleware.Metrics())
	app.Use(cors.New())

	app.Get("/health", handler.Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// 8. Routes
	routes.Register(app.Group("/api/v1"), middleware.RequireAuth(signer))

	// WebSocket Route
	app.Use("/ws", ws.UpgradeRequired)
	app.Get("/ws", websocket.New(wsHub.Serve))

	// 9. Graceful Shutdown
	listenErr := make(chan error, 1)
	go func() {
		lg.Info("server listening", zap.String("port", cfg.App.Port))
		listenErr <- app.Listen(":" + cfg.App.Port)
	}()

	select {
	case err := <-listenErr:
		return err
	case <-ctx.Done():
	}

	lg.Info("shutting down server")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		lg.Error("server forced to shutdown", zap.Error(err))
	}
	lg.Info("server exited")
	return nil
}
