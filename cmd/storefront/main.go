package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-storefront/config"
	"github.com/fekuna/omnipos-storefront/internal/auth"
	"github.com/fekuna/omnipos-storefront/internal/broker"
	"github.com/fekuna/omnipos-storefront/internal/cache"
	"github.com/fekuna/omnipos-storefront/internal/database/postgres"
	"github.com/fekuna/omnipos-storefront/internal/i18n"
	"github.com/fekuna/omnipos-storefront/internal/logger"
	"github.com/fekuna/omnipos-storefront/internal/search"
	"github.com/fekuna/omnipos-storefront/internal/server"
	"github.com/fekuna/omnipos-storefront/internal/transport/httpx"
	"github.com/fekuna/omnipos-storefront/internal/validation"

	cartH "github.com/fekuna/omnipos-storefront/internal/cart/handler"

	catH "github.com/fekuna/omnipos-storefront/internal/category/handler"
	catRepoPkg "github.com/fekuna/omnipos-storefront/internal/category/repository"
	catUCPkg "github.com/fekuna/omnipos-storefront/internal/category/usecase"

	invH "github.com/fekuna/omnipos-storefront/internal/inventory/handler"
	invListenerPkg "github.com/fekuna/omnipos-storefront/internal/inventory/listener"
	invRepoPkg "github.com/fekuna/omnipos-storefront/internal/inventory/repository"
	invUCPkg "github.com/fekuna/omnipos-storefront/internal/inventory/usecase"

	prodH "github.com/fekuna/omnipos-storefront/internal/product/handler"
	prodRepoPkg "github.com/fekuna/omnipos-storefront/internal/product/repository"
	prodUCPkg "github.com/fekuna/omnipos-storefront/internal/product/usecase"

	reviewH "github.com/fekuna/omnipos-storefront/internal/review/handler"
	reviewRepoPkg "github.com/fekuna/omnipos-storefront/internal/review/repository"
	reviewUCPkg "github.com/fekuna/omnipos-storefront/internal/review/usecase"

	slideH "github.com/fekuna/omnipos-storefront/internal/slider/handler"
	slideRepoPkg "github.com/fekuna/omnipos-storefront/internal/slider/repository"
	slideUCPkg "github.com/fekuna/omnipos-storefront/internal/slider/usecase"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     cfg.IsDevelopment(),
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Initialize i18n
	translator, err := i18n.New(cfg.Storefront.DefaultLocale)
	if err != nil {
		appLogger.Fatal("Could not load locales", zap.Error(err))
	}

	// 4. Connect to Database
	pgConfig := &postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Postgres.ConnMaxIdleTime,
	}
	db, err := postgres.NewPostgres(pgConfig)
	if err != nil {
		if !cfg.Storefront.FallbackEnabled {
			appLogger.Fatal("Could not connect to database", zap.Error(err))
		}
		// Reads fall back to the bundled catalogue until the database comes back.
		appLogger.Warn("Could not connect to database, serving fallback catalogue", zap.Error(err))
		if db, err = postgres.Open(pgConfig); err != nil {
			appLogger.Fatal("Could not configure database pool", zap.Error(err))
		}
	} else {
		appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))
	}
	defer db.Close()

	// 5. Initialize Redis
	var redisClient *cache.RedisClient
	var stockCache invUCPkg.StockCache
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedisClient(&cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			appLogger.Warn("Could not connect to Redis (caching and stock locks disabled)", zap.Error(err))
			redisClient = nil
		} else {
			defer redisClient.Close()
			stockCache = redisClient
			appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
		}
	}

	// 6. Initialize Elasticsearch
	var esClient *search.Client
	if cfg.Elastic.Enabled {
		esClient, err = search.NewClient(&search.Config{
			Addresses: cfg.Elastic.Addresses,
			Username:  cfg.Elastic.Username,
			Password:  cfg.Elastic.Password,
		})
		if err != nil {
			appLogger.Warn("Could not connect to Elasticsearch (search uses the database)", zap.Error(err))
			esClient = nil
		} else {
			appLogger.Info("Connected to Elasticsearch", zap.Strings("addresses", cfg.Elastic.Addresses))
		}
	}

	// 7. Initialize Repositories and UseCases
	catRepo := catRepoPkg.NewPGRepository(db)
	prodRepo := prodRepoPkg.NewPGRepository(db)
	invRepo := invRepoPkg.NewPGRepository(db)
	slideRepo := slideRepoPkg.NewPGRepository(db)
	reviewRepo := reviewRepoPkg.NewPGRepository(db)

	fallbackEnabled := cfg.Storefront.FallbackEnabled
	catUC := catUCPkg.NewCategoryUseCase(catRepo, redisClient, catUCPkg.Config{FallbackEnabled: fallbackEnabled, CacheTTL: cfg.Redis.CacheTTL}, appLogger)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, redisClient, esClient, prodUCPkg.Config{FallbackEnabled: fallbackEnabled, CacheTTL: cfg.Redis.CacheTTL}, appLogger)
	invUC := invUCPkg.NewInventoryUseCase(invRepo, stockCache, appLogger)
	slideUC := slideUCPkg.NewSlideUseCase(slideRepo, redisClient, slideUCPkg.Config{FallbackEnabled: fallbackEnabled, CacheTTL: cfg.Redis.CacheTTL}, appLogger)
	reviewUC := reviewUCPkg.NewReviewUseCase(reviewRepo, fallbackEnabled, appLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 8. Initialize Kafka Listener
	if cfg.Kafka.Enabled {
		kafkaConsumer := broker.NewConsumer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
			GroupID: cfg.Kafka.GroupID,
		})
		defer kafkaConsumer.Close()
		appLogger.Info("Connected to Kafka Consumer", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))

		invListener := invListenerPkg.NewInventoryListener(kafkaConsumer, invUC, appLogger)
		go invListener.Start(ctx)
	}

	// 9. Initialize Handlers
	validator := validation.New()
	rs := httpx.NewResponder(translator, appLogger)
	verifier := auth.NewVerifier(cfg.JWT.SecretKey, cfg.JWT.AdminRole)

	router := server.NewRouter(server.RouterConfig{
		AllowedOrigins:  cfg.Server.CORSAllowedOrigins,
		AdminMiddleware: verifier.RequireAdmin(rs, appLogger),
	}, db, appLogger,
		prodH.NewProductHandler(prodUC, validator, rs, appLogger),
		catH.NewCategoryHandler(catUC, validator, rs, appLogger),
		slideH.NewSlideHandler(slideUC, validator, rs, appLogger),
		reviewH.NewReviewHandler(reviewUC, validator, rs, appLogger),
		invH.NewInventoryHandler(invUC, validator, rs, appLogger),
		cartH.NewCartHandler(prodUC, cfg.Storefront.CheckoutPath, validator, rs, appLogger),
	)

	// 10. Start HTTP and gRPC servers
	httpPort := cfg.Server.HTTPPort
	if !strings.HasPrefix(httpPort, ":") {
		httpPort = ":" + httpPort
	}
	httpServer := &http.Server{
		Addr:         httpPort,
		Handler:      router,
		IdleTimeout:  120 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	go func() {
		appLogger.Info("Starting HTTP server", zap.String("port", httpPort))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve http", zap.Error(err))
		}
	}()

	grpcServer := server.NewGRPCServer(db, appLogger)
	go grpcServer.WatchDatabase(ctx)
	go func() {
		if err := grpcServer.Serve(cfg.Server.GRPCPort); err != nil {
			appLogger.Fatal("failed to serve grpc", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("http shutdown failed", zap.Error(err))
	}
	grpcServer.GracefulStop()
	appLogger.Info("Server stopped")
}
