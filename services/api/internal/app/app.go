package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"craftledger/pkg/cache"
	"craftledger/pkg/config"
	"craftledger/pkg/database"
	"craftledger/pkg/jwt"
	"craftledger/pkg/logger"
	"craftledger/pkg/middleware"
	"craftledger/pkg/queue"
	"craftledger/pkg/store"
	apiHTTP "craftledger/services/api/internal/controller/http"
	"craftledger/services/api/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	store       store.Store
	redisClient *redis.Client
	queueClient *queue.Client
	jwtService  *jwt.Service
	httpServer  *http.Server
}

// NewApp opens the configured store and the optional Redis and RabbitMQ
// connections. Redis and RabbitMQ failures are logged and the app runs without them.
func NewApp(cfg *config.Config) (*App, error) {
	log := logger.NewWithWriter(os.Stdout, cfg.LogLevel)

	var st store.Store
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		db, err := database.NewPostgresDB(cfg)
		if err != nil {
			log.Error("Failed to connect to database: %v", err)
			return nil, err
		}
		st = store.NewGormStore(db)
	default:
		log.Info("Using in-memory store")
		st = store.NewMemoryStore()
	}

	var redisClient *redis.Client
	if cfg.RedisHost != "" {
		client, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Error("Failed to connect to redis: %v (falling back to local rate limiting)", err)
		} else {
			redisClient = client
		}
	}

	var queueClient *queue.Client
	if cfg.RabbitMQHost != "" {
		client, err := queue.NewRabbitMQClient(cfg, log)
		if err != nil {
			log.Error("Failed to connect to RabbitMQ: %v (continuing without events)", err)
		} else {
			queueClient = client
		}
	}

	return New(cfg, log, st, redisClient, queueClient), nil
}

// New assembles an App from already opened dependencies. redisClient and
// queueClient may be nil.
func New(cfg *config.Config, log *logger.Logger, st store.Store, redisClient *redis.Client, queueClient *queue.Client) *App {
	var jwtService *jwt.Service
	if cfg.JWTSecret != "" {
		jwtService = jwt.NewService(cfg.JWTSecret)
	}

	return &App{
		cfg:         cfg,
		log:         log,
		store:       st,
		redisClient: redisClient,
		queueClient: queueClient,
		jwtService:  jwtService,
	}
}

func (a *App) Router() *gin.Engine {
	// A nil *queue.Client must not become a non-nil interface.
	var publisher usecase.EventPublisher
	if a.queueClient != nil {
		publisher = a.queueClient
	}

	// Initialize use cases
	seedUseCase := usecase.NewSeedUseCase(a.store, a.log)
	creatorUseCase := usecase.NewCreatorUseCase(a.store, a.log)
	subscriptionUseCase := usecase.NewSubscriptionUseCase(a.store, a.log)
	contentUseCase := usecase.NewContentUseCase(a.store, a.log)
	ledgerUseCase := usecase.NewLedgerUseCase(a.store, publisher, a.log)

	// Initialize HTTP handlers
	handlers := &apiHTTP.Handlers{
		Creators: apiHTTP.NewCreatorHandler(creatorUseCase, subscriptionUseCase, a.log),
		Content:  apiHTTP.NewContentHandler(contentUseCase, a.log),
		Ledger:   apiHTTP.NewLedgerHandler(ledgerUseCase, a.log),
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(a.log))

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", middleware.UserIDHeader, middleware.CreatorIDHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.Use(middleware.IdentityMiddleware(a.jwtService, a.cfg.DemoUserID, a.cfg.DemoCreatorID))
	if a.redisClient != nil {
		api.Use(middleware.RateLimitMiddleware(a.redisClient, a.cfg.RateLimitPerMinute, time.Minute))
	} else {
		api.Use(middleware.NewLocalRateLimiter(a.cfg.RateLimitPerMinute, time.Minute).Middleware())
	}
	api.Use(middleware.SeedMiddleware(seedUseCase))

	handlers.Register(api)

	return r
}

func (a *App) Run() error {
	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: a.Router(),
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("CraftLedger API starting on port %s (store: %s)", a.cfg.ServerPort, a.cfg.StoreDriver)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down CraftLedger API...")
}

func (a *App) Shutdown() error {
	// The context is used to inform the server it has 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var shutdownErr error
	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			a.log.Error("Server forced to shutdown: %v", err)
			shutdownErr = err
		}
	}

	if err := a.store.Close(); err != nil {
		a.log.Error("Error closing store: %v", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	a.log.Info("CraftLedger API exited")
	return shutdownErr
}
