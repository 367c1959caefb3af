package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/playkaro/teenpatti-server/internal/domain/usecase/betting"
	roomUseCase "github.com/playkaro/teenpatti-server/internal/domain/usecase/room"
	"github.com/playkaro/teenpatti-server/internal/domain/usecase/session"
	"github.com/playkaro/teenpatti-server/internal/domain/usecase/wallet"
	"github.com/playkaro/teenpatti-server/internal/infrastructure/adapter/api/handler"
	"github.com/playkaro/teenpatti-server/internal/infrastructure/adapter/api/routes"
	"github.com/playkaro/teenpatti-server/internal/infrastructure/adapter/database"
	"github.com/playkaro/teenpatti-server/internal/infrastructure/adapter/game"
	"github.com/playkaro/teenpatti-server/internal/infrastructure/adapter/logger"
	"github.com/playkaro/teenpatti-server/internal/infrastructure/adapter/realtime"
	"github.com/playkaro/teenpatti-server/internal/infrastructure/adapter/repository"
	timeProvider "github.com/playkaro/teenpatti-server/internal/infrastructure/adapter/time"
	"github.com/playkaro/teenpatti-server/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production, cfg.Logger.Level)
	defer func() { _ = appLogger.Flush() }()

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Setup database configuration
	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}
	if err := dbConfig.Validate(); err != nil {
		appLogger.Error("Invalid database configuration", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Connect to the database
	db, err := database.Connect(dbConfig, appLogger)
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() { _ = database.Close(db) }()

	// Run migrations and seed the stake tables
	if err := database.Migrate(db, appLogger); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	if err := database.SeedDefaultBoots(db, appLogger); err != nil {
		appLogger.Error("Failed to seed boot configurations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, tp, appLogger)
	roomRepo := repository.NewRoomRepository(db, tp, appLogger)
	bootRepo := repository.NewBootRepository(db, appLogger)

	// Unit of work for multi-repository transactions
	uow := database.NewUnitOfWork(db, appLogger, tp)

	// Initialize use cases
	ledger := wallet.NewLedger(uow, tp, appLogger)
	registry := roomUseCase.NewRegistry(roomRepo, tp, appLogger)
	engine := betting.NewEngine(uow, ledger, tp, appLogger, betting.Config{
		AllowBlindAnteWhileWaiting: cfg.Game.AllowBlindAnteWhileWaiting,
	})
	dispatcher := session.NewDispatcher(appLogger, 0)

	evaluator := game.NewRandomEvaluator(tp.Now().UnixNano())
	sequencer := game.NewRoundRobinSequencer()

	// The coordinator publishes through the hub and the hub fetches
	// subscribe-time snapshots from the coordinator, so the snapshot source
	// is attached after both exist
	hub := realtime.NewHub(tp, appLogger)

	coordinator := session.NewCoordinator(
		dispatcher,
		registry,
		engine,
		ledger,
		uow,
		bootRepo,
		roomRepo,
		userRepo,
		evaluator,
		sequencer,
		hub,
		tp,
		appLogger,
		session.Config{
			MinPlayersToStart:    cfg.Game.MinPlayersToStart,
			OneActiveRoomPerUser: cfg.Game.OneActiveRoomPerUser,
		},
	)
	hub.SetSnapshotSource(coordinator)

	// Initialize API handlers
	playHandler := handler.NewPlayHandler(coordinator, appLogger)
	walletHandler := handler.NewWalletHandler(ledger, cfg.Game.DailyBonusAmount, appLogger)
	wsHandler := handler.NewWebSocketHandler(hub, appLogger)
	healthHandler := handler.NewHealthHandler(db)

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, playHandler, walletHandler, wsHandler, healthHandler)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Stop accepting new requests first, then drain the room workers and
	// close subscriber connections
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	coordinator.Shutdown()
	hub.Shutdown()

	appLogger.Info("Server exited gracefully", nil)
}
