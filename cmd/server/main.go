package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pay-chain.backend/internal/config"
	"pay-chain.backend/internal/infrastructure/datasources"
	"pay-chain.backend/internal/infrastructure/jobs"
	"pay-chain.backend/internal/infrastructure/repositories"
	"pay-chain.backend/internal/interfaces/http/handlers"
	"pay-chain.backend/internal/interfaces/http/middleware"
	"pay-chain.backend/internal/usecases"
	"pay-chain.backend/pkg/logger"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	openDB     = func(cfg *config.Config) (*gorm.DB, error) { return datasources.Open(cfg.Database) }
	runServer  = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	db, err := openDB(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Printf("✅ Connected to %s via GORM", cfg.Database.Driver)

	if err := datasources.Migrate(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := datasources.Seed(context.Background(), db); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	nftRepo := repositories.NewNftRepository(db)
	rewardRepo := repositories.NewStakingRewardRepository(db)
	faucetClaimRepo := repositories.NewFaucetClaimRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize usecases
	stakingUsecase := usecases.NewStakingUsecase(nftRepo, rewardRepo, userRepo, uow)
	faucetUsecase := usecases.NewFaucetUsecase(userRepo, faucetClaimRepo, uow)
	statsUsecase := usecases.NewStatsUsecase(nftRepo, rewardRepo)

	// Initialize handlers
	statsHandler := handlers.NewStatsHandler(statsUsecase)
	nftHandler := handlers.NewNftHandler(nftRepo)
	stakingHandler := handlers.NewStakingHandler(stakingUsecase)
	faucetHandler := handlers.NewFaucetHandler(faucetUsecase)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var accrualJob *jobs.RewardAccrualJob
	if cfg.Staking.AccrualEnabled {
		dailyRate, err := decimal.NewFromString(cfg.Staking.DailyRate)
		if err != nil {
			return fmt.Errorf("invalid staking daily rate %q: %w", cfg.Staking.DailyRate, err)
		}
		accrualJob = jobs.NewRewardAccrualJob(nftRepo, rewardRepo, dailyRate, cfg.Staking.AccrualInterval)
		go accrualJob.Start(ctx)
	}

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIRoutes(r, routeDeps{
		statsHandler:   statsHandler,
		nftHandler:     nftHandler,
		stakingHandler: stakingHandler,
		faucetHandler:  faucetHandler,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		if accrualJob != nil {
			accrualJob.Stop()
		}
		cancel()
	}()

	// Start server
	log.Printf("🚀 Valhalla Odin Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
