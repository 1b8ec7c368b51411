package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"cricket-scorecard-api/internal/config"
	"cricket-scorecard-api/internal/handler"
	"cricket-scorecard-api/internal/metrics"
	"cricket-scorecard-api/internal/repository"
	"cricket-scorecard-api/internal/router"
	"cricket-scorecard-api/internal/service"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting Cricket Scorecard API...")

	// Load configuration
	cfg := config.MustLoad()
	log.Printf("Environment: %s", cfg.App.Environment)

	// Initialize the record store based on config
	var repo repository.ScorecardRepository
	switch cfg.Store.Type {
	case "memory", "inmemory":
		repo = repository.NewMemoryScorecardRepository()
		log.Println("In-memory record store initialized")
	case "mongodb", "mongo":
		mongoRepo, err := repository.NewMongoScorecardRepository(cfg.Store.MongoURI, cfg.Store.MongoDatabase)
		if err != nil {
			log.Fatalf("Failed to initialize MongoDB: %v", err)
		}
		repo = mongoRepo
		log.Println("MongoDB record store initialized")
	case "postgres", "postgresql":
		pgRepo, err := repository.NewPostgresScorecardRepository(cfg.Store.PostgresDSN())
		if err != nil {
			log.Fatalf("Failed to initialize PostgreSQL: %v", err)
		}
		repo = pgRepo
		log.Println("PostgreSQL record store initialized")
	case "mysql", "mariadb":
		mysqlRepo, err := repository.NewMySQLScorecardRepository(cfg.Store.MySQLDSN())
		if err != nil {
			log.Fatalf("Failed to initialize MySQL: %v", err)
		}
		repo = mysqlRepo
		log.Println("MySQL record store initialized")
	case "redis":
		redisRepo, err := repository.NewRedisScorecardRepository(repository.RedisScorecardConfig{
			Addr:     cfg.Store.RedisAddress(),
			Password: cfg.Store.RedisPassword,
			DB:       cfg.Store.RedisDB,
		})
		if err != nil {
			log.Fatalf("Failed to initialize Redis: %v", err)
		}
		repo = redisRepo
		log.Println("Redis record store initialized")
	default: // sqlite
		sqliteRepo, err := repository.NewSQLiteScorecardRepository(cfg.Store.SQLitePath)
		if err != nil {
			log.Fatalf("Failed to initialize SQLite: %v", err)
		}
		repo = sqliteRepo
		log.Println("SQLite record store initialized")
	}
	defer repo.Close()

	// Initialize services
	scorecardService := service.NewScorecardService(repo)

	// Initialize handlers
	healthHandler := handler.New(repo, cfg.Store.Type, cfg.App.Version)
	playerHandler := handler.NewPlayerHandler(scorecardService)
	inningsHandler := handler.NewInningsHandler(scorecardService)

	// Create router
	r := router.New(router.Config{
		Handler:        healthHandler,
		PlayerHandler:  playerHandler,
		InningsHandler: inningsHandler,
		Metrics:        metrics.Handler(),
		RequestTimeout: cfg.Server.RequestTimeout,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server listening on %s", cfg.Server.Address())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
	fmt.Println("Goodbye!")
}
