package main

import (
	"context"
	"time"

	"careconnect-api/config"
	"careconnect-api/internal/handler"
	"careconnect-api/internal/redis"
	"careconnect-api/internal/repository"
	"careconnect-api/internal/server"
	"careconnect-api/internal/services"
	"careconnect-api/pkg/database"
	"careconnect-api/pkg/logger"

	openai "github.com/sashabaranov/go-openai"
)

func main() {
	cfg := config.LoadConfig()

	var l *logger.Logger
	if cfg.AppMode == server.ReleaseMode {
		l = logger.New(logger.ProductionMode)
	} else {
		l = logger.New(logger.DevelopmentMode)
	}
	logger.SetGlobalLogger(l)

	ctx := context.Background()

	// Connect only fails on a malformed URI; an unreachable server is
	// logged here but not fatal, and requests that need the database
	// fail individually until it comes back.
	mongoClient, err := database.Connect(ctx, cfg)
	if err != nil {
		l.Fatalf("Invalid MongoDB configuration: %s", err)
	}
	if err := database.HealthCheck(ctx, mongoClient); err != nil {
		l.Errorf("MongoDB connection error: %s", err)
	} else {
		l.Infof("Connected to MongoDB")
	}
	defer func() {
		if err := database.Disconnect(context.Background(), mongoClient); err != nil {
			l.Errorf("Failed to disconnect MongoDB client: %s", err)
		}
	}()

	accountRepo := repository.NewAccountRepository(mongoClient.Database(cfg.MongoDatabase))
	idxCtx, cancelIdx := context.WithTimeout(ctx, 10*time.Second)
	if err := accountRepo.EnsureIndexes(idxCtx); err != nil {
		l.Errorf("Failed to ensure account indexes: %s", err)
	}
	cancelIdx()

	authService := services.NewAuthService(accountRepo, cfg)

	openaiClient := openai.NewClient(cfg.OpenAIAPIKey)
	chatService := services.NewChatService(openaiClient, cfg)

	var authLimiter *redis.RateLimiter
	if cfg.RateLimitEnabled() {
		redisClient := redis.NewClient(redis.Config{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
		})
		limitCfg := redis.DefaultRateLimitConfig()
		limitCfg.AuthLimit = cfg.AuthRateLimit
		authLimiter = redis.NewRateLimiter(redisClient, limitCfg)
		l.Infof("Auth rate limiting enabled: %d attempts/min", cfg.AuthRateLimit)
	}

	srv := server.New(cfg, l)
	srv.SetupRoutes(&server.Handlers{
		Auth: handler.NewAuthHandler(authService),
		Chat: handler.NewChatHandler(chatService, l),
	}, func(ctx context.Context) error {
		checkCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		return database.HealthCheck(checkCtx, mongoClient)
	}, authLimiter)

	if err := srv.Start(); err != nil {
		l.Errorf("Server exited with error: %s", err)
	}
}
