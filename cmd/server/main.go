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
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"masteria.app/panel/common/id"
	"masteria.app/panel/common/llm"
	"masteria.app/panel/common/logger"
	"masteria.app/panel/common/otel"
	"masteria.app/panel/core/config"
	"masteria.app/panel/core/db"
	"masteria.app/panel/internal/auth"
	"masteria.app/panel/internal/http/middleware"
	httprouter "masteria.app/panel/internal/http/router"
	"masteria.app/panel/internal/queue"
	"masteria.app/panel/internal/service"
	"masteria.app/panel/internal/storage"
	"masteria.app/panel/internal/store"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeServer)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "masteria panel starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(1); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected")

	redisOpts, err := redis.ParseURL(cfg.Pipeline.RedisURL)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse redis url", "error", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(redisOpts)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
		os.Exit(1)
	}
	slog.InfoContext(ctx, "redis connected", "stream", cfg.Pipeline.RedisStream)

	producer := queue.NewRedisProducer(redisClient, cfg.Pipeline.RedisStream, nil)
	defer producer.Close()

	deps := service.Deps{
		Stores:   store.NewStores(database.Queries()),
		TxRunner: service.NewTxRunner(database),
		Producer: producer,
		Tokens:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL),
		Hasher:   auth.NewHasher(0),
		Config:   cfg,
	}

	// Optional subsystems stay nil when unconfigured; their services answer 503.
	if cfg.VectorDB.Enabled() {
		vectorDB, err := db.New(ctx, cfg.VectorDB)
		if err != nil {
			slog.ErrorContext(ctx, "failed to connect to vector database", "error", err)
			os.Exit(1)
		}
		defer vectorDB.Close()
		deps.VectorStores = store.NewStores(vectorDB.Queries())
		deps.KnowledgeTx = service.NewKnowledgeTxRunner(vectorDB)
		slog.InfoContext(ctx, "vector database connected")
	} else {
		slog.InfoContext(ctx, "knowledge base disabled (no VECTOR_DATABASE_URL)")
	}

	if cfg.OpenAI.Enabled() {
		embedder, err := llm.New(llm.Config{
			APIKey:  cfg.OpenAI.APIKey,
			BaseURL: cfg.OpenAI.BaseURL,
			Model:   cfg.OpenAI.EmbeddingModel,
		})
		if err != nil {
			slog.ErrorContext(ctx, "failed to create embeddings client", "error", err)
			os.Exit(1)
		}
		deps.Embedder = embedder
	}

	if cfg.Storage.Enabled() {
		presigner, err := storage.NewS3Presigner(ctx, cfg.Storage)
		if err != nil {
			slog.ErrorContext(ctx, "failed to create storage client", "error", err)
			os.Exit(1)
		}
		deps.Presigner = presigner
		slog.InfoContext(ctx, "media storage enabled", "bucket", cfg.Storage.Bucket)
	}

	services := service.NewServices(deps)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if err := redisClient.Close(); err != nil {
		slog.WarnContext(shutdownCtx, "redis close error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

func setupRouter(cfg config.Config, services *service.Services) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger(cfg.Pipeline.TraceHeaderName))

	httprouter.SetupRoutes(router, services, httprouter.RouterConfig{
		CookieName:   cfg.Auth.CookieName,
		IsProduction: cfg.IsProduction(),
		PublicURL:    cfg.PublicURL,
	})

	return router
}

const banner = `
███╗   ███╗ █████╗ ███████╗████████╗███████╗██████╗     ██╗ █████╗
████╗ ████║██╔══██╗██╔════╝╚══██╔══╝██╔════╝██╔══██╗    ██║██╔══██╗
██╔████╔██║███████║███████╗   ██║   █████╗  ██████╔╝    ██║███████║
██║╚██╔╝██║██╔══██║╚════██║   ██║   ██╔══╝  ██╔══██╗    ██║██╔══██║
██║ ╚═╝ ██║██║  ██║███████║   ██║   ███████╗██║  ██║    ██║██║  ██║
╚═╝     ╚═╝╚═╝  ╚═╝╚══════╝   ╚═╝   ╚══════╝╚═╝  ╚═╝    ╚═╝╚═╝  ╚═╝
                                                          panel api
`
