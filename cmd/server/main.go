package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"github.com/drdwitte/Fabritius-NG/internal/ai"
	"github.com/drdwitte/Fabritius-NG/internal/config"
	"github.com/drdwitte/Fabritius-NG/internal/handler"
	"github.com/drdwitte/Fabritius-NG/internal/middleware"
	"github.com/drdwitte/Fabritius-NG/internal/operator"
	"github.com/drdwitte/Fabritius-NG/internal/repository"
	"github.com/drdwitte/Fabritius-NG/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// Create database pool
	poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN())
	if err != nil {
		log.Fatalf("parse db config: %v", err)
	}
	poolCfg.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.Database.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		log.Fatalf("create db pool: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatalf("ping db: %v", err)
	}
	log.Info("database connection established")

	// Repositories
	artworkRepo := repository.NewArtworkRepository(pool)
	tagRepo := repository.NewTagRepository(pool)

	// AI clients
	embedder, err := ai.NewOpenAIEmbedder(cfg.OpenAI)
	if err != nil {
		log.Fatalf("init embedder: %v", err)
	}
	captioner, err := ai.NewOpenAICaptioner(cfg.OpenAI)
	if err != nil {
		log.Fatalf("init captioner: %v", err)
	}

	// Search operators
	registry := operator.NewRegistry()
	registry.Register(operator.NewSemanticSearch(artworkRepo, embedder,
		cfg.Search.ImageBaseURL, cfg.Search.PreviewResultCount, cfg.Search.VectorSearchLimit))
	registry.Register(operator.NewMetadataFilter(artworkRepo,
		cfg.Search.ImageBaseURL, cfg.Search.PreviewResultCount))
	registry.Register(operator.NewSimilaritySearch(artworkRepo, embedder, captioner,
		cfg.Search.ImageBaseURL, cfg.Search.PreviewResultCount, cfg.Search.VectorSearchLimit))

	// Use cases
	searchUC := usecase.NewSearchUseCase(registry, artworkRepo)
	labelUC := usecase.NewLabelUseCase(tagRepo, artworkRepo, registry,
		cfg.Search.ImageBaseURL, cfg.Search.PreviewResultCount)
	thesaurusUC := usecase.NewThesaurusUseCase(tagRepo, cfg.Thesaurus.CacheTTL)
	insightsUC := usecase.NewInsightsUseCase(artworkRepo, tagRepo)

	h := handler.New(searchUC, labelUC, thesaurusUC, insightsUC, cfg.Search.ImageBaseURL)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())

	api := router.Group(cfg.Server.BasePath + "/api/v1")
	h.RegisterRoutes(api)

	// Health check with DB ping
	router.GET("/healthz", func(c *gin.Context) {
		if err := pool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
