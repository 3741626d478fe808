package main

import (
	"context"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/drdwitte/Fabritius-NG/internal/config"
)

func main() {
	root := &cobra.Command{
		Use:   "fabrictl",
		Short: "Collection maintenance tasks for the Fabritius service",
		Long: `fabrictl runs the offline enrichment pipeline against the artwork
collection: generating captions for images, embedding captions into the
vector column, and applying schema migrations.`,
		SilenceUsage: true,
	}

	root.AddCommand(newCaptionCmd(), newEmbedCmd(), newMigrateCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadEnv builds the shared command environment: parsed config, logger,
// and an open database pool. Callers own closing the pool.
func loadEnv(ctx context.Context) (*config.Config, *pgxpool.Pool, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	initLogger(cfg)

	poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN())
	if err != nil {
		return nil, nil, err
	}
	poolCfg.MaxConns = int32(cfg.Database.MaxOpenConns)

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return cfg, pool, nil
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}
