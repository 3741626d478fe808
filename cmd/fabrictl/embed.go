package main

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/drdwitte/Fabritius-NG/internal/ai"
	"github.com/drdwitte/Fabritius-NG/internal/domain"
	"github.com/drdwitte/Fabritius-NG/internal/repository"
)

const embedBatchSize = 100

func newEmbedCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "embed",
		Short: "Embed captions of artworks that have no vector yet",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, pool, err := loadEnv(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			embedder, err := ai.NewOpenAIEmbedder(cfg.OpenAI)
			if err != nil {
				return err
			}

			artworks := repository.NewArtworkRepository(pool)
			return runEmbed(ctx, artworks, embedder, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "stop after this many artworks (0 = all)")
	return cmd
}

func runEmbed(ctx context.Context, artworks domain.ArtworkRepository, embedder ai.Embedder, limit int) error {
	var done, skipped int

	for {
		batch := embedBatchSize
		if limit > 0 {
			remaining := limit - done
			if remaining <= 0 {
				break
			}
			if remaining < batch {
				batch = remaining
			}
		}

		pending, err := artworks.ListUnembedded(ctx, batch)
		if err != nil {
			return err
		}
		if len(pending) == 0 {
			break
		}

		texts := make([]string, len(pending))
		for i, a := range pending {
			texts[i] = a.Caption
		}

		vectors, err := embedder.EmbedTexts(ctx, texts)
		if err != nil {
			return err
		}

		progress := 0
		for i, a := range pending {
			if i >= len(vectors) || len(vectors[i]) == 0 {
				skipped++
				log.WithField("inventory", a.InventoryNumber).Warn("empty embedding, skipped")
				continue
			}
			if err := artworks.SetEmbedding(ctx, a.InventoryNumber, vectors[i]); err != nil {
				return err
			}
			done++
			progress++
		}

		log.WithFields(log.Fields{
			"embedded": done,
			"skipped":  skipped,
		}).Info("embed progress")

		// Rows that keep producing empty vectors would be refetched
		// forever; stop once a batch makes no headway.
		if progress == 0 {
			break
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}

	log.WithFields(log.Fields{
		"embedded": done,
		"skipped":  skipped,
	}).Info("embed run complete")
	return nil
}
