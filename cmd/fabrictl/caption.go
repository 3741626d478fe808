package main

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/drdwitte/Fabritius-NG/internal/ai"
	"github.com/drdwitte/Fabritius-NG/internal/domain"
	"github.com/drdwitte/Fabritius-NG/internal/operator"
	"github.com/drdwitte/Fabritius-NG/internal/repository"
)

const captionBatchSize = 50

func newCaptionCmd() *cobra.Command {
	var workers, limit int

	cmd := &cobra.Command{
		Use:   "caption",
		Short: "Generate captions for artworks that have an image but no caption",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, pool, err := loadEnv(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			captioner, err := ai.NewOpenAICaptioner(cfg.OpenAI)
			if err != nil {
				return err
			}

			artworks := repository.NewArtworkRepository(pool)
			return runCaption(ctx, artworks, captioner, cfg.Search.ImageBaseURL, workers, limit)
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 4, "concurrent caption requests")
	cmd.Flags().IntVar(&limit, "limit", 0, "stop after this many artworks (0 = all)")
	return cmd
}

func runCaption(ctx context.Context, artworks domain.ArtworkRepository, captioner ai.Captioner, imageBaseURL string, workers, limit int) error {
	pool, err := ants.NewPool(workers)
	if err != nil {
		return err
	}
	defer pool.Release()

	var done, failed atomic.Int64

	// Captioned rows drop out of the uncaptioned set, so each batch is
	// fetched from offset zero plus the rows that failed so far.
	for {
		batch := captionBatchSize
		if limit > 0 {
			remaining := limit - int(done.Load())
			if remaining <= 0 {
				break
			}
			if remaining < batch {
				batch = remaining
			}
		}

		pending, err := artworks.ListUncaptioned(ctx, batch, int(failed.Load()))
		if err != nil {
			return err
		}
		if len(pending) == 0 {
			break
		}

		var wg sync.WaitGroup
		for _, artwork := range pending {
			a := artwork
			wg.Add(1)
			submitErr := pool.Submit(func() {
				defer wg.Done()
				if err := captionOne(ctx, artworks, captioner, imageBaseURL, a); err != nil {
					failed.Add(1)
					log.WithError(err).WithField("inventory", a.InventoryNumber).Warn("caption failed")
					return
				}
				done.Add(1)
			})
			if submitErr != nil {
				wg.Done()
				return submitErr
			}
		}
		wg.Wait()

		log.WithFields(log.Fields{
			"captioned": done.Load(),
			"failed":    failed.Load(),
		}).Info("caption progress")

		if ctx.Err() != nil {
			return ctx.Err()
		}
	}

	log.WithFields(log.Fields{
		"captioned": done.Load(),
		"failed":    failed.Load(),
	}).Info("caption run complete")
	return nil
}

func captionOne(ctx context.Context, artworks domain.ArtworkRepository, captioner ai.Captioner, imageBaseURL string, a *domain.Artwork) error {
	imageURL := operator.ResolveImageURL(imageBaseURL, a.ImageLink)
	caption, err := captioner.CaptionImage(ctx, imageURL)
	if err != nil {
		return err
	}
	if caption == "" {
		return fmt.Errorf("model returned empty caption for %s", a.InventoryNumber)
	}
	return artworks.SetCaption(ctx, a.InventoryNumber, caption)
}
