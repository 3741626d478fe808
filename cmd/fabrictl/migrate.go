package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply SQL migrations in lexical order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			_, pool, err := loadEnv(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			entries, err := os.ReadDir(dir)
			if err != nil {
				return err
			}

			var files []string
			for _, e := range entries {
				if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
					files = append(files, e.Name())
				}
			}
			sort.Strings(files)

			for _, name := range files {
				sql, err := os.ReadFile(filepath.Join(dir, name))
				if err != nil {
					return err
				}
				if _, err := pool.Exec(ctx, string(sql)); err != nil {
					return fmt.Errorf("apply %s: %w", name, err)
				}
				log.WithField("migration", name).Info("applied")
			}

			log.WithField("count", len(files)).Info("migrations complete")
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "migrations", "directory with .sql migration files")
	return cmd
}
