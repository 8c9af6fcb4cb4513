package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iis-mfg/precision-site/internal/content"
	"github.com/iis-mfg/precision-site/internal/observability"
	"github.com/iis-mfg/precision-site/internal/seed"
)

var (
	seedDir         string
	seedDryRun      bool
	seedConcurrency int
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Import content documents into the database",
	Long:  `Validate JSON/YAML page and navigation documents against their schemas and upsert them into the content store.`,
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedDir, "dir", "content", "Directory containing content documents")
	seedCmd.Flags().BoolVar(&seedDryRun, "dry-run", false, "Validate documents without writing to the database")
	seedCmd.Flags().IntVar(&seedConcurrency, "concurrency", 4, "Number of documents imported in parallel")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	importer := &seed.Importer{
		DryRun:      seedDryRun,
		Concurrency: seedConcurrency,
	}

	// Dry runs validate without touching the database.
	if !seedDryRun {
		databaseURL := os.Getenv("DATABASE_URL")
		if databaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required")
		}
		store, err := content.Connect(ctx, databaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer store.Close()
		importer.Store = store
	}

	results, err := importer.ImportDir(ctx, seedDir)
	observability.NewPrinter(os.Stdout).PrintImportSummary(results, seedDryRun)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed to import", failed, len(results))
	}
	return nil
}
