package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iis-mfg/precision-site/internal/composer"
	"github.com/iis-mfg/precision-site/internal/composer/variants"
	"github.com/iis-mfg/precision-site/internal/observability"
	"github.com/iis-mfg/precision-site/internal/seed"
)

var (
	composeVerbose bool
)

var composeCmd = &cobra.Command{
	Use:   "compose <page-file>",
	Short: "Render a page document to HTML sections",
	Long:  `Run the page composer over a local JSON or YAML page document and print the rendered sections. Useful for checking authored content before seeding it.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCompose,
}

func init() {
	composeCmd.Flags().BoolVar(&composeVerbose, "verbose", false, "Print a composition summary instead of raw HTML")
	rootCmd.AddCommand(composeCmd)
}

func runCompose(_ *cobra.Command, args []string) error {
	page, err := seed.DecodePageFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to load page document: %w", err)
	}

	result := composer.Compose(page.Sections, variants.Default())

	if composeVerbose {
		observability.NewPrinter(os.Stdout).PrintComposition(page, result)
		return nil
	}

	for _, section := range result.Sections {
		fmt.Printf("<!-- section %d: %s -->\n%s\n", section.Index, section.Variant, section.HTML)
	}
	for _, diag := range result.Diagnostics {
		fmt.Fprintf(os.Stderr, "skipped section %d (%s): %s\n", diag.Index, diag.Variant, diag.Reason)
	}
	return nil
}
