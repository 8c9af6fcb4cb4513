// Package main provides the entry point for the precision-site content service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "precision_site",
	Short: "Precision-site content service",
	Long:  "Precision-site serves CMS-authored marketing pages through a variant-dispatch page composer and handles contact form intake with email notification and audit logging.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
