package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/verdantlabs/graphseed/internal/config"
	"github.com/verdantlabs/graphseed/internal/defra"
	"github.com/verdantlabs/graphseed/internal/schema"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Load the assessment graph schema",
	Long:  `Load the GraphQL schema into the database without creating any data.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		client, err := defra.NewClient(defra.Config{
			APIURL:       cfg.APIURL,
			TCPMultiaddr: cfg.TCPMultiaddr,
			Timeout:      cfg.Timeout(),
		})
		if err != nil {
			return fmt.Errorf("failed to create database client: %w", err)
		}

		color.Cyan("📐 Loading schema into %s...", client.APIURL())
		if err := client.LoadSchema(context.Background(), schema.SDL); err != nil {
			return fmt.Errorf("failed to load schema: %w", err)
		}
		color.Green("✅ Schema loaded")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
