package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/verdantlabs/graphseed/internal/config"
	"github.com/verdantlabs/graphseed/internal/defra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check that the database is reachable",
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

		color.Cyan("🔍 API URL:       %s", cfg.APIURL)
		color.Cyan("🔍 TCP multiaddr: %s", cfg.TCPMultiaddr)

		if err := client.Ping(context.Background()); err != nil {
			color.Red("❌ Database unreachable")
			return err
		}

		color.Green("✅ Database reachable")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
