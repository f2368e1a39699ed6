package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verdantlabs/graphseed/internal/config"
	"github.com/verdantlabs/graphseed/internal/defra"
	"github.com/verdantlabs/graphseed/internal/seeder"
)

var (
	seedSkipSchema bool
	seedRandSeed   int64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with randomized demo data",
	Long: `Load the assessment graph schema and create a randomized demonstration
dataset, walking the entity tree parent-before-child so every relation
references an existing document.`,
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

		generator := seeder.NewDataGenerator()
		if cmd.Flags().Changed("seed") {
			generator = seeder.NewSeededDataGenerator(seedRandSeed)
		}

		s := seeder.NewSeeder(client, generator)
		ctx := context.Background()

		if !seedSkipSchema {
			if err := s.LoadSchema(ctx); err != nil {
				return err
			}
		}

		return s.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().BoolVar(&seedSkipSchema, "skip-schema", false, "Assume the schema is already loaded")
	seedCmd.Flags().Int64Var(&seedRandSeed, "seed", 0, "PRNG seed for a reproducible dataset")
}
