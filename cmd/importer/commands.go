package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"starwars_api/internal/config"
	"starwars_api/internal/database"
	"starwars_api/internal/logger"
	"starwars_api/internal/swapi"
)

func newRootCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:          "importer",
		Short:        "Load Star Wars planets and characters into the database",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if timeout > 0 {
				ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
				cobra.OnFinalize(cancel)
				cmd.SetContext(ctx)
			}
			return nil
		},
	}

	cmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "abort the import after this long")
	cmd.AddCommand(swapiCmd(), fixturesCmd())
	return cmd
}

func swapiCmd() *cobra.Command {
	var baseURL string

	c := &cobra.Command{
		Use:   "swapi",
		Short: "Import every planet and person from the SWAPI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runImport(cmd.Context(), func(cfg *config.Config) (swapi.Source, error) {
				if baseURL == "" {
					baseURL = cfg.SwapiBaseURL
				}
				return swapi.NewClient(baseURL), nil
			})
		},
	}

	c.Flags().StringVar(&baseURL, "base-url", "", "SWAPI root URL (defaults to SWAPI_BASE_URL)")
	return c
}

func fixturesCmd() *cobra.Command {
	var file string

	c := &cobra.Command{
		Use:   "fixtures",
		Short: "Import planets and people from a YAML seed file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runImport(cmd.Context(), func(*config.Config) (swapi.Source, error) {
				return swapi.LoadFixtures(file)
			})
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "YAML seed file (required)")
	_ = c.MarkFlagRequired("file")
	return c
}

func runImport(ctx context.Context, source func(*config.Config) (swapi.Source, error)) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logger.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		return err
	}

	src, err := source(cfg)
	if err != nil {
		return err
	}

	pool, db, err := database.Setup(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	result, err := swapi.NewImporter(db).Run(ctx, src)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Printf("imported %d planets and %d characters\n", result.Planets, result.Characters)
	return nil
}
