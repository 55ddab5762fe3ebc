package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/cricket-insights/internal/app"
	"github.com/riskibarqy/cricket-insights/internal/usecase"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the batting, bowling and fielding merge and publish the snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := opts.load()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			svc, err := app.NewIngestion(cfg, logger)
			if err != nil {
				return err
			}

			result, err := svc.Run(cmd.Context(), usecase.IngestionInput{DryRun: dryRun})
			if err != nil {
				logger.ErrorContext(cmd.Context(), "ingestion failed", "error", err)
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "run %s\n", result.RunID)
			for _, source := range result.Sources {
				if source.Skipped {
					fmt.Fprintf(out, "  %-8s %-14s skipped (%s)\n", source.Domain, source.Label, source.Reason)
					continue
				}
				fmt.Fprintf(out, "  %-8s %-14s %d rows\n", source.Domain, source.Label, source.Rows)
			}
			fmt.Fprintf(out, "players=%d stats=%d merged=%d skipped=%d\n",
				result.Players, result.Stats, result.RowsMerged, result.RowsSkipped)
			if result.Published {
				fmt.Fprintf(out, "published to %s\n", cfg.DataDir)
			} else {
				fmt.Fprintln(out, "dry run, nothing published")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "merge and classify without publishing")
	return cmd
}
