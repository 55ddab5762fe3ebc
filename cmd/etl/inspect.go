package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/cricket-insights/internal/infrastructure/snapshotstore"
)

func newInspectCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Print the manifest of the published snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := opts.load()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			snap, found, err := snapshotstore.NewStore(cfg.DataDir, logger).Load(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !found {
				fmt.Fprintf(out, "no snapshot published in %s\n", cfg.DataDir)
				return nil
			}

			m := snap.Manifest
			fmt.Fprintf(out, "run %s generated %s\n", m.RunID, m.GeneratedAt.Format(time.RFC3339))
			fmt.Fprintf(out, "players=%d stats=%d\n", len(snap.Players), len(snap.Stats))
			for _, source := range m.Sources {
				status := fmt.Sprintf("%d rows", source.Rows)
				if source.Skipped {
					status = "skipped"
				}
				fmt.Fprintf(out, "  %-8s %-14s %s\n", source.Domain, source.Label, status)
			}
			return nil
		},
	}
}
