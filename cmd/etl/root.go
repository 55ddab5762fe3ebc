package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/cricket-insights/internal/config"
	"github.com/riskibarqy/cricket-insights/internal/platform/logging"
)

type rootOptions struct {
	dataDir   string
	sourceDir string
	manifest  string
	logLevel  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "etl",
		Short:         "Merge the cricket CSV exports into a query snapshot",
		SilenceUsage:  true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.dataDir, "data-dir", "", "snapshot output directory (default $DATA_DIR)")
	flags.StringVar(&opts.sourceDir, "source-dir", "", "CSV source root (default $SOURCE_DIR)")
	flags.StringVar(&opts.manifest, "manifest", "", "YAML source manifest (default $SOURCE_MANIFEST or the stock layout)")
	flags.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error (default $APP_LOG_LEVEL)")

	root.AddCommand(newRunCmd(opts), newInspectCmd(opts))
	return root
}

// load reads the environment config and applies flag overrides.
func (o *rootOptions) load() (config.Config, *logging.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	if v := strings.TrimSpace(o.dataDir); v != "" {
		cfg.DataDir = v
	}
	if v := strings.TrimSpace(o.sourceDir); v != "" {
		cfg.SourceDir = v
	}
	if v := strings.TrimSpace(o.manifest); v != "" {
		cfg.SourceManifest = v
	}
	if v := strings.TrimSpace(o.logLevel); v != "" {
		level, err := logging.ParseLevel(v)
		if err != nil {
			return config.Config{}, nil, err
		}
		cfg.LogLevel = level
	}

	logger := logging.NewConsole(cfg.LogLevel).Named("etl")
	logging.SetDefault(logger)
	return cfg, logger, nil
}
