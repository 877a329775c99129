package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yuya-isaka/chibisearch/bsearch"
	"github.com/yuya-isaka/chibisearch/config"
)

func (a *app) runCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every query of a YAML batch file",
		Long: `Loads a batch file of datasets and queries and runs each query.

Each dataset's order is checked once. Unsorted datasets are reported and
skipped, and the command fails after the remaining datasets have run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			// フラグ指定がなければ設定ファイルのログレベルを使う
			if !a.verbose && !cmd.Flags().Changed("log-level") && cfg.Log.Level != a.logLevel {
				logger, err := a.buildLogger(cfg.Log.Level)
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
				_ = a.logger.Sync()
				a.logger = logger
			}

			return a.runBatch(cmd.OutOrStdout(), cfg)
		},
	}

	cmd.Flags().StringVarP(&path, "config", "c", "cases.yaml", "batch file to run")
	return cmd
}

func (a *app) runBatch(w io.Writer, cfg *config.Config) error {
	var skipped, queries int
	for _, d := range cfg.Datasets {
		logger := a.logger.With(zap.String("dataset", d.Name))

		sorted, err := bsearch.NewSorted(d.Values)
		if err != nil {
			logger.Warn("skipping dataset", zap.Error(err))
			fmt.Fprintf(w, "[%s] skipped: %v\n", d.Name, err)
			skipped++
			continue
		}

		for _, q := range d.Queries {
			r := querySorted(sorted, q)
			logger.Debug("query", r.fields()...)
			fmt.Fprintf(w, "[%s] %s\n", d.Name, r)
			queries++
		}
	}

	a.logger.Info("batch finished",
		zap.Int("datasets", len(cfg.Datasets)),
		zap.Int("queries", queries),
		zap.Int("skipped", skipped),
	)

	if skipped > 0 {
		return fmt.Errorf("%d of %d datasets skipped: %w", skipped, len(cfg.Datasets), bsearch.ErrInvalidInput)
	}
	return nil
}
