package main

import (
	"context"
	"os"
	"time"

	"tasjeel/internal/config"
	"tasjeel/internal/roster"
	"tasjeel/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// exportCommand constructs the 'export' subcommand that writes the contestant
// roster to a CSV file, optionally narrowed by the same filters the admin API
// offers.
func exportCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Exports the contestant roster to a CSV file",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			output, _ := cmd.Flags().GetString("output")
			if output == "" {
				output = roster.Filename(time.Now().UTC())
			}
			criteria := roster.Criteria{}
			criteria.Query, _ = cmd.Flags().GetString("query")
			criteria.Center, _ = cmd.Flags().GetString("center")
			criteria.Level, _ = cmd.Flags().GetString("level")
			criteria.Committee, _ = cmd.Flags().GetString("committee")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			rows, err := roster.New(strg).List(ctx)
			if err != nil {
				logger.Fatal(ctx, "could not list contestants", zap.Error(err))
			}
			rows = roster.Filter(rows, criteria)

			if err := os.WriteFile(output, roster.ExportCSV(rows), 0o600); err != nil {
				logger.Fatal(ctx, "could not write export file", zap.Error(err))
			}

			logger.Info(ctx, "roster exported",
				zap.String("output", output),
				zap.Int("contestants", len(rows)),
			)
		},
	}

	cmd.Flags().StringP("output", "o", "", "Output file path (defaults to contestants_export_<date>.csv)")
	cmd.Flags().String("query", "", "Name or national id fragment to filter by")
	cmd.Flags().String("center", "", "Contest center to filter by")
	cmd.Flags().String("level", "", "Memorization level to filter by")
	cmd.Flags().String("committee", "", "Exam committee to filter by")

	return cmd
}
