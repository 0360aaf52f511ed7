// Command ingest is the cricket stats operator CLI.
//
// Usage:
//
//	cricket-ingest schema
//	cricket-ingest refresh --show-log
//	cricket-ingest seed
//	cricket-ingest query "SELECT name, country FROM players"
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/cricket-stats/internal/app"
	"github.com/riskibarqy/cricket-stats/internal/config"
	"github.com/riskibarqy/cricket-stats/internal/domain/console"
	"github.com/riskibarqy/cricket-stats/internal/platform/logging"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:           "cricket-ingest",
		Short:         "Cricket stats ingestion CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(schemaCmd())
	root.AddCommand(refreshCmd())
	root.AddCommand(seedCmd())
	root.AddCommand(queryCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func schemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Create any missing tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWithApp(cmd.Context(), func(ctx context.Context, a *app.App, logger *logging.Logger) error {
				tables, err := a.EnsureSchema(ctx)
				if err != nil {
					return err
				}
				logger.Info("schema ready", "tables", strings.Join(tables, ","))
				return nil
			})
		},
	}
}

func refreshCmd() *cobra.Command {
	var showLog bool
	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Fetch matches, players and scorecards from Cricbuzz",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWithApp(cmd.Context(), func(ctx context.Context, a *app.App, logger *logging.Logger) error {
				if _, err := a.EnsureSchema(ctx); err != nil {
					return err
				}

				report, err := a.Ingestion.Refresh(ctx)
				if showLog && report.Output != "" {
					fmt.Fprint(cmd.OutOrStdout(), report.Output)
				}
				if err != nil {
					return err
				}

				logger.Info("refresh finished",
					"run_id", report.RunID,
					"duration", report.Duration().Round(time.Millisecond),
					"summary", report.Summary(),
				)
				for _, e := range report.Errors {
					logger.Error("refresh error", "error", e)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&showLog, "show-log", false, "Print the human-readable run log")
	return cmd
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the bundled sample dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWithApp(cmd.Context(), func(ctx context.Context, a *app.App, logger *logging.Logger) error {
				if _, err := a.EnsureSchema(ctx); err != nil {
					return err
				}

				start := time.Now()
				report, err := a.SeedSample(ctx)
				if err != nil {
					return err
				}
				logger.Info("seed finished", "duration", time.Since(start).Round(time.Millisecond), "summary", report.Summary())
				for _, e := range report.Errors {
					logger.Error("seed error", "error", e)
				}
				return nil
			})
		},
	}
}

func queryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query <select>",
		Short: "Run a read-only SELECT and print the rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(cmd.Context(), func(ctx context.Context, a *app.App, _ *logging.Logger) error {
				result, err := a.Console.RunSelect(ctx, args[0])
				if err != nil {
					return err
				}
				return printResultSet(cmd.OutOrStdout(), result)
			})
		},
	}
}

func runWithApp(parent context.Context, fn func(ctx context.Context, a *app.App, logger *logging.Logger) error) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.NewJSON(cfg.LogLevel).With("service", cfg.ServiceName, "command", "ingest")
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("build app: %w", err)
	}
	defer func() { _ = a.Close() }()

	return fn(ctx, a, logger)
}

func printResultSet(w io.Writer, result console.ResultSet) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(result.Columns, "\t"))
	for _, row := range result.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			if v == nil {
				cells[i] = "NULL"
				continue
			}
			cells[i] = fmt.Sprint(v)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	fmt.Fprintf(tw, "(%d rows)\n", len(result.Rows))
	return tw.Flush()
}
