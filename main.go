package main

import (
	"context"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"threadex/internal/api"
	"threadex/internal/cache"
	"threadex/internal/config"
	"threadex/internal/export"
	"threadex/internal/thread"
	"threadex/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "threadex",
	Short: "Export Reddit threads to CSV and HTML",
	Long: `threadex fetches a Reddit thread, flattens its comment tree into a
numbered table, and exports it as CSV or an HTML table.

Run without arguments for the interactive TUI, or use "threadex export"
to write CSV files directly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		db, err := cache.Open()
		if err != nil {
			return fmt.Errorf("opening session store: %w", err)
		}
		defer db.Close()

		client := api.NewClient(cfg.UserAgent, cfg.Timeout)
		app := ui.NewApp(cfg, client, db)

		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running UI: %w", err)
		}
		return nil
	},
}

var (
	exportOutput     string
	exportCompact    bool
	exportStripNL    bool
	exportDateFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export <thread-url> [thread-url...]",
	Short: "Export threads to CSV without the TUI",
	Long: `Fetch one or more threads and write each as a CSV file. With a single
URL and --output, the CSV goes to the given path ("-" for stdout);
otherwise filenames are derived from the thread permalinks.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if exportDateFormat != "" {
			if !thread.ValidDateFormat(exportDateFormat) {
				return fmt.Errorf("unknown date format %q (want iso8601, rfc1123 or utc)", exportDateFormat)
			}
			cfg.DateFormat = thread.DateFormat(exportDateFormat)
		}
		if exportOutput != "" && len(args) > 1 {
			return fmt.Errorf("--output only applies to a single URL")
		}

		opts := export.Options{
			Compact:       exportCompact || cfg.Compact,
			StripNewlines: exportStripNL || cfg.StripNewlines,
			DateFormat:    cfg.DateFormat,
		}

		client := api.NewClient(cfg.UserAgent, cfg.Timeout)
		ctx := context.Background()
		threads, errs := client.BatchGetThreads(ctx, args)

		failed := 0
		for i, t := range threads {
			if errs[i] != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", args[i], errs[i])
				failed++
				continue
			}
			exp := thread.NewExport(t.Post, t.Nodes)

			if exportOutput == "-" {
				fmt.Print(export.CSV(exp.Records, opts))
				continue
			}
			path := exportOutput
			if path == "" {
				path = export.DefaultFilename(t.Post)
			}
			if err := export.WriteCSVFile(path, exp.Records, opts); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", args[i], err)
				failed++
				continue
			}
			fmt.Printf("%s: wrote %s (%d comments)\n", args[i], path, len(exp.Records))
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d exports failed", failed, len(args))
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", `output path for a single URL ("-" for stdout)`)
	exportCmd.Flags().BoolVar(&exportCompact, "compact", false, "two-column compact CSV layout")
	exportCmd.Flags().BoolVar(&exportStripNL, "strip-newlines", false, "collapse newlines inside comment bodies")
	exportCmd.Flags().StringVar(&exportDateFormat, "date-format", "", "date format: iso8601, rfc1123 or utc")
	rootCmd.AddCommand(exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
