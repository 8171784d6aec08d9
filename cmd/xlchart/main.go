// Package main provides the CLI entry point for xlchart.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/ukaji3/xlchart-go/pkg/xlchart"
	"github.com/ukaji3/xlchart-go/pkg/xlchart/parser"
	"github.com/ukaji3/xlchart-go/pkg/xlchart/server"
)

var (
	outputPath string
	pretty     bool
	format     string
	sheet      string
	ranges     []string
	verbose    bool
	addr       string
	repoDir    string
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := xlchart.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg xlchart.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xlchart",
		Short: "Plot Excel cell ranges as column charts",
		Long: `xlchart reads a sheet of an Excel file and plots selected cell ranges
as a column chart, comparing rows or columns depending on the range shape.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")

	plotCmd := &cobra.Command{
		Use:   "plot [input.xlsx]",
		Short: "Plot ranges of a sheet",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}
	plotCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	plotCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	plotCmd.Flags().StringVar(&format, "format", cfg.Plot.Format, "Output format: json, html, xlsx, text")
	plotCmd.Flags().StringVar(&sheet, "sheet", cfg.Plot.Sheet, "Sheet name (default: active sheet)")
	plotCmd.Flags().StringArrayVarP(&ranges, "range", "r", nil, "Range to plot, e.g. A1:D4 (repeatable)")

	listCmd := &cobra.Command{
		Use:   "list [dir]",
		Short: "List spreadsheet files in a repository directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := cfg.Repository.Dir
			if len(args) == 1 {
				dir = args[0]
			}
			return runList(cmd.OutOrStdout(), dir)
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve repository spreadsheets and charts over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.New(os.Stderr, "", log.LstdFlags)
			logger.Printf("[server] serving %s on %s", repoDir, addr)
			return http.ListenAndServe(addr, server.New(repoDir, cfg.Plot.Sheet, logger))
		},
	}
	serveCmd.Flags().StringVar(&addr, "addr", cfg.Server.Addr, "HTTP listen address")
	serveCmd.Flags().StringVar(&repoDir, "dir", cfg.Repository.Dir, "Repository directory")

	rootCmd.AddCommand(plotCmd, listCmd, serveCmd)
	return rootCmd
}

func runPlot(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	plotFormat, ok := xlchart.ParseFormat(format)
	if !ok {
		return fmt.Errorf("invalid format: %s (must be json, html, xlsx, or text)", format)
	}

	opts := xlchart.DefaultOptions()
	opts.Sheet = sheet
	opts.Selection = ranges
	opts.Format = plotFormat
	opts.Pretty = pretty
	if verbose {
		opts.Logger = log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
	}

	var out io.Writer = cmd.OutOrStdout()
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer f.Close()
		out = f
	} else if plotFormat == xlchart.FormatXLSX {
		return errors.New("xlsx output requires --output")
	}
	opts.Output = out

	if _, err := xlchart.Plot(inputPath, opts); err != nil {
		return fmt.Errorf("plot failed: %w", err)
	}
	return nil
}

func runList(w io.Writer, dir string) error {
	entries, err := parser.ListSpreadsheets(dir)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", dir, err)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("TITLE", "EXT", "SIZE")
	for _, e := range entries {
		t.Row(e.Title, e.Extension, strconv.FormatInt(e.Size, 10))
	}
	_, err = fmt.Fprintln(w, t.Render())
	return err
}
