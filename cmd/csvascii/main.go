// Package main provides the CLI entry point for csvascii.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/quarzz/appodeal/internal/logging"
	"github.com/quarzz/appodeal/pkg/csvascii"
	"github.com/quarzz/appodeal/pkg/csvascii/models"
	"github.com/quarzz/appodeal/pkg/csvascii/output"
	"github.com/spf13/cobra"
)

// flags holds the command-line settings of one invocation.
type flags struct {
	outputPath string
	format     string
	sheet      string
	sheetsDir  string
	encoding   string
	logLevel   string
	seqURL     string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags

	rootCmd := &cobra.Command{
		Use:   "csvascii [input.csv]",
		Short: "Render a typed CSV table as an ASCII grid",
		Long: `csvascii reads a ';'-separated file whose header row declares column
types (int, string, money), validates every row and prints the table as
a bordered ASCII grid. Excel workbooks are read the same way.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, f)
		},
	}

	rootCmd.Flags().StringVarP(&f.outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().StringVar(&f.format, "format", "auto", "Input format: auto, csv, xlsx")
	rootCmd.Flags().StringVar(&f.sheet, "sheet", "", "Worksheet to read from a workbook (default: first)")
	rootCmd.Flags().StringVar(&f.sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")
	rootCmd.Flags().StringVar(&f.encoding, "encoding", "", "Text encoding of CSV input (default: UTF-8)")
	rootCmd.Flags().StringVar(&f.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&f.seqURL, "seq-url", os.Getenv("CSVASCII_SEQ_URL"), "Seq server URL for log shipping")

	return rootCmd
}

func run(cmd *cobra.Command, args []string, f flags) error {
	inputPath := args[0]

	// Validate input file exists
	if info, err := os.Stat(inputPath); err != nil || !info.Mode().IsRegular() {
		return fmt.Errorf("no suitable input path provided: %s", inputPath)
	}

	format, err := csvascii.ParseFormat(f.format)
	if err != nil {
		return err
	}
	if _, err := logging.ParseLevel(f.logLevel); err != nil {
		return err
	}

	// Past argument checks, failures are about the input, not usage
	cmd.SilenceUsage = true

	logger, closeFn, err := logging.SetupLogger(logging.Config{
		Level:  f.logLevel,
		SeqURL: f.seqURL,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	defer closeFn()

	opts := csvascii.Options{
		Format:   format,
		Sheet:    f.sheet,
		Encoding: f.encoding,
		Logger:   logger,
	}

	if f.sheetsDir != "" {
		wb, err := csvascii.ReadWorkbook(inputPath, opts)
		if err != nil {
			return readFailure(logger, inputPath, err)
		}
		if err := writeSheetFiles(wb, f.sheetsDir); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
		logger.Info("sheets written", "dir", f.sheetsDir, "count", len(wb.Sheets))
		return nil
	}

	table, err := csvascii.Read(inputPath, opts)
	if err != nil {
		return readFailure(logger, inputPath, err)
	}

	// Write output
	if f.outputPath != "" {
		if err := os.WriteFile(f.outputPath, []byte(output.ToASCII(table)), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	return output.WriteASCII(cmd.OutOrStdout(), table)
}

// readFailure logs the detailed cause and returns the one-line diagnostic.
func readFailure(logger *slog.Logger, path string, err error) error {
	logger.Debug("read failed", "path", path, "error", err)
	if errors.Is(err, csvascii.ErrFileNotFound) {
		return fmt.Errorf("no suitable input path provided: %s", path)
	}
	return fmt.Errorf("unable to read provided table: %w", err)
}

func writeSheetFiles(wb *models.Workbook, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, sheet := range wb.Sheets {
		filename := filepath.Join(dir, sanitizeFilename(sheet.Name)+".txt")
		if err := writeTableFile(filename, sheet.Table); err != nil {
			return err
		}
	}

	return nil
}

func writeTableFile(filename string, table *models.Table) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	return output.WriteASCII(file, table)
}
