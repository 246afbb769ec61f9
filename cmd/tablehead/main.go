// Package main provides the CLI entry point for tablehead-go.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/osada9000/tablehead-go/internal/config"
	"github.com/osada9000/tablehead-go/pkg/tablehead"
	"github.com/osada9000/tablehead-go/pkg/tablehead/output"
	"github.com/osada9000/tablehead-go/pkg/tablehead/transform"
)

var (
	cfgFile    string
	outputPath string
	pretty     bool
	scriptPath string
	report     bool
	write      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tablehead [input.xlsx]",
		Short: "Infer table headers from Excel files",
		Long: `tablehead-go locates the header rows of a spreadsheet (color markers,
cell density or type transitions), flattens multi-level merged headers
into clean column names and outputs the header-less table as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVar(&cfgFile, "config", "", "Config file path (default: tablehead.yaml)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().String("mode", "span", "Stitch mode: pair, span")
	rootCmd.Flags().String("sheet", "", "Worksheet to read (default: active sheet)")
	rootCmd.Flags().Int("scan-rows", 0, "Rows scanned by the header locator")
	rootCmd.Flags().StringSlice("keywords", nil, "Header keywords for the backtrack rule")
	rootCmd.Flags().StringVar(&scriptPath, "script", "", "Starlark transform script to apply to the table")
	rootCmd.Flags().BoolVar(&report, "report", false, "Append a statistics sheet to the workbook")
	rootCmd.Flags().BoolVar(&write, "write", false, "Write workbook changes back via a staged temp file")
	rootCmd.Flags().BoolP("verbose", "v", false, "Verbose logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := tablehead.Options{
		Infer:  cfg.Params(),
		Sheet:  cfg.Sheet,
		Logger: logger,
	}

	wb, err := tablehead.Open(inputPath, opts)
	if err != nil {
		return fmt.Errorf("failed to open workbook: %w", err)
	}
	defer wb.Close()

	table, err := wb.Table()
	if err != nil {
		return fmt.Errorf("inference failed: %w", err)
	}

	if scriptPath != "" {
		script, err := os.ReadFile(scriptPath)
		if err != nil {
			return fmt.Errorf("failed to read script: %w", err)
		}
		res, err := transform.New().Apply(table, string(script))
		if err != nil {
			wb.LogError(err.Error())
			return err
		}
		table.Rows = res.Rows
		if res.Value != nil {
			fmt.Fprintf(os.Stderr, "result: %v\n", res.Value)
		}
	}

	if report {
		name, err := wb.WriteSummary(table)
		if err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		logger.Info("report written", "sheet", name)
	}

	if write {
		staged, err := wb.Stage()
		if err != nil {
			return fmt.Errorf("failed to stage workbook: %w", err)
		}
		if err := staged.Confirm(); err != nil {
			staged.Discard()
			return fmt.Errorf("failed to confirm staged write: %w", err)
		}
	}

	jsonData, err := output.TableToJSON(table, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(jsonData))
	return nil
}
