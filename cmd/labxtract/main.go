// Package main provides the CLI entry point for labxtract-go.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agrolab/labxtract-go/internal/config"
	"github.com/agrolab/labxtract-go/pkg/labxtract"
	"github.com/agrolab/labxtract-go/pkg/labxtract/excelio"
	"github.com/agrolab/labxtract-go/pkg/labxtract/models"
	"github.com/agrolab/labxtract-go/pkg/labxtract/output"
)

var (
	outputPath string
	pretty     bool
	configPath string
	allSheets  bool
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "labxtract [input.xlsx]",
		Short: "Extract chemical parameters from lab report spreadsheets",
		Long: `labxtract-go scans soil/leaf analysis spreadsheets of unknown layout,
recognizes chemical parameter labels (pH, nitrogen, phosphorus, ...) and
outputs the extracted values with confidence and cell provenance as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to yaml tuning/synonym overrides")
	rootCmd.Flags().BoolVar(&allSheets, "all-sheets", false, "Extract from every sheet instead of the selected one")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	opts := labxtract.DefaultOptions()
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg.Apply(&opts)
		logger.Info("applied tuning overrides", zap.String("config", configPath))
	}

	wb, err := excelio.Load(inputPath)
	if err != nil {
		return err
	}
	logger.Info("workbook loaded",
		zap.String("path", inputPath),
		zap.Strings("sheets", wb.SheetNames()))

	var jsonData []byte
	if allSheets {
		jsonData, err = extractAll(wb, opts, logger)
	} else {
		jsonData, err = extractOne(wb, opts, logger)
	}
	if err != nil {
		return err
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

func extractOne(wb *models.Workbook, opts labxtract.Options, logger *zap.Logger) ([]byte, error) {
	res, err := labxtract.Extract(wb, opts)
	if err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}
	logResult(logger, res)
	return output.ToJSON(res, pretty)
}

func extractAll(wb *models.Workbook, opts labxtract.Options, logger *zap.Logger) ([]byte, error) {
	results := make(map[string]*models.ExtractionResult, len(wb.Sheets))
	for _, name := range wb.SheetNames() {
		res, err := labxtract.ExtractSheet(wb, name, opts)
		if err != nil {
			return nil, fmt.Errorf("extraction failed for sheet %q: %w", name, err)
		}
		logResult(logger, res)
		results[name] = res
	}
	return output.SheetResultsToJSON(results, pretty)
}

func logResult(logger *zap.Logger, res *models.ExtractionResult) {
	logger.Info("extraction completed",
		zap.String("extracted_from", res.ExtractedFrom),
		zap.Int("confidence", res.Confidence),
		zap.Int("parameters", len(res.Values)),
		zap.String("layout", string(res.Layout)),
		zap.Any("cell_refs", res.CellRefs))
	if len(res.Values) == 0 {
		logger.Warn("no readable parameters found",
			zap.String("extracted_from", res.ExtractedFrom))
	}
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
