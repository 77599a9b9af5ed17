// Package main provides the CLI entry point for gridshift.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/gridshift-go/internal/logger"
	"github.com/ukaji3/gridshift-go/pkg/gridshift"
	"github.com/ukaji3/gridshift-go/pkg/gridshift/config"
	"github.com/ukaji3/gridshift-go/pkg/gridshift/loader"
	"github.com/ukaji3/gridshift-go/pkg/gridshift/models"
	"github.com/ukaji3/gridshift-go/pkg/gridshift/output"
	"go.uber.org/zap"
)

var (
	outputPath string
	pretty     bool
	sheetName  string
	op         string
	at         int
	count      int
	to         int
	cut        bool
	configPath string
	debug      bool
	sheetsDir  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gridshift [input.xlsx]",
		Short: "Insert, delete, copy or cut rows and columns of an Excel sheet",
		Long: `gridshift loads an Excel workbook, applies one structural edit to a sheet
and writes the updated model (cells, tables, merges, links, drawings,
names and calc chain) as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet to edit (default: first sheet)")
	rootCmd.Flags().StringVar(&op, "op", "", "Edit: insert-rows, insert-cols, delete-rows, delete-cols, copy-rows, copy-cols")
	rootCmd.Flags().IntVar(&at, "at", 1, "First row or column of the edit")
	rootCmd.Flags().IntVar(&count, "count", 1, "Number of rows or columns")
	rootCmd.Flags().IntVar(&to, "to", 0, "Destination row or column for copy-rows and copy-cols")
	rootCmd.Flags().BoolVar(&cut, "cut", false, "Move instead of copy for copy-rows and copy-cols")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Config file (.toml, .yaml or .yml)")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Log every edit at debug level")
	rootCmd.Flags().StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")
	_ = rootCmd.MarkFlagRequired("op")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	// Validate input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log, closeLog, err := logger.New(debug || cfg.Log.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer closeLog()

	wb, err := loader.Load(inputPath, log)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}
	if sheetName == "" && len(wb.Sheets) > 0 {
		sheetName = wb.Sheets[0].Name
	}

	ed, err := gridshift.NewEditor(wb, sheetName, cfg.Options(log))
	if err != nil {
		return err
	}
	if err := apply(ed, op, at, count, to, cut); err != nil {
		return err
	}
	log.Info("edit applied", zap.String("op", op), zap.String("sheet", sheetName),
		zap.Int("at", at), zap.Int("count", count))

	// Serialize to JSON
	jsonData, err := output.ToJSON(wb, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	// Write output
	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if sheetsDir == "" {
		fmt.Println(string(jsonData))
	}

	// Write per-sheet files
	if sheetsDir != "" {
		if err := writeSheetFiles(wb, sheetsDir); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}

	return nil
}

// apply runs one named edit. Copies take count rows or columns starting at
// at and place them at to.
func apply(ed *gridshift.Editor, op string, at, count, to int, cut bool) error {
	switch op {
	case "insert-rows":
		return ed.InsertRows(at, count)
	case "insert-cols":
		return ed.InsertColumns(at, count)
	case "delete-rows":
		return ed.DeleteRows(at, count)
	case "delete-cols":
		return ed.DeleteColumns(at, count)
	case "copy-rows":
		return ed.CopyRows(at, at+count-1, to, cut)
	case "copy-cols":
		return ed.CopyColumns(at, at+count-1, to, cut)
	default:
		return fmt.Errorf("invalid op: %s (must be insert-rows, insert-cols, delete-rows, delete-cols, copy-rows or copy-cols)", op)
	}
}

func writeSheetFiles(wb *models.Workbook, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, sheet := range wb.Sheets {
		jsonData, err := output.SheetToJSON(sheet, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, sheet.Name+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}
