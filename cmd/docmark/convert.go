package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docmark/internal/batch"
	"github.com/pdiddy/docmark/internal/extract"
	"github.com/pdiddy/docmark/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input>",
	Short: "Convert a file or directory of files to Markdown",
	Long: `Convert transforms a document into Markdown, recovering headings, lists,
and tables from the source structure. With a directory input, every
supported file under it is converted through a bounded worker pool,
outputs land in a reserved markdown/ subdirectory, and converted sources
move to processed/. Per-file failures are counted and reported without
aborting the batch.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "output file (single-file input only)")
	convertCmd.Flags().String("output-dir", "", "output directory")
	convertCmd.Flags().String("sheet", "", "convert only the named spreadsheet sheet")
	convertCmd.Flags().BoolP("recursive", "r", false, "recurse into subdirectories")
	convertCmd.Flags().Int("workers", 0, "maximum concurrent conversions (default 4)")
	convertCmd.Flags().String("report", "", "write a YAML run report to this file")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := args[0]
	output, _ := cmd.Flags().GetString("output")
	outputDir, _ := cmd.Flags().GetString("output-dir")
	sheet, _ := cmd.Flags().GetString("sheet")
	recursive, _ := cmd.Flags().GetBool("recursive")
	workers, _ := cmd.Flags().GetInt("workers")
	reportPath, _ := cmd.Flags().GetString("report")

	info, err := os.Stat(input)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("input %s: %w", input, types.ErrInputNotFound)
		}
		return fmt.Errorf("input %s: %w", input, err)
	}

	reg := extract.NewRegistry(extract.Options{Sheet: sheet})

	if !info.IsDir() {
		return convertSingle(cmd, reg, input, output, outputDir)
	}

	if output != "" {
		return fmt.Errorf("--output requires a file input, got directory %s: %w", input, types.ErrInvalidUsage)
	}

	cfg := types.ConvertConfig{
		Workers:          workers,
		Recursive:        recursive,
		OutputDirName:    viper.GetString("convert.output_dir_name"),
		ProcessedDirName: viper.GetString("convert.processed_dir_name"),
		Sheet:            sheet,
	}
	if cfg.Workers == 0 {
		cfg.Workers = viper.GetInt("convert.workers")
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}

	orch := &batch.Orchestrator{Registry: reg, Config: cfg}
	result, outcomes, err := orch.Run(input, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if reportPath != "" {
		if err := batch.WriteReport(reportPath, input, result, outcomes); err != nil {
			return err
		}
	}
	if result.HasFailures() {
		return fmt.Errorf("%d of %d files failed", result.Failed, result.Total())
	}
	return nil
}

// convertSingle handles the one-file mode: explicit --output wins, then
// --output-dir with the source stem, then a sibling .md file.
func convertSingle(cmd *cobra.Command, reg extract.Registry, input, output, outputDir string) error {
	res, err := batch.ConvertFile(reg, input)
	if err != nil {
		return err
	}

	if output == "" {
		stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + ".md"
		if outputDir != "" {
			if err := os.MkdirAll(outputDir, 0o755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}
			output = filepath.Join(outputDir, stem)
		} else {
			output = filepath.Join(filepath.Dir(input), stem)
		}
	}
	res.OutputPath = output

	if err := os.WriteFile(res.OutputPath, []byte(res.Markdown), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "converted: %s -> %s\n", res.SourcePath, res.OutputPath)
	return nil
}
