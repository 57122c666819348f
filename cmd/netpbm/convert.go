package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dillon-Roller/CSC-215-Projects/internal/pipeline"
)

var convertOps []pipeline.Op

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Apply operations in order and write one ASCII or binary image",
	Example: `  netpbm convert -i photo.ppm -o out -f binary --op negate --op brighten=40
  netpbm convert -i photo.ppm -o gray --op contrast --op resize=320x240,bicubic`,
	Args: cobra.NoArgs,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("input", "i", "", "Input P3 or P6 file")
	convertCmd.Flags().StringP("output", "o", "", "Output name; .ppm or .pgm is appended")
	convertCmd.Flags().StringP("format", "f", "ascii", "Output encoding (ascii, binary)")
	convertCmd.Flags().Var(newOpListValue(&convertOps), "op",
		"Operation, repeatable and applied in order: negate, brighten=N, sharpen, smooth, grayscale, contrast, resize=WxH[,interp]")
	convertCmd.MarkFlagRequired("input")
	convertCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputName, _ := cmd.Flags().GetString("output")
	formatStr, _ := cmd.Flags().GetString("format")

	setupLogging()

	output, err := pipeline.ParseOutput(formatStr)
	if err != nil {
		return withExitCode(err)
	}
	plan := pipeline.Plan{Ops: convertOps, Output: output}

	result, err := pipeline.RunFile(inputPath, outputName, plan, pipelineOptions)
	if err != nil {
		return withExitCode(fmt.Errorf("conversion: %w", err))
	}

	cmd.Printf("Applied %d operation(s) to %s\n", len(plan.Ops), inputPath)
	cmd.Printf("Output: %s (%s, %dx%d)\n", result.Path, result.Format, result.Cols, result.Rows)
	return nil
}
