package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dillon-Roller/CSC-215-Projects/internal/pipeline"
)

var runCmd = &cobra.Command{
	Use:   "run [options] -oa|-ob outputname inputname.ppm",
	Short: "Apply operations using single-letter positional options",
	Long: `Apply operations in the order given, then write the image once.

  -n      negate
  -b N    brighten by N (may be negative)
  -p      sharpen
  -s      smooth
  -g      grayscale
  -c      contrast
  -r WxH  resize (nearest neighbour)
  -oa     write ASCII (P3, or P2 once grayscaled)
  -ob     write binary (P6, or P5 once grayscaled)

Long flags may be mixed in anywhere in --name=value form, e.g. --workers=4.`,
	DisableFlagParsing: true,
	RunE:               runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	var long, short []string
	for _, a := range args {
		if a == "--help" {
			return cmd.Help()
		}
		if strings.HasPrefix(a, "--") {
			long = append(long, a)
		} else {
			short = append(short, a)
		}
	}
	if err := cmd.InheritedFlags().Parse(long); err != nil {
		return newExitCodeError(err, ExitCodeInvalidOperation)
	}
	setupLogging()

	inv, err := pipeline.ParseArgs(short)
	if err != nil {
		return withExitCode(err)
	}

	result, err := pipeline.RunFile(inv.InputPath, inv.OutputName, inv.Plan, pipelineOptions)
	if err != nil {
		return withExitCode(fmt.Errorf("%s: %w", inv.InputPath, err))
	}
	cmd.Printf("Output: %s (%s, %dx%d)\n", result.Path, result.Format, result.Cols, result.Rows)
	return nil
}
