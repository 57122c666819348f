package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "netpbm",
	Short:         "Filter and convert P3/P6 portable pixmaps",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func main() {
	rootCmd.SetOut(os.Stdout)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		exitCodeError := &ExitCodeError{}
		if errors.As(err, &exitCodeError) {
			os.Exit(exitCodeError.ExitCode())
		}
		os.Exit(ExitCodeInvalidOperation)
	}
}
