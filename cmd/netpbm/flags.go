package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/Dillon-Roller/CSC-215-Projects/internal/pipeline"
)

var (
	verbose    bool
	workers    int
	maxSamples int
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log decode, encode and every operation to stderr")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "Row bands processed in parallel (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().IntVar(&maxSamples, "max-samples", 0, "Largest buffer allocation in samples (0 = default)")
}

// setupLogging installs a stderr logger when --verbose is set.
func setupLogging() {
	if !verbose {
		pipeline.SetLogger(nil)
		return
	}
	pipeline.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}

func pipelineOptions(o *pipeline.Options) {
	o.Workers = workers
	o.MaxSamples = maxSamples
}

// opListValue collects repeated --op flags in the order given.
type opListValue struct {
	ops *[]pipeline.Op
}

var _ pflag.Value = (*opListValue)(nil)

func newOpListValue(ops *[]pipeline.Op) *opListValue {
	return &opListValue{ops: ops}
}

func (v *opListValue) Set(s string) error {
	op, err := pipeline.ParseOp(s)
	if err != nil {
		return err
	}
	*v.ops = append(*v.ops, op)
	return nil
}

func (v *opListValue) String() string {
	if v.ops == nil {
		return ""
	}
	names := make([]string, len(*v.ops))
	for i, op := range *v.ops {
		names[i] = op.String()
	}
	return "[" + strings.Join(names, " ") + "]"
}

func (v *opListValue) Type() string {
	return "op"
}
