package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Dillon-Roller/CSC-215-Projects/internal/netpbm"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Inspect a pixmap header",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return withExitCode(fmt.Errorf("%w: %w", netpbm.ErrFileOpen, err))
	}
	defer f.Close()

	h, err := netpbm.ReadHeader(f)
	if err != nil {
		return withExitCode(fmt.Errorf("parsing %s: %w", path, err))
	}
	st, err := f.Stat()
	if err != nil {
		return withExitCode(fmt.Errorf("%w: %w", netpbm.ErrFileOpen, err))
	}

	encoding := "ascii"
	if h.Format.Binary() {
		encoding = "binary"
	}
	cmd.Printf("File:       %s\n", path)
	cmd.Printf("Format:     %s (%s, %d channel(s))\n", h.Format, encoding, h.Channels())
	cmd.Printf("Dimensions: %d x %d\n", h.Cols, h.Rows)
	cmd.Printf("Max value:  %d\n", h.MaxValue)
	if h.Comment != "" {
		cmd.Printf("Comment:    %s\n", h.Comment)
	} else {
		cmd.Println("Comment:    none")
	}
	if h.Format.Binary() {
		cmd.Printf("Payload:    %d bytes\n", h.PayloadSize())
	} else {
		cmd.Printf("Samples:    %d\n", h.PayloadSize())
	}
	cmd.Printf("File size:  %d bytes\n", st.Size())
	return nil
}
