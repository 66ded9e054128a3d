package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SteveSandersonMS/witx-bindgen/internal/diagfmt"
	"github.com/SteveSandersonMS/witx-bindgen/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.profile",
	Short: "Parse a profile file and output its declaration tree",
	Long:  `Parse reads a profile file and prints the extend, provide, require, and implement declarations it contains`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Parse(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		opts := diagfmt.PrettyOpts{
			Color:   useColor(cmd, os.Stderr),
			Context: 2,
		}
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
	}

	if result.Profile == nil {
		return fmt.Errorf("parsing failed: %s", filePath)
	}

	switch format {
	case "pretty":
		return diagfmt.FormatProfilePretty(os.Stdout, result.Profile, result.FileSet)
	case "json":
		return diagfmt.FormatProfileJSON(os.Stdout, result.Profile)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
