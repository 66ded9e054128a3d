package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SteveSandersonMS/witx-bindgen/internal/diag"
	"github.com/SteveSandersonMS/witx-bindgen/internal/diagfmt"
	"github.com/SteveSandersonMS/witx-bindgen/internal/driver"
	"github.com/SteveSandersonMS/witx-bindgen/internal/observ"
	"github.com/SteveSandersonMS/witx-bindgen/internal/project"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [file.profile|directory]",
	Short: "Check profile files for errors",
	Long: `Check parses profile files and reports diagnostics without producing output.

With no argument, check looks for the nearest witx.toml manifest and checks
the profiles it lists. With a directory argument, it checks every *.profile
file under that directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	checkCmd.Flags().Bool("cache", false, "reuse cached results for unchanged files")
	checkCmd.Flags().String("ui", "auto", "progress display (auto|on|off)")
	checkCmd.Flags().String("format", "pretty", "diagnostics format (pretty|json)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	files, err := collectCheckFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no profile files to check")
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	opts := driver.CheckOptions{
		MaxDiagnostics: maxDiagnostics,
		Jobs:           jobs,
	}
	if useCache {
		cache, cerr := driver.OpenDiskCache("witx-bindgen")
		if cerr != nil {
			fmt.Fprintf(os.Stderr, "warning: cache disabled: %v\n", cerr)
		} else {
			opts.Cache = cache
		}
	}

	timer := observ.NewTimer()
	phase := timer.Begin("check")

	outcome, err := runCheckFiles(cmd, files, opts, mode, quiet)
	timer.End(phase, fmt.Sprintf("%d files", len(files)))
	if err != nil {
		return err
	}

	merged := diag.NewBag(maxDiagnostics)
	declTotal := 0
	cachedHits := 0
	failed := 0
	for _, res := range outcome.results {
		merged.Merge(res.Bag)
		declTotal += res.Decls
		if res.Cached {
			cachedHits++
		}
		if res.Bag.HasErrors() {
			failed++
		}
	}
	merged.Sort()

	switch format {
	case "pretty":
		if merged.Len() > 0 {
			popts := diagfmt.PrettyOpts{
				Color:   useColor(cmd, os.Stderr),
				Context: 2,
			}
			diagfmt.Pretty(os.Stderr, merged, outcome.fs, popts)
		}
	case "json":
		jopts := diagfmt.JSONOpts{
			IncludePositions: true,
			Max:              maxDiagnostics,
			IncludeNotes:     true,
			IncludeFixes:     true,
		}
		if err := diagfmt.JSON(os.Stdout, merged, outcome.fs, jopts); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if !quiet && format == "pretty" {
		fmt.Fprintf(os.Stdout, "checked %d files, %d declarations", len(files), declTotal)
		if cachedHits > 0 {
			fmt.Fprintf(os.Stdout, " (%d cached)", cachedHits)
		}
		fmt.Fprintln(os.Stdout)
	}
	if showTimings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	if failed > 0 {
		return fmt.Errorf("check failed: %d of %d files have errors", failed, len(files))
	}
	return nil
}

// collectCheckFiles resolves the check target to a list of profile files.
// No argument means manifest discovery from the working directory.
func collectCheckFiles(args []string) ([]string, error) {
	if len(args) == 0 {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		manifest, err := project.LoadNearest(wd)
		if err != nil {
			return nil, err
		}
		return manifest.ProfileFiles()
	}

	target := args[0]
	st, err := os.Stat(target)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}
	if st.IsDir() {
		return project.ListProfileFiles(target)
	}
	return []string{target}, nil
}
