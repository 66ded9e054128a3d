package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SteveSandersonMS/witx-bindgen/internal/driver"
	"github.com/SteveSandersonMS/witx-bindgen/internal/pipeline"
	"github.com/SteveSandersonMS/witx-bindgen/internal/source"
	"github.com/SteveSandersonMS/witx-bindgen/internal/ui"
)

type checkOutcome struct {
	fs      *source.FileSet
	results []driver.CheckResult
	err     error
}

// runCheckFiles runs the batch check, with a live progress display when the
// UI mode and terminal allow it.
func runCheckFiles(cmd *cobra.Command, files []string, opts driver.CheckOptions, mode uiMode, quiet bool) (checkOutcome, error) {
	ctx := cmd.Context()
	if quiet || !shouldUseTUI(mode) {
		fs, results, err := driver.CheckFiles(ctx, files, opts)
		return checkOutcome{fs: fs, results: results}, err
	}

	events := make(chan pipeline.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = pipeline.ChannelSink{Ch: events}
		fs, results, err := driver.CheckFiles(ctx, files, optsCopy)
		outcomeCh <- checkOutcome{fs: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("checking profiles", files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome, uiErr
	}
	return outcome, outcome.err
}
