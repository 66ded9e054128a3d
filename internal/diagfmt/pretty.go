package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/SteveSandersonMS/witx-bindgen/internal/diag"
	"github.com/SteveSandersonMS/witx-bindgen/internal/source"
)

// Pretty renders diagnostics in a human-readable form. It walks
// bag.Items() (call bag.Sort() beforehand). Each diagnostic prints as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line with a ^~~~ underline over the span, then
// notes and fixes when enabled.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	f := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)
	path := formatPath(f, opts.PathMode, fs.BaseDir())

	sev := d.Severity.String()
	code := d.Code.ID()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
		code = color.New(color.Faint).Sprint(code)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, start.Line, start.Col, sev, code, d.Message)

	printContext(w, f, start, end, opts)

	if opts.ShowNotes {
		for _, n := range d.Notes {
			ns, _ := fs.Resolve(n.Span)
			fmt.Fprintf(w, "  note: %s:%d:%d: %s\n", path, ns.Line, ns.Col, n.Msg)
		}
	}
	if opts.ShowFixes {
		for _, fix := range d.Fixes {
			fmt.Fprintf(w, "  help: %s\n", fix.Title)
		}
	}
}

// printContext shows up to opts.Context preceding lines, the primary line,
// and the underline. The underline is clipped to the primary line; spans
// reaching past its end still get at least one caret.
func printContext(w io.Writer, f *source.File, start, end source.LineCol, opts PrettyOpts) {
	first := int64(start.Line) - int64(opts.Context)
	if first < 1 {
		first = 1
	}
	for ln := uint32(first); ln <= start.Line; ln++ {
		fmt.Fprintf(w, "%5d | %s\n", ln, f.GetLine(ln))
	}

	line := f.GetLine(start.Line)
	if line == "" && start.Col > 1 {
		return
	}

	startCol := int(start.Col) - 1
	if startCol > len(line) {
		startCol = len(line)
	}
	prefixWidth := runewidth.StringWidth(line[:startCol])

	underlined := 1
	if end.Line == start.Line && end.Col > start.Col {
		endCol := int(end.Col) - 1
		if endCol > len(line) {
			endCol = len(line)
		}
		if width := runewidth.StringWidth(line[startCol:endCol]); width > 1 {
			underlined = width
		}
	}

	marker := "^" + strings.Repeat("~", underlined-1)
	if opts.Color {
		marker = color.New(color.FgRed, color.Bold).Sprint(marker)
	}
	fmt.Fprintf(w, "      | %s%s\n", strings.Repeat(" ", prefixWidth), marker)
}

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}

func formatPath(f *source.File, mode PathMode, baseDir string) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", baseDir)
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}
