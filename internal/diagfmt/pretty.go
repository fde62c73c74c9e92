package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"lexkit/internal/diag"
	"lexkit/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
	codeColor = color.New(color.Faint)
)

// Pretty renders diagnostics in a human-readable form, one per line:
//
//	<path>:<line>:<col>: <SEVERITY> <CODE>: <message>
//
// followed (optionally) by the offending source line with a caret under the
// reported column, and by indented notes. Lines and columns print 1-based;
// the stored locations stay 0-based. Expects bag.Sort() to have run already
// if stable ordering matters.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeDiagnostic(w, d, fs, opts)
	}
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	fmt.Fprintf(w, "%s: %s %s: %s\n",
		formatLoc(d.Loc),
		severityLabel(d.Severity, opts.Color),
		codeLabel(d.Code, opts.Color),
		d.Message)

	if opts.Preview && fs != nil {
		writePreview(w, d.Loc, fs)
	}

	for _, n := range d.Notes {
		fmt.Fprintf(w, "  %s: note: %s\n", formatLoc(n.Loc), n.Msg)
	}
}

// writePreview prints the source line the diagnostic points at, with a caret
// aligned under the reported column. Wide runes are measured with runewidth
// so the caret stays under the right character.
func writePreview(w io.Writer, loc source.Location, fs *source.FileSet) {
	if loc.Path == "" {
		return
	}
	file, ok := fs.GetByPath(loc.Path)
	if !ok {
		return
	}
	line := file.Line(loc.Row)
	if line == "" && loc.Column > 0 {
		return
	}

	prefix := line
	if runes := []rune(line); loc.Column <= len(runes) {
		prefix = string(runes[:loc.Column])
	}

	fmt.Fprintf(w, "  %s\n", line)
	fmt.Fprintf(w, "  %s^\n", strings.Repeat(" ", runewidth.StringWidth(prefix)))
}

func formatLoc(loc source.Location) string {
	if loc.Path != "" {
		return fmt.Sprintf("%s:%d:%d", loc.Path, loc.Row+1, loc.Column+1)
	}
	return fmt.Sprintf("%d:%d", loc.Row+1, loc.Column+1)
}

func severityLabel(sev diag.Severity, colored bool) string {
	if !colored {
		return sev.String()
	}
	switch sev {
	case diag.SevError:
		return errColor.Sprint(sev.String())
	case diag.SevWarning:
		return warnColor.Sprint(sev.String())
	default:
		return infoColor.Sprint(sev.String())
	}
}

func codeLabel(code diag.Code, colored bool) string {
	if !colored {
		return code.ID()
	}
	return codeColor.Sprint(code.ID())
}
