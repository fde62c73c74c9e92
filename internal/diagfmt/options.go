package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color   bool
	Preview bool // show the offending source line with a caret
}
