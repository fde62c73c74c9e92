package lexer

import "unicode"

// ===== character classifiers =====

// isDec is ASCII-only: the number scanner feeds its buffer straight into
// strconv/math.big parsing, which accepts only ASCII digits.
func isDec(r rune) bool { return r >= '0' && r <= '9' }

// isSpace is the scanner's general whitespace predicate.
func isSpace(r rune) bool { return unicode.IsSpace(r) }

// isSymbolRune reports whether r belongs to the fixed symbol character set.
// '#' is a member so identifiers split before a trailing comment marker; the
// dispatch loop claims '#' for comments before symbols are considered.
func isSymbolRune(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '=', '>', '<', '!', '?', '.', ',', ';', ':',
		'(', ')', '[', ']', '{', '}', '&', '|', '^', '%', '~', '#':
		return true
	default:
		return false
	}
}

// twoRuneSymbols is the complete two-character symbol set.
var twoRuneSymbols = map[string]bool{
	"==": true, "!=": true, ">=": true, "<=": true, "->": true,
	"=>": true, "*=": true, "-=": true, "+=": true, "/=": true,
}

func isTwoRuneSymbol(a, b rune) bool {
	return twoRuneSymbols[string([]rune{a, b})]
}
