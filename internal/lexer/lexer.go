// Package lexer converts raw text into a flat sequence of typed tokens.
// Invariants:
//   - \r\n is normalized to \n before any character is classified.
//   - Tokens come out ordered by ascending source position.
//   - Every token's location is the position of its first character.
//   - Scanning stops at the first error; no tokens are returned with it.
//
// Tokenize has no shared mutable state, so independent inputs may be scanned
// from any number of goroutines concurrently.
package lexer

import (
	"strings"

	"lexkit/internal/source"
	"lexkit/internal/token"
)

// Lexer scans a single input left to right. The zero value is not usable;
// construct one with New.
type Lexer struct {
	cursor Cursor
}

// New creates a lexer over contents, normalizing line endings up front.
func New(contents string, start source.Location) *Lexer {
	normalized := strings.ReplaceAll(contents, "\r\n", "\n")
	return &Lexer{cursor: NewCursor([]rune(normalized), start)}
}

// Tokenize scans contents eagerly into a token sequence, starting the
// row/column bookkeeping at the caller-supplied location. On failure only the
// error is returned.
func Tokenize(contents string, start source.Location) ([]token.Token, error) {
	return New(contents, start).Tokenize()
}

// Tokenize runs the dispatch loop to the end of input or the first error.
func (lx *Lexer) Tokenize() ([]token.Token, error) {
	var tokens []token.Token

	for {
		c, ok := lx.cursor.Peek()
		if !ok {
			return tokens, nil
		}

		var (
			tok token.Token
			err error
		)

		switch {
		case c == '#':
			tok = lx.scanComment()
		case c == '"':
			tok, err = lx.scanString()
		case isSpace(c):
			lx.cursor.Bump()
			continue
		case lx.startsNumber(c):
			tok, err = lx.scanNumber()
		case isSymbolRune(c):
			tok = lx.scanSymbol()
		default:
			tok = lx.scanIdent()
		}

		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}

// startsNumber decides whether the current character begins a numeric
// literal: a digit starts one outright; '-' and '.' start one only when the
// character immediately after them is a digit. The lookahead never reads past
// the end of input.
func (lx *Lexer) startsNumber(c rune) bool {
	if isDec(c) {
		return true
	}
	if c != '-' && c != '.' {
		return false
	}
	next, ok := lx.cursor.PeekAt(1)
	return ok && isDec(next)
}
