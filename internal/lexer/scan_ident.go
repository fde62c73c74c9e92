package lexer

import (
	"lexkit/internal/token"
)

// scanIdent accumulates a maximal run of characters that are neither
// whitespace nor symbol characters. The terminator stays unconsumed, so an
// identifier running straight into '#' or a symbol splits cleanly.
func (lx *Lexer) scanIdent() token.Token {
	loc := lx.cursor.Loc()

	var buf []rune
	for {
		c, ok := lx.cursor.Peek()
		if !ok || isSpace(c) || isSymbolRune(c) {
			break
		}
		buf = append(buf, c)
		lx.cursor.Bump()
	}

	return token.Token{
		Kind:     token.Ident,
		Location: loc,
		Text:     string(buf),
	}
}
