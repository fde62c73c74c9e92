package lexer

import (
	"lexkit/internal/token"
)

// scanSymbol reads one symbol character, extending to two when the pair is in
// the fixed two-character set. No symbol is longer than two characters.
func (lx *Lexer) scanSymbol() token.Token {
	loc := lx.cursor.Loc()
	first, _ := lx.cursor.Bump()
	text := string(first)

	if second, ok := lx.cursor.Peek(); ok && isTwoRuneSymbol(first, second) {
		lx.cursor.Bump()
		text += string(second)
	}

	return token.Token{
		Kind:     token.Symbol,
		Location: loc,
		Text:     text,
	}
}
