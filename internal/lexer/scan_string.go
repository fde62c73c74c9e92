package lexer

import (
	"lexkit/internal/diag"
	"lexkit/internal/token"
)

// scanString consumes a double-quoted literal. A quote whose preceding
// accumulated character is a backslash is kept literally and the backslash is
// dropped, so \" decodes to ". Everything else, including '#' and newlines,
// is literal inside the quotes. Running out of input before the closing quote
// fails at the opening quote's location.
func (lx *Lexer) scanString() (token.Token, error) {
	loc := lx.cursor.Loc()
	lx.cursor.Bump() // opening '"'

	var buf []rune
	closed := false
	for {
		c, ok := lx.cursor.Peek()
		if !ok {
			break
		}
		if c == '"' {
			if len(buf) == 0 || buf[len(buf)-1] != '\\' {
				closed = true
				lx.cursor.Bump()
				break
			}
			buf = buf[:len(buf)-1] // drop the escaping backslash
		}
		buf = append(buf, c)
		lx.cursor.Bump()
	}

	if !closed {
		return token.Token{}, diag.Errorf(diag.LexUnclosedString, loc, "Unclosed string")
	}

	return token.Token{
		Kind:     token.StringLit,
		Location: loc,
		Text:     string(buf),
	}, nil
}
