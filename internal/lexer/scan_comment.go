package lexer

import (
	"strings"

	"lexkit/internal/token"
)

// scanComment consumes the leading '#' and everything up to (not including)
// the next newline. The token text is the body trimmed of surrounding
// whitespace; a comment cut short by end of input is empty, not an error.
func (lx *Lexer) scanComment() token.Token {
	loc := lx.cursor.Loc()
	lx.cursor.Bump() // '#'

	var body []rune
	for {
		c, ok := lx.cursor.Peek()
		if !ok || c == '\n' {
			break
		}
		body = append(body, c)
		lx.cursor.Bump()
	}

	return token.Token{
		Kind:     token.Comment,
		Location: loc,
		Text:     strings.TrimSpace(string(body)),
	}
}
