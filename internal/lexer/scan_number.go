package lexer

import (
	"math/big"
	"strconv"

	"lexkit/internal/diag"
	"lexkit/internal/token"
)

// scanNumber consumes the first character unconditionally (a digit, '-' or
// '.'; the dispatch loop already verified the lookahead) and keeps going
// while digits follow. The first '.' flips the float flag; a second '.'
// fails immediately at the offending dot's position, not at the literal's
// start. Any other character ends the literal.
func (lx *Lexer) scanNumber() (token.Token, error) {
	loc := lx.cursor.Loc()

	var buf []rune
	first, _ := lx.cursor.Bump()
	buf = append(buf, first)
	hasPeriod := first == '.'

	for {
		c, ok := lx.cursor.Peek()
		if !ok {
			break
		}
		if c == '.' {
			if hasPeriod {
				return token.Token{}, diag.Errorf(diag.LexMultipleDecimalPoints, lx.cursor.Loc(),
					"Float literal cannot have multiple decimal points")
			}
			hasPeriod = true
		} else if !isDec(c) {
			break
		}
		buf = append(buf, c)
		lx.cursor.Bump()
	}

	text := string(buf)
	tok := token.Token{Location: loc, Text: text}

	// Parsing cannot fail for the character set consumed above; the error
	// paths guard the invariant rather than the grammar.
	if hasPeriod {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return token.Token{}, diag.Errorf(diag.LexBadNumber, loc, "Malformed float literal %q", text)
		}
		tok.Kind = token.FloatLit
		tok.Float = f
	} else {
		n, ok := new(big.Int).SetString(text, 10)
		if !ok {
			return token.Token{}, diag.Errorf(diag.LexBadNumber, loc, "Malformed integer literal %q", text)
		}
		tok.Kind = token.IntLit
		tok.Int = n
	}

	return tok, nil
}
