package token

import (
	"fmt"
	"math/big"
	"strconv"

	"lexkit/internal/diag"
	"lexkit/internal/source"
)

// Token is a single lexeme with its starting location.
type Token struct {
	Kind     Kind
	Location source.Location
	Text     string
	Int      *big.Int // set iff Kind == IntLit
	Float    float64  // set iff Kind == FloatLit
}

// Describe renders the token for error messages, e.g. `identifier 'foo'` or
// `string "bar"`. String-ish payloads quote with ", the rest with '.
func (t Token) Describe() string {
	switch t.Kind {
	case StringLit, Comment:
		return fmt.Sprintf("%s \"%s\"", t.Kind.label(), t.Text)
	case IntLit:
		return fmt.Sprintf("%s '%s'", t.Kind.label(), t.Int)
	case FloatLit:
		return fmt.Sprintf("%s '%s'", t.Kind.label(), strconv.FormatFloat(t.Float, 'g', -1, 64))
	default:
		return fmt.Sprintf("%s '%s'", t.Kind.label(), t.Text)
	}
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q) @ %s", t.Kind, t.Text, t.Location)
}

// mismatch builds the type-mismatch error for the Expect* accessors.
func (t Token) mismatch(expected string) *diag.Error {
	return diag.Errorf(diag.TokTypeMismatch, t.Location,
		"Expected %s, got %s", expected, t.Describe())
}

// ExpectString returns the decoded string payload, or a type-mismatch error
// at the token's location. The expected label goes into the error message.
func (t Token) ExpectString(expected string) (string, error) {
	if t.Kind != StringLit {
		return "", t.mismatch(expected)
	}
	return t.Text, nil
}

// ExpectComment returns the trimmed comment text, or a type-mismatch error.
func (t Token) ExpectComment(expected string) (string, error) {
	if t.Kind != Comment {
		return "", t.mismatch(expected)
	}
	return t.Text, nil
}

// ExpectIdent returns the identifier text, or a type-mismatch error.
func (t Token) ExpectIdent(expected string) (string, error) {
	if t.Kind != Ident {
		return "", t.mismatch(expected)
	}
	return t.Text, nil
}

// ExpectSymbol returns the symbol text, or a type-mismatch error.
func (t Token) ExpectSymbol(expected string) (string, error) {
	if t.Kind != Symbol {
		return "", t.mismatch(expected)
	}
	return t.Text, nil
}

// ExpectInt returns the integer payload, or a type-mismatch error.
func (t Token) ExpectInt(expected string) (*big.Int, error) {
	if t.Kind != IntLit {
		return nil, t.mismatch(expected)
	}
	return t.Int, nil
}

// ExpectFloat returns the float payload, or a type-mismatch error.
func (t Token) ExpectFloat(expected string) (float64, error) {
	if t.Kind != FloatLit {
		return 0, t.mismatch(expected)
	}
	return t.Float, nil
}
