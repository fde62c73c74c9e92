package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token. The scanner never emits it; it is
	// the zero value of an empty Token.
	Invalid Kind = iota
	// StringLit is a double-quoted string literal.
	StringLit
	// Comment is a '#' line comment.
	Comment
	// Ident is a maximal run of non-whitespace, non-symbol characters.
	Ident
	// Symbol is a one- or two-character symbol.
	Symbol
	// IntLit is a signed integer literal.
	IntLit
	// FloatLit is a 64-bit float literal.
	FloatLit
)

func (k Kind) String() string {
	switch k {
	case StringLit:
		return "StringLit"
	case Comment:
		return "Comment"
	case Ident:
		return "Ident"
	case Symbol:
		return "Symbol"
	case IntLit:
		return "IntLit"
	case FloatLit:
		return "FloatLit"
	default:
		return "Invalid"
	}
}

// label is the lowercase name used when describing a token in errors.
func (k Kind) label() string {
	switch k {
	case StringLit:
		return "string"
	case Comment:
		return "comment"
	case Ident:
		return "identifier"
	case Symbol:
		return "symbol"
	case IntLit:
		return "int"
	case FloatLit:
		return "float"
	default:
		return "invalid"
	}
}
