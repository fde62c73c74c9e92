package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo                  Code = 1000
	LexUnclosedString        Code = 1001
	LexMultipleDecimalPoints Code = 1002
	LexBadNumber             Code = 1003

	// Token accessors
	TokTypeMismatch Code = 2001

	// I/O
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:              "Unknown error",
	LexInfo:                  "Lexical information",
	LexUnclosedString:        "Unclosed string",
	LexMultipleDecimalPoints: "Multiple decimal points",
	LexBadNumber:             "Bad number",
	TokTypeMismatch:          "Token type mismatch",
	IOLoadFileError:          "Failed to load file",
}

// ID renders the code as a short stable identifier, e.g. LEX1001.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("TOK%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	default:
		return fmt.Sprintf("UNK%04d", ic)
	}
}

// Title returns the human-readable description of the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
