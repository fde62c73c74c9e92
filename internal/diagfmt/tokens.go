package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"lexkit/internal/token"
)

// TokenOutput is the JSON projection of a token.
type TokenOutput struct {
	Kind  string   `json:"kind"`
	Text  string   `json:"text"`
	Row   int      `json:"row"`
	Col   int      `json:"col"`
	Path  string   `json:"path,omitempty"`
	Int   string   `json:"int,omitempty"`
	Float *float64 `json:"float,omitempty"`
}

// FormatTokensPretty writes a numbered, human-readable token listing.
// Positions print 1-based.
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		fmt.Fprintf(w, "%3d: %-9s %q at %d:%d\n",
			i+1,
			tok.Kind.String(),
			tok.Text,
			tok.Location.Row+1,
			tok.Location.Column+1)
	}
	return nil
}

// TokensOutput projects a token stream into its JSON form with raw
// (0-based) rows and columns.
func TokensOutput(tokens []token.Token) []TokenOutput {
	output := make([]TokenOutput, 0, len(tokens))

	for _, tok := range tokens {
		out := TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Row:  tok.Location.Row,
			Col:  tok.Location.Column,
			Path: tok.Location.Path,
		}
		if tok.Kind == token.IntLit && tok.Int != nil {
			out.Int = tok.Int.String()
		}
		if tok.Kind == token.FloatLit {
			f := tok.Float
			out.Float = &f
		}
		output = append(output, out)
	}
	return output
}

// FormatTokensJSON writes the token stream as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(TokensOutput(tokens))
}
