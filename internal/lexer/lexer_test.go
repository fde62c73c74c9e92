package lexer_test

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"testing"

	"lexkit/internal/diag"
	"lexkit/internal/lexer"
	"lexkit/internal/source"
	"lexkit/internal/token"
)

// mustTokenize scans input from row 0, column 0 and fails the test on error.
func mustTokenize(t *testing.T, input string) []token.Token {
	t.Helper()
	tokens, err := lexer.Tokenize(input, source.At(0, 0))
	if err != nil {
		t.Fatalf("Tokenize(%q) failed: %v", input, err)
	}
	return tokens
}

// expectTokens checks the kind sequence produced for input
func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	tokens := mustTokenize(t, input)

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d\nInput: %q\nTokens: %v",
			len(expected), len(tokens), input, tokensToString(tokens))
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("Token %d: expected %v, got %v (text: %q)",
				i, expected[i], tok.Kind, tok.Text)
		}
	}
}

// expectSingleToken checks that input produces exactly one token
func expectSingleToken(t *testing.T, input string, expectedKind token.Kind, expectedText string) {
	t.Helper()
	tokens := mustTokenize(t, input)

	if len(tokens) != 1 {
		t.Fatalf("Expected exactly one token, got %d: %v", len(tokens), tokensToString(tokens))
	}
	if tokens[0].Kind != expectedKind {
		t.Errorf("Expected kind %v, got %v", expectedKind, tokens[0].Kind)
	}
	if tokens[0].Text != expectedText {
		t.Errorf("Expected text %q, got %q", expectedText, tokens[0].Text)
	}
}

// expectLexError checks the code and position of the reported error
func expectLexError(t *testing.T, input string, code diag.Code, row, col int) {
	t.Helper()
	tokens, err := lexer.Tokenize(input, source.At(0, 0))
	if err == nil {
		t.Fatalf("Expected an error for %q, got tokens: %v", input, tokensToString(tokens))
	}
	if tokens != nil {
		t.Errorf("Expected no tokens alongside the error, got %d", len(tokens))
	}

	var lexErr *diag.Error
	if !errors.As(err, &lexErr) {
		t.Fatalf("Expected *diag.Error, got %T: %v", err, err)
	}
	if lexErr.Code != code {
		t.Errorf("Expected code %v, got %v", code, lexErr.Code)
	}
	if lexErr.Loc.Row != row || lexErr.Loc.Column != col {
		t.Errorf("Expected error at %d:%d, got %d:%d", row, col, lexErr.Loc.Row, lexErr.Loc.Column)
	}
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ====== empty input and whitespace ======

func TestEmptyInput(t *testing.T) {
	tokens := mustTokenize(t, "")
	if len(tokens) != 0 {
		t.Errorf("Expected no tokens, got %v", tokensToString(tokens))
	}
}

func TestWhitespaceOnly(t *testing.T) {
	for _, input := range []string{" ", "   ", "\t", "\n", "\r\n", "  \t \n  "} {
		tokens := mustTokenize(t, input)
		if len(tokens) != 0 {
			t.Errorf("Input %q: expected no tokens, got %v", input, tokensToString(tokens))
		}
	}
}

// ====== scan_comment.go ======

func TestComment_EmptyAtEOF(t *testing.T) {
	expectSingleToken(t, "#", token.Comment, "")
}

func TestComment_Single(t *testing.T) {
	expectSingleToken(t, "# hello world", token.Comment, "hello world")
}

func TestComment_TrimsSurroundingSpace(t *testing.T) {
	expectSingleToken(t, "#   padded   ", token.Comment, "padded")
}

func TestComment_StopsAtNewline(t *testing.T) {
	tokens := mustTokenize(t, "# first\nsecond")
	if len(tokens) != 2 {
		t.Fatalf("Expected 2 tokens, got %v", tokensToString(tokens))
	}
	if tokens[0].Kind != token.Comment || tokens[0].Text != "first" {
		t.Errorf("Token 0: got %v(%q)", tokens[0].Kind, tokens[0].Text)
	}
	if tokens[1].Kind != token.Ident || tokens[1].Text != "second" {
		t.Errorf("Token 1: got %v(%q)", tokens[1].Kind, tokens[1].Text)
	}
}

// ====== scan_ident.go ======

func TestIdentifiers(t *testing.T) {
	tests := []struct {
		input string
		text  string
	}{
		{"foo", "foo"},
		{"_bar", "_bar"},
		{"x123", "x123"},
		{"camelCase", "camelCase"},
		{"UPPER", "UPPER"},
		{"привет", "привет"},
		{"日本語", "日本語"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, token.Ident, tt.text)
		})
	}
}

func TestIdentifiers_SeparatedBySpace(t *testing.T) {
	tokens := mustTokenize(t, "foo bar")
	if len(tokens) != 2 {
		t.Fatalf("Expected 2 tokens, got %v", tokensToString(tokens))
	}
	wantLocs := []source.Location{source.At(0, 0), source.At(0, 4)}
	for i, tok := range tokens {
		if tok.Kind != token.Ident {
			t.Errorf("Token %d: expected identifier, got %v", i, tok.Kind)
		}
		if tok.Location != wantLocs[i] {
			t.Errorf("Token %d: expected location %v, got %v", i, wantLocs[i], tok.Location)
		}
	}
}

func TestIdentifiers_SeparatedByNewline(t *testing.T) {
	tokens := mustTokenize(t, "foo\nbar")
	if len(tokens) != 2 {
		t.Fatalf("Expected 2 tokens, got %v", tokensToString(tokens))
	}
	if got, want := tokens[1].Location, source.At(1, 0); got != want {
		t.Errorf("Token after newline: expected location %v, got %v", want, got)
	}
}

func TestIdentifier_SplitsBeforeComment(t *testing.T) {
	tokens := mustTokenize(t, "identifier# trailing")
	if len(tokens) != 2 {
		t.Fatalf("Expected 2 tokens, got %v", tokensToString(tokens))
	}
	if tokens[0].Kind != token.Ident || tokens[0].Text != "identifier" {
		t.Errorf("Token 0: got %v(%q)", tokens[0].Kind, tokens[0].Text)
	}
	if tokens[1].Kind != token.Comment || tokens[1].Text != "trailing" {
		t.Errorf("Token 1: got %v(%q)", tokens[1].Kind, tokens[1].Text)
	}
	if got, want := tokens[1].Location, source.At(0, 10); got != want {
		t.Errorf("Comment location: expected %v, got %v", want, got)
	}
}

// ====== scan_string.go ======

func TestString_Simple(t *testing.T) {
	expectSingleToken(t, `"hello"`, token.StringLit, "hello")
}

func TestString_Empty(t *testing.T) {
	expectSingleToken(t, `""`, token.StringLit, "")
}

func TestString_EscapedQuote(t *testing.T) {
	expectSingleToken(t, `"say \"hi\""`, token.StringLit, `say "hi"`)
}

func TestString_HashInsideStaysLiteral(t *testing.T) {
	expectSingleToken(t, `"not # a comment"`, token.StringLit, "not # a comment")
}

func TestString_NewlineInsideStaysLiteral(t *testing.T) {
	expectSingleToken(t, "\"a\nb\"", token.StringLit, "a\nb")
}

func TestString_Unclosed(t *testing.T) {
	expectLexError(t, `"abc`, diag.LexUnclosedString, 0, 0)
}

func TestString_UnclosedReportsOpeningQuote(t *testing.T) {
	expectLexError(t, "word \"abc", diag.LexUnclosedString, 0, 5)
}

// ====== scan_symbol.go ======

func TestSymbols_Single(t *testing.T) {
	singles := []string{
		"+", "-", "*", "/", "=", ">", "<", "!", "?", ".", ",", ";", ":",
		"(", ")", "[", "]", "{", "}", "&", "|", "^", "%", "~",
	}
	for _, sym := range singles {
		t.Run(sym, func(t *testing.T) {
			expectSingleToken(t, sym, token.Symbol, sym)
		})
	}
}

func TestSymbols_TwoCharacter(t *testing.T) {
	doubles := []string{"==", "!=", ">=", "<=", "->", "=>", "*=", "-=", "+=", "/="}
	for _, sym := range doubles {
		t.Run(sym, func(t *testing.T) {
			expectSingleToken(t, sym, token.Symbol, sym)
		})
	}
}

func TestSymbols_AdjacentDoNotPairArbitrarily(t *testing.T) {
	tokens := mustTokenize(t, "=>=")
	if len(tokens) != 2 {
		t.Fatalf("Expected 2 tokens, got %v", tokensToString(tokens))
	}
	if tokens[0].Text != "=>" || tokens[1].Text != "=" {
		t.Errorf("Expected [=> =], got %v", tokensToString(tokens))
	}
}

func TestSymbols_BetweenIdentifiers(t *testing.T) {
	tokens := mustTokenize(t, "left==right")
	if len(tokens) != 3 {
		t.Fatalf("Expected 3 tokens, got %v", tokensToString(tokens))
	}
	want := []struct {
		kind token.Kind
		text string
		loc  source.Location
	}{
		{token.Ident, "left", source.At(0, 0)},
		{token.Symbol, "==", source.At(0, 4)},
		{token.Ident, "right", source.At(0, 6)},
	}
	for i, w := range want {
		if tokens[i].Kind != w.kind || tokens[i].Text != w.text {
			t.Errorf("Token %d: expected %v(%q), got %v(%q)",
				i, w.kind, w.text, tokens[i].Kind, tokens[i].Text)
		}
		if tokens[i].Location != w.loc {
			t.Errorf("Token %d: expected location %v, got %v", i, w.loc, tokens[i].Location)
		}
	}
}

// ====== scan_number.go ======

func TestIntegers(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0", "0"},
		{"12345", "12345"},
		{"-42", "-42"},
		{"340282366920938463463374607431768211455", "340282366920938463463374607431768211455"},
		{"-170141183460469231731687303715884105728", "-170141183460469231731687303715884105728"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := mustTokenize(t, tt.input)
			if len(tokens) != 1 || tokens[0].Kind != token.IntLit {
				t.Fatalf("Expected one integer token, got %v", tokensToString(tokens))
			}
			want, _ := new(big.Int).SetString(tt.want, 10)
			if tokens[0].Int == nil || tokens[0].Int.Cmp(want) != 0 {
				t.Errorf("Expected value %s, got %v", tt.want, tokens[0].Int)
			}
		})
	}
}

func TestFloats(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"3.14", 3.14},
		{"-0.5", -0.5},
		{".5", 0.5},
		{"-12345.6789", -12345.6789},
		{"7.", 7.0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := mustTokenize(t, tt.input)
			if len(tokens) != 1 || tokens[0].Kind != token.FloatLit {
				t.Fatalf("Expected one float token, got %v", tokensToString(tokens))
			}
			if tokens[0].Float != tt.want {
				t.Errorf("Expected value %v, got %v", tt.want, tokens[0].Float)
			}
		})
	}
}

func TestNumber_MinusWithoutDigitIsSymbol(t *testing.T) {
	tokens := mustTokenize(t, "- x")
	if len(tokens) != 2 {
		t.Fatalf("Expected 2 tokens, got %v", tokensToString(tokens))
	}
	if tokens[0].Kind != token.Symbol || tokens[0].Text != "-" {
		t.Errorf("Token 0: got %v(%q)", tokens[0].Kind, tokens[0].Text)
	}
}

func TestNumber_DotWithoutDigitIsSymbol(t *testing.T) {
	tokens := mustTokenize(t, ". x")
	if tokens[0].Kind != token.Symbol || tokens[0].Text != "." {
		t.Errorf("Token 0: got %v(%q)", tokens[0].Kind, tokens[0].Text)
	}
}

func TestNumber_StopsAtNonDigit(t *testing.T) {
	tokens := mustTokenize(t, "42abc")
	if len(tokens) != 2 {
		t.Fatalf("Expected 2 tokens, got %v", tokensToString(tokens))
	}
	if tokens[0].Kind != token.IntLit || tokens[0].Text != "42" {
		t.Errorf("Token 0: got %v(%q)", tokens[0].Kind, tokens[0].Text)
	}
	if tokens[1].Kind != token.Ident || tokens[1].Text != "abc" {
		t.Errorf("Token 1: got %v(%q)", tokens[1].Kind, tokens[1].Text)
	}
}

func TestNumber_MultipleDecimalPoints(t *testing.T) {
	expectLexError(t, "-12345.6789.12345", diag.LexMultipleDecimalPoints, 0, 11)
}

func TestNumber_MultipleDecimalPointsShort(t *testing.T) {
	expectLexError(t, "1.2.3", diag.LexMultipleDecimalPoints, 0, 3)
}

// ====== end to end ======

func TestMixedLine(t *testing.T) {
	expectTokens(t, `let x = 3.14 # pi`, []token.Kind{
		token.Ident, token.Ident, token.Symbol, token.FloatLit, token.Comment,
	})
}

func TestCRLFNormalization(t *testing.T) {
	unix := mustTokenize(t, "foo\nbar")
	dos := mustTokenize(t, "foo\r\nbar")
	if len(unix) != len(dos) {
		t.Fatalf("Token count differs: %d vs %d", len(unix), len(dos))
	}
	for i := range unix {
		if unix[i] != dos[i] {
			t.Errorf("Token %d differs: %v vs %v", i, unix[i], dos[i])
		}
	}
}

func TestStartLocationOffsetsEveryToken(t *testing.T) {
	start := source.Location{Row: 0, Column: 0, Path: "lib/main.lx"}
	tokens, err := lexer.Tokenize("a b", start)
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	for i, tok := range tokens {
		if tok.Location.Path != "lib/main.lx" {
			t.Errorf("Token %d: expected path to propagate, got %q", i, tok.Location.Path)
		}
	}
}

func TestTokensOrderedByPosition(t *testing.T) {
	tokens := mustTokenize(t, "alpha beta\ngamma == 12 3.5 # done")
	for i := 1; i < len(tokens); i++ {
		prev, cur := tokens[i-1].Location, tokens[i].Location
		if cur.Row < prev.Row || (cur.Row == prev.Row && cur.Column <= prev.Column) {
			t.Errorf("Token %d at %v does not advance past %v", i, cur, prev)
		}
	}
}
