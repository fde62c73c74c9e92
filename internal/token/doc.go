// Package token defines the token stream produced by the scanner.
// Invariants:
//   - Token.Text is the decoded lexeme: no surrounding quotes for strings,
//     escaped quotes collapsed, comments trimmed of surrounding whitespace.
//   - Token.Location is the position of the token's first source character.
//   - Exactly one payload is meaningful per token: Int for IntLit, Float for
//     FloatLit, Text alone for everything else.
//   - Tokens hold no reference back to the scanner that produced them.
package token
