// Package token defines the lexical token kinds of the profile language.
// Invariants:
//   - Token.Text is exactly the original source slice (string literals are
//     decoded later, from the span, not here).
//   - Token.Span matches Text (Start..End).
//   - Whitespace and Comment appear only in the raw token stream; the
//     filtered stream used by the parser never contains them.
//   - Doc comments are ordinary Comment tokens; attachment to declarations
//     is decided by the parser, not the lexer.
package token
