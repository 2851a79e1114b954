// Package lexer implements the byte-level tokenizer for lith source
// text. It knows nothing about list structure or atom parsing — that is
// pkg/reader's job — it only knows how to chop a source buffer
// into the handful of token shapes the reader's grammar needs:
// parentheses, the four reader-macro markers, string literals (with
// escapes already decoded), and "everything else" atom tokens.
package lexer
