package lexer

import "fmt"

// TokenType classifies a single token produced by the lexer.
type TokenType int

const (
	TOKEN_EOF TokenType = iota
	TOKEN_LPAREN
	TOKEN_RPAREN
	TOKEN_QUOTE            // '
	TOKEN_QUASIQUOTE       // ` or @
	TOKEN_UNQUOTE          // ,
	TOKEN_UNQUOTE_SPLICING // ,@
	TOKEN_STRING           // "..." — Literal already has escapes decoded
	TOKEN_ATOM             // anything else: numbers, #t/#f, symbols, "."
)

var tokenNames = map[TokenType]string{
	TOKEN_EOF:              "EOF",
	TOKEN_LPAREN:           "(",
	TOKEN_RPAREN:           ")",
	TOKEN_QUOTE:            "'",
	TOKEN_QUASIQUOTE:       "`",
	TOKEN_UNQUOTE:          ",",
	TOKEN_UNQUOTE_SPLICING: ",@",
	TOKEN_STRING:           "STRING",
	TOKEN_ATOM:             "ATOM",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}

	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is a single lexical unit plus its source position, for error
// reporting.
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}
