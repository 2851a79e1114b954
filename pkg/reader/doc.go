// Package reader turns a lith token stream into Values: atoms (strings,
// booleans, numbers, symbols), proper and improper lists, and the four
// reader-macro shorthands (quote, quasiquote, unquote, unquote-splicing).
package reader
