// Package token defines the lexical vocabulary of mscript, a MATLAB-like
// scripting language: token kinds, source positions and the Token value
// exchanged between the scanner and the parser.
//
// Keywords are not a separate kind. `if`, `end`, `while` and friends are
// scanned as Identifier tokens and recognised by the parser from their text.
package token
