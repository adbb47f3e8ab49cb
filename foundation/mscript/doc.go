// Package mscript is the front end of the mscript language: a scanner, a
// recursive-descent parser and the syntax tree they produce.
//
// The subpackages can be used directly:
//
//	token   token kinds, positions and the Token value
//	lexer   source text to tokens
//	parser  tokens to an *ast.Node tree
//	ast     node model, traversal, printing and JSON form
//
// The Engine in this package ties them together and adds logging with a
// request ID per run, phase timing, a source size limit and optional
// debug dumps:
//
//	engine, err := mscript.New(mscript.Options{})
//	if err != nil {
//		return err
//	}
//	root, err := engine.Parse("x = [1 -2]';")
//
// Structural errors are *lexer.ScanError, *parser.IncompleteStatementError
// and *parser.InvalidExpressionError. Each is positioned and unwraps to an
// *mserror.Error so it can be localised.
package mscript
