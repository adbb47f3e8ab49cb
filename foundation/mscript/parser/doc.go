// Package parser builds the mscript syntax tree from a token slice.
//
// Statements are recognised by ordered choice: expression statement, clear,
// selection (if/switch), iteration (while/for) and jump (break, continue,
// return). An expression statement never starts on a reserved keyword, so
// keyword forms are never shadowed. Expressions follow a precedence chain,
// loosest first:
//
//	assignment      name = value   (also += -= *= /=)
//	colon           a:b  a:step:b
//	logical or      || |
//	logical and     && &
//	equality        == != ~=
//	relational      < <= > >=
//	additive        + -
//	multiplicative  * /
//	unary prefix    + - ~ !        right-associative
//	postfix         ' .'
//	primary         identifier, indexing, literal, (expr), [list]
//
// The parser performs no semantic checks and no error recovery. The first
// structural problem is returned as an *IncompleteStatementError or an
// *InvalidExpressionError; both unwrap to an *mserror.Error.
//
// Usage:
//
//	tokens, err := lexer.Scan(src)
//	if err != nil {
//		return err
//	}
//	root, err := parser.Parse(tokens)
package parser
