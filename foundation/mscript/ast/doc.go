// Package ast defines the mscript syntax tree.
//
// Every construct is a *Node carrying a Kind, an optional Text payload
// (operator spelling, identifier name, literal contents or keyword), the
// source position of its first token and an ordered child list. The child
// layout per kind:
//
//	StatementList               statements...
//	ExpressionStatement         expression, EndOfStatement
//	SelectionStatement          clause, clause..., EndOfStatement
//	SelectionClause             guard [, StatementList]   (text: if/elseif/else/switch/case/otherwise)
//	IterationStatement          IterationClause, EndOfStatement
//	IterationClause             guard, StatementList      (text: while/for)
//	ClearStatement              IdentifierListExpression, EndOfStatement
//	JumpStatement               EndOfStatement            (text: break/continue/return)
//	AssignmentExpression        IdentifierExpression, value (text: operator)
//	ColonExpression             start, stop | start, step, stop | none for a bare ':'
//	UnaryOperationExpression    operand                   (text: operator)
//	BinaryOperationExpression   left, right               (text: operator)
//	IndexingExpression          IdentifierExpression, IndexListExpression
//	ArrayListExpression         elements and EndOfStatement row/column separators
//
// The else and otherwise clauses have only a StatementList child, the
// switch clause only its subject expression.
package ast
