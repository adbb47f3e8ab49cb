// Package lexer implements the mscript scanner.
//
// The scanner classifies input with a fixed priority table (see rules.go).
// Whitespace and `%` annotations are discarded. A newline, `;` and `,` all
// produce END_OF_STATEMENT tokens; a stream that does not already end in
// one gets an implicit marker with empty text at the end of input.
//
// Two rules depend on the previous token:
//
//   - A quote directly after an identifier, number, closing delimiter or
//     another transpose is a TRANSPOSE; elsewhere it opens a char vector.
//   - Inside brackets, `-` glued to digits and separated by whitespace from
//     a preceding operand is part of the number, so `[1 -2]` has two
//     elements while `1 -2` is a subtraction.
//
// Usage:
//
//	tokens, err := lexer.Scan("x = [1 -2]'")
//	var scanErr *lexer.ScanError
//	if errors.As(err, &scanErr) {
//		fmt.Println(scanErr.Position(), scanErr.Code())
//	}
package lexer
