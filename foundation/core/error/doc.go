// Package error provides structured error handling for mscript.
//
// Package: error
// Title: mscript Error Handling
// Description: Structured errors with codes, severities, key/value details
//              and localisation keys. The scanner and the parser report
//              every structural problem as an *Error carrying the source
//              line and column, so tooling can print file:line:col
//              diagnostics and translate the message.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-14 v0.2.0: Scanner and parser codes, source positions
//
// Usage:
//   import mserror "github.com/msto63/mscript/foundation/core/error"
//
//   err := mserror.New("unexpected token").
//     WithCode(mserror.CodeInvalidExpression).
//     WithPosition(3, 14).
//     WithOperation("parser.primary")
//
//   if mserror.HasCode(err, mserror.CodeInvalidExpression) {
//     line, col, _ := err.Position()
//     fmt.Printf("%d:%d: %s\n", line, col, err.Message())
//   }
package error
