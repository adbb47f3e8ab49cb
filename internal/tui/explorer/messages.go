// ============================================================================
// mscript - MATLAB-like script front end
// ============================================================================
//
// Package:     explorer
// Description: Message types for async operations in the explorer
// Author:      msto63
// Created:     2026-10-10
// License:     MIT
// ============================================================================

package explorer

import (
	mscript "github.com/msto63/mscript/foundation/mscript"
	"github.com/msto63/mscript/foundation/mscript/token"
)

// parsedMsg is sent when a source line has been scanned and parsed. When
// only parsing failed, tokens still holds the scanned input.
type parsedMsg struct {
	source string
	tokens []token.Token
	result *mscript.Result
	err    error
}

// pane selects what the viewport shows
type pane int

const (
	paneTree pane = iota
	paneTokens
)
