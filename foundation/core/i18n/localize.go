// File: localize.go
// Title: Localised Error Messages
// Description: Renders structured errors in the active locale using their
//              message key, message arguments and source position.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package i18n

import (
	"errors"
	"fmt"

	mserror "github.com/msto63/mscript/foundation/core/error"
)

// Localize renders err in the active locale. Errors with a recorded source
// position are prefixed with "line:column: ". Errors without a message key,
// or whose key has no usable translation, fall back to err.Error().
func (m *Manager) Localize(err error) string {
	message, msErr, ok := m.translate(err)
	if !ok {
		if err == nil {
			return ""
		}
		return err.Error()
	}
	if line, column, ok := msErr.Position(); ok {
		return fmt.Sprintf("%d:%d: %s", line, column, message)
	}
	return message
}

// Message renders err in the active locale without its position, for
// callers that print the position themselves
func (m *Manager) Message(err error) string {
	message, msErr, ok := m.translate(err)
	switch {
	case ok:
		return message
	case err == nil:
		return ""
	case msErr != nil && hasPosition(msErr):
		return msErr.Message()
	default:
		return err.Error()
	}
}

func (m *Manager) translate(err error) (string, *mserror.Error, bool) {
	var msErr *mserror.Error
	if err == nil || !errors.As(err, &msErr) {
		return "", nil, false
	}
	if msErr.MessageKey() == "" {
		return "", msErr, false
	}
	message, terr := m.TryT(msErr.MessageKey(), msErr.MessageArgs())
	if terr != nil {
		return "", msErr, false
	}
	return message, msErr, true
}

func hasPosition(e *mserror.Error) bool {
	_, _, ok := e.Position()
	return ok
}
