// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server
// configuration has no HTTP address, so the control API stays disabled.
var errNoHandlersAreCreated = errors.New("no handlers are created")

// IsDisabled reports whether err means the control API was not configured.
func IsDisabled(err error) bool {
	return errors.Is(err, errNoHandlersAreCreated)
}
