// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package httpserver

// Logger reports the lifecycle events of a Server.
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}
