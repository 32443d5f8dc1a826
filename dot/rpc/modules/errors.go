// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package modules

import "errors"

var (
	// ErrDecodingJustification is returned when the justification parameter
	// is not a hex encoded SCALE justification
	ErrDecodingJustification = errors.New("cannot decode justification")
)
