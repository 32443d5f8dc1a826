// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import "errors"

var (
	// ErrBlockNumberOverflow is returned when a decoded block number does not fit in 32 bits
	ErrBlockNumberOverflow = errors.New("block number overflows 32 bits")
	// ErrUnknownDigestItem is returned when decoding a digest item with an unknown type byte
	ErrUnknownDigestItem = errors.New("unknown digest item type")
)
