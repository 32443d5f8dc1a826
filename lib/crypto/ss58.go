// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package crypto

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ChainSafe/grandpa-bridge/lib/common"
	"github.com/btcsuite/btcutil/base58"
)

// SubstrateNetworkPrefix is the generic substrate SS58 address prefix
const SubstrateNetworkPrefix byte = 42

const (
	ss58ChecksumLength = 2
	// only the simple (single byte) account format is supported
	maxSimplePrefix = 63
)

var (
	ss58Prefix = []byte("SS58PRE")

	ErrInvalidSS58Prefix   = errors.New("invalid ss58 network prefix")
	ErrInvalidSS58Length   = errors.New("invalid ss58 address length")
	ErrInvalidSS58Checksum = errors.New("invalid ss58 checksum")
)

func ss58Checksum(data []byte) []byte {
	preimage := append(append([]byte{}, ss58Prefix...), data...)
	return common.Blake2b512(preimage)[:ss58ChecksumLength]
}

// EncodeSS58 encodes the 32 byte public key as an SS58 address using the given network prefix.
func EncodeSS58(prefix byte, pub []byte) (string, error) {
	if prefix > maxSimplePrefix {
		return "", fmt.Errorf("%w: %d", ErrInvalidSS58Prefix, prefix)
	}
	data := append([]byte{prefix}, pub...)
	data = append(data, ss58Checksum(data)...)
	return base58.Encode(data), nil
}

// DecodeSS58 decodes an SS58 address holding a 32 byte public key,
// returning the network prefix and the public key bytes.
func DecodeSS58(address string) (prefix byte, pub []byte, err error) {
	data := base58.Decode(address)
	const expectedLength = 1 + 32 + ss58ChecksumLength
	if len(data) != expectedLength {
		return 0, nil, fmt.Errorf("%w: %d", ErrInvalidSS58Length, len(data))
	}

	prefix = data[0]
	if prefix > maxSimplePrefix {
		return 0, nil, fmt.Errorf("%w: %d", ErrInvalidSS58Prefix, prefix)
	}

	body := data[:len(data)-ss58ChecksumLength]
	checksum := data[len(data)-ss58ChecksumLength:]
	if !bytes.Equal(checksum, ss58Checksum(body)) {
		return 0, nil, ErrInvalidSS58Checksum
	}

	return prefix, body[1:], nil
}
