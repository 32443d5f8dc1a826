// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package justification

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/ChainSafe/grandpa-bridge/dot/types"
	"github.com/ChainSafe/grandpa-bridge/lib/common"
	"github.com/ChainSafe/grandpa-bridge/lib/crypto/ed25519"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

const (
	// precommitEncodedLen is the size of an encoded signed precommit:
	// target hash, target number, signature and authority id.
	precommitEncodedLen = common.HashLength + 4 + ed25519.SignatureLength + ed25519.PublicKeyLength
	// minHeaderEncodedLen is the size of an encoded header with a one
	// byte block number and an empty digest.
	minHeaderEncodedLen = 3*common.HashLength + 2
)

// Decode implements scale.Decodeable. Precommits are appended one by
// one so a forged length cannot cause a large allocation.
func (c *Commit) Decode(decoder scale.Decoder) error {
	return c.decode(decoder, nil)
}

// decode decodes the commit, rejecting a precommits length larger than
// what the remaining bytes of reader can hold when reader is not nil.
func (c *Commit) decode(decoder scale.Decoder, reader *bytes.Reader) error {
	err := decoder.Decode(&c.TargetHash)
	if err != nil {
		return fmt.Errorf("decoding target hash: %w", err)
	}

	err = decoder.Decode(&c.TargetNumber)
	if err != nil {
		return fmt.Errorf("decoding target number: %w", err)
	}

	length, err := decoder.DecodeUintCompact()
	if err != nil {
		return fmt.Errorf("decoding precommits length: %w", err)
	}
	if reader != nil {
		err = checkLength(length, reader, precommitEncodedLen)
		if err != nil {
			return fmt.Errorf("precommits: %w", err)
		}
	}

	c.Precommits = nil
	for i := uint64(0); i < length.Uint64(); i++ {
		var signed SignedPrecommit
		err = decoder.Decode(&signed)
		if err != nil {
			return fmt.Errorf("decoding precommit %d: %w", i, err)
		}
		c.Precommits = append(c.Precommits, signed)
	}
	return nil
}

// checkLength returns an error if length items of at least itemLen bytes
// cannot fit in the unread bytes of reader.
func checkLength(length *big.Int, reader *bytes.Reader, itemLen int) error {
	if !length.IsUint64() || length.Uint64() > uint64(reader.Len()/itemLen) {
		return fmt.Errorf("%w: %s items of at least %d bytes, %d bytes left",
			ErrLengthTooLarge, length, itemLen, reader.Len())
	}
	return nil
}

// Bytes returns the SCALE encoding of the justification.
func (j GrandpaJustification[H]) Bytes() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	encoder := scale.NewEncoder(buf)

	err := encoder.Encode(j.Round)
	if err != nil {
		return nil, fmt.Errorf("encoding round: %w", err)
	}

	err = encoder.Encode(j.Commit)
	if err != nil {
		return nil, fmt.Errorf("encoding commit: %w", err)
	}

	err = encoder.EncodeUintCompact(*big.NewInt(int64(len(j.VotesAncestries))))
	if err != nil {
		return nil, fmt.Errorf("encoding votes ancestries length: %w", err)
	}

	for i, header := range j.VotesAncestries {
		err = encoder.Encode(header)
		if err != nil {
			return nil, fmt.Errorf("encoding votes ancestry %d: %w", i, err)
		}
	}

	return buf.Bytes(), nil
}

// DecodeJustification decodes a SCALE encoded justification of substrate
// headers. All input bytes must be consumed.
func DecodeJustification(in []byte) (*GrandpaJustification[*types.Header], error) {
	reader := bytes.NewReader(in)
	decoder := scale.NewDecoder(reader)

	justification := &GrandpaJustification[*types.Header]{}
	err := decoder.Decode(&justification.Round)
	if err != nil {
		return nil, fmt.Errorf("decoding round: %w", err)
	}

	err = justification.Commit.decode(*decoder, reader)
	if err != nil {
		return nil, fmt.Errorf("decoding commit: %w", err)
	}

	length, err := decoder.DecodeUintCompact()
	if err != nil {
		return nil, fmt.Errorf("decoding votes ancestries length: %w", err)
	}
	err = checkLength(length, reader, minHeaderEncodedLen)
	if err != nil {
		return nil, fmt.Errorf("votes ancestries: %w", err)
	}

	for i := uint64(0); i < length.Uint64(); i++ {
		header := types.NewEmptyHeader()
		err = header.Decode(*decoder)
		if err != nil {
			return nil, fmt.Errorf("decoding votes ancestry %d: %w", i, err)
		}
		justification.VotesAncestries = append(justification.VotesAncestries, header)
	}

	if reader.Len() > 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTrailingBytes, reader.Len())
	}

	return justification, nil
}
