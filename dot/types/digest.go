// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"fmt"
	"math/big"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// DigestItemType is the type byte prefixing an encoded digest item
type DigestItemType byte

// Digest item types
const (
	OtherDigestType                     DigestItemType = 0
	ConsensusDigestType                 DigestItemType = 4
	SealDigestType                      DigestItemType = 5
	PreRuntimeDigestType                DigestItemType = 6
	RuntimeEnvironmentUpdatedDigestType DigestItemType = 8
)

func (t DigestItemType) String() string {
	switch t {
	case OtherDigestType:
		return "Other"
	case ConsensusDigestType:
		return "Consensus"
	case SealDigestType:
		return "Seal"
	case PreRuntimeDigestType:
		return "PreRuntime"
	case RuntimeEnvironmentUpdatedDigestType:
		return "RuntimeEnvironmentUpdated"
	default:
		return fmt.Sprintf("Unknown(%d)", byte(t))
	}
}

// ConsensusEngineID is a 4-character identifier of the consensus engine that produced the digest.
type ConsensusEngineID [4]byte

// Well known consensus engine ids
var (
	BabeEngineID    = ConsensusEngineID{'B', 'A', 'B', 'E'}
	GrandpaEngineID = ConsensusEngineID{'F', 'R', 'N', 'K'}
)

// DigestItem is a single item of a block digest. ConsensusEngineID is only
// meaningful for the consensus, seal and pre-runtime types, and Data is unused
// by RuntimeEnvironmentUpdated.
type DigestItem struct {
	Type              DigestItemType
	ConsensusEngineID ConsensusEngineID
	Data              []byte
}

func (d DigestItem) hasEngineID() bool {
	switch d.Type {
	case ConsensusDigestType, SealDigestType, PreRuntimeDigestType:
		return true
	default:
		return false
	}
}

func (d DigestItem) String() string {
	if d.hasEngineID() {
		return fmt.Sprintf("%s(%s, 0x%x)", d.Type, string(d.ConsensusEngineID[:]), d.Data)
	}
	return fmt.Sprintf("%s(0x%x)", d.Type, d.Data)
}

// Encode implements scale.Encodeable
func (d DigestItem) Encode(encoder scale.Encoder) error {
	err := encoder.PushByte(byte(d.Type))
	if err != nil {
		return err
	}

	switch d.Type {
	case RuntimeEnvironmentUpdatedDigestType:
		return nil
	case OtherDigestType:
		return encoder.Encode(d.Data)
	case ConsensusDigestType, SealDigestType, PreRuntimeDigestType:
		err = encoder.Write(d.ConsensusEngineID[:])
		if err != nil {
			return err
		}
		return encoder.Encode(d.Data)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownDigestItem, d.Type)
	}
}

// Decode implements scale.Decodeable
func (d *DigestItem) Decode(decoder scale.Decoder) error {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}
	d.Type = DigestItemType(b)

	switch d.Type {
	case RuntimeEnvironmentUpdatedDigestType:
		return nil
	case OtherDigestType:
		return decoder.Decode(&d.Data)
	case ConsensusDigestType, SealDigestType, PreRuntimeDigestType:
		err = decoder.Read(d.ConsensusEngineID[:])
		if err != nil {
			return err
		}
		return decoder.Decode(&d.Data)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownDigestItem, b)
	}
}

// Digest represents the block digest. It consists of digest items.
type Digest []DigestItem

// Encode implements scale.Encodeable
func (d Digest) Encode(encoder scale.Encoder) error {
	err := encoder.EncodeUintCompact(*big.NewInt(int64(len(d))))
	if err != nil {
		return err
	}

	for i, item := range d {
		err = item.Encode(encoder)
		if err != nil {
			return fmt.Errorf("encoding digest item %d: %w", i, err)
		}
	}
	return nil
}

// Decode implements scale.Decodeable
func (d *Digest) Decode(decoder scale.Decoder) error {
	length, err := decoder.DecodeUintCompact()
	if err != nil {
		return fmt.Errorf("decoding digest length: %w", err)
	}

	// the length is untrusted, items are appended one by one
	items := Digest{}
	for i := uint64(0); i < length.Uint64(); i++ {
		var item DigestItem
		err = item.Decode(decoder)
		if err != nil {
			return fmt.Errorf("decoding digest item %d: %w", i, err)
		}
		items = append(items, item)
	}
	*d = items
	return nil
}
