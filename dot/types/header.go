// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"bytes"
	"fmt"
	"math"
	"math/big"

	"github.com/ChainSafe/grandpa-bridge/lib/common"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// BlockNumber is the number of a block, compact encoded on the wire.
type BlockNumber uint32

// HeaderID identifies a block by its hash and number.
type HeaderID struct {
	Hash   common.Hash `json:"hash"`
	Number BlockNumber `json:"number"`
}

func (id HeaderID) String() string {
	return fmt.Sprintf("#%d (%s)", id.Number, id.Hash.Short())
}

// Header is a substrate block header
type Header struct {
	ParentHash     common.Hash `json:"parentHash"`
	Number         BlockNumber `json:"number"`
	StateRoot      common.Hash `json:"stateRoot"`
	ExtrinsicsRoot common.Hash `json:"extrinsicsRoot"`
	Digest         Digest      `json:"digest"`
}

// NewHeader creates a new block header
func NewHeader(parentHash, stateRoot, extrinsicsRoot common.Hash,
	number BlockNumber, digest Digest) *Header {
	return &Header{
		ParentHash:     parentHash,
		Number:         number,
		StateRoot:      stateRoot,
		ExtrinsicsRoot: extrinsicsRoot,
		Digest:         digest,
	}
}

// NewEmptyHeader returns a new header with all zero values
func NewEmptyHeader() *Header {
	return &Header{
		Digest: Digest{},
	}
}

// DeepCopy returns a deep copy of the header
func (bh *Header) DeepCopy() *Header {
	cp := *bh
	if bh.Digest != nil {
		cp.Digest = make(Digest, len(bh.Digest))
		for i, item := range bh.Digest {
			cp.Digest[i] = item
			cp.Digest[i].Data = append([]byte(nil), item.Data...)
		}
	}
	return &cp
}

// String returns the formatted header as a string
func (bh *Header) String() string {
	return fmt.Sprintf("ParentHash=%s Number=%d StateRoot=%s ExtrinsicsRoot=%s Digest=%v Hash=%s",
		bh.ParentHash, bh.Number, bh.StateRoot, bh.ExtrinsicsRoot, bh.Digest, bh.Hash())
}

// Hash returns the blake2b hash of the encoded header.
// It panics if the header cannot be encoded.
func (bh *Header) Hash() common.Hash {
	enc, err := bh.Bytes()
	if err != nil {
		panic(err)
	}
	return common.MustBlake2bHash(enc)
}

// ID returns the hash and number of the header.
func (bh *Header) ID() HeaderID {
	return HeaderID{Hash: bh.Hash(), Number: bh.Number}
}

// ParentID returns the identifier of the parent block, or false for the
// genesis header.
func (bh *Header) ParentID() (id HeaderID, ok bool) {
	if bh.Number == 0 {
		return HeaderID{}, false
	}
	return HeaderID{Hash: bh.ParentHash, Number: bh.Number - 1}, true
}

// Bytes returns the SCALE encoding of the header
func (bh *Header) Bytes() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	err := scale.NewEncoder(buf).Encode(*bh)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode implements scale.Encodeable
func (bh Header) Encode(encoder scale.Encoder) error {
	err := encoder.Encode(bh.ParentHash)
	if err != nil {
		return err
	}

	err = encoder.EncodeUintCompact(*new(big.Int).SetUint64(uint64(bh.Number)))
	if err != nil {
		return err
	}

	err = encoder.Encode(bh.StateRoot)
	if err != nil {
		return err
	}

	err = encoder.Encode(bh.ExtrinsicsRoot)
	if err != nil {
		return err
	}

	return bh.Digest.Encode(encoder)
}

// Decode implements scale.Decodeable
func (bh *Header) Decode(decoder scale.Decoder) error {
	err := decoder.Decode(&bh.ParentHash)
	if err != nil {
		return fmt.Errorf("decoding parent hash: %w", err)
	}

	number, err := decoder.DecodeUintCompact()
	if err != nil {
		return fmt.Errorf("decoding number: %w", err)
	}
	if !number.IsUint64() || number.Uint64() > math.MaxUint32 {
		return fmt.Errorf("%w: %s", ErrBlockNumberOverflow, number)
	}
	bh.Number = BlockNumber(number.Uint64())

	err = decoder.Decode(&bh.StateRoot)
	if err != nil {
		return fmt.Errorf("decoding state root: %w", err)
	}

	err = decoder.Decode(&bh.ExtrinsicsRoot)
	if err != nil {
		return fmt.Errorf("decoding extrinsics root: %w", err)
	}

	return bh.Digest.Decode(decoder)
}

// NewHeaderFromBytes decodes a SCALE encoded header
func NewHeaderFromBytes(in []byte) (*Header, error) {
	header := NewEmptyHeader()
	err := scale.NewDecoder(bytes.NewReader(in)).Decode(header)
	if err != nil {
		return nil, err
	}
	return header, nil
}
