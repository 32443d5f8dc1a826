// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package justification

import (
	"bytes"
	"fmt"

	"github.com/ChainSafe/grandpa-bridge/dot/types"
	"github.com/ChainSafe/grandpa-bridge/lib/crypto/ed25519"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// subround is the index of the vote kind in the signed message
type subround uint8

const (
	prevote subround = iota
	precommit
)

// fullVote is the payload signed by an authority for a vote
type fullVote struct {
	Stage subround
	Vote  Precommit
	Round uint64
	SetID uint64
}

// SignedMessage returns the encoded message an authority signs when it
// precommits in the given round of the given set.
func SignedMessage(vote Precommit, round, setID uint64) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	err := scale.NewEncoder(buf).Encode(fullVote{
		Stage: precommit,
		Vote:  vote,
		Round: round,
		SetID: setID,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding signed message: %w", err)
	}
	return buf.Bytes(), nil
}

// SignatureVerifier checks the signature of a message by an authority.
type SignatureVerifier interface {
	Verify(id types.AuthorityID, message []byte, signature ed25519.SignatureBytes) bool
}

// Ed25519SignatureVerifier verifies ed25519 signatures.
type Ed25519SignatureVerifier struct{}

// Verify returns true if signature is a valid ed25519 signature of the message by id.
func (Ed25519SignatureVerifier) Verify(id types.AuthorityID, message []byte,
	signature ed25519.SignatureBytes) bool {
	return ed25519.VerifySignature(id[:], signature[:], message) == nil
}

func verifyPrecommitSignature(verifier SignatureVerifier, signed SignedPrecommit,
	round, setID uint64) bool {
	message, err := SignedMessage(signed.Precommit, round, setID)
	if err != nil {
		return false
	}
	return verifier.Verify(signed.ID, message, signed.Signature)
}
