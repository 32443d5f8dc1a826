// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package justification

import (
	"github.com/ChainSafe/grandpa-bridge/dot/types"
)

// VerificationContext is the authority set a justification is verified
// against. It is read only and may be shared between goroutines.
type VerificationContext struct {
	VoterSet *VoterSet
	SetID    uint64
	// Signatures verifies precommit signatures, the ed25519 verifier is
	// used when nil.
	Signatures SignatureVerifier
}

// NewVerificationContext builds the verification context of the
// authority set with the given id.
func NewVerificationContext(authorities types.AuthorityList, setID uint64) (VerificationContext, error) {
	voterSet, err := NewVoterSet(authorities)
	if err != nil {
		return VerificationContext{}, err
	}

	return VerificationContext{
		VoterSet: voterSet,
		SetID:    setID,
	}, nil
}

func (c VerificationContext) signatureVerifier() SignatureVerifier {
	if c.Signatures == nil {
		return Ed25519SignatureVerifier{}
	}
	return c.Signatures
}
