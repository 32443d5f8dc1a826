// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package modules

import (
	"testing"

	"github.com/ChainSafe/grandpa-bridge/dot/types"
	"github.com/ChainSafe/grandpa-bridge/lib/common"
	"github.com/ChainSafe/grandpa-bridge/lib/crypto/ed25519"
	"github.com/ChainSafe/grandpa-bridge/lib/grandpa/justification"
	"github.com/ChainSafe/grandpa-bridge/lib/keystore"
	"github.com/stretchr/testify/require"
)

const (
	testRound uint64 = 4
	testSetID uint64 = 1
)

func newTestKeyring(t *testing.T) *keystore.Ed25519Keyring {
	t.Helper()
	kr, err := keystore.NewEd25519Keyring()
	require.NoError(t, err)
	return kr
}

// newTestContext returns the context of Alice, Bob and Charlie,
// all three votes being required.
func newTestContext(t *testing.T, kr *keystore.Ed25519Keyring) justification.VerificationContext {
	t.Helper()
	authorities := types.NewAuthorityListFromKeypairs(1, kr.KeyAlice, kr.KeyBob, kr.KeyCharlie)
	context, err := justification.NewVerificationContext(authorities, testSetID)
	require.NoError(t, err)
	return context
}

func newTestHeaders(length int) []*types.Header {
	headers := make([]*types.Header, length)
	parent := common.Hash{0x01}
	for i := range headers {
		headers[i] = types.NewHeader(parent, common.Hash{}, common.Hash{}, types.BlockNumber(20+i), types.Digest{})
		parent = headers[i].Hash()
	}
	return headers
}

// newEncodedJustification signs a precommit for the given header with each
// keypair, and returns the hex encoded justification for target.
func newEncodedJustification(t *testing.T, target, voted *types.Header,
	keypairs []*ed25519.Keypair, ancestries ...*types.Header) string {
	t.Helper()

	precommit := justification.Precommit{TargetHash: voted.Hash(), TargetNumber: voted.Number}
	message, err := justification.SignedMessage(precommit, testRound, testSetID)
	require.NoError(t, err)

	j := justification.GrandpaJustification[*types.Header]{
		Round: testRound,
		Commit: justification.Commit{
			TargetHash:   target.Hash(),
			TargetNumber: target.Number,
		},
		VotesAncestries: ancestries,
	}

	for _, kp := range keypairs {
		sig, err := kp.Sign(message)
		require.NoError(t, err)
		signed := justification.SignedPrecommit{
			Precommit: precommit,
			ID:        kp.Public().(*ed25519.PublicKey).AsBytes(),
		}
		copy(signed.Signature[:], sig)
		j.Commit.Precommits = append(j.Commit.Precommits, signed)
	}

	encoded, err := j.Bytes()
	require.NoError(t, err)
	return common.BytesToHex(encoded)
}
