// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package justification

import (
	"testing"

	"github.com/ChainSafe/grandpa-bridge/dot/types"
	"github.com/ChainSafe/grandpa-bridge/lib/common"
	"github.com/ChainSafe/grandpa-bridge/lib/crypto/ed25519"
	"github.com/ChainSafe/grandpa-bridge/lib/keystore"
	"github.com/stretchr/testify/require"
)

const (
	testRound uint64 = 27
	testSetID uint64 = 3
)

// newTestChain returns a chain of headers, the first one at number base.
// The salt makes chains built from the same parent diverge.
func newTestChain(parent common.Hash, base types.BlockNumber, length int, salt byte) []*types.Header {
	headers := make([]*types.Header, length)
	for i := range headers {
		headers[i] = types.NewHeader(parent, common.Hash{salt}, common.Hash{byte(i)},
			base+types.BlockNumber(i), types.Digest{})
		parent = headers[i].Hash()
	}
	return headers
}

func newTestKeyring(t *testing.T) *keystore.Ed25519Keyring {
	t.Helper()
	kr, err := keystore.NewEd25519Keyring()
	require.NoError(t, err)
	return kr
}

// newTestContext returns the context of Alice, Bob, Charlie and Dave with a
// weight of 1 each, giving a threshold of 3.
func newTestContext(t *testing.T, kr *keystore.Ed25519Keyring) VerificationContext {
	t.Helper()
	authorities := types.NewAuthorityListFromKeypairs(1, kr.KeyAlice, kr.KeyBob, kr.KeyCharlie, kr.KeyDave)
	context, err := NewVerificationContext(authorities, testSetID)
	require.NoError(t, err)
	return context
}

func signPrecommit(t *testing.T, kp *ed25519.Keypair, target *types.Header,
	round, setID uint64) SignedPrecommit {
	t.Helper()

	precommit := Precommit{TargetHash: target.Hash(), TargetNumber: target.Number}
	message, err := SignedMessage(precommit, round, setID)
	require.NoError(t, err)

	sig, err := kp.Sign(message)
	require.NoError(t, err)

	signed := SignedPrecommit{
		Precommit: precommit,
		ID:        kp.Public().(*ed25519.PublicKey).AsBytes(),
	}
	copy(signed.Signature[:], sig)
	return signed
}

// vote is a keypair voting for a header
type vote struct {
	key    *ed25519.Keypair
	target *types.Header
}

func makeJustification(t *testing.T, target *types.Header, votes []vote,
	ancestries ...*types.Header) GrandpaJustification[*types.Header] {
	t.Helper()

	precommits := make([]SignedPrecommit, len(votes))
	for i, v := range votes {
		precommits[i] = signPrecommit(t, v.key, v.target, testRound, testSetID)
	}

	return GrandpaJustification[*types.Header]{
		Round: testRound,
		Commit: Commit{
			TargetHash:   target.Hash(),
			TargetNumber: target.Number,
			Precommits:   precommits,
		},
		VotesAncestries: ancestries,
	}
}
