// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package justification

import (
	"fmt"

	"github.com/ChainSafe/grandpa-bridge/dot/types"
	"github.com/ChainSafe/grandpa-bridge/lib/common"
	"github.com/ChainSafe/grandpa-bridge/lib/crypto/ed25519"
)

// Header is the capability required from the headers carried in a
// justification's votes ancestries.
type Header interface {
	ID() types.HeaderID
	ParentID() (id types.HeaderID, ok bool)
}

var _ Header = (*types.Header)(nil)

// Precommit is a vote for the block with the given hash and number
type Precommit struct {
	TargetHash   common.Hash
	TargetNumber types.BlockNumber
}

// SignedPrecommit is a precommit signed by a GRANDPA authority
type SignedPrecommit struct {
	Precommit Precommit
	Signature ed25519.SignatureBytes
	ID        types.AuthorityID
}

func (sp SignedPrecommit) String() string {
	return fmt.Sprintf("precommit for #%d (%s) by %s",
		sp.Precommit.TargetNumber, sp.Precommit.TargetHash.Short(), sp.ID)
}

// Commit is the target of a round along with the precommits supporting it
type Commit struct {
	TargetHash   common.Hash
	TargetNumber types.BlockNumber
	Precommits   []SignedPrecommit
}

// Target returns the identifier of the committed block.
func (c Commit) Target() types.HeaderID {
	return types.HeaderID{Hash: c.TargetHash, Number: c.TargetNumber}
}

// GrandpaJustification is a proof of finality of a block: a commit for
// the block plus the headers linking every precommit target back to it.
type GrandpaJustification[H Header] struct {
	Round           uint64
	Commit          Commit
	VotesAncestries []H
}
