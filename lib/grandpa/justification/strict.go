// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package justification

import (
	"fmt"

	"github.com/ChainSafe/grandpa-bridge/dot/types"
	"github.com/ChainSafe/grandpa-bridge/lib/common"
	"github.com/tidwall/btree"
)

// strictVerifier rejects every unknown, duplicate, unrelated or
// redundant vote and every unused ancestry header.
type strictVerifier struct {
	votes *btree.BTreeG[types.AuthorityID]
}

func newStrictVerifier() *strictVerifier {
	return &strictVerifier{
		votes: btree.NewBTreeG(func(a, b types.AuthorityID) bool {
			return a.Compare(b) < 0
		}),
	}
}

func (*strictVerifier) ProcessDuplicateVotesAncestries(duplicates []int) error {
	return fmt.Errorf("%w: at indexes %v", ErrDuplicateVotesAncestries, duplicates)
}

func (*strictVerifier) ProcessRedundantVote(int) (IterationFlow, error) {
	return Skip, ErrRedundantAuthorityVote
}

func (v *strictVerifier) ProcessKnownAuthorityVote(_ int, signed SignedPrecommit) (IterationFlow, error) {
	// only the first vote of an authority counts
	if _, has := v.votes.Get(signed.ID); has {
		return Skip, ErrDuplicateAuthorityVote
	}
	return Run, nil
}

func (*strictVerifier) ProcessUnknownAuthorityVote(int) error {
	return ErrUnknownAuthorityVote
}

func (*strictVerifier) ProcessUnrelatedAncestryVote(int) (IterationFlow, error) {
	return Skip, ErrUnrelatedAncestryVote
}

func (*strictVerifier) ProcessInvalidSignatureVote(int) error {
	return ErrInvalidAuthoritySignature
}

func (v *strictVerifier) ProcessValidVote(signed SignedPrecommit) {
	v.votes.Set(signed.ID)
}

func (*strictVerifier) ProcessRedundantVotesAncestries(redundant []common.Hash) error {
	return fmt.Errorf("%w: %d unused headers", ErrRedundantVotesAncestries, len(redundant))
}

// VerifyJustification verifies that the justification, generated by the
// authority set of the context, finalizes the target. Any invalid,
// duplicate or unneeded data in the justification is an error.
func VerifyJustification[H Header](target types.HeaderID, context VerificationContext,
	justification GrandpaJustification[H]) error {
	return verifyJustification(target, context, justification, newStrictVerifier())
}
