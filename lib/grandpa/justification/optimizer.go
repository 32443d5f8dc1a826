// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package justification

import (
	"github.com/ChainSafe/grandpa-bridge/dot/types"
	"github.com/ChainSafe/grandpa-bridge/lib/common"
	"github.com/hashicorp/go-multierror"
	"github.com/tidwall/btree"
)

// OptimizationReport lists what was removed from an optimized justification.
type OptimizationReport struct {
	// DroppedPrecommits holds the indexes of the removed precommits, in
	// the original precommits list.
	DroppedPrecommits []int
	// DuplicateAncestries holds the indexes of the removed duplicate
	// ancestry headers.
	DuplicateAncestries []int
	// RedundantAncestries holds the hashes of the removed unused
	// ancestry headers.
	RedundantAncestries []common.Hash

	reasons *multierror.Error
}

// Report returns the reasons every precommit was dropped, or nil if no
// precommit was dropped.
func (r *OptimizationReport) Report() error {
	return r.reasons.ErrorOrNil()
}

// Changed returns true if the justification was modified.
func (r *OptimizationReport) Changed() bool {
	return len(r.DroppedPrecommits) > 0 ||
		len(r.DuplicateAncestries) > 0 ||
		len(r.RedundantAncestries) > 0
}

// optimizer records and skips every problematic vote and ancestry header.
type optimizer struct {
	votes  *btree.BTreeG[types.AuthorityID]
	report OptimizationReport
}

func newOptimizer() *optimizer {
	return &optimizer{
		votes: btree.NewBTreeG(func(a, b types.AuthorityID) bool {
			return a.Compare(b) < 0
		}),
	}
}

func (o *optimizer) drop(precommitIndex int, reason error) {
	o.report.DroppedPrecommits = append(o.report.DroppedPrecommits, precommitIndex)
	o.report.reasons = multierror.Append(o.report.reasons, newPrecommitError(precommitIndex, reason))
}

func (o *optimizer) ProcessDuplicateVotesAncestries(duplicates []int) error {
	o.report.DuplicateAncestries = duplicates
	return nil
}

func (o *optimizer) ProcessRedundantVote(precommitIndex int) (IterationFlow, error) {
	o.drop(precommitIndex, ErrRedundantAuthorityVote)
	return Skip, nil
}

func (o *optimizer) ProcessKnownAuthorityVote(precommitIndex int, signed SignedPrecommit) (IterationFlow, error) {
	if _, has := o.votes.Get(signed.ID); has {
		o.drop(precommitIndex, ErrDuplicateAuthorityVote)
		return Skip, nil
	}
	return Run, nil
}

func (o *optimizer) ProcessUnknownAuthorityVote(precommitIndex int) error {
	o.drop(precommitIndex, ErrUnknownAuthorityVote)
	return nil
}

func (o *optimizer) ProcessUnrelatedAncestryVote(precommitIndex int) (IterationFlow, error) {
	o.drop(precommitIndex, ErrUnrelatedAncestryVote)
	return Skip, nil
}

func (o *optimizer) ProcessInvalidSignatureVote(precommitIndex int) error {
	o.drop(precommitIndex, ErrInvalidAuthoritySignature)
	return nil
}

func (o *optimizer) ProcessValidVote(signed SignedPrecommit) {
	o.votes.Set(signed.ID)
}

func (o *optimizer) ProcessRedundantVotesAncestries(redundant []common.Hash) error {
	o.report.RedundantAncestries = redundant
	return nil
}

// VerifyAndOptimizeJustification verifies the justification, dropping the
// precommits and ancestry headers that would make strict verification
// fail. The justification is only modified when enough signed weight
// remains, in which case it then passes VerifyJustification.
func VerifyAndOptimizeJustification[H Header](target types.HeaderID, context VerificationContext,
	justification *GrandpaJustification[H]) (*OptimizationReport, error) {
	o := newOptimizer()
	err := verifyJustification(target, context, *justification, o)
	if err != nil {
		return nil, err
	}

	report := o.report
	justification.Commit.Precommits = removeIndexes(justification.Commit.Precommits, report.DroppedPrecommits)
	ancestries := removeIndexes(justification.VotesAncestries, report.DuplicateAncestries)

	if len(report.RedundantAncestries) > 0 {
		redundant := make(map[common.Hash]struct{}, len(report.RedundantAncestries))
		for _, hash := range report.RedundantAncestries {
			redundant[hash] = struct{}{}
		}

		kept := make([]H, 0, len(ancestries))
		for _, header := range ancestries {
			if _, drop := redundant[header.ID().Hash]; !drop {
				kept = append(kept, header)
			}
		}
		ancestries = kept
	}
	justification.VotesAncestries = ancestries

	if report.Changed() {
		logger.Debugf("optimized justification for %s: dropped %d precommits, %d duplicate and %d unused ancestries",
			target, len(report.DroppedPrecommits), len(report.DuplicateAncestries), len(report.RedundantAncestries))
	}
	return &report, nil
}

// removeIndexes returns a new slice without the elements at the given
// ascending indexes.
func removeIndexes[T any](items []T, indexes []int) []T {
	if len(indexes) == 0 {
		return items
	}

	kept := make([]T, 0, len(items)-len(indexes))
	next := 0
	for i, item := range items {
		if next < len(indexes) && indexes[next] == i {
			next++
			continue
		}
		kept = append(kept, item)
	}
	return kept
}
