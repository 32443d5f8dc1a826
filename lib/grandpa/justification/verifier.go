// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package justification

import (
	"fmt"

	"github.com/ChainSafe/grandpa-bridge/dot/types"
	"github.com/ChainSafe/grandpa-bridge/internal/log"
	"github.com/ChainSafe/grandpa-bridge/lib/common"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/tidwall/btree"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "justification"))

var (
	verificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "grandpa_bridge_justification",
		Name:      "verifications_total",
		Help:      "number of justification verifications by result",
	}, []string{"result"})
	precommitsSkippedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "grandpa_bridge_justification",
		Name:      "precommits_skipped_total",
		Help:      "number of precommits skipped by the verification policy",
	})
)

// IterationFlow tells the verification engine what to do with the
// current precommit after a policy hook returned without error.
type IterationFlow uint8

const (
	// Run processes the precommit further
	Run IterationFlow = iota
	// Skip ignores the precommit and moves on to the next one
	Skip
)

func (f IterationFlow) String() string {
	if f == Skip {
		return "skip"
	}
	return "run"
}

// JustificationVerifier is the policy deciding the fate of every
// problematic precommit or ancestry header met during verification.
// A returned error aborts the verification.
type JustificationVerifier interface {
	// ProcessDuplicateVotesAncestries is called with the indexes of the
	// ancestry headers already present earlier in the ancestries.
	ProcessDuplicateVotesAncestries(duplicates []int) error
	// ProcessRedundantVote is called when a signed precommit is the exact
	// copy of an already accepted one.
	ProcessRedundantVote(precommitIndex int) (IterationFlow, error)
	// ProcessKnownAuthorityVote is called when an already credited
	// authority casts a different vote.
	ProcessKnownAuthorityVote(precommitIndex int, signed SignedPrecommit) (IterationFlow, error)
	// ProcessUnknownAuthorityVote is called for a precommit from an id
	// outside the voter set. The precommit is skipped on nil error.
	ProcessUnknownAuthorityVote(precommitIndex int) error
	// ProcessUnrelatedAncestryVote is called when the precommit target
	// cannot be linked to the commit target.
	ProcessUnrelatedAncestryVote(precommitIndex int) (IterationFlow, error)
	// ProcessInvalidSignatureVote is called for a precommit with a bad
	// signature. The precommit is skipped on nil error.
	ProcessInvalidSignatureVote(precommitIndex int) error
	// ProcessValidVote is called for every accepted precommit.
	ProcessValidVote(signed SignedPrecommit)
	// ProcessRedundantVotesAncestries is called with the hashes of the
	// ancestry headers no accepted precommit used, in ascending order.
	ProcessRedundantVotesAncestries(redundant []common.Hash) error
}

func signedPrecommitLess(a, b SignedPrecommit) bool {
	return a.ID.Compare(b.ID) < 0
}

// verifyJustification checks that the justification finalizes the target
// with the authority set of the context, delegating the handling of every
// problematic vote or ancestry to the policy. The signed weight threshold
// is always enforced.
func verifyJustification[H Header](target types.HeaderID, context VerificationContext,
	justification GrandpaJustification[H], policy JustificationVerifier) (err error) {
	defer func() {
		if err != nil {
			logger.Debugf("justification for %s rejected: %s", target, err)
			verificationsTotal.WithLabelValues("invalid").Inc()
			return
		}
		verificationsTotal.WithLabelValues("valid").Inc()
	}()

	commitTarget := justification.Commit.Target()
	if commitTarget != target {
		return fmt.Errorf("%w: commit target is %s, expected %s",
			ErrInvalidJustificationTarget, commitTarget, target)
	}

	chain, duplicates := newAncestryChain(target, justification.VotesAncestries)
	if len(duplicates) > 0 {
		logger.Tracef("justification for %s has duplicate ancestries at indexes %v", target, duplicates)
		err = policy.ProcessDuplicateVotesAncestries(duplicates)
		if err != nil {
			return err
		}
	}

	signatures := context.signatureVerifier()
	credited := btree.NewBTreeG(signedPrecommitLess)
	var signedWeight VoterWeight

	for i, signed := range justification.Commit.Precommits {
		if !verifyPrecommitSignature(signatures, signed, justification.Round, context.SetID) {
			logger.Tracef("invalid signature for %s", signed)
			err = policy.ProcessInvalidSignatureVote(i)
			if err != nil {
				return newPrecommitError(i, err)
			}
			precommitsSkippedTotal.Inc()
			continue
		}

		voter := context.VoterSet.Get(signed.ID)
		if voter == nil {
			logger.Tracef("unknown authority for %s", signed)
			err = policy.ProcessUnknownAuthorityVote(i)
			if err != nil {
				return newPrecommitError(i, err)
			}
			precommitsSkippedTotal.Inc()
			continue
		}

		route, related := chain.ancestry(signed.Precommit.TargetHash, signed.Precommit.TargetNumber)
		if !related {
			logger.Tracef("unrelated ancestry for %s", signed)
			var flow IterationFlow
			flow, err = policy.ProcessUnrelatedAncestryVote(i)
			if err != nil {
				return newPrecommitError(i, err)
			}
			if flow == Skip {
				precommitsSkippedTotal.Inc()
				continue
			}
		}

		previous, alreadyCredited := credited.Get(SignedPrecommit{ID: signed.ID})
		if alreadyCredited {
			var flow IterationFlow
			if previous == signed {
				logger.Tracef("redundant %s", signed)
				flow, err = policy.ProcessRedundantVote(i)
			} else {
				logger.Tracef("known authority casting another %s", signed)
				flow, err = policy.ProcessKnownAuthorityVote(i, signed)
			}
			if err != nil {
				return newPrecommitError(i, err)
			}
			if flow == Skip {
				precommitsSkippedTotal.Inc()
				continue
			}
		}

		policy.ProcessValidVote(signed)
		if related {
			chain.markRouteAsVisited(route)
		}
		if !alreadyCredited {
			credited.Set(signed)
			err = signedWeight.CheckedAdd(voter.Weight)
			if err != nil {
				return newPrecommitError(i, err)
			}
		}
	}

	required := context.VoterSet.Threshold()
	if signedWeight < required {
		return fmt.Errorf("%w: %d of %d required", ErrInsufficientSignedWeight, signedWeight, required)
	}

	if !chain.isFullyVisited() {
		redundant := chain.unvisitedHashes()
		logger.Tracef("justification for %s has %d unused ancestries", target, len(redundant))
		err = policy.ProcessRedundantVotesAncestries(redundant)
		if err != nil {
			return err
		}
	}

	logger.Debugf("justification for %s verified with signed weight %d of %d",
		target, signedWeight, required)
	return nil
}
