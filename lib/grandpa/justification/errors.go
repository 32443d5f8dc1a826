// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package justification

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidJustificationTarget is returned when the commit target differs from the claimed finalized target
	ErrInvalidJustificationTarget = errors.New("justification is finalizing unexpected header")
	// ErrInvalidAuthoritySignature is returned when a precommit signature does not verify
	ErrInvalidAuthoritySignature = errors.New("invalid authority signature")
	// ErrUnknownAuthorityVote is returned when a precommit is signed by an authority outside the set
	ErrUnknownAuthorityVote = errors.New("vote by unknown authority")
	// ErrUnrelatedAncestryVote is returned when a precommit target is not a descendant of the commit target
	ErrUnrelatedAncestryVote = errors.New("precommit is not a descendant of the commit target")
	// ErrDuplicateAuthorityVote is returned when an authority already credited casts a different vote
	ErrDuplicateAuthorityVote = errors.New("duplicate vote by authority")
	// ErrRedundantAuthorityVote is returned when the same signed precommit appears more than once
	ErrRedundantAuthorityVote = errors.New("redundant vote by authority")
	// ErrRedundantVotesAncestries is returned when ancestry headers are not used by any accepted vote
	ErrRedundantVotesAncestries = errors.New("redundant votes ancestries")
	// ErrDuplicateVotesAncestries is returned when the same ancestry header is supplied more than once
	ErrDuplicateVotesAncestries = errors.New("duplicate votes ancestries")
	// ErrInsufficientSignedWeight is returned when the accepted votes do not reach the threshold
	ErrInsufficientSignedWeight = errors.New("not enough signed weight")
	// ErrInvalidAuthorityList is returned when a voter set cannot be built from an authority list
	ErrInvalidAuthorityList = errors.New("invalid authority list")
	// ErrTrailingBytes is returned when an encoded justification has bytes left after decoding
	ErrTrailingBytes = errors.New("trailing bytes after justification")
	// ErrLengthTooLarge is returned when an encoded length exceeds what the remaining input can hold
	ErrLengthTooLarge = errors.New("encoded length exceeds remaining input")
)

// PrecommitError is the error for a single precommit of a justification.
type PrecommitError struct {
	Index int
	Err   error
}

func (e *PrecommitError) Error() string {
	return fmt.Sprintf("precommit #%d: %s", e.Index, e.Err)
}

func (e *PrecommitError) Unwrap() error {
	return e.Err
}

func newPrecommitError(index int, err error) *PrecommitError {
	return &PrecommitError{Index: index, Err: err}
}
