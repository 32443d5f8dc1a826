// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package justification

import (
	"errors"
	"fmt"
	"math"

	"github.com/ChainSafe/grandpa-bridge/dot/types"
	"github.com/tidwall/btree"
	"golang.org/x/exp/slices"
)

var errWeightOverflow = errors.New("voter weight overflow")

// VoterWeight is the voting weight of an authority
type VoterWeight uint64

// CheckedAdd adds other to the weight, failing instead of wrapping around.
func (vw *VoterWeight) CheckedAdd(other VoterWeight) error {
	if other > math.MaxUint64-*vw {
		return errWeightOverflow
	}
	*vw += other
	return nil
}

// VoterInfo is the information about a voter in a VoterSet
type VoterInfo struct {
	ID       types.AuthorityID
	Position int
	Weight   VoterWeight
}

// VoterSet is a non-empty set of voters with their weights, ordered by
// voter id.
type VoterSet struct {
	voters      []VoterInfo
	threshold   VoterWeight
	totalWeight VoterWeight
}

// NewVoterSet creates a voter set from an authority list.
// Weights listed more than once for the same id are partial weights and
// are accumulated, zero weights are ignored. It fails if the resulting set
// is empty or if the total weight overflows.
func NewVoterSet(authorities types.AuthorityList) (*VoterSet, error) {
	voters := btree.NewBTreeG(func(a, b VoterInfo) bool {
		return a.ID.Compare(b.ID) < 0
	})

	var totalWeight VoterWeight
	for _, authority := range authorities {
		if authority.Weight == 0 {
			continue
		}

		weight := VoterWeight(authority.Weight)
		err := totalWeight.CheckedAdd(weight)
		if err != nil {
			return nil, fmt.Errorf("%w: total weight overflows", ErrInvalidAuthorityList)
		}

		info, has := voters.Get(VoterInfo{ID: authority.Key})
		if has {
			weight += info.Weight
		}
		voters.Set(VoterInfo{ID: authority.Key, Weight: weight})
	}

	if voters.Len() == 0 {
		return nil, fmt.Errorf("%w: no voter with a non zero weight", ErrInvalidAuthorityList)
	}

	ordered := make([]VoterInfo, 0, voters.Len())
	voters.Scan(func(info VoterInfo) bool {
		info.Position = len(ordered)
		ordered = append(ordered, info)
		return true
	})

	return &VoterSet{
		voters:      ordered,
		totalWeight: totalWeight,
		threshold:   threshold(totalWeight),
	}, nil
}

// Get returns the voter info for the voter with the given id, or nil if
// the id is not in the set.
func (vs *VoterSet) Get(id types.AuthorityID) *VoterInfo {
	idx, ok := slices.BinarySearchFunc(vs.voters, id, func(info VoterInfo, target types.AuthorityID) int {
		return info.ID.Compare(target)
	})
	if !ok {
		return nil
	}
	info := vs.voters[idx]
	return &info
}

// Contains returns true if the set contains a voter with the given id.
func (vs *VoterSet) Contains(id types.AuthorityID) bool {
	return vs.Get(id) != nil
}

// Len returns the number of voters.
func (vs *VoterSet) Len() int {
	return len(vs.voters)
}

// Voters returns a copy of the voters, ordered by id.
func (vs *VoterSet) Voters() []VoterInfo {
	return slices.Clone(vs.voters)
}

// Threshold returns the weight required for a supermajority of this set.
func (vs *VoterSet) Threshold() VoterWeight {
	return vs.threshold
}

// TotalWeight returns the weight of all voters.
func (vs *VoterSet) TotalWeight() VoterWeight {
	return vs.totalWeight
}

// threshold computes the supermajority weight, strictly more than two
// thirds of the total weight when it is a multiple of three.
func threshold(totalWeight VoterWeight) VoterWeight {
	faulty := (totalWeight - 1) / 3
	return totalWeight - faulty
}

// RequiredJustificationPrecommits returns the minimal number of precommits
// a justification needs for a set of authorityCount equally weighted
// authorities.
func RequiredJustificationPrecommits(authorityCount uint32) uint32 {
	if authorityCount == 0 {
		return 0
	}
	return authorityCount - (authorityCount-1)/3
}
