// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package justification

import (
	"github.com/ChainSafe/grandpa-bridge/dot/types"
	"github.com/ChainSafe/grandpa-bridge/lib/common"
	"github.com/tidwall/btree"
)

func hashLess(a, b common.Hash) bool {
	return a.Compare(b) < 0
}

// ancestryChain links precommit targets back to the commit target using
// the votes ancestries of a justification.
type ancestryChain struct {
	base types.HeaderID
	// parents maps each ancestry header hash to its own number and parent
	parents   map[common.Hash]ancestryEntry
	unvisited *btree.BTreeG[common.Hash]
}

type ancestryEntry struct {
	number    types.BlockNumber
	parent    types.HeaderID
	hasParent bool
}

// newAncestryChain indexes the ancestries by hash and returns the indexes
// of headers already seen earlier in the list.
func newAncestryChain[H Header](base types.HeaderID, ancestries []H) (
	chain *ancestryChain, duplicates []int) {
	chain = &ancestryChain{
		base:      base,
		parents:   make(map[common.Hash]ancestryEntry, len(ancestries)),
		unvisited: btree.NewBTreeG(hashLess),
	}

	for i, header := range ancestries {
		id := header.ID()
		if _, has := chain.parents[id.Hash]; has {
			duplicates = append(duplicates, i)
			continue
		}

		parent, hasParent := header.ParentID()
		chain.parents[id.Hash] = ancestryEntry{
			number:    id.Number,
			parent:    parent,
			hasParent: hasParent,
		}
		chain.unvisited.Set(id.Hash)
	}

	return chain, duplicates
}

// ancestry returns the hashes of the ancestry headers between the given
// precommit target and the base, the base excluded. The walk stops early
// at a header visited by a previous route, such a header being already
// known to descend from the base. Every step must decrease the block
// number by exactly one, which rules out cycles.
func (c *ancestryChain) ancestry(hash common.Hash, number types.BlockNumber) (
	route []common.Hash, ok bool) {
	if number < c.base.Number {
		return nil, false
	}

	current := types.HeaderID{Hash: hash, Number: number}
	for current.Hash != c.base.Hash {
		if current.Number <= c.base.Number {
			return nil, false
		}

		entry, has := c.parents[current.Hash]
		if !has || entry.number != current.Number || !entry.hasParent {
			return nil, false
		}

		if _, unvisited := c.unvisited.Get(current.Hash); !unvisited {
			return route, true
		}

		route = append(route, current.Hash)
		if entry.parent.Number != current.Number-1 {
			return nil, false
		}
		current = entry.parent
	}

	if current.Number != c.base.Number {
		return nil, false
	}
	return route, true
}

func (c *ancestryChain) markRouteAsVisited(route []common.Hash) {
	for _, hash := range route {
		c.unvisited.Delete(hash)
	}
}

// unvisitedHashes returns the ancestries never used by a route, in
// ascending hash order.
func (c *ancestryChain) unvisitedHashes() []common.Hash {
	return c.unvisited.Items()
}

func (c *ancestryChain) isFullyVisited() bool {
	return c.unvisited.Len() == 0
}
