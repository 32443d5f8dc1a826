// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"fmt"

	"github.com/ChainSafe/grandpa-bridge/lib/crypto/ed25519"
)

// AuthorityID is the ed25519 public key of a GRANDPA authority
type AuthorityID = ed25519.PublicKeyBytes

// Authority represents a GRANDPA authority and its voting weight
type Authority struct {
	Key    AuthorityID `json:"id"`
	Weight uint64      `json:"weight"`
}

// NewAuthority returns a new Authority
func NewAuthority(key AuthorityID, weight uint64) Authority {
	return Authority{Key: key, Weight: weight}
}

func (a Authority) String() string {
	return fmt.Sprintf("key=%s weight=%d", a.Key, a.Weight)
}

// AuthorityList is a list of authorities with their weights, as
// scheduled by the runtime for a set id.
type AuthorityList []Authority

// NewAuthorityListFromKeypairs returns a list giving each keypair the
// given weight.
func NewAuthorityListFromKeypairs(weight uint64, keypairs ...*ed25519.Keypair) AuthorityList {
	list := make(AuthorityList, len(keypairs))
	for i, kp := range keypairs {
		list[i] = Authority{
			Key:    kp.Public().(*ed25519.PublicKey).AsBytes(),
			Weight: weight,
		}
	}
	return list
}
