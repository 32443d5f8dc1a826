// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/grandpa-bridge/lib/crypto/ed25519"
	"github.com/ChainSafe/grandpa-bridge/lib/keystore"
)

// ErrNoAuthorityName is returned when a development configuration is
// requested without any authority.
var ErrNoAuthorityName = errors.New("no development authority name given")

// DefaultDevAuthorities are the authorities of a development configuration.
var DefaultDevAuthorities = []string{"alice", "bob", "charlie"}

// Dev returns the default configuration with the named development
// authorities, each with a weight of 1.
func Dev(setID uint64, names ...string) (*Config, error) {
	if len(names) == 0 {
		return nil, ErrNoAuthorityName
	}

	kr, err := keystore.NewEd25519Keyring()
	if err != nil {
		return nil, fmt.Errorf("creating development keyring: %w", err)
	}

	keypairs := make([]*ed25519.Keypair, len(names))
	for i, name := range names {
		keypairs[i], err = kr.ByName(name)
		if err != nil {
			return nil, err
		}
	}

	cfg := Default()
	cfg.Authorities.SetID = setID
	cfg.AddAuthorities(1, keypairs...)
	return cfg, nil
}
