// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package ed25519

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ChainSafe/go-schnorrkel"
	"github.com/ChainSafe/grandpa-bridge/lib/common"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// DevPhrase is the well known substrate development mnemonic
const DevPhrase = "bottom drive obey lake curtain smoke basket hold race lonely fit walk"

const junctionIDLength = 32

var (
	// ErrSoftJunction is returned when a soft derivation is requested, ed25519 only supports hard junctions
	ErrSoftJunction = errors.New("soft key in path")
	// ErrInvalidSecretURI is returned when the secret URI has no phrase and no path
	ErrInvalidSecretURI = errors.New("invalid secret uri")
)

type chainCode [junctionIDLength]byte

// newChainCode computes the chain code for a junction: numeric junctions are
// encoded as u64, anything else as a SCALE string. Encodings longer than 32
// bytes are hashed.
func newChainCode(junction string) (cc chainCode, err error) {
	var encoded []byte
	if n, parseErr := strconv.ParseUint(junction, 10, 64); parseErr == nil {
		encoded = make([]byte, 8)
		binary.LittleEndian.PutUint64(encoded, n)
	} else {
		buf := bytes.NewBuffer(nil)
		err = scale.NewEncoder(buf).Encode(junction)
		if err != nil {
			return cc, fmt.Errorf("encoding junction: %w", err)
		}
		encoded = buf.Bytes()
	}

	if len(encoded) > junctionIDLength {
		return chainCode(common.MustBlake2bHash(encoded)), nil
	}
	copy(cc[:], encoded)
	return cc, nil
}

func deriveHardJunction(seed [SeedLength]byte, cc chainCode) ([SeedLength]byte, error) {
	tuple := struct {
		ID   string
		Seed [SeedLength]byte
		CC   chainCode
	}{"Ed25519HDKD", seed, cc}

	buf := bytes.NewBuffer(nil)
	err := scale.NewEncoder(buf).Encode(tuple)
	if err != nil {
		return [SeedLength]byte{}, err
	}
	return common.MustBlake2bHash(buf.Bytes()), nil
}

// NewKeypairFromSURI derives a keypair from a secret URI of the form
// `<phrase>//hard1//hard2`. When the phrase is omitted the DevPhrase is used,
// so `//Alice` yields the development key of Alice.
func NewKeypairFromSURI(suri string, password string) (*Keypair, error) {
	phrase, path, _ := strings.Cut(suri, "//")
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		if path == "" {
			return nil, ErrInvalidSecretURI
		}
		phrase = DevPhrase
	}

	bigSeed, err := schnorrkel.SeedFromMnemonic(phrase, password)
	if err != nil {
		return nil, fmt.Errorf("seed from mnemonic: %w", err)
	}

	var seed [SeedLength]byte
	copy(seed[:], bigSeed[:SeedLength])

	if path != "" {
		for _, junction := range strings.Split(path, "//") {
			if strings.Contains(junction, "/") {
				return nil, fmt.Errorf("%w: %s", ErrSoftJunction, junction)
			}
			cc, err := newChainCode(junction)
			if err != nil {
				return nil, err
			}
			seed, err = deriveHardJunction(seed, cc)
			if err != nil {
				return nil, fmt.Errorf("deriving hard junction %s: %w", junction, err)
			}
		}
	}

	return NewKeypairFromSeed(seed[:])
}
