// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package keystore

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/ChainSafe/grandpa-bridge/lib/crypto"
	"github.com/ChainSafe/grandpa-bridge/lib/crypto/ed25519"
)

// ErrUnknownKey is returned when no development key has the requested name
var ErrUnknownKey = errors.New("unknown development key")

// Keyring represents a test keyring
type Keyring interface {
	Alice() crypto.Keypair
	Bob() crypto.Keypair
	Charlie() crypto.Keypair
	Dave() crypto.Keypair
	Eve() crypto.Keypair
	Ferdie() crypto.Keypair
	George() crypto.Keypair
	Heather() crypto.Keypair
	Ian() crypto.Keypair
}

// Ed25519Keyring holds the well known development authorities, each derived
// from the development phrase with the hard junction `//<Name>`.
type Ed25519Keyring struct {
	KeyAlice   *ed25519.Keypair
	KeyBob     *ed25519.Keypair
	KeyCharlie *ed25519.Keypair
	KeyDave    *ed25519.Keypair
	KeyEve     *ed25519.Keypair
	KeyFerdie  *ed25519.Keypair
	KeyGeorge  *ed25519.Keypair
	KeyHeather *ed25519.Keypair
	KeyIan     *ed25519.Keypair

	Keys []*ed25519.Keypair
}

// NewEd25519Keyring returns an initialised ed25519 Keyring
func NewEd25519Keyring() (*Ed25519Keyring, error) {
	kr := new(Ed25519Keyring)
	v := reflect.ValueOf(kr).Elem()
	kr.Keys = make([]*ed25519.Keypair, v.NumField()-1)

	for i := 0; i < v.NumField()-1; i++ {
		name := strings.TrimPrefix(v.Type().Field(i).Name, "Key")
		kp, err := ed25519.NewKeypairFromSURI("//"+name, "")
		if err != nil {
			return nil, fmt.Errorf("deriving key for %s: %w", name, err)
		}
		v.Field(i).Set(reflect.ValueOf(kp))

		kr.Keys[i] = kp
	}

	return kr, nil
}

// Alice returns Alice's key
func (kr *Ed25519Keyring) Alice() crypto.Keypair {
	return kr.KeyAlice
}

// Bob returns Bob's key
func (kr *Ed25519Keyring) Bob() crypto.Keypair {
	return kr.KeyBob
}

// Charlie returns Charlie's key
func (kr *Ed25519Keyring) Charlie() crypto.Keypair {
	return kr.KeyCharlie
}

// Dave returns Dave's key
func (kr *Ed25519Keyring) Dave() crypto.Keypair {
	return kr.KeyDave
}

// Eve returns Eve's key
func (kr *Ed25519Keyring) Eve() crypto.Keypair {
	return kr.KeyEve
}

// Ferdie returns Ferdie's key
func (kr *Ed25519Keyring) Ferdie() crypto.Keypair {
	return kr.KeyFerdie
}

// George returns George's key
func (kr *Ed25519Keyring) George() crypto.Keypair {
	return kr.KeyGeorge
}

// Heather returns Heather's key
func (kr *Ed25519Keyring) Heather() crypto.Keypair {
	return kr.KeyHeather
}

// Ian returns Ian's key
func (kr *Ed25519Keyring) Ian() crypto.Keypair {
	return kr.KeyIan
}

// ByName returns the key of the development authority with the given
// name, such as alice or Bob.
func (kr *Ed25519Keyring) ByName(name string) (*ed25519.Keypair, error) {
	v := reflect.ValueOf(kr).Elem()
	for i := 0; i < len(kr.Keys); i++ {
		fieldName := strings.TrimPrefix(v.Type().Field(i).Name, "Key")
		if strings.EqualFold(fieldName, name) {
			return kr.Keys[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownKey, name)
}
