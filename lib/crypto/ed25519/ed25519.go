// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package ed25519

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/ChainSafe/grandpa-bridge/lib/common"
	"github.com/ChainSafe/grandpa-bridge/lib/crypto"

	bip39 "github.com/cosmos/go-bip39"
)

const (
	// PublicKeyLength is the fixed Public Key Length
	PublicKeyLength int = 32
	// SeedLength is the length of the seed
	SeedLength int = 32
	// PrivateKeyLength is the fixed Private Key Length
	PrivateKeyLength int = 64
	// SignatureLength is the fixed Signature Length
	SignatureLength int = 64
)

var (
	// ErrInvalidPublicKeyLength is returned when the public key byte length is not 32
	ErrInvalidPublicKeyLength = errors.New("invalid ed25519 public key length")
	// ErrInvalidPrivateKeyLength is returned when the private key byte length is not 64
	ErrInvalidPrivateKeyLength = errors.New("invalid ed25519 private key length")
	// ErrInvalidSignatureLength is returned when the signature byte length is not 64
	ErrInvalidSignatureLength = errors.New("invalid ed25519 signature length")
)

// Keypair is a ed25519 public-private keypair
type Keypair struct {
	public  *PublicKey
	private *PrivateKey
}

// PrivateKey is the ed25519 private key
type PrivateKey ed25519.PrivateKey

// PublicKey is the ed25519 public key
type PublicKey ed25519.PublicKey

// PublicKeyBytes is an encoded ed25519 public key
type PublicKeyBytes [PublicKeyLength]byte

// SignatureBytes is an encoded ed25519 signature
type SignatureBytes [SignatureLength]byte

// String returns the PublicKeyBytes formatted as a hex string
func (b PublicKeyBytes) String() string {
	return common.BytesToHex(b[:])
}

// Compare returns -1, 0 or 1 comparing the key bytes lexicographically
func (b PublicKeyBytes) Compare(other PublicKeyBytes) int {
	return common.Hash(b).Compare(common.Hash(other))
}

// SS58 returns the SS58 address of the key using the generic substrate prefix
func (b PublicKeyBytes) SS58() string {
	address, err := crypto.EncodeSS58(crypto.SubstrateNetworkPrefix, b[:])
	if err != nil {
		panic(err)
	}
	return address
}

// MarshalText encodes the key as a 0x prefixed hex string.
func (b PublicKeyBytes) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText decodes a 0x prefixed hex string or an SS58 address.
func (b *PublicKeyBytes) UnmarshalText(text []byte) (err error) {
	*b, err = NewPublicKeyBytesFromString(string(text))
	return err
}

// String returns the signature formatted as a hex string
func (s SignatureBytes) String() string {
	return common.BytesToHex(s[:])
}

// NewPublicKeyBytesFromString decodes a 0x prefixed hex string or an SS58 address
// into PublicKeyBytes.
func NewPublicKeyBytesFromString(in string) (PublicKeyBytes, error) {
	var (
		raw []byte
		err error
	)
	if len(in) > 2 && in[:2] == "0x" {
		raw, err = common.HexToBytes(in)
	} else {
		_, raw, err = crypto.DecodeSS58(in)
	}
	if err != nil {
		return PublicKeyBytes{}, err
	}

	if len(raw) != PublicKeyLength {
		return PublicKeyBytes{}, fmt.Errorf("%w: %d", ErrInvalidPublicKeyLength, len(raw))
	}

	var b PublicKeyBytes
	copy(b[:], raw)
	return b, nil
}

// VerifySignature verifies a signature given a public key and a message
func VerifySignature(publicKey, signature, message []byte) error {
	pubKey, err := NewPublicKey(publicKey)
	if err != nil {
		return fmt.Errorf("ed25519: %w", err)
	}

	ok, err := pubKey.Verify(message, signature)
	if err != nil {
		return fmt.Errorf("ed25519: %w", err)
	} else if !ok {
		return fmt.Errorf("ed25519: %w: for message 0x%x, signature 0x%x and public key 0x%x",
			crypto.ErrSignatureVerificationFailed, message, signature, publicKey)
	}

	return nil
}

// NewKeypair returns an Ed25519 keypair given a ed25519 private key
func NewKeypair(priv ed25519.PrivateKey) *Keypair {
	pubkey := PublicKey(priv.Public().(ed25519.PublicKey))
	privkey := PrivateKey(priv)
	return &Keypair{
		public:  &pubkey,
		private: &privkey,
	}
}

// NewKeypairFromSeed generates a new ed25519 keypair from a 32 byte seed
func NewKeypairFromSeed(seed []byte) (*Keypair, error) {
	if len(seed) != SeedLength {
		return nil, fmt.Errorf("cannot generate key from seed: seed is not 32 bytes long")
	}
	edpriv := ed25519.NewKeyFromSeed(seed)
	return NewKeypair(edpriv), nil
}

// NewKeypairFromPrivateKeyString returns a Keypair given a 0x prefixed private key string
func NewKeypairFromPrivateKeyString(in string) (*Keypair, error) {
	privBytes, err := common.HexToBytes(in)
	if err != nil {
		return nil, err
	}

	switch len(privBytes) {
	case SeedLength:
		return NewKeypairFromSeed(privBytes)
	case PrivateKeyLength:
		return NewKeypair(ed25519.PrivateKey(privBytes)), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidPrivateKeyLength, len(privBytes))
	}
}

// NewKeypairFromMnenomic returns a new Keypair using the given mnemonic and password.
func NewKeypairFromMnenomic(mnemonic, password string) (*Keypair, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, password)
	if err != nil {
		return nil, err
	}
	return NewKeypairFromSeed(seed[:SeedLength])
}

// GenerateKeypair returns a new ed25519 keypair
func GenerateKeypair() (*Keypair, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}

	return NewKeypair(priv), nil
}

// NewPublicKey returns an ed25519 public key that consists of the input bytes
// Input length must be 32 bytes
func NewPublicKey(in []byte) (*PublicKey, error) {
	if len(in) != PublicKeyLength {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPublicKeyLength, len(in))
	}

	pub := PublicKey(append([]byte{}, in...))
	return &pub, nil
}

// Verify returns true if the signature is valid for the given message and public key, false otherwise
func Verify(pub *PublicKey, msg, sig []byte) (bool, error) {
	if len(sig) != SignatureLength {
		return false, fmt.Errorf("%w: %d", ErrInvalidSignatureLength, len(sig))
	}

	return ed25519.Verify(ed25519.PublicKey(*pub), msg, sig), nil
}

// Type returns Ed25519Type
func (kp *Keypair) Type() crypto.KeyType {
	return crypto.Ed25519Type
}

// Sign uses the keypair to sign the message using the ed25519 signature algorithm
func (kp *Keypair) Sign(msg []byte) ([]byte, error) {
	return ed25519.Sign(ed25519.PrivateKey(*kp.private), msg), nil
}

// Public returns the keypair's public key
func (kp *Keypair) Public() crypto.PublicKey {
	return kp.public
}

// Private returns the keypair's private key
func (kp *Keypair) Private() crypto.PrivateKey {
	return kp.private
}

// Sign uses the ed25519 signature algorithm to sign the message
func (k *PrivateKey) Sign(msg []byte) ([]byte, error) {
	return ed25519.Sign(ed25519.PrivateKey(*k), msg), nil
}

// Public returns the public key corresponding to the ed25519 private key
func (k *PrivateKey) Public() (crypto.PublicKey, error) {
	kp := NewKeypair(ed25519.PrivateKey(*k))
	return kp.Public(), nil
}

// Encode returns the bytes underlying the ed25519 PrivateKey
func (k *PrivateKey) Encode() []byte {
	return []byte(*k)
}

// Decode turns the input bytes into a ed25519 PrivateKey
// the input must be 64 bytes, or the function will return an error
func (k *PrivateKey) Decode(in []byte) error {
	if len(in) != PrivateKeyLength {
		return fmt.Errorf("%w: %d", ErrInvalidPrivateKeyLength, len(in))
	}
	*k = PrivateKey(append([]byte{}, in...))
	return nil
}

// Hex will return PrivateKey Hex
func (k *PrivateKey) Hex() string {
	return common.BytesToHex(k.Encode())
}

// Verify checks that Ed25519 PublicKey was used to create message signature
func (k *PublicKey) Verify(msg, sig []byte) (bool, error) {
	return Verify(k, msg, sig)
}

// Encode returns the encoding of the ed25519 PublicKey
func (k *PublicKey) Encode() []byte {
	return []byte(*k)
}

// Decode turns the input bytes into an ed25519 PublicKey
// the input must be 32 bytes, or the function will return and error
func (k *PublicKey) Decode(in []byte) error {
	pub, err := NewPublicKey(in)
	if err != nil {
		return err
	}
	*k = *pub
	return nil
}

// Hex will return PublicKey Hex
func (k *PublicKey) Hex() string {
	return common.BytesToHex(k.Encode())
}

// AsBytes returns the public key as PublicKeyBytes
func (k *PublicKey) AsBytes() PublicKeyBytes {
	var b PublicKeyBytes
	copy(b[:], *k)
	return b
}
