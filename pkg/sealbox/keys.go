package sealbox

import (
	"encoding"
	"fmt"
	"io"

	"github.com/gtank/ristretto255"
	"github.com/mr-tron/base58"
	"github.com/sealbox/sealbox/pkg/sealbox/internal/r255"
	"github.com/sealbox/sealbox/pkg/sealbox/internal/schnorr"
)

const (
	// PublicKeySize is the length of an encoded public key in bytes.
	PublicKeySize = r255.ElementSize

	// PrivateKeySize is the length of an encoded private key in bytes.
	PrivateKeySize = r255.ScalarSize
)

// PublicKey is a key used to verify and encrypt envelopes.
//
// It can be marshalled and unmarshalled as a base58 string for human consumption.
type PublicKey struct {
	q *ristretto255.Element
}

// Verify returns nil if the given signature was created by the owner of the public key over the
// given message, otherwise ErrInvalidSignature.
func (pk *PublicKey) Verify(message []byte, sig *Signature) error {
	if sig == nil || !schnorr.Verify(pk.q, message, &sig.sig) {
		return ErrInvalidSignature
	}

	return nil
}

// Equal reports whether both keys encode the same point.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.q.Equal(other.q) == 1
}

// MarshalBinary encodes the public key into a 32-byte slice.
func (pk *PublicKey) MarshalBinary() ([]byte, error) {
	return pk.q.Encode(nil), nil
}

// UnmarshalBinary decodes the public key from a 32-byte slice. It returns ErrInvalidPoint if
// the bytes do not decode to a valid point.
func (pk *PublicKey) UnmarshalBinary(data []byte) error {
	q, err := r255.DecodeElement(data)
	if err != nil {
		return fmt.Errorf("invalid public key: %w", err)
	}

	pk.q = q

	return nil
}

// MarshalText encodes the public key into base58 text.
func (pk *PublicKey) MarshalText() ([]byte, error) {
	return []byte(base58.Encode(pk.q.Encode(nil))), nil
}

// UnmarshalText decodes the results of MarshalText and updates the receiver to contain the
// decoded public key.
func (pk *PublicKey) UnmarshalText(text []byte) error {
	data, err := base58.Decode(string(text))
	if err != nil {
		return fmt.Errorf("invalid public key: %w", err)
	}

	return pk.UnmarshalBinary(data)
}

// String returns the public key as base58 text.
func (pk *PublicKey) String() string {
	text, err := pk.MarshalText()
	if err != nil {
		panic(err)
	}

	return string(text)
}

// PrivateKey is a key used to decrypt and sign envelopes.
type PrivateKey struct {
	d *ristretto255.Scalar
	q *ristretto255.Element
}

// GenerateKeyPair returns a new private key with a uniformly random scalar drawn from the given
// source, along with its derived public point. It fails only if the randomness source fails.
func GenerateKeyPair(rand io.Reader) (*PrivateKey, error) {
	d, err := r255.NewRandomScalar(rand)
	if err != nil {
		return nil, err
	}

	return &PrivateKey{d: d, q: ristretto255.NewElement().ScalarBaseMult(d)}, nil
}

// PublicKey returns the corresponding public key.
func (sk *PrivateKey) PublicKey() *PublicKey {
	return &PublicKey{q: sk.q}
}

// Sign returns a Schnorr signature of the message, drawing the commitment scalar from rand.
func (sk *PrivateKey) Sign(rand io.Reader, message []byte) (*Signature, error) {
	sig, err := schnorr.Sign(rand, sk.d, message)
	if err != nil {
		return nil, err
	}

	return &Signature{sig: *sig}, nil
}

// MarshalBinary encodes the private key into a 32-byte slice.
func (sk *PrivateKey) MarshalBinary() ([]byte, error) {
	return sk.d.Encode(nil), nil
}

// UnmarshalBinary decodes the private key from a 32-byte slice, reducing it modulo the group
// order, and re-derives the public point. Callers that require canonical scalars must check
// separately.
func (sk *PrivateKey) UnmarshalBinary(data []byte) error {
	d, err := r255.ReduceScalar(data)
	if err != nil {
		return fmt.Errorf("invalid private key: %w", err)
	}

	sk.d = d
	sk.q = ristretto255.NewElement().ScalarBaseMult(d)

	return nil
}

// String returns a safe identifier for the key: its public key as base58 text.
func (sk *PrivateKey) String() string {
	return sk.PublicKey().String()
}

var (
	_ encoding.BinaryMarshaler   = &PublicKey{}
	_ encoding.BinaryUnmarshaler = &PublicKey{}
	_ encoding.TextMarshaler     = &PublicKey{}
	_ encoding.TextUnmarshaler   = &PublicKey{}
	_ fmt.Stringer               = &PublicKey{}
	_ encoding.BinaryMarshaler   = &PrivateKey{}
	_ encoding.BinaryUnmarshaler = &PrivateKey{}
	_ fmt.Stringer               = &PrivateKey{}
)
