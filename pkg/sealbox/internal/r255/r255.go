// Package r255 provides ristretto255 functionality.
//
// sealbox uses ristretto255 for all group operations: key pairs, the ElGamal key wrap, and
// Schnorr signatures. Scalars are derived from arbitrary data by hashing it with SHA-512 and
// mapping the 64-byte digest uniformly into the scalar field.
package r255

import (
	"crypto/sha512"
	"errors"
	"fmt"
	"io"

	"github.com/gtank/ristretto255"
)

const (
	ElementSize = 32 // ElementSize is the length of an encoded ristretto255 element.
	ScalarSize  = 32 // ScalarSize is the length of an encoded ristretto255 scalar.
	UniformSize = 64 // UniformSize is the length of a uniform bytestring mappable to a scalar.
)

var (
	// ErrInvalidPoint is returned when bytes do not decode to a valid ristretto255 element.
	ErrInvalidPoint = errors.New("invalid point")

	// ErrInvalidScalar is returned when bytes are not a canonically-encoded scalar.
	ErrInvalidScalar = errors.New("invalid scalar")
)

// NewRandomScalar returns a scalar selected uniformly at random from the given source. It fails
// only if the source fails.
func NewRandomScalar(rand io.Reader) (*ristretto255.Scalar, error) {
	var b [UniformSize]byte
	if _, err := io.ReadFull(rand, b[:]); err != nil {
		return nil, fmt.Errorf("error generating random scalar: %w", err)
	}

	return ristretto255.NewScalar().FromUniformBytes(b[:]), nil
}

// DeriveScalar maps the given data to a scalar via SHA-512.
func DeriveScalar(data []byte) *ristretto255.Scalar {
	h := sha512.Sum512(data)

	return ristretto255.NewScalar().FromUniformBytes(h[:])
}

// DecodeElement decodes a 32-byte encoding of a ristretto255 element. Returns ErrInvalidPoint if
// the bytes are not a valid encoding.
func DecodeElement(data []byte) (*ristretto255.Element, error) {
	q := ristretto255.NewElement()
	if err := q.Decode(data); err != nil {
		return nil, ErrInvalidPoint
	}

	return q, nil
}

// DecodeScalar decodes a canonical 32-byte encoding of a scalar. Returns ErrInvalidScalar if the
// bytes are not canonical.
func DecodeScalar(data []byte) (*ristretto255.Scalar, error) {
	s := ristretto255.NewScalar()
	if err := s.Decode(data); err != nil {
		return nil, ErrInvalidScalar
	}

	return s, nil
}

// ReduceScalar interprets 32 bytes as a little-endian integer and reduces it modulo the group
// order. Unlike DecodeScalar, it is total over all 32-byte inputs.
func ReduceScalar(data []byte) (*ristretto255.Scalar, error) {
	if len(data) != ScalarSize {
		return nil, ErrInvalidScalar
	}

	var b [UniformSize]byte
	copy(b[:], data)

	return ristretto255.NewScalar().FromUniformBytes(b[:]), nil
}

// Basepoint returns the canonical generator of the group.
func Basepoint() *ristretto255.Element {
	return ristretto255.NewElement().ScalarBaseMult(scalarOne())
}

func scalarOne() *ristretto255.Scalar {
	var b [UniformSize]byte
	b[0] = 1

	return ristretto255.NewScalar().FromUniformBytes(b[:])
}
