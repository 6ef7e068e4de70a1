package sealbox

import (
	"encoding"
	"encoding/json"
	"fmt"

	"github.com/mr-tron/base58"
	"github.com/sealbox/sealbox/pkg/sealbox/internal/r255"
	"github.com/sealbox/sealbox/pkg/sealbox/internal/schnorr"
)

// SignatureSize is the length of an encoded signature in bytes.
const SignatureSize = r255.ElementSize + r255.ScalarSize

// Signature is a Schnorr signature: a commitment point R and a response scalar s.
//
// In JSON it is an object with base64 "R" and "s" fields; detached signatures can be marshalled
// and unmarshalled as base58 text.
type Signature struct {
	sig schnorr.Signature
}

// Equal reports whether both signatures have the same commitment and response.
func (s *Signature) Equal(other *Signature) bool {
	if other == nil {
		return false
	}

	return s.sig.R.Equal(other.sig.R) == 1 && s.sig.S.Equal(other.sig.S) == 1
}

// MarshalBinary encodes the signature as R followed by s.
func (s *Signature) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, SignatureSize)
	b = s.sig.R.Encode(b)
	b = s.sig.S.Encode(b)

	return b, nil
}

// UnmarshalBinary decodes a 64-byte signature. It returns ErrInvalidSignature for bytes of the
// wrong length, ErrInvalidPoint for an undecodable commitment, and ErrInvalidScalar for a
// non-canonical response.
func (s *Signature) UnmarshalBinary(data []byte) error {
	if len(data) != SignatureSize {
		return ErrInvalidSignature
	}

	R, err := r255.DecodeElement(data[:r255.ElementSize])
	if err != nil {
		return err
	}

	S, err := r255.DecodeScalar(data[r255.ElementSize:])
	if err != nil {
		return err
	}

	s.sig = schnorr.Signature{R: R, S: S}

	return nil
}

// MarshalText encodes the signature into base58 text.
func (s *Signature) MarshalText() ([]byte, error) {
	b, err := s.MarshalBinary()
	if err != nil {
		return nil, err
	}

	return []byte(base58.Encode(b)), nil
}

// UnmarshalText decodes the results of MarshalText and updates the receiver to contain the
// decoded signature.
func (s *Signature) UnmarshalText(text []byte) error {
	data, err := base58.Decode(string(text))
	if err != nil {
		return fmt.Errorf("invalid signature: %w", err)
	}

	return s.UnmarshalBinary(data)
}

// String returns the signature as base58 text.
func (s *Signature) String() string {
	text, err := s.MarshalText()
	if err != nil {
		panic(err)
	}

	return string(text)
}

// MarshalJSON encodes the signature as {"R": base64, "s": base64}.
func (s Signature) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireSignature{
		R: encode64(s.sig.R.Encode(nil)),
		S: encode64(s.sig.S.Encode(nil)),
	})
}

// UnmarshalJSON decodes the results of MarshalJSON. The commitment must decode to a valid point
// and the response must be a canonical scalar.
func (s *Signature) UnmarshalJSON(data []byte) error {
	var w wireSignature
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	rb, err := decode64(w.R, r255.ElementSize)
	if err != nil {
		return fmt.Errorf("invalid signature: %w", err)
	}

	sb, err := decode64(w.S, r255.ScalarSize)
	if err != nil {
		return fmt.Errorf("invalid signature: %w", err)
	}

	R, err := r255.DecodeElement(rb)
	if err != nil {
		return err
	}

	S, err := r255.DecodeScalar(sb)
	if err != nil {
		return err
	}

	s.sig = schnorr.Signature{R: R, S: S}

	return nil
}

var (
	_ encoding.BinaryMarshaler   = &Signature{}
	_ encoding.BinaryUnmarshaler = &Signature{}
	_ encoding.TextMarshaler     = &Signature{}
	_ encoding.TextUnmarshaler   = &Signature{}
	_ json.Marshaler             = Signature{}
	_ json.Unmarshaler           = &Signature{}
	_ fmt.Stringer               = &Signature{}
)
