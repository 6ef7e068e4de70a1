// Package hybrid composes ElGamal key transport with AES-256-GCM payload encryption.
//
// Each encryption generates a fresh random scalar as a one-time symmetric key. The payload is
// sealed under the scalar's 32-byte encoding; the scalar itself is ElGamal-encrypted under the
// recipient's public key.
//
// The wire form is the fixed layout
//
//	C1 (32) || C2 (32) || nonce (12) || data (variable)
//
// where data includes the GCM tag. Any input of at least 76 bytes with a decodable C1 parses.
package hybrid

import (
	"io"

	"github.com/gtank/ristretto255"
	"github.com/sealbox/sealbox/pkg/sealbox/internal"
	"github.com/sealbox/sealbox/pkg/sealbox/internal/authenc"
	"github.com/sealbox/sealbox/pkg/sealbox/internal/elgamal"
	"github.com/sealbox/sealbox/pkg/sealbox/internal/r255"
)

// headerSize is the length of the fixed wire prefix: both ElGamal components plus the nonce.
const headerSize = r255.ElementSize + r255.ScalarSize + authenc.NonceSize

// Ciphertext is the combined ciphertext: the wrapped one-time key and the sealed payload.
type Ciphertext struct {
	Key     elgamal.Ciphertext
	Payload authenc.Ciphertext
}

// Encrypt encrypts the plaintext for the given public key, drawing the one-time key, the
// ElGamal ephemeral, and the AEAD nonce from rand. It fails only if the randomness source
// fails.
func Encrypt(rand io.Reader, plaintext []byte, q *ristretto255.Element) (*Ciphertext, error) {
	// Generate a fresh one-time key.
	key, err := r255.NewRandomScalar(rand)
	if err != nil {
		return nil, err
	}

	// Seal the plaintext under the key's 32-byte encoding.
	payload, err := authenc.Seal(rand, key.Encode(nil), plaintext)
	if err != nil {
		return nil, err
	}

	// Wrap the key for the recipient.
	wrapped, err := elgamal.Encrypt(rand, key, q)
	if err != nil {
		return nil, err
	}

	return &Ciphertext{Key: *wrapped, Payload: *payload}, nil
}

// Decrypt unwraps the one-time key with the given private key and opens the payload. It returns
// ErrInvalidCiphertext if the payload cannot be authenticated, which covers both tampering and
// a wrong key.
func (c *Ciphertext) Decrypt(d *ristretto255.Scalar) ([]byte, error) {
	key := c.Key.Decrypt(d)

	return c.Payload.Open(key.Encode(nil))
}

// MarshalBinary encodes the ciphertext into its wire form.
func (c *Ciphertext) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, headerSize+len(c.Payload.Data))
	b = c.Key.C1.Encode(b)
	b = c.Key.C2.Encode(b)
	b = append(b, c.Payload.Nonce[:]...)
	b = append(b, c.Payload.Data...)

	return b, nil
}

// UnmarshalBinary decodes the wire form. It returns ErrTruncatedCiphertext for inputs shorter
// than the fixed prefix and ErrInvalidPoint if C1 does not decode; C2 is reduced modulo the
// group order rather than rejected.
func (c *Ciphertext) UnmarshalBinary(data []byte) error {
	if len(data) < headerSize {
		return internal.ErrTruncatedCiphertext
	}

	c1, err := r255.DecodeElement(data[:r255.ElementSize])
	if err != nil {
		return err
	}

	c2, err := r255.ReduceScalar(data[r255.ElementSize : r255.ElementSize+r255.ScalarSize])
	if err != nil {
		return err
	}

	c.Key = elgamal.Ciphertext{C1: c1, C2: c2}
	copy(c.Payload.Nonce[:], data[r255.ElementSize+r255.ScalarSize:headerSize])
	c.Payload.Data = append([]byte(nil), data[headerSize:]...)

	return nil
}
