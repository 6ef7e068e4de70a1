// Package elgamal implements ElGamal encryption of scalar values over ristretto255.
//
// The scheme transports a single scalar -- in sealbox, a one-time symmetric key -- under a
// recipient's public key:
//
//	C1 = rB
//	C2 = H(rQ) + m
//
// where r is a fresh ephemeral scalar, B the basepoint, Q the recipient's public key, and H the
// SHA-512 hash-to-scalar map. Decryption recovers m = C2 - H(dC1) via the Diffie-Hellman
// equality rQ == dC1.
//
// This layer provides no integrity: decrypting with the wrong key silently yields a garbage
// scalar. Integrity is the AEAD layer's job.
package elgamal

import (
	"io"

	"github.com/gtank/ristretto255"
	"github.com/sealbox/sealbox/pkg/sealbox/internal/r255"
)

// Ciphertext is an ElGamal ciphertext: an ephemeral commitment point and a masked scalar.
// Immutable once produced.
type Ciphertext struct {
	C1 *ristretto255.Element
	C2 *ristretto255.Scalar
}

// Encrypt encrypts the given scalar under the given public key, drawing ephemeral randomness
// from rand. It fails only if the randomness source fails.
//
// The ephemeral scalar must be fresh and secret per call; reusing it across two encryptions
// under the same key leaks the relationship between the two plaintexts.
func Encrypt(rand io.Reader, m *ristretto255.Scalar, q *ristretto255.Element) (*Ciphertext, error) {
	r, err := r255.NewRandomScalar(rand)
	if err != nil {
		return nil, err
	}

	c1 := ristretto255.NewElement().ScalarBaseMult(r)
	shared := ristretto255.NewElement().ScalarMult(r, q)
	c2 := ristretto255.NewScalar().Add(r255.DeriveScalar(shared.Encode(nil)), m)

	return &Ciphertext{C1: c1, C2: c2}, nil
}

// Decrypt decrypts the ciphertext with the given private key and returns the recovered scalar.
// A wrong key returns a garbage scalar rather than an error.
func (c *Ciphertext) Decrypt(d *ristretto255.Scalar) *ristretto255.Scalar {
	shared := ristretto255.NewElement().ScalarMult(d, c.C1)

	return ristretto255.NewScalar().Subtract(c.C2, r255.DeriveScalar(shared.Encode(nil)))
}
