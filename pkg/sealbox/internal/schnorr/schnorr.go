// Package schnorr implements Schnorr signatures over ristretto255.
//
// Signing draws a random commitment scalar k and produces the pair (R, s):
//
//	R = kB
//	e = H(encode(R) || message)
//	s = k + e*d
//
// where H is the SHA-512 hash-to-scalar map and d the signer's private scalar. Verification
// accepts iff sB == R + eQ. Signing is randomized, so two signatures over the same message
// differ; verification is deterministic and side-effect-free.
//
// No canonical-form check is made on s beyond scalar-field reduction; the scheme does not aim
// for strong unforgeability against malleability-dependent protocols.
package schnorr

import (
	"io"

	"github.com/gtank/ristretto255"
	"github.com/sealbox/sealbox/pkg/sealbox/internal/r255"
)

// Signature is a Schnorr signature: a commitment point and a response scalar.
type Signature struct {
	R *ristretto255.Element
	S *ristretto255.Scalar
}

// Sign signs the message with the given private key, drawing the commitment scalar from rand.
// It fails only if the randomness source fails.
func Sign(rand io.Reader, d *ristretto255.Scalar, message []byte) (*Signature, error) {
	k, err := r255.NewRandomScalar(rand)
	if err != nil {
		return nil, err
	}

	R := ristretto255.NewElement().ScalarBaseMult(k)
	e := challenge(R, message)

	s := ristretto255.NewScalar().Multiply(e, d)
	s = s.Add(s, k)

	return &Signature{R: R, S: s}, nil
}

// Verify reports whether the signature was created over the message by the holder of the
// private key corresponding to the given public key.
func Verify(q *ristretto255.Element, message []byte, sig *Signature) bool {
	if sig == nil || sig.R == nil || sig.S == nil {
		return false
	}

	e := challenge(sig.R, message)

	// sB == R + eQ
	lhs := ristretto255.NewElement().ScalarBaseMult(sig.S)
	rhs := ristretto255.NewElement().ScalarMult(e, q)
	rhs = rhs.Add(sig.R, rhs)

	return lhs.Equal(rhs) == 1
}

func challenge(R *ristretto255.Element, message []byte) *ristretto255.Scalar {
	b := make([]byte, 0, r255.ElementSize+len(message))
	b = R.Encode(b)
	b = append(b, message...)

	return r255.DeriveScalar(b)
}
