// Package sealbox implements a signed hybrid-encryption envelope.
//
// A sealbox envelope carries a payload through a fixed lifecycle: the sender builds a plaintext
// Envelope, encrypts it for a recipient's ristretto255 public key (producing a SealedEnvelope),
// and signs the resulting ciphertext (producing a SignedEnvelope). The recipient verifies the
// signature against the envelope's stored sender identity and decrypts, recovering the original
// envelope exactly.
//
// Encryption is hybrid: a fresh one-time scalar keys an AES-256-GCM seal of the envelope's
// serialized form, and the scalar itself is ElGamal-encrypted under the recipient's public key.
// Signatures are Schnorr over the ciphertext, so a verifier authenticates who produced the
// ciphertext without learning anything about the plaintext.
//
// Verification is not enforced before decryption; callers who care about authenticity must call
// Verify first.
package sealbox

import (
	"errors"

	"github.com/sealbox/sealbox/pkg/sealbox/internal"
	"github.com/sealbox/sealbox/pkg/sealbox/internal/r255"
)

var (
	// ErrInvalidPoint is returned when bytes do not decode to a valid ristretto255 point.
	ErrInvalidPoint = r255.ErrInvalidPoint

	// ErrInvalidScalar is returned when bytes are not a valid scalar where canonical form is
	// required.
	ErrInvalidScalar = r255.ErrInvalidScalar

	// ErrInvalidCiphertext is returned when a ciphertext cannot be decrypted, either due to an
	// incorrect key or tampering.
	ErrInvalidCiphertext = internal.ErrInvalidCiphertext

	// ErrTruncatedCiphertext is returned when ciphertext wire bytes are too short to parse.
	ErrTruncatedCiphertext = internal.ErrTruncatedCiphertext

	// ErrInvalidSignature is returned when a signature, public key, and message do not match.
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrInvalidEnvelope is returned when envelope bytes cannot be deserialized.
	ErrInvalidEnvelope = errors.New("invalid envelope")
)
