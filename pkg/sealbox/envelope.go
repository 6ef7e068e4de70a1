package sealbox

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"github.com/sealbox/sealbox/pkg/sealbox/internal/hybrid"
	"github.com/sealbox/sealbox/pkg/sealbox/internal/r255"
	"github.com/sealbox/sealbox/pkg/sealbox/internal/schnorr"
)

// header holds the fields common to every envelope state: a 1-byte version, the payload, the
// sender and recipient identities as compressed points (all zero when unset), and the signature
// (nil when unsigned).
//
// In JSON, an unsigned envelope carries the classic placeholder signature -- the basepoint and
// a zero scalar -- so the wire form is identical for every state.
type header struct {
	Version   uint8
	Payload   []byte
	Sender    [PublicKeySize]byte
	Recipient [PublicKeySize]byte
	Signature *Signature
}

// Envelope is a plaintext message envelope, the starting and final state of the lifecycle.
//
// Envelopes move through three states: Envelope (plaintext), SealedEnvelope (encrypted), and
// SignedEnvelope (encrypted and signed). Each transition returns the next state, so an illegal
// ordering such as signing before sealing does not typecheck. An envelope instance must not be
// shared across goroutines during a transform chain.
type Envelope struct {
	header
}

// SealedEnvelope is an encrypted envelope: its payload is the hybrid ciphertext of the
// serialized plaintext envelope, its recipient is set, and its sender and signature are
// cleared.
type SealedEnvelope struct {
	header
}

// SignedEnvelope is a sealed envelope whose ciphertext payload has been signed and whose sender
// identity has been stamped.
type SignedEnvelope struct {
	SealedEnvelope
}

// NewEnvelope returns a plaintext envelope with the given version and payload. The recipient
// may be nil, in which case it is set when the envelope is encrypted.
func NewEnvelope(version uint8, payload []byte, recipient *PublicKey) *Envelope {
	e := &Envelope{header{Version: version, Payload: payload}}

	if recipient != nil {
		recipient.q.Encode(e.Recipient[:0])
	}

	return e
}

// Encrypt serializes the envelope -- every field, including whatever sender and signature it
// currently holds -- and hybrid-encrypts the result for the given recipient. The returned
// sealed envelope carries the ciphertext as its payload with the version incremented by one,
// the signature and sender cleared, and the recipient set. It fails only if the randomness
// source fails.
func (e *Envelope) Encrypt(rand io.Reader, recipient *PublicKey) (*SealedEnvelope, error) {
	plaintext, err := json.Marshal(e.header)
	if err != nil {
		return nil, err
	}

	ct, err := hybrid.Encrypt(rand, plaintext, recipient.q)
	if err != nil {
		return nil, err
	}

	wire, err := ct.MarshalBinary()
	if err != nil {
		return nil, err
	}

	se := &SealedEnvelope{header{Version: e.Version + 1, Payload: wire}}
	recipient.q.Encode(se.Recipient[:0])

	return se, nil
}

// Sign creates a Schnorr signature over the envelope's ciphertext payload and stamps the
// signer's public key as the sender. It fails only if the randomness source fails.
func (se *SealedEnvelope) Sign(rand io.Reader, key *PrivateKey) (*SignedEnvelope, error) {
	sig, err := key.Sign(rand, se.Payload)
	if err != nil {
		return nil, err
	}

	signed := &SignedEnvelope{SealedEnvelope{se.header}}
	key.q.Encode(signed.Sender[:0])
	signed.Signature = sig

	return signed, nil
}

// Decrypt hybrid-decrypts the envelope's payload with the given private key and deserializes
// the recovered plaintext back into the pre-encryption envelope, restoring every field exactly.
//
// It returns ErrTruncatedCiphertext or ErrInvalidPoint if the payload is not a well-formed
// hybrid ciphertext, ErrInvalidCiphertext if authentication fails (wrong key or tampering), and
// ErrInvalidEnvelope if the recovered plaintext is not a well-formed envelope.
func (se *SealedEnvelope) Decrypt(key *PrivateKey) (*Envelope, error) {
	var ct hybrid.Ciphertext
	if err := ct.UnmarshalBinary(se.Payload); err != nil {
		return nil, err
	}

	plaintext, err := ct.Decrypt(key.d)
	if err != nil {
		return nil, err
	}

	var e Envelope
	if err := json.Unmarshal(plaintext, &e.header); err != nil {
		return nil, ErrInvalidEnvelope
	}

	return &e, nil
}

// Verify returns nil if the envelope's signature was created over its current payload by the
// holder of the stored sender identity. A sender which does not decode to a valid point fails
// verification rather than panicking.
//
// Verify authenticates who produced the ciphertext, not who produced the plaintext; callers who
// care about authenticity must call it before Decrypt.
func (se *SignedEnvelope) Verify() error {
	q, err := r255.DecodeElement(se.Sender[:])
	if err != nil {
		return ErrInvalidSignature
	}

	if se.Signature == nil || !schnorr.Verify(q, se.Payload, &se.Signature.sig) {
		return ErrInvalidSignature
	}

	return nil
}

// SenderKey returns the envelope's stored sender identity as a public key.
func (se *SignedEnvelope) SenderKey() (*PublicKey, error) {
	q, err := r255.DecodeElement(se.Sender[:])
	if err != nil {
		return nil, fmt.Errorf("invalid sender: %w", err)
	}

	return &PublicKey{q: q}, nil
}

// wireEnvelope is the JSON form of an envelope. Field order matters: it is part of the wire
// format, since encryption serializes the envelope to compact JSON.
type wireEnvelope struct {
	Version   uint8         `json:"version"`
	Payload   string        `json:"payload"`
	Recipient string        `json:"recipient"`
	Sender    string        `json:"sender"`
	Signature wireSignature `json:"signature"`
}

type wireSignature struct {
	R string `json:"R"`
	S string `json:"s"`
}

// MarshalJSON encodes the envelope with base64 payload, identities, and signature components.
// An unsigned envelope is rendered with the placeholder signature.
func (h header) MarshalJSON() ([]byte, error) {
	w := wireEnvelope{
		Version:   h.Version,
		Payload:   encode64(h.Payload),
		Recipient: encode64(h.Recipient[:]),
		Sender:    encode64(h.Sender[:]),
	}

	if h.Signature != nil {
		w.Signature = wireSignature{
			R: encode64(h.Signature.sig.R.Encode(nil)),
			S: encode64(h.Signature.sig.S.Encode(nil)),
		}
	} else {
		w.Signature = wireSignature{
			R: encode64(placeholderR()),
			S: encode64(zeroScalar[:]),
		}
	}

	return json.Marshal(w)
}

// UnmarshalJSON decodes the results of MarshalJSON. Identities must be 32 bytes, the signature
// commitment must decode to a valid point, and the response must be a canonical scalar; the
// placeholder signature decodes to the unsigned state.
func (h *header) UnmarshalJSON(data []byte) error {
	var w wireEnvelope
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	payload, err := decode64(w.Payload, -1)
	if err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}

	recipient, err := decode64(w.Recipient, PublicKeySize)
	if err != nil {
		return fmt.Errorf("invalid recipient: %w", err)
	}

	sender, err := decode64(w.Sender, PublicKeySize)
	if err != nil {
		return fmt.Errorf("invalid sender: %w", err)
	}

	rb, err := decode64(w.Signature.R, r255.ElementSize)
	if err != nil {
		return fmt.Errorf("invalid signature: %w", err)
	}

	sb, err := decode64(w.Signature.S, r255.ScalarSize)
	if err != nil {
		return fmt.Errorf("invalid signature: %w", err)
	}

	h.Version = w.Version
	h.Payload = payload
	copy(h.Recipient[:], recipient)
	copy(h.Sender[:], sender)

	if bytes.Equal(rb, placeholderR()) && bytes.Equal(sb, zeroScalar[:]) {
		h.Signature = nil

		return nil
	}

	R, err := r255.DecodeElement(rb)
	if err != nil {
		return err
	}

	S, err := r255.DecodeScalar(sb)
	if err != nil {
		return err
	}

	h.Signature = &Signature{sig: schnorr.Signature{R: R, S: S}}

	return nil
}

// placeholderR returns the encoded basepoint, the commitment half of the classic "not yet
// signed" placeholder.
func placeholderR() []byte {
	return r255.Basepoint().Encode(nil)
}

var zeroScalar [r255.ScalarSize]byte

func encode64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

func decode64(s string, size int) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}

	if size >= 0 && len(b) != size {
		return nil, fmt.Errorf("unexpected length %d", len(b))
	}

	return b, nil
}

var (
	_ json.Marshaler   = header{}
	_ json.Unmarshaler = &header{}
)
