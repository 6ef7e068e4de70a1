package sealbox

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"

	"github.com/codahale/gubbins/assert"
)

func TestGenerateKeyPair(t *testing.T) {
	t.Parallel()

	a, err := GenerateKeyPair(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	b, err := GenerateKeyPair(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "distinct keys", false, a.PublicKey().Equal(b.PublicKey()))
}

func TestGenerateKeyPair_SourceFailure(t *testing.T) {
	t.Parallel()

	if _, err := GenerateKeyPair(failReader{}); !errors.Is(err, errFailed) {
		t.Errorf("expected source failure, got %v", err)
	}
}

func TestPublicKeyMarshalBinary(t *testing.T) {
	t.Parallel()

	key, err := GenerateKeyPair(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	data, err := key.PublicKey().MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "encoded length", PublicKeySize, len(data))

	var parsed PublicKey
	if err := parsed.UnmarshalBinary(data); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "round trip", true, key.PublicKey().Equal(&parsed))
}

func TestPublicKeyUnmarshalBinary_InvalidPoint(t *testing.T) {
	t.Parallel()

	var parsed PublicKey

	err := parsed.UnmarshalBinary(bytes.Repeat([]byte{0xff}, PublicKeySize))
	if !errors.Is(err, ErrInvalidPoint) {
		t.Errorf("expected ErrInvalidPoint, got %v", err)
	}
}

func TestPublicKeyMarshalText(t *testing.T) {
	t.Parallel()

	key, err := GenerateKeyPair(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	text, err := key.PublicKey().MarshalText()
	if err != nil {
		t.Fatal(err)
	}

	var parsed PublicKey
	if err := parsed.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "round trip", true, key.PublicKey().Equal(&parsed))
	assert.Equal(t, "string form", string(text), key.PublicKey().String())
}

func TestPrivateKeyMarshalBinary(t *testing.T) {
	t.Parallel()

	key, err := GenerateKeyPair(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	data, err := key.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "encoded length", PrivateKeySize, len(data))

	var parsed PrivateKey
	if err := parsed.UnmarshalBinary(data); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "derived public key", true, key.PublicKey().Equal(parsed.PublicKey()))
}

func TestPrivateKeyUnmarshalBinary_Reduces(t *testing.T) {
	t.Parallel()

	// A non-canonical scalar encoding is reduced, not rejected.
	var key PrivateKey
	if err := key.UnmarshalBinary(bytes.Repeat([]byte{0xff}, PrivateKeySize)); err != nil {
		t.Fatal(err)
	}

	// A wrong-length encoding is rejected.
	if err := key.UnmarshalBinary([]byte("short")); !errors.Is(err, ErrInvalidScalar) {
		t.Errorf("expected ErrInvalidScalar, got %v", err)
	}
}

var errFailed = errors.New("entropy exhausted")

type failReader struct{}

func (failReader) Read([]byte) (int, error) {
	return 0, errFailed
}
