package r255

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"

	"github.com/codahale/gubbins/assert"
)

func TestNewRandomScalar(t *testing.T) {
	t.Parallel()

	a, err := NewRandomScalar(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	b, err := NewRandomScalar(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "distinct scalars", 0, a.Equal(b))
}

func TestNewRandomScalar_SourceFailure(t *testing.T) {
	t.Parallel()

	if _, err := NewRandomScalar(failReader{}); !errors.Is(err, errFailed) {
		t.Errorf("expected source failure, got %v", err)
	}
}

func TestDeriveScalar(t *testing.T) {
	t.Parallel()

	a := DeriveScalar([]byte("a message"))
	b := DeriveScalar([]byte("a message"))
	c := DeriveScalar([]byte("another message"))

	assert.Equal(t, "deterministic", 1, a.Equal(b))
	assert.Equal(t, "domain separated", 0, a.Equal(c))
}

func TestDecodeElement(t *testing.T) {
	t.Parallel()

	want := Basepoint()

	got, err := DecodeElement(want.Encode(nil))
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "round trip", 1, want.Equal(got))
}

func TestDecodeElement_Invalid(t *testing.T) {
	t.Parallel()

	b := bytes.Repeat([]byte{0xff}, ElementSize)

	if _, err := DecodeElement(b); !errors.Is(err, ErrInvalidPoint) {
		t.Errorf("expected ErrInvalidPoint, got %v", err)
	}

	if _, err := DecodeElement([]byte("short")); !errors.Is(err, ErrInvalidPoint) {
		t.Errorf("expected ErrInvalidPoint, got %v", err)
	}
}

func TestDecodeScalar_NonCanonical(t *testing.T) {
	t.Parallel()

	b := bytes.Repeat([]byte{0xff}, ScalarSize)

	if _, err := DecodeScalar(b); !errors.Is(err, ErrInvalidScalar) {
		t.Errorf("expected ErrInvalidScalar, got %v", err)
	}
}

func TestReduceScalar(t *testing.T) {
	t.Parallel()

	// A non-canonical encoding reduces rather than failing.
	b := bytes.Repeat([]byte{0xff}, ScalarSize)

	s, err := ReduceScalar(b)
	if err != nil {
		t.Fatal(err)
	}

	canonical, err := DecodeScalar(s.Encode(nil))
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "reduced", 1, s.Equal(canonical))

	if _, err := ReduceScalar([]byte("short")); !errors.Is(err, ErrInvalidScalar) {
		t.Errorf("expected ErrInvalidScalar, got %v", err)
	}
}

func TestBasepoint(t *testing.T) {
	t.Parallel()

	// The canonical ristretto255 basepoint encoding.
	want := []byte{
		0xe2, 0xf2, 0xae, 0x0a, 0x6a, 0xbc, 0x4e, 0x71,
		0xa8, 0x84, 0xa9, 0x61, 0xc5, 0x00, 0x51, 0x5f,
		0x58, 0xe3, 0x0b, 0x6a, 0xa5, 0x82, 0xdd, 0x8d,
		0xb6, 0xa6, 0x59, 0x45, 0xe0, 0x8d, 0x2d, 0x76,
	}

	assert.Equal(t, "basepoint", want, Basepoint().Encode(nil))
}

var errFailed = errors.New("entropy exhausted")

type failReader struct{}

func (failReader) Read([]byte) (int, error) {
	return 0, errFailed
}
