// Package authenc provides authenticated encryption of envelope payloads with AES-256-GCM.
//
// Each call to Seal draws a fresh random 12-byte nonce, so a key must never be used to encrypt
// more than one message -- which sealbox guarantees by generating a new one-time key per hybrid
// encryption. No associated data is used.
package authenc

import (
	"crypto/aes"
	"crypto/cipher"
	"io"

	"github.com/sealbox/sealbox/pkg/sealbox/internal"
)

const (
	KeySize   = 32 // KeySize is the length of an AES-256 key in bytes.
	NonceSize = 12 // NonceSize is the length of a GCM nonce in bytes.
	Overhead  = 16 // Overhead is the length of a GCM authentication tag in bytes.
)

// Ciphertext is an AEAD ciphertext: the nonce used for encryption and the encrypted message,
// authentication tag included.
type Ciphertext struct {
	Nonce [NonceSize]byte
	Data  []byte
}

// Seal encrypts the plaintext under the given 32-byte key with a fresh random nonce. It fails
// only if the randomness source fails.
func Seal(rand io.Reader, key, plaintext []byte) (*Ciphertext, error) {
	var c Ciphertext
	if _, err := io.ReadFull(rand, c.Nonce[:]); err != nil {
		return nil, err
	}

	c.Data = newGCM(key).Seal(nil, c.Nonce[:], plaintext, nil)

	return &c, nil
}

// Open decrypts the ciphertext under the given key. It returns ErrInvalidCiphertext if the tag
// does not verify, without revealing whether the key was wrong or the data was tampered with.
func (c *Ciphertext) Open(key []byte) ([]byte, error) {
	plaintext, err := newGCM(key).Open(nil, c.Nonce[:], c.Data, nil)
	if err != nil {
		return nil, internal.ErrInvalidCiphertext
	}

	return plaintext, nil
}

func newGCM(key []byte) cipher.AEAD {
	block, err := aes.NewCipher(key)
	if err != nil {
		panic(err) // key is always KeySize bytes
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		panic(err)
	}

	return gcm
}
