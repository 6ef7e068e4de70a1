// Package internal contains constants and errors shared by the sealbox primitives.
package internal

import "errors"

var (
	// ErrInvalidCiphertext is returned when a ciphertext cannot be authenticated, either due to
	// an incorrect key or tampering. The two cases are deliberately indistinguishable.
	ErrInvalidCiphertext = errors.New("invalid ciphertext")

	// ErrTruncatedCiphertext is returned when ciphertext wire bytes are too short to parse.
	ErrTruncatedCiphertext = errors.New("truncated ciphertext")
)
