package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/sealbox/sealbox/pkg/sealbox"
)

type cli struct {
	Keypair   keypairCmd   `cmd:"" help:"Generate a new key pair."`
	PublicKey publicKeyCmd `cmd:"" help:"Derive the public key from a private key."`
	Seal      sealCmd      `cmd:"" help:"Encrypt and sign an envelope for a recipient."`
	Open      openCmd      `cmd:"" help:"Verify and decrypt an envelope."`
	Sign      signCmd      `cmd:"" help:"Create a detached signature for a message."`
	Verify    verifyCmd    `cmd:"" help:"Verify a detached signature for a message."`
}

func main() {
	var cli cli

	ctx := kong.Parse(&cli)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// readPrivateKey reads a raw 32-byte scalar from the given path.
func readPrivateKey(path string) (*sealbox.PrivateKey, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var key sealbox.PrivateKey
	if err := key.UnmarshalBinary(b); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &key, nil
}

// readPublicKey reads a raw 32-byte compressed point from the given path. A file which does not
// decode to a valid point is a fatal read error.
func readPublicKey(path string) (*sealbox.PublicKey, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var key sealbox.PublicKey
	if err := key.UnmarshalBinary(b); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &key, nil
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return os.Stdout, nil
	}

	return os.Create(path)
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return os.Stdin, nil
	}

	return os.Open(path)
}
