package main

import (
	"crypto/rand"
	"os"

	"github.com/alecthomas/kong"
	"github.com/sealbox/sealbox/pkg/sealbox"
)

type keypairCmd struct {
	PrivateKey string `arg:"" type:"path" help:"The output path for the private key."`
	PublicKey  string `arg:"" type:"path" help:"The output path for the public key."`
}

func (cmd *keypairCmd) Run(_ *kong.Context) error {
	key, err := sealbox.GenerateKeyPair(rand.Reader)
	if err != nil {
		return err
	}

	sk, err := key.MarshalBinary()
	if err != nil {
		return err
	}

	if err := os.WriteFile(cmd.PrivateKey, sk, 0o600); err != nil {
		return err
	}

	pk, err := key.PublicKey().MarshalBinary()
	if err != nil {
		return err
	}

	return os.WriteFile(cmd.PublicKey, pk, 0o644)
}
