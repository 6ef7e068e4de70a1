package main

import (
	"os"

	"github.com/alecthomas/kong"
)

type publicKeyCmd struct {
	PrivateKey string `arg:"" type:"existingfile" help:"The path to the private key."`
	Output     string `arg:"" type:"path" help:"The output path for the public key."`
}

func (cmd *publicKeyCmd) Run(_ *kong.Context) error {
	key, err := readPrivateKey(cmd.PrivateKey)
	if err != nil {
		return err
	}

	pk, err := key.PublicKey().MarshalBinary()
	if err != nil {
		return err
	}

	return os.WriteFile(cmd.Output, pk, 0o644)
}
