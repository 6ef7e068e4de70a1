package main

import (
	"bytes"
	"os"

	"github.com/alecthomas/kong"
	"github.com/sealbox/sealbox/pkg/sealbox"
)

type verifyCmd struct {
	PublicKey string `arg:"" type:"existingfile" help:"The path to the signer's public key."`
	Message   string `arg:"" type:"existingfile" help:"The path to the message."`
	Signature string `arg:"" type:"existingfile" help:"The path to the signature."`
}

func (cmd *verifyCmd) Run(_ *kong.Context) error {
	key, err := readPublicKey(cmd.PublicKey)
	if err != nil {
		return err
	}

	message, err := os.ReadFile(cmd.Message)
	if err != nil {
		return err
	}

	text, err := os.ReadFile(cmd.Signature)
	if err != nil {
		return err
	}

	var sig sealbox.Signature
	if err := sig.UnmarshalText(bytes.TrimSpace(text)); err != nil {
		return err
	}

	return key.Verify(message, &sig)
}
