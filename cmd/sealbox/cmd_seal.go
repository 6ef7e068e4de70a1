package main

import (
	"crypto/rand"
	"encoding/json"
	"os"

	"github.com/alecthomas/kong"
	"github.com/sealbox/sealbox/pkg/sealbox"
)

type sealCmd struct {
	SigningKey string `arg:"" type:"existingfile" help:"The path to the signing private key."`
	Recipient  string `arg:"" type:"existingfile" help:"The path to the recipient's public key."`
	Plaintext  string `arg:"" type:"existingfile" help:"The path to the payload file."`
	Output     string `arg:"" type:"path" help:"The output path for the envelope."`

	Version uint8 `help:"The initial envelope version." default:"0"`
}

func (cmd *sealCmd) Run(_ *kong.Context) error {
	signingKey, err := readPrivateKey(cmd.SigningKey)
	if err != nil {
		return err
	}

	recipient, err := readPublicKey(cmd.Recipient)
	if err != nil {
		return err
	}

	payload, err := os.ReadFile(cmd.Plaintext)
	if err != nil {
		return err
	}

	// Encrypt the envelope for the recipient, then sign the ciphertext.
	sealed, err := sealbox.NewEnvelope(cmd.Version, payload, recipient).Encrypt(rand.Reader, recipient)
	if err != nil {
		return err
	}

	signed, err := sealed.Sign(rand.Reader, signingKey)
	if err != nil {
		return err
	}

	b, err := json.MarshalIndent(signed, "", "  ")
	if err != nil {
		return err
	}

	dst, err := openOutput(cmd.Output)
	if err != nil {
		return err
	}

	defer func() { _ = dst.Close() }()

	_, err = dst.Write(append(b, '\n'))

	return err
}
