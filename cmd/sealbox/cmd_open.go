package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/sealbox/sealbox/pkg/sealbox"
)

type openCmd struct {
	PrivateKey string `arg:"" type:"existingfile" help:"The path to the recipient's private key."`
	Envelope   string `arg:"" type:"existingfile" help:"The path to the envelope file."`
	Output     string `arg:"" type:"path" default:"-" help:"The output path for the payload."`

	SkipVerify bool `help:"Decrypt without verifying the signature."`
}

func (cmd *openCmd) Run(_ *kong.Context) error {
	key, err := readPrivateKey(cmd.PrivateKey)
	if err != nil {
		return err
	}

	src, err := openInput(cmd.Envelope)
	if err != nil {
		return err
	}

	defer func() { _ = src.Close() }()

	b, err := io.ReadAll(src)
	if err != nil {
		return err
	}

	var signed sealbox.SignedEnvelope
	if err := json.Unmarshal(b, &signed); err != nil {
		return err
	}

	// Always verify before decrypting unless explicitly told otherwise.
	if !cmd.SkipVerify {
		if err := signed.Verify(); err != nil {
			return err
		}

		sender, err := signed.SenderKey()
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(os.Stderr, "Envelope signed by %s\n", sender)
	}

	env, err := signed.Decrypt(key)
	if err != nil {
		return err
	}

	dst, err := openOutput(cmd.Output)
	if err != nil {
		return err
	}

	defer func() { _ = dst.Close() }()

	_, err = dst.Write(env.Payload)

	return err
}
