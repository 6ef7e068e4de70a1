package main

import (
	"crypto/rand"
	"os"

	"github.com/alecthomas/kong"
)

type signCmd struct {
	PrivateKey string `arg:"" type:"existingfile" help:"The path to the signing private key."`
	Message    string `arg:"" type:"existingfile" help:"The path to the message."`
	Output     string `arg:"" type:"path" default:"-" help:"The output path for the signature."`
}

func (cmd *signCmd) Run(_ *kong.Context) error {
	key, err := readPrivateKey(cmd.PrivateKey)
	if err != nil {
		return err
	}

	message, err := os.ReadFile(cmd.Message)
	if err != nil {
		return err
	}

	sig, err := key.Sign(rand.Reader, message)
	if err != nil {
		return err
	}

	text, err := sig.MarshalText()
	if err != nil {
		return err
	}

	dst, err := openOutput(cmd.Output)
	if err != nil {
		return err
	}

	defer func() { _ = dst.Close() }()

	_, err = dst.Write(append(text, '\n'))

	return err
}
