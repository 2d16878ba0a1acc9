package main

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"

	"github.com/canonform/jcs-format/go-jcs/jcs"

	"github.com/scott-cotton/cli"
)

func hash(cfg *HashConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Hash.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		if err := hashFile(cc, file); err != nil {
			return err
		}
	}
	return nil
}

func hashFile(cc *cli.Context, file string) error {
	var r io.Reader
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading %q: %w", file, err)
	}
	out, err := jcs.Transform(in)
	if err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	sum := sha256.Sum256(out)
	_, err = fmt.Fprintf(cc.Out, "%x  %s\n", sum, file)
	return err
}
