package main

import (
	"fmt"
	"io"
	"os"

	"github.com/canonform/jcs-format/go-jcs/jcs"

	"github.com/scott-cotton/cli"
)

func canon(cfg *CanonConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Canon.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return canonReader(cc.Out, cc.In)
	}
	return canonFiles(cc.Out, args)
}

func canonFiles(w io.Writer, files []string) error {
	for _, file := range files {
		if err := canonFile(w, file); err != nil {
			return err
		}
	}
	return nil
}

func canonFile(w io.Writer, file string) error {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	if err := canonReader(w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func canonReader(w io.Writer, r io.Reader) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	out, err := jcs.Transform(in)
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}
