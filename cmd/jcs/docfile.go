package main

import (
	"fmt"
	"io"
	"os"

	"github.com/canonform/jcs-format/go-jcs/ir"

	"github.com/scott-cotton/cli"
)

func getDocFile(cc *cli.Context, path string) (*ir.Node, error) {
	var (
		r io.Reader
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return ir.FromJSON(d)
}
