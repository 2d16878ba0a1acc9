package main

import (
	"fmt"

	"github.com/canonform/jcs-format/go-jcs/ir"
	"github.com/canonform/jcs-format/go-jcs/jcs"

	"github.com/scott-cotton/cli"
)

func equal(cfg *EqualConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Equal.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: equal requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getDocFile(cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getDocFile(cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	eq, err := jcs.Equal(a, ir.Tree{}, b, ir.Tree{})
	if err != nil {
		return err
	}
	if !cfg.Quiet {
		fmt.Fprintf(cc.Out, "%t\n", eq)
	}
	if !eq {
		return cli.ExitCodeErr(1)
	}
	return nil
}
