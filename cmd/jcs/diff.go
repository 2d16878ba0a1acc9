package main

import (
	"fmt"
	"io"

	"github.com/canonform/jcs-format/go-jcs/ir"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getDocFile(cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getDocFile(cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	ca, err := ir.ToJSON(a)
	if err != nil {
		return err
	}
	cb, err := ir.ToJSON(b)
	if err != nil {
		return err
	}
	if string(ca) == string(cb) {
		return nil
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(string(ca), string(cb), false)
	if err := writeDiffs(cc.Out, diffs, cfg.colorize(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func writeDiffs(w io.Writer, diffs []diffpatch.Diff, colorize bool) error {
	for i := range diffs {
		d := &diffs[i]
		var err error
		switch d.Type {
		case diffpatch.DiffEqual:
			_, err = io.WriteString(w, d.Text)
		case diffpatch.DiffDelete:
			if colorize {
				_, err = io.WriteString(w, color.RedString("%s", d.Text))
			} else {
				_, err = fmt.Fprintf(w, "[-%s-]", d.Text)
			}
		case diffpatch.DiffInsert:
			if colorize {
				_, err = io.WriteString(w, color.GreenString("%s", d.Text))
			} else {
				_, err = fmt.Fprintf(w, "{+%s+}", d.Text)
			}
		}
		if err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}
