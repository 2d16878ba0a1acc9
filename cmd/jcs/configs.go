package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='color diff output'"`
	NoColor bool `cli:"name=nocolor desc='never color diff output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// colorize reports whether diff output destined for w should carry
// terminal colors.  -color and -nocolor win; otherwise we color iff w
// is a terminal.
func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.NoColor {
		return false
	}
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type CanonConfig struct {
	*MainConfig

	Canon *cli.Command
}

type EqualConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q aliases=quiet desc='suppress output, use exit status only'"`

	Equal *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type HashConfig struct {
	*MainConfig

	Hash *cli.Command
}
