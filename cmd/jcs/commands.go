package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "jcs").
		WithSynopsis("jcs [opts] command [opts]").
		WithDescription("jcs is a tool for canonicalizing JSON documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jcsMain(cfg, cc, args)
		}).
		WithSubs(
			CanonCommand(cfg),
			EqualCommand(cfg),
			DiffCommand(cfg),
			HashCommand(cfg))
}

func CanonCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CanonConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("canon").
		WithAliases("c", "ca").
		WithSynopsis("canon [files]").
		WithDescription("canonicalize JSON documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return canon(cfg, cc, args)
		})
	cfg.Canon = cmd
	return cmd
}

func EqualCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EqualConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("equal").
		WithAliases("e", "eq").
		WithSynopsis("equal a b").
		WithDescription("test whether two JSON documents are canonically equal").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return equal(cfg, cc, args)
		})
	cfg.Equal = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithSynopsis("diff a b").
		WithDescription("diff the canonical forms of two JSON documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func HashCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &HashConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("hash").
		WithAliases("h", "ha").
		WithSynopsis("hash [files]").
		WithDescription("print the sha256 of the canonical form of JSON documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return hash(cfg, cc, args)
		})
	cfg.Hash = cmd
	return cmd
}
