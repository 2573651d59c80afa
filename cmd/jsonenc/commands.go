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
	opts := append(sOpts, []*cli.Opt{
		{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		{
			Name:        "keys",
			Description: "key strategy: asis, snake or expr:<expression over key, path, depth>",
			Type:        cli.NamedFuncOpt(cfg.keysOpt, "(strategy)"),
		},
		{
			Name:        "dates",
			Description: "date strategy: deferred, seconds, milliseconds, iso8601 or layout:<go time layout>",
			Type:        cli.NamedFuncOpt(cfg.datesOpt, "(strategy)"),
		},
		{
			Name:        "data",
			Description: "binary data strategy: base64, raw or deferred",
			Type:        cli.NamedFuncOpt(cfg.dataOpt, "(strategy)"),
		},
		{
			Name:        "dups",
			Description: "duplicate key policy: preserve, reject or overwrite",
			Type:        cli.NamedFuncOpt(cfg.dupsOpt, "(policy)"),
		},
	}...)

	return cli.NewCommandAt(&cfg.Main, "jsonenc").
		WithSynopsis("jsonenc [opts] [files]").
		WithDescription("jsonenc re-encodes YAML or JSON documents as JSON.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jsonencMain(cfg, cc, args)
		})
}
