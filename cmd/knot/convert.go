package main

import (
	"fmt"

	"github.com/knot-data/go-knot/format"
	"github.com/knot-data/go-knot/tree"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: convert requires a target format (json, yaml)", cli.ErrUsage)
	}
	f, err := format.ParseFormat(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.OutFormat = &f
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		s := tree.NewStore()
		n, err := loadArg(s, arg)
		if err != nil {
			return err
		}
		if err := cfg.writeNode(cc, n); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		if f.IsJSON() && !cfg.Pretty {
			fmt.Fprintln(cc.Out)
		}
	}
	return nil
}
