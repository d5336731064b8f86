package main

import (
	"fmt"

	"github.com/knot-data/go-knot/textdiff"
	"github.com/knot-data/go-knot/tree"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two file arguments", cli.ErrUsage)
	}
	s := tree.NewStore()
	from, err := loadArg(s, args[0])
	if err != nil {
		return err
	}
	to, err := loadArg(s, args[1])
	if err != nil {
		return err
	}
	res := textdiff.Diff(from, to)
	if res == "" {
		return nil
	}
	fmt.Fprint(cc.Out, res)
	return cli.ExitCodeErr(1)
}
