package main

import (
	"fmt"

	"github.com/knot-data/go-knot/tree"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
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
		if !cfg.Pretty {
			fmt.Fprintln(cc.Out)
		}
	}
	return nil
}
