package main

import (
	"fmt"

	"github.com/knot-data/go-knot/merge"
	"github.com/knot-data/go-knot/tree"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires a document and a patch file", cli.ErrUsage)
	}
	s := tree.NewStore()
	doc, err := loadArg(s, args[0])
	if err != nil {
		return err
	}
	p, err := loadArg(s, args[1])
	if err != nil {
		return err
	}
	var res *tree.Node
	if cfg.Merge {
		res, err = merge.MergePatch(s, doc, p)
	} else {
		res, err = merge.Patch(s, doc, p)
	}
	if err != nil {
		return err
	}
	if err := cfg.writeNode(cc, res); err != nil {
		return err
	}
	if !cfg.Pretty {
		fmt.Fprintln(cc.Out)
	}
	return nil
}
