package main

import (
	"fmt"

	"github.com/knot-data/go-knot/tree"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted path", cli.ErrUsage)
	}
	p := args[0]
	if p == "" {
		return fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := getArg(cfg, cc, arg, p); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, p, err)
		}
	}
	return nil
}

func getArg(cfg *GetConfig, cc *cli.Context, arg, p string) error {
	s := tree.NewStore()
	n, err := loadArg(s, arg)
	if err != nil {
		return err
	}
	if err := s.SetRoot(n); err != nil {
		return err
	}
	res := s.GetValue(p)
	if res == nil {
		// don't encode anything and don't yell either
		return nil
	}
	if err := cfg.writeNode(cc, res); err != nil {
		return err
	}
	if !cfg.Pretty {
		fmt.Fprintln(cc.Out)
	}
	return nil
}
