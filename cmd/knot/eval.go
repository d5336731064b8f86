package main

import (
	"fmt"

	kneval "github.com/knot-data/go-knot/eval"
	"github.com/knot-data/go-knot/tree"

	"github.com/scott-cotton/cli"
)

func knotEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires one argument, an expression", cli.ErrUsage)
	}
	q, err := kneval.Compile(args[0])
	if err != nil {
		return err
	}
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
		if err := s.SetRoot(n); err != nil {
			return err
		}
		out, err := q.Run(s)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%v\n", out)
	}
	return nil
}
