package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/knot-data/go-knot/encode"
	"github.com/knot-data/go-knot/format"
	"github.com/knot-data/go-knot/parse"
	"github.com/knot-data/go-knot/tree"

	"github.com/mattn/go-isatty"
	"github.com/natefinch/atomic"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Pretty bool `cli:"name=p aliases=pretty desc='pretty output'"`
	Color  bool `cli:"name=color desc='encode with color'"`

	J bool `cli:"name=j aliases=json desc='output json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`

	OutFormat *format.Format

	Out string

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) outFormat() format.Format {
	f := format.JSONFormat
	if cfg.Y {
		f = format.YAMLFormat
	}
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	return f
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodePretty(cfg.Pretty),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// writeNode encodes n in the configured format, either to cc.Out or, if
// -o was given, atomically to that file.
func (cfg *MainConfig) writeNode(cc *cli.Context, n *tree.Node) error {
	var w io.Writer = cc.Out
	var buf *bytes.Buffer
	if cfg.Out != "" && cfg.Out != "-" {
		buf = bytes.NewBuffer(nil)
		w = buf
	}
	var err error
	if cfg.outFormat().IsYAML() {
		err = encode.EncodeYAML(n, w)
	} else {
		err = encode.Encode(n, w, cfg.encOpts(w)...)
	}
	if err != nil {
		return err
	}
	if buf == nil {
		return nil
	}
	return atomic.WriteFile(cfg.Out, buf)
}

// loadArg decodes a JSON document from a file path, or stdin for "-",
// into a node owned by s.
func loadArg(s *tree.Store, arg string) (*tree.Node, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	n, err := parse.Parse(s, d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return n, nil
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Merge bool `cli:"name=m aliases=merge desc='apply as rfc 7386 merge patch'"`
	Patch *cli.Command
}

type EvalConfig struct {
	*MainConfig

	Eval *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}
