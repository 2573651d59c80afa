package main

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/signadot/jsonenc"
	"github.com/signadot/jsonenc/container"
	"github.com/signadot/jsonenc/encode"
	"github.com/signadot/jsonenc/format"
	"github.com/signadot/jsonenc/strategy"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Pretty  bool `cli:"name=p aliases=pretty desc='pretty print with 4 space indentation'"`
	Sorted  bool `cli:"name=s aliases=sorted desc='sort object keys'"`
	Color   bool `cli:"name=color desc='encode with color'"`
	Binary  bool `cli:"name=binary desc='allow output which is not valid UTF-8'"`
	Verbose bool `cli:"name=v desc='log each document'"`

	Keys  strategy.Key
	Dates strategy.Date
	Data  strategy.Data
	Dups  container.DuplicatePolicy

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) keysOpt(_ *cli.Context, v string) (any, error) {
	if src, ok := strings.CutPrefix(v, "expr:"); ok {
		k, err := exprKeys(src)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.Keys = k
		return v, nil
	}
	k, err := strategy.ParseKey(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Keys = k
	return v, nil
}

func (cfg *MainConfig) datesOpt(_ *cli.Context, v string) (any, error) {
	d, err := strategy.ParseDate(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Dates = d
	return v, nil
}

func (cfg *MainConfig) dataOpt(_ *cli.Context, v string) (any, error) {
	d, err := strategy.ParseData(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Data = d
	return v, nil
}

func (cfg *MainConfig) dupsOpt(_ *cli.Context, v string) (any, error) {
	p, err := container.ParseDuplicatePolicy(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Dups = p
	return v, nil
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) flags() format.Flags {
	var res format.Flags
	if cfg.Pretty {
		res |= format.PrettyPrinted
	}
	if cfg.Sorted {
		res |= format.SortedKeys
	}
	return res
}

func (cfg *MainConfig) encoder(w io.Writer) *jsonenc.Encoder {
	e := jsonenc.NewEncoder()
	e.OutputFormatting = cfg.flags()
	e.KeyEncodingStrategy = cfg.Keys
	e.DateEncodingStrategy = cfg.Dates
	e.DataEncodingStrategy = cfg.Data
	e.DuplicateKeys = cfg.Dups
	e.BinarySafe = cfg.Binary
	if cfg.useColor(w) {
		e.Colors = encode.NewColors()
	}
	return e
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name == "color" && opt.Value != nil {
				// explicitly set to false
				return false
			}
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// keyEnv is the environment of a -keys expr: program.
type keyEnv struct {
	Key   string   `expr:"key"`
	Path  []string `expr:"path"`
	Depth int      `expr:"depth"`
}

func exprKeys(src string) (strategy.Key, error) {
	prg, err := expr.Compile(src,
		expr.Env(keyEnv{}),
		expr.AsKind(reflect.String),
		expr.Function("snake", func(params ...any) (any, error) {
			return strategy.SnakeCase(params[0].(string)), nil
		}, strategy.SnakeCase),
	)
	if err != nil {
		return strategy.Key{}, err
	}
	return strategy.KeyCustom(func(p container.Path) (string, error) {
		return runKeyExpr(prg, p)
	}), nil
}

func runKeyExpr(prg *vm.Program, p container.Path) (string, error) {
	env := keyEnv{
		Key:   p.Last().String(),
		Path:  make([]string, len(p)),
		Depth: len(p),
	}
	for i, k := range p {
		env.Path[i] = k.String()
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return "", err
	}
	s, ok := res.(string)
	if !ok {
		return "", fmt.Errorf("key expression returned %T", res)
	}
	return s, nil
}
