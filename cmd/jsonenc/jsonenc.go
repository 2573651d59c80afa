package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/signadot/jsonenc"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func jsonencMain(cfg *MainConfig, cc *cli.Context, args []string) (err error) {
	defer func() {
		err = cfg.closeOut(err)
	}()
	args, err = cfg.Main.Parse(cc, args)
	if err != nil {
		cfg.Main.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Verbose {
		logLevel.Set(slog.LevelDebug)
	}
	enc := cfg.encoder(cc.Out)
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := convertFile(enc, cc.Out, arg); err != nil {
			return err
		}
	}
	return nil
}

// closeOut closes the -o file, reporting its error unless err is already set.
func (cfg *MainConfig) closeOut(err error) error {
	if cfg.CloseOut == nil {
		return err
	}
	cerr := cfg.CloseOut()
	cfg.CloseOut = nil
	if err == nil && cerr != nil {
		return fmt.Errorf("closing %s: %w", cfg.Out, cerr)
	}
	return err
}

func convertFile(enc *jsonenc.Encoder, w io.Writer, file string) error {
	var r io.Reader
	if file == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	if err := convert(enc, w, r, file); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

// convert encodes every document in r, each followed by a newline.
func convert(enc *jsonenc.Encoder, w io.Writer, r io.Reader, name string) error {
	dec := yaml.NewDecoder(r, yaml.UseOrderedMap())
	for i := 0; ; i++ {
		var v any
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("document %d: %w", i, err)
		}
		theLog.Debug("encoding document", "file", name, "index", i)
		if err := enc.EncodeTo(w, document{v}); err != nil {
			return fmt.Errorf("document %d: %w", i, err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
}
