package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	tomltree "github.com/tomltree/go-tomltree"
	"github.com/tomltree/go-tomltree/codec"
	"github.com/tomltree/go-tomltree/encode"
	"github.com/tomltree/go-tomltree/format"
)

func ttMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.T && cfg.J {
		return fmt.Errorf("%w: must specify at most one of -j[son] -t[oml]", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// loadArg reads a config from a file argument, honoring the input format.
// "-" reads stdin; a real path in toml format goes through tomltree.Load so
// the result can Save itself.
func loadArg(cfg *MainConfig, arg string) (*tomltree.Config, error) {
	if arg == "-" {
		d, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		m, err := decodeBy(cfg.inFormat(), d)
		if err != nil {
			return nil, fmt.Errorf("error decoding stdin: %w", err)
		}
		return tomltree.FromMap(m)
	}
	if cfg.inFormat() == format.JSONFormat {
		return tomltree.FromJSON(arg)
	}
	return tomltree.Load(arg)
}

func decodeBy(f format.Format, d []byte) (map[string]any, error) {
	if f == format.JSONFormat {
		return codec.DecodeJSON(d)
	}
	return codec.DecodeTOML(d)
}

// writeBack persists a mutated config: in-place when it was loaded from a
// toml file, to the output writer otherwise.
func writeBack(cfg *MainConfig, cc *cli.Context, c *tomltree.Config) error {
	if c.Path() != "" {
		return c.Save()
	}
	return encodeOut(cfg, cc, c)
}

func encodeOut(cfg *MainConfig, cc *cli.Context, c *tomltree.Config) error {
	return encode.Encode(c.Tree(), cc.Out, cfg.encOpts(cc.Out)...)
}
