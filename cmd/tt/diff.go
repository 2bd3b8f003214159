package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	tomltree "github.com/tomltree/go-tomltree"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two files", cli.ErrUsage)
	}
	from, err := loadArg(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	to, err := loadArg(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	var text string
	if diffColors(cfg, cc.Out) {
		text, err = tomltree.DiffPretty(from, to)
	} else {
		text, err = tomltree.Diff(from, to)
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(cc.Out, text)
	return err
}

func diffColors(cfg *DiffConfig, w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
