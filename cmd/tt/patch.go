package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	patchDoc, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("error reading %s: %w", args[0], err)
	}
	file := "-"
	if len(args) > 1 {
		file = args[1]
	}
	c, err := loadArg(cfg.MainConfig, file)
	if err != nil {
		return err
	}
	if cfg.Merge {
		err = c.MergePatch(patchDoc)
	} else {
		err = c.Patch(patchDoc)
	}
	if err != nil {
		return fmt.Errorf("error patching %s: %w", file, err)
	}
	return writeBack(cfg.MainConfig, cc, c)
}
