package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	tomltree "github.com/tomltree/go-tomltree"
	"github.com/tomltree/go-tomltree/encode"
	"github.com/tomltree/go-tomltree/tree"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a dotted key", cli.ErrUsage)
	}
	key := args[0]
	arg := "-"
	if len(args) > 1 {
		arg = args[1]
	}
	c, err := loadArg(cfg.MainConfig, arg)
	if err != nil {
		return err
	}
	n, err := lookup(c, key)
	if err != nil {
		return fmt.Errorf("error getting %s from %s: %w", key, arg, err)
	}
	return encode.Encode(n, cc.Out, cfg.encOpts(cc.Out)...)
}

// lookup walks a dotted key by chaining sub-table views, the CLI rendering
// of attribute-chained access.
func lookup(c *tomltree.Config, key string) (*tree.Node, error) {
	segs := strings.Split(key, ".")
	cur := c
	var err error
	for _, seg := range segs[:len(segs)-1] {
		cur, err = cur.Sub(seg)
		if err != nil {
			return nil, err
		}
	}
	n := cur.Tree().Get(segs[len(segs)-1])
	if n == nil {
		return nil, fmt.Errorf("key %q does not exist", key)
	}
	return n, nil
}

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		c, err := loadArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if err := encodeOut(cfg.MainConfig, cc, c); err != nil {
			return err
		}
	}
	return nil
}

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		c, err := loadArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if err := encodeOut(cfg.MainConfig, cc, c); err != nil {
			return err
		}
	}
	return nil
}
