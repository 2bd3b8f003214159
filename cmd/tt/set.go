package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/tomltree/go-tomltree/codec"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	key, value, file, err := mutationArgs(args)
	if err != nil {
		return err
	}
	c, err := loadArg(cfg.MainConfig, file)
	if err != nil {
		return err
	}
	if err := c.AddItem(key, value); err != nil {
		return fmt.Errorf("error setting %s in %s: %w", key, file, err)
	}
	return writeBack(cfg.MainConfig, cc, c)
}

func update(cfg *UpdateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Update.Parse(cc, args)
	if err != nil {
		cfg.Update.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	key, value, file, err := mutationArgs(args)
	if err != nil {
		return err
	}
	c, err := loadArg(cfg.MainConfig, file)
	if err != nil {
		return err
	}
	if err := c.UpdateItem(key, value); err != nil {
		return fmt.Errorf("error updating %s in %s: %w", key, file, err)
	}
	return writeBack(cfg.MainConfig, cc, c)
}

func del(cfg *DelConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Del.Parse(cc, args)
	if err != nil {
		cfg.Del.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: del requires a dotted key", cli.ErrUsage)
	}
	key := args[0]
	file := "-"
	if len(args) > 1 {
		file = args[1]
	}
	c, err := loadArg(cfg.MainConfig, file)
	if err != nil {
		return err
	}
	if err := c.RemoveItem(key); err != nil {
		return fmt.Errorf("error removing %s from %s: %w", key, file, err)
	}
	return writeBack(cfg.MainConfig, cc, c)
}

func mutationArgs(args []string) (key string, value any, file string, err error) {
	if len(args) == 0 {
		return "", nil, "", fmt.Errorf("%w: requires <key>=<value>", cli.ErrUsage)
	}
	key, raw, ok := strings.Cut(args[0], "=")
	if !ok || key == "" {
		return "", nil, "", fmt.Errorf("%w: bad binding %q", cli.ErrUsage, args[0])
	}
	file = "-"
	if len(args) > 1 {
		file = args[1]
	}
	return key, parseScalar(raw), file, nil
}

// parseScalar interprets a command line value as a TOML value, falling back
// to a plain string when it does not parse as one.
func parseScalar(raw string) any {
	m, err := codec.DecodeTOML([]byte("v = " + raw + "\n"))
	if err != nil {
		return raw
	}
	return m["v"]
}
