package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/tomltree/go-tomltree/eval"
)

func evalRun(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
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
		if err := c.Expand(cfg.Env); err != nil {
			return fmt.Errorf("error expanding %s: %w", arg, err)
		}
		if err := encodeOut(cfg.MainConfig, cc, c); err != nil {
			return err
		}
	}
	return nil
}

func envOptTypeFunc(env eval.Env) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		name, val, ok := strings.Cut(a, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: bad binding %q", cli.ErrUsage, a)
		}
		env[name] = parseScalar(val)
		return 0, nil
	}
}
