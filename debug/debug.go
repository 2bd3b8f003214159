// Package debug provides env-gated debug tracing for the library. All
// flags are off unless the corresponding TT_DEBUG_* environment variable is
// set to a true value; the core emits nothing otherwise.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Patch bool
	Diff  bool
	Eval  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Patch = boolEnv("TT_DEBUG_PATCH")
	d.Diff = boolEnv("TT_DEBUG_DIFF")
	d.Eval = boolEnv("TT_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Patch() bool {
	return d.Patch
}

func Diff() bool {
	return d.Diff
}

func Eval() bool {
	return d.Eval
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
