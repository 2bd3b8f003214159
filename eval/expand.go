// Package eval provides expression expansion for configuration values.
//
// String values may embed $[expr] spans. Expansion evaluates each span
// against an environment (normally the document's own projection plus
// caller-supplied bindings) and splices the result back in. A string that
// is exactly one span is replaced by the typed evaluation result; embedded
// spans stringify. Inside a span, backslash escapes the next character, so
// `\]` produces a literal bracket.
package eval

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/tomltree/go-tomltree/debug"
	"github.com/tomltree/go-tomltree/tree"
)

// Env is the binding environment for expression evaluation.
type Env = map[string]any

// Eval compiles and runs one expression against env.
func Eval(input string, env Env) (any, error) {
	program, err := expr.Compile(input)
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", input, err)
	}
	return vm.Run(program, env)
}

// Expand walks the tree and expands $[expr] spans in every string value.
// The tree is modified in place.
func Expand(n *tree.Node, env Env) error {
	switch n.Type {
	case tree.TableType, tree.ArrayType:
		for _, v := range n.Values {
			if err := Expand(v, env); err != nil {
				return err
			}
		}
		return nil
	case tree.StringType:
		raw, ok := rawExpr(n.String)
		if !ok {
			out, err := ExpandString(n.String, env)
			if err != nil {
				return err
			}
			n.String = out
			return nil
		}
		val, err := Eval(raw, env)
		if err != nil {
			return fmt.Errorf("error evaluating %q: %w", raw, err)
		}
		if debug.Eval() {
			debug.Logf("eval %q gave %v\n", raw, val)
		}
		repl, err := tree.FromGo(val)
		if err != nil {
			return fmt.Errorf("could not translate evaluation result of %q: %w", raw, err)
		}
		*n = *repl
		return nil
	default:
		return nil
	}
}

// ExpandString expands every $[expr] span in v, stringifying results.
func ExpandString(v string, env Env) (string, error) {
	var out []byte
	i := 0
	for i < len(v) {
		if v[i] == '$' && i+1 < len(v) && v[i+1] == '[' {
			key, end, err := scanSpan(v, i)
			if err != nil {
				return "", err
			}
			val, err := Eval(key, env)
			if err != nil {
				return "", fmt.Errorf("error evaluating %q: %w", key, err)
			}
			out = fmt.Appendf(out, "%v", val)
			i = end
			continue
		}
		out = append(out, v[i])
		i++
	}
	return string(out), nil
}

// scanSpan reads the $[...] span starting at start and returns the
// unescaped expression and the index just past the closing bracket.
func scanSpan(v string, start int) (string, int, error) {
	var key []byte
	i := start + 2
	for i < len(v) {
		c := v[i]
		if c == '\\' && i+1 < len(v) {
			key = append(key, v[i+1])
			i += 2
			continue
		}
		if c == ']' {
			return string(key), i + 1, nil
		}
		key = append(key, c)
		i++
	}
	return "", 0, fmt.Errorf("unterminated expression in %q", v)
}

// rawExpr reports whether v is exactly one $[expr] span and returns the
// expression if so. Such values are replaced by the typed result rather
// than a string.
func rawExpr(v string) (string, bool) {
	if len(v) < 3 || v[0] != '$' || v[1] != '[' {
		return "", false
	}
	key, end, err := scanSpan(v, 0)
	if err != nil || end != len(v) {
		return "", false
	}
	return key, true
}
