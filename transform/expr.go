package transform

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// RegisterExpr compiles src as an expr program over an environment
// holding the incoming value as "value", and registers the program
// under name. Non-string results are formatted with %v.
//
//	transform.RegisterExpr("shout", `upper(value) + "!"`)
func RegisterExpr(name, src string) error {
	prog, err := expr.Compile(src, expr.Env(map[string]any{"value": ""}))
	if err != nil {
		return fmt.Errorf("compiling transform %q: %w", name, err)
	}
	Register(name, func(s string) (string, error) {
		out, err := vm.Run(prog, map[string]any{"value": s})
		if err != nil {
			return "", fmt.Errorf("running transform %q: %w", name, err)
		}
		if str, ok := out.(string); ok {
			return str, nil
		}
		return fmt.Sprintf("%v", out), nil
	})
	return nil
}
