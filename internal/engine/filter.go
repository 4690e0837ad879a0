package engine

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// DocumentEnv defines the variables available to document filter expressions.
type DocumentEnv struct {
	Name     string `expr:"name"`
	Robot    string `expr:"robot"`
	Firmware string `expr:"firmware"`
	Points   int    `expr:"points"`
}

// CompileFilter compiles a document filter expression. The expression must
// evaluate to a boolean, e.g. `robot == "NovaTech RT-500" && points > 10`.
func CompileFilter(src string) (*vm.Program, error) {
	program, err := expr.Compile(src, expr.Env(DocumentEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return program, nil
}

// matchesFilter evaluates a compiled filter against one document's
// environment.
func matchesFilter(program *vm.Program, env DocumentEnv) (bool, error) {
	out, err := expr.Run(program, env)
	if err != nil {
		return false, fmt.Errorf("evaluating filter expression: %w", err)
	}
	matched, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter expression returned %T, expected bool", out)
	}
	return matched, nil
}
