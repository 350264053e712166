package interpreter

import (
	"fmt"
	"strconv"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/runtime"
)

// FormatValue renders val the way print statements display it.
func FormatValue(val runtime.Value) string {
	switch v := val.(type) {
	case runtime.StringValue:
		return `"` + v.Val + `"`
	case runtime.NumberValue:
		return ast.FormatNumber(v.Val)
	case runtime.BoolValue:
		return strconv.FormatBool(v.Val)
	case runtime.NilValue:
		return "nil"
	case runtime.VoidValue:
		return "void"
	case nil:
		return "<nil>"
	default:
		return fmt.Sprintf("[%s]", v.Kind())
	}
}
