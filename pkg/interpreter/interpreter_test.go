package interpreter

import (
	"errors"
	"math"
	"strings"
	"testing"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/runtime"
)

func TestEvaluateLiterals(t *testing.T) {
	interp := New()
	cases := []struct {
		expr ast.Expression
		want runtime.Value
	}{
		{ast.Str("hello"), runtime.StringValue{Val: "hello"}},
		{ast.Num(1.5), runtime.NumberValue{Val: 1.5}},
		{ast.Bool(true), runtime.BoolValue{Val: true}},
		{ast.Nil(), runtime.NilValue{}},
		{ast.Group(ast.Num(3)), runtime.NumberValue{Val: 3}},
	}
	for _, tc := range cases {
		if got := mustEvaluate(t, interp, tc.expr); got != tc.want {
			t.Fatalf("%s: expected %#v, got %#v", tc.expr, tc.want, got)
		}
	}
}

func TestEvaluateExpressionsFromSource(t *testing.T) {
	interp := New()
	cases := []struct {
		src  string
		want runtime.Value
	}{
		{"1 + 2 * 3", runtime.NumberValue{Val: 7}},
		{"(1 + 2) * 3", runtime.NumberValue{Val: 9}},
		{"1, 2", runtime.NumberValue{Val: 2}},
		{"1 / 2", runtime.NumberValue{Val: 0.5}},
		{"10 - 4 - 3", runtime.NumberValue{Val: 3}},
		{`"a" + "b"`, runtime.StringValue{Val: "ab"}},
		{`1 == "1"`, runtime.BoolValue{Val: false}},
		{`1 != "1"`, runtime.BoolValue{Val: true}},
		{"nil == nil", runtime.BoolValue{Val: true}},
		{"nil == false", runtime.BoolValue{Val: false}},
		{`"x" == "x"`, runtime.BoolValue{Val: true}},
		{"true != true", runtime.BoolValue{Val: false}},
		{"!nil", runtime.BoolValue{Val: true}},
		{"!0", runtime.BoolValue{Val: false}},
		{"!false", runtime.BoolValue{Val: true}},
		{`!""`, runtime.BoolValue{Val: false}},
		{"!(!nil)", runtime.BoolValue{Val: false}},
		{"-(2 * 3)", runtime.NumberValue{Val: -6}},
		{"-(-4)", runtime.NumberValue{Val: 4}},
		{"1 < 2", runtime.BoolValue{Val: true}},
		{"2 <= 2", runtime.BoolValue{Val: true}},
		{"1 > 2", runtime.BoolValue{Val: false}},
		{"3 >= 4", runtime.BoolValue{Val: false}},
		{"true ? 1 : (1/0)", runtime.NumberValue{Val: 1}},
		{"false ? (1/0) : 2", runtime.NumberValue{Val: 2}},
		{"0 ? 1 : 2", runtime.NumberValue{Val: 1}},
		{"nil ? 1 : 2", runtime.NumberValue{Val: 2}},
		{"true ? 1, 2 : 3", runtime.NumberValue{Val: 2}},
	}
	for _, tc := range cases {
		got, err := evaluateSource(t, interp, tc.src)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tc.src, err)
		}
		if got != tc.want {
			t.Fatalf("%s: expected %#v, got %#v", tc.src, tc.want, got)
		}
	}
}

func TestEqualityIsNegationOfInequality(t *testing.T) {
	interp := New()
	values := []ast.Expression{ast.Num(0), ast.Num(1), ast.Str(""), ast.Str("1"), ast.Bool(true), ast.Bool(false), ast.Nil()}
	for _, left := range values {
		for _, right := range values {
			eq := mustEvaluate(t, interp, ast.Bin(ast.BinaryOperatorEqual, left, right)).(runtime.BoolValue)
			ne := mustEvaluate(t, interp, ast.Bin(ast.BinaryOperatorNotEqual, left, right)).(runtime.BoolValue)
			if eq.Val == ne.Val {
				t.Fatalf("%s vs %s: == gave %v and != gave %v", left, right, eq.Val, ne.Val)
			}
		}
	}
}

func TestRuntimeErrors(t *testing.T) {
	interp := New()
	cases := []struct {
		src     string
		message string
		context string
	}{
		{"1 / 0", "cannot divide by 0", "1 / 0"},
		{`"a" + 1`, "cannot add non-numeric types", `"a" + 1`},
		{`1 + "a"`, "cannot add non-numeric types", `1 + "a"`},
		{`"a" - "b"`, "cannot subtract non-numeric types", `"a" - "b"`},
		{"nil * 2", "cannot multiply non-numeric types", "nil * 2"},
		{"true / 2", "cannot divide non-numeric types", "true / 2"},
		{`"a" < "b"`, "cannot compare non-numeric types", `"a" < "b"`},
		{"-true", "cannot negate non-numerical value", "-true"},
		{"missing", "unknown variable `missing`", "missing"},
		{"1 + (2 / 0)", "cannot divide by 0", "2 / 0"},
	}
	for _, tc := range cases {
		_, err := evaluateSource(t, interp, tc.src)
		var rerr *RuntimeError
		if !errors.As(err, &rerr) {
			t.Fatalf("%s: expected RuntimeError, got %v", tc.src, err)
		}
		if rerr.Message != tc.message {
			t.Fatalf("%s: expected %q, got %q", tc.src, tc.message, rerr.Message)
		}
		if rerr.Expression == nil || rerr.Expression.String() != tc.context {
			t.Fatalf("%s: expected context %q, got %v", tc.src, tc.context, rerr.Expression)
		}
	}
}

func TestCommaEvaluatesBothSides(t *testing.T) {
	interp := New()
	_, err := evaluateSource(t, interp, "(1 / 0), 2")
	if err == nil || !strings.Contains(err.Error(), "divide by 0") {
		t.Fatalf("expected the left operand to be evaluated, got %v", err)
	}
}

func TestDeclarationsMutateEnvironment(t *testing.T) {
	interp := New()
	env := interp.GlobalEnvironment()

	if _, err := interp.Execute(ast.Var("x")); err != nil {
		t.Fatalf("declare: %v", err)
	}
	_, err := interp.Evaluate(ast.ID("x"))
	var rerr *RuntimeError
	if !errors.As(err, &rerr) || !strings.Contains(rerr.Message, "does not have a value") {
		t.Fatalf("expected unassigned error, got %v", err)
	}

	val, err := interp.Execute(ast.VarInit("x", ast.Num(1)))
	if err != nil {
		t.Fatalf("define: %v", err)
	}
	if !runtime.IsVoid(val) {
		t.Fatalf("declarations should yield void, got %#v", val)
	}
	if got := mustEvaluate(t, interp, ast.ID("x")); got != (runtime.NumberValue{Val: 1}) {
		t.Fatalf("expected 1, got %#v", got)
	}

	if _, err := interp.Execute(ast.Var("x")); err != nil {
		t.Fatalf("redeclare: %v", err)
	}
	if v, ok := env.Lookup("x"); !ok || !runtime.IsVoid(v) {
		t.Fatalf("expected redeclaration to reset x, got %#v", v)
	}
}

func TestFailedDefinitionLeavesBindingUntouched(t *testing.T) {
	interp := New()
	if _, err := interp.Execute(ast.VarInit("y", ast.Str("kept"))); err != nil {
		t.Fatalf("define: %v", err)
	}
	if _, err := interp.Execute(ast.VarInit("y", ast.Bin(ast.BinaryOperatorDivide, ast.Num(1), ast.Num(0)))); err == nil {
		t.Fatalf("expected runtime error")
	}
	if got := mustEvaluate(t, interp, ast.ID("y")); got != (runtime.StringValue{Val: "kept"}) {
		t.Fatalf("expected previous binding, got %#v", got)
	}
}

func TestWithEnvironmentSharesBindings(t *testing.T) {
	env := runtime.NewEnvironment(nil)
	env.Bind("seed", runtime.NumberValue{Val: 41})
	interp := New(WithEnvironment(env))
	got := mustEvaluate(t, interp, ast.Bin(ast.BinaryOperatorPlus, ast.ID("seed"), ast.Num(1)))
	if got != (runtime.NumberValue{Val: 42}) {
		t.Fatalf("expected 42, got %#v", got)
	}
	if interp.GlobalEnvironment() != env {
		t.Fatalf("expected interpreter to use the supplied environment")
	}
}

func TestFormatValue(t *testing.T) {
	cases := []struct {
		val  runtime.Value
		want string
	}{
		{runtime.StringValue{Val: "hi"}, `"hi"`},
		{runtime.NumberValue{Val: 7}, "7"},
		{runtime.NumberValue{Val: 0.5}, "0.5"},
		{runtime.NumberValue{Val: -2.25}, "-2.25"},
		{runtime.NumberValue{Val: math.Inf(1)}, "inf"},
		{runtime.BoolValue{Val: true}, "true"},
		{runtime.NilValue{}, "nil"},
		{runtime.VoidValue{}, "void"},
	}
	for _, tc := range cases {
		if got := FormatValue(tc.val); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}
