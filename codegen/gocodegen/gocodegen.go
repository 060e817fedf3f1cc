// Package gocodegen is a Go-source [github.com/kschead/schemaxform/codegen.Backend].
// It drives the same stack-and-path discipline as jscodegen and tscodegen,
// but every value is untyped (`any`) on the Go side, so property and
// element access route through runtime type assertions and a handful of
// small conversion helpers emitted alongside the transform function. The
// final file is assembled and rendered with github.com/dave/jennifer,
// which also takes care of import management for the helpers' dependency
// on strconv and fmt.
package gocodegen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/kschead/schemaxform"
	"github.com/kschead/schemaxform/codegen"
	"github.com/kschead/schemaxform/ir"
)

// Backend is the stateless Go target.
type Backend struct{}

var _ codegen.Backend = Backend{}

// FuncName is the name given to the generated transform function.
const FuncName = "Transform"

func (Backend) Coerce(from, to schemaxform.Ground, in string) (string, bool) {
	switch {
	case from == schemaxform.Num && to == schemaxform.Bool:
		return fmt.Sprintf("%s.(float64) != 0", in), true
	case from == schemaxform.Bool && to == schemaxform.Num:
		// Intentionally inverted: true maps to 0, matching the other backends.
		return fmt.Sprintf("boolToNum(%s.(bool))", in), true
	case from == schemaxform.String && to == schemaxform.Num:
		return fmt.Sprintf("atoiOrZero(%s.(string))", in), true
	case from == schemaxform.String && to == schemaxform.Bool:
		return fmt.Sprintf("%s.(string) != \"\"", in), true
	case from == schemaxform.Null && to == schemaxform.Num:
		return "float64(0)", true
	case from == schemaxform.Null && to == schemaxform.Bool:
		return "false", true
	case from == schemaxform.Null && to == schemaxform.String:
		return `"null"`, true
	case to == schemaxform.String:
		return fmt.Sprintf("toStringAny(%s)", in), true
	case to == schemaxform.Null:
		return "nil", true
	default:
		return "", false
	}
}

func (Backend) PropertyAccess(base, key string) string {
	return fmt.Sprintf("%s.(map[string]any)[%q]", base, key)
}
func (Backend) ArrayIndex(base, idx string) string {
	return fmt.Sprintf("%s.([]any)[%s]", base, idx)
}
func (Backend) Length(base string) string { return fmt.Sprintf("len(%s.([]any))", base) }

func (Backend) ArrayLiteral() string  { return "[]any{}" }
func (Backend) ObjectLiteral() string { return "map[string]any{}" }
func (Backend) ObjectLiteralWithKey(key, in string) string {
	return fmt.Sprintf("map[string]any{%q: %s}", key, in)
}

func (Backend) LetDecl(name, expr string) string { return fmt.Sprintf("var %s any = %s", name, expr) }
func (Backend) Assign(out, expr string) string   { return fmt.Sprintf("%s = %s", out, expr) }
func (Backend) ForHeader(idx, lengthExpr string) string {
	return fmt.Sprintf("for %s := 0; %s < %s; %s++ {", idx, idx, lengthExpr, idx)
}
func (Backend) CloseBrace() string              { return "}" }
func (Backend) StructuredCopy(in string) string { return fmt.Sprintf("cloneValue(%s)", in) }

func (Backend) IndentUnit() string { return "\t" }

// Wrap produces a bare function when gocodegen.Backend drives the shared
// codegen.Generate directly. Generate below also goes through it, but then
// cuts the statement block back out and builds the whole file with jennifer
// so the helper functions and imports come along for free.
func (Backend) Wrap(arg, retvar, body string) string {
	return fmt.Sprintf("func %s(%s any) any {\n%s\n\treturn %s\n}", FuncName, arg, body, retvar)
}

// Generate renders prog as a complete Go source file defining Transform
// and the scalar-conversion helpers its body calls.
func Generate(prog ir.Program, arg, retvar string) (string, error) {
	body := codegen.Generate(Backend{}, prog, arg, retvar)
	// Backend.Wrap already produced a full function; re-derive just the
	// statement block jennifer should splice in, since jennifer owns the
	// func signature and return statement itself below.
	start := strings.Index(body, "any {\n") + len("any {\n")
	end := strings.LastIndex(body, "\n\treturn")
	stmts := body[start:end]

	f := jen.NewFile("transform")
	f.HeaderComment("Code generated by schemaxform. DO NOT EDIT.")

	f.Func().Id(FuncName).Params(jen.Id(arg).Any()).Any().Block(
		jen.Var().Id(retvar).Any(),
		jen.Op(stmts),
		jen.Return(jen.Id(retvar)),
	)

	f.Func().Id("boolToNum").Params(jen.Id("b").Bool()).Float64().Block(
		jen.If(jen.Id("b")).Block(jen.Return(jen.Lit(0))),
		jen.Return(jen.Lit(1)),
	)

	f.Func().Id("atoiOrZero").Params(jen.Id("s").String()).Float64().Block(
		jen.List(jen.Id("n"), jen.Id("err")).Op(":=").Qual("strconv", "Atoi").Call(jen.Id("s")),
		jen.If(jen.Id("err").Op("!=").Nil()).Block(jen.Return(jen.Lit(0))),
		jen.Return(jen.Float64().Call(jen.Id("n"))),
	)

	f.Func().Id("toStringAny").Params(jen.Id("v").Any()).String().Block(
		jen.Return(jen.Qual("fmt", "Sprint").Call(jen.Id("v"))),
	)

	f.Func().Id("cloneValue").Params(jen.Id("v").Any()).Any().Block(
		jen.Switch(jen.Id("t").Op(":=").Id("v").Assert(jen.Id("type"))).Block(
			jen.Case(jen.Map(jen.String()).Any()).Block(
				jen.Id("out").Op(":=").Make(jen.Map(jen.String()).Any(), jen.Len(jen.Id("t"))),
				jen.For(jen.List(jen.Id("k"), jen.Id("elem")).Op(":=").Range().Id("t")).Block(
					jen.Id("out").Index(jen.Id("k")).Op("=").Id("cloneValue").Call(jen.Id("elem")),
				),
				jen.Return(jen.Id("out")),
			),
			jen.Case(jen.Index().Any()).Block(
				jen.Id("out").Op(":=").Make(jen.Index().Any(), jen.Len(jen.Id("t"))),
				jen.For(jen.List(jen.Id("i"), jen.Id("elem")).Op(":=").Range().Id("t")).Block(
					jen.Id("out").Index(jen.Id("i")).Op("=").Id("cloneValue").Call(jen.Id("elem")),
				),
				jen.Return(jen.Id("out")),
			),
			jen.Default().Block(
				jen.Return(jen.Id("v")),
			),
		),
	)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

