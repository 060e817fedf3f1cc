// Package tscodegen is a TypeScript [github.com/kschead/schemaxform/codegen.Backend].
// It shares jscodegen's coercion table and stack discipline exactly; the
// only difference is that declarations and the function signature carry
// explicit type annotations (`any` for the parameter, the result and
// auxiliary variables, since the transform has no static schema type in
// this target; `number` for loop indices).
package tscodegen

import (
	"fmt"

	"github.com/kschead/schemaxform"
	"github.com/kschead/schemaxform/codegen"
	"github.com/kschead/schemaxform/codegen/jscodegen"
	"github.com/kschead/schemaxform/ir"
)

// Backend is the stateless TypeScript target.
type Backend struct{}

var _ codegen.Backend = Backend{}

// Generate runs prog through the shared driver using this backend.
func Generate(prog ir.Program, arg, retvar string) string {
	return codegen.Generate(Backend{}, prog, arg, retvar)
}

// Coerce, property/array access, literals and loop bounds are identical to
// JavaScript's — only declarations and the wrapper differ.
func (Backend) Coerce(from, to schemaxform.Ground, in string) (string, bool) {
	return jscodegen.Backend{}.Coerce(from, to, in)
}

func (Backend) PropertyAccess(base, key string) string { return base + "." + key }
func (Backend) ArrayIndex(base, idx string) string     { return base + "[" + idx + "]" }
func (Backend) Length(base string) string              { return base + ".length" }

func (Backend) ArrayLiteral() string  { return "[]" }
func (Backend) ObjectLiteral() string { return "{}" }
func (Backend) ObjectLiteralWithKey(key, in string) string {
	return fmt.Sprintf("{%q: %s}", key, in)
}

func (Backend) LetDecl(name, expr string) string {
	return fmt.Sprintf("let %s: any = %s;", name, expr)
}
func (Backend) Assign(out, expr string) string { return fmt.Sprintf("%s = %s;", out, expr) }
func (Backend) ForHeader(idx, lengthExpr string) string {
	return fmt.Sprintf("for (let %s: number = 0; %s < %s; %s++) {", idx, idx, lengthExpr, idx)
}
func (Backend) CloseBrace() string { return "}" }
func (Backend) StructuredCopy(in string) string {
	return fmt.Sprintf("structuredClone(%s)", in)
}

func (Backend) IndentUnit() string { return "    " }

func (Backend) Wrap(arg, retvar, body string) string {
	return fmt.Sprintf("function(%s: any): any {\n%s\n    return %s;\n}", arg, body, retvar)
}
