// Package jscodegen is the [github.com/kschead/schemaxform/codegen.Backend]
// that emits plain JavaScript: a ternary/comparison coercion table and a
// bare `function(arg) { ...; return retvar; }` wrapper.
package jscodegen

import (
	"fmt"

	"github.com/kschead/schemaxform"
	"github.com/kschead/schemaxform/codegen"
	"github.com/kschead/schemaxform/ir"
)

// Backend is the stateless JavaScript target.
type Backend struct{}

var _ codegen.Backend = Backend{}

// Generate runs prog through the shared driver using this backend.
func Generate(prog ir.Program, arg, retvar string) string {
	return codegen.Generate(Backend{}, prog, arg, retvar)
}

func (Backend) Coerce(from, to schemaxform.Ground, in string) (string, bool) {
	switch {
	case from == schemaxform.Num && to == schemaxform.Bool:
		return fmt.Sprintf("!(%s === 0)", in), true
	case from == schemaxform.Bool && to == schemaxform.Num:
		// Intentionally inverted: true maps to 0.
		return fmt.Sprintf("%s ? 0 : 1", in), true
	case from == schemaxform.String && to == schemaxform.Num:
		return fmt.Sprintf("parseInt(%s)", in), true
	case from == schemaxform.String && to == schemaxform.Bool:
		return fmt.Sprintf("!!(%s)", in), true
	case from == schemaxform.Null && to == schemaxform.Num:
		return "0", true
	case from == schemaxform.Null && to == schemaxform.Bool:
		return "false", true
	case from == schemaxform.Null && to == schemaxform.String:
		return `"null"`, true
	case to == schemaxform.String:
		return fmt.Sprintf("%s.toString()", in), true
	case to == schemaxform.Null:
		return "null", true
	default:
		return "", false
	}
}

func (Backend) PropertyAccess(base, key string) string { return base + "." + key }
func (Backend) ArrayIndex(base, idx string) string     { return base + "[" + idx + "]" }
func (Backend) Length(base string) string              { return base + ".length" }

func (Backend) ArrayLiteral() string  { return "[]" }
func (Backend) ObjectLiteral() string { return "{}" }
func (Backend) ObjectLiteralWithKey(key, in string) string {
	return fmt.Sprintf("{%q: %s}", key, in)
}

func (Backend) LetDecl(name, expr string) string { return fmt.Sprintf("let %s = %s;", name, expr) }
func (Backend) Assign(out, expr string) string    { return fmt.Sprintf("%s = %s;", out, expr) }
func (Backend) ForHeader(idx, lengthExpr string) string {
	return fmt.Sprintf("for (let %s = 0; %s < %s; %s++) {", idx, idx, lengthExpr, idx)
}
func (Backend) CloseBrace() string { return "}" }
func (Backend) StructuredCopy(in string) string {
	return fmt.Sprintf("structuredClone(%s)", in)
}

func (Backend) IndentUnit() string { return "    " }

func (Backend) Wrap(arg, retvar, body string) string {
	return fmt.Sprintf("function(%s) {\n%s\n    return %s;\n}", arg, body, retvar)
}
