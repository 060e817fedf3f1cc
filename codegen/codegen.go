// Package codegen holds the backend-independent half of code generation:
// the varstack, the input/output path derivation, and the line-by-line
// instruction interpreter. Everything that differs between target
// languages — the coercion table, literal syntax, loop syntax,
// indentation unit, and final function wrapper — lives behind the
// [Backend] interface in a target-specific subpackage (jscodegen,
// tscodegen, gocodegen).
package codegen

import (
	"fmt"
	"strings"

	"github.com/kschead/schemaxform"
	"github.com/kschead/schemaxform/ir"
)

// Backend supplies everything that is specific to one target language. A
// Generate call drives a Backend through a fixed sequence of calls derived
// from the IR; no Backend method needs to know about the varstack, since
// Generate computes every path before calling in.
type Backend interface {
	// Coerce returns the target-language expression converting in (a
	// ground value) from `from` to `to`, or ok=false if the pair has no
	// defined conversion (the instruction then emits nothing).
	Coerce(from, to schemaxform.Ground, in string) (expr string, ok bool)

	// PropertyAccess returns the expression reading property key off base.
	PropertyAccess(base, key string) string
	// ArrayIndex returns the expression reading element idx off base.
	ArrayIndex(base, idx string) string
	// Length returns the expression for base's element count, for use in a
	// for-loop's bound.
	Length(base string) string

	ArrayLiteral() string
	ObjectLiteral() string
	// ObjectLiteralWithKey returns a single-property object literal
	// wrapping in under key — the Abs instruction's payload.
	ObjectLiteralWithKey(key, in string) string

	// LetDecl declares a fresh local name bound to expr.
	LetDecl(name, expr string) string
	// Assign renders an assignment of expr into the out location.
	Assign(out, expr string) string
	// ForHeader opens a counted loop over idx from zero to lengthExpr,
	// ending in a line that opens a block.
	ForHeader(idx, lengthExpr string) string
	// CloseBrace closes the block most recently opened by ForHeader.
	CloseBrace() string
	// StructuredCopy returns the expression deep-copying in.
	StructuredCopy(in string) string

	// IndentUnit is the text inserted per indentation level.
	IndentUnit() string
	// Wrap assembles the final source given the parameter name, the return
	// variable name, and the already-indented instruction body.
	Wrap(arg, retvar, body string) string
}

type levelKind int

const (
	levelVar levelKind = iota
	levelKey
	levelArr
)

type level struct {
	kind levelKind
	name string // levelVar, levelArr
	key  string // levelKey
	idx  string // levelArr
}

// Generate interprets prog against backend b, producing target-language
// source for a function taking arg and assigning its result through
// retvar. It panics if prog is not well-formed — malformed IR is a
// programmer error that can never arise from [search.Searcher] output.
func Generate(b Backend, prog ir.Program, arg, retvar string) string {
	if !prog.WellFormed() {
		panic("codegen: program is not well-formed")
	}

	g := &generator{backend: b, arg: arg, retvar: retvar, indent: 1}
	for _, inst := range prog {
		g.step(inst)
	}
	body := strings.Join(g.lines, "\n")
	return b.Wrap(arg, retvar, body)
}

type generator struct {
	backend Backend
	arg     string
	retvar  string
	stack   []level
	uniq    int
	indent  int
	lines   []string
}

func (g *generator) fresh(prefix string) string {
	name := fmt.Sprintf("%s%d", prefix, g.uniq)
	g.uniq++
	return name
}

func (g *generator) emit(frag string) {
	if strings.HasSuffix(frag, "}") && g.indent > 0 {
		g.indent--
	}
	g.lines = append(g.lines, strings.Repeat(g.backend.IndentUnit(), g.indent)+frag)
	if strings.HasSuffix(frag, "{") {
		g.indent++
	}
}

func (g *generator) inputPath() string {
	path := g.arg
	for _, lvl := range g.stack {
		switch lvl.kind {
		case levelKey:
			path = g.backend.PropertyAccess(path, lvl.key)
		case levelArr:
			path = g.backend.ArrayIndex(path, lvl.idx)
		}
	}
	return path
}

func (g *generator) outputPath() string {
	if len(g.stack) == 0 {
		return g.retvar
	}
	top := g.stack[len(g.stack)-1]
	switch top.kind {
	case levelVar:
		return top.name
	case levelArr:
		return g.backend.ArrayIndex(top.name, top.idx)
	case levelKey:
		if len(g.stack) < 2 || g.stack[len(g.stack)-2].kind != levelVar {
			panic("codegen: a Key level must sit directly above a Var level")
		}
		return g.backend.PropertyAccess(g.stack[len(g.stack)-2].name, top.key)
	default:
		panic("codegen: unreachable level kind")
	}
}

func (g *generator) step(inst ir.Instruction) {
	b := g.backend
	switch inst.Op {
	case ir.G2G:
		in := g.inputPath()
		out := g.outputPath()
		if expr, ok := b.Coerce(inst.From, inst.To, in); ok {
			g.emit(b.Assign(out, expr))
		}
	case ir.Copy:
		g.emit(b.Assign(g.outputPath(), b.StructuredCopy(g.inputPath())))
	case ir.PushArr:
		name := g.fresh("arr")
		idx := g.fresh("idx")
		g.emit(b.LetDecl(name, b.ArrayLiteral()))
		g.emit(b.ForHeader(idx, b.Length(g.inputPath())))
		g.stack = append(g.stack, level{kind: levelArr, name: name, idx: idx})
	case ir.PopArr:
		top := g.mustPop(levelArr, "PopArr")
		g.emit(b.CloseBrace())
		g.emit(b.Assign(g.outputPath(), top.name))
	case ir.PushObj:
		name := g.fresh("obj")
		g.emit(b.LetDecl(name, b.ObjectLiteral()))
		g.stack = append(g.stack, level{kind: levelVar, name: name})
	case ir.PopObj:
		top := g.mustPop(levelVar, "PopObj")
		g.emit(b.Assign(g.outputPath(), top.name))
	case ir.PushKey:
		g.stack = append(g.stack, level{kind: levelKey, key: inst.Key})
	case ir.PopKey:
		g.mustPop(levelKey, "PopKey")
	case ir.Abs:
		g.emit(b.Assign(g.outputPath(), b.ObjectLiteralWithKey(inst.Key, g.inputPath())))
	case ir.Extr:
		g.emit(b.Assign(g.outputPath(), b.PropertyAccess(g.inputPath(), inst.Key)))
	case ir.Inv:
		panic("codegen: Inv has no implementation; the searcher never emits it")
	default:
		panic("codegen: unknown instruction")
	}
}

func (g *generator) mustPop(want levelKind, op string) level {
	if len(g.stack) == 0 || g.stack[len(g.stack)-1].kind != want {
		panic("codegen: " + op + " with mismatched varstack top")
	}
	top := g.stack[len(g.stack)-1]
	g.stack = g.stack[:len(g.stack)-1]
	return top
}

