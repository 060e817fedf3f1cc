package codegen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kschead/schemaxform/codegen"
	"github.com/kschead/schemaxform/codegen/jscodegen"
	"github.com/kschead/schemaxform/ir"
)

func TestGeneratePanicsOnMalformedProgram(t *testing.T) {
	prog := ir.Program{ir.PushObjOp()} // missing PopObj
	assert.Panics(t, func() {
		codegen.Generate(jscodegen.Backend{}, prog, "input", "output")
	})
}

func TestGeneratePanicsOnInv(t *testing.T) {
	prog := ir.Program{ir.InvOp()}
	assert.Panics(t, func() {
		codegen.Generate(jscodegen.Backend{}, prog, "input", "output")
	})
}

func TestGenerateEmptyProgramEmitsOnlyWrapper(t *testing.T) {
	got := codegen.Generate(jscodegen.Backend{}, ir.Program{}, "input", "output")
	want := "function(input) {\n\n    return output;\n}"
	assert.Equal(t, want, got)
}
