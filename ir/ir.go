// Package ir defines the flat instruction set that is the pivot of
// schemaxform's design: the only thing
// [github.com/kschead/schemaxform/search.Searcher] produces and the only
// thing a [github.com/kschead/schemaxform/codegen] backend consumes.
//
// An Instruction carries no explicit "current location" operand. Location
// is an implicit evaluation stack maintained by the codegen driver; the
// searcher's Push*/Pop* emissions assume that stack discipline exactly, so
// changing one side without the other breaks the contract silently.
package ir

import "github.com/kschead/schemaxform"

// Op names an Instruction's variant.
type Op int

const (
	// G2G coerces a scalar at the current location from From to To.
	G2G Op = iota
	// Copy deep-copies the current input location to the current output
	// location.
	Copy
	// PushArr begins an array frame: allocates an output array and
	// iterates the input array, the element index becoming the current
	// input/output position.
	PushArr
	// PopArr closes the innermost array frame and assigns the collected
	// array into the enclosing output location.
	PopArr
	// PushObj begins an object frame: allocates an empty output object.
	PushObj
	// PopObj closes the innermost object frame and assigns the collected
	// object into the enclosing output location.
	PopObj
	// PushKey descends into property Key of both input and output.
	PushKey
	// PopKey ascends one key level.
	PopKey
	// Abs abstracts the current value into a single-property object
	// {Key: value}.
	Abs
	// Extr extracts property Key from the current value — the reverse of
	// Abs.
	Extr
	// Inv is reserved for inverting array-of-object <-> object-of-array.
	// The searcher never emits it (every case that would require
	// inversion returns search.ErrNoPath instead); codegen backends treat
	// it as an unreachable invariant violation.
	Inv
)

// Instruction is one step of an IR program. Only the fields relevant to Op
// are meaningful; for example Key is unset for Copy.
type Instruction struct {
	Op   Op
	From schemaxform.Ground // G2G only
	To   schemaxform.Ground // G2G only
	Key  string             // PushKey, Abs, Extr only
}

func G2GOp(from, to schemaxform.Ground) Instruction { return Instruction{Op: G2G, From: from, To: to} }
func CopyOp() Instruction                           { return Instruction{Op: Copy} }
func PushArrOp() Instruction                        { return Instruction{Op: PushArr} }
func PopArrOp() Instruction                         { return Instruction{Op: PopArr} }
func PushObjOp() Instruction                        { return Instruction{Op: PushObj} }
func PopObjOp() Instruction                         { return Instruction{Op: PopObj} }
func PushKeyOp(key string) Instruction              { return Instruction{Op: PushKey, Key: key} }
func PopKeyOp() Instruction                         { return Instruction{Op: PopKey} }
func AbsOp(key string) Instruction                  { return Instruction{Op: Abs, Key: key} }
func ExtrOp(key string) Instruction                 { return Instruction{Op: Extr, Key: key} }
func InvOp() Instruction                            { return Instruction{Op: Inv} }

// Program is a linear IR sequence. A well-formed Program has its
// Push*/Pop* pairs balanced and properly nested (arrays inside objects
// inside arrays, and so on); [Program.WellFormed] checks this mechanically.
// The searcher only ever emits well-formed programs — codegen backends are
// entitled to assume it.
type Program []Instruction

// WellFormed reports whether p's Push*/Pop* instructions are balanced and
// correctly nested. It does not check G2G/Abs/Extr/Copy/Inv semantics; it
// only verifies the structural bracket discipline codegen relies on.
func (p Program) WellFormed() bool {
	var stack []Op
	for _, inst := range p {
		switch inst.Op {
		case PushArr, PushObj, PushKey:
			stack = append(stack, inst.Op)
		case PopArr:
			if len(stack) == 0 || stack[len(stack)-1] != PushArr {
				return false
			}
			stack = stack[:len(stack)-1]
		case PopObj:
			if len(stack) == 0 || stack[len(stack)-1] != PushObj {
				return false
			}
			stack = stack[:len(stack)-1]
		case PopKey:
			if len(stack) == 0 || stack[len(stack)-1] != PushKey {
				return false
			}
			stack = stack[:len(stack)-1]
		}
	}
	return len(stack) == 0
}
