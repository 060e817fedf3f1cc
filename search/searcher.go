// Package search implements the schema-to-schema path search: given a
// source and a target [github.com/kschead/schemaxform.Schema], find an
// [github.com/kschead/schemaxform/ir.Program] that witnesses a conversion
// from one to the other.
package search

import (
	"errors"

	"github.com/kschead/schemaxform"
	"github.com/kschead/schemaxform/ir"
)

// ErrNoPath is returned when no sequence of rewriting instructions relates
// the two schemas under the rules below. It propagates out of every
// recursive call that encounters it; a failing sub-search discards any IR
// built so far in that branch.
var ErrNoPath = errors.New("no transformation path")

type pairKey struct {
	l, r *schemaxform.Schema
}

// Searcher finds transformation paths between schemas, memoizing results
// by the (source, target) pointer pair so that repeated subschema
// relationships within one search (or across searches sharing interned
// subtrees — see [schemaxform.Parse]) are resolved once.
//
// A Searcher is not safe for concurrent use; schemas themselves are
// immutable and may be freely shared across Searcher instances running on
// separate goroutines.
type Searcher struct {
	memo map[pairKey]ir.Program
}

// NewSearcher returns an empty Searcher.
func NewSearcher() *Searcher {
	return &Searcher{memo: make(map[pairKey]ir.Program)}
}

// Find returns an IR program that converts values matching source into
// values matching target, or ErrNoPath if none exists. Given equal inputs
// (by pointer, or via [schemaxform.Parse]'s interning, by structure) the
// emitted program is deterministic.
func (s *Searcher) Find(source, target *schemaxform.Schema) (ir.Program, error) {
	key := pairKey{source, target}
	if cached, ok := s.memo[key]; ok {
		return cached, nil
	}

	prog, err := s.find(source, target)
	if err != nil {
		return nil, err
	}
	s.memo[key] = prog
	return prog, nil
}

func (s *Searcher) find(l, r *schemaxform.Schema) (ir.Program, error) {
	// True/False are checked first because they are "anything" wildcards
	// on either side; this is safe because every other branch below
	// matches a specific, disjoint Schema kind.
	if l.IsTrue() || r.IsTrue() {
		return ir.Program{}, nil
	}
	if l.IsFalse() || r.IsFalse() {
		return nil, ErrNoPath
	}

	if lg, ok := l.IsGround(); ok {
		return s.findFromGround(lg, r)
	}
	if le, ok := l.IsArr(); ok {
		return s.findFromArr(le, r)
	}
	if lm, ok := l.IsObj(); ok {
		return s.findFromObj(lm, r)
	}
	return nil, ErrNoPath
}

func (s *Searcher) findFromGround(lg schemaxform.Ground, r *schemaxform.Schema) (ir.Program, error) {
	if rg, ok := r.IsGround(); ok {
		if lg == rg {
			return ir.Program{ir.CopyOp()}, nil
		}
		return ir.Program{ir.G2GOp(lg, rg)}, nil
	}
	if _, ok := r.IsArr(); ok {
		return nil, ErrNoPath
	}
	if rm, ok := r.IsObj(); ok {
		if len(rm) != 1 {
			return nil, ErrNoPath
		}
		key, val := soleEntry(rm)
		inner, err := s.Find(schemaxform.GroundSchema(lg), val)
		if err != nil {
			return nil, err
		}
		return append(append(ir.Program{}, inner...), ir.AbsOp(key)), nil
	}
	return nil, ErrNoPath
}

func (s *Searcher) findFromArr(le *schemaxform.Schema, r *schemaxform.Schema) (ir.Program, error) {
	if _, ok := r.IsGround(); ok {
		return nil, ErrNoPath
	}
	if re, ok := r.IsArr(); ok {
		inner, err := s.Find(le, re)
		if err != nil {
			return nil, err
		}
		prog := append(ir.Program{ir.PushArrOp()}, inner...)
		return append(prog, ir.PopArrOp()), nil
	}
	// Arr -> Obj is reserved for Inv, which the searcher never emits.
	return nil, ErrNoPath
}

func (s *Searcher) findFromObj(lm schemaxform.SchemaMap, r *schemaxform.Schema) (ir.Program, error) {
	if rg, ok := r.IsGround(); ok {
		for _, k := range lm.Keys() {
			if g, ok := lm[k].IsGround(); ok && g == rg {
				return ir.Program{ir.ExtrOp(k)}, nil
			}
		}
		return nil, ErrNoPath
	}
	if _, ok := r.IsArr(); ok {
		// Obj -> Arr is reserved for Inv, which the searcher never emits.
		return nil, ErrNoPath
	}
	if rm, ok := r.IsObj(); ok {
		for k := range rm {
			if _, ok := lm[k]; !ok {
				return nil, ErrNoPath
			}
		}

		prog := ir.Program{ir.PushObjOp()}
		for _, k := range lm.Keys() {
			v2, ok := rm[k]
			if !ok {
				continue // present only in source: dropped, not copied
			}
			inner, err := s.Find(lm[k], v2)
			if err != nil {
				return nil, err
			}
			prog = append(prog, ir.PushKeyOp(k))
			prog = append(prog, inner...)
			prog = append(prog, ir.PopKeyOp())
		}
		return append(prog, ir.PopObjOp()), nil
	}
	return nil, ErrNoPath
}

func soleEntry(m schemaxform.SchemaMap) (string, *schemaxform.Schema) {
	for _, k := range m.Keys() {
		return k, m[k]
	}
	return "", nil
}
