package schemaxform

import (
	"sort"
	"strings"
)

// kind tags which variant a [Schema] node is.
type kind int

const (
	kindGround kind = iota
	kindArr
	kindObj
	kindTrue
	kindFalse
)

// SchemaMap is an ordered mapping of property name to child schema. Two
// SchemaMaps holding the same key/value pairs iterate in the same order
// regardless of insertion order: [SchemaMap.Keys] always returns keys
// sorted ascending, making the canonical property order of an [Schema]
// independent of how it was built.
type SchemaMap map[string]*Schema

// Keys returns the map's property names in canonical (ascending) order.
func (sm SchemaMap) Keys() []string {
	keys := make([]string, 0, len(sm))
	for k := range sm {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Schema is an immutable, structurally-shared tree describing the subset of
// JSON Schema this module understands. The zero value is not a valid
// Schema; construct one with [Parse] or the Ground/Arr/Obj/TrueSchema/
// FalseSchema constructors.
//
// Schema trees are finite DAGs: children may be shared between parents, but
// construction never introduces a cycle. Once built, a Schema is read-only
// and safe to share across goroutines and across [search.Searcher]
// instances.
type Schema struct {
	kind   kind
	ground Ground  // valid when kind == kindGround
	elem   *Schema // valid when kind == kindArr
	props  SchemaMap
}

// GroundSchema builds a Schema matching scalar values of kind g.
func GroundSchema(g Ground) *Schema {
	return &Schema{kind: kindGround, ground: g}
}

// ArrSchema builds a Schema matching arrays whose every element matches elem.
func ArrSchema(elem *Schema) *Schema {
	return &Schema{kind: kindArr, elem: elem}
}

// ObjSchema builds a Schema matching objects whose named properties each
// match the given child schema. The property order of props does not
// affect the resulting Schema's identity: see [SchemaMap.Keys].
func ObjSchema(props SchemaMap) *Schema {
	cp := make(SchemaMap, len(props))
	for k, v := range props {
		cp[k] = v
	}
	return &Schema{kind: kindObj, props: cp}
}

// TrueSchema matches every value.
func TrueSchema() *Schema { return &Schema{kind: kindTrue} }

// FalseSchema matches no value.
func FalseSchema() *Schema { return &Schema{kind: kindFalse} }

// IsGround reports whether s is a Ground leaf, returning its kind.
func (s *Schema) IsGround() (Ground, bool) {
	if s.kind == kindGround {
		return s.ground, true
	}
	return 0, false
}

// IsArr reports whether s is an array schema, returning its element schema.
func (s *Schema) IsArr() (*Schema, bool) {
	if s.kind == kindArr {
		return s.elem, true
	}
	return nil, false
}

// IsObj reports whether s is an object schema, returning its property map.
func (s *Schema) IsObj() (SchemaMap, bool) {
	if s.kind == kindObj {
		return s.props, true
	}
	return nil, false
}

// IsTrue reports whether s is the universal schema.
func (s *Schema) IsTrue() bool { return s.kind == kindTrue }

// IsFalse reports whether s is the unsatisfiable schema.
func (s *Schema) IsFalse() bool { return s.kind == kindFalse }

// Equal reports deep structural equality between s and other.
func (s *Schema) Equal(other *Schema) bool {
	if s == other {
		return true
	}
	if s == nil || other == nil {
		return false
	}
	if s.kind != other.kind {
		return false
	}
	switch s.kind {
	case kindGround:
		return s.ground == other.ground
	case kindArr:
		return s.elem.Equal(other.elem)
	case kindObj:
		if len(s.props) != len(other.props) {
			return false
		}
		for k, v := range s.props {
			ov, ok := other.props[k]
			if !ok || !v.Equal(ov) {
				return false
			}
		}
		return true
	case kindTrue, kindFalse:
		return true
	default:
		return false
	}
}

// Hash computes an FNV-1a style hash consistent with [Schema.Equal]: equal
// schemas always hash equal, regardless of how their property maps were
// built or shared.
func (s *Schema) Hash() uint64 {
	const (
		offset = 14695981039346656037
		prime  = 1099511628211
	)
	h := uint64(offset)
	mix := func(b byte) {
		h ^= uint64(b)
		h *= prime
	}
	mixStr := func(str string) {
		for i := 0; i < len(str); i++ {
			mix(str[i])
		}
	}
	switch s.kind {
	case kindGround:
		mix('g')
		mix(byte(s.ground))
	case kindArr:
		mix('a')
		h ^= s.elem.Hash()
		h *= prime
	case kindObj:
		mix('o')
		// Canonical key order makes the hash independent of build order.
		for _, k := range s.props.Keys() {
			mixStr(k)
			mix(0)
			h ^= s.props[k].Hash()
			h *= prime
		}
	case kindTrue:
		mix('T')
	case kindFalse:
		mix('F')
	}
	return h
}

// String renders a compact, JSON-Schema-flavored description of s, used in
// diagnostics and test failure messages.
func (s *Schema) String() string {
	switch s.kind {
	case kindGround:
		return s.ground.String()
	case kindArr:
		return "array<" + s.elem.String() + ">"
	case kindObj:
		var b strings.Builder
		b.WriteByte('{')
		for i, k := range s.props.Keys() {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(k)
			b.WriteString(": ")
			b.WriteString(s.props[k].String())
		}
		b.WriteByte('}')
		return b.String()
	case kindTrue:
		return "true"
	case kindFalse:
		return "false"
	default:
		return "<invalid>"
	}
}
