package schemaxform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditDistanceEqualIsZero(t *testing.T) {
	assert.Equal(t, NatN(0), SchemaEditDistance(GroundSchema(Num), GroundSchema(Num)))
}

func TestEditDistanceArrRecurses(t *testing.T) {
	from := ArrSchema(GroundSchema(Num))
	to := ArrSchema(GroundSchema(String))
	assert.Equal(t, NatN(1), SchemaEditDistance(from, to))
}

func TestEditDistanceObjMissingTargetKeyIsInfinite(t *testing.T) {
	from := ObjSchema(SchemaMap{"foo": GroundSchema(Num)})
	to := ObjSchema(SchemaMap{"foo": GroundSchema(Num), "bar": GroundSchema(Bool)})
	assert.True(t, SchemaEditDistance(from, to).IsInf())
}

func TestEditDistanceObjSumsPerKeyPlusExtras(t *testing.T) {
	from := ObjSchema(SchemaMap{
		"foo": GroundSchema(Num),
		"bar": GroundSchema(Bool),
		"baz": GroundSchema(String),
	})
	to := ObjSchema(SchemaMap{"foo": GroundSchema(String)})
	// foo: Num vs String -> 1; bar, baz only in source -> 1 each.
	assert.Equal(t, NatN(3), SchemaEditDistance(from, to))
}

func TestEditDistanceObjToScalar(t *testing.T) {
	withMatch := ObjSchema(SchemaMap{"foo": GroundSchema(Num)})
	assert.Equal(t, NatN(1), SchemaEditDistance(withMatch, GroundSchema(Num)))

	withoutMatch := ObjSchema(SchemaMap{"foo": GroundSchema(Bool)})
	assert.True(t, SchemaEditDistance(withoutMatch, GroundSchema(Num)).IsInf())
}

func TestEditDistanceDefaultCase(t *testing.T) {
	assert.Equal(t, NatN(1), SchemaEditDistance(GroundSchema(Num), GroundSchema(Bool)))
	assert.Equal(t, NatN(1), SchemaEditDistance(GroundSchema(Num), ArrSchema(GroundSchema(Num))))
}
