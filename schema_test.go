package schemaxform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaEqualGround(t *testing.T) {
	assert.True(t, GroundSchema(Num).Equal(GroundSchema(Num)))
	assert.False(t, GroundSchema(Num).Equal(GroundSchema(String)))
}

func TestSchemaEqualArr(t *testing.T) {
	a := ArrSchema(GroundSchema(Bool))
	b := ArrSchema(GroundSchema(Bool))
	c := ArrSchema(GroundSchema(String))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestSchemaEqualObjIgnoresBuildOrder(t *testing.T) {
	a := ObjSchema(SchemaMap{"foo": GroundSchema(Num), "bar": GroundSchema(Bool)})
	b := ObjSchema(SchemaMap{"bar": GroundSchema(Bool), "foo": GroundSchema(Num)})
	assert.True(t, a.Equal(b))
}

func TestSchemaMapKeysCanonicalOrder(t *testing.T) {
	sm := SchemaMap{"zeta": GroundSchema(Num), "alpha": GroundSchema(Bool), "mid": GroundSchema(String)}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, sm.Keys())
}

func TestSchemaHashConsistentWithEqual(t *testing.T) {
	a := ObjSchema(SchemaMap{"foo": GroundSchema(Num), "bar": ArrSchema(GroundSchema(Bool))})
	b := ObjSchema(SchemaMap{"bar": ArrSchema(GroundSchema(Bool)), "foo": GroundSchema(Num)})
	require.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestSchemaHashDiffersOnDifferentShape(t *testing.T) {
	a := GroundSchema(Num)
	b := ArrSchema(GroundSchema(Num))
	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestTrueFalseSchemas(t *testing.T) {
	assert.True(t, TrueSchema().IsTrue())
	assert.True(t, FalseSchema().IsFalse())
	assert.False(t, TrueSchema().Equal(FalseSchema()))
}

func TestGroundStringRoundTrip(t *testing.T) {
	for _, g := range Grounds() {
		name := g.String()
		got, ok := groundFromTypeName(name)
		require.True(t, ok, name)
		assert.Equal(t, g, got)
	}
}
