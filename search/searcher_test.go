package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kschead/schemaxform"
	"github.com/kschead/schemaxform/ir"
)

func TestGroundIdentityYieldsCopy(t *testing.T) {
	for _, g := range schemaxform.Grounds() {
		s := NewSearcher()
		prog, err := s.Find(schemaxform.GroundSchema(g), schemaxform.GroundSchema(g))
		require.NoError(t, err)
		assert.Equal(t, ir.Program{ir.CopyOp()}, prog)
	}
}

func TestGroundCoercionYieldsG2G(t *testing.T) {
	for _, from := range schemaxform.Grounds() {
		for _, to := range schemaxform.Grounds() {
			if from == to {
				continue
			}
			s := NewSearcher()
			prog, err := s.Find(schemaxform.GroundSchema(from), schemaxform.GroundSchema(to))
			require.NoError(t, err)
			assert.Equal(t, ir.Program{ir.G2GOp(from, to)}, prog)
		}
	}
}

func TestAbstractionIntoSingleKeyObject(t *testing.T) {
	for _, from := range schemaxform.Grounds() {
		for _, to := range schemaxform.Grounds() {
			if from == to {
				continue
			}
			s := NewSearcher()
			target := schemaxform.ObjSchema(schemaxform.SchemaMap{"k": schemaxform.GroundSchema(to)})
			prog, err := s.Find(schemaxform.GroundSchema(from), target)
			require.NoError(t, err)
			assert.Equal(t, ir.Program{ir.G2GOp(from, to), ir.AbsOp("k")}, prog)
		}
	}
}

func TestObjectSubsettingDropsExtraKeys(t *testing.T) {
	source := schemaxform.ObjSchema(schemaxform.SchemaMap{
		"foo": schemaxform.GroundSchema(schemaxform.Num),
		"bar": schemaxform.GroundSchema(schemaxform.Bool),
	})
	target := schemaxform.ObjSchema(schemaxform.SchemaMap{
		"foo": schemaxform.GroundSchema(schemaxform.String),
	})
	s := NewSearcher()
	prog, err := s.Find(source, target)
	require.NoError(t, err)
	assert.Equal(t, ir.Program{
		ir.PushObjOp(),
		ir.PushKeyOp("foo"),
		ir.G2GOp(schemaxform.Num, schemaxform.String),
		ir.PopKeyOp(),
		ir.PopObjOp(),
	}, prog)
}

func TestObjectCoercionWithCopyOrdersKeysAscending(t *testing.T) {
	source := schemaxform.ObjSchema(schemaxform.SchemaMap{
		"foo": schemaxform.GroundSchema(schemaxform.Num),
		"bar": schemaxform.GroundSchema(schemaxform.Bool),
	})
	target := schemaxform.ObjSchema(schemaxform.SchemaMap{
		"foo": schemaxform.GroundSchema(schemaxform.String),
		"bar": schemaxform.GroundSchema(schemaxform.Bool),
	})
	s := NewSearcher()
	prog, err := s.Find(source, target)
	require.NoError(t, err)
	assert.Equal(t, ir.Program{
		ir.PushObjOp(),
		ir.PushKeyOp("bar"),
		ir.CopyOp(),
		ir.PopKeyOp(),
		ir.PushKeyOp("foo"),
		ir.G2GOp(schemaxform.Num, schemaxform.String),
		ir.PopKeyOp(),
		ir.PopObjOp(),
	}, prog)
}

func TestExtraction(t *testing.T) {
	source := schemaxform.ObjSchema(schemaxform.SchemaMap{"foo": schemaxform.GroundSchema(schemaxform.Num)})
	s := NewSearcher()
	prog, err := s.Find(source, schemaxform.GroundSchema(schemaxform.Num))
	require.NoError(t, err)
	assert.Equal(t, ir.Program{ir.ExtrOp("foo")}, prog)
}

func TestArrToGroundIsNoPath(t *testing.T) {
	s := NewSearcher()
	_, err := s.Find(schemaxform.ArrSchema(schemaxform.GroundSchema(schemaxform.Num)), schemaxform.GroundSchema(schemaxform.Num))
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestObjToArrIsNoPath(t *testing.T) {
	s := NewSearcher()
	source := schemaxform.ObjSchema(schemaxform.SchemaMap{"foo": schemaxform.GroundSchema(schemaxform.Num)})
	_, err := s.Find(source, schemaxform.ArrSchema(schemaxform.GroundSchema(schemaxform.Num)))
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestArrToObjIsNoPath(t *testing.T) {
	s := NewSearcher()
	source := schemaxform.ArrSchema(schemaxform.GroundSchema(schemaxform.Num))
	target := schemaxform.ObjSchema(schemaxform.SchemaMap{"foo": schemaxform.GroundSchema(schemaxform.Num)})
	_, err := s.Find(source, target)
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestObjMissingTargetKeyIsNoPath(t *testing.T) {
	source := schemaxform.ObjSchema(schemaxform.SchemaMap{"foo": schemaxform.GroundSchema(schemaxform.Num)})
	target := schemaxform.ObjSchema(schemaxform.SchemaMap{"bar": schemaxform.GroundSchema(schemaxform.Num)})
	s := NewSearcher()
	_, err := s.Find(source, target)
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestFalseIsNeverReachable(t *testing.T) {
	s := NewSearcher()
	_, err := s.Find(schemaxform.FalseSchema(), schemaxform.GroundSchema(schemaxform.Num))
	assert.ErrorIs(t, err, ErrNoPath)

	_, err = s.Find(schemaxform.GroundSchema(schemaxform.Num), schemaxform.FalseSchema())
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestTrueIsTrivialEitherSide(t *testing.T) {
	s := NewSearcher()
	prog, err := s.Find(schemaxform.TrueSchema(), schemaxform.GroundSchema(schemaxform.Num))
	require.NoError(t, err)
	assert.Empty(t, prog)

	prog, err = s.Find(schemaxform.GroundSchema(schemaxform.Num), schemaxform.TrueSchema())
	require.NoError(t, err)
	assert.Empty(t, prog)
}

func TestNestedArrayInObject(t *testing.T) {
	source := schemaxform.ObjSchema(schemaxform.SchemaMap{
		"foo": schemaxform.ArrSchema(schemaxform.GroundSchema(schemaxform.String)),
	})
	target := schemaxform.ObjSchema(schemaxform.SchemaMap{
		"foo": schemaxform.ArrSchema(schemaxform.GroundSchema(schemaxform.Num)),
	})
	s := NewSearcher()
	prog, err := s.Find(source, target)
	require.NoError(t, err)
	assert.Equal(t, ir.Program{
		ir.PushObjOp(),
		ir.PushKeyOp("foo"),
		ir.PushArrOp(),
		ir.G2GOp(schemaxform.String, schemaxform.Num),
		ir.PopArrOp(),
		ir.PopKeyOp(),
		ir.PopObjOp(),
	}, prog)
}

func TestWellFormedOnSuccessfulSearch(t *testing.T) {
	source := schemaxform.ObjSchema(schemaxform.SchemaMap{
		"foo": schemaxform.ArrSchema(schemaxform.GroundSchema(schemaxform.Bool)),
		"bar": schemaxform.GroundSchema(schemaxform.Num),
	})
	target := schemaxform.ObjSchema(schemaxform.SchemaMap{
		"foo": schemaxform.ArrSchema(schemaxform.GroundSchema(schemaxform.Num)),
	})
	s := NewSearcher()
	prog, err := s.Find(source, target)
	require.NoError(t, err)
	assert.True(t, prog.WellFormed())
}

func TestMemoizationReturnsEqualResult(t *testing.T) {
	s := NewSearcher()
	source := schemaxform.GroundSchema(schemaxform.Num)
	target := schemaxform.GroundSchema(schemaxform.String)
	first, err := s.Find(source, target)
	require.NoError(t, err)
	second, err := s.Find(source, target)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
