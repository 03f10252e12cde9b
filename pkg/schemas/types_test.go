package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		token      string
		kind       Kind
		ordered    bool
		comparable bool
	}{
		{"float64", KindNamed, true, true},
		{"bool", KindNamed, false, true},
		{"example.com/geo.Point", KindNamed, false, true},
		{"*example.com/geo.Point", KindPointer, false, true},
		{"[]string", KindSlice, false, false},
		{"[4]float32", KindArray, false, true},
		{"[2][]int", KindArray, false, false},
		{"map[[2]int]string", KindMap, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			typ, err := ParseType(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, typ.Kind)
			assert.Equal(t, tt.ordered, typ.Ordered)
			assert.Equal(t, tt.comparable, typ.Comparable)
			assert.Equal(t, tt.token, typ.String())
		})
	}
}

func TestParseTypeParts(t *testing.T) {
	typ, err := ParseType("map[string]*example.com/geo.Point")
	require.NoError(t, err)
	assert.Equal(t, "string", typ.Key.Name)
	require.Equal(t, KindPointer, typ.Elem.Kind)
	assert.Equal(t, "example.com/geo", typ.Elem.Elem.Domain)
	assert.Equal(t, "Point", typ.Elem.Elem.Name)
	assert.False(t, typ.Elem.Elem.Predeclared())
}

func TestParseTypeRejects(t *testing.T) {
	for _, tok := range []string{"", "Point", "[x]int", "[3int", "map[string", "geo.", "*"} {
		_, err := ParseType(tok)
		assert.Error(t, err, tok)
	}
}

func TestCompanions(t *testing.T) {
	for _, c := range Companions() {
		parsed, ok := ParseCompanion(c.String())
		require.True(t, ok)
		assert.Equal(t, c, parsed)
	}
	_, ok := ParseCompanion("Iter")
	assert.False(t, ok)
}

func TestDeriveAppliesTo(t *testing.T) {
	for _, c := range Companions() {
		assert.True(t, DeriveStringer.AppliesTo(c))
	}
	for _, d := range []Derive{DeriveEqual, DeriveClone, DeriveJSON} {
		for _, c := range []Companion{CompanionRef, CompanionRefMut, CompanionPtr, CompanionPtrMut} {
			assert.False(t, d.AppliesTo(c), "%s on %s", d, c)
		}
	}
	assert.True(t, DeriveEqual.AppliesTo(CompanionSliceMut))
	assert.False(t, DeriveClone.AppliesTo(CompanionSlice))
	assert.True(t, DeriveOrdered.AppliesTo(CompanionRef))
	assert.True(t, DeriveOrdered.AppliesTo(CompanionSliceMut))
	assert.False(t, DeriveOrdered.AppliesTo(CompanionVec))
}
