package geo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soagen/pkg/soa"
)

func points(n int) *Vec3Vec {
	v := NewVec3VecWithCapacity(n)
	for i := 0; i < n; i++ {
		f := float64(i)
		v.Push(Vec3{X: f, Y: 10 * f, Z: 100 * f})
	}
	return v
}

func TestVec3VecPushPop(t *testing.T) {
	v := NewVec3Vec()
	assert.True(t, v.IsEmpty())
	_, ok := v.Pop()
	assert.False(t, ok)

	v.Push(Vec3{1, 2, 3})
	v.Push(Vec3{4, 5, 6})
	assert.Equal(t, 2, v.Len())
	assert.Equal(t, []float64{1, 4}, v.X)
	assert.Equal(t, []float64{3, 6}, v.Z)
	assert.Equal(t, Vec3{4, 5, 6}, v.Index(1).Value())

	last, ok := v.Pop()
	require.True(t, ok)
	assert.Equal(t, Vec3{4, 5, 6}, last)
	assert.Equal(t, 1, v.Len())
}

func TestVec3VecCapacity(t *testing.T) {
	v := NewVec3VecWithCapacity(9)
	assert.GreaterOrEqual(t, v.Cap(), 9)
	assert.Equal(t, 0, v.Len())

	v.ReserveExact(100)
	assert.Equal(t, 100, v.Cap())

	v.Push(Vec3{})
	v.Push(Vec3{})
	v.ShrinkToFit()
	assert.Equal(t, 2, v.Cap())
}

func TestVec3VecEdits(t *testing.T) {
	v := points(5)

	v.Insert(1, Vec3{X: -1})
	assert.Equal(t, []float64{0, -1, 1, 2, 3, 4}, v.X)
	assert.Equal(t, Vec3{X: -1}, v.Remove(1))

	assert.Equal(t, Vec3{X: 1, Y: 10, Z: 100}, v.SwapRemove(1))
	assert.Equal(t, []float64{0, 4, 2, 3}, v.X)
	assert.Equal(t, []float64{0, 40, 20, 30}, v.Y)

	old := v.Replace(0, Vec3{7, 8, 9})
	assert.Equal(t, Vec3{}, old)
	assert.Equal(t, Vec3{7, 8, 9}, v.Index(0).Value())

	assert.Panics(t, func() { v.Remove(4) })
	assert.Panics(t, func() { v.Insert(5, Vec3{}) })
}

func TestVec3VecTruncateResize(t *testing.T) {
	v := points(4)
	v.Truncate(10)
	assert.Equal(t, 4, v.Len())
	v.Truncate(2)
	assert.Equal(t, []float64{0, 1}, v.X)
	assert.Equal(t, []float64{0, 0}, v.X[:4][2:], "dropped slots are zeroed")

	v.Resize(4, Vec3{X: 9})
	assert.Equal(t, []float64{0, 1, 9, 9}, v.X)
	v.Clear()
	assert.True(t, v.IsEmpty())
}

func TestVec3VecAppendSplitOff(t *testing.T) {
	v := points(3)
	other := points(2)
	v.Append(other)
	assert.Equal(t, 5, v.Len())
	assert.True(t, other.IsEmpty())

	tail := v.SplitOff(3)
	assert.Equal(t, []float64{0, 1, 2}, v.X)
	assert.Equal(t, []float64{0, 1}, tail.X)
	assert.Equal(t, []float64{0, 10}, tail.Y)
}

func TestVec3VecRetain(t *testing.T) {
	v := points(6)
	v.Retain(func(r Vec3Ref) bool { return int(*r.X)%2 == 0 })
	assert.Equal(t, []float64{0, 2, 4}, v.X)
	assert.Equal(t, []float64{0, 200, 400}, v.Z)

	v.RetainMut(func(r Vec3RefMut) bool {
		*r.Y = -*r.Y
		return *r.X > 0
	})
	assert.Equal(t, []float64{-20, -40}, v.Y)
}

func TestVec3SliceViews(t *testing.T) {
	v := points(5)
	s := v.AsSlice()

	first, ok := s.First()
	require.True(t, ok)
	assert.Equal(t, 0.0, *first.X)
	last, ok := s.Last()
	require.True(t, ok)
	assert.Equal(t, 4.0, *last.X)

	head, rest, ok := s.SplitFirst()
	require.True(t, ok)
	assert.Equal(t, 0.0, *head.X)
	assert.Equal(t, 4, rest.Len())

	left, right := s.SplitAt(2)
	assert.Equal(t, []float64{0, 1}, left.X)
	assert.Equal(t, []float64{2, 3, 4}, right.X)
	assert.Panics(t, func() { s.SplitAt(6) })

	_, _, ok = Vec3Slice{}.SplitLast()
	assert.False(t, ok)

	sub := s.Slice(soa.Span(1, 3))
	assert.Equal(t, []float64{10, 20}, sub.Y)
	_, ok = s.GetSlice(soa.Span(3, 9))
	assert.False(t, ok)
	assert.Equal(t, s.Slice(soa.Inclusive(1, 3)).Y, s.GetSliceUnchecked(soa.Span(1, 4)).Y)
}

func TestVec3Indexing(t *testing.T) {
	v := points(3)

	ref, ok := v.Get(2)
	require.True(t, ok)
	assert.Equal(t, Vec3{2, 20, 200}, ref.Value())
	_, ok = v.Get(3)
	assert.False(t, ok)
	_, ok = v.Get(-1)
	assert.False(t, ok)
	assert.Panics(t, func() { v.Index(3) })

	assert.Equal(t, v.Index(1).Value(), v.GetUnchecked(1).Value())

	*v.IndexMut(1).Z = -1
	assert.Equal(t, -1.0, v.Z[1])
	m, ok := v.GetMut(0)
	require.True(t, ok)
	*m.X = 42
	assert.Equal(t, 42.0, v.X[0])
}

func TestVec3SliceMut(t *testing.T) {
	v := points(4)
	s := v.AsMutSlice()

	s.Swap(0, 3)
	assert.Equal(t, []float64{3, 1, 2, 0}, v.X)
	assert.Equal(t, []float64{300, 100, 200, 0}, v.Z)
	assert.Panics(t, func() { s.Swap(0, 4) })

	head, tail := s.SplitAtMut(1)
	*head.IndexMut(0).Y = 0
	*tail.IndexMut(0).Y = 0
	assert.Equal(t, []float64{0, 0, 20, 0}, v.Y)

	s.Sort()
	assert.Equal(t, []float64{0, 1, 2, 3}, v.X)
}

func TestVec3Sort(t *testing.T) {
	v := NewVec3Vec()
	for _, p := range []Vec3{{2, 0, 0}, {1, 5, 0}, {1, 2, 0}, {0, 9, 9}} {
		v.Push(p)
	}
	v.AsMutSlice().Sort()
	assert.Equal(t, []float64{0, 1, 1, 2}, v.X)
	assert.Equal(t, []float64{9, 2, 5, 0}, v.Y)

	SortVec3SliceMutByKey(v.AsMutSlice(), func(r Vec3Ref) float64 { return -*r.Y })
	assert.Equal(t, []float64{9, 5, 2, 0}, v.Y)
	assert.Equal(t, []float64{0, 1, 1, 2}, v.X)
}

func TestVec3ApplyIndex(t *testing.T) {
	v := points(4)
	v.AsMutSlice().ApplyIndex([]int{2, 0, 3, 1})
	assert.Equal(t, []float64{2, 0, 3, 1}, v.X)
	assert.Equal(t, []float64{20, 0, 30, 10}, v.Y)

	assert.Panics(t, func() { v.AsMutSlice().ApplyIndex([]int{0, 1}) })
}

func TestVec3Iterators(t *testing.T) {
	v := points(3)

	it := v.Iter()
	assert.Equal(t, 3, it.Len())
	var xs []float64
	for r, ok := it.Next(); ok; r, ok = it.Next() {
		xs = append(xs, *r.X)
	}
	assert.Equal(t, []float64{0, 1, 2}, xs)
	assert.Equal(t, 0, it.Len())
	_, ok := it.Next()
	assert.False(t, ok)

	for i, r := range v.AllMut() {
		*r.Z = float64(-i)
	}
	assert.Equal(t, []float64{0, -1, -2}, v.Z)

	n := 0
	for i, r := range v.All() {
		assert.Equal(t, float64(i), *r.X)
		n++
	}
	assert.Equal(t, 3, n)
}

func TestVec3Pointers(t *testing.T) {
	v := points(4)

	p := v.AsPtr()
	assert.False(t, p.IsNull())
	assert.True(t, Vec3Ptr{}.IsNull())
	_, ok := Vec3Ptr{}.AsRef()
	assert.False(t, ok)

	assert.Equal(t, Vec3{2, 20, 200}, p.Add(2).Read())
	assert.Equal(t, Vec3{1, 10, 100}, p.Add(3).Sub(2).Read())

	s := Vec3SliceFromRawParts(v.AsPtr(), v.Len())
	assert.True(t, s.Equal(v.AsSlice()))

	mp := v.AsMutPtr().Add(1)
	mp.Write(Vec3{7, 7, 7})
	assert.Equal(t, Vec3{7, 7, 7}, v.Index(1).Value())

	rebuilt := Vec3VecFromRawParts(v.AsMutPtr(), v.Len(), v.Cap())
	assert.True(t, rebuilt.Equal(v))
}

func TestVec3Equal(t *testing.T) {
	a, b := points(3), points(3)
	assert.True(t, a.Equal(b))
	assert.True(t, a.AsMutSlice().Equal(b.AsMutSlice()))
	b.X[2] = -1
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(points(2)))

	assert.True(t, a.AsSlice().ToVec().Equal(a))
}

func TestVec3Compare(t *testing.T) {
	v := NewVec3Vec()
	v.Push(Vec3{1, 2, 3})
	v.Push(Vec3{1, 2, 4})
	v.Push(Vec3{1, 2, 3})
	assert.Equal(t, -1, v.Index(0).Compare(v.Index(1)))
	assert.Equal(t, 1, v.Index(1).Compare(v.Index(0)))
	assert.Equal(t, 0, v.Index(0).Compare(v.Index(2)))
}

func TestVec3VecColumnsDisagree(t *testing.T) {
	v := points(2)
	v.Y = v.Y[:1]
	assert.Panics(t, func() { v.Len() })
}

func TestVec3VecImplementsVector(t *testing.T) {
	var vec soa.Vector[Vec3, Vec3Ref] = points(2)
	vec.Push(Vec3{X: 2})
	assert.Equal(t, 3, vec.Len())
	assert.Equal(t, 2.0, *vec.Index(2).X)
}

func TestVec3VecJSON(t *testing.T) {
	data, err := json.Marshal(points(2))
	require.NoError(t, err)
	assert.JSONEq(t, `{"X":[0,1],"Y":[0,10],"Z":[0,100]}`, string(data))

	var v Vec3Vec
	require.NoError(t, json.Unmarshal(data, &v))
	assert.True(t, v.Equal(points(2)))

	err = json.Unmarshal([]byte(`{"X":[0,1],"Y":[0],"Z":[0,100]}`), &v)
	assert.Error(t, err)
}
