package bvh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boxPoints(min, max mgl64.Vec3) []mgl64.Vec3 {
	return []mgl64.Vec3{min, max}
}

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := New[int](0, 0.01, 4, 7)
	assert.ErrorIs(t, err, ErrBadAxis)

	_, err = New[int](0, 0.01, 1, 8)
	assert.ErrorIs(t, err, ErrBadTreeType)
}

func TestInsertAfterBalanceFails(t *testing.T) {
	tree, err := New[int](2, 0.01, 4, 8)
	require.NoError(t, err)
	_, err = tree.Insert(0, boxPoints(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}))
	require.NoError(t, err)
	require.NoError(t, tree.Balance())

	_, err = tree.Insert(1, boxPoints(mgl64.Vec3{2, 2, 2}, mgl64.Vec3{3, 3, 3}))
	assert.ErrorIs(t, err, ErrAlreadyBalanced)
}

// buildGrid inserts n^3 unit-cube leaves on an integer grid, one per
// position, tagged with their linear index.
func buildGrid(t *testing.T, n int) *Tree[int] {
	t.Helper()
	tree, err := New[int](n*n*n, 0.001, 4, 8)
	require.NoError(t, err)
	idx := 0
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				min := mgl64.Vec3{float64(x), float64(y), float64(z)}
				max := min.Add(mgl64.Vec3{1, 1, 1})
				_, err := tree.Insert(idx, boxPoints(min, max))
				require.NoError(t, err)
				idx++
			}
		}
	}
	require.NoError(t, tree.Balance())
	return tree
}

func TestRayCastHitsNearestCell(t *testing.T) {
	tree := buildGrid(t, 4)

	origin := mgl64.Vec3{0.5, 0.5, -10}
	dir := mgl64.Vec3{0, 0, 1}
	hit, ok := tree.RayCast(origin, dir, 0.0, 1000.0, func(o, d mgl64.Vec3, payload int) (bool, float64) {
		// Each leaf occupies [x,x+1]x[y,y+1]x[z,z+1]; a ray straight
		// along +z through (0.5, 0.5, *) hits every z-layer cell whose
		// x/y bounds contain 0.5, i.e. cell index pattern "x=0,y=0".
		x := payload / 16
		y := (payload / 4) % 4
		if x != 0 || y != 0 {
			return false, 0
		}
		z := payload % 4
		return true, 10 + float64(z)
	})
	require.True(t, ok)
	assert.InDelta(t, 10.0, hit.T, 1e-9)
	assert.Equal(t, 0, hit.Payload)
}

func TestRayCastMissReturnsFalse(t *testing.T) {
	tree := buildGrid(t, 2)
	origin := mgl64.Vec3{100, 100, 100}
	dir := mgl64.Vec3{1, 0, 0}
	_, ok := tree.RayCast(origin, dir, 0.0, 1000.0, func(o, d mgl64.Vec3, payload int) (bool, float64) {
		return false, 0
	})
	assert.False(t, ok)
}

func TestOverlapSelfSymmetric(t *testing.T) {
	tree, err := New[int](3, 0.5, 4, 8)
	require.NoError(t, err)
	_, _ = tree.Insert(0, boxPoints(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}))
	_, _ = tree.Insert(1, boxPoints(mgl64.Vec3{0.5, 0.5, 0.5}, mgl64.Vec3{1.5, 1.5, 1.5}))
	_, _ = tree.Insert(2, boxPoints(mgl64.Vec3{10, 10, 10}, mgl64.Vec3{11, 11, 11}))
	require.NoError(t, tree.Balance())

	pairs := tree.Overlap(tree, nil)
	seen := map[[2]int]bool{}
	for _, p := range pairs {
		seen[[2]int{p.A, p.B}] = true
	}
	assert.True(t, seen[[2]int{0, 1}])
	assert.True(t, seen[[2]int{1, 0}])
	assert.False(t, seen[[2]int{2, 0}])
	assert.False(t, seen[[2]int{0, 2}])
}

func TestOverlapFilter(t *testing.T) {
	tree, err := New[int](2, 0.5, 4, 8)
	require.NoError(t, err)
	_, _ = tree.Insert(10, boxPoints(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}))
	_, _ = tree.Insert(20, boxPoints(mgl64.Vec3{0.5, 0.5, 0.5}, mgl64.Vec3{1.5, 1.5, 1.5}))
	require.NoError(t, tree.Balance())

	pairs := tree.Overlap(tree, func(a, b int) bool { return false })
	assert.Empty(t, pairs)
}

func TestUpdateNodeValidation(t *testing.T) {
	tree, err := New[int](1, 0.01, 4, 8)
	require.NoError(t, err)
	_, err = tree.Insert(0, boxPoints(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}))
	require.NoError(t, err)
	require.NoError(t, tree.Balance())

	err = tree.UpdateNode(5, boxPoints(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}), nil)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	err = tree.UpdateNode(0, []mgl64.Vec3{{0, 0, 0}}, nil)
	assert.ErrorIs(t, err, ErrDifferentNumPoints)

	err = tree.UpdateNode(0, boxPoints(mgl64.Vec3{5, 5, 5}, mgl64.Vec3{6, 6, 6}), nil)
	assert.NoError(t, err)
	assert.NoError(t, tree.UpdateTree())

	hit, ok := tree.RayCast(mgl64.Vec3{5.5, 5.5, -10}, mgl64.Vec3{0, 0, 1}, 0, 1000, func(o, d mgl64.Vec3, payload int) (bool, float64) {
		return true, 10
	})
	require.True(t, ok)
	assert.Equal(t, 0, hit.Payload)
}

func TestEmptyTreeBalancesAndMissesEverything(t *testing.T) {
	tree, err := New[int](0, 0.01, 4, 8)
	require.NoError(t, err)
	require.NoError(t, tree.Balance())
	_, ok := tree.RayCast(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, 0, 1000, func(o, d mgl64.Vec3, payload int) (bool, float64) {
		return true, 1
	})
	assert.False(t, ok)
}
