package polygon

import (
	"testing"

	"github.com/geopath/geopath/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolygon_CompleteDelaunayEdge(t *testing.T) {
	p := square()

	a := p.Point(0)
	b := p.Point(2)

	left, right, err := p.CompleteDelaunayEdge(a, b)
	require.NoError(t, err)
	// (0,0)-(4,4) is a diagonal of the square, so it borders two triangles.
	assert.NotNil(t, left)
	assert.NotNil(t, right)
}

func TestPolygon_CompleteDelaunayEdge_boundaryEdge(t *testing.T) {
	p := square()

	a := p.Point(0)
	b := p.Point(1)

	left, right, err := p.CompleteDelaunayEdge(a, b)
	require.NoError(t, err)
	// A polygon boundary edge borders only one triangle.
	assert.True(t, (left == nil) != (right == nil), "exactly one side should be filled in")
}

func TestPolygon_CompleteDelaunayEdge_withCache(t *testing.T) {
	p := square()
	cache := NewDiagonalCache(0)

	a := p.Point(0)
	b := p.Point(2)

	left1, right1, err := p.CompleteDelaunayEdge(a, b, cache)
	require.NoError(t, err)

	left2, right2, ok := cache.get(a, b)
	require.True(t, ok, "the completion should have been cached")
	assert.Equal(t, left1, left2)
	assert.Equal(t, right1, right2)

	left3, right3, err := p.CompleteDelaunayEdge(a, b, cache)
	require.NoError(t, err)
	assert.Equal(t, left1, left3)
	assert.Equal(t, right1, right3)
}

func TestPolygon_DelaunayFirstNextNeighbour(t *testing.T) {
	p := square()

	tri, ok, err := p.LocatePointInTriangle(point.New(1, 1))
	require.NoError(t, err)
	require.True(t, ok)

	neighbour, ok, err := p.DelaunayFirstNeighbour(tri)
	require.NoError(t, err)
	require.True(t, ok, "the square's two triangles neighbour each other")

	assert.False(t, tri.Eq(neighbour))
}

func TestPolygon_LocatePointInTriangle(t *testing.T) {
	p := square()

	tri, ok, err := p.LocatePointInTriangle(point.New(1, 1))
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, tri.ContainsPoint(point.New(1, 1)))

	_, ok, err = p.LocatePointInTriangle(point.New(10, 10))
	require.NoError(t, err)
	assert.False(t, ok, "a point outside the polygon has no containing triangle")
}

func TestPolygon_DelaunayNeighbourNumber(t *testing.T) {
	p := square()

	tri, ok, err := p.LocatePointInTriangle(point.New(1, 1))
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, 1, p.DelaunayNeighbourNumber(tri), "each of the square's two triangles has exactly one neighbour")
}
