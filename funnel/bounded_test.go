package funnel

import (
	"testing"

	"github.com/geopath/geopath"
	"github.com/geopath/geopath/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A convex bounded funnel anchored at the origin, opening between the
// positive x-axis (first) and the positive y-axis (second), bounded by the
// line x+y=3 oriented counterclockwise with respect to the cusp.
func boundedFunnel(t *testing.T) *BoundedFunnel {
	t.Helper()
	f, err := NewBounded(point.New(0, 0), point.New(1, 0), point.New(0, 1), point.New(2, 1), point.New(1, 2))
	require.NoError(t, err)
	return f
}

func TestNewBounded_concaveRejected(t *testing.T) {
	_, err := NewBounded(point.New(0, 0), point.New(0, 1), point.New(1, 0), point.New(2, 1), point.New(1, 2))
	assert.Error(t, err)
	assert.IsType(t, &geopath.BoundedFunnelConcaveError{}, err)
}

func TestNewBounded_clockwiseBoundaryRejected(t *testing.T) {
	_, err := NewBounded(point.New(0, 0), point.New(1, 0), point.New(0, 1), point.New(1, 2), point.New(2, 1))
	assert.Error(t, err)
	assert.IsType(t, &geopath.DegeneratedCaseError{}, err)
}

func TestBoundedFunnel_BoundaryAB(t *testing.T) {
	f := boundedFunnel(t)

	assert.True(t, f.BoundaryA().Eq(point.New(2, 1)))
	assert.True(t, f.BoundaryB().Eq(point.New(1, 2)))
}

func TestBoundedFunnel_FirstSecondVertex(t *testing.T) {
	f := boundedFunnel(t)

	first, ok := f.FirstVertex()
	require.True(t, ok)
	assert.True(t, first.Eq(point.New(3, 0)), "first ray crosses x+y=3 at (3,0)")

	second, ok := f.SecondVertex()
	require.True(t, ok)
	assert.True(t, second.Eq(point.New(0, 3)), "second ray crosses x+y=3 at (0,3)")
}

func TestBoundedFunnel_SetFirstSetSecondInvalidatesVertex(t *testing.T) {
	f := boundedFunnel(t)

	_, ok := f.FirstVertex()
	require.True(t, ok)

	f.SetFirst(point.New(2, 0))
	first, ok := f.FirstVertex()
	require.True(t, ok)
	assert.True(t, first.Eq(point.New(3, 0)), "recomputed vertex is unchanged since the ray direction is the same")
}

func TestBoundedFunnel_ContainsPoint(t *testing.T) {
	f := boundedFunnel(t)

	assert.True(t, f.ContainsPoint(point.New(1, 1)), "inside the wedge and before the boundary")
	assert.False(t, f.ContainsPoint(point.New(2, 2)), "inside the wedge but beyond the boundary")
	assert.False(t, f.ContainsPoint(point.New(-1, -1)), "opposite the wedge entirely")
}

func TestBoundedFunnel_ProperlyContainsPoint(t *testing.T) {
	f := boundedFunnel(t)

	assert.True(t, f.ProperlyContainsPoint(point.New(1, 1)))
	assert.False(t, f.ProperlyContainsPoint(point.New(3, 0)), "lies on the first boundary ray, not strictly inside")
}

func TestBoundedFunnel_ContainsSegment(t *testing.T) {
	f := boundedFunnel(t)

	assert.True(t, f.ContainsSegment(point.New(1, 1), point.New(0.5, 0.5)))
	assert.False(t, f.ContainsSegment(point.New(1, 1), point.New(2, 2)), "one endpoint lies beyond the boundary")
}

func TestBoundedFunnel_IntersectsProperlyIntersects(t *testing.T) {
	f := boundedFunnel(t)

	assert.True(t, f.Intersects(point.New(1, 1), point.New(2, 2)))
	assert.False(t, f.Intersects(point.New(1, 1), point.New(0.5, 0.5)), "both endpoints on the same side of the boundary")

	assert.True(t, f.ProperlyIntersects(point.New(1, 1), point.New(2, 2)))
}

func TestBoundedFunnel_PositionOf(t *testing.T) {
	f := boundedFunnel(t)

	assert.Equal(t, Inside, f.PositionOf(point.New(1, 1)))
	assert.Equal(t, Behind, f.PositionOf(point.New(2, 2)), "inside the wedge, beyond the boundary")
	assert.Equal(t, Opposite, f.PositionOf(point.New(-1, -1)))
	assert.Equal(t, RightOf, f.PositionOf(point.New(1, -1)))
	assert.Equal(t, LeftOf, f.PositionOf(point.New(-1, 1)))
}

func TestBoundedFunnel_IsDividedBy(t *testing.T) {
	f := boundedFunnel(t)

	// Crosses straight through the wedge's interior, between the cusp and the boundary.
	assert.True(t, f.IsDividedBy(point.New(2, -1), point.New(-1, 2)))
	assert.False(t, f.IsDividedBy(point.New(5, 5), point.New(6, 6)), "never crosses either ray")
}

func TestBoundedFunnel_IsProperlyDividedBy(t *testing.T) {
	f := boundedFunnel(t)

	assert.True(t, f.IsProperlyDividedBy(point.New(2, -1), point.New(-1, 2)))
	assert.False(t, f.IsProperlyDividedBy(point.New(5, 5), point.New(6, 6)))
}
