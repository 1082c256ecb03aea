package polygon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrapezoid_Eq(t *testing.T) {
	a := Trapezoid{XLeft: 0, XRight: 1, YLeft1: 1, YRight1: 1, YLeft2: 0, YRight2: 0}
	b := Trapezoid{XLeft: 0, XRight: 1, YLeft1: 1, YRight1: 1, YLeft2: 0, YRight2: 0}
	c := Trapezoid{XLeft: 0, XRight: 2, YLeft1: 1, YRight1: 1, YLeft2: 0, YRight2: 0}

	assert.True(t, a.Eq(b))
	assert.False(t, a.Eq(c))
}

func TestTrapezoid_Intersection(t *testing.T) {
	p := square()

	left := Trapezoid{
		XLeft: 0, XRight: 2,
		YLeft1: 4, YRight1: 4,
		YLeft2: 0, YRight2: 0,
		TopEdgeIndex: 2, BotEdgeIndex: 0,
	}
	right := Trapezoid{
		XLeft: 2, XRight: 4,
		YLeft1: 4, YRight1: 4,
		YLeft2: 0, YRight2: 0,
		TopEdgeIndex: 2, BotEdgeIndex: 0,
	}

	edge, ok := left.Intersection(right, p)
	require.True(t, ok, "left.XRight == right.XLeft, so the trapezoids are horizontally adjacent")
	assert.Equal(t, 2.0, edge.A.X())
	assert.Equal(t, 2.0, edge.B.X())

	_, ok = left.Intersection(Trapezoid{XLeft: 10, XRight: 20}, p)
	assert.False(t, ok, "trapezoids that do not share a vertical boundary do not intersect")
}

func TestTrapezoid_IntersectionPoints_preservesEdgeTag(t *testing.T) {
	left := Trapezoid{
		XLeft: 0, XRight: 2,
		YLeft1: 4, YRight1: 4,
		YLeft2: 0, YRight2: 0,
		TopEdgeIndex: 2, BotEdgeIndex: 0,
	}
	right := Trapezoid{
		XLeft: 2, XRight: 4,
		YLeft1: 4, YRight1: 4,
		YLeft2: 0, YRight2: 0,
		TopEdgeIndex: 2, BotEdgeIndex: 0,
	}

	first, second, ok := left.IntersectionPoints(right, nil)
	require.True(t, ok)
	require.NotNil(t, first.Edge)
	assert.Equal(t, 2, *first.Edge)
	require.NotNil(t, second.Edge)
	assert.Equal(t, 0, *second.Edge)
}
