package polygon

import "github.com/geopath/geopath/point"

func pointAt(x, y float64) point.Point {
	return point.New(x, y)
}

// Trapezoid is one cell of a polygon's trapezoidal decomposition: the region
// swept between a vertical line at xLeft and one at xRight, bounded above by
// the segment from (xLeft, yLeft1) to (xRight, yRight1) and below by the
// segment from (xLeft, yLeft2) to (xRight, yRight2).
//
// TopEdgeIndex/BotEdgeIndex name the polygon edges that produced the
// trapezoid's top/bottom boundary. The four *IndexLeft/*IndexRight fields
// name the polygon vertex, if any, that produced the corresponding corner —
// nil when that corner was instead cut by a neighbouring vertex's vertical
// extension rather than landing exactly on a polygon vertex.
type Trapezoid struct {
	XLeft, XRight                 float64
	YLeft1, YRight1               float64
	YLeft2, YRight2               float64
	TopEdgeIndex, BotEdgeIndex    int
	TopLeftIndex, BotLeftIndex    *int
	TopRightIndex, BotRightIndex  *int
}

// IsTriangle reports whether the trapezoid has degenerated into a triangle,
// i.e. one of its vertical sides has zero height.
func (t Trapezoid) IsTriangle() bool {
	return t.YLeft1 == t.YLeft2 || t.YRight1 == t.YRight2
}

// IsRightOf reports whether t lies to the right of other in the polygon's
// edge order, i.e. walking from other to t moves to the right.
func (t Trapezoid) IsRightOf(other Trapezoid) bool {
	if other.TopEdgeIndex > other.BotEdgeIndex {
		return other.TopEdgeIndex >= t.TopEdgeIndex && t.TopEdgeIndex >= other.BotEdgeIndex &&
			other.TopEdgeIndex >= t.BotEdgeIndex && t.BotEdgeIndex >= other.BotEdgeIndex
	}
	return !((other.TopEdgeIndex < t.TopEdgeIndex && t.TopEdgeIndex < other.BotEdgeIndex) ||
		(other.TopEdgeIndex < t.BotEdgeIndex && t.BotEdgeIndex < other.BotEdgeIndex))
}

// IsLeftOf reports whether t lies to the left of other in the polygon's edge
// order, i.e. walking from other to t moves to the left.
func (t Trapezoid) IsLeftOf(other Trapezoid) bool {
	if other.TopEdgeIndex < other.BotEdgeIndex {
		return other.TopEdgeIndex <= t.TopEdgeIndex && t.TopEdgeIndex <= other.BotEdgeIndex &&
			other.TopEdgeIndex <= t.BotEdgeIndex && t.BotEdgeIndex <= other.BotEdgeIndex
	}
	return !((other.TopEdgeIndex > t.TopEdgeIndex && t.TopEdgeIndex > other.BotEdgeIndex) ||
		(other.TopEdgeIndex > t.BotEdgeIndex && t.BotEdgeIndex > other.BotEdgeIndex))
}

// Eq reports whether t and other occupy the same region of the plane.
func (t Trapezoid) Eq(other Trapezoid) bool {
	return t.XLeft == other.XLeft && t.XRight == other.XRight &&
		t.YLeft1 == other.YLeft1 && t.YLeft2 == other.YLeft2 &&
		t.YRight1 == other.YRight1 && t.YRight2 == other.YRight2
}

// Intersection returns the shared vertical boundary edge between t and
// other, and true, if the two trapezoids are horizontally adjacent. It
// returns the zero Edge and false otherwise.
func (t Trapezoid) Intersection(other Trapezoid, p *Polygon) (Edge, bool) {
	first, second, ok := t.IntersectionPoints(other, p)
	if !ok {
		return Edge{}, false
	}
	return NewEdge(first.Vertex, second.Vertex), true
}

// IntersectionPoints is like Intersection, but returns the two boundary
// points untruncated: each one keeps track of the polygon edge it was cut
// from even when it does not coincide with a polygon vertex. Callers that
// need to know which edge a non-vertex boundary point lies on (to walk to
// that edge's endpoints) use this instead of Intersection.
func (t Trapezoid) IntersectionPoints(other Trapezoid, p *Polygon) (first, second IntersectionPoint, ok bool) {
	if t.XRight == other.XLeft {
		first, second = buildIntersectionPoints(t, other, t.XRight)
		return first, second, true
	}
	if t.XLeft == other.XRight {
		first, second = buildIntersectionPoints(other, t, t.XLeft)
		return first, second, true
	}
	return IntersectionPoint{}, IntersectionPoint{}, false
}

// buildIntersectionPoints constructs the shared boundary between left (whose
// XRight == x) and right (whose XLeft == x).
func buildIntersectionPoints(left, right Trapezoid, x float64) (first, second IntersectionPoint) {
	var firstEdge *int
	var firstIndex *int
	if right.YLeft1 < left.YRight1 {
		firstIndex = right.TopLeftIndex
		if firstIndex == nil {
			e := right.TopEdgeIndex
			firstEdge = &e
		}
	} else {
		firstIndex = left.TopRightIndex
		if firstIndex == nil {
			e := left.TopEdgeIndex
			firstEdge = &e
		}
	}

	var secondEdge *int
	var secondIndex *int
	if right.YLeft2 > left.YRight2 {
		secondIndex = right.BotLeftIndex
		if secondIndex == nil {
			e := right.BotEdgeIndex
			secondEdge = &e
		}
	} else {
		secondIndex = left.BotRightIndex
		if secondIndex == nil {
			e := left.BotEdgeIndex
			secondEdge = &e
		}
	}

	first = NewIntersectionPoint(pointAt(x, min(left.YRight1, right.YLeft1)), firstIndex, firstEdge)
	second = NewIntersectionPoint(pointAt(x, max(left.YRight2, right.YLeft2)), secondIndex, secondEdge)
	return first, second
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
