package segment

import (
	"github.com/geopath/geopath/point"
)

// Line represents an infinite straight line through two distinct points, A and B.
// Unlike [LineSegment], a Line preserves the order of its defining points: A and B
// are never reordered into a canonical form. This matters for callers (such as the
// polygon package) that need to know which side of the line is "left" or "right" of
// the direction A->B.
type Line struct {
	A, B point.Point
}

// NewLine creates a directed [Line] through points a and b.
//
// Panics if a and b are identical, since no unique line passes through a single point.
func NewLine(a, b point.Point) Line {
	if a.Eq(b) {
		panic("segment: cannot construct a Line through two identical points")
	}
	return Line{A: a, B: b}
}

// Y returns the y-coordinate of the line at the given x-coordinate.
//
// Panics if the line is vertical (A.X() == B.X()), mirroring the original
// implementation's assumption that trapezoidation queries never hit a vertical
// polygon edge in general position.
func (l Line) Y(x float64) float64 {
	dx := l.B.X() - l.A.X()
	if dx == 0 {
		panic("segment: Line.Y is undefined for a vertical line")
	}
	t := (x - l.A.X()) / dx
	return l.A.Y() + t*(l.B.Y()-l.A.Y())
}

// Ray represents a half-infinite ray starting at Origin and passing through Through.
type Ray struct {
	Origin  point.Point
	Through point.Point
}

// NewRay creates a [Ray] starting at origin and passing through through.
func NewRay(origin, through point.Point) Ray {
	return Ray{Origin: origin, Through: through}
}

// ProperlyIntersects reports whether the ray properly crosses the directed edge (a, b):
// the edge's endpoints strictly straddle the ray's supporting line, and the ray's
// origin/through-point direction strictly straddles the edge's supporting line, with
// the crossing point lying at a non-negative parameter along the ray.
func (r Ray) ProperlyIntersects(a, b point.Point) bool {
	t1 := point.Turn(r.Origin, r.Through, a)
	t2 := point.Turn(r.Origin, r.Through, b)
	if t1 == point.Collinear || t2 == point.Collinear || t1 == t2 {
		return false
	}
	// Confirm the crossing lies ahead of the ray's origin, not behind it.
	p, ok := intersectLines(r.Origin, r.Through, a, b)
	if !ok {
		return false
	}
	dirX, dirY := r.Through.X()-r.Origin.X(), r.Through.Y()-r.Origin.Y()
	return (p.X()-r.Origin.X())*dirX+(p.Y()-r.Origin.Y())*dirY >= 0
}

// IntersectionPoint returns the point at which the ray crosses the (infinite
// extension of the) line through a and b.
func (r Ray) IntersectionPoint(a, b point.Point) (point.Point, bool) {
	return intersectLines(r.Origin, r.Through, a, b)
}

// ProperlyIntersects reports whether the directed segment (a1, a2) properly crosses
// the directed segment (b1, b2): each segment's endpoints lie on strictly opposite
// sides of the other, so the segments cross at a single interior point of both.
//
// This is the directed counterpart of [LineSegment.Intersects]: it operates on raw,
// order-preserving point pairs rather than the canonicalised upper/lower form, which
// the polygon visibility and Delaunay-completion algorithms depend on.
func ProperlyIntersects(a1, a2, b1, b2 point.Point) bool {
	t1 := point.Turn(a1, a2, b1)
	t2 := point.Turn(a1, a2, b2)
	t3 := point.Turn(b1, b2, a1)
	t4 := point.Turn(b1, b2, a2)

	return t1 != point.Collinear && t2 != point.Collinear && t1 != t2 &&
		t3 != point.Collinear && t4 != point.Collinear && t3 != t4
}

// IntersectionPoint computes the intersection point of the infinite line
// through (a1,a2) with the infinite line through (b1,b2), following the same
// parametric-form derivation as [LineSegment.IntersectionPoints], but without
// canonicalising point order first. It does not check that the point lies on
// either segment.
func IntersectionPoint(a1, a2, b1, b2 point.Point) (point.Point, bool) {
	return intersectLines(a1, a2, b1, b2)
}

// intersectLines solves for the intersection of the (infinite) lines through (a1,a2)
// and (b1,b2) using Cramer's rule on the parametric line equations, returning false
// for parallel (including collinear) lines.
func intersectLines(a1, a2, b1, b2 point.Point) (point.Point, bool) {
	dir1 := a2.Sub(a1)
	dir2 := b2.Sub(b1)

	denom := dir1.CrossProduct(dir2)
	if denom == 0 {
		return point.Point{}, false
	}

	diff := b1.Sub(a1)
	t := diff.CrossProduct(dir2) / denom

	return point.New(a1.X()+t*dir1.X(), a1.Y()+t*dir1.Y()), true
}
