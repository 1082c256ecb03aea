package funnel

import (
	"github.com/geopath/geopath"
	"github.com/geopath/geopath/point"
	"github.com/geopath/geopath/segment"
)

// BoundedFunnel is a [Funnel] additionally bounded by a directed boundary
// segment from boundaryA to boundaryB. It is used whenever an algorithm needs
// to know not just the funnel's angular extent but also how far along the
// funnel's rays a boundary (typically a diagonal being crossed) lies.
//
// Unlike a plain Funnel, a BoundedFunnel must be convex: its cusp, first, and
// second points may never form a concave wedge, since "bounded" only makes
// sense when the two rays diverge.
type BoundedFunnel struct {
	Funnel

	boundaryA, boundaryB point.Point
	boundary             segment.Line

	firstVertex, secondVertex *point.Point
}

// NewBounded creates a new bounded funnel anchored at cusp with boundary
// points first and second, bounded by the directed segment (boundaryA,
// boundaryB).
//
// Returns a [geopath.BoundedFunnelConcaveError] if cusp/first/second would
// form a concave funnel, or a [geopath.DegeneratedCaseError] if the boundary
// segment is not oriented counterclockwise with respect to the cusp.
func NewBounded(cusp, first, second, boundaryA, boundaryB point.Point) (*BoundedFunnel, error) {
	base := New(cusp, first, second)
	if base.kind == concave {
		return nil, &geopath.BoundedFunnelConcaveError{Cusp: cusp, First: first, Second: second}
	}

	if point.Turn(boundaryA, boundaryB, cusp) == point.Clockwise {
		return nil, &geopath.DegeneratedCaseError{
			Reason: "bounded funnel's boundary segment must be oriented counterclockwise with respect to the cusp",
		}
	}

	return &BoundedFunnel{
		Funnel:    *base,
		boundaryA: boundaryA,
		boundaryB: boundaryB,
		boundary:  segment.NewLine(boundaryA, boundaryB),
	}, nil
}

// BoundaryA returns the first point of the funnel's bounding segment.
func (f *BoundedFunnel) BoundaryA() point.Point { return f.boundaryA }

// BoundaryB returns the second point of the funnel's bounding segment.
func (f *BoundedFunnel) BoundaryB() point.Point { return f.boundaryB }

// SetFirst moves the funnel's first boundary point, invalidating the cached
// first-ray/boundary intersection.
func (f *BoundedFunnel) SetFirst(p point.Point) {
	f.Funnel.SetFirst(p)
	f.firstVertex = nil
}

// SetSecond moves the funnel's second boundary point, invalidating the
// cached second-ray/boundary intersection.
func (f *BoundedFunnel) SetSecond(p point.Point) {
	f.Funnel.SetSecond(p)
	f.secondVertex = nil
}

// FirstVertex returns the point where the funnel's first ray crosses the
// bounding segment.
func (f *BoundedFunnel) FirstVertex() (point.Point, bool) {
	if f.firstVertex == nil {
		r := f.FirstRay()
		p, ok := r.IntersectionPoint(f.boundary.A, f.boundary.B)
		if !ok {
			return point.Point{}, false
		}
		f.firstVertex = &p
	}
	return *f.firstVertex, true
}

// SecondVertex returns the point where the funnel's second ray crosses the
// bounding segment.
func (f *BoundedFunnel) SecondVertex() (point.Point, bool) {
	if f.secondVertex == nil {
		r := f.SecondRay()
		p, ok := r.IntersectionPoint(f.boundary.A, f.boundary.B)
		if !ok {
			return point.Point{}, false
		}
		f.secondVertex = &p
	}
	return *f.secondVertex, true
}

// ContainsPoint reports whether p lies within the funnel and does not lie
// beyond the bounding segment.
func (f *BoundedFunnel) ContainsPoint(p point.Point) bool {
	return f.Funnel.ContainsPoint(p) && point.Turn(f.boundaryA, f.boundaryB, p) != point.Clockwise
}

// ContainsSegment reports whether both endpoints of the directed segment
// (a, b) are contained by the bounded funnel.
func (f *BoundedFunnel) ContainsSegment(a, b point.Point) bool {
	return f.ContainsPoint(a) && f.ContainsPoint(b)
}

// ProperlyContainsPoint reports whether p lies strictly within the funnel
// and strictly before the bounding segment.
func (f *BoundedFunnel) ProperlyContainsPoint(p point.Point) bool {
	return f.Funnel.ProperlyContainsPoint(p) && point.Turn(f.boundaryA, f.boundaryB, p) == point.Counterclockwise
}

// ProperlyContainsSegment reports whether both endpoints of the directed
// segment (a, b) lie strictly within the bounded funnel.
func (f *BoundedFunnel) ProperlyContainsSegment(a, b point.Point) bool {
	return f.ProperlyContainsPoint(a) && f.ProperlyContainsPoint(b)
}

// Intersects reports whether the directed segment (a, b) crosses the
// funnel's boundary: exactly one of its endpoints is contained.
func (f *BoundedFunnel) Intersects(a, b point.Point) bool {
	return (f.ContainsPoint(a) && !f.ContainsPoint(b)) || (f.ContainsPoint(b) && !f.ContainsPoint(a))
}

// ProperlyIntersects reports whether the directed segment (a, b) crosses the
// funnel's boundary with at least the interior endpoint strictly inside.
func (f *BoundedFunnel) ProperlyIntersects(a, b point.Point) bool {
	return (f.ProperlyContainsPoint(a) && !f.ContainsPoint(b)) || (f.ProperlyContainsPoint(b) && !f.ContainsPoint(a))
}

// IsDividedBy reports whether the directed segment (a, b) crosses both of
// the funnel's vertex points (the rays' intersections with the boundary)
// without lying entirely on the boundary line itself.
func (f *BoundedFunnel) IsDividedBy(a, b point.Point) bool {
	firstVertex, ok1 := f.FirstVertex()
	secondVertex, ok2 := f.SecondVertex()
	if !ok1 || !ok2 {
		return false
	}

	turnA := point.Turn(firstVertex, secondVertex, a)
	turnB := point.Turn(firstVertex, secondVertex, b)
	if turnA == point.Collinear && turnB == point.Collinear {
		return false
	}

	firstRay, secondRay := f.FirstRay(), f.SecondRay()
	return rayIntersects(firstRay, a, b) && rayIntersects(secondRay, a, b) &&
		turnA != point.Clockwise && turnB != point.Clockwise
}

// IsProperlyDividedBy reports whether the directed segment (a, b) properly
// crosses both funnel rays and leaves both vertex points on the same side.
func (f *BoundedFunnel) IsProperlyDividedBy(a, b point.Point) bool {
	firstRay, secondRay := f.FirstRay(), f.SecondRay()
	if !(firstRay.ProperlyIntersects(a, b) && secondRay.ProperlyIntersects(a, b)) {
		return false
	}

	oa, ob := a, b
	if point.Turn(f.cusp, oa, ob) == point.Clockwise {
		oa, ob = ob, oa
	}

	firstVertex, ok1 := f.FirstVertex()
	secondVertex, ok2 := f.SecondVertex()
	if !ok1 || !ok2 {
		return false
	}

	return point.Turn(oa, ob, firstVertex) == point.Clockwise &&
		point.Turn(oa, ob, secondVertex) == point.Clockwise
}

// IsHalfProperlyDividedBy reports whether the directed segment (a, b)
// properly crosses at least one of the funnel's boundary rays and crosses or
// touches the other (a segment that properly crosses both also counts), and
// does not run along the bounding segment itself.
func (f *BoundedFunnel) IsHalfProperlyDividedBy(a, b point.Point) bool {
	if point.Turn(a, b, f.boundaryA) == point.Collinear && point.Turn(a, b, f.boundaryB) == point.Collinear {
		return false
	}

	oa, ob := a, b
	if point.Turn(f.cusp, oa, ob) == point.Clockwise {
		oa, ob = ob, oa
	}

	firstVertex, ok1 := f.FirstVertex()
	secondVertex, ok2 := f.SecondVertex()
	if !ok1 || !ok2 {
		return false
	}

	turnA := point.Turn(oa, ob, firstVertex)
	turnB := point.Turn(oa, ob, secondVertex)

	if turnA == point.Counterclockwise || turnB == point.Counterclockwise ||
		(turnA == point.Collinear && turnB == point.Collinear) {
		return false
	}

	firstRay, secondRay := f.FirstRay(), f.SecondRay()
	return (firstRay.ProperlyIntersects(a, b) && rayIntersects(secondRay, a, b)) ||
		(rayIntersects(firstRay, a, b) && secondRay.ProperlyIntersects(a, b))
}

// Behind is the [Position] reported for a point that lies within the plain
// funnel but beyond its bounding segment.
const Behind Position = 3

// PositionOf reports where p lies relative to the bounded funnel: [Inside],
// [LeftOf], [RightOf], [Opposite], or [Behind] the bounding segment.
func (f *BoundedFunnel) PositionOf(p point.Point) Position {
	firstTurn := point.Turn(f.cusp, f.first, p)
	secondTurn := point.Turn(f.cusp, f.second, p)
	boundaryTurn := point.Turn(f.boundaryA, f.boundaryB, p)

	if firstTurn != point.Clockwise && secondTurn != point.Counterclockwise {
		if boundaryTurn != point.Clockwise {
			return Inside
		}
		return Behind
	}

	if firstTurn != point.Counterclockwise && secondTurn != point.Clockwise {
		return Opposite
	}

	return Position(turnSign(firstTurn))
}
