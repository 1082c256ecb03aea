// Package funnel implements the funnel, an angular region of the plane
// anchored at a cusp point and bounded by two rays through a first and a
// second boundary point.
//
// Funnels are the workhorse data structure shared by geopath's shortest-path
// engines: as an engine sweeps across a triangulated or trapezoidated polygon
// it repeatedly asks "does the funnel anchored here still contain this
// candidate point/edge", shrinking the funnel's first/second boundary as it
// goes.
package funnel

import (
	"github.com/geopath/geopath/point"
	"github.com/geopath/geopath/segment"
)

// position describes the three possible shapes a funnel's two boundary rays
// can form, which changes how containment is evaluated.
type position int8

const (
	neither  position = 0
	convex   position = 1
	concave  position = -1
)

// Position describes where a point lies relative to a [Funnel].
type Position int8

const (
	// Inside means the point lies within (or on the boundary of) the funnel.
	Inside Position = 0
	// LeftOf means the point lies to the left of the funnel's cusp-first ray.
	LeftOf Position = 1
	// RightOf means the point lies to the right of the funnel's cusp-second ray.
	RightOf Position = -1
	// Opposite means the point lies in the wedge directly opposite the funnel.
	Opposite Position = 2
)

// Funnel is an angular region of the plane defined by a cusp and two boundary
// points, first and second. The region swept from the cusp through first to
// second, going counterclockwise, is what the funnel "contains".
//
// The zero value is not useful; construct a Funnel with [New].
type Funnel struct {
	cusp, first, second point.Point

	firstRay, secondRay *segment.Ray
	kind                position
}

// New creates a new funnel anchored at cusp, with boundary points first and
// second.
func New(cusp, first, second point.Point) *Funnel {
	f := &Funnel{cusp: cusp, first: first, second: second}
	f.kind = turnToPosition(point.Turn(cusp, first, second))
	return f
}

func turnToPosition(t point.OrientationType) position {
	switch t {
	case point.Counterclockwise:
		return convex
	case point.Clockwise:
		return concave
	default:
		return neither
	}
}

// Cusp returns the funnel's cusp point.
func (f *Funnel) Cusp() point.Point { return f.cusp }

// First returns the funnel's first boundary point.
func (f *Funnel) First() point.Point { return f.first }

// Second returns the funnel's second boundary point.
func (f *Funnel) Second() point.Point { return f.second }

// SetCusp moves the funnel's cusp, invalidating both cached boundary rays.
func (f *Funnel) SetCusp(p point.Point) {
	f.cusp = p
	f.kind = turnToPosition(point.Turn(f.cusp, f.first, f.second))
	f.firstRay = nil
	f.secondRay = nil
}

// SetFirst moves the funnel's first boundary point, invalidating the cached
// first ray.
func (f *Funnel) SetFirst(p point.Point) {
	f.first = p
	f.firstRay = nil
	f.kind = turnToPosition(point.Turn(f.cusp, f.first, f.second))
}

// SetSecond moves the funnel's second boundary point, invalidating the
// cached second ray.
func (f *Funnel) SetSecond(p point.Point) {
	f.second = p
	f.secondRay = nil
	f.kind = turnToPosition(point.Turn(f.cusp, f.first, f.second))
}

// FirstRay returns the ray from the cusp through the first boundary point.
func (f *Funnel) FirstRay() segment.Ray {
	if f.firstRay == nil {
		r := segment.NewRay(f.cusp, f.first)
		f.firstRay = &r
	}
	return *f.firstRay
}

// SecondRay returns the ray from the cusp through the second boundary point.
func (f *Funnel) SecondRay() segment.Ray {
	if f.secondRay == nil {
		r := segment.NewRay(f.cusp, f.second)
		f.secondRay = &r
	}
	return *f.secondRay
}

// ContainsPoint reports whether p lies within the funnel, boundary included.
func (f *Funnel) ContainsPoint(p point.Point) bool {
	if f.kind == concave {
		return !(point.Turn(f.cusp, f.first, p) == point.Clockwise &&
			point.Turn(f.cusp, f.second, p) == point.Counterclockwise)
	}
	return point.Turn(f.cusp, f.first, p) != point.Clockwise &&
		point.Turn(f.cusp, f.second, p) != point.Counterclockwise
}

// ContainsSegment reports whether the directed segment (a, b) lies entirely
// within the funnel.
//
// For a concave funnel this additionally requires that the segment does not
// properly cross the first ray, mirroring the fact that both of a concave
// funnel's endpoints can lie "inside" while the segment joining them still
// exits through the notch.
func (f *Funnel) ContainsSegment(a, b point.Point) bool {
	if f.kind == concave {
		firstRay := f.FirstRay()
		return f.ContainsPoint(a) && f.ContainsPoint(b) && !firstRay.ProperlyIntersects(a, b)
	}
	return f.ContainsPoint(a) && f.ContainsPoint(b)
}

// ProperlyContainsPoint reports whether p lies strictly within the funnel,
// not touching either boundary ray.
func (f *Funnel) ProperlyContainsPoint(p point.Point) bool {
	if f.kind == concave {
		return !(point.Turn(f.cusp, f.first, p) != point.Counterclockwise &&
			point.Turn(f.cusp, f.second, p) != point.Clockwise)
	}
	return point.Turn(f.cusp, f.first, p) == point.Counterclockwise &&
		point.Turn(f.cusp, f.second, p) == point.Clockwise
}

// ProperlyContainsSegment reports whether the directed segment (a, b) lies
// strictly within the funnel and crosses neither boundary ray.
func (f *Funnel) ProperlyContainsSegment(a, b point.Point) bool {
	firstRay, secondRay := f.FirstRay(), f.SecondRay()
	return f.ProperlyContainsPoint(a) && f.ProperlyContainsPoint(b) &&
		!firstRay.ProperlyIntersects(a, b) && !secondRay.ProperlyIntersects(a, b)
}

// Intersects reports whether either boundary ray crosses the directed
// segment (a, b), including at an endpoint.
func (f *Funnel) Intersects(a, b point.Point) bool {
	firstRay, secondRay := f.FirstRay(), f.SecondRay()
	return rayIntersects(firstRay, a, b) || rayIntersects(secondRay, a, b)
}

// ProperlyIntersects reports whether either boundary ray properly crosses
// the directed segment (a, b).
func (f *Funnel) ProperlyIntersects(a, b point.Point) bool {
	firstRay, secondRay := f.FirstRay(), f.SecondRay()
	return firstRay.ProperlyIntersects(a, b) || secondRay.ProperlyIntersects(a, b)
}

// IsDividedBy reports whether the directed segment (a, b) crosses both
// boundary rays, splitting the funnel into two parts.
func (f *Funnel) IsDividedBy(a, b point.Point) bool {
	firstRay, secondRay := f.FirstRay(), f.SecondRay()
	return rayIntersects(firstRay, a, b) && rayIntersects(secondRay, a, b)
}

// IsProperlyDividedBy reports whether the directed segment (a, b) properly
// crosses both boundary rays.
func (f *Funnel) IsProperlyDividedBy(a, b point.Point) bool {
	firstRay, secondRay := f.FirstRay(), f.SecondRay()
	return firstRay.ProperlyIntersects(a, b) && secondRay.ProperlyIntersects(a, b)
}

// IsHalfProperlyDividedBy reports whether the directed segment (a, b)
// properly crosses at least one boundary ray and crosses or touches the
// other; a segment that properly crosses both rays also counts.
func (f *Funnel) IsHalfProperlyDividedBy(a, b point.Point) bool {
	firstRay, secondRay := f.FirstRay(), f.SecondRay()
	return (firstRay.ProperlyIntersects(a, b) && rayIntersects(secondRay, a, b)) ||
		(rayIntersects(firstRay, a, b) && secondRay.ProperlyIntersects(a, b))
}

// PositionOf reports where p lies relative to the funnel.
//
// A point on the funnel boundary is reported as [Inside]. A concave funnel
// only ever reports [Inside] or [Opposite].
func (f *Funnel) PositionOf(p point.Point) Position {
	if f.kind == concave {
		if f.ContainsPoint(p) {
			return Inside
		}
		return Opposite
	}

	firstTurn := point.Turn(f.cusp, f.first, p)
	secondTurn := point.Turn(f.cusp, f.second, p)

	if firstTurn != point.Clockwise && secondTurn != point.Counterclockwise {
		return Inside
	}
	if firstTurn != point.Counterclockwise && secondTurn != point.Clockwise {
		return Opposite
	}
	return Position(turnSign(firstTurn))
}

func turnSign(t point.OrientationType) int8 {
	switch t {
	case point.Counterclockwise:
		return int8(LeftOf)
	case point.Clockwise:
		return int8(RightOf)
	default:
		return 0
	}
}

// rayIntersects reports whether ray intersects the directed segment (a, b),
// including at an endpoint. This is the non-proper counterpart to
// [segment.Ray.ProperlyIntersects], built the same way [segment.Ray] derives
// its proper test, but treating a collinear touch as an intersection rather
// than a miss.
func rayIntersects(r segment.Ray, a, b point.Point) bool {
	t1 := point.Turn(r.Origin, r.Through, a)
	t2 := point.Turn(r.Origin, r.Through, b)

	// a and b lie strictly on the same side of the ray's line: no crossing.
	if t1 == t2 && t1 != point.Collinear {
		return false
	}

	p, ok := r.IntersectionPoint(a, b)
	if !ok {
		// Parallel (or collinear with) the ray's line and not equal to it.
		return t1 == point.Collinear && t2 == point.Collinear
	}

	dirX, dirY := r.Through.X()-r.Origin.X(), r.Through.Y()-r.Origin.Y()
	return (p.X()-r.Origin.X())*dirX+(p.Y()-r.Origin.Y())*dirY >= 0
}
