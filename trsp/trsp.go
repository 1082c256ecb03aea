// Package trsp computes the geodesic shortest path between two points in a
// simple polygon by walking the polygon's trapezoidal decomposition,
// carrying a funnel across each vertical trapezoid boundary crossed.
//
// Structurally analogous to [dtsp], but navigating the trapezoidation
// rather than a Delaunay dual tree.
package trsp

import (
	"iter"

	"github.com/geopath/geopath/funnel"
	"github.com/geopath/geopath/point"
	"github.com/geopath/geopath/polygon"
	"github.com/geopath/geopath/stats"
)

// ShortestPath returns the geodesic shortest path from s to t inside p as a
// lazy sequence of points, s first and t last, together with a Stats value
// that accumulates as the sequence is consumed.
func ShortestPath(p *polygon.Polygon, s, t point.Point) (iter.Seq[point.Point], *stats.Stats) {
	st := &stats.Stats{}
	seq := func(yield func(point.Point) bool) {
		run(p, s, t, st, yield)
	}
	return seq, st
}

func run(p *polygon.Polygon, s, t point.Point, st *stats.Stats, yield func(point.Point) bool) {
	if s.Eq(t) {
		yield(s)
		return
	}

	originalS, originalT := s, t

	sTrap, ok, err := p.TrapezoidAt(s)
	if err != nil || !ok {
		return
	}
	s = shiftOffBoundary(s, sTrap)
	if !s.Eq(originalS) {
		sTrap, ok, err = p.TrapezoidAt(s)
		if err != nil || !ok {
			return
		}
	}

	tTrap, ok, err := p.TrapezoidAt(t)
	if err != nil || !ok {
		return
	}
	t = shiftOffBoundary(t, tTrap)
	if !t.Eq(originalT) {
		tTrap, ok, err = p.TrapezoidAt(t)
		if err != nil || !ok {
			return
		}
	}

	if sTrap.Eq(tTrap) {
		if !yield(originalS) {
			return
		}
		yield(originalT)
		return
	}

	cusp := s
	var fun *funnel.Funnel
	current := sTrap
	var previous polygon.Trapezoid
	var boundary, previousBoundary polygon.Edge
	haveBoundary, havePreviousBoundary := false, false
	goLeft := false

	for !current.Eq(tTrap) {
		st.AddIteration()

		goLeft = tTrap.IsLeftOf(current)
		side := polygon.NeighbourRight
		if goLeft {
			side = polygon.NeighbourLeft
		}
		neighbours, err := p.NeighbourTrapezoids(current, side)
		if err != nil || len(neighbours) == 0 {
			return
		}

		previous = current
		if len(neighbours) == 1 {
			current = neighbours[0]
		} else if (goLeft && tTrap.IsLeftOf(neighbours[0])) || (!goLeft && tTrap.IsRightOf(neighbours[0])) {
			current = neighbours[0]
		} else {
			current = neighbours[1]
		}

		previousBoundary, havePreviousBoundary = boundary, haveBoundary
		b, ok := current.Intersection(previous, p)
		if !ok {
			return
		}
		boundary = orientBoundary(b, goLeft, cusp)
		haveBoundary = true

		if fun == nil {
			fun = funnel.New(cusp, boundary.A.Point, boundary.B.Point)
			continue
		}

		posA := fun.PositionOf(boundary.A.Point)
		posB := fun.PositionOf(boundary.B.Point)

		bothRightOf := posA == funnel.RightOf && posB == funnel.RightOf
		bothLeftOf := posA == funnel.LeftOf && posB == funnel.LeftOf

		if bothLeftOf || bothRightOf {
			if cusp.Eq(s) {
				if !yield(originalS) {
					return
				}
			} else {
				if !yield(cusp) {
					return
				}
			}

			st.AddJarvisMarch()
			params := prepareJarvisMarch(p, fun, current, bothRightOf, goLeft, &boundary)

			xBound := boundary.A.Point
			if havePreviousBoundary {
				xBound = previousBoundary.A.Point
			}
			goodPosition := funnel.LeftOf
			if bothRightOf {
				goodPosition = funnel.RightOf
			}
			ignore := ignoreFunction(cusp, xBound, fun, goodPosition)

			thisBoundary := boundary
			predicate := func(q point.Point) bool {
				sees, _, _ := p.PointSeesEdge(q, thisBoundary)
				return sees
			}

			found, stop := jarvisMarch(p, st, params, predicate, ignore, yield)
			if stop {
				return
			}

			sees, v1, v2 := p.PointSeesEdge(found.Point, thisBoundary)
			if !sees {
				return
			}

			if v1.Eq(found.Point) {
				switch *found.Index {
				case derefOr(current.TopRightIndex, -1), derefOr(current.BotLeftIndex, -1):
					v1 = p.Point(*found.Index + 1).Point
				case derefOr(current.BotRightIndex, -1), derefOr(current.TopLeftIndex, -1):
					v1 = p.Point(*found.Index - 1).Point
				}
				if point.Turn(found.Point, v1, v2) == point.Clockwise {
					v1, v2 = v2, v1
				}
			}

			cusp = found.Point
			fun.SetCusp(cusp)
			fun.SetFirst(v1)
			fun.SetSecond(v2)
		} else {
			if posA == funnel.Inside {
				fun.SetFirst(boundary.A.Point)
			}
			if posB == funnel.Inside {
				fun.SetSecond(boundary.B.Point)
			}
		}
	}

	if cusp.Eq(s) {
		if !yield(originalS) {
			return
		}
	} else {
		if !yield(cusp) {
			return
		}
	}

	if !p.PointSeesOtherPoint(cusp, t) {
		st.AddJarvisMarch()
		finalGoLeft := previous.IsRightOf(current)
		rightOf := fun.PositionOf(t) == funnel.RightOf
		params := prepareJarvisMarch(p, fun, current, rightOf, finalGoLeft, nil)

		goodPosition := funnel.LeftOf
		if rightOf {
			goodPosition = funnel.RightOf
		}
		ignore := ignoreFunction(cusp, boundary.A.Point, fun, goodPosition)

		predicate := func(q point.Point) bool {
			return p.PointSeesOtherPoint(q, t)
		}

		found, stop := jarvisMarch(p, st, params, predicate, ignore, yield)
		if stop {
			return
		}

		if !yield(found.Point) {
			return
		}
	}

	yield(originalT)
}

func derefOr(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}

// shiftOffBoundary nudges q inward from a vertical trapezoid boundary it sits
// exactly on, by half of 0.00002 or half of the trapezoid's width, whichever
// is smaller, so that locating it does not land
// ambiguously on the shared edge between two trapezoids.
func shiftOffBoundary(q point.Point, trap polygon.Trapezoid) point.Point {
	if q.X() != trap.XLeft && q.X() != trap.XRight {
		return q
	}
	width := trap.XRight - trap.XLeft
	maxShift := 0.00002
	if width < maxShift {
		maxShift = width
	}
	shift := maxShift / 2
	if q.X() == trap.XLeft {
		return point.New(q.X()+shift, q.Y())
	}
	return point.New(q.X()-shift, q.Y())
}

// orientBoundary orients edge so that Turn(cusp, edge.A, edge.B) is not
// clockwise. A trapezoid intersection edge is always built top-to-bottom,
// so the collinear case is disambiguated by which way we are walking.
func orientBoundary(edge polygon.Edge, goLeft bool, cusp point.Point) polygon.Edge {
	switch point.Turn(cusp, edge.A.Point, edge.B.Point) {
	case point.Clockwise:
		return polygon.NewEdge(edge.B, edge.A)
	case point.Collinear:
		if !goLeft {
			return polygon.NewEdge(edge.B, edge.A)
		}
	}
	return edge
}

type jarvisMarchParams struct {
	startIndex, endIndex int
	direction            int
	goodTurn             point.OrientationType
}

// prepareJarvisMarch computes the march's starting parameters from the
// current funnel and which side of it the lost boundary fell on. boundary
// is nil for the final march toward t, which has no trapezoid boundary to
// reference.
func prepareJarvisMarch(p *polygon.Polygon, fun *funnel.Funnel, current polygon.Trapezoid, rightOf, goLeft bool, boundary *polygon.Edge) jarvisMarchParams {
	n := p.Len()
	var params jarvisMarchParams

	if rightOf {
		params.direction = 1
		params.startIndex = firstVertexIndex(p, fun.First())
		params.goodTurn = point.Counterclockwise
		if boundary != nil && boundary.A.Index != nil {
			params.endIndex = *boundary.A.Index
		} else if goLeft {
			params.endIndex = current.TopEdgeIndex
		} else {
			params.endIndex = current.BotEdgeIndex
		}
	} else {
		params.direction = -1
		params.startIndex = firstVertexIndex(p, fun.Second())
		params.goodTurn = point.Clockwise
		if boundary != nil && boundary.B.Index != nil {
			params.endIndex = *boundary.B.Index
		} else if goLeft {
			params.endIndex = mod(current.BotEdgeIndex+1, n)
		} else {
			params.endIndex = mod(current.TopEdgeIndex+1, n)
		}
	}

	return params
}

func firstVertexIndex(p *polygon.Polygon, q point.Point) int {
	for i := 0; i < p.Len(); i++ {
		v := p.Point(i)
		if v.Point.Eq(q) {
			return *v.Index
		}
	}
	panic("trsp: funnel boundary point is not a polygon vertex")
}

func mod(i, n int) int {
	m := i % n
	if m < 0 {
		m += n
	}
	return m
}

// ignoreFunction returns a predicate rejecting candidate vertices whose
// x-coordinate falls outside the span of (reference, bound), or that land
// on the wrong side of the funnel.
func ignoreFunction(reference, bound point.Point, fun *funnel.Funnel, goodPosition funnel.Position) func(point.Point) bool {
	lo, hi := reference.X(), bound.X()
	if lo > hi {
		lo, hi = hi, lo
	}
	return func(q point.Point) bool {
		return q.X() > hi || q.X() < lo || fun.PositionOf(q) != goodPosition
	}
}

// jarvisMarch walks polygon vertices starting at params.startIndex in
// params.direction, stopping once predicate succeeds, yielding each vertex
// visited along the way.
func jarvisMarch(
	p *polygon.Polygon,
	st *stats.Stats,
	params jarvisMarchParams,
	predicate func(point.Point) bool,
	ignore func(point.Point) bool,
	yield func(point.Point) bool,
) (found polygon.Vertex, stop bool) {
	first := p.Point(params.startIndex)
	for {
		st.AddPredicate()
		if predicate(first.Point) {
			return first, false
		}

		second := p.Point(*first.Index + params.direction)

		if *second.Index != params.endIndex {
			for idx := range p.Indices(*second.Index+params.direction, params.endIndex, params.direction) {
				candidate := p.Point(idx)
				st.AddIgnoreTheo()
				if point.Turn(first.Point, second.Point, candidate.Point) == params.goodTurn {
					st.AddIgnore()
					if !ignore(candidate.Point) {
						second = candidate
					}
				}
			}
		}

		if !yield(first.Point) {
			return polygon.Vertex{}, true
		}
		first = second
	}
}
