// Package mssp computes the geodesic shortest path between two points in a
// simple polygon using only O(1) additional working memory beyond the
// current step: instead of building and navigating a trapezoidation,
// Delaunay triangulation, or explicit funnel, it repeatedly advances a
// "make step" triple (cusp, right boundary point, left boundary point)
// toward t, re-deriving each boundary crossing by an O(n) boundary-hit scan.
//
// Asano, Tetsuo, Wolfgang Mulzer, Günter Rote, and Yajun Wang,
// "Constant-Work-Space Algorithms for Geometric Problems", Journal of
// Computational Geometry 2(1), 2011.
package mssp

import (
	"iter"

	"github.com/geopath/geopath/point"
	"github.com/geopath/geopath/polygon"
	"github.com/geopath/geopath/segment"
	"github.com/geopath/geopath/stats"
)

// ShortestPath returns the geodesic shortest path from s to t inside p as a
// lazy sequence of points, s first and t last, together with a Stats value
// that accumulates as the sequence is consumed.
//
// Unlike [dtsp], [lpsp] and [trsp], this engine precomputes nothing beyond
// locating s and t in the polygon's trapezoidal decomposition: every step
// afterward costs O(n) and holds only the current (cusp, right, left)
// triple, rather than a funnel or a decomposition walk.
func ShortestPath(p *polygon.Polygon, s, t point.Point) (iter.Seq[point.Point], *stats.Stats) {
	st := &stats.Stats{}
	seq := func(yield func(point.Point) bool) {
		run(p, s, t, st, yield)
	}
	return seq, st
}

// kind distinguishes a point tagged as an actual polygon vertex from one
// known only to lie somewhere along a polygon edge. It mirrors the two ways
// a make-step boundary point can be pinned to the polygon's topology.
type kind int

const (
	kindVertex kind = iota
	kindEdge
)

// bstep is a point carried through the make-step advance: a polygon vertex
// (kindVertex, index may be nil when the point is not actually a vertex —
// the running cusp starts out as the arbitrary query point s) or a point
// lying on a polygon edge (kindEdge, index names the edge's start vertex).
type bstep struct {
	point.Point
	kind  kind
	index *int
}

func vertexStep(v polygon.Vertex) bstep {
	return bstep{Point: v.Point, kind: kindVertex, index: v.Index}
}

func fromIntersectionPoint(ip polygon.IntersectionPoint) bstep {
	if ip.Edge != nil {
		idx := *ip.Edge
		return bstep{Point: ip.Point, kind: kindEdge, index: &idx}
	}
	idx := *ip.Vertex.Index
	return bstep{Point: ip.Point, kind: kindVertex, index: &idx}
}

// edgeStepEq reports whether a (always kindEdge, by construction in this
// package) refers to the same tagged point as b.
func edgeStepEq(a, b bstep) bool {
	if b.kind != kindEdge {
		return false
	}
	return a.Point.Eq(b.Point) && *a.index == *b.index
}

func (b bstep) pred(p *polygon.Polygon) polygon.Vertex {
	if b.kind == kindEdge {
		return p.PredEdgePoint(polygon.NewEdgePoint(b.Point, *b.index))
	}
	return p.PredVertex(polygon.NewVertex(b.Point, *b.index))
}

func (b bstep) succ(p *polygon.Polygon) polygon.Vertex {
	if b.kind == kindEdge {
		return p.SuccEdgePoint(polygon.NewEdgePoint(b.Point, *b.index))
	}
	return p.SuccVertex(polygon.NewVertex(b.Point, *b.index))
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

	goLeft := tTrap.IsLeftOf(sTrap)
	side := polygon.NeighbourRight
	if goLeft {
		side = polygon.NeighbourLeft
	}
	neighbours, err := p.NeighbourTrapezoids(sTrap, side)
	if err != nil || len(neighbours) == 0 {
		return
	}

	var nextTrap polygon.Trapezoid
	if len(neighbours) == 1 ||
		(goLeft && tTrap.IsLeftOf(neighbours[0])) ||
		(!goLeft && tTrap.IsRightOf(neighbours[0])) {
		nextTrap = neighbours[0]
	} else {
		nextTrap = neighbours[1]
	}

	first, second, ok := nextTrap.IntersectionPoints(sTrap, p)
	if !ok {
		return
	}
	first, second = orientBoundary(first, second, goLeft, originalS)

	cusp := bstep{Point: originalS, kind: kindVertex}
	q1 := fromIntersectionPoint(first)
	q2 := fromIntersectionPoint(second)

	for !p.PointSeesOtherPoint(cusp.Point, originalT) {
		st.AddIteration()

		result, ok := makeStep(p, cusp, q1, q2, originalT, tTrap)
		if !ok {
			return
		}

		if result.hasOldCusp {
			if result.oldCusp.Eq(originalS) {
				if !yield(originalS) {
					return
				}
			} else if !yield(result.oldCusp) {
				return
			}
		}

		cusp, q1, q2 = result.cusp, result.right, result.left
	}

	if cusp.Point.Eq(originalS) {
		if !yield(originalS) {
			return
		}
	} else if !yield(cusp.Point) {
		return
	}

	yield(originalT)
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

// orientBoundary orders (first, second) so that Turn(s, first, second) is
// not clockwise. The boundary is always built top-to-bottom, so the
// collinear case is disambiguated by which way we are walking.
func orientBoundary(first, second polygon.IntersectionPoint, goLeft bool, s point.Point) (polygon.IntersectionPoint, polygon.IntersectionPoint) {
	switch point.Turn(s, first.Point, second.Point) {
	case point.Clockwise:
		return second, first
	case point.Collinear:
		if !goLeft {
			return second, first
		}
	}
	return first, second
}

// stepResult is the outcome of one makeStep advance: the new (cusp, right,
// left) triple, and, if a vertex of the funnel wedge was popped off along
// the way, that vertex (oldCusp/hasOldCusp).
type stepResult struct {
	oldCusp    point.Point
	hasOldCusp bool
	cusp       bstep
	right      bstep
	left       bstep
}

// makeStep advances the triple (p, q1, q2) one step closer to t, returning
// false if the advance could not locate a boundary crossing (which should
// not happen for a point inside a simple polygon in general position; this
// guards against it rather than assuming it away).
func makeStep(poly *polygon.Polygon, p, q1, q2 bstep, t point.Point, tTrapezoid polygon.Trapezoid) (stepResult, bool) {
	if q1.kind == kindVertex {
		succQ1 := q1.succ(poly)
		if point.Turn(p.Point, q1.Point, succQ1.Point) == point.Clockwise {
			qPrime, found := hitPolygonBoundary(poly, p, q1.Point)
			if !found {
				return stepResult{}, false
			}
			if inSubpolygon(poly, q1, qPrime, t, tTrapezoid) {
				return stepResult{
					oldCusp: p.Point, hasOldCusp: true,
					cusp: q1, right: vertexStep(succQ1), left: qPrime,
				}, true
			}
			return stepResult{cusp: p, right: qPrime, left: q2}, true
		}
	}

	if q2.kind == kindVertex {
		predQ2 := q2.pred(poly)
		if point.Turn(p.Point, q2.Point, predQ2.Point) == point.Counterclockwise {
			qPrime, found := hitPolygonBoundary(poly, p, q2.Point)
			if !found {
				return stepResult{}, false
			}
			if inSubpolygon(poly, qPrime, q2, t, tTrapezoid) {
				return stepResult{
					oldCusp: p.Point, hasOldCusp: true,
					cusp: q2, right: qPrime, left: vertexStep(predQ2),
				}, true
			}
			return stepResult{cusp: p, right: q1, left: qPrime}, true
		}
	}

	succQ1 := q1.succ(poly)
	if point.Turn(p.Point, q1.Point, succQ1.Point) != point.Clockwise &&
		point.Turn(p.Point, q2.Point, succQ1.Point) != point.Counterclockwise {
		qPrime, found := hitPolygonBoundary(poly, p, succQ1.Point)
		if !found {
			return stepResult{}, false
		}
		if !edgeStepEq(qPrime, q2) {
			if p.Point.DistanceSquaredToPoint(qPrime.Point) >= p.Point.DistanceSquaredToPoint(succQ1.Point) {
				qPrime = vertexStep(succQ1)
			}
			pPrime, ok := resolveP(poly, p, qPrime)
			if !ok {
				return stepResult{}, false
			}
			if inSubpolygon(poly, pPrime, qPrime, t, tTrapezoid) {
				return stepResult{cusp: p, right: q1, left: qPrime}, true
			}
			return stepResult{cusp: p, right: qPrime, left: q2}, true
		}
	}

	predQ2 := q2.pred(poly)
	qPrime, found := hitPolygonBoundary(poly, p, predQ2.Point)
	if !found {
		return stepResult{}, false
	}
	if p.Point.DistanceSquaredToPoint(qPrime.Point) >= p.Point.DistanceSquaredToPoint(predQ2.Point) {
		qPrime = vertexStep(predQ2)
	}
	pPrime, ok := resolveP(poly, p, qPrime)
	if !ok {
		return stepResult{}, false
	}
	if inSubpolygon(poly, qPrime, pPrime, t, tTrapezoid) {
		return stepResult{cusp: p, right: qPrime, left: q2}, true
	}
	return stepResult{cusp: p, right: q1, left: qPrime}, true
}

// resolveP returns p itself when it already carries a vertex index, or
// otherwise tags it with the edge hit by shooting a ray from qPrime through
// p, so that inSubpolygon has an index to reason about.
func resolveP(poly *polygon.Polygon, p, qPrime bstep) (bstep, bool) {
	if p.index != nil {
		return p, true
	}
	return hitPolygonBoundary(poly, qPrime, p.Point)
}

// hitPolygonBoundary shoots a ray from origin through through and returns
// the closest point at which it properly crosses a polygon edge, tagged
// with that edge's index. The edge(s) incident to origin itself (when
// origin is a tagged vertex or edge point) are excluded, to avoid reporting
// origin's own supporting edge back as the hit due to rounding error.
func hitPolygonBoundary(poly *polygon.Polygon, origin bstep, through point.Point) (bstep, bool) {
	forbidden := map[int]bool{}
	if origin.index != nil {
		forbidden[*origin.index] = true
		if origin.kind == kindVertex {
			forbidden[poly.Prev(*origin.index)] = true
		}
	}

	ray := segment.NewRay(origin.Point, through)

	found := false
	var hit point.Point
	var hitEdge int
	var bestDist float64

	for ix := range poly.AllIndices() {
		if forbidden[ix] {
			continue
		}
		edge := poly.Edge(ix)
		if !ray.ProperlyIntersects(edge.A.Point, edge.B.Point) {
			continue
		}
		candidate, ok := ray.IntersectionPoint(edge.A.Point, edge.B.Point)
		if !ok {
			continue
		}
		d := origin.Point.DistanceSquaredToPoint(candidate)
		if !found || d < bestDist {
			hit, hitEdge, bestDist, found = candidate, ix, d, true
		}
	}

	if !found {
		return bstep{}, false
	}
	idx := hitEdge
	return bstep{Point: hit, kind: kindEdge, index: &idx}, true
}

// trapezoidSubpolygonPosition reports which side of the (ix1, ix2) boundary
// trapezoid lies on: 1 to the right, -1 to the left, 0 if it cannot be
// decided because the boundary's own edges straddle the split.
func trapezoidSubpolygonPosition(ix1, ix2 int, trapezoid polygon.Trapezoid) int {
	bot, top := trapezoid.BotEdgeIndex, trapezoid.TopEdgeIndex
	if ix1 < ix2 {
		if ix1 <= bot && bot < ix2 && ix1 <= top && top < ix2 {
			return 1
		}
		if (bot < ix1 || bot >= ix2) && (top < ix1 || top >= ix2) {
			return -1
		}
		return 0
	}
	if (bot < ix2 || bot >= ix1) && (top < ix2 || top >= ix1) {
		return 1
	}
	if ix2 <= bot && bot < ix1 && ix2 <= top && top < ix1 {
		return -1
	}
	return 0
}

// inSubpolygon reports whether t lies inside the subpolygon bounded on the
// right by the path from q1 to q2 along the funnel wedge.
func inSubpolygon(poly *polygon.Polygon, q1, q2 bstep, t point.Point, tTrapezoid polygon.Trapezoid) bool {
	ix1 := *q1.index
	if q1.kind == kindEdge {
		ix1 = poly.Next(ix1)
	}
	ix2 := *q2.index

	if ix1 == ix2 {
		return point.Turn(q1.Point, q2.Point, t) != point.Counterclockwise
	}

	small := trapezoidSubpolygonPosition(ix1, ix2, tTrapezoid)
	if small == 1 {
		return true
	}

	if q1.kind == kindEdge {
		ix1 = poly.Prev(ix1)
	}
	if q2.kind == kindEdge {
		ix2 = poly.Next(ix2)
	}

	if ix1 != ix2 {
		big := trapezoidSubpolygonPosition(ix1, ix2, tTrapezoid)
		if big == -1 && small == -1 {
			return false
		}
	}

	// t.is_right_of(q) means q lies to the left of t (q.x < t.x); the
	// reverse comparisons below follow the same x-only convention.
	if q1.X() < t.X() && q2.X() < t.X() {
		if (q1.kind == kindEdge && *q1.index == tTrapezoid.BotEdgeIndex) ||
			(q2.kind == kindEdge && *q2.index == tTrapezoid.TopEdgeIndex) {
			return true
		}
		if (q1.kind == kindEdge && *q1.index == tTrapezoid.TopEdgeIndex) ||
			(q2.kind == kindEdge && *q2.index == tTrapezoid.BotEdgeIndex) {
			return false
		}
	}
	if q1.X() > t.X() && q2.X() > t.X() {
		if (q1.kind == kindEdge && *q1.index == tTrapezoid.TopEdgeIndex) ||
			(q2.kind == kindEdge && *q2.index == tTrapezoid.BotEdgeIndex) {
			return true
		}
		if (q1.kind == kindEdge && *q1.index == tTrapezoid.BotEdgeIndex) ||
			(q2.kind == kindEdge && *q2.index == tTrapezoid.TopEdgeIndex) {
			return false
		}
	}

	return point.Turn(q1.Point, q2.Point, t) != point.Counterclockwise
}
