// Package dtsp computes the geodesic shortest path between two points in a
// simple polygon by walking the dual tree of the polygon's constrained
// Delaunay triangulation, carrying a funnel across each triangle boundary
// crossed.
//
// Asano, Mulzer, Wang, "Constant-Work-Space Algorithms for Shortest Paths in
// Trees and Simple Polygons", J. Graph Algorithms Appl. 15(5), 2011.
package dtsp

import (
	"iter"

	"github.com/geopath/geopath/funnel"
	"github.com/geopath/geopath/options"
	"github.com/geopath/geopath/point"
	"github.com/geopath/geopath/polygon"
	"github.com/geopath/geopath/stats"
)

// ShortestPath returns the geodesic shortest path from s to t inside p as a
// lazy sequence of points, s first and t last, together with a Stats value
// that accumulates as the sequence is consumed (and is complete once the
// sequence is fully drained).
//
// If s or t lies outside p, the sequence is empty. p must be in general
// position (see [polygon.Polygon.IsInGeneralPosition]); this is not
// reverified here.
//
// opts may include [options.WithMaxDiagonalCache] to bound the memoisation
// of completed Delaunay diagonals across the dual-tree walk this engine
// performs; every other option is ignored.
func ShortestPath(p *polygon.Polygon, s, t point.Point, opts ...options.GeometryOptionsFunc) (iter.Seq[point.Point], *stats.Stats) {
	st := &stats.Stats{}
	o := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)
	cache := polygon.NewDiagonalCache(o.MaxDiagonalCache)
	seq := func(yield func(point.Point) bool) {
		run(p, s, t, st, cache, yield)
	}
	return seq, st
}

func run(p *polygon.Polygon, s, t point.Point, st *stats.Stats, cache *polygon.DiagonalCache, yield func(point.Point) bool) {
	if s.Eq(t) {
		yield(s)
		return
	}

	sTriangle, ok, err := p.LocatePointInTriangle(s, cache)
	if err != nil || !ok {
		return
	}
	tTriangle, ok, err := p.LocatePointInTriangle(t, cache)
	if err != nil || !ok {
		return
	}

	if sTriangle.Eq(tTriangle) {
		if !yield(s) {
			return
		}
		yield(t)
		return
	}

	cusp := s
	var fun *funnel.Funnel
	current := sTriangle
	previous := current
	var boundary polygon.Edge
	haveBoundary := false

	startNeighbour, ok, err := p.DelaunayFirstNeighbour(current, cache)
	if err != nil || !ok {
		return
	}

	for !current.Eq(tTriangle) {
		st.AddIteration()

		previous = current
		current, err = parallelFindFeasibleSubtree(p, previous, startNeighbour, sTriangle, tTriangle, cache)
		if err != nil {
			return
		}

		previousBoundary, havePreviousBoundary := boundary, haveBoundary

		b, ok := current.CommonEdge(previous)
		if !ok {
			return
		}
		boundary = orientBoundary(b, previous, cusp)
		haveBoundary = true

		if fun == nil {
			fun = funnel.New(cusp, boundary.A.Point, boundary.B.Point)
		}

		posA := fun.PositionOf(boundary.A.Point)
		posB := fun.PositionOf(boundary.B.Point)

		bothRightOf := posA == funnel.RightOf && posB == funnel.RightOf
		bothLeftOf := posA == funnel.LeftOf && posB == funnel.LeftOf

		if bothLeftOf || bothRightOf {
			if !yield(cusp) {
				return
			}

			st.AddJarvisMarch()
			params := prepareJarvisMarch(p, fun, bothRightOf, boundary)

			ignoreBoundary := boundary
			if havePreviousBoundary {
				ignoreBoundary = previousBoundary
			}
			goodPosition := funnel.LeftOf
			if bothRightOf {
				goodPosition = funnel.RightOf
			}
			ignore := ignoreFunction(ignoreBoundary, fun, goodPosition)

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

			// If the march's cusp coincides with a funnel vertex, advance that
			// vertex one step in the walk direction (and keep v1/v2 in the
			// right rotational order).
			if v1.Eq(found.Point) {
				if params.direction == 1 {
					v1 = p.Point(*found.Index + 1).Point
				} else {
					v1 = p.Point(*found.Index - 1).Point
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

		startNeighbour, ok, err = p.DelaunayNextNeighbour(current, previous, cache)
		if err != nil {
			return
		}
		_ = ok
	}

	if !yield(cusp) {
		return
	}

	if !p.PointSeesOtherPoint(cusp, t) {
		st.AddJarvisMarch()
		rightOf := fun.PositionOf(t) == funnel.RightOf
		params := prepareJarvisMarch(p, fun, rightOf, boundary)

		goodPosition := funnel.LeftOf
		if rightOf {
			goodPosition = funnel.RightOf
		}
		ignore := ignoreFunction(boundary, fun, goodPosition)

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

	yield(t)
}

// orientBoundary orients edge so that Turn(cusp, edge.A, edge.B) is not
// clockwise, disambiguating the collinear case using the third vertex of
// previous (the triangle edge is being walked out of).
func orientBoundary(edge polygon.Edge, previous polygon.Triangle, cusp point.Point) polygon.Edge {
	switch point.Turn(cusp, edge.A.Point, edge.B.Point) {
	case point.Clockwise:
		return polygon.NewEdge(edge.B, edge.A)
	case point.Collinear:
		for _, v := range previous.Points() {
			if v.Eq(edge.A) || v.Eq(edge.B) {
				continue
			}
			if point.Turn(v.Point, edge.A.Point, edge.B.Point) == point.Clockwise {
				return polygon.NewEdge(edge.B, edge.A)
			}
			break
		}
	}
	return edge
}

// jarvisMarchParams bundles the starting conditions of a Jarvis march: it
// starts at startIndex and walks in direction (+1 or -1) up to and
// including endIndex, preferring a later candidate over "second" whenever
// it forms the goodTurn against the current (first, second) pair.
type jarvisMarchParams struct {
	startIndex, endIndex int
	direction            int
	goodTurn             point.OrientationType
}

// prepareJarvisMarch computes the march's starting parameters from the
// current funnel and which side of it the lost boundary fell on.
func prepareJarvisMarch(p *polygon.Polygon, fun *funnel.Funnel, rightOf bool, boundary polygon.Edge) jarvisMarchParams {
	n := p.Len()
	var params jarvisMarchParams

	if rightOf {
		params.direction = 1
		params.startIndex = *firstVertexIndex(p, fun.First())
		params.goodTurn = point.Counterclockwise
		if mod(*boundary.A.Index-params.startIndex, n) < mod(*boundary.B.Index-params.startIndex, n) {
			params.endIndex = *boundary.A.Index
		} else {
			params.endIndex = *boundary.B.Index
		}
	} else {
		params.direction = -1
		params.startIndex = *firstVertexIndex(p, fun.Second())
		params.goodTurn = point.Clockwise
		if mod(params.startIndex-*boundary.A.Index, n) < mod(params.startIndex-*boundary.B.Index, n) {
			params.endIndex = *boundary.A.Index
		} else {
			params.endIndex = *boundary.B.Index
		}
	}

	return params
}

// firstVertexIndex locates q among the polygon's own vertices, which a
// funnel boundary point always is once the funnel has been anchored on a
// triangle edge.
func firstVertexIndex(p *polygon.Polygon, q point.Point) *int {
	for i := 0; i < p.Len(); i++ {
		v := p.Point(i)
		if v.Point.Eq(q) {
			return v.Index
		}
	}
	panic("dtsp: funnel boundary point is not a polygon vertex")
}

func mod(i, n int) int {
	m := i % n
	if m < 0 {
		m += n
	}
	return m
}

// ignoreFunction returns a predicate rejecting candidate vertices that lie
// beyond boundary or on the wrong side of the funnel.
func ignoreFunction(boundary polygon.Edge, fun *funnel.Funnel, goodPosition funnel.Position) func(point.Point) bool {
	return func(q point.Point) bool {
		return point.Turn(boundary.A.Point, boundary.B.Point, q) == point.Clockwise ||
			fun.PositionOf(q) != goodPosition
	}
}

// jarvisMarch walks polygon vertices starting at params.startIndex in
// params.direction, stopping once predicate succeeds (which it must,
// strictly before params.endIndex is exceeded in a well-formed input),
// yielding each vertex visited along the way. It returns the vertex
// predicate succeeded on, or stop=true if the consumer ended the sequence
// early.
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

// parallelFindFeasibleSubtree returns the child of u (starting the search at
// v) whose dual subtree contains t, walking two Eulerian tours of u's
// children in lockstep so the search costs time proportional to the
// eventually-chosen subtree rather than to u's full degree.
func parallelFindFeasibleSubtree(p *polygon.Polygon, u, v, s, t polygon.Triangle, cache *polygon.DiagonalCache) (polygon.Triangle, error) {
	fNeighbour := v
	sNeighbour, ok, err := p.DelaunayNextNeighbour(u, v, cache)
	if err != nil {
		return polygon.Triangle{}, err
	}
	if !ok {
		return fNeighbour, nil
	}
	lastNeighbour := sNeighbour

	numNeighbours := p.DelaunayNeighbourNumber(u)
	if !u.Eq(s) {
		numNeighbours--
	}

	if numNeighbours == 1 || fNeighbour.Eq(t) {
		return fNeighbour, nil
	}
	if sNeighbour.Eq(t) {
		return sNeighbour, nil
	}

	one, oneNext := u, fNeighbour
	two, twoNext := u, sNeighbour

	for {
		sigF1, sigC1, newOne, newOneNext, err := advSearch(p, u, fNeighbour, one, oneNext, t, cache)
		if err != nil {
			return polygon.Triangle{}, err
		}
		one, oneNext = newOne, newOneNext

		sigF2, sigC2, newTwo, newTwoNext, err := advSearch(p, u, sNeighbour, two, twoNext, t, cache)
		if err != nil {
			return polygon.Triangle{}, err
		}
		two, twoNext = newTwo, newTwoNext

		if sigF1 {
			return fNeighbour, nil
		}
		if sigF2 {
			return sNeighbour, nil
		}

		if !sigC1 {
			fNeighbour, _, err = p.DelaunayNextNeighbour(u, lastNeighbour, cache)
			if err != nil {
				return polygon.Triangle{}, err
			}
			oneNext = fNeighbour
			lastNeighbour = fNeighbour
			one = u
			numNeighbours--

			if numNeighbours == 1 {
				return sNeighbour, nil
			}
			if fNeighbour.Eq(t) {
				return fNeighbour, nil
			}
		}
		if !sigC2 {
			sNeighbour, _, err = p.DelaunayNextNeighbour(u, lastNeighbour, cache)
			if err != nil {
				return polygon.Triangle{}, err
			}
			twoNext = sNeighbour
			lastNeighbour = sNeighbour
			two = u
			numNeighbours--

			if numNeighbours == 1 {
				return fNeighbour, nil
			}
			if sNeighbour.Eq(t) {
				return sNeighbour, nil
			}
		}
	}
}

// advSearch advances one step of an Eulerian tour of u's subtree rooted at
// v, reporting sigF (the tour reached t) and sigC (the tour has not yet
// returned to its own root).
func advSearch(p *polygon.Polygon, u, v, uPrime, vPrime polygon.Triangle, t polygon.Triangle, cache *polygon.DiagonalCache) (sigF, sigC bool, newU, newV polygon.Triangle, err error) {
	vDoublePrime, ok, err := p.DelaunayNextNeighbour(vPrime, uPrime, cache)
	if err != nil {
		return false, false, polygon.Triangle{}, polygon.Triangle{}, err
	}
	if !ok {
		// vPrime is a leaf: the tour turns back across the edge it arrived by.
		vDoublePrime = uPrime
	}
	uDoublePrime := vPrime

	if uDoublePrime.Eq(v) && vDoublePrime.Eq(u) {
		return false, false, uDoublePrime, vDoublePrime, nil
	}
	if vDoublePrime.Eq(t) {
		return true, false, uDoublePrime, vDoublePrime, nil
	}
	return false, true, uDoublePrime, vDoublePrime, nil
}
