package polygon

import (
	"github.com/geopath/geopath"
	"github.com/geopath/geopath/circle"
	"github.com/geopath/geopath/funnel"
	"github.com/geopath/geopath/point"
	"github.com/geopath/geopath/types"
)

// CompleteDelaunayEdge returns the third vertex (or vertices) completing a
// into a triangle of the polygon's constrained Delaunay triangulation, given
// the edge (a, b).
//
// If (a, b) is not itself a polygon boundary edge it borders two
// triangles, so both return values are non-nil: the first lies to the left
// of the directed edge a->b, the second to its right. If (a, b) is a
// boundary edge only the interior side is filled in and the other return
// value is nil.
//
// This costs O(n^2): every other vertex is a candidate, and checking a
// candidate's visibility costs O(n).
//
// An optional [DiagonalCache] may be passed to memoise the result across
// repeated calls for the same edge within one query; omit it, or pass nil,
// for uncached behaviour.
func (p *Polygon) CompleteDelaunayEdge(a, b Vertex, cache ...*DiagonalCache) (left, right *Vertex, err error) {
	if a.Index == nil || b.Index == nil {
		panic("polygon: CompleteDelaunayEdge requires vertices with known indices")
	}

	// The cache keys the unordered edge and stores the completion as seen
	// from the lower-indexed endpoint, so swap the sides for the other
	// direction.
	c := firstCache(cache)
	flip := *a.Index > *b.Index
	if cl, cr, ok := c.get(a, b); ok {
		if flip {
			cl, cr = cr, cl
		}
		return cl, cr, nil
	}

	aPrev := p.PredVertex(a)
	aNext := p.SuccVertex(a)
	bPrev := p.PredVertex(b)
	bNext := p.SuccVertex(b)

	aFunnel := funnel.New(a.Point, aNext.Point, aPrev.Point)
	bFunnel := funnel.New(b.Point, bNext.Point, bPrev.Point)

	var best [2]*Vertex
	var bestCircle [2]*circle.Circle

	n := p.Len()
	for i := 0; i < n; i++ {
		curr := p.Point(i)
		if curr.Eq(a) || curr.Eq(b) {
			continue
		}
		if !aFunnel.ContainsPoint(curr.Point) || !bFunnel.ContainsPoint(curr.Point) {
			continue
		}

		position := point.Turn(a.Point, b.Point, curr.Point)
		if position == point.Collinear {
			return nil, nil, &geopath.ThreePointsAreCollinearError{A: a, B: b, C: curr}
		}
		which := 1
		if position == point.Counterclockwise {
			which = 0
		}

		if best[which] != nil && bestCircle[which] != nil {
			rel := bestCircle[which].RelationshipToPoint(curr.Point)
			if rel != types.RelationshipContainedBy && rel != types.RelationshipIntersection {
				continue
			}
		}

		better := true
		aEdge := NewEdge(a, curr)
		bEdge := NewEdge(b, curr)

		for j := 0; j < n; j++ {
			border := p.Edge(j)
			if border.ProperlyIntersects(aEdge) || border.ProperlyIntersects(bEdge) {
				better = false
				break
			}
		}

		if !better {
			continue
		}

		c, ok := circle.NewFromThreePoints(a.Point, b.Point, curr.Point)
		if !ok {
			continue
		}
		v := curr
		best[which] = &v
		bestCircle[which] = &c
	}

	if flip {
		c.put(a, b, best[1], best[0])
	} else {
		c.put(a, b, best[0], best[1])
	}
	return best[0], best[1], nil
}

// firstCache returns the single *DiagonalCache in cache, or nil if cache is
// empty; a nil *DiagonalCache disables memoisation in every method that
// accepts the same variadic pattern.
func firstCache(cache []*DiagonalCache) *DiagonalCache {
	if len(cache) == 0 {
		return nil
	}
	return cache[0]
}

// DelaunayFirstNeighbour returns the first triangle neighbouring t across
// one of its own three edges, or ok=false if t has no neighbour (it is a
// single isolated triangle spanning the whole polygon).
func (p *Polygon) DelaunayFirstNeighbour(t Triangle, cache ...*DiagonalCache) (Triangle, bool, error) {
	for _, e := range t.Edges() {
		neighbour, ok, err := p.completeOtherDelaunayTriangleOfEdge(e, t, cache...)
		if err != nil {
			return Triangle{}, false, err
		}
		if ok {
			return neighbour, true, nil
		}
	}
	return Triangle{}, false, nil
}

// DelaunayNextNeighbour returns t's next neighbouring triangle after
// neighbour, walking t's edges starting just past the edge t shares with
// neighbour.
func (p *Polygon) DelaunayNextNeighbour(t, neighbour Triangle, cache ...*DiagonalCache) (Triangle, bool, error) {
	commonEdge, ok := t.CommonEdge(neighbour)
	if !ok {
		panic("polygon: DelaunayNextNeighbour requires triangle and neighbour to share an edge")
	}

	for _, e := range t.EdgesUntil(commonEdge) {
		next, ok, err := p.completeOtherDelaunayTriangleOfEdge(e, t, cache...)
		if err != nil {
			return Triangle{}, false, err
		}
		if ok {
			return next, true, nil
		}
	}
	return Triangle{}, false, nil
}

// completeOtherDelaunayTriangleOfEdge returns the Delaunay triangle bordering
// edge that is not t, or ok=false if edge is a polygon boundary edge (and
// thus borders only t).
func (p *Polygon) completeOtherDelaunayTriangleOfEdge(edge Edge, t Triangle, cache ...*DiagonalCache) (Triangle, bool, error) {
	left, right, err := p.CompleteDelaunayEdge(edge.A, edge.B, cache...)
	if err != nil {
		return Triangle{}, false, err
	}
	if left == nil || right == nil {
		return Triangle{}, false, nil
	}

	if inTrianglePoints(*left, t) {
		tri, err := NewTriangle(*right, edge.A, edge.B)
		return tri, err == nil, err
	}
	if inTrianglePoints(*right, t) {
		tri, err := NewTriangle(*left, edge.A, edge.B)
		return tri, err == nil, err
	}

	panic("polygon: neither completing vertex belongs to the given triangle")
}

func inTrianglePoints(v Vertex, t Triangle) bool {
	pts := t.Points()
	return v.Eq(pts[0]) || v.Eq(pts[1]) || v.Eq(pts[2])
}

// DelaunayNeighbourNumber returns the number of Delaunay triangles
// neighbouring t, found by counting how many of its edges are not polygon
// boundary edges.
func (p *Polygon) DelaunayNeighbourNumber(t Triangle) int {
	neighbours := 0
	n := p.Len()
	for _, e := range t.Edges() {
		if e.A.Index == nil || e.B.Index == nil {
			neighbours++
			continue
		}
		d := ((*e.A.Index-*e.B.Index)%n + n) % n
		if d != 1 && d != n-1 {
			neighbours++
		}
	}
	return neighbours
}

// LocatePointInTriangle finds the Delaunay triangle containing q, or
// ok=false if q lies outside the polygon.
//
// This walks from the triangle formed by the edge directly above q toward q,
// crossing one triangle edge at a time, which costs O(n) triangle hops each
// costing O(n^2) to resolve — O(n^3) overall.
func (p *Polygon) LocatePointInTriangle(q point.Point, cache ...*DiagonalCache) (Triangle, bool, error) {
	topIx, _, ok, err := p.findEdgesAboveAndBelow(q)
	if err != nil {
		return Triangle{}, false, err
	}
	if !ok {
		return Triangle{}, false, nil
	}

	startEdge := p.Edge(topIx)
	left, right, err := p.CompleteDelaunayEdge(startEdge.A, startEdge.B, cache...)
	if err != nil {
		return Triangle{}, false, err
	}
	if right != nil || left == nil {
		return Triangle{}, false, &geopath.NotInGeneralPositionError{
			Reason: "edge above the query point is not a polygon boundary edge",
		}
	}

	triangle, err := NewTriangle(p.Point(topIx), p.Point(topIx+1), *left)
	if err != nil {
		return Triangle{}, false, err
	}

	for !triangle.ContainsPoint(q) {
		var nextEdge *Edge
		for _, e := range triangle.Edges() {
			if e.Eq(startEdge) {
				continue
			}
			if (e.A.X() <= q.X() && q.X() <= e.B.X()) || (e.B.X() <= q.X() && q.X() <= e.A.X()) {
				edge := e
				nextEdge = &edge
				break
			}
		}
		if nextEdge == nil {
			return Triangle{}, false, &geopath.NotInGeneralPositionError{
				Reason: "no triangle edge covers the query point's x-coordinate while locating it",
			}
		}
		startEdge = *nextEdge

		next, ok, err := p.completeOtherDelaunayTriangleOfEdge(*nextEdge, triangle, cache...)
		if err != nil {
			return Triangle{}, false, err
		}
		if !ok {
			return Triangle{}, false, &geopath.NotInGeneralPositionError{
				Reason: "triangle walk fell off the polygon boundary while locating a point",
			}
		}
		triangle = next
	}

	return triangle, true, nil
}
