package polygon

import (
	"github.com/geopath/geopath/funnel"
	"github.com/geopath/geopath/point"
	"github.com/geopath/geopath/segment"
)

// PointSeesEdge reports whether q can see the given edge without the line of
// sight crossing the polygon boundary, and, if so, returns the two points
// that bound the visible portion of the edge from the right and from the
// left.
//
// This costs O(n): every polygon edge is checked once to see whether it cuts
// into the growing visibility cone.
func (p *Polygon) PointSeesEdge(q point.Point, edge Edge) (sees bool, right, left point.Point) {
	if q.Eq(edge.A.Point) {
		return true, edge.A.Point, edge.B.Point
	}
	if q.Eq(edge.B.Point) {
		return true, edge.B.Point, edge.A.Point
	}

	var edgeFirst, edgeSecond point.Point
	if point.Turn(q, edge.A.Point, edge.B.Point) == point.Counterclockwise {
		edgeFirst, edgeSecond = edge.A.Point, edge.B.Point
	} else {
		edgeFirst, edgeSecond = edge.B.Point, edge.A.Point
	}

	// A polygon edge requiring rotation to align with the query cannot be seen.
	if edge.A.Index != nil && edge.B.Index != nil {
		diff := *edge.A.Index - *edge.B.Index
		if diff == -1 || diff == 1 {
			if edgeFirst.Eq(edge.B.Point) {
				return false, point.Point{}, point.Point{}
			}
		}
	}

	f := funnel.New(q, edgeFirst, edgeSecond)

	funnels := []visFunnel{{plain: f}}

	// If the query point is a polygon vertex, its own two neighbouring edges
	// can themselves restrict visibility; checking this up front avoids
	// special cases that would otherwise make later steps fail.
	var qVertex *Vertex
	for i := 0; i < p.Len(); i++ {
		v := p.Point(i)
		if v.Point.Eq(q) {
			qVertex = &v
			break
		}
	}

	if qVertex != nil {
		succ := p.SuccVertex(*qVertex)
		pred := p.PredVertex(*qVertex)
		pointFunnel := funnel.New(q, succ.Point, pred.Point)

		special := false
		if p.IsConcavePoint(*qVertex.Index) {
			if pointFunnel.ContainsPoint(edgeFirst) && pointFunnel.ContainsPoint(edgeSecond) &&
				!pointFunnel.ContainsSegment(edgeFirst, edgeSecond) {
				bf1, err1 := funnel.NewBounded(q, succ.Point, edgeSecond, edgeFirst, edgeSecond)
				bf2, err2 := funnel.NewBounded(q, edgeFirst, pred.Point, edgeFirst, edgeSecond)
				if err1 == nil && err2 == nil {
					funnels = []visFunnel{{bounded: bf1}, {bounded: bf2}}
					special = true
				}
			}
		}

		if !special {
			if !(pointFunnel.ContainsPoint(f.First()) || pointFunnel.ContainsPoint(f.Second()) ||
				f.ContainsPoint(pointFunnel.First()) || f.ContainsPoint(pointFunnel.Second())) {
				return false, point.Point{}, point.Point{}
			}

			if f.ContainsPoint(succ.Point) {
				f.SetFirst(succ.Point)
			}
			if f.ContainsPoint(pred.Point) {
				f.SetSecond(pred.Point)
			}
			if f.First().Eq(f.Second()) {
				return false, point.Point{}, point.Point{}
			}
			funnels = []visFunnel{{plain: f}}
		}
	} else {
		bf, err := funnel.NewBounded(f.Cusp(), f.First(), f.Second(), edgeFirst, edgeSecond)
		if err == nil {
			funnels = []visFunnel{{bounded: bf}}
		}
	}

	// Find a starting edge that does not lie completely inside any funnel in
	// play, so the walk below never has to split a funnel mid-edge.
	n := p.Len()
	startIx := 0
	for i := 0; i < n; i++ {
		startIx = i
		e := p.Edge(i)
		allContain := true
		for _, vf := range funnels {
			if vf.containsSegment(e.A.Point, e.B.Point) {
				continue
			}
			allContain = false
			break
		}
		if !allContain {
			break
		}
	}

	for idx := range p.Indices(startIx, p.Prev(startIx), 1) {
		pEdge := p.Edge(idx)

		pFirst, pSecond := pEdge.A.Point, pEdge.B.Point
		if point.Turn(q, pEdge.A.Point, pEdge.B.Point) == point.Clockwise {
			pFirst, pSecond = pSecond, pFirst
		}

		remaining := funnels[:0]
		for _, vf := range funnels {
			if vf.properlyContainsPoint(pFirst) {
				vf.setSecond(pSecond)
			}
			if vf.properlyContainsPoint(pSecond) {
				vf.setFirst(pFirst)
			}

			remove := vf.isHalfProperlyDividedBy(pFirst, pSecond)

			if vf.first().Eq(pFirst) && vf.second().Eq(pSecond) &&
				vf.containsSegment(pFirst, pSecond) {
				if !(pFirst.Eq(edgeFirst) && pSecond.Eq(edgeSecond)) {
					remove = true
				}
			}

			if vf.first().Eq(vf.second()) {
				remove = true
			}

			if !remove {
				remaining = append(remaining, vf)
			}
		}
		funnels = remaining

		if len(funnels) == 0 {
			return false, point.Point{}, point.Point{}
		}
	}

	if len(funnels) != 1 {
		return false, point.Point{}, point.Point{}
	}

	return true, funnels[0].first(), funnels[0].second()
}

// visFunnel wraps either a plain [funnel.Funnel] or a [funnel.BoundedFunnel]
// behind one interface, mirroring how the original algorithm treats both
// uniformly once either has been constructed for a given visibility query.
type visFunnel struct {
	plain   *funnel.Funnel
	bounded *funnel.BoundedFunnel
}

func (v visFunnel) first() point.Point {
	if v.bounded != nil {
		return v.bounded.First()
	}
	return v.plain.First()
}

func (v visFunnel) second() point.Point {
	if v.bounded != nil {
		return v.bounded.Second()
	}
	return v.plain.Second()
}

func (v visFunnel) setFirst(p point.Point) {
	if v.bounded != nil {
		v.bounded.SetFirst(p)
		return
	}
	v.plain.SetFirst(p)
}

func (v visFunnel) setSecond(p point.Point) {
	if v.bounded != nil {
		v.bounded.SetSecond(p)
		return
	}
	v.plain.SetSecond(p)
}

func (v visFunnel) containsSegment(a, b point.Point) bool {
	if v.bounded != nil {
		return v.bounded.ContainsSegment(a, b)
	}
	return v.plain.ContainsSegment(a, b)
}

func (v visFunnel) properlyContainsPoint(p point.Point) bool {
	if v.bounded != nil {
		return v.bounded.ProperlyContainsPoint(p)
	}
	return v.plain.ProperlyContainsPoint(p)
}

func (v visFunnel) isHalfProperlyDividedBy(a, b point.Point) bool {
	if v.bounded != nil {
		return v.bounded.IsHalfProperlyDividedBy(a, b)
	}
	return v.plain.IsHalfProperlyDividedBy(a, b)
}

// PointSeesOtherPoint reports whether the straight segment from a to b stays
// entirely within the polygon, i.e. crosses no boundary edge.
//
// This costs O(n): every polygon edge is checked once.
func (p *Polygon) PointSeesOtherPoint(a, b point.Point) bool {
	for i := 0; i < p.Len(); i++ {
		e := p.Edge(i)
		if segment.ProperlyIntersects(a, b, e.A.Point, e.B.Point) {
			return false
		}
	}
	return true
}

// PointInsideAt returns a point strictly inside the polygon, near the edge
// at the given index, by locating the centroid of that edge's completing
// Delaunay triangle.
//
// This costs O(n^2), dominated by the single [Polygon.CompleteDelaunayEdge]
// call needed to find the triangle.
func (p *Polygon) PointInsideAt(index int) (point.Point, error) {
	a := p.Point(index)
	b := p.Point(index + 1)
	c, _, err := p.CompleteDelaunayEdge(a, b)
	if err != nil {
		return point.Point{}, err
	}
	if c == nil {
		return point.Point{}, nil
	}

	centroid := point.New((a.X()+b.X()+c.X())/3, (a.Y()+b.Y()+c.Y())/3)

	triangle, err := NewTriangle(a, b, *c)
	if err != nil {
		return point.Point{}, err
	}

	digits := 4
	q := centroid.Round(digits)
	for !triangle.ContainsPoint(q) {
		digits++
		q = centroid.Round(digits)
	}
	return q, nil
}
