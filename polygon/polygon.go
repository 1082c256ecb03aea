package polygon

import (
	"iter"

	"github.com/geopath/geopath"
	"github.com/geopath/geopath/point"
)

// Polygon is a simple polygon in R^2, given as a sequence of vertices in
// counterclockwise order. A Polygon's vertex list never changes after
// construction, so a *Polygon is safe to query concurrently from multiple
// goroutines.
type Polygon struct {
	points []Vertex
}

// New creates a Polygon from points, given in counterclockwise order.
//
// Returns a [geopath.TooFewPointsError] if fewer than three points are given.
func New(points []point.Point) (*Polygon, error) {
	if len(points) < 3 {
		return nil, &geopath.TooFewPointsError{Count: len(points)}
	}

	vertices := make([]Vertex, len(points))
	for i, p := range points {
		vertices[i] = NewVertex(p, i)
	}

	return &Polygon{points: vertices}, nil
}

// Len returns the number of vertices in the polygon.
func (p *Polygon) Len() int { return len(p.points) }

// Point returns the vertex at the given index, wrapping around the polygon
// boundary for indices outside [0, Len()).
func (p *Polygon) Point(index int) Vertex {
	return p.points[mod(index, p.Len())]
}

// Prev returns the index preceding index, wrapping around 0.
func (p *Polygon) Prev(index int) int {
	return mod(index-1, p.Len())
}

// Next returns the index succeeding index, wrapping around the highest index.
func (p *Polygon) Next(index int) int {
	return mod(index+1, p.Len())
}

// PredVertex returns the vertex preceding v, identified by v's own vertex
// index.
func (p *Polygon) PredVertex(v Vertex) Vertex {
	if v.Index == nil {
		panic("polygon: PredVertex requires a vertex with a known index")
	}
	return p.Point(*v.Index - 1)
}

// SuccVertex returns the vertex succeeding v, identified by v's own vertex
// index.
func (p *Polygon) SuccVertex(v Vertex) Vertex {
	if v.Index == nil {
		panic("polygon: SuccVertex requires a vertex with a known index")
	}
	return p.Point(*v.Index + 1)
}

// PredEdgePoint returns the vertex at the start of the edge e lies on.
func (p *Polygon) PredEdgePoint(e EdgePoint) Vertex {
	if e.Index == nil {
		panic("polygon: PredEdgePoint requires an edge point with a known edge index")
	}
	return p.Point(*e.Index)
}

// SuccEdgePoint returns the vertex at the end of the edge e lies on.
func (p *Polygon) SuccEdgePoint(e EdgePoint) Vertex {
	if e.Index == nil {
		panic("polygon: SuccEdgePoint requires an edge point with a known edge index")
	}
	return p.Point(*e.Index + 1)
}

// PointTurn returns the polygon's turn predicate at the vertex with the
// given index: how the vertex's two neighbouring edges bend.
func (p *Polygon) PointTurn(index int) point.OrientationType {
	v := p.Point(index)
	return point.Turn(p.PredVertex(v).Point, v.Point, p.SuccVertex(v).Point)
}

// IsConcavePoint reports whether the polygon is concave (reflex) at the
// vertex with the given index.
func (p *Polygon) IsConcavePoint(index int) bool {
	return p.PointTurn(index) == point.Clockwise
}

// IsConvexPoint reports whether the polygon is convex at the vertex with the
// given index.
func (p *Polygon) IsConvexPoint(index int) bool {
	return p.PointTurn(index) == point.Counterclockwise
}

// Edge returns the edge from the vertex at index to the vertex at index+1.
func (p *Polygon) Edge(index int) Edge {
	return NewEdge(p.Point(index), p.Point(index+1))
}

// Edges returns an iterator over all of the polygon's boundary edges, in
// order.
func (p *Polygon) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for i := 0; i < p.Len(); i++ {
			if !yield(p.Edge(i)) {
				return
			}
		}
	}
}

// AllIndices returns an iterator over every vertex index, starting at 0.
func (p *Polygon) AllIndices() iter.Seq[int] {
	return p.Indices(0, p.Len()-1, 1)
}

// ClockwiseIndices returns an iterator over every vertex index in reverse
// order, starting at the last index and wrapping down to 0.
func (p *Polygon) ClockwiseIndices() iter.Seq[int] {
	return p.Indices(p.Len()-1, 0, -1)
}

// Indices returns an iterator over the vertex indices from start to stop
// inclusive, advancing by step (which should be 1 or -1) and wrapping around
// the polygon boundary.
func (p *Polygon) Indices(start, stop, step int) iter.Seq[int] {
	n := p.Len()
	start = mod(start, n)
	stop = mod(stop, n)
	return func(yield func(int) bool) {
		i := start
		for i != stop {
			if !yield(i) {
				return
			}
			i = mod(i+step, n)
		}
		yield(i)
	}
}

// IsInGeneralPosition reports whether no three vertices of the polygon are
// collinear. Several of the polygon's O(n) queries assume this; callers that
// cannot guarantee it ahead of time should check here first, since this
// itself costs O(n^3).
func (p *Polygon) IsInGeneralPosition() bool {
	n := p.Len()
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			for c := b + 1; c < n; c++ {
				if point.Turn(p.Point(a).Point, p.Point(b).Point, p.Point(c).Point) == point.Collinear {
					return false
				}
			}
		}
	}
	return true
}

func mod(i, n int) int {
	m := i % n
	if m < 0 {
		m += n
	}
	return m
}
