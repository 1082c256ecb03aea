package polygon

import (
	"fmt"

	"github.com/geopath/geopath"
	"github.com/geopath/geopath/point"
)

// Triangle is a triangle formed by three polygon vertices, used as the node
// type of the constrained Delaunay triangulation's dual tree.
//
// Construction canonicalises the three vertices into counterclockwise order
// with the lexicographically smallest vertex first, so that two Triangle
// values naming the same three vertices always compare equal regardless of
// the order they were given in.
type Triangle struct {
	A, B, C Vertex
	edges   [3]Edge
}

// NewTriangle creates the Triangle with vertices a, b, c, which may be given
// in any order but must not be collinear.
//
// Returns a [geopath.ThreePointsAreCollinearError] if they are.
func NewTriangle(a, b, c Vertex) (Triangle, error) {
	switch point.Turn(a.Point, b.Point, c.Point) {
	case point.Collinear:
		return Triangle{}, &geopath.ThreePointsAreCollinearError{A: a, B: b, C: c}
	case point.Clockwise:
		b, c = c, b
	}

	if less(b, a) && less(b, c) {
		a, b, c = b, c, a
	} else if less(c, a) && less(c, b) {
		a, b, c = c, a, b
	}

	t := Triangle{A: a, B: b, C: c}
	t.edges = [3]Edge{NewEdge(a, b), NewEdge(b, c), NewEdge(c, a)}
	return t, nil
}

func less(a, b Vertex) bool {
	if a.X() != b.X() {
		return a.X() < b.X()
	}
	return a.Y() < b.Y()
}

// Edges returns the triangle's three edges, in the canonical order (A,B),
// (B,C), (C,A).
func (t Triangle) Edges() [3]Edge { return t.edges }

// Points returns the triangle's three vertices in canonical order.
func (t Triangle) Points() [3]Vertex { return [3]Vertex{t.A, t.B, t.C} }

// EdgesFrom returns the triangle's three edges starting from edge, in their
// canonical cyclic order.
func (t Triangle) EdgesFrom(edge Edge) [3]Edge {
	for i, e := range t.edges {
		if e.Eq(edge) {
			return [3]Edge{t.edges[i], t.edges[(i+1)%3], t.edges[(i+2)%3]}
		}
	}
	panic("polygon: EdgesFrom called with an edge that is not part of the triangle")
}

// EdgesUntil returns the triangle's other two edges, starting just after
// edge and wrapping back to (but excluding) edge itself.
func (t Triangle) EdgesUntil(edge Edge) [2]Edge {
	from := t.EdgesFrom(edge)
	return [2]Edge{from[1], from[2]}
}

// ContainsPoint reports whether p lies strictly within the triangle.
func (t Triangle) ContainsPoint(p point.Point) bool {
	return point.Turn(t.A.Point, t.B.Point, p) == point.Counterclockwise &&
		point.Turn(t.B.Point, t.C.Point, p) == point.Counterclockwise &&
		point.Turn(t.C.Point, t.A.Point, p) == point.Counterclockwise
}

// CommonEdge returns the edge t and other share, and true, or the zero Edge
// and false if they are equal or share no edge.
func (t Triangle) CommonEdge(other Triangle) (Edge, bool) {
	if t.Eq(other) {
		return Edge{}, false
	}
	for _, e := range t.edges {
		for _, oe := range other.edges {
			if e.Eq(oe) {
				return e, true
			}
		}
	}
	return Edge{}, false
}

// Eq reports whether t and other share the same three vertices. Since both
// are constructed in the same canonical order, this is a plain field
// comparison.
func (t Triangle) Eq(other Triangle) bool {
	return t.A.Eq(other.A) && t.B.Eq(other.B) && t.C.Eq(other.C)
}

// IsAtBorder reports whether at least one of the triangle's edges connects
// two vertices whose indices differ by exactly one. The closing boundary
// edge between the polygon's last vertex and vertex 0 is not recognised,
// since a Triangle does not know the polygon's vertex count.
func (t Triangle) IsAtBorder() bool {
	return adjacentIndex(t.A, t.B) || adjacentIndex(t.A, t.C) || adjacentIndex(t.B, t.C)
}

func adjacentIndex(a, b Vertex) bool {
	if a.Index == nil || b.Index == nil {
		return false
	}
	diff := *a.Index - *b.Index
	return diff == 1 || diff == -1
}

func (t Triangle) String() string {
	return fmt.Sprintf("Triangle(%s, %s, %s)", t.A, t.B, t.C)
}
