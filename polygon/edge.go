package polygon

import (
	"fmt"

	"github.com/geopath/geopath/point"
	"github.com/geopath/geopath/segment"
)

// Edge is a directed line between two tagged polygon vertices, except for
// equality: two edges compare equal regardless of which endpoint is A and
// which is B, since a polygon boundary and a diagonal mean the same thing
// traversed in either direction.
type Edge struct {
	A, B Vertex
}

// NewEdge creates an Edge from a to b.
func NewEdge(a, b Vertex) Edge {
	return Edge{A: a, B: b}
}

// Eq reports whether e and other connect the same two vertices, in either
// order.
func (e Edge) Eq(other Edge) bool {
	return (e.A.Eq(other.A) && e.B.Eq(other.B)) || (e.A.Eq(other.B) && e.B.Eq(other.A))
}

// ProperlyIntersects reports whether e properly crosses other: both edges'
// endpoints strictly straddle the other's supporting line.
func (e Edge) ProperlyIntersects(other Edge) bool {
	return segment.ProperlyIntersects(e.A.Point, e.B.Point, other.A.Point, other.B.Point)
}

// Turn returns the turn predicate of the edge's two endpoints together with
// p, i.e. point.Turn(e.A, e.B, p).
func (e Edge) Turn(p point.Point) point.OrientationType {
	return point.Turn(e.A.Point, e.B.Point, p)
}

func (e Edge) String() string {
	return fmt.Sprintf("Edge(%s, %s)", e.A, e.B)
}
