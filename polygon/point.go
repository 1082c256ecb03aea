// Package polygon defines the Polygon type: a simple polygon's vertex
// topology, its visibility queries, its trapezoidal decomposition, and its
// constrained Delaunay triangulation. These are the shared primitives every
// geopath shortest-path engine builds on.
package polygon

import (
	"fmt"

	"github.com/geopath/geopath/point"
)

// Vertex is a point tagged with the index of the polygon vertex it
// represents. Two Vertex values compare equal by coordinates alone when
// either one carries no index; otherwise they must also share an index.
//
// The zero value has no index (Index is nil) and compares as a plain point.
type Vertex struct {
	point.Point
	Index *int
}

// NewVertex tags p with vertex index i.
func NewVertex(p point.Point, i int) Vertex {
	return Vertex{Point: p, Index: &i}
}

// Eq reports whether v and other refer to the same polygon vertex: equal
// coordinates, and, if both carry an index, equal indices.
func (v Vertex) Eq(other Vertex) bool {
	if !v.Point.Eq(other.Point) {
		return false
	}
	if v.Index == nil || other.Index == nil {
		return true
	}
	return *v.Index == *other.Index
}

// EqPoint reports whether v refers to the plain point p: true when the
// coordinates match and v carries no index.
func (v Vertex) EqPoint(p point.Point) bool {
	return v.Index == nil && v.Point.Eq(p)
}

func (v Vertex) String() string {
	if v.Index == nil {
		return fmt.Sprintf("Vertex(%s, nil)", v.Point)
	}
	return fmt.Sprintf("Vertex(%s, %d)", v.Point, *v.Index)
}

// EdgePoint is a point tagged with the index of the polygon edge it lies on
// (the edge running from vertex Index to vertex Index+1). Unlike [Vertex],
// whose index names the vertex the point itself represents, an EdgePoint's
// index names the edge the point was found to lie on — which matters when
// walking to a neighbouring vertex: [Polygon.Pred] of an EdgePoint is the
// edge's start vertex, not "the vertex before the point".
type EdgePoint struct {
	point.Point
	Index *int
}

// NewEdgePoint tags p as lying on the edge starting at vertex index i.
func NewEdgePoint(p point.Point, i int) EdgePoint {
	return EdgePoint{Point: p, Index: &i}
}

// Eq reports whether e and other refer to the same edge point.
func (e EdgePoint) Eq(other EdgePoint) bool {
	if !e.Point.Eq(other.Point) {
		return false
	}
	if e.Index == nil || other.Index == nil {
		return true
	}
	return *e.Index == *other.Index
}

func (e EdgePoint) String() string {
	if e.Index == nil {
		return fmt.Sprintf("EdgePoint(%s, nil)", e.Point)
	}
	return fmt.Sprintf("EdgePoint(%s, %d)", e.Point, *e.Index)
}

// IntersectionPoint is a [Vertex] additionally tagged with the index of the
// polygon edge it was computed to lie on, used by trapezoid boundary
// construction to remember both "which vertex does this coincide with, if
// any" and "which edge produced it".
type IntersectionPoint struct {
	Vertex
	Edge *int
}

// NewIntersectionPoint creates an IntersectionPoint at p. vertexIndex and
// edgeIndex may each be nil.
func NewIntersectionPoint(p point.Point, vertexIndex, edgeIndex *int) IntersectionPoint {
	return IntersectionPoint{Vertex: Vertex{Point: p, Index: vertexIndex}, Edge: edgeIndex}
}

func (ip IntersectionPoint) String() string {
	edge := "nil"
	if ip.Edge != nil {
		edge = fmt.Sprintf("%d", *ip.Edge)
	}
	return fmt.Sprintf("IntersectionPoint(%s, edge=%s)", ip.Vertex, edge)
}
