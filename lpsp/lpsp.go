// Package lpsp computes the geodesic shortest path between two points in a
// simple polygon by walking the unique tree path between the two points'
// triangles of the polygon's constrained Delaunay triangulation and
// maintaining a double-ended funnel across the diagonals crossed. The
// triangles are completed on demand from the polygon during the query; a
// triangulation computed elsewhere cannot be passed in.
//
// Lee, D. T., and F. P. Preparata, "Euclidean Shortest Paths in the
// Presence of Rectilinear Barriers", Networks 14(3), 1984.
package lpsp

import (
	"errors"
	"iter"

	"github.com/geopath/geopath/options"
	"github.com/geopath/geopath/point"
	"github.com/geopath/geopath/polygon"
	"github.com/geopath/geopath/stats"
)

// ShortestPath returns the geodesic shortest path from s to t inside p as a
// lazy sequence of points, s first and t last, together with a Stats value
// that accumulates as the sequence is consumed.
//
// If s or t lies outside p, the sequence is empty. p must be in general
// position; this is not reverified here.
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

	diagonals, err := diagonalsToTarget(p, sTriangle, tTriangle, cache)
	if err != nil || len(diagonals) == 0 {
		return
	}
	// Append one final "diagonal" from one end-point of the last real
	// diagonal to t, so the funnel walk below naturally ends by visiting t.
	diagonals = append(diagonals, diagonal{diagonals[len(diagonals)-1].a, t})

	cusp := s
	funnel := []point.Point{diagonals[0].a, cusp, diagonals[0].b}
	if point.Turn(s, diagonals[0].a, diagonals[0].b) == point.Counterclockwise {
		reversePoints(funnel)
	}

	for _, d := range diagonals[1:] {
		st.AddIteration()
		left, right := d.a, d.b

		// Every new diagonal shares exactly one endpoint with the current
		// funnel; if it is the "wrong" one, swap left/right.
		if funnel[0].Eq(right) || funnel[len(funnel)-1].Eq(left) {
			left, right = right, left
		}

		if left.Eq(funnel[0]) {
			for !funnel[len(funnel)-1].Eq(cusp) &&
				point.Turn(funnel[len(funnel)-2], funnel[len(funnel)-1], right) == point.Counterclockwise {
				funnel = funnel[:len(funnel)-1]
			}
			if funnel[len(funnel)-1].Eq(cusp) {
				for len(funnel) > 1 &&
					point.Turn(funnel[len(funnel)-1], funnel[len(funnel)-2], right) == point.Counterclockwise {
					popped := funnel[len(funnel)-1]
					funnel = funnel[:len(funnel)-1]
					if !yield(popped) {
						return
					}
				}
				cusp = funnel[len(funnel)-1]
			}
			funnel = append(funnel, right)
		} else {
			for !funnel[0].Eq(cusp) &&
				point.Turn(funnel[1], funnel[0], left) == point.Clockwise {
				funnel = funnel[1:]
			}
			if funnel[0].Eq(cusp) {
				for len(funnel) > 1 &&
					point.Turn(funnel[0], funnel[1], left) == point.Clockwise {
					popped := funnel[0]
					funnel = funnel[1:]
					if !yield(popped) {
						return
					}
				}
				cusp = funnel[0]
			}
			funnel = append([]point.Point{left}, funnel...)
		}
	}

	switch {
	case funnel[0].Eq(t):
		for !funnel[len(funnel)-1].Eq(cusp) {
			funnel = funnel[:len(funnel)-1]
		}
		for len(funnel) > 0 {
			popped := funnel[len(funnel)-1]
			funnel = funnel[:len(funnel)-1]
			if !yield(popped) {
				return
			}
		}
	case funnel[len(funnel)-1].Eq(t):
		for !funnel[0].Eq(cusp) {
			funnel = funnel[1:]
		}
		for len(funnel) > 0 {
			popped := funnel[0]
			funnel = funnel[1:]
			if !yield(popped) {
				return
			}
		}
	default:
		if !yield(cusp) {
			return
		}
		yield(t)
	}
}

func reversePoints(ps []point.Point) {
	for i, j := 0, len(ps)-1; i < j; i, j = i+1, j-1 {
		ps[i], ps[j] = ps[j], ps[i]
	}
}

// diagonal is a pair of points forming a diagonal of the triangulation's
// dual tree; unlike [polygon.Edge], its endpoints need not be tagged
// polygon vertices, since the final synthetic "diagonal" this package
// appends runs to an arbitrary query point t.
type diagonal struct {
	a, b point.Point
}

var errSubtreeNotFound = errors.New("lpsp: t's triangle is not reachable from s's triangle in the dual tree")

// diagonalsToTarget returns, in crossing order, the diagonals the shortest
// path crosses walking the dual tree from sTriangle to tTriangle.
func diagonalsToTarget(p *polygon.Polygon, sTriangle, tTriangle polygon.Triangle, cache *polygon.DiagonalCache) ([]diagonal, error) {
	var recurse func(triangle polygon.Triangle, predecessor *polygon.Triangle) ([]diagonal, bool, error)
	recurse = func(triangle polygon.Triangle, predecessor *polygon.Triangle) ([]diagonal, bool, error) {
		neighbours, err := triangleNeighbours(p, triangle, cache)
		if err != nil {
			return nil, false, err
		}

		for _, neighbour := range neighbours {
			if neighbour.Eq(tTriangle) {
				edge, ok := triangle.CommonEdge(neighbour)
				if !ok {
					continue
				}
				return []diagonal{{edge.A.Point, edge.B.Point}}, true, nil
			}
			if predecessor != nil && neighbour.Eq(*predecessor) {
				continue
			}

			result, found, err := recurse(neighbour, &triangle)
			if err != nil {
				return nil, false, err
			}
			if found {
				edge, ok := triangle.CommonEdge(neighbour)
				if !ok {
					continue
				}
				result = append(result, diagonal{edge.A.Point, edge.B.Point})
				return result, true, nil
			}
		}

		return nil, false, nil
	}

	result, found, err := recurse(sTriangle, nil)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errSubtreeNotFound
	}

	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	return result, nil
}

// triangleNeighbours returns every Delaunay triangle neighbouring t, in the
// cyclic order [Polygon.DelaunayFirstNeighbour]/[Polygon.DelaunayNextNeighbour]
// visit them.
func triangleNeighbours(p *polygon.Polygon, t polygon.Triangle, cache *polygon.DiagonalCache) ([]polygon.Triangle, error) {
	n := p.DelaunayNeighbourNumber(t)
	if n == 0 {
		return nil, nil
	}

	first, ok, err := p.DelaunayFirstNeighbour(t, cache)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	result := make([]polygon.Triangle, 0, n)
	result = append(result, first)
	current := first
	for len(result) < n {
		next, ok, err := p.DelaunayNextNeighbour(t, current, cache)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		result = append(result, next)
		current = next
	}
	return result, nil
}
