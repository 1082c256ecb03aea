// Package geopath computes geodesic shortest paths between two points inside a
// simple polygon.
//
// A geodesic shortest path is the shortest polygonal chain connecting two points
// that stays entirely within the polygon's interior — it may bend around reflex
// vertices but never crosses an edge. geopath ships four independent engines that
// all solve this problem, trading preprocessing cost, working space, and
// asymptotic running time against one another:
//
//   - [github.com/geopath/geopath/dtsp]: walks the dual tree of the polygon's
//     constrained Delaunay triangulation, completing each triangle on demand during
//     the query, and uses a funnel to track the shrinking visibility cone as it
//     crosses diagonals.
//   - [github.com/geopath/geopath/lpsp]: preprocesses the polygon into a triangle
//     strip from source triangle to target triangle and applies the classic
//     linear-space funnel algorithm to the strip.
//   - [github.com/geopath/geopath/trsp]: walks the polygon's trapezoidal
//     decomposition, locating each trapezoid and its neighbours on demand during
//     the query, without ever building an explicit triangulation.
//   - [github.com/geopath/geopath/mssp]: uses no preprocessing at all. It advances a
//     constant-size (p, q1, q2) triple one polygon vertex at a time, trading
//     asymptotic speed for O(1) additional working space beyond the polygon itself.
//
// # Coordinate system
//
// geopath assumes a standard right-handed Cartesian coordinate system (x increases
// right, y increases up) and that polygons are given with their vertices listed in
// counterclockwise order. Passing a clockwise polygon silently inverts the meaning
// of "left" and "right" throughout the library.
//
// # Precision
//
// All coordinates are float64. geopath's geometric predicates (see the point,
// segment, and polygon packages) compare against a single package-level epsilon,
// read with [GetEpsilon] and changed with [SetEpsilon]. The default, [DefaultEpsilon],
// matches the tolerance used throughout computational-geometry literature for
// screen- and map-scale coordinates; callers working at very different scales
// should call [SetEpsilon] once at startup rather than per call.
//
// # Errors
//
// Operations that depend on inputs being in "general position" — no three polygon
// vertices collinear, no two vertices sharing an x-coordinate, a query point not
// falling exactly on an edge — return one of the [GeometryError] implementations
// documented on that interface rather than panicking.
package geopath

import (
	"math"
	"sync/atomic"
)

// DefaultEpsilon is the tolerance used by geopath's geometric predicates (point
// equality, the turn predicate, trapezoid boundary membership, ...) before
// [SetEpsilon] is ever called.
const DefaultEpsilon = 1e-6

// epsilonBits stores the current epsilon as the bit pattern of a float64 so it can
// be read and written atomically; geopath's predicates run concurrently across
// goroutines sharing a single polygon.
var epsilonBits atomic.Uint64

func init() {
	SetEpsilon(DefaultEpsilon)
}

// GetEpsilon returns the tolerance currently used by geopath's floating-point
// comparisons.
func GetEpsilon() float64 {
	return math.Float64frombits(epsilonBits.Load())
}

// SetEpsilon changes the tolerance used by geopath's floating-point comparisons
// for the remainder of the process's lifetime. Negative values are clamped to
// zero, matching [github.com/geopath/geopath/options.WithEpsilon]'s behavior for
// a single option.
//
// SetEpsilon is intended to be called once during program startup, not
// interleaved with queries against a shared [github.com/geopath/geopath/polygon.Polygon]:
// changing epsilon mid-query can make a trapezoidation or visibility computation
// observe inconsistent tolerances across its own sub-calls.
func SetEpsilon(epsilon float64) {
	if epsilon < 0 {
		epsilon = 0
	}
	epsilonBits.Store(math.Float64bits(epsilon))
}
