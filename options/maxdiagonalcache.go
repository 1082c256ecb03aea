package options

// WithMaxDiagonalCache returns a [GeometryOptionsFunc] that bounds the number
// of completed Delaunay diagonals a dual-tree-walking engine (such as dtsp)
// keeps memoised across a single shortest-path query.
//
// A pathological polygon can otherwise grow the memoisation table without
// bound across a single query's repeated dual-tree walk. A value of n <= 0
// means unbounded (the default).
func WithMaxDiagonalCache(n int) GeometryOptionsFunc {
	return func(opts *GeometryOptions) {
		if n < 0 {
			n = 0
		}
		opts.MaxDiagonalCache = n
	}
}
