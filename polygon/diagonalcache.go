package polygon

import "github.com/google/btree"

// DiagonalCache memoises [Polygon.CompleteDelaunayEdge] results for the
// span of a single shortest-path query. CompleteDelaunayEdge is a pure,
// O(n^2) function of the polygon's fixed vertex list and an edge, and a
// dual-tree walk over a degenerate polygon can otherwise recompute the same
// edge's completion repeatedly.
//
// A DiagonalCache is not safe for concurrent use: callers construct one per
// query, the same way an engine constructs a fresh [stats.Stats] per query,
// rather than sharing one across concurrent queries over the same polygon.
type DiagonalCache struct {
	tree  *btree.BTreeG[diagonalCacheEntry]
	order []diagonalKey
	max   int
}

// NewDiagonalCache creates a DiagonalCache holding at most max completed
// diagonals (unbounded if max <= 0), evicting the least recently inserted
// entry once full.
func NewDiagonalCache(max int) *DiagonalCache {
	return &DiagonalCache{
		tree: btree.NewG(32, diagonalCacheLess),
		max:  max,
	}
}

type diagonalKey struct {
	a, b int
}

type diagonalCacheEntry struct {
	key         diagonalKey
	left, right *Vertex
}

func diagonalCacheLess(a, b diagonalCacheEntry) bool {
	if a.key.a != b.key.a {
		return a.key.a < b.key.a
	}
	return a.key.b < b.key.b
}

// diagonalCacheKey canonicalises the unordered edge (a, b) into a lookup
// key, or reports ok=false if either endpoint has no vertex index (such an
// edge is never a Delaunay diagonal and so is never worth memoising).
func diagonalCacheKey(a, b Vertex) (key diagonalKey, ok bool) {
	if a.Index == nil || b.Index == nil {
		return diagonalKey{}, false
	}
	ai, bi := *a.Index, *b.Index
	if ai > bi {
		ai, bi = bi, ai
	}
	return diagonalKey{a: ai, b: bi}, true
}

// get looks up the cached completion of edge (a, b). A nil receiver always
// misses, so callers can pass a nil *DiagonalCache to mean "no caching".
func (c *DiagonalCache) get(a, b Vertex) (left, right *Vertex, ok bool) {
	if c == nil {
		return nil, nil, false
	}
	key, cacheable := diagonalCacheKey(a, b)
	if !cacheable {
		return nil, nil, false
	}
	entry, found := c.tree.Get(diagonalCacheEntry{key: key})
	if !found {
		return nil, nil, false
	}
	return entry.left, entry.right, true
}

func (c *DiagonalCache) put(a, b Vertex, left, right *Vertex) {
	if c == nil {
		return
	}
	key, cacheable := diagonalCacheKey(a, b)
	if !cacheable {
		return
	}
	if _, found := c.tree.Get(diagonalCacheEntry{key: key}); found {
		return
	}
	if c.max > 0 && len(c.order) >= c.max {
		oldest := c.order[0]
		c.order = c.order[1:]
		c.tree.Delete(diagonalCacheEntry{key: oldest})
	}
	c.tree.ReplaceOrInsert(diagonalCacheEntry{key: key, left: left, right: right})
	c.order = append(c.order, key)
}
