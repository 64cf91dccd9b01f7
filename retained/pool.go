package retained

import "sync"

// ============================================================================
// Node Slice Pooling
// ============================================================================
//
// Routing one cursor move flattens the hit path into a slice and builds the
// new over-set. Both are scratch space reused across moves. Slices are pooled
// by pointer so Put does not box a slice header.
//
//   buf := acquireNodeSlice(n)
//   *buf = append(*buf, node)
//   releaseNodeSlice(buf)

var nodeSlicePool = sync.Pool{
	New: func() any {
		s := make([]Node, 0, 16)
		return &s
	},
}

// acquireNodeSlice returns an empty slice with capacity for at least n nodes.
// Caller must call releaseNodeSlice when done.
func acquireNodeSlice(n int) *[]Node {
	p := nodeSlicePool.Get().(*[]Node)
	if cap(*p) < n {
		*p = make([]Node, 0, n*2)
	}
	*p = (*p)[:0]
	return p
}

// releaseNodeSlice returns p to the pool. *p must not be used afterwards.
func releaseNodeSlice(p *[]Node) {
	if p == nil {
		return
	}
	clear((*p)[:cap(*p)])
	if cap(*p) > 256 {
		return
	}
	*p = (*p)[:0]
	nodeSlicePool.Put(p)
}

// ============================================================================
// Node Set Pooling
// ============================================================================

var nodeSetPool = sync.Pool{
	New: func() any {
		return make(map[Node]struct{}, 32)
	},
}

// acquireNodeSet returns an empty set.
func acquireNodeSet() map[Node]struct{} {
	return nodeSetPool.Get().(map[Node]struct{})
}

// releaseNodeSet clears m and returns it to the pool.
func releaseNodeSet(m map[Node]struct{}) {
	if m == nil {
		return
	}
	clear(m)
	nodeSetPool.Put(m)
}
