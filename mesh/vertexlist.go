package mesh

// VertexList is an intrusive doubly linked list of Vertex nodes. It backs
// the builder's claimed and unclaimed bookkeeping (§4.2): claimed groups
// outside vertices into contiguous per-face runs, unclaimed is a flat bag
// of orphans awaiting reassignment.
//
// Remove leaves the unlinked node's own Prev/Next dangling; callers that
// iterate while mutating must cache next before calling it.
type VertexList struct {
	head, tail *Vertex
}

// First returns the head of the list, or nil if empty.
func (l *VertexList) First() *Vertex {
	return l.head
}

// IsEmpty reports whether the list has no vertices.
func (l *VertexList) IsEmpty() bool {
	return l.head == nil
}

// Clear detaches the list from its nodes without touching the nodes
// themselves.
func (l *VertexList) Clear() {
	l.head = nil
	l.tail = nil
}

// Add appends v at the tail of the list.
func (l *VertexList) Add(v *Vertex) {
	if l.head == nil {
		l.head = v
		v.Prev = nil
	} else {
		l.tail.Next = v
		v.Prev = l.tail
	}
	v.Next = nil
	l.tail = v
}

// InsertBefore splices v immediately before ref, which must already be a
// member of this list.
func (l *VertexList) InsertBefore(ref, v *Vertex) {
	v.Prev = ref.Prev
	v.Next = ref
	if ref.Prev == nil {
		l.head = v
	} else {
		ref.Prev.Next = v
	}
	ref.Prev = v
}

// Remove unlinks v. v.Prev and v.Next are left as-is; capture v.Next first
// if you need to keep iterating.
func (l *VertexList) Remove(v *Vertex) {
	if v.Prev == nil {
		l.head = v.Next
	} else {
		v.Prev.Next = v.Next
	}
	if v.Next == nil {
		l.tail = v.Prev
	} else {
		v.Next.Prev = v.Prev
	}
}

// RemoveChain unlinks the contiguous run from head through tail inclusive
// and leaves it as a standalone chain starting at head (head.Prev == nil,
// tail.Next == nil).
func (l *VertexList) RemoveChain(head, tail *Vertex) {
	if head.Prev == nil {
		l.head = tail.Next
	} else {
		head.Prev.Next = tail.Next
	}
	if tail.Next == nil {
		l.tail = head.Prev
	} else {
		tail.Next.Prev = head.Prev
	}
	head.Prev = nil
	tail.Next = nil
}

// AddAll absorbs a standalone chain (as produced by RemoveChain) at the
// tail of this list.
func (l *VertexList) AddAll(head *Vertex) {
	if head == nil {
		return
	}
	if l.head == nil {
		l.head = head
		head.Prev = nil
	} else {
		l.tail.Next = head
		head.Prev = l.tail
	}
	tail := head
	for tail.Next != nil {
		tail = tail.Next
	}
	l.tail = tail
}
