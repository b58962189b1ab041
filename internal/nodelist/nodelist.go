// Package nodelist implements a doubly linked list whose nodes live in a single
// arena slice and are addressed by stable integer handles.
package nodelist

import "iter"

// Nil is the handle of no node.
const Nil = -1

type node[V any] struct {
	value V
	prev  int
	next  int
}

// List is a doubly linked list backed by an arena. Removed nodes are recycled
// through a free chain, so handles stay valid until their node is removed.
// The zero value is not usable; use New.
type List[V any] struct {
	nodes []node[V]
	head  int
	tail  int
	free  int // first recycled node, chained through next
	n     int
}

func New[V any](capacity int) *List[V] {
	return &List[V]{
		nodes: make([]node[V], 0, capacity),
		head:  Nil,
		tail:  Nil,
		free:  Nil,
	}
}

// Clone returns a deep copy. Handles of the original are valid in the copy.
func (l *List[V]) Clone() *List[V] {
	c := *l
	c.nodes = append([]node[V](nil), l.nodes...)
	return &c
}

func (l *List[V]) Len() int {
	return l.n
}

func (l *List[V]) Front() int {
	return l.head
}

func (l *List[V]) Back() int {
	return l.tail
}

func (l *List[V]) Next(h int) int {
	return l.nodes[h].next
}

func (l *List[V]) Prev(h int) int {
	return l.nodes[h].prev
}

func (l *List[V]) Get(h int) V {
	return l.nodes[h].value
}

func (l *List[V]) Set(h int, v V) {
	l.nodes[h].value = v
}

func (l *List[V]) alloc(v V) int {
	if l.free != Nil {
		h := l.free
		l.free = l.nodes[h].next
		l.nodes[h] = node[V]{value: v, prev: Nil, next: Nil}
		return h
	}
	l.nodes = append(l.nodes, node[V]{value: v, prev: Nil, next: Nil})
	return len(l.nodes) - 1
}

// PushBack appends v and returns its handle.
func (l *List[V]) PushBack(v V) int {
	h := l.alloc(v)
	l.nodes[h].prev = l.tail
	if l.tail != Nil {
		l.nodes[l.tail].next = h
	} else {
		l.head = h
	}
	l.tail = h
	l.n++
	return h
}

// InsertBefore inserts v before the node at mark and returns the new handle.
// A Nil mark appends.
func (l *List[V]) InsertBefore(mark int, v V) int {
	if mark == Nil {
		return l.PushBack(v)
	}
	h := l.alloc(v)
	prev := l.nodes[mark].prev
	l.nodes[h].prev = prev
	l.nodes[h].next = mark
	l.nodes[mark].prev = h
	if prev != Nil {
		l.nodes[prev].next = h
	} else {
		l.head = h
	}
	l.n++
	return h
}

// InsertAfter inserts v after the node at mark and returns the new handle.
func (l *List[V]) InsertAfter(mark int, v V) int {
	next := l.nodes[mark].next
	if next == Nil {
		return l.PushBack(v)
	}
	return l.InsertBefore(next, v)
}

// Remove unlinks the node at h and returns the handle that followed it.
func (l *List[V]) Remove(h int) int {
	nd := l.nodes[h]
	if nd.prev != Nil {
		l.nodes[nd.prev].next = nd.next
	} else {
		l.head = nd.next
	}
	if nd.next != Nil {
		l.nodes[nd.next].prev = nd.prev
	} else {
		l.tail = nd.prev
	}
	var zero V
	l.nodes[h] = node[V]{value: zero, prev: Nil, next: l.free}
	l.free = h
	l.n--
	return nd.next
}

// All iterates handles and values front to back.
func (l *List[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for h := l.head; h != Nil; h = l.nodes[h].next {
			if !yield(h, l.nodes[h].value) {
				return
			}
		}
	}
}
