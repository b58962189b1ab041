package transition

import (
	"strings"

	"github.com/garethgeorge/rangeshift/complexrange"
)

// Group is a set of mutually dependent operations over one connected cluster
// of origin and destination fragments. No fragment belongs to two groups, so
// groups can be applied in any order. Within a group the operations are kept
// in the order that replays them.
type Group[T complexrange.Element[T]] struct {
	ops []Operation[T]
}

func newGroup[T complexrange.Element[T]](ops ...Operation[T]) Group[T] {
	return Group[T]{ops: ops}
}

func (g Group[T]) Operations() []Operation[T] {
	return append([]Operation[T](nil), g.ops...)
}

func (g Group[T]) Len() int {
	return len(g.ops)
}

func (g Group[T]) Cost() int64 {
	var n int64
	for _, op := range g.ops {
		n += op.Cost()
	}
	return n
}

// Reversed returns the group that undoes g: every operation inverted, in
// reverse order.
func (g Group[T]) Reversed() Group[T] {
	ops := make([]Operation[T], len(g.ops))
	for i, op := range g.ops {
		ops[len(ops)-1-i] = op.Inverse()
	}
	return Group[T]{ops: ops}
}

// Equal reports whether both groups hold the same operations, in any order.
func (g Group[T]) Equal(other Group[T]) bool {
	return sameElements(g.ops, other.ops, EqualOperations[T])
}

func (g Group[T]) apply(ed complexrange.Editor[T]) error {
	for _, op := range g.ops {
		if err := op.apply(ed); err != nil {
			return err
		}
	}
	return nil
}

func (g Group[T]) String() string {
	parts := make([]string, len(g.ops))
	for i, op := range g.ops {
		parts[i] = op.String()
	}
	return "{" + strings.Join(parts, "; ") + "}"
}

// sameElements compares two slices as multisets.
func sameElements[E any](a, b []E, eq func(E, E) bool) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
outer:
	for _, x := range a {
		for j, y := range b {
			if !used[j] && eq(x, y) {
				used[j] = true
				continue outer
			}
		}
		return false
	}
	return true
}
