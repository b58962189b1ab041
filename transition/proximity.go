package transition

import "github.com/garethgeorge/rangeshift/complexrange"

// ProximityPolicy decides whether a pair of non-overlapping origin and
// destination fragments is close enough to be expressed as a Move instead of
// a Remove and an Insert. Policies must be symmetric and stateless.
type ProximityPolicy[T complexrange.Element[T]] interface {
	CanMove(origin, destination Fragment[T]) bool
}

// PolicyFunc adapts a function to a ProximityPolicy.
type PolicyFunc[T complexrange.Element[T]] func(origin, destination Fragment[T]) bool

func (f PolicyFunc[T]) CanMove(origin, destination Fragment[T]) bool {
	return f(origin, destination)
}

type noMove[T complexrange.Element[T]] struct{}

func (noMove[T]) CanMove(Fragment[T], Fragment[T]) bool { return false }

// NoMove never allows a Move.
func NoMove[T complexrange.Element[T]]() ProximityPolicy[T] {
	return noMove[T]{}
}

type maxDistance[T complexrange.Element[T]] struct {
	max int64
}

func (p maxDistance[T]) CanMove(origin, destination Fragment[T]) bool {
	gap, ok := Gap(origin, destination)
	return ok && gap <= p.max
}

// MaxDistance allows a Move when the gap between the fragments is at most max.
// Domains without a distance metric never move.
func MaxDistance[T complexrange.Element[T]](max int64) ProximityPolicy[T] {
	return maxDistance[T]{max: max}
}

// Gap returns the distance from the end of the earlier fragment to the start
// of the later one; 0 when they overlap. It reports false when T has no
// distance metric.
func Gap[T complexrange.Element[T]](a, b Fragment[T]) (int64, bool) {
	switch {
	case a.Overlaps(b):
		if _, ok := complexrange.Distance(a.Start(), b.Start()); !ok {
			return 0, false
		}
		return 0, true
	case a.End().Compare(b.Start()) < 0:
		return complexrange.Distance(a.End(), b.Start())
	default:
		return complexrange.Distance(b.End(), a.Start())
	}
}
