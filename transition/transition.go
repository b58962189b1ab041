package transition

import (
	"context"
	"fmt"
	"strings"

	"github.com/garethgeorge/rangeshift/complexrange"
	"golang.org/x/sync/errgroup"
)

// Transition is the set of independent groups turning one complex range into
// another.
type Transition[T complexrange.Element[T]] struct {
	groups []Group[T]
}

func (t *Transition[T]) Groups() []Group[T] {
	return append([]Group[T](nil), t.groups...)
}

// IsEmpty reports whether origin and destination were equal.
func (t *Transition[T]) IsEmpty() bool {
	return len(t.groups) == 0
}

// EfficiencyLevel sums the cost of every operation. Lower is cheaper.
func (t *Transition[T]) EfficiencyLevel() int64 {
	var n int64
	for _, g := range t.groups {
		n += g.Cost()
	}
	return n
}

// Reversed returns the transition from the destination back to the origin.
func (t *Transition[T]) Reversed() *Transition[T] {
	groups := make([]Group[T], len(t.groups))
	for i, g := range t.groups {
		groups[i] = g.Reversed()
	}
	return &Transition[T]{groups: groups}
}

// Equal reports whether both transitions hold the same groups, in any order.
func (t *Transition[T]) Equal(other *Transition[T]) bool {
	return sameElements(t.groups, other.groups, Group[T].Equal)
}

// Apply replays the transition on origin and returns the result. Applied to
// the origin it was computed from, it yields the destination.
func (t *Transition[T]) Apply(origin complexrange.Range[T]) (complexrange.Range[T], error) {
	ed := origin.Modify()
	for i, g := range t.groups {
		if err := g.apply(ed); err != nil {
			return nil, fmt.Errorf("apply group %d %v: %w", i, g, err)
		}
	}
	return ed.Range(), nil
}

// Visit calls fn once per group with at most limit calls running at once; a
// limit <= 0 means no limit. The first error cancels the context passed to the
// remaining calls and is returned.
func (t *Transition[T]) Visit(ctx context.Context, limit int, fn func(context.Context, Group[T]) error) error {
	eg, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}
	for _, g := range t.groups {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(ctx, g)
		})
	}
	return eg.Wait()
}

func (t *Transition[T]) String() string {
	parts := make([]string, len(t.groups))
	for i, g := range t.groups {
		parts[i] = g.String()
	}
	return strings.Join(parts, " ")
}
