package transition

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/garethgeorge/rangeshift/complexrange"
)

// Engine computes transitions between complex ranges. It holds no state
// between calls and is safe for concurrent use.
type Engine[T complexrange.Element[T]] struct {
	policy ProximityPolicy[T]
	logger *slog.Logger
}

type Option[T complexrange.Element[T]] func(*Engine[T])

// WithPolicy sets the proximity policy. The default is NoMove.
func WithPolicy[T complexrange.Element[T]](p ProximityPolicy[T]) Option[T] {
	return func(e *Engine[T]) {
		e.policy = p
	}
}

// WithMaxMoveDistance allows moves across gaps of at most d.
func WithMaxMoveDistance[T complexrange.Element[T]](d int64) Option[T] {
	return WithPolicy(MaxDistance[T](d))
}

// WithLogger sets the logger receiving debug records about each decision.
func WithLogger[T complexrange.Element[T]](l *slog.Logger) Option[T] {
	return func(e *Engine[T]) {
		e.logger = l
	}
}

func NewEngine[T complexrange.Element[T]](opts ...Option[T]) *Engine[T] {
	e := &Engine[T]{
		policy: NoMove[T](),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// New computes the transition from origin to destination.
func New[T complexrange.Element[T]](origin, destination complexrange.Range[T], opts ...Option[T]) (*Transition[T], error) {
	return NewEngine(opts...).Transition(origin, destination)
}

// side follows one range through its cursor. While ok, the cursor sits on cur.
type side[T complexrange.Element[T]] struct {
	c   complexrange.Cursor[T]
	cur Fragment[T]
	ok  bool
}

func newSide[T complexrange.Element[T]](r complexrange.Range[T]) (*side[T], error) {
	s := &side[T]{c: r.Cursor()}
	return s, s.advance()
}

func (s *side[T]) advance() error {
	if s.ok = s.c.Next(); !s.ok {
		return nil
	}
	var err error
	s.cur, err = s.c.Current()
	return err
}

// extend steps onto the next fragment if it overlaps hull, growing hull.
func (s *side[T]) extend(hull *Fragment[T]) (bool, error) {
	if !s.c.Next() {
		return false, nil
	}
	f, err := s.c.Current()
	if err != nil {
		return false, err
	}
	if !f.Overlaps(*hull) {
		s.c.Prev()
		return false, nil
	}
	*hull = hull.Hull(f)
	return true, nil
}

// orphan is a fragment that overlaps nothing on the other side.
type orphan[T complexrange.Element[T]] struct {
	frag     Fragment[T]
	isOrigin bool
}

type walk[T complexrange.Element[T]] struct {
	*Engine[T]
	groups  []Group[T]
	pending *orphan[T]
}

// Transition computes the transition from origin to destination.
//
// Both ranges are walked in ascending order. Equal fragments are skipped.
// Overlapping fragments grow a cluster over every fragment reachable through
// overlaps; each cluster becomes one group of Join, Transform and Split
// operations. A fragment overlapping nothing on the other side is an orphan:
// it is paired into a Move with the next orphan of the other side when the
// policy allows, and otherwise becomes its own Remove or Insert group.
func (e *Engine[T]) Transition(origin, destination complexrange.Range[T]) (*Transition[T], error) {
	o, err := newSide(origin)
	if err != nil {
		return nil, fmt.Errorf("origin cursor: %w", err)
	}
	d, err := newSide(destination)
	if err != nil {
		return nil, fmt.Errorf("destination cursor: %w", err)
	}

	w := &walk[T]{Engine: e}
	for o.ok && d.ok {
		switch {
		case o.cur == d.cur:
			w.flush()
			err = errors.Join(o.advance(), d.advance())
		case o.cur.Overlaps(d.cur):
			w.flush()
			err = w.cluster(o, d)
		case o.cur.End().Compare(d.cur.Start()) < 0:
			w.orphan(o.cur, true)
			err = o.advance()
		default:
			w.orphan(d.cur, false)
			err = d.advance()
		}
		if err != nil {
			return nil, err
		}
	}
	for ; o.ok && err == nil; err = o.advance() {
		w.orphan(o.cur, true)
	}
	for ; d.ok && err == nil; err = d.advance() {
		w.orphan(d.cur, false)
	}
	if err != nil {
		return nil, err
	}
	w.flush()
	return &Transition[T]{groups: w.groups}, nil
}

func (w *walk[T]) orphan(f Fragment[T], isOrigin bool) {
	if p := w.pending; p != nil && p.isOrigin != isOrigin {
		from, to := p.frag, f
		if !p.isOrigin {
			from, to = f, p.frag
		}
		if w.policy.CanMove(from, to) {
			w.logger.Debug("move", "origin", from.String(), "destination", to.String())
			w.groups = append(w.groups, newGroup[T](Move[T]{Origin: from, Destination: to}))
			w.pending = nil
			return
		}
	}
	w.flush()
	w.pending = &orphan[T]{frag: f, isOrigin: isOrigin}
}

// flush emits the pending orphan as a Remove or Insert group.
func (w *walk[T]) flush() {
	p := w.pending
	if p == nil {
		return
	}
	w.pending = nil
	if p.isOrigin {
		w.logger.Debug("remove", "fragment", p.frag.String())
		w.groups = append(w.groups, newGroup[T](Remove[T]{Fragment: p.frag}))
	} else {
		w.logger.Debug("insert", "fragment", p.frag.String())
		w.groups = append(w.groups, newGroup[T](Insert[T]{Fragment: p.frag}))
	}
}

// cluster consumes the overlapping fragments at o and d, and every fragment
// connected to them through overlaps, into one group.
func (w *walk[T]) cluster(o, d *side[T]) error {
	o.c.Mark()
	d.c.Mark()
	hull := o.cur.Hull(d.cur)
	for grew := true; grew; {
		grew = false
		for {
			ok, err := o.extend(&hull)
			if err != nil {
				return err
			}
			if !ok {
				break
			}
			grew = true
		}
		for {
			ok, err := d.extend(&hull)
			if err != nil {
				return err
			}
			if !ok {
				break
			}
			grew = true
		}
	}

	origins, err := o.c.CaptureSinceMark()
	if err != nil {
		return fmt.Errorf("capture origin cluster: %w", err)
	}
	destinations, err := d.c.CaptureSinceMark()
	if err != nil {
		return fmt.Errorf("capture destination cluster: %w", err)
	}
	ops := clusterOperations(origins, destinations)
	w.logger.Debug("cluster",
		"origins", origins.String(),
		"destinations", destinations.String(),
		"operations", len(ops))
	w.groups = append(w.groups, newGroup(ops...))

	return errors.Join(o.advance(), d.advance())
}

// clusterOperations joins the origins into their span, transforms that span
// into the destinations' span and splits it into the destinations. Steps that
// would not change anything are left out.
func clusterOperations[T complexrange.Element[T]](origins, destinations complexrange.Range[T]) []Operation[T] {
	spanO, _ := origins.Span()
	spanD, _ := destinations.Span()

	var ops []Operation[T]
	if origins.Len() > 1 {
		ops = append(ops, Join[T]{Parts: origins.Fragments(), Destination: spanO})
	}
	if spanO != spanD {
		ops = append(ops, Transform[T]{Origin: spanO, Destination: spanD})
	}
	if destinations.Len() > 1 {
		ops = append(ops, Split[T]{Origin: spanD, Parts: destinations.Fragments()})
	}
	return ops
}
