package complexrange

// none is the position past either end of a sequence.
const none = -1

// sequence is the ordered fragment storage the include/exclude algorithms run
// against. Positions are opaque handles; none marks the end.
type sequence[T Element[T]] interface {
	Front() int
	Next(p int) int
	Get(p int) Fragment[T]
	Set(p int, f Fragment[T])
	InsertBefore(p int, f Fragment[T]) int
	Remove(p int) int
}

// include adds f to s, uniting it with every fragment it overlaps or touches.
func include[T Element[T]](s sequence[T], f Fragment[T]) {
	p := s.Front()
	for ; p != none; p = s.Next(p) {
		cur := s.Get(p)
		if cur == f {
			return
		}
		if united, ok := cur.Unite(f); ok {
			// Swallow the run of following fragments the union reaches.
			q := s.Next(p)
			for q != none {
				next, ok := united.Unite(s.Get(q))
				if !ok {
					break
				}
				united = next
				q = s.Remove(q)
			}
			s.Set(p, united)
			return
		}
		if f.end.Compare(cur.start) < 0 {
			break
		}
	}
	s.InsertBefore(p, f)
}

// exclude removes every element of f from s, trimming or splitting the
// fragments it overlaps.
func exclude[T Element[T]](s sequence[T], f Fragment[T]) {
	first, affected := none, 0
	for p := s.Front(); p != none; p = s.Next(p) {
		cur := s.Get(p)
		if f.end.Compare(cur.start) < 0 {
			break
		}
		if cur.Overlaps(f) {
			if first == none {
				first = p
			}
			affected++
		}
	}
	switch affected {
	case 0:
		return
	case 1:
		excludeFromOne(s, first, f)
		return
	}

	// No position is kept across a removal.
	p := first
	if firstAffected := s.Get(p); f.start.Compare(firstAffected.start) <= 0 {
		p = s.Remove(p)
	} else {
		s.Set(p, Fragment[T]{start: firstAffected.start, end: f.start.Prev()})
		p = s.Next(p)
	}
	for affected--; affected > 0; affected-- {
		cur := s.Get(p)
		if f.end.Compare(cur.end) < 0 {
			s.Set(p, Fragment[T]{start: f.end.Next(), end: cur.end})
			return
		}
		p = s.Remove(p)
	}
}

func excludeFromOne[T Element[T]](s sequence[T], p int, f Fragment[T]) {
	affected := s.Get(p)
	switch {
	case f.ContainsCompletely(affected):
		s.Remove(p)
	case affected.ContainsExclusive(f):
		s.Set(p, Fragment[T]{start: f.end.Next(), end: affected.end})
		s.InsertBefore(p, Fragment[T]{start: affected.start, end: f.start.Prev()})
	case affected.LeftContains(f):
		s.Set(p, Fragment[T]{start: f.end.Next(), end: affected.end})
	case affected.RightContains(f):
		s.Set(p, Fragment[T]{start: affected.start, end: f.start.Prev()})
	default:
		panic("exclude: fragment " + f.String() + " does not overlap " + affected.String())
	}
}
