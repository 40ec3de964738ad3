package pulse

// Selector answers "is this the selected key?" with one boolean signal per
// key. A single watcher on the source flips exactly two of them per change,
// so the cost of a selection change is O(1) no matter how many observers are
// bound.
type Selector[T comparable] struct {
	source  ReadSignal[T]
	keys    map[T]*Signal[bool]
	current T
	has     bool
}

// NewSelector creates a selector over source. The watcher effect is owned by
// the current scope; disposing that scope stops the selector.
func NewSelector[T comparable](source ReadSignal[T]) *Selector[T] {
	s := &Selector[T]{
		source: source,
		keys:   make(map[T]*Signal[bool]),
	}

	NewEffect(func() {
		next := source.Read()
		if s.has && next == s.current {
			return
		}

		if prev, ok := s.keys[s.current]; ok && s.has {
			prev.Write(false)
		}
		if cur, ok := s.keys[next]; ok {
			cur.Write(true)
		}

		s.current = next
		s.has = true
	}, EffectOptions{Name: "selector"})

	return s
}

// Bind returns the membership signal for key, creating it on first use. The
// inner signal is orphaned on purpose: it must survive re-runs of whatever
// scope happens to be active at bind time.
func (s *Selector[T]) Bind(key T) ReadSignal[bool] {
	inner, ok := s.keys[key]
	if !ok {
		inner = Untrack(func() *Signal[bool] {
			return NewSignal(s.has && key == s.current)
		})
		s.keys[key] = inner
	}

	return inner.Readonly()
}
