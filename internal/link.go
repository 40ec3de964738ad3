package internal

// Link is one edge of the dependency graph. It lives in two intrusive lists
// at once: the source list of its observer and the observer list of its
// source. version records the source's version at the time the edge was last
// linked or validated, which lets the validator detect a changed source
// without recomputing anything.
type Link struct {
	src *Signal
	obs *Computed

	version uint64

	prevSrc *Link
	nextSrc *Link

	prevObs *Link
	nextObs *Link
}

// link records "c reads s". Re-runs of the same computation typically read
// the same sources in the same order, so while c is reconciling we first try
// to reuse the link sitting at the current position of the previous run's
// list; only a diverging read allocates a new edge.
func (c *Computed) link(s *Signal) {
	prev := c.srcTail
	if prev != nil && prev.src == s {
		prev.version = s.version
		return
	}

	var next *Link
	if c.reconciling {
		if prev != nil {
			next = prev.nextSrc
		} else {
			next = c.srcHead
		}

		if next != nil && next.src == s {
			next.version = s.version
			c.srcTail = next
			return
		}
	}

	// non-consecutive duplicate read within the same run
	if tail := s.obsTail; tail != nil && tail.obs == c {
		if !c.reconciling || c.inPrefix(tail) {
			return
		}
	}

	l := &Link{src: s, obs: c, version: s.version, prevSrc: prev, nextSrc: next}

	if prev != nil {
		prev.nextSrc = l
	} else {
		c.srcHead = l
	}
	if next != nil {
		next.prevSrc = l
	}
	c.srcTail = l

	if s.obsTail != nil {
		s.obsTail.nextObs = l
		l.prevObs = s.obsTail
	} else {
		s.obsHead = l
	}
	s.obsTail = l
}

// inPrefix reports whether l sits in the confirmed [srcHead, srcTail] prefix
// of the current run.
func (c *Computed) inPrefix(l *Link) bool {
	if c.srcTail == nil {
		return false
	}

	for cur := c.srcHead; cur != nil; cur = cur.nextSrc {
		if cur == l {
			return true
		}
		if cur == c.srcTail {
			break
		}
	}

	return false
}

// truncateSources drops every link after the confirmed prefix, removing this
// computation from the observer list of each dropped source.
func (c *Computed) truncateSources() {
	var stale *Link
	if c.srcTail != nil {
		stale = c.srcTail.nextSrc
		c.srcTail.nextSrc = nil
	} else {
		stale = c.srcHead
		c.srcHead = nil
	}

	for stale != nil {
		next := stale.nextSrc
		stale.detachFromSource()
		stale.prevSrc = nil
		stale.nextSrc = nil
		stale = next
	}
}

// clearSources unlinks every source edge.
func (c *Computed) clearSources() {
	c.srcTail = nil
	c.truncateSources()
}

// detachFromSource removes l from its source's observer list.
func (l *Link) detachFromSource() {
	if l.nextObs != nil {
		l.nextObs.prevObs = l.prevObs
	} else {
		l.src.obsTail = l.prevObs
	}

	if l.prevObs != nil {
		l.prevObs.nextObs = l.nextObs
	} else {
		l.src.obsHead = l.nextObs
	}

	l.prevObs = nil
	l.nextObs = nil
}

// detachFromObserver removes l from its observer's source list.
func (l *Link) detachFromObserver() {
	if l.nextSrc != nil {
		l.nextSrc.prevSrc = l.prevSrc
	} else {
		l.obs.srcTail = l.prevSrc
	}

	if l.prevSrc != nil {
		l.prevSrc.nextSrc = l.nextSrc
	} else {
		l.obs.srcHead = l.nextSrc
	}

	l.prevSrc = nil
	l.nextSrc = nil
}
