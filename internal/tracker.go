package internal

import (
	"strings"
	"sync"
)

// Tracker holds the runtime's current-reader and current-scope slots. All
// mutation goes through the save/restore pattern of the Run* methods.
type Tracker struct {
	mu sync.RWMutex

	tracking bool

	executingGID  int64     // to prevent cross-goroutine tracking issues
	currentOwner  *Owner    // for lifecycle/cleanup tracking
	currentReader *Computed // for reactive dependency tracking

	readerStack []*Computed
}

func NewTracker() *Tracker {
	return &Tracker{
		tracking: true,
	}
}

func (t *Tracker) CurrentOwner() *Owner {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.currentOwner
}

func (t *Tracker) CurrentReader() *Computed {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.currentReader
}

func (t *Tracker) RunWithOwner(owner *Owner, fn func()) {
	t.mu.Lock()
	prev := t.currentOwner
	t.currentOwner = owner
	t.executingGID = getGID()
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.currentOwner = prev
		t.mu.Unlock()
	}()

	fn()
}

func (t *Tracker) RunWithComputation(node *Computed, fn func()) {
	t.mu.Lock()
	prevOwner := t.currentOwner
	prevReader := t.currentReader

	t.currentOwner = node.Owner
	t.currentReader = node
	t.readerStack = append(t.readerStack, node)

	t.executingGID = getGID()
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.currentOwner = prevOwner
		t.currentReader = prevReader
		t.readerStack = t.readerStack[:len(t.readerStack)-1]
		t.mu.Unlock()
	}()

	fn()
}

// RunPeeked clears the reader slot for the duration of fn: reads inside do
// not create edges, but the scope is preserved so cleanups and error handlers
// still attach.
func (t *Tracker) RunPeeked(fn func()) {
	t.mu.Lock()
	prev := t.currentReader
	t.currentReader = nil
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.currentReader = prev
		t.mu.Unlock()
	}()

	fn()
}

// RunUntracked clears both the reader and the scope for the duration of fn.
func (t *Tracker) RunUntracked(fn func()) {
	t.mu.Lock()
	prevOwner := t.currentOwner
	prevReader := t.currentReader
	t.currentOwner = nil
	t.currentReader = nil
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.currentOwner = prevOwner
		t.currentReader = prevReader
		t.mu.Unlock()
	}()

	fn()
}

// Track records an edge from the current reader to node, if a reader is
// running on this goroutine.
func (t *Tracker) Track(node *Signal) {
	t.mu.RLock()
	reader := t.currentReader
	shouldTrack := t.shouldTrack()
	t.mu.RUnlock()

	if shouldTrack && node.state != StateDisposed {
		reader.link(node)
	}
}

func (t *Tracker) shouldTrack() bool {
	// make sure we're currently in the same goroutine as the computation
	// to avoid cross-goroutine tracking issues
	return t.currentReader != nil && t.tracking && getGID() == t.executingGID
}

// chain renders the reader stack for cycle reports, ending at node.
func (t *Tracker) chain(node *Computed) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var names []string
	for _, c := range t.readerStack {
		names = append(names, c.name)
	}
	names = append(names, node.name)

	return strings.Join(names, " -> ")
}
