package rxpermissions

import "sync"

// Slot is the bookkeeping for one outstanding permission request: the
// permission name and a single-result broadcast. A slot delivers exactly one
// boolean to every subscriber and is then discarded by its registry; slots
// are never reused.
type Slot struct {
	permission string

	mu      sync.Mutex
	done    bool
	granted bool
	waiters []chan bool
}

// Permission returns the permission name this slot tracks.
func (s *Slot) Permission() string { return s.permission }

// Subscribe returns a channel that yields the slot's eventual result and is
// then closed. Subscribing after the slot has resolved still delivers the
// decided value; the channel is buffered, so the resolver never blocks on a
// subscriber that has not started receiving yet.
func (s *Slot) Subscribe() <-chan bool {
	ch := make(chan bool, 1)
	s.mu.Lock()
	if s.done {
		ch <- s.granted
		close(ch)
	} else {
		s.waiters = append(s.waiters, ch)
	}
	s.mu.Unlock()
	return ch
}

func (s *Slot) resolve(granted bool) {
	s.mu.Lock()
	s.done = true
	s.granted = granted
	waiters := s.waiters
	s.waiters = nil
	s.mu.Unlock()

	// Each waiter channel has a one-slot buffer and receives exactly one
	// value, so these sends cannot block.
	for _, ch := range waiters {
		ch <- granted
		close(ch)
	}
}

// Registry tracks which permissions currently have a request in flight.
// It is the single source of truth for "is this permission pending": at most
// one slot exists per permission, and a slot exists exactly from the first
// request until its result is delivered.
type Registry struct {
	mu    sync.Mutex
	slots map[string]*Slot
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{slots: make(map[string]*Slot)}
}

// GetOrCreate returns the pending slot for permission, creating one if none
// exists. The second return reports whether the slot was created by this
// call; concurrent callers for the same permission observe it true exactly
// once.
func (r *Registry) GetOrCreate(permission string) (*Slot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.slots[permission]; ok {
		return s, false
	}
	s := &Slot{permission: permission}
	r.slots[permission] = s
	return s, true
}

// Resolve publishes granted to every subscriber of the permission's slot and
// removes the slot. It reports false when no slot is pending for permission,
// in which case nothing changes. Subscribers that obtained the slot before
// removal can still subscribe afterwards and receive the decided value.
func (r *Registry) Resolve(permission string, granted bool) bool {
	r.mu.Lock()
	s, ok := r.slots[permission]
	if ok {
		delete(r.slots, permission)
	}
	r.mu.Unlock()
	if !ok {
		return false
	}
	s.resolve(granted)
	return true
}

// Len returns the number of permissions currently pending.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.slots)
}
