package session

import "sync"

// Observer is told about every applied action, after reduction.
// Observe runs while the store is locked and must not block.
type Observer interface {
	Observe(a Action, next State)
}

// Store owns the session state and serializes reductions. Each Dispatch is
// applied atomically; readers only ever see whole snapshots.
type Store struct {
	mu        sync.Mutex
	state     State
	subs      map[uint64]chan State
	nextSub   uint64
	observers []Observer
}

// NewStore creates a store holding the start-of-session state.
func NewStore(observers ...Observer) *Store {
	return &Store{
		state:     NewState(),
		subs:      make(map[uint64]chan State),
		observers: observers,
	}
}

// Dispatch reduces a into the current state and returns the result.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Reduce(s.state, a)
	for _, o := range s.observers {
		o.Observe(a, s.state)
	}
	for _, ch := range s.subs {
		offerLatest(ch, s.state)
	}
	return s.state
}

// Apply builds a batch of actions from the current state and reduces all of
// them under one lock, so no other action can interleave. build runs with the
// store locked and must not call back into the store.
func (s *Store) Apply(build func(State) []Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range build(s.state) {
		s.state = Reduce(s.state, a)
		for _, o := range s.observers {
			o.Observe(a, s.state)
		}
	}
	for _, ch := range s.subs {
		offerLatest(ch, s.state)
	}
	return s.state
}

// Snapshot returns the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe returns a channel that always holds the most recent snapshot not
// yet received. Slow readers skip intermediate states rather than block the
// store. The returned func unsubscribes and closes the channel.
func (s *Store) Subscribe() (<-chan State, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan State, 1)
	ch <- s.state
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
}

// offerLatest replaces whatever is buffered in ch with st.
func offerLatest(ch chan State, st State) {
	select {
	case ch <- st:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	ch <- st
}
