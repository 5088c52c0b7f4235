package signal

import "sync"

// testStore is a minimal observable store for tests.
type testStore struct {
	mu             sync.Mutex
	state          any
	listeners      map[uint64]func()
	nextListenerID uint64
	subscribeCalls int
}

func newTestStore(state any) *testStore {
	return &testStore{
		state:     state,
		listeners: make(map[uint64]func()),
	}
}

func (s *testStore) CurrentState() any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *testStore) Subscribe(listener func()) func() {
	s.mu.Lock()
	s.subscribeCalls++
	id := s.nextListenerID
	s.nextListenerID++
	s.listeners[id] = listener
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// setState replaces the state and notifies every listener.
func (s *testStore) setState(state any) {
	s.mu.Lock()
	s.state = state
	listeners := make([]func(), 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l()
	}
}

func (s *testStore) listenerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.listeners)
}
