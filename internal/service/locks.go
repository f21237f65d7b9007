package service

import "sync"

// mutationLocks serializes join-table edits per entity+relation, mirroring
// the dashboard disabling its add/remove controls while a mutation is in
// flight. This is a UI-level lock, not a server transaction.
type mutationLocks struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func newMutationLocks() *mutationLocks {
	return &mutationLocks{held: make(map[string]struct{})}
}

// acquire reports whether the key was free; callers that get false must fail
// fast with ErrMutationInFlight rather than queue.
func (l *mutationLocks) acquire(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, busy := l.held[key]; busy {
		return false
	}
	l.held[key] = struct{}{}
	return true
}

func (l *mutationLocks) release(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.held, key)
}
