// Package observe provides a mutation-safe observer set. Listeners may
// register or remove listeners (including themselves) from inside a
// notification callback; such changes are staged and reconciled after the
// in-progress pass completes, so iteration is never corrupted.
package observe

// Set holds listeners of type L. The zero value is not usable; create sets
// with NewSet. Not safe for concurrent use; a set is owned by exactly one
// notifying component.
type Set[L comparable] struct {
	listeners []L
	notifying bool
	toAdd     []L
	toRemove  []L
}

// NewSet creates an empty observer set.
func NewSet[L comparable]() *Set[L] {
	return &Set[L]{}
}

// Register adds a listener. During a notification pass the addition is
// staged and becomes visible starting with the next pass. Registering a
// listener that is already present is a no-op.
func (s *Set[L]) Register(l L) {
	if s.notifying {
		s.toAdd = append(s.toAdd, l)
		return
	}
	s.add(l)
}

// Remove removes a listener. During a notification pass the removal is
// staged: the listener is still visited in the current pass and absent from
// the next. Removing an unknown listener is a no-op.
func (s *Set[L]) Remove(l L) {
	if s.notifying {
		s.toRemove = append(s.toRemove, l)
		return
	}
	s.remove(l)
}

// Contains reports whether the listener is in the primary set. Staged
// changes are not reflected until their pass completes.
func (s *Set[L]) Contains(l L) bool {
	for _, existing := range s.listeners {
		if existing == l {
			return true
		}
	}
	return false
}

// Len returns the number of listeners in the primary set.
func (s *Set[L]) Len() int {
	return len(s.listeners)
}

// Notify visits every listener in the set, in registration order, with the
// set frozen for the duration of the pass. Staged registrations are applied
// after the pass, then staged removals. Nested Notify calls are rejected by
// panicking, since the staging containers are single-level.
func (s *Set[L]) Notify(visit func(L)) {
	if s.notifying {
		panic("observe: Notify called during an in-progress notification pass")
	}
	s.notifying = true
	for _, l := range s.listeners {
		visit(l)
	}
	s.notifying = false

	for _, l := range s.toAdd {
		s.add(l)
	}
	for _, l := range s.toRemove {
		s.remove(l)
	}
	s.toAdd = nil
	s.toRemove = nil
}

func (s *Set[L]) add(l L) {
	if s.Contains(l) {
		return
	}
	s.listeners = append(s.listeners, l)
}

func (s *Set[L]) remove(l L) {
	for i, existing := range s.listeners {
		if existing == l {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}
