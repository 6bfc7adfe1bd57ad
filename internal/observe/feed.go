// Package observe provides push-based snapshot collections. A Feed holds the
// current contents of a table and re-delivers a fresh copy to every
// subscriber each time the contents change.
package observe

import "sync"

// Feed is an observable collection of T
type Feed[T any] struct {
	mu      sync.Mutex
	current []T
	subs    map[*Subscription[T]]struct{}
	closed  bool
}

// Subscription receives the snapshots of one Feed
type Subscription[T any] struct {
	feed *Feed[T]
	ch   chan []T
	once sync.Once
}

// NewFeed creates an empty feed
func NewFeed[T any]() *Feed[T] {
	return &Feed[T]{
		current: []T{},
		subs:    make(map[*Subscription[T]]struct{}),
	}
}

// Publish replaces the current snapshot and notifies all subscribers
func (f *Feed[T]) Publish(snapshot []T) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}
	f.current = clone(snapshot)
	for s := range f.subs {
		s.deliver(clone(f.current))
	}
}

// Snapshot returns a copy of the current contents
func (f *Feed[T]) Snapshot() []T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return clone(f.current)
}

// Len returns the number of items in the current snapshot
func (f *Feed[T]) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.current)
}

// Subscribe registers a subscriber. The current snapshot is delivered first.
func (f *Feed[T]) Subscribe() *Subscription[T] {
	f.mu.Lock()
	defer f.mu.Unlock()

	s := &Subscription[T]{feed: f, ch: make(chan []T, 1)}
	if f.closed {
		close(s.ch)
		return s
	}
	f.subs[s] = struct{}{}
	s.deliver(clone(f.current))
	return s
}

// Close ends every subscription. Publishing afterwards is a no-op.
func (f *Feed[T]) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}
	f.closed = true
	for s := range f.subs {
		delete(f.subs, s)
		close(s.ch)
	}
}

// C returns the channel snapshots arrive on. It is closed when the
// subscription or the feed is closed.
func (s *Subscription[T]) C() <-chan []T {
	return s.ch
}

// Close unsubscribes
func (s *Subscription[T]) Close() {
	s.once.Do(func() {
		s.feed.mu.Lock()
		defer s.feed.mu.Unlock()

		if _, ok := s.feed.subs[s]; ok {
			delete(s.feed.subs, s)
			close(s.ch)
		}
	})
}

// deliver hands over a snapshot without blocking. An undelivered older
// snapshot is dropped so the subscriber only ever sees the latest one.
// Callers hold the feed lock.
func (s *Subscription[T]) deliver(snapshot []T) {
	select {
	case <-s.ch:
	default:
	}
	s.ch <- snapshot
}

func clone[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
