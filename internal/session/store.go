package session

// Package session holds the per-client authenticated-identity state: a
// synchronous snapshot, durable persistence through a ports.RecordStore, and
// a change stream with replay-of-latest semantics. It is the single source of
// truth for "who, if anyone, is currently logged in" on a given client;
// guards and the visibility policy consume it, the authenticator writes it.

import (
	"context"
	"sync"

	domainauth "github.com/onboardhq/onboard-ui-api/internal/domain/auth"
	"github.com/onboardhq/onboard-ui-api/internal/ports"
)

// State is a snapshot of the session: an identity, or absent.
type State struct {
	Identity domainauth.Identity
	Present  bool
}

// watchBuffer is the per-subscriber channel capacity. A subscriber that
// falls this far behind is evicted rather than allowed to reorder or block
// delivery for everyone else.
const watchBuffer = 16

// Store holds the current identity for one client. The zero value is not
// usable; construct with NewStore. All methods are safe for concurrent use.
//
// Persistence rules: Set writes the durable record before notifying, Clear
// removes it before notifying, and the initial state is whatever the record
// store reports at first access (absent when missing or corrupt).
type Store struct {
	clientID string
	records  ports.RecordStore

	mu      sync.Mutex
	state   State
	loaded  bool
	subs    map[int]chan State
	nextSub int
	closed  bool
}

// NewStore creates a Store for one client, backed by the given record store.
func NewStore(clientID string, records ports.RecordStore) *Store {
	return &Store{
		clientID: clientID,
		records:  records,
		subs:     make(map[int]chan State),
	}
}

// Current returns the synchronous snapshot of the session. The first call
// reconstructs state from the persisted record; a missing or unreadable
// record degrades to logged-out.
func (s *Store) Current(ctx context.Context) (domainauth.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoadedLocked(ctx)
	return s.state.Identity, s.state.Present
}

// Set persists the identity and notifies all subscribers with the new state.
// The persisted record and the in-memory snapshot never diverge: a failed
// write leaves the previous state in place and emits nothing.
func (s *Store) Set(ctx context.Context, identity domainauth.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoadedLocked(ctx)

	if err := s.records.Save(ctx, s.clientID, identity); err != nil {
		return err
	}
	s.state = State{Identity: identity, Present: true}
	s.publishLocked(s.state)
	return nil
}

// Clear removes the persisted record and notifies all subscribers with the
// absent state. Clearing an already-absent session still notifies: guards
// re-evaluate on every transition, including re-affirming ones.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoadedLocked(ctx)

	if err := s.records.Clear(ctx, s.clientID); err != nil {
		return err
	}
	s.state = State{}
	s.publishLocked(s.state)
	return nil
}

// Watch returns a channel that receives the current state immediately, then
// every subsequent transition in emission order. The subscription ends when
// ctx is done or the store is closed; the channel is closed either way.
func (s *Store) Watch(ctx context.Context) <-chan State {
	ch := make(chan State, watchBuffer)

	s.mu.Lock()
	s.ensureLoadedLocked(ctx)
	if s.closed {
		s.mu.Unlock()
		close(ch)
		return ch
	}
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	ch <- s.state // replay-of-latest
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.unsubscribe(id)
	}()

	return ch
}

// Close evicts all subscribers. Called when the server-side session is
// discarded for good.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}

// Idle reports whether the store holds no identity and has no subscribers.
// Idle stores carry no state that is not already in the record store, so the
// manager may discard them.
func (s *Store) Idle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.state.Present && len(s.subs) == 0
}

func (s *Store) unsubscribe(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ch, ok := s.subs[id]; ok {
		delete(s.subs, id)
		close(ch)
	}
}

// ensureLoadedLocked reconstructs state from the record store on first use.
// Load errors (including corrupt records the adapter could not parse) are
// treated as absent, never raised: the client degrades to logged-out.
func (s *Store) ensureLoadedLocked(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true
	identity, present, err := s.records.Load(ctx, s.clientID)
	if err != nil || !present {
		s.state = State{}
		return
	}
	s.state = State{Identity: identity, Present: true}
}

// publishLocked delivers state to every subscriber in subscription order.
// A subscriber whose buffer is full is evicted so it can never observe
// transitions out of order.
func (s *Store) publishLocked(state State) {
	for id, ch := range s.subs {
		select {
		case ch <- state:
		default:
			delete(s.subs, id)
			close(ch)
		}
	}
}
