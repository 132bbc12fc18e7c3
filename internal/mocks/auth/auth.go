// Package auth contains hand-written test doubles for the auth ports.
// They are lightweight and suitable for unit tests without codegen.
package auth

import (
	"context"
	"fmt"
	"sync"

	domainauth "github.com/onboardhq/onboard-ui-api/internal/domain/auth"
	"github.com/onboardhq/onboard-ui-api/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.Authenticator = (*StubAuthenticator)(nil)
	_ ports.SessionStore  = (*MemorySessionStore)(nil)
	_ ports.RecordStore   = (*MemoryRecordStore)(nil)
)

// StubAuthenticator resolves logins from a fixed answer or a callback.
type StubAuthenticator struct {
	LoginFunc func(ctx context.Context, creds ports.Credentials) (domainauth.Identity, error)

	Identity domainauth.Identity
	Err      error

	mu    sync.Mutex
	calls []ports.Credentials
}

// Login records the attempt and returns the configured outcome.
func (a *StubAuthenticator) Login(ctx context.Context, creds ports.Credentials) (domainauth.Identity, error) {
	a.mu.Lock()
	a.calls = append(a.calls, creds)
	a.mu.Unlock()

	if a.LoginFunc != nil {
		return a.LoginFunc(ctx, creds)
	}
	if a.Err != nil {
		return domainauth.Identity{}, a.Err
	}
	return a.Identity, nil
}

// Calls returns a copy of the recorded login attempts.
func (a *StubAuthenticator) Calls() []ports.Credentials {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]ports.Credentials, len(a.calls))
	copy(out, a.calls)
	return out
}

// MemorySessionStore is an in-memory ports.SessionStore for tests.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]domainauth.Session

	SaveErr   error
	GetErr    error
	DeleteErr error
}

// NewMemorySessionStore creates an empty in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]domainauth.Session)}
}

func (s *MemorySessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return nil
}

func (s *MemorySessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	if s.GetErr != nil {
		return domainauth.Session{}, s.GetErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return domainauth.Session{}, ErrSessionNotFound
	}
	return sess, nil
}

func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Len reports the number of stored sessions.
func (s *MemorySessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// ErrSessionNotFound is returned by MemorySessionStore for unknown IDs.
type sessionNotFoundError struct{}

func (sessionNotFoundError) Error() string { return "session not found" }

var ErrSessionNotFound error = sessionNotFoundError{}

// MemoryRecordStore is an in-memory ports.RecordStore for tests. A client
// listed in Corrupt simulates an unparsable persisted record: Load reports
// it as absent, mirroring the durable adapters' fail-soft contract.
type MemoryRecordStore struct {
	mu      sync.Mutex
	records map[string]domainauth.Identity

	Corrupt  map[string]bool
	SaveErr  error
	ClearErr error
}

// NewMemoryRecordStore creates an empty in-memory record store.
func NewMemoryRecordStore() *MemoryRecordStore {
	return &MemoryRecordStore{
		records: make(map[string]domainauth.Identity),
		Corrupt: make(map[string]bool),
	}
}

func (s *MemoryRecordStore) Load(_ context.Context, clientID string) (domainauth.Identity, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Corrupt[clientID] {
		return domainauth.Identity{}, false, nil
	}
	identity, ok := s.records[clientID]
	return identity, ok, nil
}

func (s *MemoryRecordStore) Save(_ context.Context, clientID string, identity domainauth.Identity) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Corrupt, clientID)
	s.records[clientID] = identity
	return nil
}

func (s *MemoryRecordStore) Clear(_ context.Context, clientID string) error {
	if s.ClearErr != nil {
		return s.ClearErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, clientID)
	return nil
}

// StubAuthProvider is a hand-written ports.AuthProvider double with
// deterministic state and nonce values.
type StubAuthProvider struct {
	BeginFunc    func(ctx context.Context, in ports.BeginInput) (authURL, state, nonce string, err error)
	ExchangeFunc func(ctx context.Context, in ports.ExchangeInput) (domainauth.Identity, error)

	AuthURL  string
	Identity domainauth.Identity

	mu        sync.Mutex
	callCount int
}

var _ ports.AuthProvider = (*StubAuthProvider)(nil)

// Begin returns the configured auth URL with counted state and nonce values.
func (p *StubAuthProvider) Begin(ctx context.Context, in ports.BeginInput) (authURL, state, nonce string, err error) {
	if p.BeginFunc != nil {
		return p.BeginFunc(ctx, in)
	}
	p.mu.Lock()
	p.callCount++
	n := p.callCount
	p.mu.Unlock()

	url := p.AuthURL
	if url == "" {
		url = "https://mock-idp/auth"
	}
	return url, fmt.Sprintf("state-%d", n), fmt.Sprintf("nonce-%d", n), nil
}

// Exchange returns the configured identity.
func (p *StubAuthProvider) Exchange(ctx context.Context, in ports.ExchangeInput) (domainauth.Identity, error) {
	if p.ExchangeFunc != nil {
		return p.ExchangeFunc(ctx, in)
	}
	return p.Identity, nil
}
