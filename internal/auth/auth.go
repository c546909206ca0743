// Package auth gates the admin area. Credential storage is a single
// config-supplied account; sessions are opaque in-memory tokens.
package auth

import (
	"crypto/subtle"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Authenticator checks a credential pair. The result is an opaque boolean;
// session issuance is the caller's concern.
type Authenticator interface {
	Authenticate(username, password string) bool
}

// StaticAuthenticator accepts exactly one configured account.
type StaticAuthenticator struct {
	username string
	password string
}

func NewStaticAuthenticator(username, password string) *StaticAuthenticator {
	return &StaticAuthenticator{username: username, password: password}
}

func (a *StaticAuthenticator) Authenticate(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	return userOK && passOK
}

// Sessions issues and validates admin session tokens.
type Sessions struct {
	ttl time.Duration
	now func() time.Time

	mu     sync.Mutex
	active map[string]time.Time
}

func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{
		ttl:    ttl,
		now:    time.Now,
		active: make(map[string]time.Time),
	}
}

// Issue creates a fresh token valid for the configured TTL.
func (s *Sessions) Issue() string {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.active[token] = s.now().Add(s.ttl)
	return token
}

// Valid reports whether the token is live. Expired tokens are pruned on sight.
func (s *Sessions) Valid(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.active[token]
	if !ok {
		return false
	}
	if s.now().After(expiry) {
		delete(s.active, token)
		return false
	}
	return true
}

// Revoke forgets the token, ending the session.
func (s *Sessions) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.active, token)
}
