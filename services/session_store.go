package services

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
)

// sessionTokenBytes is 256 bits, encoded as 64 hex characters
const sessionTokenBytes = 32

// SessionStore maps opaque bearer tokens to usernames
type SessionStore interface {
	Create(username string) (string, error)
	Resolve(token string) (string, bool)
	Revoke(token string)
}

// MemorySessionStore keeps sessions for the lifetime of the process.
// Sessions never expire; a restart logs everyone out.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]string
}

// NewMemorySessionStore creates an empty session table
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]string)}
}

func (s *MemorySessionStore) Create(username string) (string, error) {
	token, err := generateSessionToken()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.sessions[token] = username
	s.mu.Unlock()

	return token, nil
}

func (s *MemorySessionStore) Resolve(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	username, ok := s.sessions[token]
	return username, ok
}

func (s *MemorySessionStore) Revoke(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Len reports the number of live sessions
func (s *MemorySessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func generateSessionToken() (string, error) {
	tokenBytes := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(tokenBytes), nil
}
