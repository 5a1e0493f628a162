package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/signalwire/max-outback/internal/bar"
)

// ErrNotFound is returned when no live session exists for a conversation.
var ErrNotFound = errors.New("session not found")

// Session is the per-conversation record: one tab, one advisory stage.
// The tab inside is the persisted state handed back by every engine
// operation; the store just keeps it between turns.
type Session struct {
	ID             uuid.UUID `json:"id"`
	ConversationID string    `json:"conversation_id"`
	Stage          bar.Stage `json:"stage"`
	Tab            *bar.Tab  `json:"tab"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	ExpiresAt      time.Time `json:"expires_at"`
}

// Store holds sessions in memory keyed by conversation id. Operations on a
// single session are serialized by the caller (one conversation turn at a
// time); the mutex only guards the map across conversations.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	done     chan struct{}
}

func NewStore(ttl time.Duration) *Store {
	s := &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		done:     make(chan struct{}),
	}
	go s.cleanup()
	return s
}

// GetOrCreate returns the live session for a conversation, creating a fresh
// one with an empty tab when none exists or the previous one expired.
func (s *Store) GetOrCreate(conversationID string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if session, ok := s.sessions[conversationID]; ok && now.Before(session.ExpiresAt) {
		return session
	}

	session := &Session{
		ID:             uuid.New(),
		ConversationID: conversationID,
		Stage:          bar.StageGreeting,
		Tab:            bar.NewTab(),
		CreatedAt:      now,
		UpdatedAt:      now,
		ExpiresAt:      now.Add(s.ttl),
	}
	s.sessions[conversationID] = session
	return session
}

// Get returns the live session for a conversation.
func (s *Store) Get(conversationID string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[conversationID]
	if !ok {
		return nil, ErrNotFound
	}
	if time.Now().After(session.ExpiresAt) {
		return nil, ErrNotFound
	}
	return session, nil
}

// Save persists the session and extends its lease.
func (s *Store) Save(session *Session) error {
	if session == nil {
		return errors.New("session is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	session.UpdatedAt = now
	session.ExpiresAt = now.Add(s.ttl)
	s.sessions[session.ConversationID] = session
	return nil
}

// Delete drops a session.
func (s *Store) Delete(conversationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, conversationID)
}

// Len reports the number of stored sessions, expired ones included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}

// Close stops the background cleanup.
func (s *Store) Close() {
	close(s.done)
}

func (s *Store) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			now := time.Now()
			s.mu.Lock()
			for id, session := range s.sessions {
				if now.After(session.ExpiresAt) {
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
