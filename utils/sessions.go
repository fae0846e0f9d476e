package utils

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JavCast03/proyectoGSASD/models"
)

// SessionTTL is how long a login stays valid.
const SessionTTL = 24 * time.Hour

// SessionStore keeps opaque session tokens bound to user ids. Redis backs
// it when REDIS_URL is configured, otherwise an in-process map does, so
// the app runs with no external services at all.
type SessionStore interface {
	// Create stores a new session for the user and returns it, token included.
	Create(ctx context.Context, user models.User, userAgent, ipAddress string) (models.Session, error)
	// Get returns nil when the token is unknown or expired.
	Get(ctx context.Context, token string) (*models.Session, error)
	// Delete invalidates the token. Unknown tokens are not an error.
	Delete(ctx context.Context, token string) error
}

func newSession(user models.User, userAgent, ipAddress string) models.Session {
	now := time.Now()
	return models.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: now,
		ExpiresAt: now.Add(SessionTTL),
		UserAgent: userAgent,
		IPAddress: ipAddress,
	}
}

// MemorySessions is the fallback session backend.
type MemorySessions struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
}

func NewMemorySessions() *MemorySessions {
	return &MemorySessions{sessions: make(map[string]models.Session)}
}

func (m *MemorySessions) Create(_ context.Context, user models.User, userAgent, ipAddress string) (models.Session, error) {
	s := newSession(user, userAgent, ipAddress)

	m.mu.Lock()
	m.sessions[s.Token] = s
	m.mu.Unlock()
	return s, nil
}

func (m *MemorySessions) Get(_ context.Context, token string) (*models.Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[token]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if time.Now().After(s.ExpiresAt) {
		// lazy expiry
		m.mu.Lock()
		delete(m.sessions, token)
		m.mu.Unlock()
		return nil, nil
	}
	return &s, nil
}

func (m *MemorySessions) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
	return nil
}
