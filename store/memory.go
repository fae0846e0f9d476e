package store

import (
	"context"
	"sync"
	"time"

	"github.com/JavCast03/proyectoGSASD/models"
)

// MemoryStore keeps tasks in an ordered slice. It is the fallback when no
// DATABASE_URL is configured; nothing survives a restart. A mutex guards
// the slice because the HTTP server handles requests on separate
// goroutines.
type MemoryStore struct {
	mu     sync.Mutex
	tasks  []models.Task
	nextID int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

func (s *MemoryStore) List(_ context.Context, ownerID int) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Insertion order is creation order, so walking backwards gives
	// newest-first.
	out := []models.Task{}
	for i := len(s.tasks) - 1; i >= 0; i-- {
		if s.tasks[i].UserID == ownerID {
			out = append(out, s.tasks[i])
		}
	}
	return out, nil
}

func (s *MemoryStore) Create(_ context.Context, ownerID int, text string) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := models.Task{
		ID:        s.nextID,
		UserID:    ownerID,
		Text:      text,
		Completed: false,
		CreatedAt: time.Now(),
	}
	s.nextID++
	s.tasks = append(s.tasks, t)
	return t, nil
}

func (s *MemoryStore) Toggle(_ context.Context, ownerID, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id && s.tasks[i].UserID == ownerID {
			s.tasks[i].Completed = !s.tasks[i].Completed
			return nil
		}
	}
	// no match: silent no-op
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, ownerID, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id && s.tasks[i].UserID == ownerID {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *MemoryStore) Count(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks), nil
}

// MemoryUserStore is the user table counterpart of MemoryStore.
type MemoryUserStore struct {
	mu     sync.Mutex
	users  map[string]models.User
	nextID int
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]models.User), nextID: 1}
}

func (s *MemoryUserStore) Create(_ context.Context, username, passwordHash string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[username]; ok {
		return models.User{}, ErrUsernameTaken
	}
	u := models.User{ID: s.nextID, Username: username, PasswordHash: passwordHash}
	s.nextID++
	s.users[username] = u
	return u, nil
}

func (s *MemoryUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}
