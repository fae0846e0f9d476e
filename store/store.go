package store

import (
	"context"
	"errors"

	"github.com/JavCast03/proyectoGSASD/models"
)

// ErrUsernameTaken is returned by UserStore.Create when the username
// already exists.
var ErrUsernameTaken = errors.New("username already taken")

// TaskStore is the single collection of task records. Both backings
// (in-memory and Postgres) behave identically to callers: listing is
// newest-first, toggle/delete on a missing id is a silent no-op, and
// ids are never reused after deletion.
type TaskStore interface {
	// List returns the owner's tasks ordered by creation time descending.
	List(ctx context.Context, ownerID int) ([]models.Task, error)
	// Create inserts a task with completed=false and returns the stored row.
	// Callers are responsible for rejecting blank text beforehand.
	Create(ctx context.Context, ownerID int, text string) (models.Task, error)
	// Toggle flips the completed flag of the owner's task with the given id.
	Toggle(ctx context.Context, ownerID, id int) error
	// Delete removes the owner's task with the given id.
	Delete(ctx context.Context, ownerID, id int) error
	// Count reports the total number of tasks across all owners.
	Count(ctx context.Context) (int, error)
}

// UserStore holds registered users. Users are created once and never
// updated.
type UserStore interface {
	// Create registers a new user; returns ErrUsernameTaken on collision.
	Create(ctx context.Context, username, passwordHash string) (models.User, error)
	// GetByUsername returns (nil, nil) when the user does not exist.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
