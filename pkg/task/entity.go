package task

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Task is a single to-do item owned by exactly one user.
type Task struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Title     string
	Completed bool
	CreatedAt time.Time
}

var (
	// ErrNotFound covers both an absent task and a task owned by someone
	// else; the two cases must stay indistinguishable.
	ErrNotFound      = errors.New("task not found")
	ErrTitleRequired = errors.New("title is required")
)

// Repository is the persistence port for tasks. Every operation after
// Create takes the owner as a mandatory filter predicate.
type Repository interface {
	Create(ctx context.Context, t Task) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Task, error)
	GetByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (Task, error)
	UpdateForOwner(ctx context.Context, ownerID, id uuid.UUID, title string, completed bool) (Task, error)
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error
}
