package task

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UseCase encapsulates owner-scoped task operations. The owner comes from
// the verified request identity, never from the request body.
type UseCase interface {
	Create(ctx context.Context, ownerID uuid.UUID, title string) (Task, error)
	List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Task, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (Task, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, title string, completed bool) (Task, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, ownerID uuid.UUID, title string) (Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, ErrTitleRequired
	}
	t := Task{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Title:     title,
		Completed: false,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return Task{}, err
	}
	return t, nil
}

func (s *service) List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Task, error) {
	return s.repo.ListByOwner(ctx, ownerID, limit, offset)
}

func (s *service) GetByID(ctx context.Context, ownerID, id uuid.UUID) (Task, error) {
	return s.repo.GetByIDForOwner(ctx, ownerID, id)
}

func (s *service) Update(ctx context.Context, ownerID, id uuid.UUID, title string, completed bool) (Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, ErrTitleRequired
	}
	return s.repo.UpdateForOwner(ctx, ownerID, id, title, completed)
}

func (s *service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.repo.DeleteForOwner(ctx, ownerID, id)
}
