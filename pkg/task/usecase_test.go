package task

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memTaskRepo is an in-memory Repository keeping the owner conjunction in
// every lookup, like the SQL implementation does.
type memTaskRepo struct {
	tasks map[uuid.UUID]Task
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{tasks: map[uuid.UUID]Task{}}
}

func (r *memTaskRepo) Create(ctx context.Context, t Task) error {
	r.tasks[t.ID] = t
	return nil
}

func (r *memTaskRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Task, error) {
	var res []Task
	for _, t := range r.tasks {
		if t.OwnerID == ownerID {
			res = append(res, t)
		}
	}
	return res, nil
}

func (r *memTaskRepo) GetByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (Task, error) {
	t, ok := r.tasks[id]
	if !ok || t.OwnerID != ownerID {
		return Task{}, ErrNotFound
	}
	return t, nil
}

func (r *memTaskRepo) UpdateForOwner(ctx context.Context, ownerID, id uuid.UUID, title string, completed bool) (Task, error) {
	t, ok := r.tasks[id]
	if !ok || t.OwnerID != ownerID {
		return Task{}, ErrNotFound
	}
	t.Title = title
	t.Completed = completed
	r.tasks[id] = t
	return t, nil
}

func (r *memTaskRepo) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	t, ok := r.tasks[id]
	if !ok || t.OwnerID != ownerID {
		return ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

func TestCreate_SetsOwnerAndDefaults(t *testing.T) {
	t.Parallel()

	svc := NewService(newMemTaskRepo())
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, "  buy milk  ")
	require.NoError(t, err)
	assert.Equal(t, owner, created.OwnerID)
	assert.Equal(t, "buy milk", created.Title)
	assert.False(t, created.Completed)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestCreate_TitleRequired(t *testing.T) {
	t.Parallel()

	svc := NewService(newMemTaskRepo())

	_, err := svc.Create(context.Background(), uuid.New(), "   ")
	assert.ErrorIs(t, err, ErrTitleRequired)
}

func TestList_OnlyOwnTasks(t *testing.T) {
	t.Parallel()

	svc := NewService(newMemTaskRepo())
	alice := uuid.New()
	bob := uuid.New()

	mine, err := svc.Create(context.Background(), alice, "buy milk")
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), bob, "walk dog")
	require.NoError(t, err)

	tasks, err := svc.List(context.Background(), alice, 50, 0)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, mine.ID, tasks[0].ID)
}

func TestForeignTaskIndistinguishableFromMissing(t *testing.T) {
	t.Parallel()

	svc := NewService(newMemTaskRepo())
	alice := uuid.New()
	bob := uuid.New()

	theirs, err := svc.Create(context.Background(), bob, "walk dog")
	require.NoError(t, err)

	_, errForeign := svc.GetByID(context.Background(), alice, theirs.ID)
	_, errMissing := svc.GetByID(context.Background(), alice, uuid.New())
	assert.ErrorIs(t, errForeign, ErrNotFound)
	assert.Equal(t, errMissing, errForeign)

	_, err = svc.Update(context.Background(), alice, theirs.ID, "hijacked", true)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(context.Background(), alice, theirs.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Bob's task is untouched.
	got, err := svc.GetByID(context.Background(), bob, theirs.ID)
	require.NoError(t, err)
	assert.Equal(t, "walk dog", got.Title)
	assert.False(t, got.Completed)
}

func TestUpdate_Idempotent(t *testing.T) {
	t.Parallel()

	svc := NewService(newMemTaskRepo())
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, "buy milk")
	require.NoError(t, err)

	first, err := svc.Update(context.Background(), owner, created.ID, "buy oat milk", true)
	require.NoError(t, err)
	second, err := svc.Update(context.Background(), owner, created.ID, "buy oat milk", true)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	stored, err := svc.GetByID(context.Background(), owner, created.ID)
	require.NoError(t, err)
	assert.Equal(t, first, stored)
}

func TestUpdate_ReopenCompletedTask(t *testing.T) {
	t.Parallel()

	svc := NewService(newMemTaskRepo())
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, "buy milk")
	require.NoError(t, err)

	done, err := svc.Update(context.Background(), owner, created.ID, created.Title, true)
	require.NoError(t, err)
	assert.True(t, done.Completed)

	reopened, err := svc.Update(context.Background(), owner, created.ID, created.Title, false)
	require.NoError(t, err)
	assert.False(t, reopened.Completed)
}
