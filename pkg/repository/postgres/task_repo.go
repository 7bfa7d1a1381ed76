package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/tasktracker/pkg/task"
)

// TaskRepository implements task.Repository backed by PostgreSQL (pgx).
// Every query after insert carries the owner in its predicate, so a foreign
// task is indistinguishable from an absent one.
type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) (*TaskRepository, error) {
	r := &TaskRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *TaskRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS tasks (
	id UUID PRIMARY KEY,
	owner_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	title TEXT NOT NULL,
	completed BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tasks_owner ON tasks(owner_id);
`)
	return err
}

func (r *TaskRepository) Create(ctx context.Context, t task.Task) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO tasks (id, owner_id, title, completed, created_at)
VALUES ($1, $2, $3, $4, $5)
`, t.ID, t.OwnerID, t.Title, t.Completed, t.CreatedAt)
	return err
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]task.Task, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, owner_id, title, completed, created_at
FROM tasks
WHERE owner_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, rows.Err()
}

func (r *TaskRepository) GetByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (task.Task, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, owner_id, title, completed, created_at
FROM tasks WHERE id = $1 AND owner_id = $2
`, id, ownerID)
	return scanTask(row)
}

func (r *TaskRepository) UpdateForOwner(ctx context.Context, ownerID, id uuid.UUID, title string, completed bool) (task.Task, error) {
	row := r.pool.QueryRow(ctx, `
UPDATE tasks SET title = $3, completed = $4
WHERE id = $1 AND owner_id = $2
RETURNING id, owner_id, title, completed, created_at
`, id, ownerID, title, completed)
	return scanTask(row)
}

func (r *TaskRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return task.ErrNotFound
	}
	return nil
}

func scanTask(row pgx.Row) (task.Task, error) {
	var t task.Task
	var created time.Time
	if err := row.Scan(&t.ID, &t.OwnerID, &t.Title, &t.Completed, &created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, task.ErrNotFound
		}
		return task.Task{}, err
	}
	t.CreatedAt = created.UTC()
	return t, nil
}
