package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ticklist/ticklist/internal/domain"
	"github.com/ticklist/ticklist/internal/pkg/database"
	apperrors "github.com/ticklist/ticklist/internal/pkg/errors"
	"github.com/ticklist/ticklist/internal/service"
)

// TodoRepository handles todo data operations in PostgreSQL.
// Multi-step operations run inside a transaction; ids come from the
// table's BIGSERIAL key and are never reused.
type TodoRepository struct {
	db *database.PostgresDB
}

var _ service.TodoRepository = (*TodoRepository)(nil)

// NewTodoRepository creates a new todo repository
func NewTodoRepository(db *database.PostgresDB) *TodoRepository {
	return &TodoRepository{db: db}
}

// Create inserts a new todo and returns the stored row
func (r *TodoRepository) Create(ctx context.Context, payload domain.CreateTodo) (*domain.Todo, error) {
	query := `
		INSERT INTO todos (text, completed)
		VALUES ($1, false)
		RETURNING id, text, completed
	`

	var todo domain.Todo
	err := database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, query, payload.Text).Scan(
			&todo.ID,
			&todo.Text,
			&todo.Completed,
		)
	})
	if err != nil {
		return nil, apperrors.Internal("failed to create todo").WithError(err)
	}

	return &todo, nil
}

// Find retrieves a todo by id
func (r *TodoRepository) Find(ctx context.Context, id int64) (*domain.Todo, error) {
	query := `
		SELECT id, text, completed
		FROM todos
		WHERE id = $1
	`

	var todo domain.Todo
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&todo.ID,
		&todo.Text,
		&todo.Completed,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundID("todo", id)
		}
		return nil, apperrors.Internal("failed to get todo").WithError(err)
	}

	return &todo, nil
}

// All retrieves every stored todo
func (r *TodoRepository) All(ctx context.Context) ([]domain.Todo, error) {
	query := `
		SELECT id, text, completed
		FROM todos
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.Internal("failed to list todos").WithError(err)
	}
	defer rows.Close()

	todos := make([]domain.Todo, 0)
	for rows.Next() {
		var todo domain.Todo
		if err := rows.Scan(&todo.ID, &todo.Text, &todo.Completed); err != nil {
			return nil, apperrors.Internal("failed to scan todo").WithError(err)
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Internal("failed to list todos").WithError(err)
	}

	return todos, nil
}

// Update merges the payload over the current row and writes it back.
// The fallback read locks the row (FOR UPDATE) inside the same
// transaction as the write, so concurrent partial updates cannot
// interleave their read-modify-write cycles.
func (r *TodoRepository) Update(ctx context.Context, id int64, payload domain.UpdateTodo) (*domain.Todo, error) {
	var todo domain.Todo
	err := database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
		var current domain.Todo
		err := tx.QueryRow(ctx,
			`SELECT id, text, completed FROM todos WHERE id = $1 FOR UPDATE`,
			id,
		).Scan(&current.ID, &current.Text, &current.Completed)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NotFoundID("todo", id)
			}
			return fmt.Errorf("failed to read todo for update: %w", err)
		}

		merged := payload.ApplyTo(current)

		err = tx.QueryRow(ctx,
			`UPDATE todos SET text = $2, completed = $3 WHERE id = $1 RETURNING id, text, completed`,
			id, merged.Text, merged.Completed,
		).Scan(&todo.ID, &todo.Text, &todo.Completed)
		if err != nil {
			return fmt.Errorf("failed to update todo: %w", err)
		}
		return nil
	})
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		return nil, apperrors.Internal("failed to update todo").WithError(err)
	}

	return &todo, nil
}

// Delete removes a todo by id
func (r *TodoRepository) Delete(ctx context.Context, id int64) error {
	err := database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM todos WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete todo: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NotFoundID("todo", id)
		}
		return nil
	})
	if err != nil && !apperrors.IsNotFound(err) {
		return apperrors.Internal("failed to delete todo").WithError(err)
	}

	return err
}
