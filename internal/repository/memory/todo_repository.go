// Package memory provides an in-process todo repository backed by a
// single mutex-guarded map. It holds no external resources and loses
// its contents when the process exits.
package memory

import (
	"context"
	"sync"

	"github.com/ticklist/ticklist/internal/domain"
	apperrors "github.com/ticklist/ticklist/internal/pkg/errors"
	"github.com/ticklist/ticklist/internal/service"
)

// TodoRepository stores todos in a map guarded by one coarse RWMutex.
// Readers proceed concurrently with each other; any writer is exclusive
// over the whole collection. The map is never exposed, so the lock
// cannot be bypassed.
type TodoRepository struct {
	mu     sync.RWMutex
	todos  map[int64]domain.Todo
	nextID int64
}

var _ service.TodoRepository = (*TodoRepository)(nil)

// NewTodoRepository creates an empty in-memory repository
func NewTodoRepository() *TodoRepository {
	return &TodoRepository{
		todos: make(map[int64]domain.Todo),
	}
}

// Create stores a new todo with a fresh id and Completed=false.
// Ids come from a monotonic counter, never from the map size, so an id
// is never reissued after deletes.
func (r *TodoRepository) Create(ctx context.Context, payload domain.CreateTodo) (*domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	todo := domain.Todo{
		ID:        r.nextID,
		Text:      payload.Text,
		Completed: false,
	}
	r.todos[todo.ID] = todo

	return &todo, nil
}

// Find retrieves a todo by id
func (r *TodoRepository) Find(ctx context.Context, id int64) (*domain.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	todo, ok := r.todos[id]
	if !ok {
		return nil, apperrors.NotFoundID("todo", id)
	}
	return &todo, nil
}

// All retrieves every stored todo in unspecified order.
// The result is never nil so an empty store encodes as [].
func (r *TodoRepository) All(ctx context.Context) ([]domain.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	todos := make([]domain.Todo, 0, len(r.todos))
	for _, todo := range r.todos {
		todos = append(todos, todo)
	}
	return todos, nil
}

// Update applies the payload's present fields over the stored todo.
// The whole read-merge-write cycle runs under the write lock, so no
// other operation can observe or act on an intermediate state.
func (r *TodoRepository) Update(ctx context.Context, id int64, payload domain.UpdateTodo) (*domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.todos[id]
	if !ok {
		return nil, apperrors.NotFoundID("todo", id)
	}

	merged := payload.ApplyTo(current)
	r.todos[id] = merged

	return &merged, nil
}

// Delete removes a todo by id. Deleting an already-deleted id reports
// NotFound, not success.
func (r *TodoRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.todos[id]; !ok {
		return apperrors.NotFoundID("todo", id)
	}
	delete(r.todos, id)

	return nil
}

// Len reports the number of stored todos. Used by health reporting.
func (r *TodoRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.todos)
}
