package service

import (
	"context"

	"github.com/ticklist/ticklist/internal/domain"
	apperrors "github.com/ticklist/ticklist/internal/pkg/errors"
	"github.com/ticklist/ticklist/internal/validator"
)

// TodoRepository is the storage contract shared by all backends.
//
// Implementations must be safe for concurrent use without external
// synchronization, and every operation must be atomic: in particular
// Update's read-merge-write cycle may never expose an intermediate
// state to other callers.
//
// All returns todos in unspecified order; callers must not rely on it.
// Find, Update and Delete report a missing id with an error satisfying
// apperrors.IsNotFound; any other failure is infrastructure-level.
type TodoRepository interface {
	Create(ctx context.Context, payload domain.CreateTodo) (*domain.Todo, error)
	Find(ctx context.Context, id int64) (*domain.Todo, error)
	All(ctx context.Context) ([]domain.Todo, error)
	Update(ctx context.Context, id int64, payload domain.UpdateTodo) (*domain.Todo, error)
	Delete(ctx context.Context, id int64) error
}

// TodoService handles todo operations
type TodoService struct {
	todoRepo TodoRepository
}

// NewTodoService creates a new todo service
func NewTodoService(todoRepo TodoRepository) *TodoService {
	return &TodoService{
		todoRepo: todoRepo,
	}
}

// Create validates the payload and stores a new todo
func (s *TodoService) Create(ctx context.Context, payload domain.CreateTodo) (*domain.Todo, error) {
	if err := validator.Validate(payload); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	return s.todoRepo.Create(ctx, payload)
}

// Get retrieves a todo by id
func (s *TodoService) Get(ctx context.Context, id int64) (*domain.Todo, error) {
	return s.todoRepo.Find(ctx, id)
}

// List retrieves all todos
func (s *TodoService) List(ctx context.Context) ([]domain.Todo, error) {
	return s.todoRepo.All(ctx)
}

// Update validates the payload and applies a partial update
func (s *TodoService) Update(ctx context.Context, id int64, payload domain.UpdateTodo) (*domain.Todo, error) {
	if err := validator.Validate(payload); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	return s.todoRepo.Update(ctx, id, payload)
}

// Delete removes a todo by id
func (s *TodoService) Delete(ctx context.Context, id int64) error {
	return s.todoRepo.Delete(ctx, id)
}
