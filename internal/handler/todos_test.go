package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ticklist/ticklist/internal/domain"
	apperrors "github.com/ticklist/ticklist/internal/pkg/errors"
	"github.com/ticklist/ticklist/internal/testutil"
)

// MockTodoService is a mock implementation of TodoService
type MockTodoService struct {
	mock.Mock
}

func (m *MockTodoService) Create(ctx context.Context, payload domain.CreateTodo) (*domain.Todo, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Todo), args.Error(1)
}

func (m *MockTodoService) Get(ctx context.Context, id int64) (*domain.Todo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Todo), args.Error(1)
}

func (m *MockTodoService) List(ctx context.Context) ([]domain.Todo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Todo), args.Error(1)
}

func (m *MockTodoService) Update(ctx context.Context, id int64, payload domain.UpdateTodo) (*domain.Todo, error) {
	args := m.Called(ctx, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Todo), args.Error(1)
}

func (m *MockTodoService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestApp(svc TodoService) *fiber.App {
	app := fiber.New()
	h := NewTodosHandler(svc, zap.NewNop())

	todos := app.Group("/todos")
	todos.Get("/", h.ListTodos)
	todos.Post("/", h.CreateTodo)
	todos.Get("/:id", h.GetTodo)
	todos.Patch("/:id", h.UpdateTodo)
	todos.Delete("/:id", h.DeleteTodo)

	return app
}

func decodeTodo(t *testing.T, body io.Reader) domain.Todo {
	t.Helper()
	var todo domain.Todo
	require.NoError(t, json.NewDecoder(body).Decode(&todo))
	return todo
}

func TestTodosHandler_ListTodos(t *testing.T) {
	t.Run("returns all todos", func(t *testing.T) {
		svc := new(MockTodoService)
		want := []domain.Todo{
			testutil.NewTodo(1, "a"),
			testutil.NewTodo(2, "b"),
		}
		svc.On("List", mock.Anything).Return(want, nil)

		app := newTestApp(svc)
		resp, err := app.Test(httptest.NewRequest("GET", "/todos", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body struct {
			Data []domain.Todo `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, want, body.Data)
	})

	t.Run("returns empty list when the store is empty", func(t *testing.T) {
		svc := new(MockTodoService)
		svc.On("List", mock.Anything).Return([]domain.Todo{}, nil)

		app := newTestApp(svc)
		resp, err := app.Test(httptest.NewRequest("GET", "/todos", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"data":[]}`, string(raw))
	})

	t.Run("returns 500 on service failure", func(t *testing.T) {
		svc := new(MockTodoService)
		svc.On("List", mock.Anything).Return(nil, apperrors.Internal("boom"))

		app := newTestApp(svc)
		resp, err := app.Test(httptest.NewRequest("GET", "/todos", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}

func TestTodosHandler_GetTodo(t *testing.T) {
	t.Run("returns the todo", func(t *testing.T) {
		svc := new(MockTodoService)
		want := testutil.NewTodo(1, "buy milk")
		svc.On("Get", mock.Anything, int64(1)).Return(&want, nil)

		app := newTestApp(svc)
		resp, err := app.Test(httptest.NewRequest("GET", "/todos/1", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, want, decodeTodo(t, resp.Body))
	})

	t.Run("returns 404 for missing todo", func(t *testing.T) {
		svc := new(MockTodoService)
		svc.On("Get", mock.Anything, int64(42)).Return(nil, apperrors.NotFoundID("todo", 42))

		app := newTestApp(svc)
		resp, err := app.Test(httptest.NewRequest("GET", "/todos/42", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("returns 400 for a non-numeric id", func(t *testing.T) {
		svc := new(MockTodoService)

		app := newTestApp(svc)
		resp, err := app.Test(httptest.NewRequest("GET", "/todos/abc", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		svc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})
}

func TestTodosHandler_CreateTodo(t *testing.T) {
	t.Run("creates a todo", func(t *testing.T) {
		svc := new(MockTodoService)
		want := testutil.NewTodo(1, "buy milk")
		svc.On("Create", mock.Anything, domain.CreateTodo{Text: "buy milk"}).Return(&want, nil)

		app := newTestApp(svc)
		req := httptest.NewRequest("POST", "/todos", bytes.NewBufferString(`{"text":"buy milk"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		assert.Equal(t, want, decodeTodo(t, resp.Body))
	})

	t.Run("returns 400 on validation failure", func(t *testing.T) {
		svc := new(MockTodoService)
		svc.On("Create", mock.Anything, domain.CreateTodo{Text: ""}).
			Return(nil, apperrors.Validation("text is required"))

		app := newTestApp(svc)
		req := httptest.NewRequest("POST", "/todos", bytes.NewBufferString(`{"text":""}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("returns 400 on malformed body", func(t *testing.T) {
		svc := new(MockTodoService)

		app := newTestApp(svc)
		req := httptest.NewRequest("POST", "/todos", bytes.NewBufferString(`{not json`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestTodosHandler_UpdateTodo(t *testing.T) {
	t.Run("applies a partial update", func(t *testing.T) {
		svc := new(MockTodoService)
		want := domain.Todo{ID: 1, Text: "buy milk", Completed: true}
		svc.On("Update", mock.Anything, int64(1), domain.UpdateTodo{Completed: testutil.BoolPtr(true)}).
			Return(&want, nil)

		app := newTestApp(svc)
		req := httptest.NewRequest("PATCH", "/todos/1", bytes.NewBufferString(`{"completed":true}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, want, decodeTodo(t, resp.Body))
	})

	t.Run("returns 404 for missing todo", func(t *testing.T) {
		svc := new(MockTodoService)
		svc.On("Update", mock.Anything, int64(42), mock.Anything).
			Return(nil, apperrors.NotFoundID("todo", 42))

		app := newTestApp(svc)
		req := httptest.NewRequest("PATCH", "/todos/42", bytes.NewBufferString(`{"completed":true}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestTodosHandler_DeleteTodo(t *testing.T) {
	t.Run("deletes the todo", func(t *testing.T) {
		svc := new(MockTodoService)
		svc.On("Delete", mock.Anything, int64(1)).Return(nil)

		app := newTestApp(svc)
		resp, err := app.Test(httptest.NewRequest("DELETE", "/todos/1", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	})

	t.Run("returns 404 for missing todo", func(t *testing.T) {
		svc := new(MockTodoService)
		svc.On("Delete", mock.Anything, int64(42)).Return(apperrors.NotFoundID("todo", 42))

		app := newTestApp(svc)
		resp, err := app.Test(httptest.NewRequest("DELETE", "/todos/42", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
