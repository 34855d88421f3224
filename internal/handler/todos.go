package handler

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ticklist/ticklist/internal/domain"
	"github.com/ticklist/ticklist/internal/middleware"
	apperrors "github.com/ticklist/ticklist/internal/pkg/errors"
)

// TodoService is the service surface the todos handler consumes.
type TodoService interface {
	Create(ctx context.Context, payload domain.CreateTodo) (*domain.Todo, error)
	Get(ctx context.Context, id int64) (*domain.Todo, error)
	List(ctx context.Context) ([]domain.Todo, error)
	Update(ctx context.Context, id int64, payload domain.UpdateTodo) (*domain.Todo, error)
	Delete(ctx context.Context, id int64) error
}

// TodosHandler handles todo endpoints
type TodosHandler struct {
	todoService TodoService
	logger      *zap.Logger
}

// NewTodosHandler creates a new todos handler
func NewTodosHandler(todoService TodoService, logger *zap.Logger) *TodosHandler {
	return &TodosHandler{
		todoService: todoService,
		logger:      logger,
	}
}

// ListTodos handles GET /todos
func (h *TodosHandler) ListTodos(c *fiber.Ctx) error {
	todos, err := h.todoService.List(c.Context())
	if err != nil {
		h.logger.Error("failed to list todos", zap.Error(err))
		middleware.RecordTodoOperation("all", "error")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal Server Error",
			"message": "Failed to list todos",
		})
	}

	middleware.RecordTodoOperation("all", "ok")
	return c.JSON(fiber.Map{
		"data": todos,
	})
}

// GetTodo handles GET /todos/:id
func (h *TodosHandler) GetTodo(c *fiber.Ctx) error {
	id, err := parseTodoID(c)
	if err != nil {
		return badRequest(c, "Invalid todo ID")
	}

	todo, err := h.todoService.Get(c.Context(), id)
	if err != nil {
		return h.serviceError(c, "get", err)
	}

	middleware.RecordTodoOperation("find", "ok")
	return c.JSON(todo)
}

// CreateTodo handles POST /todos
func (h *TodosHandler) CreateTodo(c *fiber.Ctx) error {
	var payload domain.CreateTodo
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "Invalid request body: "+err.Error())
	}

	todo, err := h.todoService.Create(c.Context(), payload)
	if err != nil {
		return h.serviceError(c, "create", err)
	}

	middleware.RecordTodoOperation("create", "ok")
	return c.Status(fiber.StatusCreated).JSON(todo)
}

// UpdateTodo handles PATCH /todos/:id
func (h *TodosHandler) UpdateTodo(c *fiber.Ctx) error {
	id, err := parseTodoID(c)
	if err != nil {
		return badRequest(c, "Invalid todo ID")
	}

	var payload domain.UpdateTodo
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "Invalid request body: "+err.Error())
	}

	todo, err := h.todoService.Update(c.Context(), id, payload)
	if err != nil {
		return h.serviceError(c, "update", err)
	}

	middleware.RecordTodoOperation("update", "ok")
	return c.JSON(todo)
}

// DeleteTodo handles DELETE /todos/:id
func (h *TodosHandler) DeleteTodo(c *fiber.Ctx) error {
	id, err := parseTodoID(c)
	if err != nil {
		return badRequest(c, "Invalid todo ID")
	}

	if err := h.todoService.Delete(c.Context(), id); err != nil {
		return h.serviceError(c, "delete", err)
	}

	middleware.RecordTodoOperation("delete", "ok")
	return c.SendStatus(fiber.StatusNoContent)
}

func parseTodoID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   "Bad Request",
		"message": message,
	})
}

// serviceError maps service-layer errors to HTTP responses
func (h *TodosHandler) serviceError(c *fiber.Ctx, operation string, err error) error {
	if apperrors.IsNotFound(err) {
		middleware.RecordTodoOperation(operation, "not_found")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Not Found",
			"message": "Todo not found",
		})
	}
	if apperrors.IsValidation(err) {
		middleware.RecordTodoOperation(operation, "invalid")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Bad Request",
			"message": err.Error(),
		})
	}

	h.logger.Error("failed to "+operation+" todo", zap.Error(err))
	middleware.RecordTodoOperation(operation, "error")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Internal Server Error",
		"message": "Failed to " + operation + " todo",
	})
}
