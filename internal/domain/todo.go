package domain

// MaxTextLength is the maximum length of a todo's text.
const MaxTextLength = 100

// Todo is a single tracked task. IDs are assigned by the store and are
// never reused for the lifetime of a store instance.
type Todo struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// CreateTodo is the input payload for creating a todo.
type CreateTodo struct {
	Text string `json:"text" validate:"required,max=100"`
}

// UpdateTodo is the input payload for partially updating a todo.
// Nil fields are left unchanged.
type UpdateTodo struct {
	Text      *string `json:"text,omitempty" validate:"omitnil,min=1,max=100"`
	Completed *bool   `json:"completed,omitempty"`
}

// ApplyTo returns a copy of todo with the payload's present fields merged
// over it. The id is never touched.
func (p UpdateTodo) ApplyTo(todo Todo) Todo {
	if p.Text != nil {
		todo.Text = *p.Text
	}
	if p.Completed != nil {
		todo.Completed = *p.Completed
	}
	return todo
}
