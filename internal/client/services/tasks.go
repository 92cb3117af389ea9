package services

import (
	"context"
	"fmt"

	"github.com/ryan-hugo/cliq-cli/internal/client/api"
	"github.com/ryan-hugo/cliq-cli/internal/client/models"
)

// Tasks wraps the task endpoints. The list endpoint is the only paginated
// one in the API; its payload shape is enforced, not guessed.
type Tasks struct {
	c *api.Client
}

func NewTasks(c *api.Client) *Tasks {
	return &Tasks{c: c}
}

// List returns the current page of tasks with the server's pagination
// metadata. A payload without the tasks/pagination structure is rejected
// by the adapter as an unexpected response shape.
func (s *Tasks) List(ctx context.Context, f ListFilter) (*models.TaskList, error) {
	var out models.TaskList
	if err := s.c.Get(ctx, "/tasks/list", f.Query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Overdue returns tasks past their due date.
func (s *Tasks) Overdue(ctx context.Context, f ListFilter) ([]models.Task, error) {
	var out []models.Task
	if err := s.c.Get(ctx, "/tasks/overdue", f.Query(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Tasks) Get(ctx context.Context, id int64) (*models.Task, error) {
	var out models.Task
	if err := s.c.Get(ctx, fmt.Sprintf("/tasks/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Tasks) Create(ctx context.Context, req models.CreateTaskRequest) (*models.Task, error) {
	if err := checkPayload(req); err != nil {
		return nil, err
	}
	var out models.Task
	if err := s.c.Post(ctx, "/tasks/create", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Tasks) Update(ctx context.Context, id int64, patch models.UpdateTaskRequest) (*models.Task, error) {
	if err := checkPayload(patch); err != nil {
		return nil, err
	}
	var out models.Task
	if err := s.c.Put(ctx, fmt.Sprintf("/tasks/%d", id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Tasks) Delete(ctx context.Context, id int64) error {
	return s.c.Delete(ctx, fmt.Sprintf("/tasks/%d", id))
}

// Complete marks the task COMPLETED and returns the updated record.
func (s *Tasks) Complete(ctx context.Context, id int64) (*models.Task, error) {
	var out models.Task
	if err := s.c.Put(ctx, fmt.Sprintf("/tasks/%d/complete", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Uncomplete returns the task to PENDING and returns the updated record.
func (s *Tasks) Uncomplete(ctx context.Context, id int64) (*models.Task, error) {
	var out models.Task
	if err := s.c.Put(ctx, fmt.Sprintf("/tasks/%d/uncomplete", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
