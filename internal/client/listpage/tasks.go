package listpage

import (
	"context"
	"time"

	"github.com/ryan-hugo/cliq-cli/internal/client/models"
	"github.com/ryan-hugo/cliq-cli/internal/client/services"
	"github.com/ryan-hugo/cliq-cli/internal/logging"
)

// TasksController is the paginated tasks list plus the completion toggle,
// the one mutation reconciled in place instead of by reload.
type TasksController struct {
	*Controller[models.Task]
	svc *services.Tasks
}

// NewTasks builds the tasks list controller. The tasks endpoint is the only
// one returning pagination metadata; the controller trusts it verbatim.
func NewTasks(svc *services.Tasks, pageSize int, debounce time.Duration, log logging.Logger) *TasksController {
	fetch := func(ctx context.Context, f services.ListFilter) ([]models.Task, *models.Pagination, error) {
		list, err := svc.List(ctx, f)
		if err != nil {
			return nil, nil, err
		}
		pg := list.Pagination
		return list.Tasks, &pg, nil
	}
	return &TasksController{
		Controller: New(fetch, pageSize, debounce, log),
		svc:        svc,
	}
}

// Toggle flips a task between PENDING and COMPLETED.
//
// With no status filter active the updated record is patched into the list
// in place, avoiding a flicker-inducing reload. With a status filter active
// the toggled task may no longer belong to the filtered view, so exactly
// one full reload is issued instead.
func (c *TasksController) Toggle(ctx context.Context, task models.Task) error {
	var updated *models.Task
	var err error
	if task.Status == models.TaskPending {
		updated, err = c.svc.Complete(ctx, task.ID)
	} else {
		updated, err = c.svc.Uncomplete(ctx, task.ID)
	}
	if err != nil {
		return err
	}

	c.mu.Lock()
	statusFiltered := c.filter.Status != ""
	c.mu.Unlock()

	if statusFiltered {
		c.Reload(ctx)
		return nil
	}
	c.replaceItem(func(t models.Task) bool { return t.ID == task.ID }, *updated)
	return nil
}

// HasNext reports whether the server says another page exists.
func (c *TasksController) HasNext() bool {
	s := c.Snapshot()
	return s.Pagination != nil && s.Pagination.HasNext
}

// HasPrev reports whether the server says a previous page exists.
func (c *TasksController) HasPrev() bool {
	s := c.Snapshot()
	return s.Pagination != nil && s.Pagination.HasPrev
}

// NextPage advances one page when the server reports one.
func (c *TasksController) NextPage(ctx context.Context) {
	if !c.HasNext() {
		return
	}
	c.mu.Lock()
	page := c.filter.Page + 1
	c.mu.Unlock()
	c.SetPage(ctx, page)
}

// PrevPage goes back one page when the server reports one.
func (c *TasksController) PrevPage(ctx context.Context) {
	if !c.HasPrev() {
		return
	}
	c.mu.Lock()
	page := c.filter.Page - 1
	c.mu.Unlock()
	c.SetPage(ctx, page)
}
