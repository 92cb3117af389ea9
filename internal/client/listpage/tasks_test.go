package listpage

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryan-hugo/cliq-cli/internal/client/api"
	"github.com/ryan-hugo/cliq-cli/internal/client/models"
	"github.com/ryan-hugo/cliq-cli/internal/client/services"
	"github.com/ryan-hugo/cliq-cli/internal/logging"
)

// taskServer is a canned task API: an in-memory task set served through
// the list and complete/uncomplete endpoints.
type taskServer struct {
	mu        sync.Mutex
	tasks     map[int64]models.Task
	listCalls int
}

func newTaskServer(tasks ...models.Task) *taskServer {
	s := &taskServer{tasks: map[int64]models.Task{}}
	for _, task := range tasks {
		s.tasks[task.ID] = task
	}
	return s
}

func (s *taskServer) listCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listCalls
}

func (s *taskServer) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()

		switch {
		case r.URL.Path == "/tasks/list":
			s.listCalls++
			status := r.URL.Query().Get("status")
			var tasks []models.Task
			for _, task := range s.tasks {
				if status == "" || string(task.Status) == status {
					tasks = append(tasks, task)
				}
			}
			json.NewEncoder(w).Encode(map[string]any{"data": models.TaskList{
				Tasks: tasks,
				Pagination: models.Pagination{
					CurrentPage: 1, TotalPages: 1, PageSize: 10,
					TotalItems: len(tasks),
				},
			}})

		case strings.HasSuffix(r.URL.Path, "/complete"), strings.HasSuffix(r.URL.Path, "/uncomplete"):
			parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
			if len(parts) != 3 {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			id, err := strconv.ParseInt(parts[1], 10, 64)
			if err != nil {
				w.WriteHeader(http.StatusNotFound)
				return
			}

			task := s.tasks[id]
			if parts[2] == "complete" {
				task.Status = models.TaskCompleted
			} else {
				task.Status = models.TaskPending
			}
			s.tasks[id] = task
			json.NewEncoder(w).Encode(map[string]any{"data": task})

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func newTasksController(t *testing.T, srv *taskServer) *TasksController {
	t.Helper()
	ts := httptest.NewServer(srv.handler())
	t.Cleanup(ts.Close)
	store := &nopStore{}
	client := api.New(ts.URL, 5*time.Second, store, logging.NewNop())
	return NewTasks(services.NewTasks(client), 10, testDebounce, logging.NewNop())
}

// nopStore satisfies session.Store for anonymous test traffic.
type nopStore struct{}

func (nopStore) Get(string) (string, bool)               { return "", false }
func (nopStore) Set(string, string)                      {}
func (nopStore) Remove(string)                           {}
func (nopStore) Clear() bool                             { return false }
func (nopStore) Watch(string, func(string, bool)) func() { return func() {} }
func (nopStore) Close() error                            { return nil }

func waitTasksIdle(t *testing.T, c *TasksController) {
	t.Helper()
	require.Eventually(t, func() bool {
		return !c.Snapshot().Loading
	}, 2*time.Second, 5*time.Millisecond)
}

func taskByID(items []models.Task, id int64) (models.Task, bool) {
	for _, task := range items {
		if task.ID == id {
			return task, true
		}
	}
	return models.Task{}, false
}

func TestToggle_NoStatusFilterPatchesInPlace(t *testing.T) {
	srv := newTaskServer(
		models.Task{ID: 1, Title: "write report", Status: models.TaskPending},
		models.Task{ID: 2, Title: "call client", Status: models.TaskCompleted},
	)
	c := newTasksController(t, srv)
	ctx := context.Background()

	c.Reload(ctx)
	waitTasksIdle(t, c)
	require.Len(t, c.Snapshot().Items, 2)
	listsBefore := srv.listCount()

	task, ok := taskByID(c.Snapshot().Items, 1)
	require.True(t, ok)
	require.NoError(t, c.Toggle(ctx, task))

	got, ok := taskByID(c.Snapshot().Items, 1)
	require.True(t, ok)
	assert.Equal(t, models.TaskCompleted, got.Status)
	assert.Equal(t, listsBefore, srv.listCount(), "toggle without a status filter must not reload the list")
}

func TestToggle_WithStatusFilterReloadsOnce(t *testing.T) {
	srv := newTaskServer(
		models.Task{ID: 1, Title: "write report", Status: models.TaskPending},
		models.Task{ID: 2, Title: "call client", Status: models.TaskPending},
	)
	c := newTasksController(t, srv)
	ctx := context.Background()

	c.SetTypeOrStatus(ctx, string(models.TaskPending))
	waitTasksIdle(t, c)
	require.Len(t, c.Snapshot().Items, 2)
	listsBefore := srv.listCount()

	task, ok := taskByID(c.Snapshot().Items, 1)
	require.True(t, ok)
	require.NoError(t, c.Toggle(ctx, task))
	waitTasksIdle(t, c)

	assert.Equal(t, listsBefore+1, srv.listCount(), "toggle under a status filter must reload exactly once")

	// The completed task left the PENDING view.
	items := c.Snapshot().Items
	_, stillThere := taskByID(items, 1)
	assert.False(t, stillThere)
	assert.Len(t, items, 1)
}

func TestToggle_Uncomplete(t *testing.T) {
	srv := newTaskServer(models.Task{ID: 5, Title: "done thing", Status: models.TaskCompleted})
	c := newTasksController(t, srv)
	ctx := context.Background()

	c.Reload(ctx)
	waitTasksIdle(t, c)

	task, ok := taskByID(c.Snapshot().Items, 5)
	require.True(t, ok)
	require.NoError(t, c.Toggle(ctx, task))

	got, _ := taskByID(c.Snapshot().Items, 5)
	assert.Equal(t, models.TaskPending, got.Status)
}

func TestPagination_TrustsServerMetadata(t *testing.T) {
	srv := newTaskServer(models.Task{ID: 1, Status: models.TaskPending})
	c := newTasksController(t, srv)
	ctx := context.Background()

	c.Reload(ctx)
	waitTasksIdle(t, c)

	// The canned server reports a single page with no neighbors.
	assert.False(t, c.HasNext())
	assert.False(t, c.HasPrev())

	before := srv.listCount()
	c.NextPage(ctx)
	c.PrevPage(ctx)
	assert.Equal(t, before, srv.listCount(), "paging past reported bounds must be ignored")
}
