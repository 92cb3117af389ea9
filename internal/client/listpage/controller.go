// Package listpage implements the shared list-view state machine: filter
// and search state driving fetches, debounced search input, and
// reconciliation after mutations. One controller instance backs one list
// view; a mutex stands in for the browser's single thread.
package listpage

import (
	"context"
	"sync"
	"time"

	"github.com/ryan-hugo/cliq-cli/internal/client/api"
	"github.com/ryan-hugo/cliq-cli/internal/client/models"
	"github.com/ryan-hugo/cliq-cli/internal/client/services"
	"github.com/ryan-hugo/cliq-cli/internal/logging"
)

// DefaultDebounce is the quiet period a search keystroke burst must observe
// before one fetch is issued.
const DefaultDebounce = 500 * time.Millisecond

// FetchFunc loads one page of items for the given filter. Pagination is nil
// for unpaginated resources.
type FetchFunc[T any] func(ctx context.Context, f services.ListFilter) ([]T, *models.Pagination, error)

// Snapshot is a consistent copy of the controller state for rendering.
type Snapshot[T any] struct {
	Items      []T
	Loading    bool
	Err        string
	Filter     services.ListFilter
	Pagination *models.Pagination
}

// Controller holds filter/search/pagination state and the items it fetched.
// Every filter mutation schedules exactly one fetch; search mutations are
// debounced. Completions carry a sequence number and any completion that is
// not the latest issued fetch is discarded, so a slow stale response can
// never overwrite a newer result.
type Controller[T any] struct {
	fetch    FetchFunc[T]
	log      logging.Logger
	debounce time.Duration

	mu         sync.Mutex
	filter     services.ListFilter
	items      []T
	pagination *models.Pagination
	loading    bool
	err        string
	seq        uint64
	timer      *time.Timer
	onChange   func()
}

// New builds a controller around fetch. pageSize is fixed for the life of
// the controller and sent with every request; it is never inferred from
// responses.
func New[T any](fetch FetchFunc[T], pageSize int, debounce time.Duration, log logging.Logger) *Controller[T] {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Controller[T]{
		fetch:    fetch,
		log:      log,
		debounce: debounce,
		filter:   services.ListFilter{Page: 1, PageSize: pageSize},
	}
}

// OnChange registers a callback fired after every observable state change,
// without the lock held.
func (c *Controller[T]) OnChange(fn func()) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// Snapshot returns a copy of the current state.
func (c *Controller[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]T, len(c.items))
	copy(items, c.items)
	var pg *models.Pagination
	if c.pagination != nil {
		cp := *c.pagination
		pg = &cp
	}
	return Snapshot[T]{Items: items, Loading: c.loading, Err: c.err, Filter: c.filter, Pagination: pg}
}

// SetSearch updates the free-text search term and schedules a fetch after
// the quiet period. Each keystroke resets the timer, so a burst collapses
// to one request carrying the final value. An empty term fetches
// immediately (clearing the search is not a keystroke burst).
func (c *Controller[T]) SetSearch(ctx context.Context, term string) {
	c.mu.Lock()
	if c.filter.Search == term {
		c.mu.Unlock()
		return
	}
	c.filter.Search = term
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if term == "" {
		c.mu.Unlock()
		c.startFetch(ctx)
		return
	}
	c.timer = time.AfterFunc(c.debounce, func() {
		c.startFetch(ctx)
	})
	c.mu.Unlock()
}

// SetTypeOrStatus updates the enum filter (contact type, task status,
// project status, or interaction type depending on the resource) and
// fetches immediately.
func (c *Controller[T]) SetTypeOrStatus(ctx context.Context, value string) {
	c.mu.Lock()
	changed := c.applyTypeOrStatus(value)
	c.mu.Unlock()
	if changed {
		c.startFetch(ctx)
	}
}

// applyTypeOrStatus routes the value into the matching query parameter.
// Resources use exactly one of type/status; the unset one stays empty.
func (c *Controller[T]) applyTypeOrStatus(value string) bool {
	switch value {
	case string(models.ContactClient), string(models.ContactLead),
		string(models.InteractionEmail), string(models.InteractionCall),
		string(models.InteractionMeeting), string(models.InteractionOther):
		if c.filter.Type == value {
			return false
		}
		c.filter.Type = value
		c.filter.Status = ""
	case "":
		if c.filter.Type == "" && c.filter.Status == "" {
			return false
		}
		c.filter.Type = ""
		c.filter.Status = ""
	default:
		if c.filter.Status == value {
			return false
		}
		c.filter.Status = value
		c.filter.Type = ""
	}
	return true
}

// SetContact updates the contact filter and fetches immediately. nil clears
// the filter.
func (c *Controller[T]) SetContact(ctx context.Context, id *int64) {
	c.mu.Lock()
	same := (c.filter.ContactID == nil && id == nil) ||
		(c.filter.ContactID != nil && id != nil && *c.filter.ContactID == *id)
	if same {
		c.mu.Unlock()
		return
	}
	c.filter.ContactID = id
	c.mu.Unlock()
	c.startFetch(ctx)
}

// SetPage moves to the given page (1-based) and fetches immediately.
func (c *Controller[T]) SetPage(ctx context.Context, page int) {
	if page < 1 {
		page = 1
	}
	c.mu.Lock()
	if c.filter.Page == page {
		c.mu.Unlock()
		return
	}
	c.filter.Page = page
	c.mu.Unlock()
	c.startFetch(ctx)
}

// Reload re-issues the fetch for the current filter and page. This is also
// the "try again" action behind the error banner.
func (c *Controller[T]) Reload(ctx context.Context) {
	c.startFetch(ctx)
}

// ApplyCreate reconciles after a successful create: back to page 1 and a
// full reload, no local splicing.
func (c *Controller[T]) ApplyCreate(ctx context.Context) {
	c.mu.Lock()
	c.filter.Page = 1
	c.mu.Unlock()
	c.startFetch(ctx)
}

// ApplyUpdate reconciles after a successful update with a full reload of
// the current filter/page.
func (c *Controller[T]) ApplyUpdate(ctx context.Context) {
	c.startFetch(ctx)
}

// ApplyDelete reconciles after a successful delete with a full reload of
// the current filter/page.
func (c *Controller[T]) ApplyDelete(ctx context.Context) {
	c.startFetch(ctx)
}

// startFetch issues one asynchronous fetch for the current filter and bumps
// the sequence so older in-flight completions become stale.
func (c *Controller[T]) startFetch(ctx context.Context) {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.loading = true
	f := c.filter
	fn := c.onChange
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
	go c.runFetch(ctx, seq, f)
}

func (c *Controller[T]) runFetch(ctx context.Context, seq uint64, f services.ListFilter) {
	items, pg, err := c.fetch(ctx, f)

	c.mu.Lock()
	if seq != c.seq {
		// A newer fetch was issued while this one was in flight; its
		// result wins regardless of arrival order.
		c.mu.Unlock()
		c.log.Debug(ctx, "stale list response discarded", "seq", seq)
		return
	}
	c.loading = false
	if err != nil {
		c.err = api.ErrorMessage(err)
	} else {
		c.items = items
		c.pagination = pg
		c.err = ""
	}
	fn := c.onChange
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// replaceItem swaps the item matched by match in place and notifies. Used
// only by the task toggle fast path.
func (c *Controller[T]) replaceItem(match func(T) bool, item T) {
	c.mu.Lock()
	for i := range c.items {
		if match(c.items[i]) {
			c.items[i] = item
			break
		}
	}
	fn := c.onChange
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}
