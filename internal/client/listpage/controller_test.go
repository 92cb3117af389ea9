package listpage

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryan-hugo/cliq-cli/internal/client/api"
	"github.com/ryan-hugo/cliq-cli/internal/client/models"
	"github.com/ryan-hugo/cliq-cli/internal/client/services"
	"github.com/ryan-hugo/cliq-cli/internal/logging"
)

const testDebounce = 30 * time.Millisecond

// recordingFetch captures every filter it is called with and returns a
// canned result per call.
type recordingFetch struct {
	mu      sync.Mutex
	filters []services.ListFilter
	items   []string
	err     error
}

func (f *recordingFetch) fn(ctx context.Context, filter services.ListFilter) ([]string, *models.Pagination, error) {
	f.mu.Lock()
	f.filters = append(f.filters, filter)
	items, err := f.items, f.err
	f.mu.Unlock()
	return items, nil, err
}

func (f *recordingFetch) calls() []services.ListFilter {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]services.ListFilter{}, f.filters...)
}

func (f *recordingFetch) set(items []string, err error) {
	f.mu.Lock()
	f.items = items
	f.err = err
	f.mu.Unlock()
}

func waitIdle(t *testing.T, c *Controller[string]) {
	t.Helper()
	require.Eventually(t, func() bool {
		return !c.Snapshot().Loading
	}, 2*time.Second, 5*time.Millisecond)
}

func TestReload_LoadsItems(t *testing.T) {
	f := &recordingFetch{items: []string{"a", "b"}}
	c := New(f.fn, 10, testDebounce, logging.NewNop())

	c.Reload(context.Background())
	waitIdle(t, c)

	snap := c.Snapshot()
	assert.Equal(t, []string{"a", "b"}, snap.Items)
	assert.Empty(t, snap.Err)
	require.Len(t, f.calls(), 1)
	assert.Equal(t, 1, f.calls()[0].Page)
	assert.Equal(t, 10, f.calls()[0].PageSize)
}

func TestSearch_DebounceCollapsesBurst(t *testing.T) {
	f := &recordingFetch{items: []string{"x"}}
	c := New(f.fn, 10, testDebounce, logging.NewNop())
	ctx := context.Background()

	c.SetSearch(ctx, "a")
	c.SetSearch(ctx, "ad")
	c.SetSearch(ctx, "ada")

	// No fetch inside the quiet period.
	assert.Empty(t, f.calls())

	require.Eventually(t, func() bool {
		return len(f.calls()) == 1
	}, 2*time.Second, 5*time.Millisecond)
	waitIdle(t, c)

	calls := f.calls()
	require.Len(t, calls, 1, "a keystroke burst must collapse to one request")
	assert.Equal(t, "ada", calls[0].Search)
}

func TestSearch_ClearingFetchesImmediately(t *testing.T) {
	f := &recordingFetch{}
	c := New(f.fn, 10, time.Minute, logging.NewNop()) // debounce too long to expire in test
	ctx := context.Background()

	c.SetSearch(ctx, "ada") // timer armed, never fires within the test
	c.SetSearch(ctx, "")

	require.Eventually(t, func() bool {
		return len(f.calls()) == 1
	}, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, "", f.calls()[0].Search)
}

func TestSearch_SameTermIsNoOp(t *testing.T) {
	f := &recordingFetch{}
	c := New(f.fn, 10, testDebounce, logging.NewNop())
	ctx := context.Background()

	c.SetSearch(ctx, "ada")
	time.Sleep(2 * testDebounce)
	waitIdle(t, c)
	c.SetSearch(ctx, "ada")
	time.Sleep(2 * testDebounce)

	assert.Len(t, f.calls(), 1)
}

func TestFailedFetch_KeepsItemsAndSetsError(t *testing.T) {
	f := &recordingFetch{items: []string{"a", "b"}}
	c := New(f.fn, 10, testDebounce, logging.NewNop())
	ctx := context.Background()

	c.Reload(ctx)
	waitIdle(t, c)
	require.Equal(t, []string{"a", "b"}, c.Snapshot().Items)

	f.set(nil, &api.Error{Kind: api.KindNetwork, Message: "cannot reach the server"})
	c.Reload(ctx)
	waitIdle(t, c)

	snap := c.Snapshot()
	assert.Equal(t, []string{"a", "b"}, snap.Items, "a failed fetch must not drop the last good items")
	assert.Equal(t, "cannot reach the server", snap.Err)

	// A successful retry clears the banner.
	f.set([]string{"c"}, nil)
	c.Reload(ctx)
	waitIdle(t, c)
	snap = c.Snapshot()
	assert.Equal(t, []string{"c"}, snap.Items)
	assert.Empty(t, snap.Err)
}

func TestStaleCompletionDiscarded(t *testing.T) {
	release := make(chan struct{})
	var calls atomic.Int32
	fetch := func(ctx context.Context, f services.ListFilter) ([]string, *models.Pagination, error) {
		n := calls.Add(1)
		if n == 1 {
			// First fetch is slow; it completes after the second one.
			<-release
			return []string{"stale"}, nil, nil
		}
		return []string{"fresh"}, nil, nil
	}
	c := New(fetch, 10, testDebounce, logging.NewNop())
	ctx := context.Background()

	c.Reload(ctx)
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
	c.Reload(ctx)
	require.Eventually(t, func() bool {
		snap := c.Snapshot()
		return !snap.Loading && len(snap.Items) > 0
	}, 2*time.Second, 5*time.Millisecond)

	close(release)
	// Give the stale goroutine time to finish and (wrongly) write.
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, []string{"fresh"}, c.Snapshot().Items, "a slow stale response must never overwrite a newer result")
}

func TestApplyCreate_ResetsToPageOne(t *testing.T) {
	f := &recordingFetch{}
	c := New(f.fn, 10, testDebounce, logging.NewNop())
	ctx := context.Background()

	c.SetPage(ctx, 3)
	waitIdle(t, c)
	c.ApplyCreate(ctx)
	waitIdle(t, c)

	calls := f.calls()
	require.Len(t, calls, 2)
	assert.Equal(t, 3, calls[0].Page)
	assert.Equal(t, 1, calls[1].Page, "create must reconcile from page 1")
}

func TestSetTypeOrStatus_RoutesToRightParam(t *testing.T) {
	f := &recordingFetch{}
	c := New(f.fn, 10, testDebounce, logging.NewNop())
	ctx := context.Background()

	c.SetTypeOrStatus(ctx, string(models.ContactClient))
	waitIdle(t, c)
	c.SetTypeOrStatus(ctx, "COMPLETED")
	waitIdle(t, c)
	c.SetTypeOrStatus(ctx, "")
	waitIdle(t, c)

	calls := f.calls()
	require.Len(t, calls, 3)
	assert.Equal(t, "CLIENT", calls[0].Type)
	assert.Empty(t, calls[0].Status)
	assert.Equal(t, "COMPLETED", calls[1].Status)
	assert.Empty(t, calls[1].Type, "switching filter families must clear the other param")
	assert.Empty(t, calls[2].Type)
	assert.Empty(t, calls[2].Status)
}

func TestSetContact_FiltersAndClears(t *testing.T) {
	f := &recordingFetch{}
	c := New(f.fn, 10, testDebounce, logging.NewNop())
	ctx := context.Background()

	id := int64(42)
	c.SetContact(ctx, &id)
	waitIdle(t, c)
	c.SetContact(ctx, &id) // same id, no fetch
	c.SetContact(ctx, nil)
	waitIdle(t, c)

	calls := f.calls()
	require.Len(t, calls, 2)
	require.NotNil(t, calls[0].ContactID)
	assert.Equal(t, int64(42), *calls[0].ContactID)
	assert.Nil(t, calls[1].ContactID)
}

func TestOnChange_FiresOnLoadingAndCompletion(t *testing.T) {
	f := &recordingFetch{items: []string{"a"}}
	c := New(f.fn, 10, testDebounce, logging.NewNop())

	var changes atomic.Int32
	c.OnChange(func() { changes.Add(1) })

	c.Reload(context.Background())
	waitIdle(t, c)

	// One for loading=true, one for the completion.
	assert.GreaterOrEqual(t, changes.Load(), int32(2))
}
