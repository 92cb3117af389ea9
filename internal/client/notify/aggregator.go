// Package notify derives ephemeral, client-only notifications from the
// user statistics endpoint. Nothing here is persisted or sent to the
// server; each poll replaces the whole collection, which also resets the
// read flags. That reset is a documented property of the feature, not an
// oversight.
package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ryan-hugo/cliq-cli/internal/client/models"
	"github.com/ryan-hugo/cliq-cli/internal/client/services"
	"github.com/ryan-hugo/cliq-cli/internal/logging"
)

// DefaultPollInterval matches the reference client's five-minute cycle.
const DefaultPollInterval = 5 * time.Minute

// Type is the notification severity.
type Type string

const (
	TypeWarning Type = "warning"
	TypeInfo    Type = "info"
	TypeError   Type = "error"
	TypeSuccess Type = "success"
)

// Action points the user at the view that resolves the notification.
type Action struct {
	Label string
	Path  string
}

// Notification is one derived entry. IDs are stable per trigger so a
// regenerated collection lines up with the previous one.
type Notification struct {
	ID        string
	Type      Type
	Title     string
	Message   string
	Action    *Action
	CreatedAt time.Time
	Read      bool
}

// Aggregator polls the stats endpoint and keeps the derived collection.
type Aggregator struct {
	users    *services.Users
	log      logging.Logger
	interval time.Duration

	mu       sync.Mutex
	items    []Notification
	loading  bool
	onChange func()

	stopOnce sync.Once
	stop     chan struct{}
}

// New builds an Aggregator polling every interval (DefaultPollInterval when
// zero).
func New(users *services.Users, interval time.Duration, log logging.Logger) *Aggregator {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Aggregator{
		users:    users,
		log:      log,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// OnChange registers a callback fired after the collection changes, without
// the lock held.
func (a *Aggregator) OnChange(fn func()) {
	a.mu.Lock()
	a.onChange = fn
	a.mu.Unlock()
}

// Start loads once, then polls until ctx is canceled or Stop is called.
func (a *Aggregator) Start(ctx context.Context) {
	a.Load(ctx)

	go func() {
		ticker := time.NewTicker(a.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				a.Load(ctx)
			case <-a.stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop ends the polling loop.
func (a *Aggregator) Stop() {
	a.stopOnce.Do(func() { close(a.stop) })
}

// Load fetches stats and replaces the collection wholesale. A failed poll
// is logged and leaves the previous collection in place.
func (a *Aggregator) Load(ctx context.Context) {
	a.setLoading(true)
	defer a.setLoading(false)

	stats, err := a.users.Stats(ctx)
	if err != nil {
		a.log.Warn(ctx, "notification poll failed", "error", err)
		return
	}

	items := Derive(*stats, time.Now())
	a.mu.Lock()
	a.items = items
	fn := a.onChange
	a.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Derive maps statistics to notifications using fixed thresholds. The
// mapping is deterministic: same stats, same collection.
func Derive(stats models.UserStats, now time.Time) []Notification {
	var out []Notification

	if stats.OverdueTasks > 0 {
		out = append(out, Notification{
			ID:        "overdue-tasks",
			Type:      TypeWarning,
			Title:     "Overdue tasks",
			Message:   fmt.Sprintf("You have %d overdue task(s)", stats.OverdueTasks),
			Action:    &Action{Label: "View tasks", Path: "/tasks"},
			CreatedAt: now,
		})
	}
	if stats.PendingTasks > 0 {
		out = append(out, Notification{
			ID:        "pending-tasks",
			Type:      TypeInfo,
			Title:     "Pending tasks",
			Message:   fmt.Sprintf("You have %d pending task(s)", stats.PendingTasks),
			Action:    &Action{Label: "View tasks", Path: "/tasks"},
			CreatedAt: now,
		})
	}
	if stats.ActiveProjects > 0 {
		out = append(out, Notification{
			ID:        "active-projects",
			Type:      TypeInfo,
			Title:     "Active projects",
			Message:   fmt.Sprintf("You have %d project(s) in progress", stats.ActiveProjects),
			Action:    &Action{Label: "View projects", Path: "/projects"},
			CreatedAt: now,
		})
	}
	return out
}

// Snapshot returns a copy of the current collection.
func (a *Aggregator) Snapshot() []Notification {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Notification, len(a.items))
	copy(out, a.items)
	return out
}

// Loading reports whether a poll is in flight.
func (a *Aggregator) Loading() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loading
}

// MarkAsRead flags one notification read, in memory only.
func (a *Aggregator) MarkAsRead(id string) {
	a.mu.Lock()
	for i := range a.items {
		if a.items[i].ID == id {
			a.items[i].Read = true
		}
	}
	fn := a.onChange
	a.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// MarkAllAsRead flags the whole collection read, in memory only.
func (a *Aggregator) MarkAllAsRead() {
	a.mu.Lock()
	for i := range a.items {
		a.items[i].Read = true
	}
	fn := a.onChange
	a.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// UnreadCount returns how many notifications are unread.
func (a *Aggregator) UnreadCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := 0
	for _, it := range a.items {
		if !it.Read {
			n++
		}
	}
	return n
}

func (a *Aggregator) setLoading(v bool) {
	a.mu.Lock()
	a.loading = v
	a.mu.Unlock()
}
