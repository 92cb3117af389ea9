// Package auth owns the authentication session lifecycle: bootstrap from
// the persistent store, token validation, login/register/logout, and the
// published user + loading state the rest of the client reads.
package auth

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/ryan-hugo/cliq-cli/internal/client/api"
	"github.com/ryan-hugo/cliq-cli/internal/client/models"
	"github.com/ryan-hugo/cliq-cli/internal/client/session"
	"github.com/ryan-hugo/cliq-cli/internal/logging"
)

// State is the session lifecycle state.
type State int

const (
	StateUnknown State = iota
	StateChecking
	StateAuthenticated
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateChecking:
		return "checking"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	}
	return "unknown"
}

// Result is what login/register/logout return instead of an error, so UI
// code never needs error handling around auth calls.
type Result struct {
	OK      bool
	Message string
}

// loginResponse is the wire shape of /auth/login and /auth/register.
type loginResponse struct {
	Token  string `json:"token"`
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// Controller is the single owner of the Session data. Invariant:
// authenticated ⇔ user present ⇔ token present, across every transition.
type Controller struct {
	api   *api.Client
	store session.Store
	log   logging.Logger

	mu       sync.Mutex
	state    State
	user     *models.User
	busy     int // in-flight login/register/logout calls
	onChange func()

	stopWatch func()
}

// New builds a Controller in StateUnknown and subscribes to external token
// changes: a token removed by another process flips this one to Anonymous,
// advisory only, with no server round trip.
func New(apiClient *api.Client, store session.Store, log logging.Logger) *Controller {
	c := &Controller{
		api:   apiClient,
		store: store,
		log:   log,
		state: StateUnknown,
	}
	c.stopWatch = store.Watch(session.KeyToken, func(_ string, ok bool) {
		if !ok {
			c.setSession(StateAnonymous, nil)
		}
	})
	return c
}

// Close unsubscribes from the session store watcher.
func (c *Controller) Close() {
	if c.stopWatch != nil {
		c.stopWatch()
	}
}

// OnChange registers a callback fired after every state transition. The
// callback runs without the controller lock held.
func (c *Controller) OnChange(fn func()) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// User returns a copy of the current user, if any.
func (c *Controller) User() (models.User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return models.User{}, false
	}
	return *c.user, true
}

// IsAuthenticated reports whether a session is established.
func (c *Controller) IsAuthenticated() bool {
	return c.State() == StateAuthenticated
}

// Loading is true only while Checking or while a login/register/logout call
// is in flight. Protected views show a loading indicator instead of
// redirecting while this is set.
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateChecking || c.busy > 0
}

// CheckAuth bootstraps the session. Without a stored token it settles on
// Anonymous immediately, no network call. With one it validates against the
// server; any failure clears the store.
func (c *Controller) CheckAuth(ctx context.Context) {
	c.setState(StateChecking)

	token, ok := c.store.Get(session.KeyToken)
	if !ok || token == "" {
		c.setSession(StateAnonymous, nil)
		return
	}

	var user models.User
	if err := c.api.Get(ctx, "/auth/validate", nil, &user); err != nil {
		c.log.Warn(ctx, "token validation failed, clearing session", "error", err)
		c.store.Clear()
		c.setSession(StateAnonymous, nil)
		return
	}

	c.saveUser(user)
	c.setSession(StateAuthenticated, &user)
}

// Login authenticates and establishes a session. On failure no session is
// created and the result carries the server's message.
func (c *Controller) Login(ctx context.Context, email, password string) Result {
	c.beginCall()
	defer c.endCall()

	body := map[string]string{"email": email, "password": password}
	var resp loginResponse
	if err := c.api.Post(ctx, "/auth/login", body, &resp); err != nil {
		c.log.Warn(ctx, "login failed", "error", err)
		return Result{OK: false, Message: api.ErrorMessage(err)}
	}

	c.establish(resp)
	return Result{OK: true, Message: "logged in"}
}

// Register creates the account and the session in one step, from the
// client's point of view atomically.
func (c *Controller) Register(ctx context.Context, name, email, password string) Result {
	c.beginCall()
	defer c.endCall()

	body := map[string]string{"name": name, "email": email, "password": password}
	var resp loginResponse
	if err := c.api.Post(ctx, "/auth/register", body, &resp); err != nil {
		c.log.Warn(ctx, "registration failed", "error", err)
		return Result{OK: false, Message: api.ErrorMessage(err)}
	}

	c.establish(resp)
	return Result{OK: true, Message: "account created"}
}

// Logout invalidates the session server-side on a best-effort basis; the
// local session is cleared regardless of the server outcome.
func (c *Controller) Logout(ctx context.Context) Result {
	c.beginCall()
	defer c.endCall()

	res := Result{OK: true, Message: "logged out"}
	if err := c.api.Post(ctx, "/auth/logout", nil, nil); err != nil {
		c.log.Warn(ctx, "server-side logout failed", "error", err)
		res = Result{OK: false, Message: api.ErrorMessage(err)}
	}

	c.store.Clear()
	c.setSession(StateAnonymous, nil)
	return res
}

// ForceLogout publishes the Anonymous state after the adapter already
// cleared the session on a 401. Local only: the token is gone by the time
// this runs, and the store watcher cannot observe same-process writes, so
// the adapter's unauthorized hook must call this directly.
func (c *Controller) ForceLogout() {
	c.setSession(StateAnonymous, nil)
}

// UpdateUser merges a canonical user record (already returned by a profile
// endpoint) into the cached session. Local only; no server call.
func (c *Controller) UpdateUser(user models.User) {
	c.saveUser(user)
	c.setSession(StateAuthenticated, &user)
}

func (c *Controller) establish(resp loginResponse) {
	user := models.User{ID: resp.UserID, Name: resp.Name, Email: resp.Email}
	c.store.Set(session.KeyToken, resp.Token)
	c.saveUser(user)
	c.setSession(StateAuthenticated, &user)
}

func (c *Controller) saveUser(user models.User) {
	data, err := json.Marshal(user)
	if err != nil {
		c.log.Error(context.Background(), "cannot encode user record", "error", err)
		return
	}
	c.store.Set(session.KeyUser, string(data))
}

func (c *Controller) beginCall() {
	c.mu.Lock()
	c.busy++
	c.mu.Unlock()
}

func (c *Controller) endCall() {
	c.mu.Lock()
	c.busy--
	c.mu.Unlock()
}

func (c *Controller) setState(s State) {
	c.mu.Lock()
	c.state = s
	fn := c.onChange
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func (c *Controller) setSession(s State, user *models.User) {
	c.mu.Lock()
	c.state = s
	c.user = user
	fn := c.onChange
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}
