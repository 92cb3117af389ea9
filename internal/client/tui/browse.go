package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ryan-hugo/cliq-cli/internal/client/listpage"
	"github.com/ryan-hugo/cliq-cli/internal/client/models"
)

type tab int

const (
	tabContacts tab = iota
	tabTasks
	tabProjects
	tabInteractions
	tabCount
)

var tabNames = [tabCount]string{"Contacts", "Tasks", "Projects", "Interactions"}

type resourceControllers struct {
	contacts     *listpage.Controller[models.Contact]
	tasks        *listpage.TasksController
	projects     *listpage.Controller[models.Project]
	interactions *listpage.Controller[models.Interaction]
}

// authCheckedMsg reports the result of the session bootstrap.
type authCheckedMsg struct{}

// actionErrMsg surfaces a failed row action (toggle, delete) as a banner.
type actionErrMsg struct{ err error }

// browseModel is the root model. It shows the login form until a session
// exists, then the tabbed resource lists.
type browseModel struct {
	ctx   context.Context
	deps  Deps
	ctrls resourceControllers

	checking     bool
	login        loginModel
	pollsStarted bool

	active    tab
	loaded    [tabCount]bool
	cursor    [tabCount]int
	search    textinput.Model
	searching bool

	confirmDelete bool
	actionErr     string

	spin   spinner.Model
	width  int
	height int
}

func newBrowseModel(ctx context.Context, deps Deps, ctrls resourceControllers) browseModel {
	search := textinput.New()
	search.Placeholder = "type to search"
	search.Prompt = "/ "

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))

	return browseModel{
		ctx:      ctx,
		deps:     deps,
		ctrls:    ctrls,
		checking: true,
		login:    newLoginModel(ctx, deps.Auth),
		search:   search,
		spin:     sp,
	}
}

func (m browseModel) Init() tea.Cmd {
	return tea.Batch(
		m.spin.Tick,
		func() tea.Msg {
			m.deps.Auth.CheckAuth(m.ctx)
			return authCheckedMsg{}
		},
	)
}

// enterBrowse loads the first tab and starts the notification poller.
func (m *browseModel) enterBrowse() {
	m.checking = false
	if !m.pollsStarted {
		m.pollsStarted = true
		m.deps.Notifications.Start(m.ctx)
	}
	m.loadTab(m.active)
}

func (m *browseModel) loadTab(t tab) {
	if m.loaded[t] {
		return
	}
	m.loaded[t] = true
	m.controller(t).Reload(m.ctx)
}

// controller returns the active tab's controller behind the shared
// interface the generic snapshots cannot give us.
func (m *browseModel) controller(t tab) interface {
	Reload(ctx context.Context)
	SetSearch(ctx context.Context, term string)
	SetPage(ctx context.Context, page int)
	ApplyDelete(ctx context.Context)
} {
	switch t {
	case tabContacts:
		return m.ctrls.contacts
	case tabTasks:
		return m.ctrls.tasks.Controller
	case tabProjects:
		return m.ctrls.projects
	default:
		return m.ctrls.interactions
	}
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case refreshMsg:
		if !m.checking && !m.deps.Auth.IsAuthenticated() {
			// Session died underneath us (401 or external logout); fall
			// back to the login form.
			m.login = newLoginModel(m.ctx, m.deps.Auth)
			m.loaded = [tabCount]bool{}
		}
		m.clampCursor()
		return m, nil

	case authCheckedMsg:
		m.checking = false
		if m.deps.Auth.IsAuthenticated() {
			m.enterBrowse()
		}
		return m, nil

	case loginDoneMsg:
		var cmd tea.Cmd
		m.login, cmd = m.login.Update(msg)
		if msg.result.OK {
			m.enterBrowse()
		}
		return m, cmd

	case actionErrMsg:
		if msg.err != nil {
			m.actionErr = msg.err.Error()
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.checking {
			return m, nil
		}
		if !m.deps.Auth.IsAuthenticated() {
			var cmd tea.Cmd
			m.login, cmd = m.login.Update(msg)
			return m, cmd
		}
		return m.updateBrowseKeys(msg)
	}

	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m browseModel) updateBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.actionErr = ""

	if m.confirmDelete {
		switch msg.String() {
		case "y", "Y":
			m.confirmDelete = false
			return m, m.deleteSelected()
		default:
			m.confirmDelete = false
			return m, nil
		}
	}

	if m.searching {
		switch msg.String() {
		case "esc":
			m.searching = false
			m.search.Blur()
			m.search.SetValue("")
			m.controller(m.active).SetSearch(m.ctx, "")
			return m, nil
		case "enter":
			m.searching = false
			m.search.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			// The controller debounces; keystrokes are free to stream.
			m.controller(m.active).SetSearch(m.ctx, m.search.Value())
			return m, cmd
		}
	}

	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit

	case "tab", "right", "l":
		m.switchTab((m.active + 1) % tabCount)
		return m, nil
	case "shift+tab", "left", "h":
		m.switchTab((m.active + tabCount - 1) % tabCount)
		return m, nil
	case "1", "2", "3", "4":
		m.switchTab(tab(msg.String()[0] - '1'))
		return m, nil

	case "up", "k":
		if m.cursor[m.active] > 0 {
			m.cursor[m.active]--
		}
		return m, nil
	case "down", "j":
		m.cursor[m.active]++
		m.clampCursor()
		return m, nil

	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink

	case "r":
		m.controller(m.active).Reload(m.ctx)
		return m, nil

	case "n":
		if m.active == tabTasks && m.ctrls.tasks.HasNext() {
			m.ctrls.tasks.NextPage(m.ctx)
			m.cursor[tabTasks] = 0
		}
		return m, nil
	case "p":
		if m.active == tabTasks && m.ctrls.tasks.HasPrev() {
			m.ctrls.tasks.PrevPage(m.ctx)
			m.cursor[tabTasks] = 0
		}
		return m, nil

	case " ":
		if m.active == tabTasks {
			return m, m.toggleSelectedTask()
		}
		return m, nil

	case "d":
		if m.selectedID() != 0 {
			m.confirmDelete = true
		}
		return m, nil

	case "m":
		m.deps.Notifications.MarkAllAsRead()
		return m, nil
	}
	return m, nil
}

func (m *browseModel) switchTab(t tab) {
	if t == m.active {
		return
	}
	m.active = t
	m.searching = false
	m.search.SetValue("")
	m.search.Blur()
	m.loadTab(t)
}

func (m *browseModel) clampCursor() {
	n := m.rowCount(m.active)
	if n == 0 {
		m.cursor[m.active] = 0
	} else if m.cursor[m.active] >= n {
		m.cursor[m.active] = n - 1
	}
}

func (m *browseModel) rowCount(t tab) int {
	switch t {
	case tabContacts:
		return len(m.ctrls.contacts.Snapshot().Items)
	case tabTasks:
		return len(m.ctrls.tasks.Snapshot().Items)
	case tabProjects:
		return len(m.ctrls.projects.Snapshot().Items)
	default:
		return len(m.ctrls.interactions.Snapshot().Items)
	}
}

// selectedID returns the id of the row under the cursor, 0 when the list
// is empty.
func (m *browseModel) selectedID() int64 {
	i := m.cursor[m.active]
	switch m.active {
	case tabContacts:
		if items := m.ctrls.contacts.Snapshot().Items; i < len(items) {
			return items[i].ID
		}
	case tabTasks:
		if items := m.ctrls.tasks.Snapshot().Items; i < len(items) {
			return items[i].ID
		}
	case tabProjects:
		if items := m.ctrls.projects.Snapshot().Items; i < len(items) {
			return items[i].ID
		}
	default:
		if items := m.ctrls.interactions.Snapshot().Items; i < len(items) {
			return items[i].ID
		}
	}
	return 0
}

func (m *browseModel) toggleSelectedTask() tea.Cmd {
	items := m.ctrls.tasks.Snapshot().Items
	i := m.cursor[tabTasks]
	if i >= len(items) {
		return nil
	}
	task := items[i]
	return func() tea.Msg {
		return actionErrMsg{err: m.ctrls.tasks.Toggle(m.ctx, task)}
	}
}

func (m *browseModel) deleteSelected() tea.Cmd {
	id := m.selectedID()
	if id == 0 {
		return nil
	}
	active := m.active
	return func() tea.Msg {
		var err error
		switch active {
		case tabContacts:
			err = m.deps.Contacts.Delete(m.ctx, id)
		case tabTasks:
			err = m.deps.Tasks.Delete(m.ctx, id)
		case tabProjects:
			err = m.deps.Projects.Delete(m.ctx, id)
		default:
			err = m.deps.Interactions.Delete(m.ctx, id)
		}
		if err == nil {
			m.controller(active).ApplyDelete(m.ctx)
		}
		return actionErrMsg{err: err}
	}
}

func (m browseModel) View() string {
	if m.checking {
		return lipgloss.NewStyle().Padding(1, 2).Render(m.spin.View() + " checking session...")
	}
	if !m.deps.Auth.IsAuthenticated() {
		return m.login.View()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	b.WriteString(m.renderRows())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m browseModel) renderHeader() string {
	var tabs []string
	for t := tab(0); t < tabCount; t++ {
		if t == m.active {
			tabs = append(tabs, activeTabStyle.Render(tabNames[t]))
		} else {
			tabs = append(tabs, tabStyle.Render(tabNames[t]))
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if unread := m.deps.Notifications.UnreadCount(); unread > 0 {
		line += "  " + badgeStyle.Render(fmt.Sprintf("● %d", unread))
	}
	return line
}

func (m browseModel) renderRows() string {
	type row struct {
		text string
		done bool
	}
	var (
		rows     []row
		loading  bool
		fetchErr string
	)

	switch m.active {
	case tabContacts:
		snap := m.ctrls.contacts.Snapshot()
		loading, fetchErr = snap.Loading, snap.Err
		for _, c := range snap.Items {
			rows = append(rows, row{text: fmt.Sprintf("%-25s %-28s %-7s %s", clip(c.Name, 24), clip(c.Email, 27), c.Type, clip(c.Company, 16))})
		}
	case tabTasks:
		snap := m.ctrls.tasks.Snapshot()
		loading, fetchErr = snap.Loading, snap.Err
		for _, t := range snap.Items {
			mark := "[ ]"
			if t.Status == models.TaskCompleted {
				mark = "[x]"
			}
			rows = append(rows, row{
				text: fmt.Sprintf("%s %-38s %-7s %s", mark, clip(t.Title, 37), t.Priority, clip(t.DueDate, 10)),
				done: t.Status == models.TaskCompleted,
			})
		}
	case tabProjects:
		snap := m.ctrls.projects.Snapshot()
		loading, fetchErr = snap.Loading, snap.Err
		for _, p := range snap.Items {
			rows = append(rows, row{text: fmt.Sprintf("%-32s %-12s %-11s %s", clip(p.Name, 31), p.Status, clip(p.StartDate, 10), clip(p.EndDate, 10))})
		}
	default:
		snap := m.ctrls.interactions.Snapshot()
		loading, fetchErr = snap.Loading, snap.Err
		for _, in := range snap.Items {
			contact := ""
			if in.Contact != nil {
				contact = in.Contact.Name
			}
			rows = append(rows, row{text: fmt.Sprintf("%-8s %-11s %-30s %s", in.Type, clip(in.Date, 10), clip(in.Subject, 29), clip(contact, 16))})
		}
	}

	var b strings.Builder
	if loading {
		b.WriteString(m.spin.View() + " loading\n")
	}
	if fetchErr != "" {
		b.WriteString(errorStyle.Render(fetchErr) + helpStyle.Render("  (r to retry)") + "\n")
	}
	if len(rows) == 0 && !loading {
		b.WriteString(rowStyle.Render("Nothing here yet."))
		return b.String()
	}
	for i, r := range rows {
		style := rowStyle
		switch {
		case i == m.cursor[m.active]:
			style = selectedRowStyle
		case r.done:
			style = doneStyle
		}
		b.WriteString(style.Render(r.text))
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m browseModel) renderFooter() string {
	if m.confirmDelete {
		return errorStyle.Render(fmt.Sprintf("Delete %s %d? (y/N)", strings.ToLower(strings.TrimSuffix(tabNames[m.active], "s")), m.selectedID()))
	}
	if m.actionErr != "" {
		return errorStyle.Render(m.actionErr)
	}

	help := "tab switch • / search • d delete • r reload • q quit"
	if m.active == tabTasks {
		help = "space toggle • n/p page • " + help
		if pg := m.ctrls.tasks.Snapshot().Pagination; pg != nil && pg.TotalPages > 1 {
			help = fmt.Sprintf("page %d/%d • ", pg.CurrentPage, pg.TotalPages) + help
		}
	}
	return helpStyle.Render(help)
}

func clip(s string, n int) string {
	// Cut on runes, not bytes; a byte cut can split a multi-byte character.
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
