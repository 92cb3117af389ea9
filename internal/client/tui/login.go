package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ryan-hugo/cliq-cli/internal/client/auth"
)

// loginModel is the sign-in form shown while the session is anonymous.
type loginModel struct {
	ctx    context.Context
	auth   *auth.Controller
	inputs []textinput.Model
	focus  int
	errMsg string
	busy   bool
}

// loginDoneMsg carries the outcome of a sign-in attempt.
type loginDoneMsg struct {
	result auth.Result
}

func newLoginModel(ctx context.Context, c *auth.Controller) loginModel {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.Prompt = "Email:    "
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.Prompt = "Password: "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return loginModel{
		ctx:    ctx,
		auth:   c,
		inputs: []textinput.Model{email, password},
	}
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		m.busy = false
		if !msg.result.OK {
			m.errMsg = msg.result.Message
		}
		return m, nil

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			m.focus = (m.focus + 1) % len(m.inputs)
			for i := range m.inputs {
				if i == m.focus {
					m.inputs[i].Focus()
				} else {
					m.inputs[i].Blur()
				}
			}
			return m, textinput.Blink

		case "enter":
			if m.focus < len(m.inputs)-1 {
				m.focus++
				m.inputs[0].Blur()
				m.inputs[1].Focus()
				return m, textinput.Blink
			}
			email := strings.TrimSpace(m.inputs[0].Value())
			password := m.inputs[1].Value()
			if email == "" || password == "" {
				m.errMsg = "Email and password are required."
				return m, nil
			}
			m.busy = true
			m.errMsg = ""
			return m, func() tea.Msg {
				return loginDoneMsg{result: m.auth.Login(m.ctx, email, password)}
			}
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("cliq — sign in"))
	b.WriteString("\n\n")
	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	if m.busy {
		b.WriteString("\n" + rowStyle.Render("Signing in..."))
	} else if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	}
	b.WriteString("\n\n" + helpStyle.Render("enter submit • tab switch field • ctrl+c quit"))
	return lipgloss.NewStyle().Padding(1, 2).Render(frameStyle.Render(b.String()))
}
