package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	inputServer = iota
	inputUsername
	inputEmail
	inputPassword
)

type loginDoneMsg struct{ err error }

type LoginModel struct {
	Client   *Client
	Inputs   []textinput.Model
	FocusIdx int
	Register bool
	Err      error
}

func NewLoginModel(c *Client) LoginModel {
	inputs := make([]textinput.Model, 4)

	inputs[inputServer] = textinput.New()
	inputs[inputServer].Prompt = "Server: "
	inputs[inputServer].SetValue(c.BaseURL)
	inputs[inputServer].Focus()

	inputs[inputUsername] = textinput.New()
	inputs[inputUsername].Prompt = "Username: "
	inputs[inputUsername].Placeholder = "new accounts only"

	inputs[inputEmail] = textinput.New()
	inputs[inputEmail].Prompt = "Email: "
	inputs[inputEmail].Placeholder = "you@example.com"

	inputs[inputPassword] = textinput.New()
	inputs[inputPassword].Prompt = "Password: "
	inputs[inputPassword].EchoMode = textinput.EchoPassword

	return LoginModel{Client: c, Inputs: inputs}
}

func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.Inputs))

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			if m.FocusIdx == len(m.Inputs)-1 {
				return m, m.submit
			}
			m.nextInput()
		case tea.KeyTab, tea.KeyDown:
			m.nextInput()
		case tea.KeyShiftTab, tea.KeyUp:
			m.prevInput()
		case tea.KeyCtrlR:
			m.Register = !m.Register
		}
	case loginDoneMsg:
		m.Err = msg.err
		return m, nil
	}

	for i := range m.Inputs {
		m.Inputs[i], cmds[i] = m.Inputs[i].Update(msg)
	}

	return m, tea.Batch(cmds...)
}

func (m *LoginModel) nextInput() {
	m.Inputs[m.FocusIdx].Blur()
	m.FocusIdx++
	if m.FocusIdx >= len(m.Inputs) {
		m.FocusIdx = 0
	}
	if !m.Register && m.FocusIdx == inputUsername {
		m.FocusIdx++
	}
	m.Inputs[m.FocusIdx].Focus()
}

func (m *LoginModel) prevInput() {
	m.Inputs[m.FocusIdx].Blur()
	m.FocusIdx--
	if !m.Register && m.FocusIdx == inputUsername {
		m.FocusIdx--
	}
	if m.FocusIdx < 0 {
		m.FocusIdx = len(m.Inputs) - 1
	}
	m.Inputs[m.FocusIdx].Focus()
}

func (m LoginModel) submit() tea.Msg {
	m.Client.BaseURL = strings.TrimRight(m.Inputs[inputServer].Value(), "/")
	email := m.Inputs[inputEmail].Value()
	password := m.Inputs[inputPassword].Value()

	var err error
	if m.Register {
		err = m.Client.Register(m.Inputs[inputUsername].Value(), email, password)
	} else {
		err = m.Client.Login(email, password)
	}
	return loginDoneMsg{err: err}
}

func (m LoginModel) View() string {
	var b strings.Builder

	header := "Miniblog - Sign In"
	if m.Register {
		header = "Miniblog - Register"
	}
	b.WriteString(titleStyle.Render(header) + "\n\n")

	for i := range m.Inputs {
		if !m.Register && i == inputUsername {
			continue
		}
		b.WriteString(m.Inputs[i].View())
		b.WriteRune('\n')
	}

	b.WriteString("\n")
	b.WriteString(blurredStyle.Render("Tab to change fields, Enter to submit, Ctrl+R to toggle register"))

	if m.Err != nil {
		b.WriteString("\n\n")
		b.WriteString(errorMessageStyle(m.Err.Error()))
	}

	return b.String()
}
