package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type state int

const (
	stateLogin state = iota
	stateList
	stateDetail
	stateCompose
)

type RootModel struct {
	State   state
	Client  *Client
	Login   LoginModel
	List    ListModel
	Detail  DetailModel
	Compose ComposeModel
	width   int
	height  int
}

func NewRootModel(serverURL string) RootModel {
	c := NewClient(serverURL)
	return RootModel{
		State:  stateLogin,
		Client: c,
		Login:  NewLoginModel(c),
		List:   NewListModel(c),
		Detail: NewDetailModel(c),
	}
}

func (m RootModel) Init() tea.Cmd {
	return m.Login.Init()
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.List.Table.SetHeight(msg.Height - 10)
		m.Detail.Viewport.Width = msg.Width - 4
		m.Detail.Viewport.Height = msg.Height - 10

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

	case loginDoneMsg:
		if msg.err == nil {
			m.State = stateList
			return m, m.List.LoadCmd()
		}

	case openPostMsg:
		m.State = stateDetail
		m.Detail.Post = nil
		m.Detail.Err = nil
		return m, m.Detail.LoadCmd(msg.id)

	case composeMsg:
		m.State = stateCompose
		m.Compose = NewComposeModel(m.Client, msg.post)
		return m, m.Compose.Init()

	case backToListMsg:
		m.State = stateList
		if msg.reload {
			return m, m.List.LoadCmd()
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.State {
	case stateLogin:
		m.Login, cmd = m.Login.Update(msg)
	case stateList:
		m.List, cmd = m.List.Update(msg)
	case stateDetail:
		m.Detail, cmd = m.Detail.Update(msg)
	case stateCompose:
		m.Compose, cmd = m.Compose.Update(msg)
	}
	return m, cmd
}

func (m RootModel) View() string {
	var view string
	switch m.State {
	case stateLogin:
		view = m.Login.View()
	case stateList:
		view = m.List.View()
	case stateDetail:
		view = m.Detail.View()
	case stateCompose:
		view = m.Compose.View()
	}
	return docStyle.Render(view)
}
