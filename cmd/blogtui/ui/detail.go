package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type postLoadedMsg struct {
	post *Post
	err  error
}

type postDeletedMsg struct{ err error }

// backToListMsg signals transition back to the post list.
type backToListMsg struct{ reload bool }

type DetailModel struct {
	Client   *Client
	Viewport viewport.Model
	Post     *Post
	Err      error
}

func NewDetailModel(c *Client) DetailModel {
	vp := viewport.New(76, 16)
	return DetailModel{Client: c, Viewport: vp}
}

func (m DetailModel) LoadCmd(id uint) tea.Cmd {
	c := m.Client
	return func() tea.Msg {
		p, err := c.GetPost(id)
		return postLoadedMsg{post: p, err: err}
	}
}

func (m DetailModel) deleteCmd() tea.Cmd {
	c, id := m.Client, m.Post.ID
	return func() tea.Msg {
		return postDeletedMsg{err: c.DeletePost(id)}
	}
}

func (m DetailModel) isAuthor() bool {
	return m.Post != nil && m.Client.User != nil && m.Post.AuthorID == m.Client.User.ID
}

func (m DetailModel) Update(msg tea.Msg) (DetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case postLoadedMsg:
		m.Err = msg.err
		if msg.err == nil {
			m.Post = msg.post
			m.Viewport.SetContent(msg.post.Content)
			m.Viewport.GotoTop()
		}
		return m, nil

	case postDeletedMsg:
		if msg.err != nil {
			m.Err = msg.err
			return m, nil
		}
		return m, func() tea.Msg { return backToListMsg{reload: true} }

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return m, func() tea.Msg { return backToListMsg{} }
		case "e":
			if m.isAuthor() {
				post := m.Post
				return m, func() tea.Msg { return composeMsg{post: post} }
			}
		case "d":
			if m.isAuthor() {
				return m, m.deleteCmd()
			}
		}
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

func (m DetailModel) View() string {
	if m.Post == nil {
		if m.Err != nil {
			return errorMessageStyle(m.Err.Error())
		}
		return statusMessageStyle("Loading post...")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.Post.Title) + "\n")

	author := "unknown"
	if m.Post.Author != nil {
		author = m.Post.Author.Username
	}
	b.WriteString(statusMessageStyle(fmt.Sprintf("by %s on %s - %d views, %d likes",
		author, m.Post.CreatedAt.Format("2006-01-02"), m.Post.Views, m.Post.Likes)))
	b.WriteString("\n")
	if len(m.Post.Tags) > 0 {
		b.WriteString(tagStyle.Render("["+strings.Join(m.Post.Tags, "] [")+"]") + "\n")
	}
	b.WriteString("\n" + m.Viewport.View() + "\n\n")

	help := "Esc back, up/down scroll"
	if m.isAuthor() {
		help += ", e edit, d delete"
	}
	b.WriteString(blurredStyle.Render(help))

	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}

	return b.String()
}
