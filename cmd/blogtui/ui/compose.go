package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type postSavedMsg struct {
	post *Post
	err  error
}

type ComposeModel struct {
	Client   *Client
	Title    textinput.Model
	Tags     textinput.Model
	Content  textarea.Model
	EditID   uint
	FocusIdx int
	Err      error
}

func NewComposeModel(c *Client, post *Post) ComposeModel {
	title := textinput.New()
	title.Prompt = "Title: "
	title.Focus()

	tags := textinput.New()
	tags.Prompt = "Tags: "
	tags.Placeholder = "comma,separated"

	content := textarea.New()
	content.Placeholder = "Write your post..."
	content.SetWidth(76)
	content.SetHeight(10)

	m := ComposeModel{Client: c, Title: title, Tags: tags, Content: content}
	if post != nil {
		m.EditID = post.ID
		m.Title.SetValue(post.Title)
		m.Tags.SetValue(strings.Join(post.Tags, ","))
		m.Content.SetValue(post.Content)
	}
	return m
}

func (m ComposeModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ComposeModel) focus(idx int) tea.Cmd {
	m.Title.Blur()
	m.Tags.Blur()
	m.Content.Blur()
	m.FocusIdx = idx
	switch idx {
	case 0:
		return m.Title.Focus()
	case 1:
		return m.Tags.Focus()
	default:
		return m.Content.Focus()
	}
}

func (m ComposeModel) submit() tea.Msg {
	tags := []string{}
	for _, t := range strings.Split(m.Tags.Value(), ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}

	var (
		post *Post
		err  error
	)
	if m.EditID != 0 {
		post, err = m.Client.UpdatePost(m.EditID, m.Title.Value(), m.Content.Value(), tags)
	} else {
		post, err = m.Client.CreatePost(m.Title.Value(), m.Content.Value(), tags)
	}
	return postSavedMsg{post: post, err: err}
}

func (m ComposeModel) Update(msg tea.Msg) (ComposeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case postSavedMsg:
		if msg.err != nil {
			m.Err = msg.err
			return m, nil
		}
		return m, func() tea.Msg { return backToListMsg{reload: true} }

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			return m, func() tea.Msg { return backToListMsg{} }
		case tea.KeyCtrlS:
			return m, m.submit
		case tea.KeyTab:
			return m, m.focus((m.FocusIdx + 1) % 3)
		case tea.KeyShiftTab:
			return m, m.focus((m.FocusIdx + 2) % 3)
		}
	}

	var cmds [3]tea.Cmd
	m.Title, cmds[0] = m.Title.Update(msg)
	m.Tags, cmds[1] = m.Tags.Update(msg)
	m.Content, cmds[2] = m.Content.Update(msg)
	return m, tea.Batch(cmds[0], cmds[1], cmds[2])
}

func (m ComposeModel) View() string {
	var b strings.Builder

	header := "Miniblog - New Post"
	if m.EditID != 0 {
		header = "Miniblog - Edit Post"
	}
	b.WriteString(titleStyle.Render(header) + "\n\n")
	b.WriteString(m.Title.View() + "\n")
	b.WriteString(m.Tags.View() + "\n\n")
	b.WriteString(m.Content.View() + "\n\n")
	b.WriteString(blurredStyle.Render("Tab to change fields, Ctrl+S to save, Esc to cancel"))

	if m.Err != nil {
		b.WriteString("\n\n" + errorMessageStyle(m.Err.Error()))
	}

	return b.String()
}
