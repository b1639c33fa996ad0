package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type postsLoadedMsg struct {
	page *PostPage
	err  error
}

// openPostMsg asks the root model to show one post.
type openPostMsg struct{ id uint }

// composeMsg asks the root model to open the compose form, optionally
// pre-filled with an existing post for editing.
type composeMsg struct{ post *Post }

type ListModel struct {
	Client    *Client
	Table     table.Model
	Search    textinput.Model
	Page      *PostPage
	pageNum   int
	search    string
	tag       string
	searching bool
	Err       error
}

func NewListModel(c *Client) ListModel {
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Title", Width: 36},
		{Title: "Author", Width: 14},
		{Title: "Tags", Width: 22},
		{Title: "Created", Width: 16},
	}
	t := table.New(table.WithColumns(columns), table.WithFocused(true), table.WithHeight(12))

	search := textinput.New()
	search.Prompt = "Search: "

	return ListModel{Client: c, Table: t, Search: search, pageNum: 1}
}

func (m ListModel) LoadCmd() tea.Cmd {
	c, page, search, tag := m.Client, m.pageNum, m.search, m.tag
	return func() tea.Msg {
		p, err := c.ListPosts(page, search, tag)
		return postsLoadedMsg{page: p, err: err}
	}
}

func (m ListModel) Update(msg tea.Msg) (ListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case postsLoadedMsg:
		m.Err = msg.err
		if msg.err == nil {
			m.Page = msg.page
			rows := make([]table.Row, 0, len(msg.page.Posts))
			for _, p := range msg.page.Posts {
				author := ""
				if p.Author != nil {
					author = p.Author.Username
				}
				rows = append(rows, table.Row{
					fmt.Sprintf("%d", p.ID),
					p.Title,
					author,
					strings.Join(p.Tags, ", "),
					p.CreatedAt.Format("2006-01-02 15:04"),
				})
			}
			m.Table.SetRows(rows)
		}
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			switch msg.Type {
			case tea.KeyEnter:
				m.searching = false
				m.Search.Blur()
				m.search = m.Search.Value()
				m.pageNum = 1
				return m, m.LoadCmd()
			case tea.KeyEsc:
				m.searching = false
				m.Search.Blur()
				m.Search.SetValue("")
				m.search = ""
				m.pageNum = 1
				return m, m.LoadCmd()
			}
			var cmd tea.Cmd
			m.Search, cmd = m.Search.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "/":
			m.searching = true
			return m, m.Search.Focus()
		case "r":
			return m, m.LoadCmd()
		case "n":
			return m, func() tea.Msg { return composeMsg{} }
		case "right", "l":
			if m.Page != nil && m.pageNum < m.Page.TotalPages {
				m.pageNum++
				return m, m.LoadCmd()
			}
		case "left", "h":
			if m.pageNum > 1 {
				m.pageNum--
				return m, m.LoadCmd()
			}
		case "enter":
			if id := m.selectedID(); id != 0 {
				return m, func() tea.Msg { return openPostMsg{id: id} }
			}
		}
	}

	var cmd tea.Cmd
	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func (m ListModel) selectedID() uint {
	row := m.Table.SelectedRow()
	if row == nil {
		return 0
	}
	var id uint
	_, _ = fmt.Sscanf(row[0], "%d", &id)
	return id
}

func (m ListModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Miniblog - Posts") + "\n\n")
	if m.searching {
		b.WriteString(m.Search.View() + "\n\n")
	}
	b.WriteString(m.Table.View() + "\n\n")

	if m.Page != nil {
		b.WriteString(statusMessageStyle(fmt.Sprintf("Page %d/%d - %d posts", m.Page.CurrentPage, m.Page.TotalPages, m.Page.TotalPosts)))
		b.WriteString("\n")
	}
	b.WriteString(blurredStyle.Render("Enter view, n new, / search, h/l pages, r refresh, Ctrl+C quit"))

	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}

	return b.String()
}
