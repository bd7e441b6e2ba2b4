package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mjholt/deckhand/internal/browser"
	"github.com/mjholt/deckhand/pkg/client"
	"github.com/mjholt/deckhand/pkg/domain"
)

// -- messages --

type projectsLoadedMsg struct {
	projects []domain.Project
	err      error
}

type copyResultMsg struct{ err error }

type browseResultMsg struct{ err error }

// openEditorMsg asks the app to open the modal.
type openEditorMsg struct {
	mode    editorMode
	project *domain.Project // nil for add
}

// dashboardModel lists the authoritative project collection. The collection
// is mutated only from confirmed server responses: full reloads here, and
// single-record merges handed over by the app after a save.
type dashboardModel struct {
	client *client.Client
	user   domain.User

	projects []domain.Project
	cursor   int

	search    textinput.Model
	searching bool   // typing in the search box
	query     string // last submitted query, "" for the full list

	loading   bool
	err       error
	statusMsg string
	width     int
	height    int
}

func newDashboardModel(c *client.Client, user domain.User) dashboardModel {
	ti := textinput.New()
	ti.Placeholder = "search projects..."
	ti.Prompt = "/ "
	ti.PromptStyle = inputPromptStyle
	ti.PlaceholderStyle = inputPlaceholderStyle
	ti.CharLimit = 128
	ti.Width = 40

	return dashboardModel{client: c, user: user, search: ti, loading: true}
}

func (m dashboardModel) Init() tea.Cmd {
	return m.loadProjects()
}

// loadProjects fetches the full list, or a server-side search when a query
// is active. Always scoped to the signed-in user.
func (m dashboardModel) loadProjects() tea.Cmd {
	c := m.client
	userID := m.user.ID
	query := m.query
	return func() tea.Msg {
		var projects []domain.Project
		var err error
		if query != "" {
			projects, err = c.SearchProjects(context.Background(), query, &userID)
		} else {
			projects, err = c.ListProjects(context.Background(), &userID)
		}
		return projectsLoadedMsg{projects: projects, err: err}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case projectsLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.projects = msg.projects
		}
		if m.cursor >= len(m.projects) {
			m.cursor = 0
		}
		return m, nil

	case copyResultMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("copy failed: %v", msg.err)
		} else {
			m.statusMsg = "copied!"
		}
		return m, nil

	case browseResultMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("open failed: %v", msg.err)
		} else {
			m.statusMsg = "opened in browser"
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		m.statusMsg = ""
		if m.searching {
			return m.handleSearchKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m dashboardModel) handleSearchKey(msg tea.KeyMsg) (dashboardModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.search.Blur()
		m.query = strings.TrimSpace(m.search.Value())
		m.loading = true
		return m, m.loadProjects()
	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		if m.query != "" {
			m.query = ""
			m.loading = true
			return m, m.loadProjects()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m dashboardModel) handleKey(msg tea.KeyMsg) (dashboardModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.projects)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "/":
		m.searching = true
		return m, m.search.Focus()
	case "enter":
		if m.cursor < len(m.projects) {
			p := m.projects[m.cursor]
			return m, func() tea.Msg { return openEditorMsg{mode: modeView, project: &p} }
		}
	case "a":
		return m, func() tea.Msg { return openEditorMsg{mode: modeAdd} }
	case "r":
		m.loading = true
		return m, m.loadProjects()
	case "c":
		if m.cursor < len(m.projects) {
			url := m.projects[m.cursor].ImageURL()
			if url == "" {
				m.statusMsg = "project has no image"
				return m, nil
			}
			return m, func() tea.Msg {
				return copyResultMsg{err: clipboard.WriteAll(url)}
			}
		}
	case "o":
		if m.cursor < len(m.projects) {
			url := m.projects[m.cursor].ImageURL()
			if url == "" {
				m.statusMsg = "project has no image"
				return m, nil
			}
			return m, func() tea.Msg {
				return browseResultMsg{err: browser.Open(url)}
			}
		}
	}
	return m, nil
}

// mergeCreated inserts the server's new record at the front of the
// collection and selects it.
func (m *dashboardModel) mergeCreated(p domain.Project) {
	m.projects = append([]domain.Project{p}, m.projects...)
	m.cursor = 0
}

// mergeUpdated replaces the matching record in place; order is untouched.
func (m *dashboardModel) mergeUpdated(p domain.Project) {
	for i := range m.projects {
		if m.projects[i].ID == p.ID {
			m.projects[i] = p
			return
		}
	}
}

func (m dashboardModel) View() string {
	var b strings.Builder

	b.WriteString("\n " + selectedStyle.Render("All your projects, in one dashboard.") + "\n")
	b.WriteString(" " + dimStyle.Render("Add projects, track progress, and keep everything organized.") + "\n")

	if m.searching || m.query != "" {
		b.WriteString("\n " + m.search.View() + "\n")
	}

	b.WriteString("\n " + sectionHeaderStyle.Render(fmt.Sprintf("── MY PROJECTS %d ──", len(m.projects))) + "\n")

	switch {
	case m.loading:
		b.WriteString("   " + dimStyle.Render("loading projects...") + "\n")
	case m.err != nil:
		b.WriteString("   " + rejectStyle.Render("failed to load: "+client.Message(m.err)) + "\n")
	case len(m.projects) == 0 && m.query != "":
		b.WriteString("   " + dimStyle.Render(fmt.Sprintf("No projects found matching %q", m.query)) + "\n")
	case len(m.projects) == 0:
		b.WriteString("   " + dimStyle.Render("no projects yet · press a to add one") + "\n")
	default:
		for i, p := range m.projects {
			cursor := "  "
			nameStr := normalStyle.Render(truncStr(p.ProjectName, 32))
			if i == m.cursor {
				cursor = accentStyle.Render("▸") + " "
				nameStr = selectedStyle.Render(truncStr(p.ProjectName, 32))
			}
			marker := ""
			if p.Image != nil {
				marker = " " + accentStyle.Render("[img]")
			}
			fmt.Fprintf(&b, " %s%s  %s%s\n", cursor, nameStr, metaStyle.Render(formatTime(p.UpdatedAt)), marker)
			if d := p.DescriptionText(); d != "" {
				b.WriteString("     " + dimStyle.Render(truncStr(firstLine(d), 64)) + "\n")
			}
		}
	}

	if m.statusMsg != "" {
		b.WriteString("\n " + statusStyle.Render(m.statusMsg) + "\n")
	}
	return b.String()
}

// helpKeys returns the context help for the bottom bar.
func (m dashboardModel) helpKeys() string {
	if m.searching {
		return helpEntry("enter", "search") + "  " + helpEntry("esc", "clear")
	}
	return helpEntry("j/k", "nav") + "  " + helpEntry("enter", "open") + "  " + helpEntry("a", "add") + "  " +
		helpEntry("/", "search") + "  " + helpEntry("c", "copy image url") + "  " + helpEntry("o", "view image") + "  " +
		helpEntry("r", "refresh") + "  " + helpEntry("q", "quit")
}
