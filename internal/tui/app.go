package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mjholt/deckhand/internal/debuglog"
	"github.com/mjholt/deckhand/pkg/client"
	"github.com/mjholt/deckhand/pkg/domain"
)

// App is the root Bubbletea model. It owns the signed-in identity, routes
// messages, and decides when the editor modal is on screen. Merging a saved
// project into the dashboard's collection happens here, only after the
// server confirmed the write.
type App struct {
	client     *client.Client
	user       domain.User
	dashboard  dashboardModel
	editor     editorModel
	editorOpen bool
	version    string
	width      int
	height     int
}

// NewApp creates the TUI application for an authenticated user.
func NewApp(c *client.Client, user domain.User, version string) App {
	return App{
		client:    c,
		user:      user,
		dashboard: newDashboardModel(c, user),
		editor:    newEditorModel(c, user),
		version:   version,
	}
}

func (a App) Init() tea.Cmd {
	return a.dashboard.Init()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Chrome: header(2) + blank(1) + help(1) = 4 lines
		bodyMsg := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 4}
		a.dashboard, _ = a.dashboard.Update(bodyMsg)
		a.editor, _ = a.editor.Update(bodyMsg)
		return a, nil

	case openEditorMsg:
		if msg.mode == modeAdd {
			a.editor = a.editor.openAdd()
		} else if msg.project != nil {
			a.editor = a.editor.openView(*msg.project)
		}
		a.editorOpen = true
		return a, nil

	case editorClosedMsg:
		a.editorOpen = false
		return a, nil

	case projectSavedMsg:
		if msg.err != nil {
			debuglog.Error("save project", msg.err)
			var cmd tea.Cmd
			a.editor, cmd = a.editor.Update(msg)
			return a, cmd
		}
		a.editorOpen = false
		if msg.project != nil {
			if msg.created {
				a.dashboard.mergeCreated(*msg.project)
			} else {
				a.dashboard.mergeUpdated(*msg.project)
			}
		}
		return a, nil

	case projectsLoadedMsg, copyResultMsg, browseResultMsg:
		// List results land in the dashboard even if the modal opened meanwhile.
		var cmd tea.Cmd
		a.dashboard, cmd = a.dashboard.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		// Modal captures all keys while open.
		if a.editorOpen {
			var cmd tea.Cmd
			a.editor, cmd = a.editor.Update(msg)
			return a, cmd
		}
		if !a.dashboard.searching {
			switch msg.String() {
			case "q", "ctrl+c":
				return a, tea.Quit
			}
		}
	}

	if a.editorOpen {
		var cmd tea.Cmd
		a.editor, cmd = a.editor.Update(msg)
		return a, cmd
	}
	var cmd tea.Cmd
	a.dashboard, cmd = a.dashboard.Update(msg)
	return a, cmd
}

func (a App) View() string {
	header := renderLogo(a.width)

	userLine := metaStyle.Render(a.user.Name + " · " + a.user.Email + " · " + a.version)
	pad := (a.width - lipgloss.Width(userLine)) / 2
	if pad < 0 {
		pad = 0
	}
	header += "\n" + strings.Repeat(" ", pad) + userLine

	var body, help string
	if a.editorOpen {
		body = a.editor.View()
		help = " " + a.editor.helpKeys()
	} else {
		body = a.dashboard.View()
		help = " " + a.dashboard.helpKeys()
	}

	chrome := 4
	body = strings.TrimRight(truncateToHeight(body, a.height-chrome), "\n")

	return fmt.Sprintf("%s\n%s\n%s", header, body, help)
}
