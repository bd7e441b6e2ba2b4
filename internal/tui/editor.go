package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mjholt/deckhand/internal/imagefile"
	"github.com/mjholt/deckhand/pkg/client"
	"github.com/mjholt/deckhand/pkg/domain"
)

// editorMode controls editability of the modal.
type editorMode int

const (
	modeAdd  editorMode = iota // empty buffer, editable
	modeView                   // populated from an existing project, read-only
	modeEdit                   // populated, editable
)

// submitPhase tracks the two network steps of a submit. While a phase is in
// flight all keys are ignored, so the modal cannot be double-submitted or
// closed mid-save.
type submitPhase int

const (
	phaseIdle submitPhase = iota
	phaseUploading
	phaseSaving
)

type editorField int

const (
	fieldName editorField = iota
	fieldDescription
	fieldImage
	numEditorFields
)

// -- messages --

// editorClosedMsg tells the app the modal was dismissed without saving.
type editorClosedMsg struct{}

type imageUploadedMsg struct {
	url string
	err error
}

// projectSavedMsg carries the authoritative record back for merging.
type projectSavedMsg struct {
	project *domain.Project
	created bool
	err     error
}

// editorModel is the add/view/edit modal. It owns a transient working copy
// of one project's fields and never touches the dashboard's collection;
// saves hand the server's record back via projectSavedMsg.
type editorModel struct {
	client *client.Client
	user   domain.User

	mode      editorMode
	phase     submitPhase
	projectID int64

	fields   [numEditorFields]string // fieldImage holds the local path being typed
	imageURL string                  // working hosted image reference
	pending  *imagefile.Preview      // newly selected local file, not yet uploaded
	// uploadedPath remembers which selection imageURL came from, so a retry
	// after a failed save does not upload the same file twice.
	uploadedPath string

	focus     editorField
	statusMsg string
	width     int
	height    int
}

func newEditorModel(c *client.Client, user domain.User) editorModel {
	return editorModel{client: c, user: user}
}

func (m editorModel) reset() editorModel {
	m.phase = phaseIdle
	m.projectID = 0
	m.fields = [numEditorFields]string{}
	m.imageURL = ""
	m.pending = nil
	m.uploadedPath = ""
	m.focus = fieldName
	m.statusMsg = ""
	return m
}

// openAdd starts the modal with an empty buffer.
func (m editorModel) openAdd() editorModel {
	m = m.reset()
	m.mode = modeAdd
	return m
}

// openView populates the buffer from an existing project, read-only until
// the user presses e.
func (m editorModel) openView(p domain.Project) editorModel {
	m = m.reset()
	m.mode = modeView
	m.projectID = p.ID
	m.fields[fieldName] = p.ProjectName
	m.fields[fieldDescription] = p.DescriptionText()
	m.imageURL = p.ImageURL()
	return m
}

func (m editorModel) Update(msg tea.Msg) (editorModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case imageUploadedMsg:
		if msg.err != nil {
			// Selection stays in place so the user can retry.
			m.phase = phaseIdle
			m.statusMsg = "upload failed: " + client.Message(msg.err)
			return m, nil
		}
		m.imageURL = msg.url
		if m.pending != nil {
			m.uploadedPath = m.pending.Path
		}
		return m.save()

	case projectSavedMsg:
		// The app closes the modal on success; only failures come back here.
		if msg.err != nil {
			m.phase = phaseIdle
			m.statusMsg = "save failed: " + client.Message(msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m editorModel) handleKey(msg tea.KeyMsg) (editorModel, tea.Cmd) {
	if m.phase != phaseIdle {
		return m, nil
	}

	if m.mode == modeView {
		switch msg.String() {
		case "e":
			m.mode = modeEdit
		case "esc", "q":
			return m, closeEditor()
		}
		return m, nil
	}

	m.statusMsg = ""

	switch msg.String() {
	case "ctrl+s":
		return m.submit()
	case "esc":
		return m, closeEditor()
	case "tab", "down":
		m.focus = (m.focus + 1) % numEditorFields
	case "shift+tab", "up":
		m.focus = (m.focus - 1 + numEditorFields) % numEditorFields
	case "backspace":
		f := &m.fields[m.focus]
		*f = editRune(*f, "backspace")
	case "ctrl+x":
		if m.focus == fieldImage {
			m.pending = nil
			m.uploadedPath = ""
			m.imageURL = ""
			m.fields[fieldImage] = ""
			m.statusMsg = "image cleared"
		}
	case "enter":
		switch m.focus {
		case fieldDescription:
			m.fields[fieldDescription] += "\n"
		case fieldImage:
			m = m.selectImage()
		default:
			m.focus = (m.focus + 1) % numEditorFields
		}
	default:
		f := &m.fields[m.focus]
		*f = editRune(*f, msg.String())
	}
	return m, nil
}

// selectImage validates the typed path. A rejected file leaves the previous
// selection and preview untouched.
func (m editorModel) selectImage() editorModel {
	path := strings.TrimSpace(m.fields[fieldImage])
	if path == "" {
		m.statusMsg = "enter an image path first"
		return m
	}
	p, err := imagefile.Select(path)
	if err != nil {
		m.statusMsg = err.Error()
		return m
	}
	m.pending = p
	m.statusMsg = "image selected"
	return m
}

// submit runs the two-step pipeline: upload the selected image if there is
// a new one, then create or update the project.
func (m editorModel) submit() (editorModel, tea.Cmd) {
	name := strings.TrimSpace(m.fields[fieldName])
	if name == "" {
		m.statusMsg = "name is required"
		return m, nil
	}

	if m.pending != nil && m.pending.Path != m.uploadedPath {
		m.phase = phaseUploading
		pending := m.pending
		c := m.client
		return m, func() tea.Msg {
			url, err := c.UploadImage(context.Background(), pending.Name, pending.Data)
			return imageUploadedMsg{url: url, err: err}
		}
	}
	return m.save()
}

func (m editorModel) save() (editorModel, tea.Cmd) {
	m.phase = phaseSaving

	name := strings.TrimSpace(m.fields[fieldName])
	desc := strings.TrimSpace(m.fields[fieldDescription])
	var descPtr, imgPtr *string
	if desc != "" {
		descPtr = &desc
	}
	if m.imageURL != "" {
		url := m.imageURL
		imgPtr = &url
	}

	c := m.client
	userID := m.user.ID
	if m.mode == modeAdd {
		req := client.CreateProjectRequest{
			UserID:      userID,
			ProjectName: name,
			Image:       imgPtr,
			Description: descPtr,
		}
		return m, func() tea.Msg {
			p, err := c.CreateProject(context.Background(), req)
			return projectSavedMsg{project: p, created: true, err: err}
		}
	}

	id := m.projectID
	req := client.UpdateProjectRequest{
		ProjectName: &name,
		Image:       imgPtr,
		Description: descPtr,
	}
	return m, func() tea.Msg {
		p, err := c.UpdateProject(context.Background(), id, userID, req)
		return projectSavedMsg{project: p, err: err}
	}
}

func closeEditor() tea.Cmd {
	return func() tea.Msg { return editorClosedMsg{} }
}

func (m editorModel) title() string {
	switch m.mode {
	case modeAdd:
		return "Add New Project"
	case modeEdit:
		return "Edit Project"
	default:
		return "Project Details"
	}
}

func (m editorModel) imageLine() string {
	if m.pending != nil {
		return normalStyle.Render(m.pending.Describe()) + " " + dimStyle.Render("(not uploaded)")
	}
	if m.imageURL != "" {
		return normalStyle.Render(m.imageURL)
	}
	return inputPlaceholderStyle.Render("none")
}

func (m editorModel) View() string {
	var b strings.Builder

	b.WriteString(" " + sectionHeaderStyle.Render("── "+m.title()+" ──") + "\n\n")

	if m.mode == modeView {
		fmt.Fprintf(&b, "   %s %s\n", metaStyle.Render("name:"), selectedStyle.Render(m.fields[fieldName]))
		desc := m.fields[fieldDescription]
		if desc == "" {
			desc = inputPlaceholderStyle.Render("no description")
		} else {
			desc = normalStyle.Render(desc)
		}
		fmt.Fprintf(&b, "   %s %s\n", metaStyle.Render("description:"), desc)
		fmt.Fprintf(&b, "   %s %s\n", metaStyle.Render("image:"), m.imageLine())
		return b.String()
	}

	labels := [numEditorFields]string{"name", "description", "image path"}
	for i := editorField(0); i < numEditorFields; i++ {
		cursor := " "
		style := metaStyle
		if i == m.focus {
			cursor = ">"
			style = selectedStyle
		}
		value := m.fields[i]
		if i == m.focus {
			value += "█"
		}
		fmt.Fprintf(&b, " %s %s: %s\n", cursor, style.Render(labels[i]), value)
	}
	b.WriteString("   " + metaStyle.Render("image:") + " " + m.imageLine() + "\n")

	b.WriteString("\n")
	switch {
	case m.phase == phaseUploading:
		b.WriteString(" " + dimStyle.Render("uploading image..."))
	case m.phase == phaseSaving:
		b.WriteString(" " + dimStyle.Render("saving..."))
	case m.statusMsg != "":
		b.WriteString(" " + rejectOrStatus(m.statusMsg))
	}
	return b.String()
}

// rejectOrStatus colors validation noise red and confirmations green.
func rejectOrStatus(msg string) string {
	switch {
	case strings.Contains(msg, "failed"), strings.Contains(msg, "required"),
		strings.Contains(msg, "not an image"), strings.Contains(msg, "exceeds"):
		return rejectStyle.Render(msg)
	default:
		return statusStyle.Render(msg)
	}
}

// helpKeys returns the context help for the bottom bar.
func (m editorModel) helpKeys() string {
	if m.phase != phaseIdle {
		return helpEntry("...", "working")
	}
	if m.mode == modeView {
		return helpEntry("e", "edit") + "  " + helpEntry("esc", "close")
	}
	return helpEntry("tab", "next") + "  " + helpEntry("enter", "pick image") + "  " +
		helpEntry("ctrl+s", "save") + "  " + helpEntry("ctrl+x", "clear image") + "  " + helpEntry("esc", "cancel")
}
