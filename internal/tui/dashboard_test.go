package tui

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mjholt/deckhand/pkg/client"
	"github.com/mjholt/deckhand/pkg/domain"
)

func testDashboard(c *client.Client, projects ...domain.Project) dashboardModel {
	m := newDashboardModel(c, domain.User{ID: 7, Name: "Sam", Email: "sam@example.com"})
	m.projects = projects
	m.loading = false
	return m
}

func project(id int64, name string) domain.Project {
	return domain.Project{ID: id, UserID: 7, ProjectName: name, UpdatedAt: time.Now()}
}

func TestLoadProjectsScopedToUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/projects" {
			t.Errorf("path = %q, want /projects", r.URL.Path)
		}
		if got := r.URL.Query().Get("userId"); got != "7" {
			t.Errorf("userId = %q, want 7", got)
		}
		w.Write([]byte(`[{"id":1,"userId":7,"projectName":"Alpha"}]`))
	}))
	defer srv.Close()

	m := testDashboard(client.New(srv.URL, "tok"))
	msg := m.loadProjects()().(projectsLoadedMsg)
	if msg.err != nil {
		t.Fatalf("load: %v", msg.err)
	}
	if len(msg.projects) != 1 || msg.projects[0].ProjectName != "Alpha" {
		t.Errorf("projects = %+v", msg.projects)
	}
}

func TestLoadProjectsUsesSearchWhenQueryActive(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/projects/search" {
			t.Errorf("path = %q, want /projects/search", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "alpha" {
			t.Errorf("q = %q, want alpha", got)
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	m := testDashboard(client.New(srv.URL, "tok"))
	m.query = "alpha"
	if msg := m.loadProjects()().(projectsLoadedMsg); msg.err != nil {
		t.Fatalf("load: %v", msg.err)
	}
}

func TestMergeCreatedInsertsAtFront(t *testing.T) {
	m := testDashboard(nil, project(1, "Alpha"), project(2, "Beta"))
	m.cursor = 1

	m.mergeCreated(project(3, "Gamma"))

	if len(m.projects) != 3 {
		t.Fatalf("len = %d, want 3", len(m.projects))
	}
	if m.projects[0].ID != 3 {
		t.Errorf("first project id = %d, want 3 (new record at front)", m.projects[0].ID)
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
}

func TestMergeUpdatedReplacesInPlace(t *testing.T) {
	m := testDashboard(nil, project(1, "Alpha"), project(2, "Beta"), project(3, "Gamma"))

	m.mergeUpdated(project(2, "Beta Renamed"))

	if len(m.projects) != 3 {
		t.Fatalf("len = %d, want 3", len(m.projects))
	}
	if m.projects[1].ProjectName != "Beta Renamed" {
		t.Errorf("projects[1] = %q, want Beta Renamed", m.projects[1].ProjectName)
	}
	if m.projects[0].ID != 1 || m.projects[2].ID != 3 {
		t.Error("order should be untouched by an update merge")
	}
}

func TestMergeUpdatedUnknownIDIsNoop(t *testing.T) {
	m := testDashboard(nil, project(1, "Alpha"))
	m.mergeUpdated(project(99, "Ghost"))
	if len(m.projects) != 1 || m.projects[0].ProjectName != "Alpha" {
		t.Errorf("projects = %+v, want unchanged", m.projects)
	}
}

func TestCursorNavigation(t *testing.T) {
	m := testDashboard(nil, project(1, "Alpha"), project(2, "Beta"))

	m, _ = m.handleKey(keyMsg("j"))
	if m.cursor != 1 {
		t.Errorf("cursor = %d after j, want 1", m.cursor)
	}
	m, _ = m.handleKey(keyMsg("j"))
	if m.cursor != 1 {
		t.Errorf("cursor = %d, should clamp at last row", m.cursor)
	}
	m, _ = m.handleKey(keyMsg("k"))
	if m.cursor != 0 {
		t.Errorf("cursor = %d after k, want 0", m.cursor)
	}
	m, _ = m.handleKey(keyMsg("k"))
	if m.cursor != 0 {
		t.Errorf("cursor = %d, should clamp at first row", m.cursor)
	}
}

func TestEnterOpensSelectedProject(t *testing.T) {
	m := testDashboard(nil, project(1, "Alpha"), project(2, "Beta"))
	m.cursor = 1

	_, cmd := m.handleKey(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("expected open command")
	}
	open, ok := cmd().(openEditorMsg)
	if !ok {
		t.Fatalf("cmd returned %T, want openEditorMsg", cmd())
	}
	if open.mode != modeView || open.project == nil || open.project.ID != 2 {
		t.Errorf("open = %+v, want view of project 2", open)
	}
}

func TestAddKeyOpensEmptyEditor(t *testing.T) {
	m := testDashboard(nil)
	_, cmd := m.handleKey(keyMsg("a"))
	if cmd == nil {
		t.Fatal("expected open command")
	}
	open := cmd().(openEditorMsg)
	if open.mode != modeAdd || open.project != nil {
		t.Errorf("open = %+v, want add mode with nil project", open)
	}
}

func TestCopyWithoutImage(t *testing.T) {
	m := testDashboard(nil, project(1, "Alpha"))
	m, cmd := m.handleKey(keyMsg("c"))
	if cmd != nil {
		t.Error("copy should not issue a command when there is no image")
	}
	if m.statusMsg != "project has no image" {
		t.Errorf("statusMsg = %q, want %q", m.statusMsg, "project has no image")
	}
}

func TestOpenImageWithoutImage(t *testing.T) {
	m := testDashboard(nil, project(1, "Alpha"))
	m, cmd := m.handleKey(keyMsg("o"))
	if cmd != nil {
		t.Error("open should not issue a command when there is no image")
	}
	if m.statusMsg != "project has no image" {
		t.Errorf("statusMsg = %q, want %q", m.statusMsg, "project has no image")
	}
}

func TestSearchSubmitReloads(t *testing.T) {
	m := testDashboard(nil)
	m, _ = m.handleKey(keyMsg("/"))
	if !m.searching {
		t.Fatal("expected searching after /")
	}

	m.search.SetValue("  alpha  ")
	m, cmd := m.handleSearchKey(keyMsg("enter"))
	if m.searching {
		t.Error("searching should end on enter")
	}
	if m.query != "alpha" {
		t.Errorf("query = %q, want trimmed %q", m.query, "alpha")
	}
	if !m.loading || cmd == nil {
		t.Error("enter should trigger a reload")
	}
}

func TestSearchEscClearsActiveQuery(t *testing.T) {
	m := testDashboard(nil)
	m.query = "alpha"
	m.searching = true

	m, cmd := m.handleSearchKey(keyMsg("esc"))
	if m.query != "" {
		t.Errorf("query = %q, want cleared", m.query)
	}
	if cmd == nil {
		t.Error("clearing an active query should reload the full list")
	}
}

func TestSearchEscWithoutQueryDoesNotReload(t *testing.T) {
	m := testDashboard(nil)
	m.searching = true

	m, cmd := m.handleSearchKey(keyMsg("esc"))
	if m.searching {
		t.Error("searching should end on esc")
	}
	if cmd != nil {
		t.Error("no reload needed when no query was active")
	}
}

func TestDashboardViewStates(t *testing.T) {
	empty := testDashboard(nil)
	if !strings.Contains(empty.View(), "no projects yet") {
		t.Error("empty view missing hint")
	}

	noMatch := testDashboard(nil)
	noMatch.query = "zzz"
	if !strings.Contains(noMatch.View(), `No projects found matching "zzz"`) {
		t.Error("view missing no-match message")
	}

	loading := testDashboard(nil)
	loading.loading = true
	if !strings.Contains(loading.View(), "loading projects...") {
		t.Error("view missing loading state")
	}

	failed := testDashboard(nil)
	failed.err = &client.HTTPError{StatusCode: 500, Message: "db down"}
	if !strings.Contains(failed.View(), "db down") {
		t.Error("view missing server error message")
	}

	list := testDashboard(nil, project(1, "Alpha"), project(2, "Beta"))
	v := list.View()
	if !strings.Contains(v, "Alpha") || !strings.Contains(v, "Beta") {
		t.Error("view missing project rows")
	}
	if !strings.Contains(v, "MY PROJECTS 2") {
		t.Error("view missing section count")
	}
}
