package intent

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayushh0406/ai-agent/internal/tools"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "create a file", Normalize("  Create A File \n"))
	assert.Equal(t, "", Normalize("   "))
}

func newTestRouter() *Router {
	return NewRouter(DefaultRoutes("/home/user/Downloads"))
}

func TestRoute_NoMatch(t *testing.T) {
	r := newTestRouter()
	assert.Nil(t, r.Route(""))
	assert.Nil(t, r.Route("what is the weather like"))
	assert.Nil(t, r.Route("tell me a joke"))
}

func TestRoute_PythonFileCreation(t *testing.T) {
	r := newTestRouter()

	inv := r.Route("create a python file that prints hello")
	require.NotNil(t, inv)
	assert.Equal(t, "create_smart_file", inv.Tool)

	var in tools.SmartFileInput
	require.NoError(t, json.Unmarshal(inv.Args, &in))
	assert.Equal(t, "python", in.FileType)
	assert.Contains(t, in.Content, "print(")
}

func TestRoute_ProjectBeatsFile(t *testing.T) {
	r := newTestRouter()

	// Both "project" and "file" appear; the project route is earlier in
	// the table and must win.
	inv := r.Route("create a python project with a main file")
	require.NotNil(t, inv)
	assert.Equal(t, "create_project_structure", inv.Tool)

	var in tools.ProjectStructureInput
	require.NoError(t, json.Unmarshal(inv.Args, &in))
	assert.Equal(t, "python", in.ProjectType)
}

func TestRoute_DirectoryAnalysis(t *testing.T) {
	r := newTestRouter()

	for _, cmd := range []string{
		"analyze this directory",
		"check the current folder please",
	} {
		inv := r.Route(cmd)
		require.NotNil(t, inv, "command %q", cmd)
		assert.Equal(t, "analyze_directory", inv.Tool)
	}
}

func TestRoute_OrganizeDownloads(t *testing.T) {
	r := newTestRouter()

	inv := r.Route("organize my downloads folder")
	require.NotNil(t, inv)
	assert.Equal(t, "sort_files_by_type", inv.Tool)

	var in tools.SortFilesInput
	require.NoError(t, json.Unmarshal(inv.Args, &in))
	assert.Equal(t, "/home/user/Downloads", in.Directory)
}

func TestRoute_Email(t *testing.T) {
	r := newTestRouter()

	inv := r.Route("write an email for an internship")
	require.NotNil(t, inv)
	// "write" + "email" but no "file": email route fires
	assert.Equal(t, "generate_email", inv.Tool)

	var in tools.GenerateEmailInput
	require.NoError(t, json.Unmarshal(inv.Args, &in))
	assert.Equal(t, "internship", in.Purpose)
}

func TestRoute_JournalMood(t *testing.T) {
	r := newTestRouter()

	inv := r.Route("log that i am feeling anxious about tomorrow")
	require.NotNil(t, inv)
	assert.Equal(t, "log_journal_entry", inv.Tool)

	var in tools.JournalEntryInput
	require.NoError(t, json.Unmarshal(inv.Args, &in))
	assert.Equal(t, "anxious", in.Mood)
}

func TestRoute_Reminder(t *testing.T) {
	r := newTestRouter()

	inv := r.Route("remind me to buy milk")
	require.NotNil(t, inv)
	assert.Equal(t, "schedule_reminder", inv.Tool)

	var in tools.ReminderInput
	require.NoError(t, json.Unmarshal(inv.Args, &in))
	assert.Equal(t, "remind me to buy milk", in.Task)
	assert.Equal(t, "medium", in.Priority)
}

// At most one tool fires per turn: the router returns a single
// invocation even for a multi-intent command.
func TestRoute_SingleDispatch(t *testing.T) {
	r := newTestRouter()

	inv := r.Route("create a python file and remind me to check my email")
	require.NotNil(t, inv)
	assert.Equal(t, "create_smart_file", inv.Tool)
}
