package memory

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "nope.json"))

	assert.NotNil(t, s.Preferences())
	assert.Empty(t, s.Preferences())
	assert.Zero(t, s.TaskCount())
	assert.Zero(t, s.ReminderCount())
}

func TestLoad_CorruptFileGivesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := Load(path)
	assert.Empty(t, s.Preferences())
	assert.Zero(t, s.TaskCount())
}

func TestLoad_MissingKeysBecomeEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"preferences":{"tone":"formal"}}`), 0o644))

	s := Load(path)
	assert.Equal(t, "formal", s.Preferences()["tone"])
	assert.NotNil(t, s.rec.FrequentTasks)
	assert.NotNil(t, s.rec.UserProfile)
	assert.NotNil(t, s.rec.ConversationPatterns)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.json")

	s := Load(path)
	s.SetPreference("tone", "casual")
	s.RecordTask(TaskEvent{Action: "file_creation", Type: "python", Template: "basic"})
	s.AddReminder(Reminder{Task: "buy milk", Time: "5pm", Priority: "medium"})
	require.NoError(t, s.Save())

	got := Load(path)
	assert.Equal(t, "casual", got.Preferences()["tone"])
	require.Equal(t, 1, got.TaskCount())
	require.Len(t, got.Reminders(), 1)

	r := got.Reminders()[0]
	assert.Equal(t, "buy milk", r.Task)
	assert.Equal(t, "5pm", r.Time)
	assert.Equal(t, "medium", r.Priority)
	assert.False(t, r.Created.IsZero())
}

func TestAddReminder_StampsCreated(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "memory.json"))

	before := time.Now()
	s.AddReminder(Reminder{Task: "buy milk", Time: "5pm", Priority: "medium"})

	require.Len(t, s.Reminders(), 1)
	assert.False(t, s.Reminders()[0].Created.Before(before.Add(-time.Second)))
}

func TestSetPreference_LastWriteWins(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "memory.json"))
	s.SetPreference("tone", "formal")
	s.SetPreference("tone", "casual")

	assert.Equal(t, "casual", s.Preferences()["tone"])
}
