package memory

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "log/slog"
)

// Records holds the persisted cross-session state. Missing keys in the
// file are treated as empty collections on load.
type Records struct {
	Preferences          map[string]any `json:"preferences"`
	FrequentTasks        []TaskEvent    `json:"frequent_tasks"`
	UserProfile          map[string]any `json:"user_profile"`
	ConversationPatterns []string       `json:"conversation_patterns"`
	Reminders            []Reminder     `json:"reminders,omitempty"`
}

type TaskEvent struct {
	Action    string    `json:"action"`
	Type      string    `json:"type,omitempty"`
	Template  string    `json:"template,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type Reminder struct {
	Task     string    `json:"task"`
	Time     string    `json:"time"`
	Priority string    `json:"priority"`
	Created  time.Time `json:"created"`
}

// Store owns the records for one session. The session loop is single
// threaded, so there is no locking here; anyone overlapping capture with
// playback must add their own synchronization.
type Store struct {
	path string
	rec  Records
}

func defaults() Records {
	return Records{
		Preferences:          map[string]any{},
		FrequentTasks:        []TaskEvent{},
		UserProfile:          map[string]any{},
		ConversationPatterns: []string{},
	}
}

// Load reads the memory file at path. A missing or corrupt file yields
// the default records; Load never fails.
func Load(path string) *Store {
	s := &Store{path: path, rec: defaults()}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("could not read memory file, starting fresh", "path", path, "err", err)
		}
		return s
	}

	var rec Records
	if err := json.Unmarshal(data, &rec); err != nil {
		log.Warn("memory file is corrupt, starting fresh", "path", path, "err", err)
		return s
	}

	if rec.Preferences == nil {
		rec.Preferences = map[string]any{}
	}
	if rec.UserProfile == nil {
		rec.UserProfile = map[string]any{}
	}
	if rec.FrequentTasks == nil {
		rec.FrequentTasks = []TaskEvent{}
	}
	if rec.ConversationPatterns == nil {
		rec.ConversationPatterns = []string{}
	}

	s.rec = rec
	return s
}

// Save serializes the records back to disk. Failures are reported to the
// caller so the loop can log them, but they are never fatal.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(s.rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal memory: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("memory dir: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write memory: %w", err)
	}
	return nil
}

// SetPreference is last-write-wins per key.
func (s *Store) SetPreference(key string, value any) {
	s.rec.Preferences[key] = value
}

func (s *Store) Preferences() map[string]any {
	return s.rec.Preferences
}

// RecordTask appends to the task event log.
func (s *Store) RecordTask(ev TaskEvent) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}
	s.rec.FrequentTasks = append(s.rec.FrequentTasks, ev)
}

// AddReminder appends to the reminder log.
func (s *Store) AddReminder(r Reminder) {
	if r.Created.IsZero() {
		r.Created = time.Now()
	}
	s.rec.Reminders = append(s.rec.Reminders, r)
}

func (s *Store) AddPattern(p string) {
	s.rec.ConversationPatterns = append(s.rec.ConversationPatterns, p)
}

func (s *Store) Reminders() []Reminder { return s.rec.Reminders }

func (s *Store) TaskCount() int     { return len(s.rec.FrequentTasks) }
func (s *Store) ReminderCount() int { return len(s.rec.Reminders) }
