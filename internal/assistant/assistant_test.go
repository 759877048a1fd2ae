package assistant

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayushh0406/ai-agent/internal/config"
	"github.com/ayushh0406/ai-agent/internal/intent"
	"github.com/ayushh0406/ai-agent/internal/listen"
	"github.com/ayushh0406/ai-agent/internal/memory"
	"github.com/ayushh0406/ai-agent/internal/tools"
)

// scriptedSource plays back a fixed sequence of commands and capture
// errors, then reports EOF.
type scriptedSource struct {
	events []any // string commands or errors
}

func (s *scriptedSource) Listen(ctx context.Context) (string, error) {
	if len(s.events) == 0 {
		return "", io.EOF
	}
	ev := s.events[0]
	s.events = s.events[1:]

	switch v := ev.(type) {
	case string:
		return v, nil
	case error:
		return "", v
	}
	return "", fmt.Errorf("bad script event %v", ev)
}

type fakeCompleter struct {
	calls []string
	reply string
	errs  []error // consumed per call, nil entries mean success
}

func (f *fakeCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	f.calls = append(f.calls, user)
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		if err != nil {
			return "", err
		}
	}
	return f.reply, nil
}

type testHarness struct {
	assistant *Assistant
	completer *fakeCompleter
	mem       *memory.Store
	cfg       *config.Config
	out       *bytes.Buffer
}

func newHarness(t *testing.T, events ...any) *testHarness {
	t.Helper()
	dir := t.TempDir()

	cfg := &config.Config{
		OutputDir:   filepath.Join(dir, "output"),
		ProjectsDir: filepath.Join(dir, "output", "projects"),
		DraftsDir:   filepath.Join(dir, "email_drafts"),
		JournalDir:  filepath.Join(dir, "journal_entries"),
		MemoryPath:  filepath.Join(dir, "memory.json"),
		SaveEvery:   5,
	}

	mem := memory.Load(cfg.MemoryPath)
	completer := &fakeCompleter{reply: "Happy to help."}
	out := &bytes.Buffer{}

	a := New(Options{
		Persona:   Aria(),
		Config:    cfg,
		Completer: completer,
		Source:    &scriptedSource{events: events},
		Router:    intent.NewRouter(intent.DefaultRoutes(filepath.Join(dir, "Downloads"))),
		Toolbox:   tools.NewToolbox(cfg, mem),
		Memory:    mem,
		Out:       out,
	})

	return &testHarness{assistant: a, completer: completer, mem: mem, cfg: cfg, out: out}
}

func TestRun_TimeoutThenCommandStillQueries(t *testing.T) {
	h := newHarness(t,
		listen.ErrTimeout,
		"create a python file that prints hello",
		"goodbye",
	)

	require.NoError(t, h.assistant.Run(context.Background()))

	// the timeout was informational and the next command reached the model
	require.Len(t, h.completer.calls, 1)
	assert.Equal(t, "create a python file that prints hello", h.completer.calls[0])
	assert.Contains(t, h.out.String(), Aria().TimeoutLine)

	// the routed tool actually ran
	data, err := os.ReadFile(filepath.Join(h.cfg.OutputDir, "smart_assistant", "hello.py"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "print(")
	assert.Contains(t, h.out.String(), "created")
}

func TestRun_ExitFlushesMemory(t *testing.T) {
	h := newHarness(t, "remind me to buy milk", "exit")

	require.NoError(t, h.assistant.Run(context.Background()))
	assert.Equal(t, StateShuttingDown, h.assistant.State())

	// the reminder survived the shutdown flush
	got := memory.Load(h.cfg.MemoryPath)
	require.Len(t, got.Reminders(), 1)
	assert.Equal(t, "remind me to buy milk", got.Reminders()[0].Task)

	assert.Contains(t, h.out.String(), Aria().Farewell)
}

func TestRun_ModelFailureKeepsLoopAlive(t *testing.T) {
	h := newHarness(t, "tell me something", "tell me more", "exit")
	h.completer.errs = []error{errors.New("api down"), nil}

	require.NoError(t, h.assistant.Run(context.Background()))

	require.Len(t, h.completer.calls, 2)
	assert.Contains(t, h.out.String(), Aria().ApologyLine)
	assert.Contains(t, h.out.String(), "Happy to help.")
}

func TestRun_UnintelligibleInputRecovers(t *testing.T) {
	h := newHarness(t, listen.ErrUnintelligible, "exit")

	require.NoError(t, h.assistant.Run(context.Background()))
	assert.Contains(t, h.out.String(), Aria().RetryLine)
}

func TestRun_DashboardSkipsModel(t *testing.T) {
	h := newHarness(t, "show me the dashboard", "exit")

	require.NoError(t, h.assistant.Run(context.Background()))
	assert.Empty(t, h.completer.calls)
	assert.Contains(t, h.out.String(), "SESSION DASHBOARD")
}

func TestRun_AtMostOneToolPerTurn(t *testing.T) {
	h := newHarness(t, "create a python file and remind me to stretch", "exit")

	require.NoError(t, h.assistant.Run(context.Background()))

	// file creation won the route; the reminder never fired
	_, err := os.Stat(filepath.Join(h.cfg.OutputDir, "smart_assistant", "hello.py"))
	assert.NoError(t, err)
	assert.Empty(t, h.mem.Reminders())
}

func TestRun_SourceEOFEndsSession(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.assistant.Run(context.Background()))
	assert.Equal(t, StateShuttingDown, h.assistant.State())

	// shutdown flush writes the memory file even with nothing recorded
	_, err := os.Stat(h.cfg.MemoryPath)
	assert.NoError(t, err)
}

func TestRun_CancelledContextShutsDown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h := newHarness(t, "this is never read")
	require.NoError(t, h.assistant.Run(ctx))
	assert.Equal(t, StateShuttingDown, h.assistant.State())
}

func TestControl_DashboardBetweenTurns(t *testing.T) {
	h := newHarness(t, "exit")
	h.assistant.Control("dashboard")

	require.NoError(t, h.assistant.Run(context.Background()))
	assert.Contains(t, h.out.String(), "SESSION DASHBOARD")
}

func TestSystemPrompt_CarriesRecentContextAndPreferences(t *testing.T) {
	h := newHarness(t)
	h.mem.SetPreference("tone", "casual")
	h.assistant.record("user", "hello there")

	prompt := h.assistant.systemPrompt()
	assert.Contains(t, prompt, "hello there")
	assert.Contains(t, prompt, "tone")
	assert.Contains(t, prompt, Aria().SystemPrompt[:40])
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "querying", StateQuerying.String())
	assert.Equal(t, "shutting_down", StateShuttingDown.String())
}
