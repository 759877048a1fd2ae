// Package assistant runs the interactive session: capture a command,
// query the model, route to at most one tool, respond, repeat.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	log "log/slog"

	"github.com/ayushh0406/ai-agent/internal/bus"
	"github.com/ayushh0406/ai-agent/internal/config"
	"github.com/ayushh0406/ai-agent/internal/intent"
	"github.com/ayushh0406/ai-agent/internal/listen"
	"github.com/ayushh0406/ai-agent/internal/memory"
	"github.com/ayushh0406/ai-agent/internal/speech"
	"github.com/ayushh0406/ai-agent/internal/tools"
	"github.com/ayushh0406/ai-agent/pkg/util"
)

// State names the session loop's position. Exactly one phase is active
// at a time; the whole loop runs on a single goroutine.
type State int

const (
	StateIdle State = iota
	StateListening
	StateInterpreting
	StateQuerying
	StateRouting
	StateResponding
	StateShuttingDown
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateListening:
		return "listening"
	case StateInterpreting:
		return "interpreting"
	case StateQuerying:
		return "querying"
	case StateRouting:
		return "routing"
	case StateResponding:
		return "responding"
	case StateShuttingDown:
		return "shutting_down"
	}
	return "unknown"
}

// Completer is the hosted model behind the Querying phase.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Turn is one user or assistant utterance. Turns live only for the
// session; the last few are folded into the next prompt.
type Turn struct {
	Role      string // "user" or "assistant"
	Content   string
	Timestamp time.Time
}

var exitWords = []string{"exit", "quit", "bye", "goodbye", "shutdown"}

type Options struct {
	Persona   Persona
	Config    *config.Config
	Completer Completer
	Source    listen.Source
	Speaker   speech.Speaker
	Router    *intent.Router
	Toolbox   *tools.Toolbox
	Memory    *memory.Store
	Bus       *bus.Bus // optional
	Out       io.Writer
}

type Assistant struct {
	persona   Persona
	cfg       *config.Config
	completer Completer
	source    listen.Source
	speaker   speech.Speaker
	router    *intent.Router
	toolbox   *tools.Toolbox
	mem       *memory.Store
	bus       *bus.Bus
	out       io.Writer

	state   State
	history []Turn
	control chan string
}

func New(opts Options) *Assistant {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Speaker == nil {
		opts.Speaker = speech.Silent{}
	}
	return &Assistant{
		persona:   opts.Persona,
		cfg:       opts.Config,
		completer: opts.Completer,
		source:    opts.Source,
		speaker:   opts.Speaker,
		router:    opts.Router,
		toolbox:   opts.Toolbox,
		mem:       opts.Memory,
		bus:       opts.Bus,
		out:       opts.Out,
		state:     StateIdle,
		control:   make(chan string, 8),
	}
}

func (a *Assistant) State() State { return a.state }

// Control queues a command from the unix socket. It is handled between
// turns so the loop stays single threaded.
func (a *Assistant) Control(cmd string) {
	select {
	case a.control <- cmd:
	default:
		log.Warn("control queue full, dropping", "cmd", cmd)
	}
}

// Run drives the session until an exit phrase, source EOF, or context
// cancellation. Memory is flushed on every way out.
func (a *Assistant) Run(ctx context.Context) error {
	a.ShowDashboard()
	a.respond(a.persona.Welcome)

	for {
		a.drainControl()

		if ctx.Err() != nil {
			return a.shutdown()
		}

		a.state = StateListening
		raw, err := a.source.Listen(ctx)
		if err != nil {
			if cont := a.handleListenError(ctx, err); !cont {
				return a.shutdown()
			}
			a.state = StateIdle
			continue
		}

		a.state = StateInterpreting
		cmd := intent.Normalize(raw)
		if cmd == "" {
			a.state = StateIdle
			continue
		}

		log.Info("command", "text", cmd)
		a.record("user", cmd)

		if containsAny(cmd, exitWords...) {
			a.respond(a.persona.Farewell)
			return a.shutdown()
		}
		if strings.Contains(cmd, "dashboard") {
			a.ShowDashboard()
			a.state = StateIdle
			continue
		}

		a.state = StateQuerying
		reply, err := a.completer.Complete(ctx, a.systemPrompt(), cmd)
		if err != nil {
			log.Error("model query failed", "err", err)
			a.respond(a.persona.ApologyLine)
			a.state = StateIdle
			continue
		}
		a.record("assistant", reply)

		a.state = StateRouting
		if inv := a.router.Route(cmd); inv != nil {
			res := a.toolbox.Invoke(inv.Tool, inv.Args)
			if res.Failed() {
				log.Warn("tool failed", "tool", inv.Tool, "err", res.Failure.Err)
			}
			fmt.Fprintf(a.out, "\n%s\n", res.Display())
		}

		a.state = StateResponding
		a.respond(reply)

		if a.cfg.SaveEvery > 0 && len(a.history)%a.cfg.SaveEvery == 0 {
			a.saveMemory()
		}
		a.state = StateIdle
	}
}

// handleListenError reports whether the loop should continue. Timeouts
// and unintelligible input are informational; EOF and cancellation end
// the session.
func (a *Assistant) handleListenError(ctx context.Context, err error) bool {
	switch {
	case errors.Is(err, listen.ErrTimeout):
		a.respond(a.persona.TimeoutLine)
		return true
	case errors.Is(err, listen.ErrUnintelligible):
		a.respond(a.persona.RetryLine)
		return true
	case errors.Is(err, io.EOF), errors.Is(err, context.Canceled), ctx.Err() != nil:
		return false
	default:
		log.Error("input capture failed", "err", err)
		return true
	}
}

func (a *Assistant) shutdown() error {
	a.state = StateShuttingDown
	a.saveMemory()
	log.Info("session ended", "turns", len(a.history))
	return nil
}

func (a *Assistant) saveMemory() {
	if err := a.mem.Save(); err != nil {
		log.Warn("could not save memory", "err", err)
	}
}

func (a *Assistant) record(role, content string) {
	a.history = append(a.history, Turn{Role: role, Content: content, Timestamp: time.Now()})

	if a.bus != nil {
		err := a.bus.Publish(bus.Event{
			From:    strings.ToLower(a.persona.Name),
			Kind:    role,
			Content: content,
		})
		if err != nil {
			log.Debug("bus publish failed", "err", err)
		}
	}
}

// systemPrompt folds the recent exchanges and stored preferences into
// the persona prompt.
func (a *Assistant) systemPrompt() string {
	var b strings.Builder
	b.WriteString(a.persona.SystemPrompt)

	recent := a.history
	if len(recent) > 3 {
		recent = recent[len(recent)-3:]
	}
	if len(recent) > 0 {
		b.WriteString("\n\nRecent conversation context:\n")
		for _, turn := range recent {
			fmt.Fprintf(&b, "- %s: %s\n", turn.Role, util.Truncate(turn.Content, 100))
		}
	}

	if prefs := a.mem.Preferences(); len(prefs) > 0 {
		fmt.Fprintf(&b, "\nUser preferences from memory: %v\n", prefs)
	}

	return b.String()
}

func (a *Assistant) respond(text string) {
	fmt.Fprintf(a.out, "\n%s: %s\n", a.persona.Name, text)
	if err := a.speaker.Say(text); err != nil {
		log.Warn("speech failed", "err", err)
	}
}

func (a *Assistant) drainControl() {
	for {
		select {
		case cmd := <-a.control:
			switch cmd {
			case "dashboard":
				a.ShowDashboard()
			case "save":
				a.saveMemory()
			default:
				log.Warn("unknown control command", "cmd", cmd)
			}
		default:
			return
		}
	}
}

func (a *Assistant) ShowDashboard() {
	line := strings.Repeat("=", 50)
	fmt.Fprintf(a.out, `%s
%s SESSION DASHBOARD
%s
Conversation turns: %d
Tasks completed:    %d
Active reminders:   %d
%s
`, line, strings.ToUpper(a.persona.Name), line,
		len(a.history), a.mem.TaskCount(), a.mem.ReminderCount(), line)
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
