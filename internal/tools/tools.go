// Package tools holds the assistant's side-effecting operations.
//
// Every tool is registered with a name, a description and a JSON input
// schema derived from its input struct. Handlers never return a Go error:
// failures are folded into the Result and rendered to a display string
// only at the boundary that prints or speaks it.
package tools

import (
	"encoding/json"
	"time"

	"github.com/invopop/jsonschema"

	"github.com/ayushh0406/ai-agent/internal/config"
	"github.com/ayushh0406/ai-agent/internal/memory"
)

type ToolDefinition struct {
	Name        string
	Description string
	InputSchema *jsonschema.Schema
	Run         func(input json.RawMessage) Result
}

// Toolbox wires tools to the config and the memory store. All handlers
// run on the session goroutine.
type Toolbox struct {
	cfg *config.Config
	mem *memory.Store
	now func() time.Time
}

func NewToolbox(cfg *config.Config, mem *memory.Store) *Toolbox {
	return &Toolbox{cfg: cfg, mem: mem, now: time.Now}
}

// Registry returns all tool definitions in a stable order.
func (tb *Toolbox) Registry() []ToolDefinition {
	return []ToolDefinition{
		tb.createSmartFileDef(),
		tb.analyzeDirectoryDef(),
		tb.smartOrganizeDef(),
		tb.createProjectStructureDef(),
		tb.scheduleReminderDef(),
		tb.generateReportDef(),
		tb.optimizeWorkflowDef(),
		tb.writeCodeFileDef(),
		tb.readCodeFileDef(),
		tb.sortFilesByTypeDef(),
		tb.cleanEmptyDirectoriesDef(),
		tb.generateEmailDef(),
		tb.saveEmailDraftDef(),
		tb.logJournalEntryDef(),
		tb.moodSummaryDef(),
		tb.searchJournalDef(),
	}
}

func (tb *Toolbox) Lookup(name string) (ToolDefinition, bool) {
	for _, def := range tb.Registry() {
		if def.Name == name {
			return def, true
		}
	}
	return ToolDefinition{}, false
}

// Invoke runs the named tool with the given arguments. An unknown tool
// name is a failure like any other, never a panic or an error.
func (tb *Toolbox) Invoke(name string, input json.RawMessage) Result {
	def, ok := tb.Lookup(name)
	if !ok {
		return Failf(FailInvalidInput, "unknown tool %q", name)
	}
	return def.Run(input)
}
