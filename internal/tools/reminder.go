package tools

import (
	"encoding/json"
	"errors"

	"github.com/ayushh0406/ai-agent/internal/memory"
)

type ReminderInput struct {
	Task     string `json:"task" jsonschema:"required" jsonschema_description:"What to be reminded about"`
	Time     string `json:"time" jsonschema:"required" jsonschema_description:"When, as a free-text phrase"`
	Priority string `json:"priority,omitempty" jsonschema_description:"low, medium or high"`
}

func (tb *Toolbox) scheduleReminderDef() ToolDefinition {
	return ToolDefinition{
		Name:        "schedule_reminder",
		Description: "Schedule a reminder with priority",
		InputSchema: GenerateSchema[ReminderInput](),
		Run:         tb.scheduleReminder,
	}
}

func (tb *Toolbox) scheduleReminder(raw json.RawMessage) Result {
	var in ReminderInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return Fail(FailInvalidInput, err)
	}
	if in.Task == "" {
		return Fail(FailInvalidInput, errors.New("task is required"))
	}
	if in.Priority == "" {
		in.Priority = "medium"
	}

	tb.mem.AddReminder(memory.Reminder{
		Task:     in.Task,
		Time:     in.Time,
		Priority: in.Priority,
		Created:  tb.now(),
	})

	return Okf("Reminder set: %s (priority=%s, time=%s)", in.Task, in.Priority, in.Time)
}
