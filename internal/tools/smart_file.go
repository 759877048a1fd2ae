package tools

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ayushh0406/ai-agent/internal/memory"
)

type SmartFileInput struct {
	Filename string `json:"filename" jsonschema:"required" jsonschema_description:"Base file name without extension"`
	Content  string `json:"content" jsonschema_description:"File body"`
	FileType string `json:"file_type,omitempty" jsonschema_description:"One of python, text, markdown, email, json, html"`
	Template string `json:"template,omitempty" jsonschema_description:"One of basic, professional, documentation"`
}

// extByType is the canonical type-to-extension mapping. Unknown types
// fall back to .txt.
var extByType = map[string]string{
	"python":   ".py",
	"text":     ".txt",
	"markdown": ".md",
	"email":    ".txt",
	"json":     ".json",
	"html":     ".html",
}

func ExtensionFor(fileType string) string {
	if ext, ok := extByType[fileType]; ok {
		return ext
	}
	return ".txt"
}

func (tb *Toolbox) createSmartFileDef() ToolDefinition {
	return ToolDefinition{
		Name:        "create_smart_file",
		Description: "Create a file with smart templates and auto-formatting",
		InputSchema: GenerateSchema[SmartFileInput](),
		Run:         tb.createSmartFile,
	}
}

func (tb *Toolbox) createSmartFile(raw json.RawMessage) Result {
	var in SmartFileInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return Fail(FailInvalidInput, err)
	}
	if in.Filename == "" {
		return Fail(FailInvalidInput, errors.New("filename is required"))
	}
	if in.FileType == "" {
		in.FileType = "text"
	}
	if in.Template == "" {
		in.Template = "basic"
	}

	content := applyTemplate(in, tb.now())

	dir := filepath.Join(tb.cfg.OutputDir, "smart_assistant")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Fail(FailIO, err)
	}

	path := filepath.Join(dir, in.Filename+ExtensionFor(in.FileType))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return Fail(FailIO, err)
	}

	tb.mem.RecordTask(memory.TaskEvent{
		Action:   "file_creation",
		Type:     in.FileType,
		Template: in.Template,
	})

	return Okf("Smart file created: %s (type=%s, template=%s)", path, in.FileType, in.Template)
}

func applyTemplate(in SmartFileInput, now time.Time) string {
	stamp := now.Format("2006-01-02 15:04")

	switch {
	case in.Template == "professional" && in.FileType == "email":
		return fmt.Sprintf(`Subject: %s

Dear Sir/Madam,

%s

Best regards,
[Your Name]

---
Generated by the smart assistant
%s`, in.Filename, in.Content, stamp)

	case in.Template == "documentation" && in.FileType == "markdown":
		return fmt.Sprintf(`# %s

## Overview
%s

## Key Points
- Auto-generated documentation
- Created: %s

## Next Steps
- Review and customize content
- Add additional sections as needed
`, in.Filename, in.Content, stamp)
	}

	return in.Content
}
