package tools

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

type WriteCodeInput struct {
	Filename string `json:"filename" jsonschema:"required" jsonschema_description:"Base file name without extension"`
	Content  string `json:"content" jsonschema:"required" jsonschema_description:"Source code"`
	Language string `json:"language,omitempty" jsonschema_description:"python, javascript, go, html, css or java"`
}

type ReadCodeInput struct {
	FilePath string `json:"file_path" jsonschema:"required" jsonschema_description:"Path of the file to read"`
}

var extByLanguage = map[string]string{
	"python":     ".py",
	"javascript": ".js",
	"go":         ".go",
	"html":       ".html",
	"css":        ".css",
	"java":       ".java",
}

func (tb *Toolbox) writeCodeFileDef() ToolDefinition {
	return ToolDefinition{
		Name:        "write_code_file",
		Description: "Write a code file with the specified content",
		InputSchema: GenerateSchema[WriteCodeInput](),
		Run:         tb.writeCodeFile,
	}
}

func (tb *Toolbox) writeCodeFile(raw json.RawMessage) Result {
	var in WriteCodeInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return Fail(FailInvalidInput, err)
	}
	if in.Filename == "" {
		return Fail(FailInvalidInput, errors.New("filename is required"))
	}
	if in.Language == "" {
		in.Language = "python"
	}

	ext, ok := extByLanguage[in.Language]
	if !ok {
		ext = ".txt"
	}

	if err := os.MkdirAll(tb.cfg.OutputDir, 0o755); err != nil {
		return Fail(FailIO, err)
	}

	path := filepath.Join(tb.cfg.OutputDir, in.Filename+ext)
	if err := os.WriteFile(path, []byte(in.Content), 0o644); err != nil {
		return Fail(FailIO, err)
	}

	return Okf("Code file created: %s", path)
}

func (tb *Toolbox) readCodeFileDef() ToolDefinition {
	return ToolDefinition{
		Name:        "read_code_file",
		Description: "Read the content of a code file",
		InputSchema: GenerateSchema[ReadCodeInput](),
		Run:         tb.readCodeFile,
	}
}

func (tb *Toolbox) readCodeFile(raw json.RawMessage) Result {
	var in ReadCodeInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return Fail(FailInvalidInput, err)
	}
	if in.FilePath == "" {
		return Fail(FailInvalidInput, errors.New("file_path is required"))
	}

	data, err := os.ReadFile(in.FilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return Failf(FailNotFound, "file not found: %s", in.FilePath)
		}
		return Fail(FailIO, err)
	}

	return Ok(string(data))
}
